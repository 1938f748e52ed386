package internal

// This contains no actual tests. It is just a helper for checking hulls.

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// Helper to check that a hull is valid for a point set. The rules are:
// 1. Every hull vertex is one of the input pointers, and none repeats.
// 2. For three or more vertices, every turn around the hull is strictly
//    counterclockwise (so collinear points are never vertices).
// 3. No input point lies clockwise of any hull edge.
func AssertValidHull(t *testing.T, points PointList, hull []*Point) {
	t.Helper()
	seen := make(map[*Point]struct{})
	for _, p := range hull {
		require.True(t, points.Contains(p), "hull vertex %v is not an input point", p)
		_, dup := seen[p]
		require.False(t, dup, "hull vertex %v repeats", p)
		seen[p] = struct{}{}
	}

	n := len(hull)
	if n < 3 {
		return
	}
	for i := range hull {
		a, b, c := hull[i], hull[(i+1)%n], hull[(i+2)%n]
		require.Equal(t, CounterClockwise, Orient(a, b, c), "turn %v %v %v is not counterclockwise", a, b, c)
	}
	for i := range hull {
		a, b := hull[i], hull[(i+1)%n]
		for _, p := range points {
			require.NotEqual(t, Clockwise, Orient(a, b, p), "point %v is outside hull edge %v-%v", p, a, b)
		}
	}
}

type coord struct{ X, Y float64 }

// Hull coordinates rotated so that the lowest vertex comes first. Two
// counterclockwise hulls of the same points give equal results regardless of
// which vertex the engine started from.
func canonicalHull(hull []*Point) []coord {
	if len(hull) == 0 {
		return []coord{}
	}
	start := 0
	for i, p := range hull {
		if p.Below(hull[start]) {
			start = i
		}
	}
	result := make([]coord, len(hull))
	for i := range hull {
		p := hull[(start+i)%len(hull)]
		result[i] = coord{p.X, p.Y}
	}
	return result
}

// Sorted hull coordinates, for comparing hulls whose orientation differs.
func hullCoordSet(hull []*Point) []coord {
	result := canonicalHull(hull)
	sort.Slice(result, func(i, j int) bool {
		if result[i].X == result[j].X {
			return result[i].Y < result[j].Y
		}
		return result[i].X < result[j].X
	})
	return result
}

func coords(points ...*Point) []coord {
	result := make([]coord, len(points))
	for i, p := range points {
		result[i] = coord{p.X, p.Y}
	}
	return result
}

// Run an engine to completion, failing the test if it takes more steps than any
// engine should need.
func runEngine(t *testing.T, a Algorithm, points []*Point) (hull []*Point, steps int) {
	t.Helper()
	engine := NewEngine(a)
	engine.Initialize(points)
	limit := 2*len(points) + 2
	for !engine.Step() {
		steps++
		require.LessOrEqual(t, steps, limit, "%s did not finish", a)
	}
	snapshot := engine.Snapshot()
	require.True(t, snapshot.Done)
	return snapshot.Hull, snapshot.Steps
}
