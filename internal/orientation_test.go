package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twpayne/go-geom/bigxy"
	"github.com/twpayne/go-geom/xy/orientation"
)

func TestOrient(t *testing.T) {
	p, q := &Point{0, 0}, &Point{1, 0}
	assert.Equal(t, CounterClockwise, Orient(p, q, &Point{2, 1}))
	assert.Equal(t, Clockwise, Orient(p, q, &Point{2, -1}))
	assert.Equal(t, Collinear, Orient(p, q, &Point{2, 0}))
	// Behind the start is still collinear
	assert.Equal(t, Collinear, Orient(p, q, &Point{-5, 0}))
	// Degenerate triples are collinear
	assert.Equal(t, Collinear, Orient(p, p, q))
	assert.Equal(t, Collinear, Orient(p, p, p))
}

func TestOrient_CyclicAndReversed(t *testing.T) {
	a, b, c := &Point{-3, 1}, &Point{4, -2}, &Point{1, 5}
	o := Orient(a, b, c)
	assert.Equal(t, CounterClockwise, o)
	// Rotating the triple keeps the orientation, reversing it flips it
	assert.Equal(t, o, Orient(b, c, a))
	assert.Equal(t, o, Orient(c, a, b))
	assert.Equal(t, Clockwise, Orient(c, b, a))
}

// Cross check against go-geom's arbitrary precision orientation. On a small
// integer grid the float computation is exact, so they must agree everywhere,
// including every collinear triple.
func TestOrient_MatchesExactOrientation(t *testing.T) {
	var grid []*Point
	for x := -2; x <= 2; x++ {
		for y := -2; y <= 2; y++ {
			grid = append(grid, &Point{float64(x), float64(y)})
		}
	}
	expected := map[orientation.Type]Orientation{
		orientation.Clockwise:        Clockwise,
		orientation.Collinear:        Collinear,
		orientation.CounterClockwise: CounterClockwise,
	}
	for _, p := range grid {
		for _, q := range grid {
			for _, r := range grid {
				exact := bigxy.OrientationIndex(p.Coord(), q.Coord(), r.Coord())
				if !assert.Equal(t, expected[exact], Orient(p, q, r), "orientation of %v %v %v", p, q, r) {
					return
				}
			}
		}
	}
}

func TestOrientationString(t *testing.T) {
	assert.Equal(t, "collinear", Collinear.String())
	assert.Equal(t, "clockwise", Clockwise.String())
	assert.Equal(t, "counterclockwise", CounterClockwise.String())
	assert.Equal(t, "unknown", Orientation(7).String())
}
