package internal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Equality is exact. The hull engines make no attempt to merge nearly equal
// points, since that would require inventing coordinates.
func (p *Point) Equal(otherPoint *Point) bool {
	return p.X == otherPoint.X && p.Y == otherPoint.Y
}

// The pivot convention shared by Graham's scan and the gift wrapping walk: the
// lowest point, with ties on Y broken by the smaller X.
func (p *Point) Below(otherPoint *Point) bool {
	if p.Y == otherPoint.Y {
		return p.X < otherPoint.X
	}
	return p.Y < otherPoint.Y
}

// Lexicographic order by X, then Y. This is the monotone chain sort order.
func (p *Point) LeftOf(otherPoint *Point) bool {
	if p.X == otherPoint.X {
		return p.Y < otherPoint.Y
	}
	return p.X < otherPoint.X
}

func (p *Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Squared euclidean distance. Only used for comparisons, so we skip the sqrt.
func (p *Point) DistanceSquared(otherPoint *Point) float64 {
	return r2.Norm2(r2.Sub(otherPoint.Vec(), p.Vec()))
}

func (p *Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func (p *Point) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Find the lowest point of the list (see Below). Returns nil for an empty list.
func (list PointList) Lowest() *Point {
	var lowest *Point
	for _, p := range list {
		if lowest == nil || p.Below(lowest) {
			lowest = p
		}
	}
	return lowest
}

// Drop points whose coordinates exactly repeat an earlier point. The first
// occurrence is kept, and the order of the survivors is preserved.
func (list PointList) Distinct() PointList {
	type key struct{ x, y float64 }
	seen := make(map[key]struct{}, len(list))
	result := make(PointList, 0, len(list))
	for _, p := range list {
		k := key{p.X, p.Y}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, p)
	}
	return result
}

func (list PointList) Contains(p *Point) bool {
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}

// Copy the list so that callers can't alias engine state.
func (list PointList) Clone() PointList {
	if list == nil {
		return nil
	}
	result := make(PointList, len(list))
	copy(result, list)
	return result
}

func (s *PointStack) Push(p *Point) {
	*s = append(*s, p)
}

func (s *PointStack) Pop() *Point {
	if len(*s) == 0 {
		return nil
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *PointStack) Peek() *Point {
	if len(*s) == 0 {
		return nil
	}
	return (*s)[len(*s)-1]
}

// The point just under the top of the stack
func (s *PointStack) PeekSecond() *Point {
	if len(*s) < 2 {
		return nil
	}
	return (*s)[len(*s)-2]
}

func (s *PointStack) Len() int {
	return len(*s)
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

// Pop while the top two points and p fail to make a left turn. This is the
// inner loop of both Graham's scan and the monotone chain.
func (s *PointStack) PopUntilLeftTurn(p *Point) {
	for s.Len() >= 2 && Orient(s.PeekSecond(), s.Peek(), p) != CounterClockwise {
		s.Pop()
	}
}

type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Bounding box of the points. An empty list has zero bounds.
func BoundsOf(points []*Point) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
	for _, p := range points {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}
