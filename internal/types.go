package internal

type Point struct {
	X float64
	Y float64
}

// All points handed to an engine are pointers, and hull vertices are always
// pointers from the input list. This lets callers map a hull vertex back to the
// exact point they supplied, and lets the engines compare vertices by identity.
// Engines never modify a point value.
type PointList []*Point

type PointStack []*Point

type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)
