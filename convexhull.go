// Step-by-step convex hulls for Go.
//
// This package computes the convex hull of a set of 2D points with one of
// three classic algorithms: Graham's scan, gift wrapping (the Jarvis march),
// and Andrew's monotone chain. Each algorithm is an Engine which advances one
// bounded unit of work per Step, and exposes a Snapshot of its progress, so a
// caller can animate the computation. For just the hull, use ConvexHull.
package convexhull

import "github.com/osuushi/convexhull/internal"

type Point = internal.Point
type Engine = internal.Engine
type Snapshot = internal.Snapshot
type Phase = internal.Phase
type Algorithm = internal.Algorithm
type Driver = internal.Driver

const (
	GrahamScan    = internal.GrahamScan
	GiftWrapping  = internal.GiftWrapping
	MonotoneChain = internal.MonotoneChain
)

var (
	ErrTooFewPoints = internal.ErrTooFewPoints
	ErrNotStarted   = internal.ErrNotStarted
)

// Create an uninitialized engine for the algorithm.
func New(algorithm Algorithm) (engine Engine, err error) {
	defer func() {
		recoveredErr := internal.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			engine = nil
			err = recoveredErr
		}
	}()
	return internal.NewEngine(algorithm), nil
}

// Look up an algorithm by name: "graham", "giftwrap" (or "jarvis"), or
// "andrews" (or "monotone").
func ParseAlgorithm(name string) (Algorithm, error) {
	return internal.ParseAlgorithm(name)
}

// Wrap an engine with a driver that manages a point collection and paces the
// run.
func NewDriver(engine Engine) *Driver {
	return internal.NewDriver(engine)
}

// Compute the hull in one go. The hull is counterclockwise, and every vertex is
// one of the given pointers.
//
// With fewer than three points, the points are returned as given. Exact
// duplicates are ignored. If every point is on one line, the hull is the two
// endpoints of that line.
func ConvexHull(algorithm Algorithm, points ...*Point) ([]*Point, error) {
	engine, err := New(algorithm)
	if err != nil {
		return nil, err
	}
	return internal.RunToCompletion(engine, points)
}
