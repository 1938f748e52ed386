package internal

// Gift wrapping (Jarvis march). Starting from the lowest point, each step scans
// every point to find the next hull vertex counterclockwise, so a run takes h
// steps of O(n) each, where h is the number of hull vertices.
type GiftWrappingEngine struct {
	progress
	points PointList
	start  *Point
	// The hull vertex the next step wraps from
	vertex *Point
	hull   PointList
}

func (e *GiftWrappingEngine) Algorithm() Algorithm {
	return GiftWrapping
}

func (e *GiftWrappingEngine) Initialize(points []*Point) {
	*e = GiftWrappingEngine{}
	distinct, ok := prepareInput(points)
	if !ok {
		e.finish(distinct)
		return
	}
	e.phase = Running
	e.points = distinct
	e.start = distinct.Lowest()
	e.vertex = e.start
	e.current = e.start
}

func (e *GiftWrappingEngine) Step() bool {
	if e.phase == Uninitialized {
		e.Initialize(nil)
	}
	if e.done() {
		return true
	}
	e.steps++

	next := e.nextVertex()
	e.hull = append(e.hull, next)
	e.current = next
	e.vertex = next
	if next == e.start {
		e.finish(e.hull)
		return true
	}

	// Every step adds a distinct hull vertex, so the walk must close within
	// len(points) steps. Overrunning means the orientation test is not giving a
	// consistent answer, which happens with NaN coordinates.
	if len(e.hull) >= len(e.points) {
		fatalf("gift wrapping did not return to %v after %d vertices", e.start, len(e.hull))
	}
	return false
}

// Find the point p for which every other point lies counterclockwise of the
// line from the current vertex to p. When several points are collinear with
// that line, the farthest one wins, so that points in the middle of a hull edge
// are skipped.
func (e *GiftWrappingEngine) nextVertex() *Point {
	var next *Point
	for _, p := range e.points {
		if p == e.vertex {
			continue
		}
		if next == nil {
			next = p
			continue
		}
		switch Orient(e.vertex, next, p) {
		case Clockwise:
			next = p
		case Collinear:
			if e.vertex.DistanceSquared(p) > e.vertex.DistanceSquared(next) {
				next = p
			}
		}
	}
	return next
}

func (e *GiftWrappingEngine) Snapshot() Snapshot {
	return e.snapshot(e.hull)
}
