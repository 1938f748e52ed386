package internal

import "sort"

// Graham's scan. The points are sorted by polar angle around the pivot (the
// lowest point), and then swept in that order, keeping a stack of points that
// always turns left. Each step consumes one sorted point.
type GrahamScanEngine struct {
	progress
	pivot  *Point
	sorted PointList
	stack  PointStack
	cursor int
}

func (e *GrahamScanEngine) Algorithm() Algorithm {
	return GrahamScan
}

func (e *GrahamScanEngine) Initialize(points []*Point) {
	*e = GrahamScanEngine{}
	distinct, ok := prepareInput(points)
	if !ok {
		e.finish(distinct)
		return
	}
	e.phase = Running

	e.pivot = distinct.Lowest()
	e.sorted = make(PointList, 0, len(distinct)-1)
	for _, p := range distinct {
		if p != e.pivot {
			e.sorted = append(e.sorted, p)
		}
	}
	sortByPolarAngle(e.pivot, e.sorted)

	e.stack = PointStack{e.pivot, e.sorted[0]}
	e.current = e.sorted[0]
	e.cursor = 1
}

func (e *GrahamScanEngine) Step() bool {
	if e.phase == Uninitialized {
		e.Initialize(nil)
	}
	if e.done() {
		return true
	}
	e.steps++

	if e.cursor >= len(e.sorted) {
		e.finish(PointList(e.stack))
		return true
	}

	candidate := e.sorted[e.cursor]
	e.current = candidate
	e.stack.PopUntilLeftTurn(candidate)
	e.stack.Push(candidate)
	e.cursor++
	return false
}

func (e *GrahamScanEngine) Snapshot() Snapshot {
	return e.snapshot(PointList(e.stack))
}

// Sort points by the angle they make with the horizontal around the pivot, and
// then by distance from the pivot. Since the pivot is the lowest point, every
// other point has an angle in [0, π), which means the orientation test alone
// gives a strict order on angle without any trigonometry.
func sortByPolarAngle(pivot *Point, points PointList) {
	sort.SliceStable(points, func(i, j int) bool {
		a, b := points[i], points[j]
		switch Orient(pivot, a, b) {
		case CounterClockwise:
			return true
		case Clockwise:
			return false
		}
		return pivot.DistanceSquared(a) < pivot.DistanceSquared(b)
	})
}
