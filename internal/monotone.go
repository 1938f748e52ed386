package internal

import "sort"

// Andrew's monotone chain. Points are sorted left to right, then the lower hull
// is built sweeping left to right, and the upper hull sweeping back right to
// left. Both sweeps keep only left turns, exactly like Graham's scan, but need
// no angular sort.
type MonotoneChainEngine struct {
	progress
	sorted PointList
	lower  PointStack
	upper  PointStack
	cursor int
}

func (e *MonotoneChainEngine) Algorithm() Algorithm {
	return MonotoneChain
}

func (e *MonotoneChainEngine) Initialize(points []*Point) {
	*e = MonotoneChainEngine{}
	distinct, ok := prepareInput(points)
	if !ok {
		e.finish(distinct)
		return
	}
	e.phase = BuildLower
	e.sorted = distinct
	sort.SliceStable(e.sorted, func(i, j int) bool {
		return e.sorted[i].LeftOf(e.sorted[j])
	})
}

func (e *MonotoneChainEngine) Step() bool {
	if e.phase == Uninitialized {
		e.Initialize(nil)
	}
	if e.done() {
		return true
	}
	e.steps++

	n := len(e.sorted)
	switch e.phase {
	case BuildLower:
		p := e.sorted[e.cursor]
		e.current = p
		e.lower.PopUntilLeftTurn(p)
		e.lower.Push(p)
		e.cursor++

		if e.cursor == n {
			// The rightmost point ends the lower chain and starts the upper one.
			e.phase = BuildUpper
			e.upper = PointStack{e.sorted[n-1]}
			e.cursor = n - 2
		}
	case BuildUpper:
		p := e.sorted[e.cursor]
		e.current = p
		e.upper.PopUntilLeftTurn(p)
		e.upper.Push(p)
		e.cursor--

		if e.cursor < 0 {
			// The upper chain starts and ends on the lower chain's endpoints, so
			// drop both copies.
			hull := make(PointList, 0, len(e.lower)+len(e.upper)-2)
			hull = append(hull, e.lower...)
			hull = append(hull, e.upper[1:len(e.upper)-1]...)
			e.finish(hull)
			return true
		}
	}
	return false
}

func (e *MonotoneChainEngine) Snapshot() Snapshot {
	if e.phase == BuildUpper {
		s := e.snapshot(PointList(e.upper))
		s.Lower = PointList(e.lower).Clone()
		return s
	}
	return e.snapshot(PointList(e.lower))
}
