package internal

// Classify the turn p -> q -> r by the sign of the cross product. Only an exact
// zero is collinear; no tolerance is applied, so nearly collinear triples may
// land on either side.
func Orient(p, q, r *Point) Orientation {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case val == 0:
		return Collinear
	case val > 0:
		return Clockwise
	default:
		return CounterClockwise
	}
}

func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "collinear"
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	}
	return "unknown"
}
