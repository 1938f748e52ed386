package internal

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
)

// Frame rendering for drivers. Engines never call this; it only reads a
// snapshot.

// Padding in pixels around the point set
const framePadding = 40

type frameTransform struct {
	bounds Bounds
	scale  float64
	height float64
}

// Map point coordinates onto the canvas, with the origin at the bottom left.
func (t frameTransform) apply(p *Point) (x, y float64) {
	x = framePadding + (p.X-t.bounds.MinX)*t.scale
	y = t.height - framePadding - (p.Y-t.bounds.MinY)*t.scale
	return
}

// Draw the snapshot of a run over the given points. scale is pixels per unit.
func DrawSnapshot(title string, points []*Point, s Snapshot, scale float64) *gg.Context {
	bounds := BoundsOf(points)
	width := int(math.Ceil(scale*bounds.Width())) + framePadding*2
	height := int(math.Ceil(scale*bounds.Height())) + framePadding*2
	t := frameTransform{bounds: bounds, scale: scale, height: float64(height)}

	c := gg.NewContext(width, height)
	c.SetHexColor("#2D2D2D")
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.SetLineWidth(2)
	if s.Done {
		drawPath(c, t, s.Hull, true)
		c.SetHexColor("#4CAF50")
		c.Stroke()
	} else {
		drawPath(c, t, s.Lower, false)
		c.SetHexColor("#FF5722")
		c.Stroke()
		drawPath(c, t, s.Partial, false)
		c.SetHexColor("#FFC107")
		c.Stroke()
	}

	c.SetHexColor("#2196F3")
	for _, p := range points {
		x, y := t.apply(p)
		c.DrawCircle(x, y, 4)
		c.Fill()
	}

	c.SetHexColor("#FFC107")
	for _, p := range s.Partial {
		x, y := t.apply(p)
		c.DrawCircle(x, y, 5)
		c.Fill()
	}

	if s.Current != nil {
		x, y := t.apply(s.Current)
		c.SetHexColor("#4CAF50")
		c.DrawCircle(x, y, 8)
		c.Fill()
	}

	c.SetRGB(1, 1, 1)
	c.DrawString(fmt.Sprintf("%s: %s, step %d", title, s.Phase, s.Steps), 8, 16)
	return c
}

func drawPath(c *gg.Context, t frameTransform, path []*Point, closed bool) {
	if len(path) == 0 {
		return
	}
	c.MoveTo(t.apply(path[0]))
	for _, p := range path[1:] {
		c.LineTo(t.apply(p))
	}
	if closed {
		c.ClosePath()
	}
}
