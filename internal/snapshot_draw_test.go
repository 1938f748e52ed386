package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawSnapshot(t *testing.T) {
	points := LoadFixture("square_center")
	engine := NewEngine(GrahamScan)
	engine.Initialize(points)
	engine.Step()
	snapshot := engine.Snapshot()
	require.NotNil(t, snapshot.Current)

	const scale = 40
	c := DrawSnapshot(engine.Algorithm().String(), points, snapshot, scale)
	// The unit square plus padding on each side
	assert.Equal(t, scale+2*framePadding, c.Width())
	assert.Equal(t, scale+2*framePadding, c.Height())

	// The highlighted point is drawn last, so its center has the highlight
	// color. The Y axis is flipped, so (0.5, 0.5) is still in the middle.
	x, y := frameTransform{bounds: BoundsOf(points), scale: scale, height: float64(c.Height())}.apply(snapshot.Current)
	r, g, b, _ := c.Image().At(int(x), int(y)).RGBA()
	assert.Equal(t, [3]uint32{0x4C, 0xAF, 0x50}, [3]uint32{r >> 8, g >> 8, b >> 8})
}

func TestDrawSnapshot_AllPhases(t *testing.T) {
	// Drawing must cope with every snapshot of every run, including degenerate
	// input where the bounds are empty.
	inputs := []PointList{LoadFixture("scattered"), {{1, 1}}, {}}
	for _, a := range Algorithms {
		for _, points := range inputs {
			snapshots, err := Trace(NewEngine(a), points)
			require.NoError(t, err)
			for _, s := range snapshots {
				c := DrawSnapshot(a.String(), points, s, 10)
				assert.NotNil(t, c.Image())
			}
		}
	}
}
