package internal

import (
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

func (p *Point) Coord() geom.Coord {
	return geom.Coord{p.X, p.Y}
}

// Convert a hull to a go-geom geometry. A proper hull becomes a closed polygon;
// degenerate hulls become an empty multipoint, a point, or a line string, so
// that the output always describes exactly the vertices given.
func HullGeometry(hull []*Point) geom.T {
	coords := make([]geom.Coord, len(hull))
	for i, p := range hull {
		coords[i] = p.Coord()
	}

	switch len(coords) {
	case 0:
		return geom.NewMultiPoint(geom.XY)
	case 1:
		return geom.NewPoint(geom.XY).MustSetCoords(coords[0])
	case 2:
		return geom.NewLineString(geom.XY).MustSetCoords(coords)
	}
	ring := append(coords, coords[0])
	return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{ring})
}

func HullWKT(hull []*Point) (string, error) {
	text, err := wkt.Marshal(HullGeometry(hull))
	if err != nil {
		return "", errors.Wrap(err, "encoding hull as wkt")
	}
	return text, nil
}
