package internal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Load a point set from an SVG document. This is not a general SVG reader: it
// collects the centers of all <circle> elements, followed by the vertices of all
// <polygon> and <polyline> elements, in document order within each kind.
// Transforms are ignored and coordinates are taken as written, so the Y axis
// points down compared to the engines' convention. That mirrors the hull but
// doesn't change which points are on it.
func LoadSVGPoints(in io.Reader) (PointList, error) {
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points PointList
	for i, circle := range root.FindAll("circle") {
		x, err := svgNumber(circle.Attributes["cx"])
		if err != nil {
			return nil, errors.Wrapf(err, "circle %d cx", i)
		}
		y, err := svgNumber(circle.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrapf(err, "circle %d cy", i)
		}
		points = append(points, &Point{X: x, Y: y})
	}

	for _, name := range []string{"polygon", "polyline"} {
		for i, el := range root.FindAll(name) {
			vertices, err := parseSVGPointList(el.Attributes["points"])
			if err != nil {
				return nil, errors.Wrapf(err, "%s %d", name, i)
			}
			points = append(points, vertices...)
		}
	}
	return points, nil
}

// Missing numeric attributes default to zero, as in SVG.
func svgNumber(attr string) (float64, error) {
	if attr == "" {
		return 0, nil
	}
	return parseCoordinate(strings.TrimSpace(attr))
}

// SVG point lists are numbers separated by commas and/or whitespace, taken in
// pairs.
func parseSVGPointList(attr string) (PointList, error) {
	fields := strings.Fields(strings.ReplaceAll(attr, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", attr)
	}
	points := make(PointList, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := parseCoordinate(fields[i])
		if err != nil {
			return nil, err
		}
		y, err := parseCoordinate(fields[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, &Point{X: x, Y: y})
	}
	return points, nil
}

// Format points as the value of an SVG points attribute.
func FormatSVGPointList(points []*Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = strconv.FormatFloat(p.X, 'g', -1, 64) + "," + strconv.FormatFloat(p.Y, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

// Write the points as circles and the hull as a polygon. Reading the output
// back with LoadSVGPoints yields the points followed by the hull vertices.
func WriteSVG(w io.Writer, points, hull []*Point) error {
	bounds := BoundsOf(points)
	const padding = 1
	_, err := fmt.Fprintf(w, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%g %g %g %g\">\n",
		bounds.MinX-padding, bounds.MinY-padding, bounds.Width()+2*padding, bounds.Height()+2*padding)
	if err != nil {
		return errors.WithStack(err)
	}
	for _, p := range points {
		if _, err := fmt.Fprintf(w, "  <circle cx=\"%g\" cy=\"%g\" r=\"0.1\"/>\n", p.X, p.Y); err != nil {
			return errors.WithStack(err)
		}
	}
	if len(hull) > 0 {
		if _, err := fmt.Fprintf(w, "  <polygon points=\"%s\" fill=\"none\" stroke=\"green\" stroke-width=\"0.05\"/>\n", FormatSVGPointList(hull)); err != nil {
			return errors.WithStack(err)
		}
	}
	_, err = io.WriteString(w, "</svg>\n")
	return errors.WithStack(err)
}
