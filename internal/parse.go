package internal

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Read points from text, one "x y" pair per line. Blank lines and lines
// starting with # are skipped. Anything else that isn't exactly two finite
// numbers is an error, so the engines only ever see well formed points.
func ParsePoints(in io.Reader) (PointList, error) {
	var points PointList
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := ParsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

// Parse a single "x y" pair. A comma may be used in place of whitespace.
func ParsePoint(text string) (*Point, error) {
	fields := strings.Fields(strings.ReplaceAll(text, ",", " "))
	if len(fields) != 2 {
		return nil, errors.Errorf("expected 2 coordinates, got %d in %q", len(fields), text)
	}
	x, err := parseCoordinate(fields[0])
	if err != nil {
		return nil, err
	}
	y, err := parseCoordinate(fields[1])
	if err != nil {
		return nil, err
	}
	return &Point{X: x, Y: y}, nil
}

func parseCoordinate(field string) (float64, error) {
	value, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, errors.Errorf("invalid coordinate %q", field)
	}
	p := Point{X: value}
	if !p.IsFinite() {
		return 0, errors.Errorf("coordinate %q is not finite", field)
	}
	return value, nil
}
