package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
)

// Fixtures are SVG files in the fixtures/ directory, available by name sans
// extension. They're read with the same loader the command line uses, so the
// points are circle centers followed by polygon and polyline vertices.

//go:embed fixtures
var fixtures embed.FS

var fixtureNames = []string{
	"square_center",
	"scattered",
	"octagon",
	"collinear_edges",
}

func LoadFixture(name string) PointList {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	points, err := LoadSVGPoints(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(points) == 0 {
		log.Fatalf("No points found in fixture %q", name)
	}
	return points
}

// Some ad hoc code specified fixtures

// Five outer points and five inner points. Only the outer points are on the
// hull.
func SimpleStar() (all, outer PointList) {
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		radius := float64(outerRadius)
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		p := &Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
		all = append(all, p)
		if i%2 == 0 {
			outer = append(outer, p)
		}
	}
	return all, outer
}

// Points on a small integer grid. These produce plenty of duplicates and
// collinear triples, which is the point.
func RandomGridPoints(seed int64, n, size int) PointList {
	r := rand.New(rand.NewSource(seed))
	points := make(PointList, n)
	for i := range points {
		points[i] = &Point{X: float64(r.Intn(size)), Y: float64(r.Intn(size))}
	}
	return points
}

// Transform a copy of the point list. Transformed points are new pointers, so
// compare hulls by coordinates.
func transformed(points PointList, f func(x, y float64) (float64, float64)) PointList {
	result := make(PointList, len(points))
	for i, p := range points {
		x, y := f(p.X, p.Y)
		result[i] = &Point{X: x, Y: y}
	}
	return result
}

// The symmetries of the square keep integer coordinates exact, so collinearity
// is preserved. Reflections reverse orientation, but the hull's vertex set is
// unchanged.
var pointTransforms = map[string]func(x, y float64) (float64, float64){
	"original":    func(x, y float64) (float64, float64) { return x, y },
	"x reflected": func(x, y float64) (float64, float64) { return -x, y },
	"y reflected": func(x, y float64) (float64, float64) { return x, -y },
	"rotated 90":  func(x, y float64) (float64, float64) { return -y, x },
	"rotated 180": func(x, y float64) (float64, float64) { return -x, -y },
	"translated":  func(x, y float64) (float64, float64) { return x + 17, y - 3 },
}

func reversed(points PointList) PointList {
	result := make(PointList, len(points))
	for i, p := range points {
		result[len(points)-1-i] = p
	}
	return result
}
