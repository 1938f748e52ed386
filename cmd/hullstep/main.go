package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/convexhull/dbg"
	"github.com/osuushi/convexhull/internal"
)

// Step through a convex hull computation in the terminal. Points are read from
// a file or stdin, one "x y" pair per line, or from the circles and polygons of
// an SVG file. Each step is printed as a trace line, and can also be rendered
// as a PNG frame, which iTerm can show inline. The finished hull is written to
// stdout.
var (
	app = kingpin.New("hullstep", "Step through a convex hull computation.")

	algorithmName = app.Flag("algorithm", "Algorithm: "+strings.Join(internal.AlgorithmNames(), ", ")+".").Short('a').Envar("HULLSTEP_ALGORITHM").Default("graham").String()
	interval      = app.Flag("interval", "Delay between steps.").Envar("HULLSTEP_INTERVAL").Default("0s").Duration()
	svgPath       = app.Flag("svg", "Read points from an SVG file instead.").ExistingFile()
	framesDir     = app.Flag("frames", "Write a PNG frame per step into this directory.").String()
	showImages    = app.Flag("imgcat", "Print each frame inline (iTerm only).").Bool()
	scale         = app.Flag("scale", "Frame pixels per unit.").Default("40").Float64()
	format        = app.Flag("format", "Output format for the hull.").Default("text").Enum("text", "wkt", "svg")
	names         = app.Flag("names", "Label points with readable names in the trace.").Bool()
	quiet         = app.Flag("quiet", "Don't print the trace.").Short('q').Bool()
	noColor       = app.Flag("no-color", "Disable colors in the trace.").Bool()
	profileDir    = app.Flag("profile", "Write a CPU profile into this directory.").String()

	inputPath = app.Arg("file", "Points file. Defaults to stdin.").ExistingFile()
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("hullstep: ")
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {
	if *profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir), profile.Quiet).Stop()
	}

	algorithm, err := internal.ParseAlgorithm(*algorithmName)
	if err != nil {
		return err
	}

	points, err := readPoints()
	if err != nil {
		return err
	}
	log.Printf("read %d points", len(points))

	if *framesDir != "" {
		if err := os.MkdirAll(*framesDir, 0o755); err != nil {
			return errors.Wrap(err, "creating frames directory")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	driver := internal.NewDriver(internal.NewEngine(algorithm))
	driver.SetPoints(points)

	t := newTracer(algorithm, points)
	err = driver.Run(ctx, *interval, t.frame)
	if errors.Is(err, internal.ErrTooFewPoints) {
		return errors.Errorf("need at least 3 points to start, got %d", len(points))
	}
	if err != nil {
		return err
	}

	return writeHull(os.Stdout, points, driver.Engine().Snapshot().Hull)
}

func readPoints() (internal.PointList, error) {
	if *svgPath != "" {
		f, err := os.Open(*svgPath)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		defer f.Close()
		return internal.LoadSVGPoints(f)
	}

	in := os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		defer f.Close()
		in = f
	}
	return internal.ParsePoints(in)
}

type tracer struct {
	algorithm internal.Algorithm
	points    internal.PointList
	au        aurora.Aurora
	frames    int
}

func newTracer(algorithm internal.Algorithm, points internal.PointList) *tracer {
	return &tracer{
		algorithm: algorithm,
		points:    points,
		au:        aurora.NewAurora(!*noColor),
	}
}

func (t *tracer) frame(s internal.Snapshot) error {
	defer func() { t.frames++ }()

	if !*quiet {
		fmt.Fprintln(os.Stderr, t.describe(s))
	}

	if *framesDir == "" && !*showImages {
		return nil
	}
	path := filepath.Join(os.TempDir(), "hullstep-frame.png")
	if *framesDir != "" {
		path = filepath.Join(*framesDir, fmt.Sprintf("frame%04d.png", t.frames))
	}
	c := internal.DrawSnapshot(t.algorithm.String(), t.points, s, *scale)
	if err := c.SavePNG(path); err != nil {
		return errors.Wrap(err, "saving frame")
	}
	if *showImages {
		return imgcat.CatFile(path, os.Stdout)
	}
	return nil
}

func (t *tracer) describe(s internal.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", t.au.Bold(fmt.Sprintf("[%3d]", s.Steps)), t.au.Cyan(s.Phase))
	if s.Current != nil {
		fmt.Fprintf(&b, " current=%s", t.au.Green(label(s.Current)))
	}
	if len(s.Lower) > 0 {
		fmt.Fprintf(&b, " lower=%s", t.au.Red(labels(s.Lower)))
	}
	if s.Done {
		fmt.Fprintf(&b, " hull=%s", t.au.Green(labels(s.Hull)))
	} else {
		fmt.Fprintf(&b, " partial=%s", t.au.Yellow(labels(s.Partial)))
	}
	return b.String()
}

func label(p *internal.Point) string {
	if *names {
		return dbg.Name(p) + p.String()
	}
	return p.String()
}

func labels(points []*internal.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = label(p)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func writeHull(w io.Writer, points, hull []*internal.Point) error {
	switch *format {
	case "wkt":
		text, err := internal.HullWKT(hull)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, text)
		return errors.WithStack(err)
	case "svg":
		return internal.WriteSVG(w, points, hull)
	}
	for _, p := range hull {
		if _, err := fmt.Fprintf(w, "%g %g\n", p.X, p.Y); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
