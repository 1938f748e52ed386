package internal

import (
	"strings"

	"github.com/pkg/errors"
)

// An Engine computes a convex hull one bounded unit of work at a time, so that
// a driver can animate it. Engines are not safe for concurrent use; a driver
// must call Step sequentially. Initialize may be called at any time, and
// discards all previous progress.
type Engine interface {
	// Replace all working state with a fresh run over the given points.
	Initialize(points []*Point)

	// Advance by one step. Returns true once the hull is complete, and on every
	// call after that, without changing anything.
	Step() (done bool)

	// Read-only copy of the engine's progress
	Snapshot() Snapshot

	Algorithm() Algorithm
}

// Snapshot of an engine's progress, for display. All slices are copies.
type Snapshot struct {
	Phase Phase
	// The point most recently examined, for highlighting
	Current *Point
	// The stack, accumulator, or chain currently being built
	Partial []*Point
	// Monotone chain only. Once the lower chain is finished, it is held here
	// while the upper chain is built in Partial.
	Lower []*Point
	// The finished hull, in counterclockwise order. Nil until Done.
	Hull []*Point
	Done bool
	// Number of steps that did work
	Steps int
}

type Phase int

const (
	Uninitialized Phase = iota
	Running
	BuildLower
	BuildUpper
	Done
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case BuildLower:
		return "build lower"
	case BuildUpper:
		return "build upper"
	case Done:
		return "done"
	}
	return "unknown"
}

type Algorithm int

const (
	GrahamScan Algorithm = iota
	GiftWrapping
	MonotoneChain
)

var Algorithms = []Algorithm{GrahamScan, GiftWrapping, MonotoneChain}

func (a Algorithm) String() string {
	switch a {
	case GrahamScan:
		return "Graham's Scan"
	case GiftWrapping:
		return "Gift Wrapping (Jarvis March)"
	case MonotoneChain:
		return "Andrew's Monotone Chain"
	}
	return "unknown"
}

// Short name used on the command line
func (a Algorithm) Name() string {
	switch a {
	case GrahamScan:
		return "graham"
	case GiftWrapping:
		return "giftwrap"
	case MonotoneChain:
		return "andrews"
	}
	return "unknown"
}

var algorithmNames = map[string]Algorithm{
	"graham":        GrahamScan,
	"grahamscan":    GrahamScan,
	"giftwrap":      GiftWrapping,
	"giftwrapping":  GiftWrapping,
	"jarvis":        GiftWrapping,
	"andrews":       MonotoneChain,
	"monotone":      MonotoneChain,
	"monotonechain": MonotoneChain,
}

// Look up an algorithm by its short name or one of its aliases. Case, spaces,
// dashes and underscores are ignored.
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := strings.ToLower(name)
	normalized = strings.NewReplacer(" ", "", "-", "", "_", "", "'", "").Replace(normalized)
	if a, ok := algorithmNames[normalized]; ok {
		return a, nil
	}
	return 0, errors.Errorf("unknown algorithm %q", name)
}

func AlgorithmNames() []string {
	names := make([]string, len(Algorithms))
	for i, a := range Algorithms {
		names[i] = a.Name()
	}
	return names
}

func NewEngine(a Algorithm) Engine {
	switch a {
	case GrahamScan:
		return &GrahamScanEngine{}
	case GiftWrapping:
		return &GiftWrappingEngine{}
	case MonotoneChain:
		return &MonotoneChainEngine{}
	}
	fatalf("unknown algorithm: %d", int(a))
	return nil
}

// Common preparation for every engine. If the input is degenerate (fewer than
// three points, or fewer than three distinct points), the second return value
// is the hull the engine should report immediately, and ok is false.
//
// Inputs under three points are returned verbatim. Otherwise exact duplicates
// are dropped, keeping the first occurrence, so that the engines never have to
// reason about coincident vertices.
func prepareInput(points []*Point) (distinct PointList, ok bool) {
	if len(points) < 3 {
		return PointList(points).Clone(), false
	}
	distinct = PointList(points).Distinct()
	return distinct, len(distinct) >= 3
}

// Shared bookkeeping for snapshots and the done state
type progress struct {
	phase   Phase
	current *Point
	hull    PointList
	steps   int
}

func (p *progress) finish(hull PointList) {
	p.phase = Done
	p.hull = hull.Clone()
	if p.hull == nil {
		p.hull = PointList{}
	}
}

func (p *progress) done() bool {
	return p.phase == Done
}

func (p *progress) snapshot(partial PointList) Snapshot {
	s := Snapshot{
		Phase:   p.phase,
		Current: p.current,
		Partial: partial.Clone(),
		Done:    p.phase == Done,
		Steps:   p.steps,
	}
	if s.Done {
		s.Hull = p.hull.Clone()
	}
	return s
}
