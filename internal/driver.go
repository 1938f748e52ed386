package internal

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrTooFewPoints = errors.New("need at least 3 points to start")
	ErrNotStarted   = errors.New("driver has not been started")
)

// A Driver owns the caller's point collection and one engine, and keeps the
// two in sync: every edit to the points reinitializes the engine, so a step
// never runs against a stale point list. It paces the engine from outside;
// the engine itself never knows about time.
//
// Like the engines, a Driver must be used from a single goroutine.
type Driver struct {
	engine  Engine
	points  PointList
	started bool
}

func NewDriver(engine Engine) *Driver {
	d := &Driver{engine: engine}
	d.engine.Initialize(nil)
	return d
}

func (d *Driver) Engine() Engine {
	return d.engine
}

// Swap to a different engine, keeping the points. The run is stopped.
func (d *Driver) SetEngine(engine Engine) {
	d.engine = engine
	d.reinitialize()
}

func (d *Driver) Points() PointList {
	return d.points.Clone()
}

// Replace the whole point collection at once.
func (d *Driver) SetPoints(points []*Point) {
	d.points = PointList(points).Clone()
	d.reinitialize()
}

func (d *Driver) AddPoint(p *Point) {
	d.points = append(d.points, p)
	d.reinitialize()
}

// Remove the most recently added point. Returns false if there were none.
func (d *Driver) RemoveLast() bool {
	if len(d.points) == 0 {
		return false
	}
	d.points = d.points[:len(d.points)-1]
	d.reinitialize()
	return true
}

func (d *Driver) Reset() {
	d.points = nil
	d.reinitialize()
}

func (d *Driver) reinitialize() {
	d.started = false
	d.engine.Initialize(d.points)
}

func (d *Driver) Started() bool {
	return d.started
}

// Start a fresh run over the current points.
func (d *Driver) Start() error {
	if len(d.points) < 3 {
		return ErrTooFewPoints
	}
	d.engine.Initialize(d.points)
	d.started = true
	return nil
}

// Advance the run by one step and return the resulting snapshot.
func (d *Driver) Tick() (Snapshot, error) {
	if !d.started {
		return Snapshot{}, ErrNotStarted
	}
	var err error
	func() {
		defer func() {
			err = HandleHullPanicRecover(recover())
		}()
		d.engine.Step()
	}()
	if err != nil {
		d.started = false
		return Snapshot{}, err
	}
	return d.engine.Snapshot(), nil
}

// Start a run and step it once per interval until it completes, calling frame
// with the initial snapshot and then after every step. Returns early if the
// context is cancelled or frame returns an error. An interval of zero steps as
// fast as possible.
func (d *Driver) Run(ctx context.Context, interval time.Duration, frame func(Snapshot) error) error {
	if err := d.Start(); err != nil {
		return err
	}
	snapshot := d.engine.Snapshot()
	if err := frame(snapshot); err != nil {
		return err
	}

	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for !snapshot.Done {
		if err := ctx.Err(); err != nil {
			return err
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}

		var err error
		snapshot, err = d.Tick()
		if err != nil {
			return err
		}
		if err := frame(snapshot); err != nil {
			return err
		}
	}
	return nil
}
