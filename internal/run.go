package internal

// Run an engine to completion and return the hull. Internal invariant failures
// come back as errors rather than panics.
func RunToCompletion(engine Engine, points []*Point) (hull []*Point, err error) {
	defer func() {
		recoveredErr := HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			hull = nil
			err = recoveredErr
		}
	}()

	engine.Initialize(points)
	for !engine.Step() {
	}
	return engine.Snapshot().Hull, nil
}

// Record every snapshot of a run, starting with the state right after
// Initialize. The last snapshot is always done. Useful for replaying a run
// frame by frame.
func Trace(engine Engine, points []*Point) (snapshots []Snapshot, err error) {
	defer func() {
		recoveredErr := HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()

	engine.Initialize(points)
	snapshots = append(snapshots, engine.Snapshot())
	for !snapshots[len(snapshots)-1].Done {
		engine.Step()
		snapshots = append(snapshots, engine.Snapshot())
	}
	return snapshots, nil
}
