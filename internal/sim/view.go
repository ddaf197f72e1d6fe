package sim

// Event reports one executed step to the view.
type Event struct {
	// Index is the 1-based step number.
	Index int
	// Total is the number of steps in the scenario.
	Total int
	// Action names the executed action (emit, swap, detach, attach, notify,
	// expect).
	Action string
	// Detail is a short human-readable description of what happened.
	Detail string
	// Err is set when the step failed; the run stops after a failed step.
	Err error
}

// View renders the progress of a scenario run. Begin is called once before
// the first step, OnStep once per executed step in order, and End exactly
// once after the last delivered event, with the run error if any.
type View interface {
	Begin(name string, total int)
	OnStep(ev Event)
	End(err error) error
}
