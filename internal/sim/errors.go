package sim

import "go.trai.ch/zerr"

var (
	// ErrScenarioReadFailed is returned when the scenario file cannot be read.
	ErrScenarioReadFailed = zerr.New("failed to read scenario file")

	// ErrScenarioParseFailed is returned when the scenario file is not valid YAML.
	ErrScenarioParseFailed = zerr.New("failed to parse scenario file")

	// ErrBadVersion is returned for scenario versions the runner does not speak.
	ErrBadVersion = zerr.New("unsupported scenario version")

	// ErrMissingPath is returned when the bind declaration names no path.
	ErrMissingPath = zerr.New("scenario bind has no path")

	// ErrNoSteps is returned for a scenario without steps.
	ErrNoSteps = zerr.New("scenario has no steps")

	// ErrUnknownStep is returned when a step carries no recognized action, or
	// more than one.
	ErrUnknownStep = zerr.New("step must carry exactly one action")

	// ErrUnknownLink is returned when a swap, detach or attach step names a
	// link the rig does not have.
	ErrUnknownLink = zerr.New("unknown rig link")

	// ErrMissingExpectation is returned when an expect step asserts nothing.
	ErrMissingExpectation = zerr.New("expect step asserts nothing")

	// ErrExpectationFailed is returned when the rig does not match an expect
	// step at run time.
	ErrExpectationFailed = zerr.New("expectation failed")
)
