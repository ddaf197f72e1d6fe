// Package simview renders scenario progress: a progrock tape with one vertex
// per step for interactive terminals, or plain chronological lines for CI and
// pipes. The mode is picked by environment detection and overridable by flag.
package simview

import (
	"os"

	"golang.org/x/term"
)

// Mode selects how scenario progress is rendered.
type Mode int

const (
	// ModeAuto detects the appropriate mode from the environment.
	ModeAuto Mode = iota
	// ModeTape forces the progrock tape view.
	ModeTape
	// ModeLinear forces plain chronological output.
	ModeLinear
)

// Detect returns the recommended mode: the tape view on an interactive
// terminal, linear output when stdout is not a TTY or a CI variable is set.
func Detect() Mode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeTape
}

// ResolveMode applies a user override flag to the auto-detected mode.
// userFlag should be one of: "auto", "on", "off", or empty.
func ResolveMode(autoDetected Mode, userFlag string) Mode {
	switch userFlag {
	case "on":
		return ModeTape
	case "off":
		return ModeLinear
	case "auto", "":
		return autoDetected
	default:
		return autoDetected
	}
}
