// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tether/internal/simlog"
	_ "go.trai.ch/tether/internal/simview"
	// Register app and engine nodes.
	_ "go.trai.ch/tether/internal/app"
	_ "go.trai.ch/tether/internal/sim"
)
