package simlog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"go.trai.ch/tether/internal/simlog"
)

func TestPrettyHandler_FormatsAttrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := new(bytes.Buffer)
	log := slog.New(simlog.NewPrettyHandler(buf, slog.LevelInfo))

	log.Info("binding bound", "binding", "b-1", "path", "Probe.Gauge.Reading")

	out := buf.String()
	assert.Contains(t, out, "binding bound")
	assert.Contains(t, out, "binding=b-1")
	assert.Contains(t, out, "path=Probe.Gauge.Reading")
}

func TestPrettyHandler_GroupPrefixesKeys(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := new(bytes.Buffer)
	log := slog.New(simlog.NewPrettyHandler(buf, slog.LevelInfo)).WithGroup("bind")

	log.Warn("slow rebind", "elapsed", "5ms")

	assert.Contains(t, buf.String(), "bind.elapsed=5ms")
}

func TestLogger_LevelSwitch(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := new(bytes.Buffer)
	log := simlog.New(buf)

	log.Slog().Debug("hidden")
	assert.Empty(t, buf.String())

	log.SetLevel(slog.LevelDebug)
	log.Slog().Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestLogger_ErrorRendersChain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := new(bytes.Buffer)
	log := simlog.New(buf)

	inner := zerr.New("field not found")
	middle := zerr.Wrap(inner, "rebind failed")
	outer := zerr.Wrap(middle, "scenario execution failed")

	log.Error(outer)

	out := buf.String()
	assert.Contains(t, out, "Error: scenario execution failed")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ rebind failed")
	assert.Contains(t, out, "→ field not found")

	require.NotPanics(t, func() { log.Error(nil) })
	assert.Equal(t, out, buf.String())
}
