package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/tether/internal/app"
	_ "go.trai.ch/tether/internal/wiring"
)

// TestGraftGraphResolves executes the full node graph and checks that the
// components come out assembled.
func TestGraftGraphResolves(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)

	require.NotNil(t, components)
	assert.NotNil(t, components.App)
	assert.NotNil(t, components.Logger)
}
