package ecs_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/bindery/ecs"
)

func TestLogWorldSummary(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	w := ecs.NewWorld()
	e := w.CreateEntity()
	_, err := ecs.Bind(w, e, Position{X: 1})
	require.NoError(t, err)
	_, err = ecs.Bind(w, e, Velocity{})
	require.NoError(t, err)
	require.True(t, ecs.Release[Velocity](w, e))

	ecs.LogWorld(&logger, w, zerolog.InfoLevel)

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))

	assert.Equal(t, float64(2), event["entities_issued"])
	assert.Equal(t, float64(2), event["component_types"])

	components, ok := event["components"].([]any)
	require.True(t, ok)
	require.Len(t, components, 2)

	// Sorted by type name: Position before Velocity.
	first := components[0].(map[string]any)
	assert.Equal(t, "ecs_test.Position", first["component"])
	assert.Equal(t, float64(1), first["bindings"])
	assert.Equal(t, float64(0), first["pooled"])

	second := components[1].(map[string]any)
	assert.Equal(t, "ecs_test.Velocity", second["component"])
	assert.Equal(t, float64(0), second["bindings"])
	assert.Equal(t, float64(1), second["pooled"])
}

func TestWithLoggerEmitsLifecycleEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	w := ecs.NewWorld(ecs.WithLogger(logger))
	e := w.CreateEntity()
	_, err := ecs.Bind(w, e, Position{})
	require.NoError(t, err)
	require.True(t, ecs.Release[Position](w, e))

	out := buf.String()
	assert.Contains(t, out, "entity created")
	assert.Contains(t, out, "component bound")
	assert.Contains(t, out, "component released")
	assert.Contains(t, out, `"entity_id":2`)
}
