package telemetry

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"beyondthesea/internal/ocean"
)

func TestRecorder_CountsEvents(t *testing.T) {
	r, err := New(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	bus := ocean.NewEventBus()
	w, err := ocean.NewWorld(ocean.DefaultConfig(), ocean.Options{Events: bus, Log: zerolog.Nop()})
	require.NoError(t, err)
	r.Attach(bus, w)

	scenes := ocean.NewScenes(w, bus, zerolog.Nop())
	ctx := context.Background()
	keys := []ocean.SceneKeys{{}, {Start: true}, {}, {}, {Restart: true}}
	for _, k := range keys {
		scenes.Update(k, ocean.Controls{Thrust: true}, 100)
		r.Frame(ctx, 100, scenes.State)
	}

	st := r.Stats()
	assert.Equal(t, int64(len(keys)), st.Frames)
	assert.Equal(t, int64(2), st.SceneChanges) // title, play
	assert.Equal(t, int64(2), st.Resets)       // start, restart
	assert.Equal(t, int64(1), st.BearingChanges)
}

func TestRecorder_GlobalMeter(t *testing.T) {
	r, err := New(Meter())
	require.NoError(t, err)
	r.Attach(nil, nil)
	r.Frame(context.Background(), 16, ocean.ScenePlay)
	assert.Equal(t, int64(1), r.Stats().Frames)
}
