package telemetry

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"beyondthesea/internal/ocean"
)

const instrumentationName = "beyondthesea"

// Meter returns the global meter (no-op unless a provider is installed).
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Stats is an in-process summary of a session.
type Stats struct {
	Frames         int64
	Resets         int64
	BearingChanges int64
	SceneChanges   int64
}

// Recorder turns world events and frame timings into metrics.
type Recorder struct {
	frames    metric.Int64Counter
	frameTime metric.Float64Histogram
	resets    metric.Int64Counter
	bearings  metric.Int64Counter
	scenes    metric.Int64Counter
	ledger    metric.Float64ObservableGauge

	mu    sync.RWMutex
	world *ocean.World

	nFrames, nResets, nBearings, nScenes atomic.Int64
}

// New registers the instruments on m.
func New(m metric.Meter) (*Recorder, error) {
	r := &Recorder{}
	var err error

	r.frames, err = m.Int64Counter(
		"sea.frames",
		metric.WithDescription("Simulated frames"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frames counter: %w", err)
	}

	r.frameTime, err = m.Float64Histogram(
		"sea.frame.duration",
		metric.WithDescription("Frame delta as reported by the driver"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frame histogram: %w", err)
	}

	r.resets, err = m.Int64Counter(
		"sea.resets",
		metric.WithDescription("World resets"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resets counter: %w", err)
	}

	r.bearings, err = m.Int64Counter(
		"sea.bearing.changes",
		metric.WithDescription("Changes of travel direction"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating bearing counter: %w", err)
	}

	r.scenes, err = m.Int64Counter(
		"sea.scene.changes",
		metric.WithDescription("Scene transitions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating scene counter: %w", err)
	}

	r.ledger, err = m.Float64ObservableGauge(
		"sea.ledger.distance",
		metric.WithDescription("Signed cumulative travel per axis"),
		metric.WithUnit("px"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ledger gauge: %w", err)
	}

	_, err = m.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			r.mu.RLock()
			defer r.mu.RUnlock()
			if r.world == nil {
				return nil
			}
			l := r.world.Ledger
			o.ObserveFloat64(r.ledger, l.NorthSouth, metric.WithAttributes(attribute.String("axis", "ns")))
			o.ObserveFloat64(r.ledger, l.EastWest, metric.WithAttributes(attribute.String("axis", "ew")))
			return nil
		},
		r.ledger,
	)
	if err != nil {
		return nil, fmt.Errorf("registering ledger callback: %w", err)
	}

	return r, nil
}

// Attach subscribes to bus and observes w's ledger. Either may be nil.
func (r *Recorder) Attach(bus *ocean.EventBus, w *ocean.World) {
	r.mu.Lock()
	r.world = w
	r.mu.Unlock()
	if bus == nil {
		return
	}

	ctx := context.Background()
	bus.Subscribe(ocean.EventReset, func(ocean.Event) {
		r.nResets.Add(1)
		r.resets.Add(ctx, 1)
	})
	bus.Subscribe(ocean.EventBearingChanged, func(e ocean.Event) {
		r.nBearings.Add(1)
		r.bearings.Add(ctx, 1, metric.WithAttributes(attribute.String("bearing", e.Bearing.String())))
	})
	bus.Subscribe(ocean.EventSceneChanged, func(e ocean.Event) {
		r.nScenes.Add(1)
		r.scenes.Add(ctx, 1, metric.WithAttributes(attribute.String("scene", e.Scene.String())))
	})
}

// Frame records one simulated frame.
func (r *Recorder) Frame(ctx context.Context, deltaMillis float64, scene ocean.SceneState) {
	r.nFrames.Add(1)
	attrs := metric.WithAttributes(attribute.String("scene", scene.String()))
	r.frames.Add(ctx, 1, attrs)
	r.frameTime.Record(ctx, deltaMillis, attrs)
}

func (r *Recorder) Stats() Stats {
	return Stats{
		Frames:         r.nFrames.Load(),
		Resets:         r.nResets.Load(),
		BearingChanges: r.nBearings.Load(),
		SceneChanges:   r.nScenes.Load(),
	}
}
