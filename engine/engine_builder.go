package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-showroom/engine/profiler"
	"github.com/Carmen-Shannon/oxy-showroom/engine/window"
)

// EngineBuilderOption configures an engine before Run.
type EngineBuilderOption func(*engine)

// WithProfiling starts the engine with profiler output on or off.
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled.Store(enabled)
	}
}

// WithProfilerStats appends a caller-supplied summary to every profiler log line.
//
// Parameters:
//   - stats: function returning the summary, called from the tick goroutine
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfilerStats(stats func() string) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = profiler.NewProfiler(profiler.WithStats(stats))
	}
}

// WithTickRate sets how many times per second the tick callback runs. Non-positive rates mean 60.
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.engineTickRate = tickInterval(fps)
	}
}

// WithMaxDelta caps the delta handed to the tick callback so a stalled process does not
// advance the simulation in one large step. Zero disables the cap.
//
// Parameters:
//   - d: the largest delta delivered
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithMaxDelta(d time.Duration) EngineBuilderOption {
	return func(e *engine) {
		e.maxDelta = max(d, 0)
	}
}

// WithWindow attaches a window whose message loop Run drives. Without one the engine runs headless.
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithTickCallback registers the simulation step, called with the delta time in seconds.
func WithTickCallback(callback func(deltaTime float32)) EngineBuilderOption {
	return func(e *engine) {
		e.tickCallback = callback
	}
}
