package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-showroom/engine/profiler"
	"github.com/Carmen-Shannon/oxy-showroom/engine/window"
)

// engine runs the simulation tick on its own goroutine while the caller's thread pumps the window.
type engine struct {
	tickRateChannel chan time.Duration // pending rate change for a running loop

	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	engineTickRate time.Duration
	maxDelta       time.Duration
	ticks          atomic.Uint64
	tickCallback   func(deltaTime float32)
	quitCallback   func()
}

// Engine drives the showroom: a fixed-rate tick loop plus, when a window is attached, the
// window message loop on the thread that calls Run.
type Engine interface {
	// Window returns the underlying window, or nil when running headless.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler turns on the once-per-second profiler log line.
	EnableProfiler()

	// DisableProfiler turns the profiler log line off.
	DisableProfiler()

	// SetTickRate changes the tick rate, taking effect on the next tick when running.
	//
	// Parameters:
	//   - fps: ticks per second, 60 when non-positive
	SetTickRate(fps float64)

	// SetTickCallback replaces the simulation step. Must be set before Run.
	SetTickCallback(callback func(deltaTime float32))

	// SetQuitCallback registers the function called once after the tick loop has stopped.
	// Must be set before Run.
	//
	// Parameters:
	//   - callback: function to call on shutdown
	SetQuitCallback(callback func())

	// Run starts the engine. With a window it runs the message loop on the calling goroutine
	// until the window closes; without one it blocks until Quit is called.
	Run()

	// Quit signals all engine goroutines to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()

	// Ticks returns how many times the tick loop has fired.
	Ticks() uint64
}

// DefaultMaxDelta is the largest delta passed to the tick callback unless WithMaxDelta overrides it.
const DefaultMaxDelta = 100 * time.Millisecond

// NewEngine creates a stopped engine ticking at 60Hz with deltas capped at DefaultMaxDelta.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, window)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		wg:              sync.WaitGroup{},
		profiler:        profiler.NewProfiler(),
		engineTickRate:  time.Second / 60,
		maxDelta:        DefaultMaxDelta,
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	e.handle()

	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	}

	e.wg.Wait()
	if e.quitCallback != nil {
		e.quitCallback()
	}
}

func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel exactly once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running.Store(false)
		close(e.quitChannel)
	})
}

// handle launches the engine and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.running.Store(true)
	e.wg.Add(2)
	go e.handleEngine()
	go e.handleQuit()
}

// handleEngine fires the tick callback until quit, applying rate changes as they arrive.
// A panicking tick is logged and shuts the engine down.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] tick panicked, shutting down: %v", r)
			e.signalQuit()
		}
	}()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			elapsed := now.Sub(lastTick)
			lastTick = now
			if e.maxDelta > 0 {
				elapsed = min(elapsed, e.maxDelta)
			}

			if e.tickCallback != nil {
				e.tickCallback(float32(elapsed.Seconds()))
			}
			e.ticks.Add(1)

			if e.profilingEnabled.Load() && e.profiler != nil {
				e.profiler.Tick()
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// handleQuit keeps Run's WaitGroup open until quit.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

func (e *engine) SetTickRate(fps float64) {
	newRate := tickInterval(fps)

	if e.running.Load() {
		// replace a rate the loop has not picked up yet
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate = newRate
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetQuitCallback(callback func()) {
	e.quitCallback = callback
}

func (e *engine) Ticks() uint64 {
	return e.ticks.Load()
}

// tickInterval converts a rate to a ticker period, treating non-positive rates as 60Hz.
func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}
