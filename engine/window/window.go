package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-showroom/engine/input"
)

// Window is the desktop surface the showroom is viewed through. It turns platform input into
// callbacks and owns the cursor capture used for mouse look.
// Callbacks run on the thread that created the window.
type Window interface {
	// SetResizeCallback is called with the new framebuffer size in pixels.
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback is called for key presses and repeats. Escape is delivered like any
	// other key.
	//
	// Parameters:
	//   - callback: function receiving the key code (see common key codes)
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback is called for key releases.
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetMouseMotionCallback sets the callback for relative mouse movement.
	// The first event after a capture change is swallowed so the cursor jump is not reported.
	//
	// Parameters:
	//   - callback: function receiving movement in pixels, positive right and down
	SetMouseMotionCallback(callback func(dx, dy float32))

	// SetClickCallback sets the callback for left mouse button presses.
	//
	// Parameters:
	//   - callback: function receiving the cursor x, y position
	SetClickCallback(callback func(x, y int32))

	// SetFocusCallback sets the callback for focus changes.
	//
	// Parameters:
	//   - callback: function receiving true when the window gains focus
	SetFocusCallback(callback func(focused bool))

	// Capture returns the exclusive pointer capture handle for this window. Acquire and
	// Release may be called from any goroutine; the cursor mode changes on the next message
	// loop iteration.
	//
	// Returns:
	//   - input.Capture: the capture handle
	Capture() input.Capture

	// IsRunning reports whether the window is open and has not been asked to close.
	IsRunning() bool

	// Close destroys the window and shuts the platform layer down. Must run on the window thread.
	//
	// Returns:
	//   - error: error if the window was never created or is already closed
	Close() error

	// ProcessMessages pumps platform events and applies capture changes until the window
	// is closed.
	ProcessMessages()

	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int
}

type engineWindow struct {
	title               string
	minWidth, minHeight int

	// framebuffer size, updated on resize
	width, height int

	// platform state (*glfwWindow)
	internalWindow any

	// capture records the requested cursor mode until the message loop applies it.
	capture *cursorCapture

	// rawMotion requests unaccelerated motion while captured.
	rawMotion bool

	onResize      func(width, height int)
	onKeyDown     func(keyCode uint32)
	onKeyUp       func(keyCode uint32)
	onMouseMotion func(dx, dy float32)
	onClick       func(x, y int32)
	onFocus       func(focused bool)
}

var _ Window = &engineWindow{}

// NewWindow opens a 1280x720 window titled "Showroom" unless options say otherwise.
// Panics if the platform window cannot be created.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the open window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:     "Showroom",
		minWidth:  600,
		minHeight: 200,
		width:     1280,
		height:    720,
		capture:   newCursorCapture(),
		rawMotion: true,
	}
	for _, option := range options {
		option(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	w.capture.wake = platformWake
	return w
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetMouseMotionCallback(callback func(dx, dy float32)) {
	w.onMouseMotion = callback
}

func (w *engineWindow) SetClickCallback(callback func(x, y int32)) {
	w.onClick = callback
}

func (w *engineWindow) SetFocusCallback(callback func(focused bool)) {
	w.onFocus = callback
}

func (w *engineWindow) Capture() input.Capture {
	return w.capture
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if !platformProcessMessages(w) {
			break
		}
		if want, changed := w.capture.pending(); changed {
			platformSetCursorCaptured(w, want)
		}
		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
