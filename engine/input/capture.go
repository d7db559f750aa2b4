package input

// Capture is a handle to exclusive pointer input. While held, pointer motion arrives as
// unbounded relative deltas and the cursor is hidden.
type Capture interface {
	// Acquire requests exclusive pointer input.
	Acquire()

	// Release gives exclusive pointer input back to the host.
	Release()

	// Held reports whether exclusive pointer input is currently held.
	Held() bool
}
