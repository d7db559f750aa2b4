package input

// Snapshot is an immutable view of the input state at a frame boundary.
type Snapshot struct {
	pressed  map[Action]bool
	previous map[Action]bool
	axisX    float32
	axisY    float32
}

// Pressed reports whether the action is held.
func (s Snapshot) Pressed(a Action) bool {
	return s.pressed[a]
}

// JustPressed reports whether the action became held since the previous snapshot.
func (s Snapshot) JustPressed(a Action) bool {
	return s.pressed[a] && !s.previous[a]
}

// Axis returns the analogue movement input: x to the right, y forward, each in [-1, 1].
func (s Snapshot) Axis() (x, y float32) {
	return s.axisX, s.axisY
}
