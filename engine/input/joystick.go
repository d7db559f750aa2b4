package input

import (
	"sync"

	"github.com/chewxy/math32"
)

// Default on-screen joystick tuning.
const (
	DefaultJoystickMaxDistance = 50
	DefaultJoystickDeadzone    = 0.2
)

// VirtualJoystick turns a touch drag into analogue movement input. The knob follows the
// finger up to MaxDistance pixels from where the touch started.
// Thread-safe for concurrent access.
type VirtualJoystick struct {
	mu *sync.Mutex

	maxDistance float32
	deadzone    float32

	active  bool
	originX float32
	originY float32
	knobX   float32
	knobY   float32
}

// NewVirtualJoystick creates a joystick.
//
// Parameters:
//   - maxDistance: knob travel in pixels, defaults to DefaultJoystickMaxDistance when <= 0
//   - deadzone: normalized magnitude below which input is zero, in [0, 1)
//
// Returns:
//   - *VirtualJoystick: the new joystick
func NewVirtualJoystick(maxDistance, deadzone float32) *VirtualJoystick {
	if maxDistance <= 0 {
		maxDistance = DefaultJoystickMaxDistance
	}
	return &VirtualJoystick{
		mu:          &sync.Mutex{},
		maxDistance: maxDistance,
		deadzone:    max(deadzone, 0),
	}
}

// Start begins tracking a touch at the given screen position.
func (j *VirtualJoystick) Start(x, y float32) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.active = true
	j.originX, j.originY = x, y
	j.knobX, j.knobY = 0, 0
}

// Move updates the knob for the touch's new screen position. Ignored when no touch is active.
func (j *VirtualJoystick) Move(x, y float32) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if !j.active {
		return
	}

	dx, dy := x-j.originX, y-j.originY
	if dist := math32.Hypot(dx, dy); dist > j.maxDistance {
		dx *= j.maxDistance / dist
		dy *= j.maxDistance / dist
	}
	j.knobX, j.knobY = dx, dy
}

// End stops tracking and recentres the knob.
func (j *VirtualJoystick) End() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.active = false
	j.knobX, j.knobY = 0, 0
}

// Active reports whether a touch is being tracked.
func (j *VirtualJoystick) Active() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.active
}

// Knob returns the knob offset in pixels from the touch origin.
func (j *VirtualJoystick) Knob() (dx, dy float32) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.knobX, j.knobY
}

// Input returns movement input in [-1, 1]: x to the right and y forward (screen up).
// Magnitudes inside the deadzone read as zero.
func (j *VirtualJoystick) Input() (x, y float32) {
	j.mu.Lock()
	defer j.mu.Unlock()

	x = j.knobX / j.maxDistance
	y = -j.knobY / j.maxDistance
	if math32.Hypot(x, y) < j.deadzone {
		return 0, 0
	}
	return x, y
}
