package player

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-showroom/common"
	"github.com/chewxy/math32"
)

// State is the vertical locomotion state.
type State int

const (
	// Grounded means the body stands on the ground plane and may jump.
	Grounded State = iota
	// Airborne means the body is rising or falling under gravity.
	Airborne
)

func (s State) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	default:
		return "unknown"
	}
}

// Default locomotion tuning.
const (
	DefaultMoveSpeed   = 5.0
	DefaultJumpForce   = 8.0
	DefaultGravity     = 25.0
	DefaultGroundLevel = 0.0
)

// Intent is one frame of movement input. Keys and the joystick axes are summed.
type Intent struct {
	Forward, Backward, Left, Right bool
	Jump                           bool

	// AxisX is strafe input in [-1, 1], positive to the right.
	AxisX float32
	// AxisY is forward input in [-1, 1], positive forward.
	AxisY float32
}

// Locomotion moves a body across the showroom floor relative to a yaw angle and runs the
// Grounded/Airborne jump cycle.
// Thread-safe for concurrent access.
type Locomotion interface {
	// Update advances the body by one frame.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last update in seconds
	//   - yaw: heading the movement basis is built from, in radians
	//   - intent: the frame's movement input
	Update(deltaTime, yaw float32, intent Intent)

	// Position returns the body's position.
	Position() [3]float32

	// SetPosition teleports the body. A grounded body placed above the ground starts falling on the next update.
	SetPosition(position [3]float32)

	// Velocity returns the velocity used in the last update.
	Velocity() [3]float32

	// State returns the vertical state.
	State() State

	// CanJump reports whether a jump request would be honoured.
	CanJump() bool

	// Facing returns the heading of the last non-zero horizontal movement, for a third-person avatar.
	Facing() float32
}

type locomotion struct {
	mu *sync.Mutex

	moveSpeed   float32
	jumpForce   float32
	gravity     float32
	groundLevel float32

	position    [3]float32
	positionSet bool
	velocity    [3]float32
	state       State
	canJump     bool
	facing      float32
}

var _ Locomotion = &locomotion{}

// NewLocomotion creates a grounded body at the origin with jumping available.
//
// Parameters:
//   - options: functional options to configure the locomotion
//
// Returns:
//   - Locomotion: the new locomotion state machine
func NewLocomotion(options ...LocomotionOption) Locomotion {
	l := &locomotion{
		mu:          &sync.Mutex{},
		moveSpeed:   DefaultMoveSpeed,
		jumpForce:   DefaultJumpForce,
		gravity:     DefaultGravity,
		groundLevel: DefaultGroundLevel,
		state:       Grounded,
		canJump:     true,
	}

	for _, option := range options {
		option(l)
	}

	if !l.positionSet {
		l.position[1] = l.groundLevel
	}

	return l
}

func (l *locomotion) Update(deltaTime, yaw float32, intent Intent) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == Grounded && l.position[1] > l.groundLevel {
		l.state = Airborne
	}

	switch {
	case l.state == Grounded && intent.Jump && l.canJump:
		l.velocity[1] = l.jumpForce
		l.state = Airborne
		l.canJump = false
	case l.state == Airborne:
		l.velocity[1] -= l.gravity * deltaTime
	}

	forward, right := common.YawBasis(yaw)
	var dir [3]float32
	add := func(v [3]float32, k float32) {
		dir[0] += v[0] * k
		dir[2] += v[2] * k
	}
	if intent.Forward {
		add(forward, 1)
	}
	if intent.Backward {
		add(forward, -1)
	}
	if intent.Right {
		add(right, 1)
	}
	if intent.Left {
		add(right, -1)
	}
	add(forward, intent.AxisY)
	add(right, intent.AxisX)

	if length := common.HorizontalLength(dir); length > 0 {
		l.velocity[0] = dir[0] / length * l.moveSpeed
		l.velocity[2] = dir[2] / length * l.moveSpeed
		l.facing = math32.Atan2(l.velocity[0], l.velocity[2]) + math32.Pi
	} else {
		l.velocity[0], l.velocity[2] = 0, 0
	}

	l.position[0] += l.velocity[0] * deltaTime
	l.position[1] += l.velocity[1] * deltaTime
	l.position[2] += l.velocity[2] * deltaTime

	if l.state == Airborne && l.position[1] <= l.groundLevel {
		l.position[1] = l.groundLevel
		l.velocity[1] = max(l.velocity[1], 0)
		l.state = Grounded
		l.canJump = true
	}
}

func (l *locomotion) Position() [3]float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.position
}

func (l *locomotion) SetPosition(position [3]float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.position = position
}

func (l *locomotion) Velocity() [3]float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.velocity
}

func (l *locomotion) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *locomotion) CanJump() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.canJump
}

func (l *locomotion) Facing() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.facing
}
