package input

import (
	"maps"
	"sync"

	"github.com/Carmen-Shannon/oxy-showroom/common"
)

// Service collects key and joystick events as they arrive and publishes them as one
// Snapshot per frame. Event methods may be called from the window thread while Refresh
// runs on the simulation goroutine.
type Service interface {
	// KeyDown records a key press. Unbound keys are ignored.
	//
	// Parameters:
	//   - keyCode: the platform key code
	KeyDown(keyCode uint32)

	// KeyUp records a key release. Unbound keys are ignored.
	//
	// Parameters:
	//   - keyCode: the platform key code
	KeyUp(keyCode uint32)

	// SetAxis records analogue movement input, clamped to [-1, 1] per axis.
	//
	// Parameters:
	//   - x: strafe input, positive to the right
	//   - y: forward input, positive forward
	SetAxis(x, y float32)

	// Bind maps a key code to an action, replacing any existing binding for that key.
	//
	// Parameters:
	//   - keyCode: the platform key code
	//   - action: the action it drives
	Bind(keyCode uint32, action Action)

	// Reset releases every held action and zeroes the axis.
	Reset()

	// Refresh publishes the current state. Call once per frame.
	//
	// Returns:
	//   - Snapshot: the state at this frame boundary
	Refresh() Snapshot
}

type service struct {
	mu *sync.Mutex

	bindings map[uint32]Action
	held     map[uint32]bool
	tapped   map[uint32]bool
	axisX    float32
	axisY    float32

	last map[Action]bool
}

var _ Service = &service{}

// NewService creates an input service with the default bindings.
//
// Parameters:
//   - options: functional options to configure the service
//
// Returns:
//   - Service: the new input service
func NewService(options ...ServiceOption) Service {
	s := &service{
		mu:       &sync.Mutex{},
		bindings: DefaultBindings(),
		held:     make(map[uint32]bool),
		tapped:   make(map[uint32]bool),
		last:     make(map[Action]bool),
	}

	for _, option := range options {
		option(s)
	}

	return s
}

func (s *service) KeyDown(keyCode uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bindings[keyCode]; ok {
		s.held[keyCode] = true
		s.tapped[keyCode] = true
	}
}

func (s *service) KeyUp(keyCode uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.held, keyCode)
}

func (s *service) SetAxis(x, y float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.axisX = common.Clamp(x, -1, 1)
	s.axisY = common.Clamp(y, -1, 1)
}

func (s *service) Bind(keyCode uint32, action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings[keyCode] = action
}

func (s *service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.held)
	clear(s.tapped)
	s.axisX, s.axisY = 0, 0
}

func (s *service) Refresh() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A key pressed and released between refreshes still counts for one frame.
	pressed := make(map[Action]bool, len(s.held))
	for _, keys := range []map[uint32]bool{s.held, s.tapped} {
		for code := range keys {
			if a, ok := s.bindings[code]; ok {
				pressed[a] = true
			}
		}
	}
	clear(s.tapped)

	snap := Snapshot{
		pressed:  pressed,
		previous: s.last,
		axisX:    s.axisX,
		axisY:    s.axisY,
	}
	s.last = maps.Clone(pressed)
	return snap
}
