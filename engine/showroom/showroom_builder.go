package showroom

import (
	"github.com/Carmen-Shannon/oxy-showroom/common"
	"github.com/Carmen-Shannon/oxy-showroom/engine/game_object"
	"github.com/Carmen-Shannon/oxy-showroom/engine/input"
)

// ShowroomBuilderOption is a functional option for configuring a Showroom.
// Use the With* functions to create options.
type ShowroomBuilderOption func(*showroom)

// WithLoader sets the loader product models are requested from. Without one every product
// gets a placeholder.
//
// Parameters:
//   - loader: the model loader
//
// Returns:
//   - ShowroomBuilderOption: option function to apply
func WithLoader(loader game_object.ModelLoader) ShowroomBuilderOption {
	return func(s *showroom) {
		s.loader = loader
	}
}

// WithPresenter sets where product details are shown. Presenters that also implement
// Prompter receive the interaction hint.
//
// Parameters:
//   - presenter: the info presenter
//
// Returns:
//   - ShowroomBuilderOption: option function to apply
func WithPresenter(presenter game_object.InfoPresenter) ShowroomBuilderOption {
	return func(s *showroom) {
		s.presenter = presenter
	}
}

// WithCapture sets the pointer capture handle the first-person view uses.
func WithCapture(capture input.Capture) ShowroomBuilderOption {
	return func(s *showroom) {
		s.capture = capture
	}
}

// WithInput sets the input service. A default service is created otherwise.
func WithInput(service input.Service) ShowroomBuilderOption {
	return func(s *showroom) {
		s.input = service
	}
}

// WithJoystick sets an on-screen joystick whose input is fed to the input service each frame.
func WithJoystick(joystick *input.VirtualJoystick) ShowroomBuilderOption {
	return func(s *showroom) {
		s.joystick = joystick
	}
}

// WithRNG seeds every product's smoke from rng.
func WithRNG(rng *common.RNG) ShowroomBuilderOption {
	return func(s *showroom) {
		s.rng = rng
	}
}

// WithAspect sets the initial camera aspect ratio.
//
// Parameters:
//   - aspect: width divided by height, ignored when not positive
//
// Returns:
//   - ShowroomBuilderOption: option function to apply
func WithAspect(aspect float32) ShowroomBuilderOption {
	return func(s *showroom) {
		if aspect > 0 {
			s.aspect = aspect
		}
	}
}
