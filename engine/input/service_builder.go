package input

import "maps"

// ServiceOption is a functional option for configuring a Service.
type ServiceOption func(s *service)

// WithBindings replaces the default key bindings.
//
// Parameters:
//   - bindings: key code to action map
//
// Returns:
//   - ServiceOption: option function to apply
func WithBindings(bindings map[uint32]Action) ServiceOption {
	return func(s *service) {
		s.bindings = maps.Clone(bindings)
	}
}
