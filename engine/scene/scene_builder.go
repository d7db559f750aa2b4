package scene

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithVisuals attaches initial visuals to the scene in order.
//
// Parameters:
//   - visuals: the visuals to attach
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithVisuals(visuals ...Visual) SceneBuilderOption {
	return func(s *scene) {
		for _, v := range visuals {
			s.add(v)
		}
	}
}
