package game_object

import "github.com/Carmen-Shannon/oxy-showroom/common"

// GameObjectBuilderOption is a functional option for configuring a GameObject.
// Use the With* functions to create options.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the object's identifier.
//
// Parameters:
//   - id: the object ID
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithID(id uint64) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.id = id
	}
}

// WithName sets the display name, also used as the group node label.
//
// Parameters:
//   - name: the display name
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithName(name string) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.name = name
	}
}

// WithEnabled sets whether the object starts enabled.
//
// Parameters:
//   - enabled: whether the object animates and can be interacted with
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.enabled.Store(enabled)
	}
}

// WithPosition sets the resting position of the object's group.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.basePos = [3]float32{x, y, z}
	}
}

// WithScale sets a uniform scale on the object's group.
//
// Parameters:
//   - scale: uniform scale factor
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithScale(scale float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		scale = common.Coalesce(scale, 1)
		g.initialScale = [3]float32{scale, scale, scale}
	}
}

// WithModelURL sets the asset the object's model is loaded from.
func WithModelURL(url string) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.modelURL = url
	}
}

// WithInteraction sets the prompt and the distance at which it appears.
//
// Parameters:
//   - message: prompt shown while in range
//   - distance: interaction radius in world units
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithInteraction(message string, distance float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.interactionMessage = common.Coalesce(message, DefaultInteractionMessage)
		g.interactionDistance = common.Coalesce(distance, DefaultInteractionDistance)
	}
}

// WithDetail sets the information shown on interaction.
func WithDetail(detail Detail) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.detail = detail
	}
}

// WithParticleAreaScale widens or narrows the smoke spawn disc relative to the model.
//
// Parameters:
//   - scale: multiplier on the preset's area factor
//
// Returns:
//   - GameObjectBuilderOption: option function to apply
func WithParticleAreaScale(scale float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.particleAreaScale = common.Coalesce(scale, 1)
	}
}

// WithSmoke replaces the smoke preset.
func WithSmoke(preset SmokePreset) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.smoke = preset
	}
}

// WithRNG sets the random source child smoke fields are seeded from.
func WithRNG(rng *common.RNG) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.rng = rng
	}
}
