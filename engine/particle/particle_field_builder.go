package particle

import (
	"github.com/Carmen-Shannon/oxy-showroom/common"
	"github.com/Carmen-Shannon/oxy-showroom/engine/scene"
)

// ParticleFieldOption is a functional option for configuring a ParticleField.
// Use the With* functions to create options.
type ParticleFieldOption func(f *particleField)

// WithScene attaches the field to sc on construction and detaches it on Dispose.
//
// Parameters:
//   - sc: the scene to attach to
//
// Returns:
//   - ParticleFieldOption: option function to apply
func WithScene(sc scene.Scene) ParticleFieldOption {
	return func(f *particleField) {
		f.sc = sc
	}
}

// WithRNG sets the random source used for spawning. Defaults to a clock-seeded RNG.
// The field takes ownership; do not share an RNG between fields updated concurrently.
//
// Parameters:
//   - rng: the random source
//
// Returns:
//   - ParticleFieldOption: option function to apply
func WithRNG(rng *common.RNG) ParticleFieldOption {
	return func(f *particleField) {
		f.rng = rng
	}
}

// WithCount sets the fixed pool size.
//
// Parameters:
//   - count: number of particles
//
// Returns:
//   - ParticleFieldOption: option function to apply
func WithCount(count int) ParticleFieldOption {
	return func(f *particleField) {
		f.count = count
	}
}

// WithAreaRadius sets the radius of the spawn disc.
//
// Parameters:
//   - radius: disc radius in world units
//
// Returns:
//   - ParticleFieldOption: option function to apply
func WithAreaRadius(radius float32) ParticleFieldOption {
	return func(f *particleField) {
		f.areaRadius = radius
	}
}

// WithBaseSize sets the nominal sprite size; each spawn draws between half and one and a half times it.
//
// Parameters:
//   - size: nominal size in world units
//
// Returns:
//   - ParticleFieldOption: option function to apply
func WithBaseSize(size float32) ParticleFieldOption {
	return func(f *particleField) {
		f.baseSize = size
	}
}

// WithMaxLife sets the nominal lifetime; each spawn draws between 0.75 and 1.25 times it.
//
// Parameters:
//   - seconds: nominal lifetime in seconds
//
// Returns:
//   - ParticleFieldOption: option function to apply
func WithMaxLife(seconds float32) ParticleFieldOption {
	return func(f *particleField) {
		f.maxLife = seconds
	}
}

// WithVerticalOffset sets the spawn height relative to the anchor.
//
// Parameters:
//   - offset: vertical offset in world units
//
// Returns:
//   - ParticleFieldOption: option function to apply
func WithVerticalOffset(offset float32) ParticleFieldOption {
	return func(f *particleField) {
		f.verticalOffset = offset
	}
}

// WithUpwardSpeed sets the nominal rise speed.
func WithUpwardSpeed(speed float32) ParticleFieldOption {
	return func(f *particleField) {
		f.upwardSpeed = speed
	}
}

// WithSpreadSpeed sets the maximum horizontal drift speed.
func WithSpreadSpeed(speed float32) ParticleFieldOption {
	return func(f *particleField) {
		f.spreadSpeed = speed
	}
}

// WithEnvelope sets the life fractions spent expanding and fading.
// peak + fadeStart must not exceed 1.
//
// Parameters:
//   - peak: fraction of life spent expanding
//   - fadeStart: remaining-life ratio at which fading begins
//
// Returns:
//   - ParticleFieldOption: option function to apply
func WithEnvelope(peak, fadeStart float32) ParticleFieldOption {
	return func(f *particleField) {
		f.peakExpansion = peak
		f.fadeStart = fadeStart
	}
}

// WithAppearance sets the sprite tint and opacity.
//
// Parameters:
//   - color: 0xRRGGBB tint
//   - opacity: sprite opacity in [0, 1]
//
// Returns:
//   - ParticleFieldOption: option function to apply
func WithAppearance(color uint32, opacity float32) ParticleFieldOption {
	return func(f *particleField) {
		f.color = common.HexColor(color)
		f.opacity = opacity
	}
}
