package fog

import "github.com/Carmen-Shannon/oxy-showroom/common"

// FogOption is a functional option for configuring a VolumetricFog.
// Use the With* functions to create options.
type FogOption func(f *volumetricFog)

// WithColor sets the fog tint.
//
// Parameters:
//   - hex: 0xRRGGBB colour
//
// Returns:
//   - FogOption: option function to apply
func WithColor(hex uint32) FogOption {
	return func(f *volumetricFog) {
		f.color = common.HexColor(hex)
	}
}

// WithDensity sets the peak opacity before noise modulation.
//
// Parameters:
//   - density: peak density, typically in (0, 1]
//
// Returns:
//   - FogOption: option function to apply
func WithDensity(density float32) FogOption {
	return func(f *volumetricFog) {
		f.params.density = density
	}
}

// WithHeight sets the cylinder height.
//
// Parameters:
//   - height: height in world units
//
// Returns:
//   - FogOption: option function to apply
func WithHeight(height float32) FogOption {
	return func(f *volumetricFog) {
		f.params.height = height
	}
}

// WithRadius sets the cylinder radius; density reaches zero at this distance from the axis.
//
// Parameters:
//   - radius: radius in world units
//
// Returns:
//   - FogOption: option function to apply
func WithRadius(radius float32) FogOption {
	return func(f *volumetricFog) {
		f.params.radius = radius
	}
}

// WithNoise sets the noise frequency, modulation strength and drift speed.
//
// Parameters:
//   - scale: world-to-noise coordinate scale
//   - strength: modulation range, density is scaled between 1-strength and 1+strength
//   - animationSpeed: drift speed of the noise field
//
// Returns:
//   - FogOption: option function to apply
func WithNoise(scale, strength, animationSpeed float32) FogOption {
	return func(f *volumetricFog) {
		f.params.noiseScale = scale
		f.params.noiseStrength = strength
		f.params.noiseAnimationSpeed = animationSpeed
	}
}

// WithSegments sets the cylinder tessellation.
func WithSegments(radial, height int) FogOption {
	return func(f *volumetricFog) {
		f.radialSegments = radial
		f.heightSegments = height
	}
}
