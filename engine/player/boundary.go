package player

import "github.com/chewxy/math32"

// boundaryTolerance is the relative slack allowed past the effective radius before a
// position is pulled back, so float32 round-off on an already-clamped point is not re-clamped.
const boundaryTolerance = 1e-5

// Constrain keeps a body of the given radius inside a circular wall centred on the world
// origin. When the horizontal distance exceeds wallRadius-playerRadius, x and z are moved
// onto that circle along the same polar angle. The vertical component is never touched.
//
// Parameters:
//   - position: the body's position
//   - wallRadius: radius of the circular wall
//   - playerRadius: radius of the body
//
// Returns:
//   - [3]float32: the constrained position
func Constrain(position [3]float32, wallRadius, playerRadius float32) [3]float32 {
	limit := wallRadius - playerRadius
	if limit <= 0 {
		return [3]float32{0, position[1], 0}
	}

	dist := math32.Hypot(position[0], position[2])
	if dist <= limit*(1+boundaryTolerance) {
		return position
	}

	angle := math32.Atan2(position[2], position[0])
	s, c := math32.Sincos(angle)
	return [3]float32{c * limit, position[1], s * limit}
}
