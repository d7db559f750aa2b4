package player

// LocomotionOption is a functional option for configuring a Locomotion.
// Use the With* functions to create options.
type LocomotionOption func(l *locomotion)

// WithMoveSpeed sets the horizontal speed in units per second.
//
// Parameters:
//   - speed: horizontal speed
//
// Returns:
//   - LocomotionOption: option function to apply
func WithMoveSpeed(speed float32) LocomotionOption {
	return func(l *locomotion) {
		l.moveSpeed = speed
	}
}

// WithJumpForce sets the vertical take-off speed.
//
// Parameters:
//   - force: initial upward velocity in units per second
//
// Returns:
//   - LocomotionOption: option function to apply
func WithJumpForce(force float32) LocomotionOption {
	return func(l *locomotion) {
		l.jumpForce = force
	}
}

// WithGravity sets the downward acceleration applied while airborne.
//
// Parameters:
//   - gravity: acceleration in units per second squared
//
// Returns:
//   - LocomotionOption: option function to apply
func WithGravity(gravity float32) LocomotionOption {
	return func(l *locomotion) {
		l.gravity = gravity
	}
}

// WithGroundLevel sets the height of the floor. The body starts on it unless WithPosition is given.
//
// Parameters:
//   - level: floor height
//
// Returns:
//   - LocomotionOption: option function to apply
func WithGroundLevel(level float32) LocomotionOption {
	return func(l *locomotion) {
		l.groundLevel = level
	}
}

// WithPosition sets the starting position.
//
// Parameters:
//   - position: the starting position
//
// Returns:
//   - LocomotionOption: option function to apply
func WithPosition(position [3]float32) LocomotionOption {
	return func(l *locomotion) {
		l.position = position
		l.positionSet = true
	}
}
