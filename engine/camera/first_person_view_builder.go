package camera

import "github.com/Carmen-Shannon/oxy-showroom/engine/input"

// FirstPersonViewOption is a functional option for configuring a FirstPersonView.
// Use the With* functions to create options.
type FirstPersonViewOption func(*firstPersonView)

// WithCapture sets the exclusive pointer capture handle. Without one, pointer motion is ignored.
//
// Parameters:
//   - capture: the capture handle
//
// Returns:
//   - FirstPersonViewOption: option function to apply
func WithCapture(capture input.Capture) FirstPersonViewOption {
	return func(v *firstPersonView) {
		v.capture = capture
	}
}

// WithAvatar sets the player visual hidden while the view is enabled.
//
// Parameters:
//   - avatar: the player's visual
//
// Returns:
//   - FirstPersonViewOption: option function to apply
func WithAvatar(avatar Avatar) FirstPersonViewOption {
	return func(v *firstPersonView) {
		v.avatar = avatar
	}
}

// WithEyeHeight sets the camera height above the player's feet.
//
// Parameters:
//   - height: eye height in world units
//
// Returns:
//   - FirstPersonViewOption: option function to apply
func WithEyeHeight(height float32) FirstPersonViewOption {
	return func(v *firstPersonView) {
		v.eyeHeight = height
	}
}

// WithMouseSensitivity sets radians turned per pixel of captured pointer motion.
//
// Parameters:
//   - sensitivity: radians per pixel
//
// Returns:
//   - FirstPersonViewOption: option function to apply
func WithMouseSensitivity(sensitivity float32) FirstPersonViewOption {
	return func(v *firstPersonView) {
		v.mouseSensitivity = sensitivity
	}
}

// WithTouchSensitivity sets radians turned per pixel of touch drag.
//
// Parameters:
//   - sensitivity: radians per pixel
//
// Returns:
//   - FirstPersonViewOption: option function to apply
func WithTouchSensitivity(sensitivity float32) FirstPersonViewOption {
	return func(v *firstPersonView) {
		v.touchSensitivity = sensitivity
	}
}

// WithLook sets the initial yaw and pitch. Pitch is clamped.
//
// Parameters:
//   - yaw: rotation about world Y in radians
//   - pitch: rotation about the local X axis in radians
//
// Returns:
//   - FirstPersonViewOption: option function to apply
func WithLook(yaw, pitch float32) FirstPersonViewOption {
	return func(v *firstPersonView) {
		v.yaw = yaw
		v.pitch = pitch
	}
}
