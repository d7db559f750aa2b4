package camera

import "github.com/Carmen-Shannon/oxy-showroom/engine/scene"

// Avatar is the player's own visual, hidden while looking through its eyes.
type Avatar interface {
	scene.Visual

	// SetRotation sets the avatar's Euler rotation in radians.
	SetRotation(rx, ry, rz float32)
}

// FirstPersonView accumulates mouse and touch look input into yaw and pitch and places a
// Camera at the player's eyes. Pointer motion only counts while the view is enabled and
// holds exclusive pointer capture; touch drags only need the view enabled.
// Thread-safe for concurrent access: event methods are called from the window thread
// while Update runs on the simulation goroutine.
type FirstPersonView interface {
	// Enable activates the view and hides the avatar, remembering its previous visibility.
	Enable()

	// Disable deactivates the view and restores the avatar's visibility. Motion arriving
	// after this call is discarded.
	Disable()

	// Enabled reports whether the view is active.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// RequestCapture asks for exclusive pointer input. Ignored while disabled or when
	// capture is already held.
	RequestCapture()

	// ReleaseCapture gives up exclusive pointer input if held.
	ReleaseCapture()

	// Captured reports whether exclusive pointer input is currently held.
	//
	// Returns:
	//   - bool: true if held
	Captured() bool

	// OnPointerMotion applies a relative pointer movement in pixels.
	//
	// Parameters:
	//   - dx: horizontal movement, positive to the right
	//   - dy: vertical movement, positive downward
	OnPointerMotion(dx, dy float32)

	// OnTouchDrag applies a touch drag delta in pixels.
	//
	// Parameters:
	//   - dx: horizontal movement, positive to the right
	//   - dy: vertical movement, positive downward
	OnTouchDrag(dx, dy float32)

	// Look returns the accumulated yaw and pitch in radians.
	//
	// Returns:
	//   - yaw: rotation about world Y
	//   - pitch: rotation about the local X axis
	Look() (yaw, pitch float32)

	// SetLook overwrites the look angles, clamping pitch.
	//
	// Parameters:
	//   - yaw: rotation about world Y in radians
	//   - pitch: rotation about the local X axis in radians
	SetLook(yaw, pitch float32)

	// LookYaw returns the yaw movement should be relative to: the accumulated yaw while
	// enabled, zero otherwise.
	//
	// Returns:
	//   - float32: yaw in radians
	LookYaw() float32

	// Update turns the avatar to the current yaw and places the camera at eye height above
	// the player position. Does nothing while disabled.
	//
	// Parameters:
	//   - x, y, z: the player's feet position
	//
	// Returns:
	//   - float32: the yaw applied, or zero while disabled
	Update(x, y, z float32) float32

	// Camera returns the camera driven by this view.
	//
	// Returns:
	//   - Camera: the driven camera
	Camera() Camera
}
