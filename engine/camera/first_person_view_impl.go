package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-showroom/common"
	"github.com/Carmen-Shannon/oxy-showroom/engine/input"
	"github.com/chewxy/math32"
)

// Default look tuning.
const (
	DefaultEyeHeight        = 1.6
	DefaultMouseSensitivity = 0.002
	DefaultTouchSensitivity = 0.005
	pitchMargin             = 0.01
)

// PitchLimit is the largest absolute pitch the view allows, just short of straight up or down.
const PitchLimit = math32.Pi/2 - pitchMargin

type firstPersonView struct {
	mu *sync.Mutex

	cam     Camera
	capture input.Capture
	avatar  Avatar

	enabled          bool
	avatarWasVisible bool
	yaw              float32
	pitch            float32
	eyeHeight        float32
	mouseSensitivity float32
	touchSensitivity float32
}

// Compile-time interface compliance check
var _ FirstPersonView = &firstPersonView{}

// NewFirstPersonView creates a disabled view driving cam.
// Panics if cam is nil.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the view
//
// Returns:
//   - FirstPersonView: the newly created view
func NewFirstPersonView(cam Camera, options ...FirstPersonViewOption) FirstPersonView {
	if cam == nil {
		panic("camera: NewFirstPersonView requires a non-nil Camera")
	}

	v := &firstPersonView{
		mu:               &sync.Mutex{},
		cam:              cam,
		eyeHeight:        DefaultEyeHeight,
		mouseSensitivity: DefaultMouseSensitivity,
		touchSensitivity: DefaultTouchSensitivity,
	}

	for _, option := range options {
		option(v)
	}

	v.pitch = clampPitch(v.pitch)
	return v
}

func clampPitch(pitch float32) float32 {
	return common.Clamp(pitch, -PitchLimit, PitchLimit)
}

func (v *firstPersonView) Enable() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.enabled {
		return
	}
	v.enabled = true
	if v.avatar != nil {
		v.avatarWasVisible = v.avatar.Visible()
		v.avatar.SetVisible(false)
	}
}

func (v *firstPersonView) Disable() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.enabled {
		return
	}
	v.enabled = false
	if v.avatar != nil {
		v.avatar.SetVisible(v.avatarWasVisible)
	}
}

func (v *firstPersonView) Enabled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.enabled
}

func (v *firstPersonView) RequestCapture() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.enabled || v.capture == nil || v.capture.Held() {
		return
	}
	v.capture.Acquire()
}

func (v *firstPersonView) ReleaseCapture() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.capture == nil || !v.capture.Held() {
		return
	}
	v.capture.Release()
}

func (v *firstPersonView) Captured() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.capture != nil && v.capture.Held()
}

func (v *firstPersonView) OnPointerMotion(dx, dy float32) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.enabled || v.capture == nil || !v.capture.Held() {
		return
	}
	v.rotate(dx, dy, v.mouseSensitivity)
}

func (v *firstPersonView) OnTouchDrag(dx, dy float32) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.enabled {
		return
	}
	v.rotate(dx, dy, v.touchSensitivity)
}

// rotate turns the view; moving right or down turns right or down.
// Caller must hold the mutex.
func (v *firstPersonView) rotate(dx, dy, sensitivity float32) {
	v.yaw -= dx * sensitivity
	v.pitch = clampPitch(v.pitch - dy*sensitivity)
}

func (v *firstPersonView) Look() (yaw, pitch float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.yaw, v.pitch
}

func (v *firstPersonView) SetLook(yaw, pitch float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.yaw = yaw
	v.pitch = clampPitch(pitch)
}

func (v *firstPersonView) LookYaw() float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.enabled {
		return 0
	}
	return v.yaw
}

func (v *firstPersonView) Update(x, y, z float32) float32 {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.enabled {
		return 0
	}

	if v.avatar != nil {
		v.avatar.SetRotation(0, v.yaw, 0)
	}
	v.cam.SetPose([3]float32{x, y + v.eyeHeight, z}, v.yaw, v.pitch)
	return v.yaw
}

func (v *firstPersonView) Camera() Camera {
	return v.cam
}
