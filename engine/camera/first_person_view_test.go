package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-showroom/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCapture struct {
	held     bool
	acquires int
	releases int
}

func (f *fakeCapture) Acquire() { f.held = true; f.acquires++ }
func (f *fakeCapture) Release() { f.held = false; f.releases++ }
func (f *fakeCapture) Held() bool {
	return f.held
}

func newTestView(t *testing.T, options ...FirstPersonViewOption) (FirstPersonView, *fakeCapture, scene.Node) {
	t.Helper()
	capture := &fakeCapture{}
	avatar := scene.NewNode("player")
	options = append([]FirstPersonViewOption{WithCapture(capture), WithAvatar(avatar)}, options...)
	return NewFirstPersonView(NewCamera(), options...), capture, avatar
}

func TestEnableHidesAndDisableRestoresAvatar(t *testing.T) {
	v, _, avatar := newTestView(t)
	require.True(t, avatar.Visible())

	v.Enable()
	assert.True(t, v.Enabled())
	assert.False(t, avatar.Visible())

	v.Enable()
	v.Disable()
	assert.True(t, avatar.Visible())

	avatar.SetVisible(false)
	v.Enable()
	v.Disable()
	assert.False(t, avatar.Visible(), "restores the visibility it found, not a constant")
}

func TestCaptureLifecycle(t *testing.T) {
	v, capture, _ := newTestView(t)

	v.RequestCapture()
	assert.False(t, v.Captured(), "disabled view does not capture")

	v.Enable()
	v.RequestCapture()
	v.RequestCapture()
	assert.True(t, v.Captured())
	assert.Equal(t, 1, capture.acquires)

	v.ReleaseCapture()
	v.ReleaseCapture()
	assert.False(t, v.Captured())
	assert.Equal(t, 1, capture.releases)
}

func TestPointerMotionRequiresEnabledAndCaptured(t *testing.T) {
	v, _, _ := newTestView(t)

	v.OnPointerMotion(100, 100)
	yaw, pitch := v.Look()
	assert.Zero(t, yaw)
	assert.Zero(t, pitch)

	v.Enable()
	v.OnPointerMotion(100, 100)
	yaw, _ = v.Look()
	assert.Zero(t, yaw, "uncaptured motion is ignored")

	v.RequestCapture()
	v.OnPointerMotion(100, 50)
	yaw, pitch = v.Look()
	assert.InDelta(t, -0.2, yaw, 1e-6)
	assert.InDelta(t, -0.1, pitch, 1e-6)

	v.Disable()
	v.OnPointerMotion(100, 50)
	yaw2, _ := v.Look()
	assert.Equal(t, yaw, yaw2, "motion after disable is discarded")
}

func TestPitchIsClamped(t *testing.T) {
	v, _, _ := newTestView(t)
	v.Enable()
	v.RequestCapture()

	v.OnPointerMotion(0, -1e6)
	_, pitch := v.Look()
	assert.Equal(t, PitchLimit, pitch)
	assert.Less(t, pitch, float32(1.5708))

	v.OnPointerMotion(0, 2e6)
	_, pitch = v.Look()
	assert.Equal(t, -PitchLimit, pitch)

	v.SetLook(1, 10)
	_, pitch = v.Look()
	assert.Equal(t, PitchLimit, pitch)

	clamped := NewFirstPersonView(NewCamera(), WithLook(0, -5))
	_, pitch = clamped.Look()
	assert.Equal(t, -PitchLimit, pitch)
}

func TestTouchDragOnlyNeedsEnabled(t *testing.T) {
	v, _, _ := newTestView(t, WithTouchSensitivity(0.01))
	v.OnTouchDrag(10, 0)
	yaw, _ := v.Look()
	assert.Zero(t, yaw)

	v.Enable()
	v.OnTouchDrag(10, 0)
	yaw, _ = v.Look()
	assert.InDelta(t, -0.1, yaw, 1e-6)
}

func TestUpdatePlacesCameraAtEyeHeight(t *testing.T) {
	v, _, avatar := newTestView(t, WithEyeHeight(1.6), WithLook(0.5, 0.2))

	assert.Zero(t, v.Update(1, 0, 2), "disabled update returns zero")
	assert.Zero(t, v.LookYaw())
	x, y, z := v.Camera().Position()
	assert.Equal(t, [3]float32{0, 0, 0}, [3]float32{x, y, z})

	v.Enable()
	assert.Equal(t, float32(0.5), v.LookYaw())
	assert.Equal(t, float32(0.5), v.Update(1, 0, 2))

	x, y, z = v.Camera().Position()
	assert.Equal(t, [3]float32{1, 1.6, 2}, [3]float32{x, y, z})
	yaw, pitch := v.Camera().Orientation()
	assert.Equal(t, float32(0.5), yaw)
	assert.Equal(t, float32(0.2), pitch)

	_, ry, _ := avatar.Rotation()
	assert.Equal(t, float32(0.5), ry)
}

func TestNewFirstPersonViewPanicsWithoutCamera(t *testing.T) {
	assert.Panics(t, func() { NewFirstPersonView(nil) })
}
