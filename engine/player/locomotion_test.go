package player

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = float32(0.016)

func TestJumpArc(t *testing.T) {
	l := NewLocomotion(WithGravity(25), WithJumpForce(8), WithGroundLevel(0))
	require.Equal(t, Grounded, l.State())
	require.True(t, l.CanJump())

	l.Update(frame, 0, Intent{Jump: true})
	require.Equal(t, Airborne, l.State())
	assert.False(t, l.CanJump())
	assert.Equal(t, float32(8), l.Velocity()[1])

	peak := l.Position()[1]
	airtime := frame
	prevVY := l.Velocity()[1]
	for range 1000 {
		// Holding jump while airborne does nothing extra.
		l.Update(frame, 0, Intent{Jump: true})
		airtime += frame
		peak = max(peak, l.Position()[1])
		if l.State() == Grounded {
			break
		}
		assert.InDelta(t, prevVY-25*frame, l.Velocity()[1], 1e-4, "gravity is applied once per airborne tick")
		prevVY = l.Velocity()[1]
	}

	require.Equal(t, Grounded, l.State())
	assert.True(t, l.CanJump())
	assert.Equal(t, float32(0), l.Position()[1])
	assert.Equal(t, float32(0), l.Velocity()[1])
	assert.InDelta(t, 1.28, peak, 0.15)
	assert.InDelta(t, 0.64, airtime, 0.05)
}

func TestJumpIgnoredWhileAirborne(t *testing.T) {
	l := NewLocomotion(WithPosition([3]float32{0, 3, 0}))
	l.Update(frame, 0, Intent{Jump: true})
	assert.Equal(t, Airborne, l.State())
	assert.Less(t, l.Velocity()[1], float32(0), "falling body does not get a jump impulse")
}

func TestLandingClampsToGround(t *testing.T) {
	l := NewLocomotion(WithGroundLevel(1), WithPosition([3]float32{0, 1.05, 0}))
	for range 60 {
		l.Update(frame, 0, Intent{})
		assert.GreaterOrEqual(t, l.Position()[1], float32(1))
	}
	assert.Equal(t, Grounded, l.State())
	assert.Equal(t, float32(1), l.Position()[1])
}

func TestMovementBasisFollowsYaw(t *testing.T) {
	tests := []struct {
		name   string
		yaw    float32
		intent Intent
		dir    [3]float32
	}{
		{"forward at zero yaw", 0, Intent{Forward: true}, [3]float32{0, 0, -1}},
		{"right at zero yaw", 0, Intent{Right: true}, [3]float32{1, 0, 0}},
		{"backward at half turn", math32.Pi, Intent{Backward: true}, [3]float32{0, 0, -1}},
		{"forward after quarter turn", math32.Pi / 2, Intent{Forward: true}, [3]float32{-1, 0, 0}},
		{"joystick forward", 0, Intent{AxisY: 0.5}, [3]float32{0, 0, -1}},
		{"joystick right", 0, Intent{AxisX: 1}, [3]float32{1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocomotion(WithMoveSpeed(4))
			l.Update(0.5, tt.yaw, tt.intent)
			pos := l.Position()
			for i := range 3 {
				assert.InDelta(t, tt.dir[i]*2, pos[i], 1e-5)
			}
		})
	}
}

func TestDiagonalMovementIsNormalized(t *testing.T) {
	l := NewLocomotion(WithMoveSpeed(5))
	l.Update(frame, 0, Intent{Forward: true, Right: true, AxisY: 1})
	v := l.Velocity()
	assert.InDelta(t, 5, math32.Hypot(v[0], v[2]), 1e-5)
}

func TestOpposingKeysCancel(t *testing.T) {
	l := NewLocomotion()
	l.Update(frame, 0.3, Intent{Forward: true, Backward: true, Left: true, Right: true})
	assert.Equal(t, [3]float32{0, 0, 0}, l.Velocity())
	assert.Equal(t, [3]float32{0, 0, 0}, l.Position())
}

func TestFacingPointsAwayFromMotion(t *testing.T) {
	l := NewLocomotion()
	l.Update(frame, 0, Intent{Forward: true})
	// Moving toward -Z gives atan2(0, -5) + pi.
	assert.InDelta(t, 2*math32.Pi, l.Facing(), 1e-5)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "grounded", Grounded.String())
	assert.Equal(t, "airborne", Airborne.String())
}
