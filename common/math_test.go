package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestYawPitchViewInvertsWorldPose(t *testing.T) {
	eye := [3]float32{1.5, 1.6, -3}
	var world, view, product [16]float32
	BuildModelMatrix(world[:], eye[0], eye[1], eye[2], 0.3, -1.1, 0, 1, 1, 1)
	YawPitchView(view[:], eye, -1.1, 0.3)
	Mul4(product[:], view[:], world[:])

	var identity [16]float32
	Identity(identity[:])
	for i := range 16 {
		assert.InDelta(t, identity[i], product[i], 1e-5, "element %d", i)
	}
}

func TestYawBasis(t *testing.T) {
	tests := []struct {
		name    string
		yaw     float32
		forward [3]float32
		right   [3]float32
	}{
		{"zero faces -Z", 0, [3]float32{0, 0, -1}, [3]float32{1, 0, 0}},
		{"quarter turn left faces -X", math32.Pi / 2, [3]float32{-1, 0, 0}, [3]float32{0, 0, -1}},
		{"half turn faces +Z", math32.Pi, [3]float32{0, 0, 1}, [3]float32{-1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forward, right := YawBasis(tt.yaw)
			for i := range 3 {
				assert.InDelta(t, tt.forward[i], forward[i], 1e-6)
				assert.InDelta(t, tt.right[i], right[i], 1e-6)
			}
		})
	}
}

func TestTranslateScale(t *testing.T) {
	var m [16]float32
	TranslateScale(m[:], [3]float32{2, 0, -4}, 1.5)

	assert.Equal(t, float32(1.5), m[0])
	assert.Equal(t, float32(1.5), m[5])
	assert.Equal(t, float32(1.5), m[10])
	assert.Equal(t, [3]float32{2, 0, -4}, [3]float32{m[12], m[13], m[14]})
	assert.Equal(t, float32(1), m[15])
	assert.Zero(t, m[1]+m[2]+m[4]+m[6]+m[8]+m[9])
}

func TestHexColor(t *testing.T) {
	c := HexColor(0xbbbbbb)
	assert.InDelta(t, 187.0/255.0, c[0], 1e-6)
	assert.Equal(t, c[0], c[1])
	assert.Equal(t, c[1], c[2])
	assert.Equal(t, [3]float32{1, 0, 0}, HexColor(0xff0000))
}
