package player

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-showroom/common"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestConstrain(t *testing.T) {
	tests := []struct {
		name string
		in   [3]float32
		want [3]float32
	}{
		{"outside on +X", [3]float32{11, 0, 0}, [3]float32{9.6, 0, 0}},
		{"outside keeps height", [3]float32{0, 2.5, -20}, [3]float32{0, 2.5, -9.6}},
		{"inside untouched", [3]float32{3, 1, -4}, [3]float32{3, 1, -4}},
		{"on the limit untouched", [3]float32{9.6, 0, 0}, [3]float32{9.6, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Constrain(tt.in, 10, 0.4)
			for i := range 3 {
				assert.InDelta(t, tt.want[i], got[i], 1e-5)
			}
		})
	}
}

func TestConstrainPreservesAngle(t *testing.T) {
	got := Constrain([3]float32{30, 0, 40}, 10, 0.4)
	assert.InDelta(t, 9.6, math32.Hypot(got[0], got[2]), 1e-5)
	assert.InDelta(t, math32.Atan2(40, 30), math32.Atan2(got[2], got[0]), 1e-5)
}

func TestConstrainIdempotent(t *testing.T) {
	rng := common.NewRNG(3)
	for range 1000 {
		p := [3]float32{rng.Range(-50, 50), rng.Range(-1, 5), rng.Range(-50, 50)}
		once := Constrain(p, 10, 0.4)
		assert.Equal(t, once, Constrain(once, 10, 0.4))
		assert.LessOrEqual(t, math32.Hypot(once[0], once[2]), float32(9.6*(1+boundaryTolerance)))
	}
}

func TestConstrainDegenerateRadius(t *testing.T) {
	assert.Equal(t, [3]float32{0, 1, 0}, Constrain([3]float32{5, 1, 5}, 0.4, 0.4))
}
