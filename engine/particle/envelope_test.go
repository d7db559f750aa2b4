package particle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelopePhases(t *testing.T) {
	tests := []struct {
		name  string
		ratio float32
		want  float32
	}{
		{"just spawned", 1, 0},
		{"mid expansion", 0.85, 0.75},
		{"expansion boundary", 0.7, 1},
		{"plateau", 0.55, 1},
		{"fade boundary", 0.4, 1},
		{"mid fade", 0.2, 0.5625},
		{"expired", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Envelope(tt.ratio, DefaultPeakExpansion, DefaultFadeStart), 1e-5)
		})
	}
}

func TestEnvelopeNonNegativeAndContinuous(t *testing.T) {
	const steps = 10000
	prev := Envelope(0, DefaultPeakExpansion, DefaultFadeStart)
	for i := 1; i <= steps; i++ {
		ratio := float32(i) / steps
		v := Envelope(ratio, DefaultPeakExpansion, DefaultFadeStart)
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
		assert.InDelta(t, prev, v, 0.01, "jump at ratio %v", ratio)
		prev = v
	}
}

func TestEnvelopeOutOfRangeRatio(t *testing.T) {
	assert.Equal(t, float32(0), Envelope(1.5, DefaultPeakExpansion, DefaultFadeStart))
	assert.Equal(t, float32(0), Envelope(-0.5, DefaultPeakExpansion, DefaultFadeStart))
}
