package particle

import "github.com/Carmen-Shannon/oxy-showroom/common"

// Default envelope phase boundaries as fractions of a particle's life.
const (
	DefaultPeakExpansion = 0.3
	DefaultFadeStart     = 0.4
)

// Envelope maps a remaining-life ratio to a size scale in [0, 1].
//
// Life runs from ratio 1 (just spawned) down to 0 (expired):
//   - expansion, ratio above 1-peak: grows from 0 to 1
//   - plateau, ratio between fadeStart and 1-peak: holds at 1
//   - fade, ratio at or below fadeStart: shrinks from 1 to 0 with an extra squared falloff
//
// The value is continuous and equals 1 at both phase boundaries.
//
// Parameters:
//   - ratio: remaining life divided by max life
//   - peak: fraction of life spent expanding
//   - fadeStart: ratio at which fading begins
//
// Returns:
//   - float32: the non-negative size scale
func Envelope(ratio, peak, fadeStart float32) float32 {
	var s float32
	fading := false
	switch {
	case ratio > 1-peak:
		s = (1 - ratio) / peak
	case ratio > fadeStart:
		s = 1
	default:
		s = ratio / fadeStart
		fading = true
	}

	s = common.EaseOutQuad(common.Clamp(s, 0, 1))
	if fading {
		s *= s
	}
	return max(s, 0)
}
