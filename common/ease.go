package common

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}

// Smoothstep performs Hermite interpolation between 0 and 1 as x moves from edge0 to edge1.
// It matches the WGSL builtin of the same name.
//
// Parameters:
//   - edge0: lower edge
//   - edge1: upper edge
//   - x: input value
//
// Returns:
//   - float32: 0 below edge0, 1 above edge1, smooth in between
func Smoothstep(edge0, edge1, x float32) float32 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// Mix linearly interpolates between a and b by t.
func Mix(a, b, t float32) float32 {
	return a + (b-a)*t
}

// EaseOutQuad maps t in [0, 1] onto a decelerating curve with the same endpoints.
func EaseOutQuad(t float32) float32 {
	return t * (2 - t)
}
