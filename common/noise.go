package common

import "github.com/chewxy/math32"

// Simplex3 evaluates 3D simplex noise at (x, y, z) using the permutation-polynomial hash
// (Gustavson / McEwan). It is deterministic, continuous and returns values in roughly [-1, 1].
// The arithmetic mirrors the snoise function in the fog shader so CPU and GPU agree.
//
// Parameters:
//   - x, y, z: sample coordinate
//
// Returns:
//   - float32: noise value in approximately [-1, 1]
func Simplex3(x, y, z float32) float32 {
	const (
		g1 = float32(1.0 / 6.0)
		g2 = float32(1.0 / 3.0)
	)

	// First corner
	s := (x + y + z) * g2
	i := math32.Floor(x + s)
	j := math32.Floor(y + s)
	k := math32.Floor(z + s)
	t := (i + j + k) * g1
	x0 := [3]float32{x - i + t, y - j + t, z - k + t}

	// Other corners
	gx := step(x0[1], x0[0])
	gy := step(x0[2], x0[1])
	gz := step(x0[0], x0[2])
	lx, ly, lz := 1-gx, 1-gy, 1-gz

	o1 := [3]float32{min(gx, lz), min(gy, lx), min(gz, ly)}
	o2 := [3]float32{max(gx, lz), max(gy, lx), max(gz, ly)}
	o3 := [3]float32{1, 1, 1}

	corners := [4][3]float32{
		x0,
		{x0[0] - o1[0] + g1, x0[1] - o1[1] + g1, x0[2] - o1[2] + g1},
		{x0[0] - o2[0] + g2, x0[1] - o2[1] + g2, x0[2] - o2[2] + g2},
		{x0[0] - 0.5, x0[1] - 0.5, x0[2] - 0.5},
	}
	offsets := [4][3]float32{{}, o1, o2, o3}

	i, j, k = mod289(i), mod289(j), mod289(k)

	// ns = (2/7, 0.5/7 - 1, 1/7)
	const (
		nsX = float32(2.0 / 7.0)
		nsY = float32(0.5/7.0 - 1.0)
		nsZ = float32(1.0 / 7.0)
	)

	var sum float32
	for c := range 4 {
		off := offsets[c]
		p := permute(permute(permute(k+off[2])+j+off[1]) + i + off[0])

		// Gradients: 7x7 points over a square, mapped onto an octahedron.
		jj := p - 49*math32.Floor(p*nsZ*nsZ)
		xf := math32.Floor(jj * nsZ)
		yf := math32.Floor(jj - 7*xf)
		gradX := xf*nsX + nsY
		gradY := yf*nsX + nsY
		h := 1 - math32.Abs(gradX) - math32.Abs(gradY)

		var sh float32
		if h <= 0 {
			sh = -1
		}
		grad := [3]float32{
			gradX + (math32.Floor(gradX)*2+1)*sh,
			gradY + (math32.Floor(gradY)*2+1)*sh,
			h,
		}

		norm := taylorInvSqrt(dot3(grad, grad))
		grad[0] *= norm
		grad[1] *= norm
		grad[2] *= norm

		d := corners[c]
		m := max(0.6-dot3(d, d), 0)
		m *= m
		sum += m * m * dot3(grad, d)
	}
	return 42 * sum
}

func step(edge, v float32) float32 {
	if v >= edge {
		return 1
	}
	return 0
}

func mod289(v float32) float32 {
	return v - math32.Floor(v*(1.0/289.0))*289
}

func permute(v float32) float32 {
	return mod289((v*34 + 1) * v)
}

func taylorInvSqrt(r float32) float32 {
	return 1.79284291400159 - 0.85373472090949*r
}

func dot3(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
