package fog

import (
	"github.com/Carmen-Shannon/oxy-showroom/common"
	"github.com/chewxy/math32"
)

// densityParams is the subset of fog state the density model reads.
type densityParams struct {
	density             float32
	height              float32
	radius              float32
	noiseScale          float32
	noiseStrength       float32
	noiseAnimationSpeed float32
	time                float32
}

// alpha evaluates the fog opacity at a point given in the volume's local space (base at
// y=0, axis through the origin) and in world space.
func (p densityParams) alpha(local, world [3]float32) float32 {
	dist := math32.Hypot(local[0], local[2])
	radial := 1 - common.Smoothstep(0, p.radius, dist)

	var vertical float32
	if p.height > 0 {
		vertical = common.Smoothstep(0, 1, 1-math32.Abs(local[1]/p.height-0.5)*2)
	}

	d := radial * vertical * p.density

	nx := world[0]*p.noiseScale + p.time*p.noiseAnimationSpeed*0.1
	ny := world[1]*p.noiseScale + p.time*p.noiseAnimationSpeed*0.2
	nz := world[2] * p.noiseScale
	n := common.Simplex3(nx, ny, nz)*0.5 + 0.5

	d *= common.Mix(1-p.noiseStrength, 1+p.noiseStrength, n)
	return common.Clamp(d, 0, 1)
}
