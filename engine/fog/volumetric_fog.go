package fog

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-showroom/common"
	"github.com/Carmen-Shannon/oxy-showroom/engine/scene"
)

// Default fog parameters.
const (
	DefaultColor               = 0xbbbbbb
	DefaultDensity             = 0.35
	DefaultHeight              = 0.25
	DefaultRadius              = 0.75
	DefaultNoiseScale          = 4.0
	DefaultNoiseStrength       = 0.3
	DefaultNoiseAnimationSpeed = 0.1
	DefaultRadialSegments      = 32
	DefaultHeightSegments      = 16
)

// VolumetricFog draws one shared cylinder mesh at many placements. Each instance is a
// low-lying fog disc whose opacity falls off radially and towards the top and bottom,
// broken up by slowly drifting simplex noise.
type VolumetricFog interface {
	scene.Visual

	// SetInstanceTransform places instance index at the ground point with a uniform scale
	// and no rotation. Out-of-range indices are ignored.
	//
	// Parameters:
	//   - index: instance slot in [0, InstanceCount())
	//   - ground: world position of the cylinder's base centre
	//   - scale: uniform scale factor
	SetInstanceTransform(index int, ground [3]float32, scale float32)

	// InstanceTransform returns the model matrix of instance index, or identity when out of range.
	InstanceTransform(index int) [16]float32

	// InstanceCount returns the number of instance slots.
	InstanceCount() int

	// Update advances the noise animation clock. Non-positive deltas are ignored.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last update in seconds
	Update(deltaTime float32)

	// Time returns the accumulated animation time in seconds.
	Time() float32

	// Density returns the fragment opacity at a point, mirroring the fog shader.
	//
	// Parameters:
	//   - local: position in the unscaled volume space, base at y=0
	//   - world: the same point in world space
	//
	// Returns:
	//   - float32: opacity in [0, 1]
	Density(local, world [3]float32) float32

	// Mesh returns the shared cylinder geometry.
	Mesh() Mesh

	// Uniform returns the current shader parameters.
	Uniform() GPUFogUniform

	// InstanceBytes returns a copy of the instance matrices laid out for InstanceLayout.
	InstanceBytes() []byte

	// Dispose detaches the volume from its scene and releases its buffers. Idempotent.
	Dispose()

	// Disposed reports whether Dispose has been called.
	Disposed() bool
}

type volumetricFog struct {
	mu *sync.Mutex

	sc       scene.Scene
	visible  bool
	disposed bool

	color          [3]float32
	params         densityParams
	radialSegments int
	heightSegments int

	mesh      Mesh
	instances []GPUFogInstance
}

var _ VolumetricFog = &volumetricFog{}

// NewVolumetricFog creates a fog volume with instanceCount slots, all set to identity,
// and attaches it to sc when sc is non-nil.
//
// Parameters:
//   - sc: the scene to attach to, may be nil
//   - instanceCount: number of instance slots
//   - options: functional options to configure the fog
//
// Returns:
//   - VolumetricFog: the new fog volume
func NewVolumetricFog(sc scene.Scene, instanceCount int, options ...FogOption) VolumetricFog {
	f := &volumetricFog{
		mu:      &sync.Mutex{},
		sc:      sc,
		visible: true,
		color:   common.HexColor(DefaultColor),
		params: densityParams{
			density:             DefaultDensity,
			height:              DefaultHeight,
			radius:              DefaultRadius,
			noiseScale:          DefaultNoiseScale,
			noiseStrength:       DefaultNoiseStrength,
			noiseAnimationSpeed: DefaultNoiseAnimationSpeed,
		},
		radialSegments: DefaultRadialSegments,
		heightSegments: DefaultHeightSegments,
	}

	for _, option := range options {
		option(f)
	}

	f.mesh = newCylinderMesh(f.params.radius, f.params.height, f.radialSegments, f.heightSegments)
	f.instances = make([]GPUFogInstance, max(instanceCount, 0))
	for i := range f.instances {
		common.Identity(f.instances[i].Model[:])
	}

	if f.sc != nil {
		f.sc.Add(f)
	}

	return f
}

func (f *volumetricFog) SetInstanceTransform(index int, ground [3]float32, scale float32) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if index < 0 || index >= len(f.instances) {
		return
	}
	common.TranslateScale(f.instances[index].Model[:], ground, scale)
}

func (f *volumetricFog) InstanceTransform(index int) [16]float32 {
	f.mu.Lock()
	defer f.mu.Unlock()

	if index < 0 || index >= len(f.instances) {
		var m [16]float32
		common.Identity(m[:])
		return m
	}
	return f.instances[index].Model
}

func (f *volumetricFog) InstanceCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.instances)
}

func (f *volumetricFog) Update(deltaTime float32) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.disposed || deltaTime <= 0 {
		return
	}
	f.params.time += deltaTime
}

func (f *volumetricFog) Time() float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.params.time
}

func (f *volumetricFog) Density(local, world [3]float32) float32 {
	f.mu.Lock()
	p := f.params
	f.mu.Unlock()
	return p.alpha(local, world)
}

func (f *volumetricFog) Mesh() Mesh {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mesh
}

func (f *volumetricFog) Uniform() GPUFogUniform {
	f.mu.Lock()
	defer f.mu.Unlock()
	return GPUFogUniform{
		Color:               f.color,
		Density:             f.params.density,
		Height:              f.params.height,
		Radius:              f.params.radius,
		NoiseScale:          f.params.noiseScale,
		NoiseStrength:       f.params.noiseStrength,
		NoiseAnimationSpeed: f.params.noiseAnimationSpeed,
		Time:                f.params.time,
	}
}

func (f *volumetricFog) InstanceBytes() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]byte(nil), common.SliceToBytes(f.instances)...)
}

func (f *volumetricFog) Dispose() {
	f.mu.Lock()
	if f.disposed {
		f.mu.Unlock()
		return
	}
	f.disposed = true
	f.instances = nil
	f.mesh = Mesh{}
	sc := f.sc
	f.sc = nil
	f.mu.Unlock()

	if sc != nil {
		sc.Remove(f)
	}
}

func (f *volumetricFog) Disposed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.disposed
}

func (f *volumetricFog) Label() string {
	return "volumetric_fog"
}

func (f *volumetricFog) Visible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visible
}

func (f *volumetricFog) SetVisible(visible bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visible = visible
}
