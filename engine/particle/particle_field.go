package particle

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-showroom/common"
	"github.com/Carmen-Shannon/oxy-showroom/engine/scene"
	"github.com/chewxy/math32"
)

// Tuning constants for product smoke.
const (
	DefaultCount          = 50
	DefaultAreaRadius     = 0.5
	DefaultBaseSize       = 0.1
	DefaultMaxLife        = 3.0
	DefaultVerticalOffset = -0.1
	DefaultUpwardSpeed    = 0.06
	DefaultSpreadSpeed    = 0.05
	DefaultSizeMultiplier = 1.5
	DefaultOpacity        = 0.36
	DefaultColor          = 0xcccccc
)

type particleState struct {
	position [3]float32
	velocity [3]float32
	life     float32
	maxLife  float32
	baseSize float32
	recycles int
}

// ParticleField is a fixed pool of smoke particles that rise and spread from a disc
// around an anchor point, recycling in place when their life runs out.
// The pool never grows or shrinks after construction.
type ParticleField interface {
	scene.Visual

	// Update advances every particle by deltaTime seconds. Expired particles are
	// respawned in the same call instead of being integrated.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last update in seconds
	Update(deltaTime float32)

	// Dispose detaches the field from its scene and releases its buffers.
	// Calling it again has no effect, and Update becomes a no-op.
	Dispose()

	// Disposed reports whether Dispose has been called.
	Disposed() bool

	// Count returns the pool size.
	Count() int

	// Anchor returns the point the spawn disc is centred on.
	Anchor() [3]float32

	// Position returns the world position of particle i.
	Position(i int) [3]float32

	// Life returns the remaining life of particle i in seconds.
	Life(i int) float32

	// MaxLife returns the lifetime particle i was last spawned with.
	MaxLife(i int) float32

	// Size returns the rendered size of particle i from the last update.
	Size(i int) float32

	// RecycleCount returns how many times particle i has been respawned.
	RecycleCount(i int) int

	// TotalRecycles returns the number of respawns across the pool.
	TotalRecycles() int

	// Positions returns a copy of the flat xyz position buffer.
	Positions() []float32

	// Sizes returns a copy of the per-particle size buffer.
	Sizes() []float32

	// Color returns the linear RGB tint of the sprites.
	Color() [3]float32

	// Opacity returns the sprite opacity.
	Opacity() float32
}

type particleField struct {
	mu *sync.Mutex

	sc       scene.Scene
	rng      *common.RNG
	anchor   [3]float32
	visible  bool
	disposed bool

	count          int
	areaRadius     float32
	baseSize       float32
	maxLife        float32
	verticalOffset float32
	upwardSpeed    float32
	spreadSpeed    float32
	peakExpansion  float32
	fadeStart      float32
	sizeMultiplier float32
	color          [3]float32
	opacity        float32

	particles []particleState
	positions []float32
	sizes     []float32
	recycles  int
}

var _ ParticleField = &particleField{}

// NewParticleField creates a smoke field anchored at the given point and seeds every
// particle with a staggered life so the field starts out already billowing.
//
// Parameters:
//   - anchor: centre of the spawn disc
//   - options: functional options to configure the field
//
// Returns:
//   - ParticleField: the new field
func NewParticleField(anchor [3]float32, options ...ParticleFieldOption) ParticleField {
	f := &particleField{
		mu:             &sync.Mutex{},
		anchor:         anchor,
		visible:        true,
		count:          DefaultCount,
		areaRadius:     DefaultAreaRadius,
		baseSize:       DefaultBaseSize,
		maxLife:        DefaultMaxLife,
		verticalOffset: DefaultVerticalOffset,
		upwardSpeed:    DefaultUpwardSpeed,
		spreadSpeed:    DefaultSpreadSpeed,
		peakExpansion:  DefaultPeakExpansion,
		fadeStart:      DefaultFadeStart,
		sizeMultiplier: DefaultSizeMultiplier,
		color:          common.HexColor(DefaultColor),
		opacity:        DefaultOpacity,
	}

	for _, option := range options {
		option(f)
	}

	if f.rng == nil {
		f.rng = common.NewTimeRNG()
	}
	f.count = max(f.count, 0)

	f.particles = make([]particleState, f.count)
	f.positions = make([]float32, f.count*3)
	f.sizes = make([]float32, f.count)

	for i := range f.particles {
		p := &f.particles[i]
		f.respawn(p)
		p.life = f.rng.Float32() * min(p.maxLife, f.maxLife)
		copy(f.positions[i*3:i*3+3], p.position[:])
	}

	if f.sc != nil {
		f.sc.Add(f)
	}

	return f
}

// respawn redraws lifetime, size, disc position and velocity. Life is left to the caller.
func (f *particleField) respawn(p *particleState) {
	p.maxLife = f.maxLife * (0.75 + f.rng.Float32()*0.5)
	p.baseSize = f.baseSize * (0.5 + f.rng.Float32())

	angle := f.rng.Float32() * 2 * math32.Pi
	radius := f.rng.Float32() * f.areaRadius
	s, c := math32.Sincos(angle)
	p.position = [3]float32{
		f.anchor[0] + c*radius,
		f.anchor[1] + f.verticalOffset,
		f.anchor[2] + s*radius,
	}

	p.velocity = [3]float32{
		(f.rng.Float32() - 0.5) * f.spreadSpeed,
		f.upwardSpeed * (0.8 + f.rng.Float32()*0.4),
		(f.rng.Float32() - 0.5) * f.spreadSpeed,
	}
}

func (f *particleField) Update(deltaTime float32) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.disposed {
		return
	}

	for i := range f.particles {
		p := &f.particles[i]
		p.life -= deltaTime

		if p.life <= 0 {
			f.respawn(p)
			p.life = p.maxLife
			p.recycles++
			f.recycles++
		} else {
			p.position[0] += p.velocity[0] * deltaTime
			p.position[1] += p.velocity[1] * deltaTime
			p.position[2] += p.velocity[2] * deltaTime
		}

		ratio := max(p.life/p.maxLife, 0)
		f.sizes[i] = max(p.baseSize*Envelope(ratio, f.peakExpansion, f.fadeStart)*f.sizeMultiplier, 0)
		copy(f.positions[i*3:i*3+3], p.position[:])
	}
}

func (f *particleField) Dispose() {
	f.mu.Lock()
	if f.disposed {
		f.mu.Unlock()
		return
	}
	f.disposed = true
	f.particles = nil
	f.positions = nil
	f.sizes = nil
	sc := f.sc
	f.sc = nil
	f.mu.Unlock()

	// Detach outside the lock; the scene calls back into Visual methods.
	if sc != nil {
		sc.Remove(f)
	}
}

func (f *particleField) Disposed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.disposed
}

func (f *particleField) Label() string {
	return "particle_field"
}

func (f *particleField) Visible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visible
}

func (f *particleField) SetVisible(visible bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visible = visible
}

func (f *particleField) Count() int {
	return f.count
}

func (f *particleField) Anchor() [3]float32 {
	return f.anchor
}

// at returns particle i, or the zero particle when i is out of range or the field is disposed.
// Must be called with the lock held.
func (f *particleField) at(i int) particleState {
	if i < 0 || i >= len(f.particles) {
		return particleState{}
	}
	return f.particles[i]
}

func (f *particleField) Position(i int) [3]float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.at(i).position
}

func (f *particleField) Life(i int) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.at(i).life
}

func (f *particleField) MaxLife(i int) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.at(i).maxLife
}

func (f *particleField) Size(i int) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i < 0 || i >= len(f.sizes) {
		return 0
	}
	return f.sizes[i]
}

func (f *particleField) RecycleCount(i int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.at(i).recycles
}

func (f *particleField) TotalRecycles() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recycles
}

func (f *particleField) Positions() []float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]float32(nil), f.positions...)
}

func (f *particleField) Sizes() []float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]float32(nil), f.sizes...)
}

func (f *particleField) Color() [3]float32 {
	return f.color
}

func (f *particleField) Opacity() float32 {
	return f.opacity
}
