package game_object

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-showroom/common"
	"github.com/Carmen-Shannon/oxy-showroom/engine/particle"
	"github.com/Carmen-Shannon/oxy-showroom/engine/scene"
	"github.com/chewxy/math32"
)

// Hover animation and interaction defaults.
const (
	DefaultInteractionDistance = 2.5
	DefaultInteractionMessage  = "Press E to interact"
	DefaultSpinSpeed           = 0.5  // radians per second
	DefaultBobAmplitude        = 0.05 // world units
	DefaultBobFrequency        = 2.0  // radians per second
)

// SmokePreset derives a product's ParticleField from its model's bounding size.
type SmokePreset struct {
	Count          int
	AreaFactor     float32 // spawn radius per unit of model width
	SizeFactor     float32 // sprite size per unit of model height
	MaxLife        float32
	VerticalOffset float32
}

// DefaultSmokePreset is the product smoke used when none is configured.
func DefaultSmokePreset() SmokePreset {
	return SmokePreset{
		Count:          84,
		AreaFactor:     0.78,
		SizeFactor:     0.08,
		MaxLife:        2.5 / 1.4,
		VerticalOffset: 0,
	}
}

// Detail is the information shown when a product is interacted with.
type Detail struct {
	Title    string
	Content  string
	ImageURL string
}

// Empty reports whether there is nothing to show.
func (d Detail) Empty() bool {
	return d.Title == "" && d.Content == "" && d.ImageURL == ""
}

// InfoPresenter shows and hides product details, typically as an on-screen panel.
type InfoPresenter interface {
	ShowInfo(detail Detail)
	HideInfo()
}

// ModelLoader fetches a model asynchronously. Exactly one of onReady or onError is
// called, possibly from another goroutine.
type ModelLoader interface {
	Load(url string, onReady func(model scene.Visual, boundingSize [3]float32), onError func(err error))
}

type gameObject struct {
	mu *sync.Mutex

	id      uint64
	enabled atomic.Bool
	name    string
	sc      scene.Scene
	rng     *common.RNG

	group    scene.Node
	model    scene.Visual
	field    particle.ParticleField
	basePos  [3]float32
	modelURL string

	// initial scale applied to the group node on construction
	initialScale [3]float32

	interactionMessage  string
	interactionDistance float32
	detail              Detail
	particleAreaScale   float32
	smoke               SmokePreset

	elapsed  float32
	spin     float32
	ready    bool
	disposed bool
}

// GameObject is an interactive product on display: a hovering group node that receives a
// model once loading finishes and emits smoke around its base.
// Thread-safe for concurrent access.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// SetID sets the object's identifier.
	SetID(id uint64)

	// Name returns the object's display name.
	Name() string

	// Enabled returns whether this object animates and can be interacted with.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled toggles animation and interaction.
	SetEnabled(enabled bool)

	// Group returns the node the model hangs from; hover animation moves this node.
	Group() scene.Node

	// Model returns the loaded model, or nil before OnModelReady or after a failed load.
	Model() scene.Visual

	// ModelURL returns the asset the object asks its loader for.
	ModelURL() string

	// ParticleField returns the object's smoke, or nil until a model is ready.
	ParticleField() particle.ParticleField

	// BasePosition returns the resting position of the group before hover offsets.
	BasePosition() [3]float32

	// GroundPosition returns the point on the floor beneath the object.
	GroundPosition() [3]float32

	// InteractionMessage returns the prompt shown while the player is in range.
	InteractionMessage() string

	// InteractionDistance returns how close the player must be to interact.
	InteractionDistance() float32

	// Detail returns the information shown on interaction.
	Detail() Detail

	// InRange reports whether a player at the given position can interact, measured on the floor plane.
	//
	// Parameters:
	//   - position: the player's position
	//
	// Returns:
	//   - bool: true if within interaction distance
	//   - float32: the horizontal distance
	InRange(position [3]float32) (bool, float32)

	// OnModelReady attaches the loaded model and builds the object's smoke from the model's
	// bounding size. Only the first call has an effect.
	//
	// Parameters:
	//   - model: the loaded visual
	//   - boundingSize: unscaled width, height and depth of the model
	OnModelReady(model scene.Visual, boundingSize [3]float32)

	// OnModelFailed attaches a unit placeholder instead of a model. No smoke is created.
	//
	// Parameters:
	//   - err: the load failure, logged
	OnModelFailed(err error)

	// Animate advances the hover animation and the smoke.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	Animate(deltaTime float32)

	// Interact presents the object's detail. Objects without detail do nothing.
	//
	// Parameters:
	//   - presenter: where to show the detail
	Interact(presenter InfoPresenter)

	// Dispose detaches everything the object added to the scene. Idempotent.
	Dispose()
}

var _ GameObject = &gameObject{}

// NewGameObject creates an interactive object and attaches its group node to sc.
// Panics if sc is nil.
//
// Parameters:
//   - sc: the scene the object lives in
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the new object
func NewGameObject(sc scene.Scene, options ...GameObjectBuilderOption) GameObject {
	if sc == nil {
		panic("game_object: NewGameObject requires a non-nil Scene")
	}

	g := &gameObject{
		mu:                  &sync.Mutex{},
		name:                "product",
		sc:                  sc,
		interactionMessage:  DefaultInteractionMessage,
		interactionDistance: DefaultInteractionDistance,
		particleAreaScale:   1,
		initialScale:        [3]float32{1, 1, 1},
		smoke:               DefaultSmokePreset(),
	}
	g.enabled.Store(true)

	for _, option := range options {
		option(g)
	}

	if g.rng == nil {
		g.rng = common.NewTimeRNG()
	}

	g.group = scene.NewNode(g.name,
		scene.WithPosition(g.basePos[0], g.basePos[1], g.basePos[2]),
		scene.WithScale(g.initialScale[0], g.initialScale[1], g.initialScale[2]),
	)
	sc.Add(g.group)

	return g
}

func (g *gameObject) ID() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.id
}

func (g *gameObject) SetID(id uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.id = id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) Group() scene.Node {
	return g.group
}

func (g *gameObject) Model() scene.Visual {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.model
}

func (g *gameObject) ModelURL() string {
	return g.modelURL
}

func (g *gameObject) ParticleField() particle.ParticleField {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.field
}

func (g *gameObject) BasePosition() [3]float32 {
	return g.basePos
}

func (g *gameObject) GroundPosition() [3]float32 {
	return [3]float32{g.basePos[0], 0, g.basePos[2]}
}

func (g *gameObject) InteractionMessage() string {
	return g.interactionMessage
}

func (g *gameObject) InteractionDistance() float32 {
	return g.interactionDistance
}

func (g *gameObject) Detail() Detail {
	return g.detail
}

func (g *gameObject) InRange(position [3]float32) (bool, float32) {
	d := math32.Hypot(position[0]-g.basePos[0], position[2]-g.basePos[2])
	return g.Enabled() && d <= g.interactionDistance, d
}

func (g *gameObject) OnModelReady(model scene.Visual, boundingSize [3]float32) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ready || g.disposed {
		return
	}
	g.ready = true
	g.model = model
	if model != nil {
		g.sc.Add(model)
	}

	sx, _, _ := g.group.Scale()
	g.field = particle.NewParticleField(g.GroundPosition(),
		particle.WithScene(g.sc),
		particle.WithRNG(common.NewRNG(g.rng.Int63())),
		particle.WithCount(g.smoke.Count),
		particle.WithAreaRadius(boundingSize[0]*sx*g.smoke.AreaFactor*g.particleAreaScale),
		particle.WithBaseSize(boundingSize[1]*sx*g.smoke.SizeFactor),
		particle.WithMaxLife(g.smoke.MaxLife),
		particle.WithVerticalOffset(g.smoke.VerticalOffset),
	)
}

func (g *gameObject) OnModelFailed(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ready || g.disposed {
		return
	}
	g.ready = true
	log.Printf("[GameObject] %s: model %q failed to load, using placeholder: %v", g.name, g.modelURL, err)

	placeholder := scene.NewNode(g.name+"_placeholder")
	g.model = placeholder
	g.sc.Add(placeholder)
}

func (g *gameObject) Animate(deltaTime float32) {
	if !g.Enabled() {
		return
	}

	g.mu.Lock()
	if g.disposed {
		g.mu.Unlock()
		return
	}
	g.elapsed += deltaTime
	g.spin += DefaultSpinSpeed * deltaTime
	bob := math32.Sin(g.elapsed*DefaultBobFrequency) * DefaultBobAmplitude
	field := g.field
	g.mu.Unlock()

	g.group.SetRotation(0, g.spin, 0)
	g.group.SetPosition(g.basePos[0], g.basePos[1]+bob, g.basePos[2])

	if field != nil {
		field.Update(deltaTime)
	}
}

func (g *gameObject) Interact(presenter InfoPresenter) {
	if presenter == nil || g.detail.Empty() || !g.Enabled() {
		return
	}
	presenter.ShowInfo(g.detail)
}

func (g *gameObject) Dispose() {
	g.mu.Lock()
	if g.disposed {
		g.mu.Unlock()
		return
	}
	g.disposed = true
	field, model := g.field, g.model
	g.field, g.model = nil, nil
	g.mu.Unlock()

	if field != nil {
		field.Dispose()
	}
	if model != nil {
		g.sc.Remove(model)
	}
	g.sc.Remove(g.group)
}
