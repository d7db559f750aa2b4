package showroom

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-showroom/common"
	"github.com/Carmen-Shannon/oxy-showroom/engine/camera"
	"github.com/Carmen-Shannon/oxy-showroom/engine/config"
	"github.com/Carmen-Shannon/oxy-showroom/engine/fog"
	"github.com/Carmen-Shannon/oxy-showroom/engine/game_object"
	"github.com/Carmen-Shannon/oxy-showroom/engine/input"
	"github.com/Carmen-Shannon/oxy-showroom/engine/player"
	"github.com/Carmen-Shannon/oxy-showroom/engine/scene"
	"github.com/chewxy/math32"
)

var errNoModel = errors.New("no model configured")

// Prompter is implemented by presenters that can also show the interaction hint.
type Prompter interface {
	ShowPrompt(message string)
	HidePrompt()
}

// Stats is a point-in-time summary of the simulation, used for profiling output.
type Stats struct {
	Frames    uint64
	Objects   int
	Particles int
	Recycles  int
	Position  [3]float32
	State     player.State
	FogTime   float32
}

// String formats the stats for a log line.
func (s Stats) String() string {
	return fmt.Sprintf("Frames: %d | Objects: %d | Particles: %d | Recycles: %d | Player: (%.2f, %.2f, %.2f) %s | Fog t: %.2f",
		s.Frames, s.Objects, s.Particles, s.Recycles, s.Position[0], s.Position[1], s.Position[2], s.State, s.FogTime)
}

// Showroom owns the walkable room and everything in it, and advances them one frame at a time.
// Event methods (OnClick, OnResize, CloseInfo) may be called from the window thread while
// Frame runs on the engine tick goroutine.
type Showroom interface {
	// Start enables the first-person view and requests pointer capture.
	Start()

	// Frame advances the simulation.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	Frame(deltaTime float32)

	// OnClick requests pointer capture unless the info panel is open.
	OnClick()

	// OnResize updates the camera aspect ratio.
	//
	// Parameters:
	//   - width, height: the new framebuffer size in pixels
	OnResize(width, height int)

	// CloseInfo hides the info panel if it is open.
	CloseInfo()

	// InfoOpen reports whether the info panel is showing.
	InfoOpen() bool

	// Scene returns the scene holding every visual in the room.
	Scene() scene.Scene

	// Input returns the input service the window feeds.
	Input() input.Service

	// View returns the first-person view.
	View() camera.FirstPersonView

	// Player returns the player's locomotion.
	Player() player.Locomotion

	// Fog returns the shared fog volume.
	Fog() fog.VolumetricFog

	// Objects returns the products currently on display, in configuration order.
	Objects() []game_object.GameObject

	// RemoveObject disposes a product and hides its fog instance.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - bool: true if an object was removed
	RemoveObject(id uint64) bool

	// Target returns the nearest product the player can interact with, or nil.
	Target() game_object.GameObject

	// Stats returns a summary of the simulation state.
	Stats() Stats

	// Close stops the worker pool and disposes every product and the fog. Idempotent.
	Close()
}

type placement struct {
	object   game_object.GameObject
	fogIndex int
}

type showroom struct {
	mu *sync.Mutex

	cfg *config.Config

	sc       scene.Scene
	cam      camera.Camera
	view     camera.FirstPersonView
	avatar   scene.Node
	body     player.Locomotion
	fog      fog.VolumetricFog
	input    input.Service
	joystick *input.VirtualJoystick
	pool     worker.DynamicWorkerPool

	loader    game_object.ModelLoader
	presenter game_object.InfoPresenter
	capture   input.Capture
	rng       *common.RNG
	aspect    float32

	placements []placement
	target     game_object.GameObject
	infoOpen   bool
	frames     uint64
	closed     bool
}

var _ Showroom = &showroom{}

// NewShowroom builds the room described by cfg: the player, the view, one game object per
// product with its model load requested, and one fog instance beneath each product.
// Panics if cfg is nil.
//
// Parameters:
//   - cfg: the validated configuration
//   - options: functional options to configure the showroom
//
// Returns:
//   - Showroom: the new showroom, not yet started
func NewShowroom(cfg *config.Config, options ...ShowroomBuilderOption) Showroom {
	if cfg == nil {
		panic("showroom: NewShowroom requires a non-nil Config")
	}

	s := &showroom{
		mu:     &sync.Mutex{},
		cfg:    cfg,
		aspect: 16.0 / 9.0,
	}

	for _, option := range options {
		option(s)
	}

	if s.input == nil {
		s.input = input.NewService()
	}
	if s.rng == nil {
		s.rng = common.NewTimeRNG()
	}

	s.sc = scene.NewScene("showroom", scene.WithActive(true))
	s.pool = worker.NewDynamicWorkerPool(cfg.Engine.Workers, 256, 1*time.Second)

	start := player.Constrain(cfg.Player.Start, cfg.Showroom.Radius, cfg.Player.Radius)
	s.body = player.NewLocomotion(
		player.WithMoveSpeed(cfg.Player.MoveSpeed),
		player.WithJumpForce(cfg.Player.JumpForce),
		player.WithGravity(cfg.Player.Gravity),
		player.WithPosition(start),
	)

	s.avatar = scene.NewNode("player",
		scene.WithPosition(start[0], start[1], start[2]),
		scene.WithBoundingSize([3]float32{cfg.Player.Radius * 2, 1.8, cfg.Player.Radius * 2}),
	)
	s.sc.Add(s.avatar)

	s.cam = camera.NewCamera(
		camera.WithFov(cfg.Look.Fov*math32.Pi/180),
		camera.WithAspect(s.aspect),
	)
	s.view = camera.NewFirstPersonView(s.cam,
		camera.WithCapture(s.capture),
		camera.WithAvatar(s.avatar),
		camera.WithEyeHeight(cfg.Look.EyeHeight),
		camera.WithMouseSensitivity(cfg.Look.MouseSensitivity),
		camera.WithTouchSensitivity(cfg.Look.TouchSensitivity),
	)

	s.fog = fog.NewVolumetricFog(s.sc, len(cfg.Products),
		fog.WithColor(cfg.Fog.Color),
		fog.WithDensity(cfg.Fog.Density),
		fog.WithHeight(cfg.Fog.Height),
		fog.WithRadius(cfg.Fog.Radius),
		fog.WithNoise(cfg.Fog.NoiseScale, cfg.Fog.NoiseStrength, cfg.Fog.NoiseAnimationSpeed),
	)

	smoke := game_object.SmokePreset{
		Count:          cfg.Smoke.Count,
		AreaFactor:     cfg.Smoke.AreaFactor,
		SizeFactor:     cfg.Smoke.SizeFactor,
		MaxLife:        cfg.Smoke.MaxLife,
		VerticalOffset: cfg.Smoke.VerticalOffset,
	}

	for i, p := range cfg.Products {
		obj := game_object.NewGameObject(s.sc,
			game_object.WithID(uint64(i+1)),
			game_object.WithName(p.Name),
			game_object.WithPosition(p.Position[0], p.Position[1], p.Position[2]),
			game_object.WithScale(p.Scale),
			game_object.WithModelURL(p.Model),
			game_object.WithInteraction(p.InteractionMessage, p.InteractionDistance),
			game_object.WithDetail(game_object.Detail{Title: p.Title, Content: p.Content, ImageURL: p.Image}),
			game_object.WithParticleAreaScale(p.ParticleAreaScale),
			game_object.WithSmoke(smoke),
			game_object.WithRNG(common.NewRNG(s.rng.Int63())),
		)
		s.fog.SetInstanceTransform(i, obj.GroundPosition(), common.Coalesce(p.FogScale, 1))
		s.placements = append(s.placements, placement{object: obj, fogIndex: i})
	}

	// Loads may complete synchronously, so request them once every object exists.
	for _, pl := range s.placements {
		s.requestModel(pl.object)
	}

	log.Printf("[Showroom] built room of radius %.1f with %d products", cfg.Showroom.Radius, len(s.placements))
	return s
}

func (s *showroom) requestModel(obj game_object.GameObject) {
	if obj.ModelURL() == "" || s.loader == nil {
		obj.OnModelFailed(errNoModel)
		return
	}
	s.loader.Load(obj.ModelURL(), obj.OnModelReady, obj.OnModelFailed)
}

func (s *showroom) Start() {
	s.view.Enable()
	s.view.RequestCapture()
}

func (s *showroom) Frame(deltaTime float32) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.frames++
	objects := s.objectsLocked()
	infoOpen := s.infoOpen
	s.mu.Unlock()

	if s.joystick != nil {
		s.input.SetAxis(s.joystick.Input())
	}
	snap := s.input.Refresh()

	// look resolves before locomotion consumes its yaw
	yaw := s.view.LookYaw()
	var intent player.Intent
	if !infoOpen {
		intent = intentFrom(snap)
	}
	s.body.Update(deltaTime, yaw, intent)

	pos := player.Constrain(s.body.Position(), s.cfg.Showroom.Radius, s.cfg.Player.Radius)
	s.body.SetPosition(pos)
	s.avatar.SetPosition(pos[0], pos[1], pos[2])
	s.view.Update(pos[0], pos[1], pos[2])

	s.animate(deltaTime, objects)

	s.retarget(nearest(pos, objects))
	s.handleActions(snap)
}

func intentFrom(snap input.Snapshot) player.Intent {
	x, y := snap.Axis()
	return player.Intent{
		Forward:  snap.Pressed(input.ActionMoveForward),
		Backward: snap.Pressed(input.ActionMoveBackward),
		Left:     snap.Pressed(input.ActionMoveLeft),
		Right:    snap.Pressed(input.ActionMoveRight),
		Jump:     snap.Pressed(input.ActionJump),
		AxisX:    x,
		AxisY:    y,
	}
}

// animate advances the fog and every product in parallel and returns once all are done.
func (s *showroom) animate(deltaTime float32, objects []game_object.GameObject) {
	var wg sync.WaitGroup

	wg.Add(1)
	s.pool.SubmitTask(worker.Task{
		ID: 0,
		Do: func() (any, error) {
			defer wg.Done()
			s.fog.Update(deltaTime)
			return nil, nil
		},
	})

	for i, obj := range objects {
		wg.Add(1)
		o := obj
		s.pool.SubmitTask(worker.Task{
			ID: i + 1,
			Do: func() (any, error) {
				defer wg.Done()
				o.Animate(deltaTime)
				return nil, nil
			},
		})
	}
	wg.Wait()
}

// nearest returns the closest object in interaction range, or nil.
func nearest(pos [3]float32, objects []game_object.GameObject) game_object.GameObject {
	var best game_object.GameObject
	bestDistance := math32.Inf(1)
	for _, obj := range objects {
		if ok, d := obj.InRange(pos); ok && d < bestDistance {
			best, bestDistance = obj, d
		}
	}
	return best
}

func (s *showroom) retarget(target game_object.GameObject) {
	s.mu.Lock()
	changed := target != s.target
	s.target = target
	infoOpen := s.infoOpen
	s.mu.Unlock()

	prompter, ok := s.presenter.(Prompter)
	if !ok || !changed || infoOpen {
		return
	}
	if target == nil {
		prompter.HidePrompt()
		return
	}
	prompter.ShowPrompt(target.InteractionMessage())
}

func (s *showroom) handleActions(snap input.Snapshot) {
	if snap.JustPressed(input.ActionCancel) {
		s.CloseInfo()
		s.view.ReleaseCapture()
		return
	}

	if !snap.JustPressed(input.ActionInteract) {
		return
	}

	if s.InfoOpen() {
		s.CloseInfo()
		return
	}

	target := s.Target()
	if target == nil || target.Detail().Empty() || s.presenter == nil {
		return
	}

	if prompter, ok := s.presenter.(Prompter); ok {
		prompter.HidePrompt()
	}
	target.Interact(s.presenter)

	s.mu.Lock()
	s.infoOpen = true
	s.mu.Unlock()
	s.view.ReleaseCapture()
}

func (s *showroom) OnClick() {
	if s.InfoOpen() {
		return
	}
	s.view.RequestCapture()
}

func (s *showroom) OnResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.cam.SetAspect(float32(width) / float32(height))
}

func (s *showroom) CloseInfo() {
	s.mu.Lock()
	if !s.infoOpen {
		s.mu.Unlock()
		return
	}
	s.infoOpen = false
	target := s.target
	s.mu.Unlock()

	if s.presenter != nil {
		s.presenter.HideInfo()
	}
	if prompter, ok := s.presenter.(Prompter); ok && target != nil {
		prompter.ShowPrompt(target.InteractionMessage())
	}
}

func (s *showroom) InfoOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.infoOpen
}

func (s *showroom) Scene() scene.Scene {
	return s.sc
}

func (s *showroom) Input() input.Service {
	return s.input
}

func (s *showroom) View() camera.FirstPersonView {
	return s.view
}

func (s *showroom) Player() player.Locomotion {
	return s.body
}

func (s *showroom) Fog() fog.VolumetricFog {
	return s.fog
}

func (s *showroom) Objects() []game_object.GameObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.objectsLocked()
}

// objectsLocked copies the object list. Caller must hold the mutex.
func (s *showroom) objectsLocked() []game_object.GameObject {
	objects := make([]game_object.GameObject, len(s.placements))
	for i, pl := range s.placements {
		objects[i] = pl.object
	}
	return objects
}

func (s *showroom) RemoveObject(id uint64) bool {
	s.mu.Lock()
	i := slices.IndexFunc(s.placements, func(pl placement) bool { return pl.object.ID() == id })
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	pl := s.placements[i]
	s.placements = slices.Delete(s.placements, i, i+1)
	if s.target == pl.object {
		s.target = nil
	}
	s.mu.Unlock()

	pl.object.Dispose()
	s.fog.SetInstanceTransform(pl.fogIndex, pl.object.GroundPosition(), 0)
	return true
}

func (s *showroom) Target() game_object.GameObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target
}

func (s *showroom) Stats() Stats {
	s.mu.Lock()
	objects := s.objectsLocked()
	stats := Stats{Frames: s.frames, Objects: len(objects)}
	s.mu.Unlock()

	for _, obj := range objects {
		if field := obj.ParticleField(); field != nil {
			stats.Particles += field.Count()
			stats.Recycles += field.TotalRecycles()
		}
	}
	stats.Position = s.body.Position()
	stats.State = s.body.State()
	stats.FogTime = s.fog.Time()
	return stats
}

func (s *showroom) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	objects := s.objectsLocked()
	s.placements = nil
	s.target = nil
	s.mu.Unlock()

	s.pool.Stop()
	s.CloseInfo()
	s.view.ReleaseCapture()
	s.view.Disable()
	for _, obj := range objects {
		obj.Dispose()
	}
	s.fog.Dispose()
	log.Printf("[Showroom] closed")
}
