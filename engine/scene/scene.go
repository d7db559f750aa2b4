package scene

import (
	"sort"
	"sync"
)

// Visual is an opaque handle to something drawable that can be attached to a Scene.
// The scene only tracks attachment; drawing is done elsewhere.
type Visual interface {
	// Label returns a human-readable identifier for logging.
	Label() string

	// Visible reports whether the visual should be drawn.
	Visible() bool

	// SetVisible toggles whether the visual should be drawn.
	//
	// Parameters:
	//   - visible: true to draw the visual
	SetVisible(visible bool)
}

// Scene manages the set of visuals attached to the showroom.
// Scenes can be hot-swapped via the Active flag.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active.
	Active() bool

	// SetActive sets whether this scene is active.
	SetActive(active bool)

	// Count returns the number of attached visuals.
	Count() int

	// Add attaches a visual to the scene. Adding a visual that is already attached
	// returns its existing ID.
	//
	// Parameters:
	//   - v: the visual to attach
	//
	// Returns:
	//   - uint64: the assigned visual ID
	Add(v Visual) uint64

	// Get retrieves an attached visual by its ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the visual's ID
	//
	// Returns:
	//   - Visual: the visual or nil
	Get(id uint64) Visual

	// Contains reports whether the visual is currently attached.
	Contains(v Visual) bool

	// Remove detaches a visual by reference. Unknown visuals are ignored.
	//
	// Parameters:
	//   - v: the visual to detach
	Remove(v Visual)

	// RemoveByID detaches a visual by ID. Unknown IDs are ignored.
	//
	// Parameters:
	//   - id: the visual's ID
	RemoveByID(id uint64)

	// Visuals returns the attached visuals in attachment order.
	//
	// Returns:
	//   - []Visual: a snapshot of the attached visuals
	Visuals() []Visual

	// Clear detaches every visual.
	Clear()
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	registry map[uint64]Visual
	ids      map[Visual]uint64
	nextID   uint64
}

var _ Scene = &scene{}

// NewScene creates a new empty Scene with the given name.
//
// Parameters:
//   - name: the scene's identifier
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the new scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:       &sync.RWMutex{},
		name:     name,
		registry: make(map[uint64]Visual),
		ids:      make(map[Visual]uint64),
		nextID:   1,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Add(v Visual) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(v)
}

// add must be called with the lock held.
func (s *scene) add(v Visual) uint64 {
	if v == nil {
		return 0
	}
	if id, ok := s.ids[v]; ok {
		return id
	}
	id := s.nextID
	s.nextID++
	s.registry[id] = v
	s.ids[v] = id
	return id
}

func (s *scene) Get(id uint64) Visual {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Contains(v Visual) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[v]
	return ok
}

func (s *scene) Remove(v Visual) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.ids[v]
	if !ok {
		return
	}
	delete(s.ids, v)
	delete(s.registry, id)
}

func (s *scene) RemoveByID(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.registry[id]
	if !ok {
		return
	}
	delete(s.registry, id)
	delete(s.ids, v)
}

func (s *scene) Visuals() []Visual {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uint64, 0, len(s.registry))
	for id := range s.registry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]Visual, len(ids))
	for i, id := range ids {
		out[i] = s.registry[id]
	}
	return out
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.registry)
	clear(s.ids)
}
