package scene

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-showroom/common"
)

// Node is a transformable Visual: the player avatar, a product group, or a loaded model.
// Thread-safe for concurrent access.
type Node interface {
	Visual

	// Position returns the node's world position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// SetPosition sets the node's world position.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// Rotation returns the node's Euler rotation in radians.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles
	Rotation() (rx, ry, rz float32)

	// SetRotation sets the node's Euler rotation in radians.
	//
	// Parameters:
	//   - rx, ry, rz: rotation angles
	SetRotation(rx, ry, rz float32)

	// Scale returns the node's scale.
	//
	// Returns:
	//   - sx, sy, sz: scale factors
	Scale() (sx, sy, sz float32)

	// SetScale sets the node's scale.
	//
	// Parameters:
	//   - sx, sy, sz: scale factors
	SetScale(sx, sy, sz float32)

	// BoundingSize returns the unscaled axis-aligned size of the node's geometry.
	BoundingSize() [3]float32

	// ModelMatrix returns the column-major T * Ry * Rx * Rz * S matrix.
	ModelMatrix() [16]float32
}

type node struct {
	mu *sync.Mutex

	label    string
	visible  bool
	position [3]float32
	rotation [3]float32
	scale    [3]float32
	bounds   [3]float32
}

var _ Node = &node{}

// NewNode creates a visible Node at the origin with unit scale.
//
// Parameters:
//   - label: identifier used in logs
//   - options: functional options to configure the node
//
// Returns:
//   - Node: the new node
func NewNode(label string, options ...NodeBuilderOption) Node {
	n := &node{
		mu:      &sync.Mutex{},
		label:   label,
		visible: true,
		scale:   [3]float32{1, 1, 1},
		bounds:  [3]float32{1, 1, 1},
	}

	for _, option := range options {
		option(n)
	}

	return n
}

func (n *node) Label() string {
	return n.label
}

func (n *node) Visible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.visible
}

func (n *node) SetVisible(visible bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.visible = visible
}

func (n *node) Position() (x, y, z float32) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.position[0], n.position[1], n.position[2]
}

func (n *node) SetPosition(x, y, z float32) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.position = [3]float32{x, y, z}
}

func (n *node) Rotation() (rx, ry, rz float32) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.rotation[0], n.rotation[1], n.rotation[2]
}

func (n *node) SetRotation(rx, ry, rz float32) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.rotation = [3]float32{rx, ry, rz}
}

func (n *node) Scale() (sx, sy, sz float32) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.scale[0], n.scale[1], n.scale[2]
}

func (n *node) SetScale(sx, sy, sz float32) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.scale = [3]float32{sx, sy, sz}
}

func (n *node) BoundingSize() [3]float32 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.bounds
}

func (n *node) ModelMatrix() [16]float32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	var m [16]float32
	common.BuildModelMatrix(m[:],
		n.position[0], n.position[1], n.position[2],
		n.rotation[0], n.rotation[1], n.rotation[2],
		n.scale[0], n.scale[1], n.scale[2])
	return m
}
