package loader

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-showroom/common"
	"github.com/chewxy/math32"
)

var errNoGeometry = errors.New("model has no POSITION geometry")

// aabb is an axis-aligned box accumulated from transformed points.
type aabb struct {
	min, max [3]float32
	empty    bool
}

func newAABB() aabb {
	inf := math32.Inf(1)
	return aabb{
		min:   [3]float32{inf, inf, inf},
		max:   [3]float32{-inf, -inf, -inf},
		empty: true,
	}
}

func (b *aabb) extend(p [3]float32) {
	for i := range 3 {
		b.min[i] = min(b.min[i], p[i])
		b.max[i] = max(b.max[i], p[i])
	}
	b.empty = false
}

func (b *aabb) size() [3]float32 {
	if b.empty {
		return [3]float32{}
	}
	return [3]float32{b.max[0] - b.min[0], b.max[1] - b.min[1], b.max[2] - b.min[2]}
}

// bounds returns the width, height and depth of the default scene with every node
// transform applied. Documents without scenes treat all parentless nodes as roots.
func (f *gltfFile) bounds() ([3]float32, error) {
	box := newAABB()
	var identity [16]float32
	common.Identity(identity[:])

	for _, root := range f.roots() {
		if err := f.walk(root, identity, &box, 0); err != nil {
			return [3]float32{}, err
		}
	}
	if box.empty {
		return [3]float32{}, errNoGeometry
	}
	return box.size(), nil
}

func (f *gltfFile) roots() []int {
	doc := f.doc
	if len(doc.Scenes) > 0 {
		index := 0
		if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
			index = *doc.Scene
		}
		return doc.Scenes[index].Nodes
	}

	child := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			if c >= 0 && c < len(child) {
				child[c] = true
			}
		}
	}
	var roots []int
	for i, isChild := range child {
		if !isChild {
			roots = append(roots, i)
		}
	}
	return roots
}

// maxNodeDepth guards against cyclic hierarchies in malformed files.
const maxNodeDepth = 64

func (f *gltfFile) walk(index int, parent [16]float32, box *aabb, depth int) error {
	if depth > maxNodeDepth {
		return fmt.Errorf("node hierarchy deeper than %d", maxNodeDepth)
	}
	if index < 0 || index >= len(f.doc.Nodes) {
		return fmt.Errorf("node index %d out of range", index)
	}
	node := &f.doc.Nodes[index]

	local := nodeMatrix(node)
	var world [16]float32
	common.Mul4(world[:], parent[:], local[:])

	if node.Mesh != nil {
		if err := f.extendMesh(*node.Mesh, world, box); err != nil {
			return fmt.Errorf("node %q: %w", node.Name, err)
		}
	}
	for _, c := range node.Children {
		if err := f.walk(c, world, box, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// extendMesh grows box by every POSITION accessor of the mesh. Accessor min/max corners are
// used when present, otherwise each vertex is read.
func (f *gltfFile) extendMesh(index int, world [16]float32, box *aabb) error {
	if index < 0 || index >= len(f.doc.Meshes) {
		return fmt.Errorf("mesh index %d out of range", index)
	}

	for _, prim := range f.doc.Meshes[index].Primitives {
		accIndex, ok := prim.Attributes[gltfAttributePosition]
		if !ok {
			continue
		}
		if accIndex < 0 || accIndex >= len(f.doc.Accessors) {
			return fmt.Errorf("accessor index %d out of range", accIndex)
		}

		acc := &f.doc.Accessors[accIndex]
		if len(acc.Min) == 3 && len(acc.Max) == 3 {
			for corner := range 8 {
				p := [3]float32{acc.Min[0], acc.Min[1], acc.Min[2]}
				for axis := range 3 {
					if corner&(1<<axis) != 0 {
						p[axis] = acc.Max[axis]
					}
				}
				box.extend(transformPoint(world, p))
			}
			continue
		}

		points, err := f.readVec3(accIndex)
		if err != nil {
			return err
		}
		for _, p := range points {
			box.extend(transformPoint(world, p))
		}
	}
	return nil
}

// nodeMatrix returns the node's local column-major matrix: its matrix, or T * R * S.
func nodeMatrix(n *gltfNode) [16]float32 {
	if n.Matrix != nil {
		return *n.Matrix
	}

	t := [3]float32{}
	if n.Translation != nil {
		t = *n.Translation
	}
	q := [4]float32{0, 0, 0, 1}
	if n.Rotation != nil {
		q = *n.Rotation
	}
	s := [3]float32{1, 1, 1}
	if n.Scale != nil {
		s = *n.Scale
	}

	x, y, z, w := q[0], q[1], q[2], q[3]
	return [16]float32{
		(1 - 2*(y*y+z*z)) * s[0], (2 * (x*y + z*w)) * s[0], (2 * (x*z - y*w)) * s[0], 0,
		(2 * (x*y - z*w)) * s[1], (1 - 2*(x*x+z*z)) * s[1], (2 * (y*z + x*w)) * s[1], 0,
		(2 * (x*z + y*w)) * s[2], (2 * (y*z - x*w)) * s[2], (1 - 2*(x*x+y*y)) * s[2], 0,
		t[0], t[1], t[2], 1,
	}
}

func transformPoint(m [16]float32, p [3]float32) [3]float32 {
	return [3]float32{
		m[0]*p[0] + m[4]*p[1] + m[8]*p[2] + m[12],
		m[1]*p[0] + m[5]*p[1] + m[9]*p[2] + m[13],
		m[2]*p[0] + m[6]*p[1] + m[10]*p[2] + m[14],
	}
}
