package scene

// NodeBuilderOption is a functional option for configuring a Node.
type NodeBuilderOption func(n *node)

// WithPosition sets the node's initial position.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithPosition(x, y, z float32) NodeBuilderOption {
	return func(n *node) {
		n.position = [3]float32{x, y, z}
	}
}

// WithRotation sets the node's initial Euler rotation in radians.
//
// Parameters:
//   - rx, ry, rz: rotation angles
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithRotation(rx, ry, rz float32) NodeBuilderOption {
	return func(n *node) {
		n.rotation = [3]float32{rx, ry, rz}
	}
}

// WithScale sets the node's initial scale.
//
// Parameters:
//   - sx, sy, sz: scale factors
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithScale(sx, sy, sz float32) NodeBuilderOption {
	return func(n *node) {
		n.scale = [3]float32{sx, sy, sz}
	}
}

// WithBoundingSize sets the unscaled size of the node's geometry.
//
// Parameters:
//   - size: width, height and depth
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithBoundingSize(size [3]float32) NodeBuilderOption {
	return func(n *node) {
		n.bounds = size
	}
}

// WithVisible sets the node's initial visibility.
func WithVisible(visible bool) NodeBuilderOption {
	return func(n *node) {
		n.visible = visible
	}
}
