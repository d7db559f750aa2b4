package common

import (
	"github.com/chewxy/math32"
)

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	clear(m[:16])
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 multiplies two 4x4 column-major matrices and stores a * b in out.
// out may alias a or b.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for col := range 4 {
		for row := range 4 {
			var sum float32
			for k := range 4 {
				sum += a[k*4+row] * b[col*4+k]
			}
			buf[col*4+row] = sum
		}
	}
	copy(out, buf[:])
}

// Perspective creates a perspective projection matrix for WebGPU clip space [0, 1].
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1 / math32.Tan(fovY/2)
	clear(out[:16])

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1
	out[14] = (near * far) / (near - far)
}

// BuildModelMatrix constructs a 4x4 model matrix from position, Euler rotation, and scale.
// The rotation order is Y * X * Z (yaw-pitch-roll). All matrices are column-major.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - posX, posY, posZ: translation in world space
//   - rotX, rotY, rotZ: rotation angles in radians around each axis
//   - scaleX, scaleY, scaleZ: scale factors along each axis
func BuildModelMatrix(out []float32, posX, posY, posZ, rotX, rotY, rotZ, scaleX, scaleY, scaleZ float32) {
	sx, cx := math32.Sincos(rotX)
	sy, cy := math32.Sincos(rotY)
	sz, cz := math32.Sincos(rotZ)

	out[0] = (cy*cz + sy*sx*sz) * scaleX
	out[1] = (cx * sz) * scaleX
	out[2] = (-sy*cz + cy*sx*sz) * scaleX
	out[3] = 0

	out[4] = (sy*sx*cz - cy*sz) * scaleY
	out[5] = (cx * cz) * scaleY
	out[6] = (sy*sz + cy*sx*cz) * scaleY
	out[7] = 0

	out[8] = (sy * cx) * scaleZ
	out[9] = -sx * scaleZ
	out[10] = (cy * cx) * scaleZ
	out[11] = 0

	out[12], out[13], out[14], out[15] = posX, posY, posZ, 1
}

// TranslateScale writes T(pos) * S(scale) with a uniform scale and no rotation.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - pos: translation in world space
//   - scale: uniform scale factor
func TranslateScale(out []float32, pos [3]float32, scale float32) {
	clear(out[:16])
	out[0], out[5], out[10] = scale, scale, scale
	out[12], out[13], out[14], out[15] = pos[0], pos[1], pos[2], 1
}

// YawPitchView writes the view matrix of an eye at the given position oriented by yaw about
// world Y followed by pitch about the local X axis. It is the rigid inverse of
// BuildModelMatrix(eye, pitch, yaw, 0, 1, 1, 1).
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eye: eye position in world space
//   - yaw: rotation about world Y in radians
//   - pitch: rotation about local X in radians
func YawPitchView(out []float32, eye [3]float32, yaw, pitch float32) {
	var world [16]float32
	BuildModelMatrix(world[:], 0, 0, 0, pitch, yaw, 0, 1, 1, 1)

	// Transpose the rotation block, then translate by -R^T * eye.
	for col := range 3 {
		for row := range 3 {
			out[col*4+row] = world[row*4+col]
		}
	}
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
	for row := range 3 {
		out[12+row] = -(out[row]*eye[0] + out[4+row]*eye[1] + out[8+row]*eye[2])
	}
}

// YawBasis returns the horizontal forward and right unit vectors for a yaw angle.
// A yaw of zero faces -Z with +X to the right.
//
// Parameters:
//   - yaw: rotation about world Y in radians
//
// Returns:
//   - [3]float32: forward vector (0,0,-1) rotated by yaw
//   - [3]float32: right vector (1,0,0) rotated by yaw
func YawBasis(yaw float32) (forward, right [3]float32) {
	s, c := math32.Sincos(yaw)
	return [3]float32{-s, 0, -c}, [3]float32{c, 0, -s}
}

// HorizontalLength returns the length of v projected onto the XZ plane.
func HorizontalLength(v [3]float32) float32 {
	return math32.Hypot(v[0], v[2])
}
