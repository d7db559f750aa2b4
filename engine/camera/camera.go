package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-showroom/common"
	"github.com/chewxy/math32"
)

// GPUCameraUniform is the GPU-aligned camera block read by the fog shader.
// Size: 80 bytes.
type GPUCameraUniform struct {
	ViewProj       [16]float32 // offset  0: mat4x4<f32>
	CameraPosition [3]float32  // offset 64: vec3<f32>
	_              float32     // offset 76: padding
}

// Marshal returns a copy of the uniform's bytes for GPU upload.
func (g *GPUCameraUniform) Marshal() []byte {
	return append([]byte(nil), common.StructToBytes(g)...)
}

type cameraImpl struct {
	mu *sync.Mutex

	position [3]float32
	yaw      float32
	pitch    float32

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix           [16]float32
	projectionMatrix     [16]float32
	viewProjectionMatrix [16]float32
}

// Camera is a perspective camera posed by a position and a yaw-then-pitch orientation.
// Matrices are recomputed eagerly whenever the pose or projection changes.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Orientation returns the camera's yaw and pitch in radians.
	//
	// Returns:
	//   - yaw: rotation about world Y
	//   - pitch: rotation about the camera's local X
	Orientation() (yaw, pitch float32)

	// SetPose moves and orients the camera.
	//
	// Parameters:
	//   - position: world-space eye position
	//   - yaw: rotation about world Y in radians
	//   - pitch: rotation about the local X axis in radians
	SetPose(position [3]float32, yaw, pitch float32)

	// Forward returns the unit look direction.
	//
	// Returns:
	//   - [3]float32: forward vector
	Forward() [3]float32

	// Fov returns the vertical field of view in radians.
	Fov() float32

	// Aspect returns the viewport aspect ratio.
	Aspect() float32

	// SetAspect updates the viewport aspect ratio, typically on window resize.
	//
	// Parameters:
	//   - aspect: width divided by height
	SetAspect(aspect float32)

	// ViewMatrix returns the world-to-view matrix.
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the perspective projection matrix.
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns projection * view.
	ViewProjectionMatrix() [16]float32

	// Uniform returns the camera block for GPU upload.
	Uniform() GPUCameraUniform
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera at the origin looking down -Z.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:     &sync.Mutex{},
		fov:    75 * math32.Pi / 180,
		aspect: 16.0 / 9.0,
		near:   0.1,
		far:    1000,
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Position() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position[0], c.position[1], c.position[2]
}

func (c *cameraImpl) Orientation() (yaw, pitch float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw, c.pitch
}

func (c *cameraImpl) SetPose(position [3]float32, yaw, pitch float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = position
	c.yaw = yaw
	c.pitch = pitch
	c.updateMatrices()
}

func (c *cameraImpl) Forward() [3]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	sy, cy := math32.Sincos(c.yaw)
	sp, cp := math32.Sincos(c.pitch)
	return [3]float32{-sy * cp, sp, -cy * cp}
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if aspect <= 0 {
		return
	}
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Uniform() GPUCameraUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return GPUCameraUniform{
		ViewProj:       c.viewProjectionMatrix,
		CameraPosition: c.position,
	}
}

// updateMatrices recomputes view, projection and view-projection.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	common.YawPitchView(c.viewMatrix[:], c.position, c.yaw, c.pitch)
	common.Perspective(c.projectionMatrix[:], c.fov, c.aspect, c.near, c.far)
	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
}
