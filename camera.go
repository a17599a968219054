package camrig

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the renderable camera a rig drives. Controls move it, the
// Selector only touches its projection parameters.
type Camera interface {
	Position() mgl32.Vec3
	SetPosition(p mgl32.Vec3)
	// Forward returns the unit view direction.
	Forward() mgl32.Vec3
	Up() mgl32.Vec3
	LookAt(target mgl32.Vec3)

	Aspect() float32
	SetAspect(aspect float32)
	// Fov returns the vertical field of view in degrees.
	Fov() float32
	SetFov(fovDeg float32)
	UpdateProjection()
}

// Scene receives every registered rig camera.
type Scene interface {
	Add(cam Camera)
}

type PerspectiveCamera struct {
	position mgl32.Vec3
	forward  mgl32.Vec3
	up       mgl32.Vec3

	fov    float32
	aspect float32
	near   float32
	far    float32

	projection mgl32.Mat4
}

var _ Camera = &PerspectiveCamera{}

func NewPerspectiveCamera(position mgl32.Vec3) *PerspectiveCamera {
	c := &PerspectiveCamera{
		position: position,
		forward:  mgl32.Vec3{0, 0, -1},
		up:       mgl32.Vec3{0, 1, 0},
		fov:      45,
		aspect:   1,
		near:     0.1,
		far:      1000,
	}
	c.UpdateProjection()
	return c
}

func (c *PerspectiveCamera) Position() mgl32.Vec3     { return c.position }
func (c *PerspectiveCamera) SetPosition(p mgl32.Vec3) { c.position = p }
func (c *PerspectiveCamera) Forward() mgl32.Vec3      { return c.forward }
func (c *PerspectiveCamera) Up() mgl32.Vec3           { return c.up }
func (c *PerspectiveCamera) Aspect() float32          { return c.aspect }
func (c *PerspectiveCamera) SetAspect(aspect float32) { c.aspect = aspect }
func (c *PerspectiveCamera) Fov() float32             { return c.fov }
func (c *PerspectiveCamera) SetFov(fovDeg float32)    { c.fov = fovDeg }
func (c *PerspectiveCamera) Projection() mgl32.Mat4   { return c.projection }

// SetForward points the camera along dir. Zero-length directions are ignored.
func (c *PerspectiveCamera) SetForward(dir mgl32.Vec3) {
	if dir.Len() < 1e-6 {
		return
	}
	c.forward = dir.Normalize()
}

// LookAt aims the camera at target. A target equal to the position keeps the current forward.
func (c *PerspectiveCamera) LookAt(target mgl32.Vec3) {
	c.SetForward(target.Sub(c.position))
}

func (c *PerspectiveCamera) SetClipPlanes(near, far float32) {
	c.near = near
	c.far = far
}

func (c *PerspectiveCamera) UpdateProjection() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), c.aspect, c.near, c.far)
}

func (c *PerspectiveCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.forward), c.up)
}

// SceneGraph is a flat, ordered set of cameras.
type SceneGraph struct {
	cameras []Camera
}

func NewSceneGraph() *SceneGraph {
	return &SceneGraph{}
}

func (s *SceneGraph) Add(cam Camera) {
	for _, c := range s.cameras {
		if c == cam {
			return
		}
	}
	s.cameras = append(s.cameras, cam)
}

func (s *SceneGraph) Cameras() []Camera {
	out := make([]Camera, len(s.cameras))
	copy(out, s.cameras)
	return out
}
