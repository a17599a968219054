package camrig

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PointerCaptureControls is first-person mouse look. Pointer movement turns
// the camera only while the pointer is captured; Move translates it.
type PointerCaptureControls struct {
	tag     Tag
	camera  Camera
	surface Surface
	opts    PointerCaptureOptions

	connected bool
	locked    bool
}

var _ PointerCaptureControl = &PointerCaptureControls{}

func NewPointerCaptureControls(camera Camera, surface Surface, opts PointerCaptureOptions) *PointerCaptureControls {
	return &PointerCaptureControls{
		tag:     Tag{Kind: PointerCaptureStyle},
		camera:  camera,
		surface: surface,
		opts:    opts.withDefaults(),
	}
}

func (c *PointerCaptureControls) Tag() *Tag                      { return &c.tag }
func (c *PointerCaptureControls) Connected() bool                { return c.connected }
func (c *PointerCaptureControls) Locked() bool                   { return c.locked }
func (c *PointerCaptureControls) Options() PointerCaptureOptions { return c.opts }

func (c *PointerCaptureControls) LookDirection(out *mgl32.Vec3) mgl32.Vec3 {
	*out = c.camera.Forward()
	return *out
}

func (c *PointerCaptureControls) Connect() {
	if c.connected {
		return
	}
	if c.surface != nil {
		c.surface.Listen(c)
	}
	c.connected = true
}

func (c *PointerCaptureControls) Disconnect() {
	if !c.connected {
		return
	}
	if c.surface != nil {
		c.surface.Unlisten(c)
	}
	c.connected = false
}

func (c *PointerCaptureControls) Lock() {
	if c.locked {
		return
	}
	if c.surface != nil {
		c.surface.CapturePointer()
	}
	c.locked = true
}

func (c *PointerCaptureControls) Unlock() {
	if !c.locked {
		return
	}
	if c.surface != nil {
		c.surface.ReleasePointer()
	}
	c.locked = false
}

func (c *PointerCaptureControls) HandlePointer(ev PointerEvent) {
	if !c.locked || ev.Type != PointerMove {
		return
	}
	c.Look(ev.DeltaX, ev.DeltaY)
}

// Look turns the camera by a pointer delta in pixels.
func (c *PointerCaptureControls) Look(dx, dy float64) {
	f := c.camera.Forward()
	yaw := math.Atan2(float64(f.X()), float64(-f.Z()))
	pitch := math.Asin(float64(mgl32.Clamp(f.Y(), -1, 1)))

	yaw += dx * float64(c.opts.Sensitivity)
	pitch -= dy * float64(c.opts.Sensitivity)

	// Polar angles are measured from +Y, pitch from the horizon.
	minPitch := math.Pi/2 - float64(c.opts.MaxPolarAngle)
	maxPitch := math.Pi/2 - float64(c.opts.MinPolarAngle)
	limit := math.Pi/2 - polarEpsilon
	pitch = math.Max(math.Max(minPitch, -limit), math.Min(pitch, math.Min(maxPitch, limit)))

	forward := mgl32.Vec3{
		float32(math.Sin(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(-math.Cos(yaw) * math.Cos(pitch)),
	}
	c.camera.LookAt(c.camera.Position().Add(forward))
}

// MoveForward moves along the forward direction projected onto the ground plane.
func (c *PointerCaptureControls) MoveForward(distance float32) {
	up := c.camera.Up()
	right := c.camera.Forward().Cross(up)
	if right.Len() < 1e-6 {
		return
	}
	ground := up.Cross(right.Normalize())
	c.camera.SetPosition(c.camera.Position().Add(ground.Mul(distance)))
}

func (c *PointerCaptureControls) MoveRight(distance float32) {
	right := c.camera.Forward().Cross(c.camera.Up())
	if right.Len() < 1e-6 {
		return
	}
	c.camera.SetPosition(c.camera.Position().Add(right.Normalize().Mul(distance)))
}

// Move applies a local move intent (x right, y up, z forward) for dt seconds at MoveSpeed.
func (c *PointerCaptureControls) Move(intent mgl32.Vec3, dt float32) {
	if dt <= 0 || intent.Len() == 0 {
		return
	}
	forward := c.camera.Forward()
	up := c.camera.Up()
	right := forward.Cross(up)
	if right.Len() < 1e-6 {
		return
	}
	right = right.Normalize()

	dir := right.Mul(intent.X()).Add(up.Mul(intent.Y())).Add(forward.Mul(intent.Z()))
	if dir.Len() == 0 {
		return
	}
	c.camera.SetPosition(c.camera.Position().Add(dir.Normalize().Mul(c.opts.MoveSpeed * dt)))
}
