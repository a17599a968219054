package camrig

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// orbitRadiansPerPixel is the drag rotation at RotateSpeed 1.
	orbitRadiansPerPixel = 0.005
	// orbitZoomStep is the radius factor for one wheel notch at ZoomSpeed 1.
	orbitZoomStep = 0.95
	polarEpsilon  = 1e-4
)

// OrbitControls orbits a camera around a target point. Dragging with the
// left button rotates, the wheel changes the distance. The orbit state is
// re-derived from the camera position on every Update, so moving the camera
// or the target from outside keeps the camera where it is and re-aims it.
type OrbitControls struct {
	tag     Tag
	camera  Camera
	surface Surface
	opts    OrbitOptions

	enabled bool
	target  mgl32.Vec3

	azimuthDelta float32
	polarDelta   float32
	scale        float32
}

var _ OrbitControl = &OrbitControls{}

// NewOrbitControls builds disabled controls listening on surface.
func NewOrbitControls(camera Camera, surface Surface, opts OrbitOptions) *OrbitControls {
	opts = opts.withDefaults()
	c := &OrbitControls{
		tag:     Tag{Kind: OrbitStyle},
		camera:  camera,
		surface: surface,
		opts:    opts,
		target:  opts.Target,
		scale:   1,
	}
	if surface != nil {
		surface.Listen(c)
	}
	return c
}

func (c *OrbitControls) Tag() *Tag                   { return &c.tag }
func (c *OrbitControls) Enabled() bool               { return c.enabled }
func (c *OrbitControls) SetEnabled(enabled bool)     { c.enabled = enabled }
func (c *OrbitControls) Target() mgl32.Vec3          { return c.target }
func (c *OrbitControls) SetTarget(target mgl32.Vec3) { c.target = target }
func (c *OrbitControls) Options() OrbitOptions       { return c.opts }

func (c *OrbitControls) LookDirection(out *mgl32.Vec3) mgl32.Vec3 {
	*out = c.camera.Forward()
	return *out
}

// Rotate queues an azimuth/polar change in radians, applied on the next Update.
func (c *OrbitControls) Rotate(azimuth, polar float32) {
	c.azimuthDelta += azimuth
	c.polarDelta += polar
}

// Dolly queues a radius factor, applied on the next Update. Factors below 1 move closer.
func (c *OrbitControls) Dolly(factor float32) {
	if factor <= 0 {
		return
	}
	c.scale *= factor
}

func (c *OrbitControls) HandlePointer(ev PointerEvent) {
	if !c.enabled {
		return
	}
	switch ev.Type {
	case PointerMove:
		if c.opts.DisableRotate || !ev.Held(MouseButtonLeft) {
			return
		}
		k := orbitRadiansPerPixel * c.opts.RotateSpeed
		c.Rotate(-float32(ev.DeltaX)*k, -float32(ev.DeltaY)*k)
		c.Update()
	case PointerWheel:
		if c.opts.DisableZoom || ev.Wheel == 0 {
			return
		}
		step := float32(math.Pow(orbitZoomStep, float64(c.opts.ZoomSpeed)))
		if ev.Wheel > 0 {
			c.Dolly(step)
		} else {
			c.Dolly(1 / step)
		}
		c.Update()
	}
}

// Update applies queued rotation and dolly, then places the camera on the
// orbit sphere and aims it at the target.
func (c *OrbitControls) Update() {
	defer c.resetDeltas()

	offset := c.camera.Position().Sub(c.target)
	radius := offset.Len()
	if radius < 1e-6 {
		// No orbit is defined with the camera sitting on the target.
		return
	}

	azimuth := float32(math.Atan2(float64(offset.X()), float64(offset.Z())))
	polar := float32(math.Acos(float64(mgl32.Clamp(offset.Y()/radius, -1, 1))))

	azimuth += c.azimuthDelta
	polar = mgl32.Clamp(polar+c.polarDelta, c.opts.MinPolarAngle, c.opts.MaxPolarAngle)
	polar = mgl32.Clamp(polar, polarEpsilon, math.Pi-polarEpsilon)
	radius = mgl32.Clamp(radius*c.scale, c.opts.MinDistance, c.opts.MaxDistance)

	c.camera.SetPosition(c.target.Add(sphericalToVec(radius, polar, azimuth)))
	c.camera.LookAt(c.target)
}

func (c *OrbitControls) resetDeltas() {
	c.azimuthDelta = 0
	c.polarDelta = 0
	c.scale = 1
}

// sphericalToVec converts (radius, polar from +Y, azimuth around Y from +Z) to a Y-up vector.
func sphericalToVec(radius, polar, azimuth float32) mgl32.Vec3 {
	sinPolar := float32(math.Sin(float64(polar)))
	return mgl32.Vec3{
		radius * sinPolar * float32(math.Sin(float64(azimuth))),
		radius * float32(math.Cos(float64(polar))),
		radius * sinPolar * float32(math.Cos(float64(azimuth))),
	}
}
