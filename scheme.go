package camrig

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type SchemeKind int

const (
	OrbitStyle SchemeKind = iota
	PointerCaptureStyle
)

func (k SchemeKind) String() string {
	switch k {
	case OrbitStyle:
		return "orbit"
	case PointerCaptureStyle:
		return "pointer-capture"
	default:
		return "unknown"
	}
}

func (k SchemeKind) valid() bool {
	return k == OrbitStyle || k == PointerCaptureStyle
}

// Tag is attached to every control when its rig is registered.
type Tag struct {
	ID     uuid.UUID
	Kind   SchemeKind
	Active bool
}

// Control is what both scheme kinds share.
type Control interface {
	Tag() *Tag
	// LookDirection writes the current forward direction into out and returns it.
	LookDirection(out *mgl32.Vec3) mgl32.Vec3
}

type OrbitControl interface {
	Control
	Enabled() bool
	SetEnabled(enabled bool)
	Target() mgl32.Vec3
	SetTarget(target mgl32.Vec3)
	// Update recomputes the camera pose from the orbit state.
	Update()
}

type PointerCaptureControl interface {
	Control
	Connect()
	Disconnect()
	Lock()
	Unlock()
	Locked() bool
}

// OrbitOptions configures an OrbitStyle scheme. Zero fields take the defaults
// listed in DefaultOrbitOptions.
type OrbitOptions struct {
	Target        mgl32.Vec3
	RotateSpeed   float32
	ZoomSpeed     float32
	MinDistance   float32
	MaxDistance   float32
	MinPolarAngle float32
	MaxPolarAngle float32
	DisableRotate bool
	DisableZoom   bool
}

func DefaultOrbitOptions() OrbitOptions {
	return OrbitOptions{
		RotateSpeed:   1,
		ZoomSpeed:     1,
		MinDistance:   0,
		MaxDistance:   float32(math.Inf(1)),
		MinPolarAngle: 0,
		MaxPolarAngle: math.Pi,
	}
}

func (o OrbitOptions) withDefaults() OrbitOptions {
	d := DefaultOrbitOptions()
	if o.RotateSpeed == 0 {
		o.RotateSpeed = d.RotateSpeed
	}
	if o.ZoomSpeed == 0 {
		o.ZoomSpeed = d.ZoomSpeed
	}
	if o.MaxDistance == 0 {
		o.MaxDistance = d.MaxDistance
	}
	if o.MaxPolarAngle == 0 {
		o.MaxPolarAngle = d.MaxPolarAngle
	}
	return o
}

func (o OrbitOptions) validate() error {
	switch {
	case o.RotateSpeed <= 0:
		return configErrorf("orbit rotate speed must be positive, got %v", o.RotateSpeed)
	case o.ZoomSpeed <= 0:
		return configErrorf("orbit zoom speed must be positive, got %v", o.ZoomSpeed)
	case o.MinDistance < 0:
		return configErrorf("orbit min distance must not be negative, got %v", o.MinDistance)
	case o.MaxDistance < o.MinDistance:
		return configErrorf("orbit max distance %v below min distance %v", o.MaxDistance, o.MinDistance)
	}
	return validatePolar("orbit", o.MinPolarAngle, o.MaxPolarAngle)
}

// PointerCaptureOptions configures a PointerCaptureStyle scheme. Zero fields
// take the defaults listed in DefaultPointerCaptureOptions.
type PointerCaptureOptions struct {
	Sensitivity   float32 // radians per pixel of pointer movement
	MinPolarAngle float32
	MaxPolarAngle float32
	MoveSpeed     float32 // world units per second
}

func DefaultPointerCaptureOptions() PointerCaptureOptions {
	return PointerCaptureOptions{
		Sensitivity:   0.002,
		MinPolarAngle: 0,
		MaxPolarAngle: math.Pi,
		MoveSpeed:     5,
	}
}

func (o PointerCaptureOptions) withDefaults() PointerCaptureOptions {
	d := DefaultPointerCaptureOptions()
	if o.Sensitivity == 0 {
		o.Sensitivity = d.Sensitivity
	}
	if o.MaxPolarAngle == 0 {
		o.MaxPolarAngle = d.MaxPolarAngle
	}
	if o.MoveSpeed == 0 {
		o.MoveSpeed = d.MoveSpeed
	}
	return o
}

func (o PointerCaptureOptions) validate() error {
	switch {
	case o.Sensitivity <= 0:
		return configErrorf("pointer capture sensitivity must be positive, got %v", o.Sensitivity)
	case o.MoveSpeed <= 0:
		return configErrorf("pointer capture move speed must be positive, got %v", o.MoveSpeed)
	}
	return validatePolar("pointer capture", o.MinPolarAngle, o.MaxPolarAngle)
}

func validatePolar(scheme string, min, max float32) error {
	if min < 0 || min > math.Pi {
		return configErrorf("%s min polar angle %v outside [0, pi]", scheme, min)
	}
	if max < min || max > math.Pi {
		return configErrorf("%s max polar angle %v outside [%v, pi]", scheme, max, min)
	}
	return nil
}

// SchemeSpec describes one scheme to build at registration. Only the
// options matching Kind are read.
type SchemeSpec struct {
	Kind           SchemeKind
	Orbit          OrbitOptions
	PointerCapture PointerCaptureOptions
}

func OrbitScheme(opts OrbitOptions) SchemeSpec {
	return SchemeSpec{Kind: OrbitStyle, Orbit: opts}
}

func PointerCaptureScheme(opts PointerCaptureOptions) SchemeSpec {
	return SchemeSpec{Kind: PointerCaptureStyle, PointerCapture: opts}
}

// resolved returns the spec with defaults applied, or a ConfigurationError.
func (s SchemeSpec) resolved() (SchemeSpec, error) {
	switch s.Kind {
	case OrbitStyle:
		s.Orbit = s.Orbit.withDefaults()
		return s, s.Orbit.validate()
	case PointerCaptureStyle:
		s.PointerCapture = s.PointerCapture.withDefaults()
		return s, s.PointerCapture.validate()
	default:
		return s, configErrorf("unknown scheme kind %d", int(s.Kind))
	}
}

// RigSpec describes a rig to register.
type RigSpec struct {
	Camera  Camera
	Schemes []SchemeSpec
}

// Scheme is one registered control on a rig.
type Scheme struct {
	kind   SchemeKind
	handle Control
}

func (s *Scheme) Kind() SchemeKind { return s.kind }
func (s *Scheme) ID() uuid.UUID    { return s.handle.Tag().ID }
func (s *Scheme) Active() bool     { return s.handle.Tag().Active }
func (s *Scheme) Control() Control { return s.handle }

func (s *Scheme) setActive(active bool) {
	s.handle.Tag().Active = active
}

func (s *Scheme) orbit() OrbitControl {
	c, _ := s.handle.(OrbitControl)
	return c
}

func (s *Scheme) pointerCapture() PointerCaptureControl {
	c, _ := s.handle.(PointerCaptureControl)
	return c
}
