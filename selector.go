// Package camrig switches which camera rig drives a 3D view and which
// control scheme on that rig receives input.
package camrig

import (
	"github.com/google/uuid"
)

const (
	// Next asks SelectRig / SelectScheme to advance relative to the current index.
	Next = -1
	// NoIndex is returned where no rig or scheme is selected.
	NoIndex = -1

	defaultFieldOfView = 45
)

type (
	OrbitFactory          func(camera Camera, surface Surface, opts OrbitOptions) OrbitControl
	PointerCaptureFactory func(camera Camera, surface Surface, opts PointerCaptureOptions) PointerCaptureControl
)

// Config configures a Selector. Zero fields get defaults: a fresh SceneGraph,
// a no-op logger, 45 degree field of view, random UUID identities and the
// OrbitControls / PointerCaptureControls implementations.
type Config struct {
	Scene   Scene
	Surface Surface
	Logger  Logger

	LoopRigs    bool
	LoopSchemes bool

	// FieldOfView is applied to every registered camera, in degrees.
	FieldOfView float32

	NewID             func() uuid.UUID
	NewOrbit          OrbitFactory
	NewPointerCapture PointerCaptureFactory
}

type Rig struct {
	camera  Camera
	schemes []*Scheme
	active  bool
}

func (r *Rig) Camera() Camera { return r.camera }
func (r *Rig) Active() bool   { return r.active }

func (r *Rig) Schemes() []*Scheme {
	out := make([]*Scheme, len(r.schemes))
	copy(out, r.schemes)
	return out
}

func (r *Rig) scheme(i int) *Scheme {
	if i < 0 || i >= len(r.schemes) {
		return nil
	}
	return r.schemes[i]
}

type selectorState struct {
	currentRig     int
	previousRig    int
	currentScheme  int
	previousScheme int
	loopRigs       bool
	loopSchemes    bool
}

// Selector decides which rig drives the view and which scheme on that rig
// receives input. It is not safe for concurrent use, and must not be called
// from inside a control's callbacks.
type Selector struct {
	scene             Scene
	surface           Surface
	logger            Logger
	fov               float32
	newID             func() uuid.UUID
	newOrbit          OrbitFactory
	newPointerCapture PointerCaptureFactory

	rigs  []*Rig
	state selectorState

	viewportWidth  int
	viewportHeight int
}

func NewSelector(cfg Config) *Selector {
	s := &Selector{
		scene:             cfg.Scene,
		surface:           cfg.Surface,
		logger:            cfg.Logger,
		fov:               cfg.FieldOfView,
		newID:             cfg.NewID,
		newOrbit:          cfg.NewOrbit,
		newPointerCapture: cfg.NewPointerCapture,
		state: selectorState{
			currentRig:     NoIndex,
			previousRig:    NoIndex,
			currentScheme:  NoIndex,
			previousScheme: NoIndex,
			loopRigs:       cfg.LoopRigs,
			loopSchemes:    cfg.LoopSchemes,
		},
	}
	if s.scene == nil {
		s.scene = NewSceneGraph()
	}
	if s.logger == nil {
		s.logger = NewNopLogger()
	}
	if s.fov <= 0 {
		s.fov = defaultFieldOfView
	}
	if s.newID == nil {
		s.newID = uuid.New
	}
	if s.newOrbit == nil {
		s.newOrbit = func(camera Camera, surface Surface, opts OrbitOptions) OrbitControl {
			return NewOrbitControls(camera, surface, opts)
		}
	}
	if s.newPointerCapture == nil {
		s.newPointerCapture = func(camera Camera, surface Surface, opts PointerCaptureOptions) PointerCaptureControl {
			return NewPointerCaptureControls(camera, surface, opts)
		}
	}
	return s
}

func (s *Selector) Scene() Scene  { return s.scene }
func (s *Selector) RigCount() int { return len(s.rigs) }

// Rig returns the rig registered at index i.
func (s *Selector) Rig(i int) (*Rig, error) {
	if i < 0 || i >= len(s.rigs) {
		return nil, &RangeError{Target: "rig", Index: i, Len: len(s.rigs)}
	}
	return s.rigs[i], nil
}

// ActiveRig returns the index of the live rig, or NoIndex.
func (s *Selector) ActiveRig() int {
	if s.activeRig() == nil {
		return NoIndex
	}
	return s.state.currentRig
}

func (s *Selector) PreviousRig() int { return s.state.previousRig }

// ActiveScheme returns the index of the live scheme on the live rig, or NoIndex.
func (s *Selector) ActiveScheme() int {
	rig := s.activeRig()
	if rig == nil {
		return NoIndex
	}
	for i, sc := range rig.schemes {
		if sc.Active() {
			return i
		}
	}
	return NoIndex
}

// CurrentScheme is the scheme index the next relative SelectScheme advances from.
func (s *Selector) CurrentScheme() int  { return s.state.currentScheme }
func (s *Selector) PreviousScheme() int { return s.state.previousScheme }

func (s *Selector) ActiveSchemeKind() (SchemeKind, bool) {
	return s.currentActiveSchemeKind()
}

func (s *Selector) LoopRigs() bool           { return s.state.loopRigs }
func (s *Selector) SetLoopRigs(loop bool)    { s.state.loopRigs = loop }
func (s *Selector) LoopSchemes() bool        { return s.state.loopSchemes }
func (s *Selector) SetLoopSchemes(loop bool) { s.state.loopSchemes = loop }

func (s *Selector) activeRig() *Rig {
	i := s.state.currentRig
	if i < 0 || i >= len(s.rigs) || !s.rigs[i].active {
		return nil
	}
	return s.rigs[i]
}

// markActiveRig leaves exactly rig i flagged active.
func (s *Selector) markActiveRig(i int) {
	for j, rig := range s.rigs {
		rig.active = j == i
	}
}
