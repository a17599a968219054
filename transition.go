package camrig

import (
	"github.com/go-gl/mathgl/mgl32"
)

// deactivateRigSchemes puts every scheme on rig rigIndex to rest.
func (s *Selector) deactivateRigSchemes(rigIndex int) {
	if rigIndex < 0 || rigIndex >= len(s.rigs) {
		return
	}
	for _, sc := range s.rigs[rigIndex].schemes {
		sc.setActive(false)
		disableScheme(sc)
	}
}

// activateScheme makes the first scheme of the given kind on the live rig the
// only active one and returns its index, or NoIndex if the rig has none.
func (s *Selector) activateScheme(kind SchemeKind) int {
	rig := s.activeRig()
	if rig == nil {
		return NoIndex
	}
	found := NoIndex
	for i, sc := range rig.schemes {
		match := found == NoIndex && sc.kind == kind
		sc.setActive(match)
		if match {
			found = i
			enableScheme(sc)
		}
	}
	return found
}

// transitionSchemeByIndex moves the live rig from scheme prev to scheme curr.
// An incoming orbit scheme is aimed along the outgoing scheme's look
// direction, one unit in front of the camera.
func (s *Selector) transitionSchemeByIndex(prev, curr int) {
	rig := s.activeRig()
	if rig == nil {
		return
	}
	outgoing := rig.scheme(prev)
	if outgoing == nil {
		return
	}
	outgoing.setActive(false)
	disableScheme(outgoing)

	incoming := rig.scheme(curr)
	if incoming == nil {
		return
	}
	incoming.setActive(true)

	switch incoming.kind {
	case OrbitStyle:
		var dir mgl32.Vec3
		outgoing.handle.LookDirection(&dir)
		orbit := incoming.orbit()
		orbit.SetTarget(rig.camera.Position().Add(dir))
		orbit.SetEnabled(true)
		orbit.Update()
	case PointerCaptureStyle:
		pc := incoming.pointerCapture()
		pc.Connect()
		pc.Lock()
	}
}

func (s *Selector) currentActiveSchemeKind() (SchemeKind, bool) {
	rig := s.activeRig()
	if rig == nil {
		return 0, false
	}
	for _, sc := range rig.schemes {
		if sc.Active() {
			return sc.kind, true
		}
	}
	return 0, false
}

func enableScheme(sc *Scheme) {
	switch sc.kind {
	case OrbitStyle:
		orbit := sc.orbit()
		orbit.SetEnabled(true)
		orbit.Update()
	case PointerCaptureStyle:
		pc := sc.pointerCapture()
		pc.Connect()
		pc.Lock()
	}
}

// disableScheme leaves an orbit scheme disabled at rest and releases a
// pointer capture scheme's capture before detaching it.
func disableScheme(sc *Scheme) {
	switch sc.kind {
	case OrbitStyle:
		orbit := sc.orbit()
		orbit.SetEnabled(false)
		orbit.Update()
	case PointerCaptureStyle:
		pc := sc.pointerCapture()
		pc.Unlock()
		pc.Disconnect()
	}
}
