package camrig

// OnResize syncs the live camera's aspect ratio to a new viewport size.
// The size is remembered for cameras registered or activated later.
// Non-positive sizes (a minimised window) are ignored.
func (s *Selector) OnResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.viewportWidth = width
	s.viewportHeight = height

	rig := s.activeRig()
	if rig == nil {
		return
	}
	rig.camera.SetAspect(float32(width) / float32(height))
	rig.camera.UpdateProjection()
}

// RecomputeProjection rebuilds the live camera's projection from its current parameters.
func (s *Selector) RecomputeProjection() {
	rig := s.activeRig()
	if rig == nil {
		return
	}
	rig.camera.UpdateProjection()
}

func (s *Selector) viewportAspect() float32 {
	if s.viewportWidth <= 0 || s.viewportHeight <= 0 {
		return 1
	}
	return float32(s.viewportWidth) / float32(s.viewportHeight)
}

func (s *Selector) activateCamera(rig *Rig) {
	if s.viewportWidth > 0 && s.viewportHeight > 0 {
		rig.camera.SetAspect(s.viewportAspect())
	}
	rig.camera.UpdateProjection()
}
