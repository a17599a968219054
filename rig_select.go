package camrig

// SelectRig moves the view to another rig. index == Next advances from the
// current rig, any other value jumps to it.
//
// The scheme kind live on the outgoing rig is carried over to the incoming
// one. With no live scheme there is nothing to carry and the call returns
// NoIndex without changing anything. Advancing past the last rig returns the
// out-of-range candidate untouched unless looping is on, in which case it
// wraps to 0. An explicit index outside [0, RigCount) is a *RangeError.
func (s *Selector) SelectRig(index int) (int, error) {
	explicit := index != Next
	if explicit && (index < 0 || index >= len(s.rigs)) {
		s.logger.Warnf("select rig: index %d out of range", index)
		return NoIndex, &RangeError{Target: "rig", Index: index, Len: len(s.rigs)}
	}

	kind, ok := s.currentActiveSchemeKind()
	if !ok {
		s.logger.Debugf("select rig: no active scheme, nothing to carry over")
		return NoIndex, nil
	}

	candidate := index
	if !explicit {
		candidate = s.state.currentRig + 1
	}
	if candidate >= len(s.rigs) {
		if !s.state.loopRigs {
			return candidate, nil
		}
		candidate = 0
	}

	s.switchRig(candidate, kind)
	return s.state.currentRig, nil
}

// SetActiveRig makes rig index the live rig.
//
// The first call bootstraps: the camera projection is synced to the viewport
// and the rig's first OrbitStyle scheme is activated. Pointer capture
// schemes stay dormant until entered explicitly. Later calls carry the live
// scheme kind over from the outgoing rig, defaulting to OrbitStyle.
//
// Re-selecting the rig that is already live does nothing unless
// disableCurrent is set, in which case its scheme is torn down and
// re-activated.
func (s *Selector) SetActiveRig(index int, disableCurrent bool) error {
	if index < 0 || index >= len(s.rigs) {
		s.logger.Warnf("set active rig: index %d out of range", index)
		return &RangeError{Target: "rig", Index: index, Len: len(s.rigs)}
	}

	if s.activeRig() == nil {
		s.state.previousRig = s.state.currentRig
		s.state.currentRig = index
		s.markActiveRig(index)
		s.activateCamera(s.rigs[index])
		s.state.previousScheme = NoIndex
		s.state.currentScheme = s.activateScheme(OrbitStyle)
		s.logger.Debugf("rig %d bootstrapped, scheme %d active", index, s.state.currentScheme)
		return nil
	}

	if index == s.state.currentRig && !disableCurrent {
		return nil
	}

	kind, ok := s.currentActiveSchemeKind()
	if !ok {
		kind = OrbitStyle
	}
	s.switchRig(index, kind)
	return nil
}

// switchRig tears down the current rig's schemes, makes target the only
// live rig and activates the scheme of the given kind on it.
//
// The scheme cursor is reset to the scheme that was activated, since rigs
// can carry different scheme lists.
func (s *Selector) switchRig(target int, kind SchemeKind) {
	s.state.previousRig = s.state.currentRig
	s.state.currentRig = target

	s.deactivateRigSchemes(s.state.previousRig)
	s.markActiveRig(target)
	s.activateCamera(s.rigs[target])

	s.state.previousScheme = NoIndex
	s.state.currentScheme = s.activateScheme(kind)
	s.logger.Debugf("rig %d -> %d, %s scheme %d active",
		s.state.previousRig, target, kind, s.state.currentScheme)
}
