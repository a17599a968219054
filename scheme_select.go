package camrig

// SelectScheme switches the live scheme on the live rig. index == Next
// advances from the current scheme, any other value jumps to it.
//
// Advancing past the last scheme returns the out-of-range candidate
// untouched unless scheme looping is on, in which case it wraps to 0. An
// explicit index outside the rig's scheme list is a *RangeError. With no
// live rig the call returns NoIndex and does nothing.
func (s *Selector) SelectScheme(index int) (int, error) {
	rig := s.activeRig()
	if rig == nil {
		s.logger.Debugf("select scheme: no active rig")
		return NoIndex, nil
	}

	n := len(rig.schemes)
	explicit := index != Next
	if explicit && (index < 0 || index >= n) {
		s.logger.Warnf("select scheme: index %d out of range on rig %d", index, s.state.currentRig)
		return NoIndex, &RangeError{Target: "scheme", Index: index, Len: n}
	}

	candidate := index
	if !explicit {
		candidate = s.state.currentScheme + 1
	}
	if candidate >= n {
		if !s.state.loopSchemes || n == 0 {
			return candidate, nil
		}
		candidate = 0
	}

	previous := s.state.currentScheme
	s.state.previousScheme = previous
	s.state.currentScheme = candidate

	if rig.scheme(previous) == nil {
		// Nothing live to hand a direction over from.
		sc := rig.schemes[candidate]
		sc.setActive(true)
		enableScheme(sc)
	} else {
		s.transitionSchemeByIndex(previous, candidate)
	}
	s.logger.Debugf("rig %d scheme %d -> %d", s.state.currentRig, previous, candidate)
	return candidate, nil
}
