package camrig

import (
	"errors"
	"fmt"
)

// Register appends a rig built from spec and returns its index. Every
// scheme is validated before anything is built; on error nothing changes.
// The camera is added to the scene and given the default field of view and
// the last known viewport aspect. No scheme is activated.
func (s *Selector) Register(spec *RigSpec) (int, error) {
	if spec == nil {
		s.logger.Warnf("register: no rig descriptor")
		return NoIndex, configErrorf("no rig descriptor supplied")
	}
	if spec.Camera == nil {
		s.logger.Warnf("register: rig descriptor without camera")
		return NoIndex, configErrorf("rig descriptor has no camera")
	}

	resolved := make([]SchemeSpec, len(spec.Schemes))
	for i, sc := range spec.Schemes {
		r, err := sc.resolved()
		if err != nil {
			var cfgErr *ConfigurationError
			if errors.As(err, &cfgErr) {
				cfgErr.Reason = fmt.Sprintf("scheme %d: %s", i, cfgErr.Reason)
			}
			s.logger.Warnf("register: %v", err)
			return NoIndex, err
		}
		resolved[i] = r
	}

	rig := &Rig{camera: spec.Camera}
	for _, sc := range resolved {
		handle := s.newControl(spec.Camera, sc)
		tag := handle.Tag()
		tag.ID = s.newID()
		tag.Kind = sc.Kind
		tag.Active = false
		rig.schemes = append(rig.schemes, &Scheme{kind: sc.Kind, handle: handle})
	}

	s.scene.Add(spec.Camera)
	spec.Camera.SetFov(s.fov)
	spec.Camera.SetAspect(s.viewportAspect())
	spec.Camera.UpdateProjection()

	s.rigs = append(s.rigs, rig)
	index := len(s.rigs) - 1
	s.logger.Debugf("registered rig %d with %d schemes", index, len(rig.schemes))
	return index, nil
}

func (s *Selector) newControl(camera Camera, sc SchemeSpec) Control {
	if sc.Kind == PointerCaptureStyle {
		return s.newPointerCapture(camera, s.surface, sc.PointerCapture)
	}
	return s.newOrbit(camera, s.surface, sc.Orbit)
}
