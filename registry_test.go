package camrig

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_NilDescriptor(t *testing.T) {
	sel, _ := newTestSelector(true)

	idx, err := sel.Register(nil)
	require.ErrorIs(t, err, ErrConfiguration)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, NoIndex, idx)
	assert.Zero(t, sel.RigCount())

	_, err = sel.Register(&RigSpec{Schemes: []SchemeSpec{OrbitScheme(OrbitOptions{})}})
	require.ErrorIs(t, err, ErrConfiguration)
	assert.Zero(t, sel.RigCount())
}

func TestRegister_InvalidSchemeRejectsWholeRig(t *testing.T) {
	scene := NewSceneGraph()
	surface := &mockSurface{}
	sel := NewSelector(Config{Scene: scene, Surface: surface})
	cam := NewPerspectiveCamera(mgl32.Vec3{})

	_, err := sel.Register(&RigSpec{Camera: cam, Schemes: []SchemeSpec{
		OrbitScheme(OrbitOptions{}),
		PointerCaptureScheme(PointerCaptureOptions{Sensitivity: -1}),
	}})
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Reason, "scheme 1")
	assert.Contains(t, err.Error(), "sensitivity")
	assert.Zero(t, sel.RigCount())
	assert.Empty(t, scene.Cameras())
	assert.Empty(t, surface.listeners, "no control was built")

	_, err = sel.Register(&RigSpec{Camera: cam, Schemes: []SchemeSpec{{Kind: SchemeKind(9)}}})
	require.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "unknown scheme kind")
}

func TestRegister_BuildsTaggedDormantSchemes(t *testing.T) {
	scene := NewSceneGraph()
	ids := []uuid.UUID{
		uuid.MustParse("6f1c1d7e-8d8f-4a55-9f5b-0f3e3f4b0a01"),
		uuid.MustParse("6f1c1d7e-8d8f-4a55-9f5b-0f3e3f4b0a02"),
	}
	next := 0
	sel := NewSelector(Config{
		Scene:       scene,
		FieldOfView: 60,
		NewID: func() uuid.UUID {
			id := ids[next]
			next++
			return id
		},
	})
	cam := NewPerspectiveCamera(mgl32.Vec3{0, 0, 10})

	idx, err := sel.Register(&RigSpec{Camera: cam, Schemes: []SchemeSpec{
		OrbitScheme(OrbitOptions{RotateSpeed: 2}),
		PointerCaptureScheme(PointerCaptureOptions{}),
	}})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, []Camera{cam}, scene.Cameras())
	assert.Equal(t, float32(60), cam.Fov())
	assert.True(t, mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 1000).ApproxEqual(cam.Projection()))

	rig, err := sel.Rig(0)
	require.NoError(t, err)
	assert.False(t, rig.Active())
	assert.Same(t, cam, rig.Camera())

	schemes := rig.Schemes()
	require.Len(t, schemes, 2)
	assert.Equal(t, OrbitStyle, schemes[0].Kind())
	assert.Equal(t, PointerCaptureStyle, schemes[1].Kind())
	for i, sc := range schemes {
		assert.Equal(t, ids[i], sc.ID())
		assert.Equal(t, sc.Kind(), sc.Control().Tag().Kind)
		assert.False(t, sc.Active())
	}

	orbit := schemes[0].Control().(*OrbitControls)
	assert.False(t, orbit.Enabled())
	assert.Equal(t, float32(2), orbit.Options().RotateSpeed)
	assert.Equal(t, float32(1), orbit.Options().ZoomSpeed)
	assert.False(t, schemes[1].Control().(*PointerCaptureControls).Connected())

	_, err = sel.Rig(1)
	require.ErrorIs(t, err, ErrRange)
}

func TestRegister_DefaultIdentitiesAreUnique(t *testing.T) {
	sel, _ := newTestSelector(false)
	mustRegister(t, sel, OrbitScheme(OrbitOptions{}), OrbitScheme(OrbitOptions{}), PointerCaptureScheme(PointerCaptureOptions{}))

	rig, _ := sel.Rig(0)
	seen := map[uuid.UUID]bool{}
	for _, sc := range rig.Schemes() {
		assert.NotEqual(t, uuid.Nil, sc.ID())
		assert.False(t, seen[sc.ID()])
		seen[sc.ID()] = true
	}
}

func TestRegister_CustomFactories(t *testing.T) {
	var built []SchemeKind
	sel := NewSelector(Config{
		NewOrbit: func(camera Camera, surface Surface, opts OrbitOptions) OrbitControl {
			built = append(built, OrbitStyle)
			return NewOrbitControls(camera, surface, opts)
		},
		NewPointerCapture: func(camera Camera, surface Surface, opts PointerCaptureOptions) PointerCaptureControl {
			built = append(built, PointerCaptureStyle)
			assert.Equal(t, DefaultPointerCaptureOptions().Sensitivity, opts.Sensitivity)
			return NewPointerCaptureControls(camera, surface, opts)
		},
	})
	mustRegister(t, sel, PointerCaptureScheme(PointerCaptureOptions{}), OrbitScheme(OrbitOptions{}))
	assert.Equal(t, []SchemeKind{PointerCaptureStyle, OrbitStyle}, built)
}

func TestSchemeOptions_Validation(t *testing.T) {
	tests := []struct {
		name string
		spec SchemeSpec
		ok   bool
	}{
		{"orbit defaults", OrbitScheme(OrbitOptions{}), true},
		{"pointer defaults", PointerCaptureScheme(PointerCaptureOptions{}), true},
		{"negative rotate speed", OrbitScheme(OrbitOptions{RotateSpeed: -1}), false},
		{"negative zoom speed", OrbitScheme(OrbitOptions{ZoomSpeed: -0.5}), false},
		{"negative min distance", OrbitScheme(OrbitOptions{MinDistance: -1}), false},
		{"max below min distance", OrbitScheme(OrbitOptions{MinDistance: 5, MaxDistance: 2}), false},
		{"polar above pi", OrbitScheme(OrbitOptions{MaxPolarAngle: 4}), false},
		{"polar inverted", OrbitScheme(OrbitOptions{MinPolarAngle: 2, MaxPolarAngle: 1}), false},
		{"negative move speed", PointerCaptureScheme(PointerCaptureOptions{MoveSpeed: -1}), false},
		{"pointer polar negative", PointerCaptureScheme(PointerCaptureOptions{MinPolarAngle: -0.1}), false},
		{"pointer polar window", PointerCaptureScheme(PointerCaptureOptions{MinPolarAngle: 0.5, MaxPolarAngle: 2.5}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.spec.resolved()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrConfiguration)
			}
		})
	}
}

func TestSchemeOptions_Defaults(t *testing.T) {
	o := OrbitOptions{}.withDefaults()
	assert.Equal(t, float32(1), o.RotateSpeed)
	assert.Equal(t, float32(1), o.ZoomSpeed)
	assert.True(t, math.IsInf(float64(o.MaxDistance), 1))
	assert.Equal(t, float32(math.Pi), o.MaxPolarAngle)

	p := PointerCaptureOptions{}.withDefaults()
	assert.Equal(t, DefaultPointerCaptureOptions(), p)

	assert.Equal(t, "orbit", OrbitStyle.String())
	assert.Equal(t, "pointer-capture", PointerCaptureStyle.String())
	assert.Equal(t, "unknown", SchemeKind(7).String())
}
