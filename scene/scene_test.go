package scene

import (
	"math"
	"testing"
)

func TestPropertyStepTowardVisible(t *testing.T) {
	g := NewGroup("about", 1, NewProperty(PropOffsetY, 0, 50, false))
	p := g.Property(PropOffsetY)

	g.Step(1, DefaultDamping)
	if p.Current != 47.5 {
		t.Fatalf("expected 47.5 after one step, got %v", p.Current)
	}

	prev := p.Current
	for i := 0; i < 500; i++ {
		g.Step(1, DefaultDamping)
		if p.Current >= prev {
			t.Fatalf("step %d: expected strict decrease, %v -> %v", i, prev, p.Current)
		}
		if p.Current <= 0 {
			t.Fatalf("step %d: reached or crossed target: %v", i, p.Current)
		}
		prev = p.Current
	}
}

func TestPropertyStableNearTarget(t *testing.T) {
	p := NewProperty(PropOpacity, 1, 0, false)
	for i := 0; i < 2000; i++ {
		p.Step(true, DefaultDamping)
	}
	before := p.Current
	p.Step(true, DefaultDamping)
	if d := math.Abs(p.Current - before); d > 1e-12 {
		t.Fatalf("expected stable value once converged, moved by %v", d)
	}
	if math.Abs(p.Current-1) > 1e-9 {
		t.Fatalf("expected ~1, got %v", p.Current)
	}
}

func TestGroupSwitchMidConvergence(t *testing.T) {
	g := NewGroup("about", 1, NewProperty(PropOffsetY, 0, 50, false))
	p := g.Property(PropOffsetY)
	for i := 0; i < 10; i++ {
		g.Step(1, DefaultDamping)
	}
	mid := p.Current

	g.Step(2, DefaultDamping)
	want := mid + (50-mid)*DefaultDamping
	if math.Abs(p.Current-want) > 1e-12 {
		t.Fatalf("expected ease from %v toward hidden (%v), got %v", mid, want, p.Current)
	}
}

func TestGroupsIndependent(t *testing.T) {
	a := NewGroup("hero", 0, NewProperty(PropOpacity, 1, 0, true))
	b := NewGroup("about", 1, NewProperty(PropOpacity, 1, 0, false))

	for i := 0; i < 5; i++ {
		a.Step(1, DefaultDamping)
		b.Step(1, DefaultDamping)
	}
	va, _ := a.Value(PropOpacity)
	vb, _ := b.Value(PropOpacity)
	if math.Abs(va+vb-1) > 1e-12 {
		t.Fatalf("expected mirrored fades, got hero=%v about=%v", va, vb)
	}
}

func TestGroupPhase(t *testing.T) {
	cases := []struct {
		name    string
		section int
		steps   int
		want    Phase
	}{
		{"owner_at_rest_hidden", 0, 0, PhaseHidden},
		{"owner_selected_converging", 2, 1, PhaseConverging},
		{"owner_selected_settled", 2, 1000, PhaseVisible},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := NewGroup("projects", 2, NewProperty(PropOpacity, 1, 0, false))
			for i := 0; i < c.steps; i++ {
				g.Step(c.section, DefaultDamping)
			}
			if got := g.Phase(c.section, 1e-6); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestRetargetKeepsCurrent(t *testing.T) {
	p := NewProperty(PropOffsetY, 0, 50, false)
	p.Step(true, DefaultDamping)
	p.Retarget(10, 80)
	if p.Current != 47.5 {
		t.Fatalf("retarget must not move current, got %v", p.Current)
	}
	p.Step(false, DefaultDamping)
	if want := 47.5 + (80-47.5)*DefaultDamping; p.Current != want {
		t.Fatalf("expected %v, got %v", want, p.Current)
	}
}

func TestCameraRig(t *testing.T) {
	rig := &CameraRig{
		Position: Vec3{0, 10, 50},
		Targets:  []Vec3{{0, 10, 50}, {0, 0, 40}},
	}

	rig.Step(1, DefaultDamping)
	want := Vec3{0, 9.5, 49.5}
	if rig.Position.Sub(want).Len() > 1e-12 {
		t.Fatalf("expected %v, got %v", want, rig.Position)
	}

	if got := rig.Target(7); got != rig.Targets[1] {
		t.Fatalf("expected clamp to last target, got %v", got)
	}
	if got := rig.Target(-1); got != rig.Targets[0] {
		t.Fatalf("expected clamp to first target, got %v", got)
	}

	var empty *CameraRig
	empty.Step(0, DefaultDamping)
}

func TestOrbitApply(t *testing.T) {
	target := Vec3{Y: 2}
	eye := Vec3{Y: 12, Z: 50}
	radius := eye.Sub(target).Len()

	cases := []struct {
		name  string
		orbit Orbit
		eye   Vec3
		check func(t *testing.T, got Vec3)
	}{
		{
			name:  "zero_offsets_keep_eye",
			orbit: Orbit{MinPolar: math.Pi / 4, MaxPolar: math.Pi / 2},
			eye:   eye,
			check: func(t *testing.T, got Vec3) {
				if got != eye {
					t.Fatalf("expected %+v, got %+v", eye, got)
				}
			},
		},
		{
			name:  "half_turn_mirrors",
			orbit: Orbit{Azimuth: math.Pi, MinPolar: math.Pi / 4, MaxPolar: math.Pi / 2},
			eye:   eye,
			check: func(t *testing.T, got Vec3) {
				if math.Abs(got.Z+50) > 1e-9 || math.Abs(got.Y-12) > 1e-9 || math.Abs(got.X) > 1e-9 {
					t.Fatalf("expected eye behind target, got %+v", got)
				}
			},
		},
		{
			name:  "polar_clamped_to_top",
			orbit: Orbit{Polar: -3, MinPolar: math.Pi / 4, MaxPolar: math.Pi / 2},
			eye:   eye,
			check: func(t *testing.T, got Vec3) {
				if math.Abs(got.Sub(target).Y-radius*math.Cos(math.Pi/4)) > 1e-9 {
					t.Fatalf("expected polar pi/4, got %+v", got)
				}
			},
		},
		{
			name:  "viewpoint_below_limit_kept",
			orbit: Orbit{Azimuth: 0.5, MinPolar: math.Pi / 4, MaxPolar: math.Pi / 2},
			eye:   Vec3{Y: -8, Z: 50},
			check: func(t *testing.T, got Vec3) {
				if math.Abs(got.Y+8) > 1e-9 {
					t.Fatalf("authored height should be kept, got %+v", got)
				}
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.orbit.Apply(tc.eye, target)
			if d := got.Sub(target).Len() - tc.eye.Sub(target).Len(); math.Abs(d) > 1e-9 {
				t.Fatalf("distance changed by %v", d)
			}
			tc.check(t, got)
		})
	}
}

func TestOrbitRotateClampsSlack(t *testing.T) {
	o := Orbit{MinPolar: math.Pi / 4, MaxPolar: math.Pi / 2}
	eye, target := Vec3{Z: 10}, Vec3{}

	o.Rotate(0, 5, eye, target)
	if o.Polar != 0 {
		t.Fatalf("eye already at max polar, offset should stay 0, got %v", o.Polar)
	}
	o.Rotate(0, -0.1, eye, target)
	if math.Abs(o.Polar+0.1) > 1e-12 {
		t.Fatalf("dragging back should move at once, got %v", o.Polar)
	}
}
