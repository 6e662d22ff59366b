package content

import (
	"errors"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/weihouang/folio/scene"
)

func TestLoadDefault(t *testing.T) {
	spec, err := Load("")
	if err != nil {
		t.Fatalf("load default: %v", err)
	}
	if len(spec.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(spec.Sections))
	}
	for i, name := range []string{"hero", "about", "projects", "skills"} {
		idx, err := spec.SectionIndex(name)
		if err != nil || idx != i {
			t.Fatalf("section %q: expected index %d, got %d (%v)", name, i, idx, err)
		}
	}
	if spec.Damping != scene.DefaultDamping {
		t.Fatalf("expected damping %v, got %v", scene.DefaultDamping, spec.Damping)
	}
	if len(spec.Projects) != 4 || spec.Projects[0].Link == "" {
		t.Fatalf("expected four linked projects, got %+v", spec.Projects)
	}
	if got := spec.Skills[0].Color.NRGBA; got != (color.NRGBA{R: 0x61, G: 0xDB, B: 0xFB, A: 0xff}) {
		t.Fatalf("unexpected skill color %v", got)
	}
	if targets := spec.CameraTargets(); targets[0] != (scene.Vec3{X: 0, Y: 10, Z: 50}) {
		t.Fatalf("unexpected hero camera target %v", targets[0])
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{"no_sections", "title: x\n", ErrNoSections},
		{"damping_too_high", "damping: 1.5\nsections: [{name: a}]\n", ErrBadDamping},
		{"damping_negative", "damping: -0.1\nsections: [{name: a}]\n", ErrBadDamping},
		{"negative_particle_count", "particles: {count: -1}\nsections: [{name: hero}]\n", ErrBadParticles},
		{"negative_narrow_count", "particles: {count: 10, narrow_count: -5}\nsections: [{name: hero}]\n", ErrBadParticles},
		{"orbit_inverted", "camera: {min_polar_deg: 90, max_polar_deg: 45}\nsections: [{name: hero}]\n", ErrBadOrbit},
		{"orbit_past_bottom", "camera: {min_polar_deg: 10, max_polar_deg: 200}\nsections: [{name: hero}]\n", ErrBadOrbit},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.yaml))
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}

	msgs := []struct {
		name string
		yaml string
		frag string
	}{
		{"duplicate", "sections: [{name: a}, {name: a}]\n", "duplicate"},
		{"unnamed", "sections: [{camera: {x: 1}}]\n", "no name"},
		{"unknown_property", "sections: [{name: a, properties: [{name: tilt}]}]\n", "unknown property"},
		{"bad_color", "sections: [{name: a}]\nskills: [{label: x, color: nope}]\n", "bad color"},
	}
	for _, c := range msgs {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.yaml))
			if err == nil || !strings.Contains(err.Error(), c.frag) {
				t.Fatalf("expected error containing %q, got %v", c.frag, err)
			}
		})
	}
}

func TestGroupInitialState(t *testing.T) {
	spec, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	hero := spec.Group(0)
	if v, _ := hero.Value(scene.PropOpacity); v != 1 {
		t.Fatalf("initial section should start visible, opacity=%v", v)
	}
	about := spec.Group(1)
	if v, _ := about.Value(scene.PropOffsetY); v != 50 {
		t.Fatalf("other sections should start hidden, y=%v", v)
	}
	if about.Owner != 1 || about.Name != "about" {
		t.Fatalf("unexpected group identity %q/%d", about.Name, about.Owner)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ff69b480")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.NRGBA{R: 0xff, G: 0x69, B: 0xb4, A: 0x80}) {
		t.Fatalf("unexpected color %v", c)
	}
	if _, err := ParseHexColor("#12"); err == nil {
		t.Fatalf("expected error for short color")
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"bob.tengo", "scripts/bob.tengo", "content/scripts/float.tengo"} {
		data, err := LoadScript(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !strings.Contains(string(data), "offset") {
			t.Fatalf("%s: expected script to define offset", name)
		}
	}
	if _, err := LoadScript("missing.tengo"); err == nil {
		t.Fatalf("expected error for missing script")
	}
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("sections: [{name: only}]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(spec.Sections) != 1 || spec.Camera.FOV != 75 {
		t.Fatalf("expected one section and default fov, got %+v", spec)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadPrefersDiskDefault(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	spec, err := Load("")
	if err != nil {
		t.Fatalf("embedded fallback: %v", err)
	}
	if spec.Title != "Hi, I'm Wei-Ho Uang" {
		t.Fatalf("expected embedded title without a disk copy, got %q", spec.Title)
	}

	if err := os.MkdirAll(filepath.Join(dir, Dir), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, DefaultFile), []byte("title: \"DISK COPY\"\nsections: [{name: hero}]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err = Load("")
	if err != nil {
		t.Fatalf("disk default: %v", err)
	}
	if spec.Title != "DISK COPY" || len(spec.Sections) != 1 {
		t.Fatalf("expected the disk copy, got title=%q sections=%d", spec.Title, len(spec.Sections))
	}

	if err := os.WriteFile(filepath.Join(dir, DefaultFile), []byte("damping: 3\nsections: [{name: hero}]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(""); !errors.Is(err, ErrBadDamping) {
		t.Fatalf("a broken disk copy must be reported, got %v", err)
	}
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher([]string{dir})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "site.yaml")
	if err := os.WriteFile(target, []byte("sections: []"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("expected %s, got %s", target, name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close should be a no-op, got %v", err)
	}
}

func TestWatcherCoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher([]string{dir}, WithSettle(200*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	target := filepath.Join(dir, "site.yaml")
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(target, []byte(strings.Repeat("x", i+1)), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("expected %s, got %s", target, name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
	select {
	case name := <-w.Events:
		t.Fatalf("burst should produce one event, got another for %s", name)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherFilterOption(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher([]string{dir}, WithFilter(func(path string) bool {
		return filepath.Ext(path) == ".txt"
	}))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "site.yaml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	notes := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(notes, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != notes {
			t.Fatalf("expected only %s, got %s", notes, name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}

func TestOrbitLimitsDefault(t *testing.T) {
	spec, err := Parse([]byte("sections: [{name: hero}]\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	lo, hi := spec.OrbitLimits()
	if math.Abs(lo-math.Pi/4) > 1e-12 || math.Abs(hi-math.Pi/2) > 1e-12 {
		t.Fatalf("expected pi/4..pi/2, got %v..%v", lo, hi)
	}
}
