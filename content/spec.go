// Package content loads the portfolio copy and section layout from YAML.
package content

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/weihouang/folio/scene"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoSections   = errors.New("content: no sections defined")
	ErrBadDamping   = errors.New("content: damping must be in (0,1)")
	ErrSectionOwner = errors.New("content: unknown section")
	ErrBadParticles = errors.New("content: particle counts must not be negative")
	ErrBadOrbit     = errors.New("content: orbit limits must satisfy 0 <= min < max <= 180")
)

type Spec struct {
	Title     string        `yaml:"title"`
	Initials  string        `yaml:"initials"`
	Banner    string        `yaml:"banner"`
	Damping   float64       `yaml:"damping"`
	Camera    CameraSpec    `yaml:"camera"`
	Particles ParticleSpec  `yaml:"particles"`
	Hero      HeroSpec      `yaml:"hero"`
	About     AboutSpec     `yaml:"about"`
	Projects  []ProjectSpec `yaml:"projects"`
	Skills    []SkillSpec   `yaml:"skills"`
	Sections  []SectionSpec `yaml:"sections"`
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() scene.Vec3 {
	return scene.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

type CameraSpec struct {
	FOV   float64  `yaml:"fov"`
	Start Vec3Spec `yaml:"start"`
	// Drag orbit polar limits in degrees from straight up.
	MinPolarDeg float64 `yaml:"min_polar_deg"`
	MaxPolarDeg float64 `yaml:"max_polar_deg"`
}

type ParticleSpec struct {
	Count       int     `yaml:"count"`
	NarrowCount int     `yaml:"narrow_count"`
	Spread      float64 `yaml:"spread"`
	Size        float64 `yaml:"size"`
	Spin        float64 `yaml:"spin"`
	Seed        int64   `yaml:"seed"`
}

type HeroSpec struct {
	Size           float64 `yaml:"size"`
	NarrowSize     float64 `yaml:"narrow_size"`
	Hint           string  `yaml:"hint"`
	HintSize       float64 `yaml:"hint_size"`
	HintY          float64 `yaml:"hint_y"`
	HintScript     string  `yaml:"hint_script"`
	HintAmplitude  float64 `yaml:"hint_amplitude"`
	HintPeriod     float64 `yaml:"hint_period"`
	TitleScript    string  `yaml:"title_script"`
	TitleAmplitude float64 `yaml:"title_amplitude"`
	TitlePeriod    float64 `yaml:"title_period"`
}

type AboutSpec struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

type ProjectSpec struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tech        []string `yaml:"tech"`
	Link        string   `yaml:"link"`
}

type SkillSpec struct {
	Label string    `yaml:"label"`
	Color YAMLColor `yaml:"color"`
}

type SectionSpec struct {
	Name       string         `yaml:"name"`
	Camera     Vec3Spec       `yaml:"camera"`
	Anchor     Vec3Spec       `yaml:"anchor"`
	Properties []PropertySpec `yaml:"properties"`
}

type PropertySpec struct {
	Name    string  `yaml:"name"`
	Visible float64 `yaml:"visible"`
	Hidden  float64 `yaml:"hidden"`
}

// YAMLColor accepts "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.NRGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseHexColor(raw)
	if err != nil {
		return err
	}
	c.NRGBA = parsed
	return nil
}

func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("content: bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("content: bad color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Parse decodes and validates a spec, filling defaults for omitted tuning.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("content: unmarshal: %w", err)
	}
	spec.applyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *Spec) applyDefaults() {
	if s.Damping == 0 {
		s.Damping = scene.DefaultDamping
	}
	if s.Camera.FOV == 0 {
		s.Camera.FOV = 75
	}
	if s.Camera.MinPolarDeg == 0 && s.Camera.MaxPolarDeg == 0 {
		s.Camera.MinPolarDeg, s.Camera.MaxPolarDeg = 45, 90
	}
	if s.Particles.Spread == 0 {
		s.Particles.Spread = 100
	}
	if s.Particles.Size == 0 {
		s.Particles.Size = 0.2
	}
	if s.Particles.NarrowCount == 0 || s.Particles.NarrowCount > s.Particles.Count {
		s.Particles.NarrowCount = s.Particles.Count
	}
	if s.Hero.Size == 0 {
		s.Hero.Size = 5
	}
}

func (s *Spec) Validate() error {
	if len(s.Sections) == 0 {
		return ErrNoSections
	}
	if s.Damping <= 0 || s.Damping >= 1 {
		return fmt.Errorf("%w: got %v", ErrBadDamping, s.Damping)
	}
	if s.Particles.Count < 0 || s.Particles.NarrowCount < 0 {
		return fmt.Errorf("%w: count=%d narrow_count=%d", ErrBadParticles, s.Particles.Count, s.Particles.NarrowCount)
	}
	if lo, hi := s.Camera.MinPolarDeg, s.Camera.MaxPolarDeg; lo < 0 || hi > 180 || lo >= hi {
		return fmt.Errorf("%w: got %v..%v", ErrBadOrbit, lo, hi)
	}
	seen := make(map[string]bool, len(s.Sections))
	for i, sec := range s.Sections {
		if sec.Name == "" {
			return fmt.Errorf("content: section %d has no name", i)
		}
		if seen[sec.Name] {
			return fmt.Errorf("content: duplicate section %q", sec.Name)
		}
		seen[sec.Name] = true
		for _, p := range sec.Properties {
			switch p.Name {
			case scene.PropOffsetY, scene.PropOpacity, scene.PropScale:
			default:
				return fmt.Errorf("content: section %q: unknown property %q", sec.Name, p.Name)
			}
		}
	}
	return nil
}

// SectionIndex returns the ordinal of the named section.
func (s *Spec) SectionIndex(name string) (int, error) {
	for i, sec := range s.Sections {
		if sec.Name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrSectionOwner, name)
}

// CameraTargets returns one camera point per section, in section order.
func (s *Spec) CameraTargets() []scene.Vec3 {
	out := make([]scene.Vec3, len(s.Sections))
	for i, sec := range s.Sections {
		out[i] = sec.Camera.Vec3()
	}
	return out
}

// Group builds the transition group for section i. The group starts at its
// visible values when i is the initial section.
func (s *Spec) Group(i int) *scene.Group {
	sec := s.Sections[i]
	props := make([]*scene.Property, 0, len(sec.Properties))
	for _, p := range sec.Properties {
		props = append(props, scene.NewProperty(p.Name, p.Visible, p.Hidden, i == 0))
	}
	return scene.NewGroup(sec.Name, i, props...)
}

// OrbitLimits returns the drag orbit polar limits in radians.
func (s *Spec) OrbitLimits() (float64, float64) {
	return s.Camera.MinPolarDeg * math.Pi / 180, s.Camera.MaxPolarDeg * math.Pi / 180
}
