package entity

import (
	"errors"
	"fmt"
	"log"

	"github.com/weihouang/folio/content"
	"github.com/weihouang/folio/ecs"
	"github.com/weihouang/folio/ecs/component"
	"github.com/weihouang/folio/scene"
)

var ErrStructureChanged = errors.New("entity: section list changed; restart to apply")

type sectionBuildFn func(w *ecs.World, spec *content.Spec, g *scene.Group, anchor scene.Vec3) error

var sectionRegistry = map[string]sectionBuildFn{
	"hero":     NewHero,
	"about":    NewAbout,
	"projects": NewProjects,
	"skills":   NewSkills,
}

// Scene records what Build created so hot reload can update it in place.
type Scene struct {
	Groups    []*scene.Group
	Camera    ecs.Entity
	Particles ecs.Entity
}

// Build populates w from spec. Each section gets one group entity plus its
// drawable members.
func Build(w *ecs.World, spec *content.Spec) (*Scene, error) {
	sc := &Scene{}

	camera, err := NewCamera(w, spec)
	if err != nil {
		return nil, err
	}
	sc.Camera = camera

	particles, err := NewParticleField(w, spec.Particles)
	if err != nil {
		return nil, err
	}
	sc.Particles = particles

	for i := range spec.Sections {
		g, err := NewSectionGroup(w, spec, i)
		if err != nil {
			return nil, err
		}
		sc.Groups = append(sc.Groups, g)
	}
	if err := buildMembers(w, spec, sc.Groups); err != nil {
		return nil, err
	}
	return sc, nil
}

func buildMembers(w *ecs.World, spec *content.Spec, groups []*scene.Group) error {
	for i, sec := range spec.Sections {
		build, ok := sectionRegistry[sec.Name]
		if !ok {
			log.Printf("entity: no layout for section %q, using placeholder", sec.Name)
			build = NewPlaceholder
		}
		if err := build(w, spec, groups[i], sec.Anchor.Vec3()); err != nil {
			return err
		}
	}
	return nil
}

// Reload retargets sc and recreates every section member from spec. Groups,
// camera and particles survive, so transitions continue from where they are.
func Reload(w *ecs.World, sc *Scene, spec *content.Spec) error {
	if err := Retarget(w, sc, spec); err != nil {
		return err
	}
	var stale []ecs.Entity
	ecs.ForEach(w, component.GroupMemberComponent.Kind(), func(e ecs.Entity, _ *component.GroupMember) {
		stale = append(stale, e)
	})
	for _, e := range stale {
		ecs.DestroyEntity(w, e)
	}
	return buildMembers(w, spec, sc.Groups)
}

// Retarget points groups and the camera at spec's values without moving
// any current value.
func Retarget(w *ecs.World, sc *Scene, spec *content.Spec) error {
	if sc == nil || len(spec.Sections) != len(sc.Groups) {
		return ErrStructureChanged
	}

	for i, sec := range spec.Sections {
		g := sc.Groups[i]
		for _, ps := range sec.Properties {
			if p := g.Property(ps.Name); p != nil {
				p.Retarget(ps.Visible, ps.Hidden)
				continue
			}
			g.Props = append(g.Props, scene.NewProperty(ps.Name, ps.Visible, ps.Hidden, false))
		}
	}

	cam, ok := ecs.Get(w, sc.Camera, component.CameraComponent.Kind())
	if !ok {
		return fmt.Errorf("entity: camera %v missing", sc.Camera)
	}
	cam.Rig.Targets = spec.CameraTargets()
	cam.FOV = spec.Camera.FOV
	cam.Orbit.MinPolar, cam.Orbit.MaxPolar = spec.OrbitLimits()
	return nil
}
