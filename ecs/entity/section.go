package entity

import (
	"fmt"
	"strings"

	"github.com/weihouang/folio/content"
	"github.com/weihouang/folio/ecs"
	"github.com/weihouang/folio/ecs/component"
	"github.com/weihouang/folio/render"
	"github.com/weihouang/folio/scene"
)

const (
	layerText = 1
	layerCard = 2

	headingSize   = 3
	bodySize      = 1.2
	bodyWrap      = 60
	cardWidth     = 18
	cardHeight    = 10
	cardColumns   = 2
	cardGapX      = 2
	cardGapY      = 2
	skillSpacingY = 4
)

// NewSectionGroup creates the entity that owns section i's transition
// properties.
func NewSectionGroup(w *ecs.World, spec *content.Spec, i int) (*scene.Group, error) {
	g := spec.Group(i)
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SceneGroupComponent.Kind(), &component.SceneGroup{Group: g}); err != nil {
		return nil, fmt.Errorf("section %s: add group: %w", g.Name, err)
	}
	return g, nil
}

// addMember creates a drawable entity displaying g's values at pos.
func addMember(w *ecs.World, g *scene.Group, pos scene.Vec3, layer int, tint component.Tint) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Scale: 1}); err != nil {
		return 0, fmt.Errorf("member: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.TintComponent.Kind(), &tint); err != nil {
		return 0, fmt.Errorf("member: add tint: %w", err)
	}
	if err := ecs.Add(w, e, component.GroupMemberComponent.Kind(), &component.GroupMember{Group: g}); err != nil {
		return 0, fmt.Errorf("member: add group member: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer}); err != nil {
		return 0, fmt.Errorf("member: add render layer: %w", err)
	}
	return e, nil
}

func addLabel(w *ecs.World, g *scene.Group, pos scene.Vec3, label component.Label, tint component.Tint) (ecs.Entity, error) {
	e, err := addMember(w, g, pos, layerText, tint)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.LabelComponent.Kind(), &label); err != nil {
		return 0, fmt.Errorf("label %q: add label: %w", label.Text, err)
	}
	return e, nil
}

func addIdle(w *ecs.World, e ecs.Entity, script string, amplitude, period float64) error {
	if script == "" {
		return nil
	}
	if err := ecs.Add(w, e, component.IdleMotionComponent.Kind(), &component.IdleMotion{
		Script:    script,
		Amplitude: amplitude,
		Period:    period,
	}); err != nil {
		return fmt.Errorf("idle %s: %w", script, err)
	}
	return nil
}

func NewHero(w *ecs.World, spec *content.Spec, g *scene.Group, anchor scene.Vec3) error {
	hero := spec.Hero
	title, err := addLabel(w, g, anchor, component.Label{Text: spec.Title, Size: hero.Size, NarrowSize: hero.NarrowSize}, component.Tint{})
	if err != nil {
		return fmt.Errorf("hero: %w", err)
	}
	if err := addIdle(w, title, hero.TitleScript, hero.TitleAmplitude, hero.TitlePeriod); err != nil {
		return fmt.Errorf("hero: %w", err)
	}

	if hero.Hint == "" {
		return nil
	}
	hint, err := addLabel(w, g, anchor.Add(scene.Vec3{Y: hero.HintY}), component.Label{Text: hero.Hint, Size: hero.HintSize}, component.Tint{})
	if err != nil {
		return fmt.Errorf("hero: %w", err)
	}
	if err := addIdle(w, hint, hero.HintScript, hero.HintAmplitude, hero.HintPeriod); err != nil {
		return fmt.Errorf("hero: %w", err)
	}
	// The hint jumps to the section after the hero on click.
	if err := ecs.Add(w, hint, component.SectionLinkComponent.Kind(), &component.SectionLink{Target: g.Owner + 1}); err != nil {
		return fmt.Errorf("hero: add section link: %w", err)
	}
	return nil
}

func NewAbout(w *ecs.World, spec *content.Spec, g *scene.Group, anchor scene.Vec3) error {
	if _, err := addLabel(w, g, anchor.Add(scene.Vec3{Y: 8}), component.Label{Text: spec.About.Heading, Size: headingSize}, component.Tint{}); err != nil {
		return fmt.Errorf("about: %w", err)
	}
	body := strings.Join(render.Wrap(strings.Join(strings.Fields(spec.About.Body), " "), bodyWrap), "\n")
	if _, err := addLabel(w, g, anchor.Add(scene.Vec3{Y: -2}), component.Label{Text: body, Size: bodySize}, component.Tint{}); err != nil {
		return fmt.Errorf("about: %w", err)
	}
	return nil
}

func NewProjects(w *ecs.World, spec *content.Spec, g *scene.Group, anchor scene.Vec3) error {
	rows := (len(spec.Projects) + cardColumns - 1) / cardColumns
	top := float64(rows-1) * (cardHeight + cardGapY) / 2

	if _, err := addLabel(w, g, anchor.Add(scene.Vec3{Y: top + cardHeight/2 + 4}), component.Label{Text: "Projects", Size: headingSize}, component.Tint{}); err != nil {
		return fmt.Errorf("projects: %w", err)
	}

	for i, p := range spec.Projects {
		row, col := i/cardColumns, i%cardColumns
		cols := min(cardColumns, len(spec.Projects)-row*cardColumns)
		x := (float64(col) - float64(cols-1)/2) * (cardWidth + cardGapX)
		y := top - float64(row)*(cardHeight+cardGapY)

		e, err := addMember(w, g, anchor.Add(scene.Vec3{X: x, Y: y}), layerCard, component.Tint{})
		if err != nil {
			return fmt.Errorf("projects: %s: %w", p.Title, err)
		}
		if err := ecs.Add(w, e, component.ProjectCardComponent.Kind(), &component.ProjectCard{
			Title:       p.Title,
			Description: p.Description,
			Tech:        append([]string(nil), p.Tech...),
			Link:        p.Link,
			Width:       cardWidth,
			Height:      cardHeight,
		}); err != nil {
			return fmt.Errorf("projects: %s: add card: %w", p.Title, err)
		}
	}
	return nil
}

func NewSkills(w *ecs.World, spec *content.Spec, g *scene.Group, anchor scene.Vec3) error {
	if _, err := addLabel(w, g, anchor.Add(scene.Vec3{Y: 8}), component.Label{Text: "My Skills", Size: headingSize}, component.Tint{}); err != nil {
		return fmt.Errorf("skills: %w", err)
	}
	for i, s := range spec.Skills {
		pos := anchor.Add(scene.Vec3{Y: 2 - float64(i)*skillSpacingY})
		if _, err := addLabel(w, g, pos, component.Label{Text: s.Label, Size: 2}, component.Tint{Color: s.Color.NRGBA}); err != nil {
			return fmt.Errorf("skills: %w", err)
		}
	}
	return nil
}

// NewPlaceholder titles a section that has no dedicated layout.
func NewPlaceholder(w *ecs.World, spec *content.Spec, g *scene.Group, anchor scene.Vec3) error {
	if _, err := addLabel(w, g, anchor, component.Label{Text: g.Name, Size: headingSize}, component.Tint{}); err != nil {
		return fmt.Errorf("section %s: %w", g.Name, err)
	}
	return nil
}
