package scene

import "math"

// Phase classifies a group's convergence for display purposes. Nothing in
// the frame loop branches on it.
type Phase int

const (
	PhaseHidden Phase = iota
	PhaseConverging
	PhaseVisible
)

func (p Phase) String() string {
	switch p {
	case PhaseHidden:
		return "hidden"
	case PhaseConverging:
		return "converging"
	case PhaseVisible:
		return "visible"
	default:
		return "unknown"
	}
}

// Property names understood by the transition system.
const (
	PropOffsetY = "y"
	PropOpacity = "opacity"
	PropScale   = "scale"
)

// Group is the set of properties owned by one section.
type Group struct {
	Name  string
	Owner int
	Props []*Property
}

func NewGroup(name string, owner int, props ...*Property) *Group {
	return &Group{Name: name, Owner: owner, Props: props}
}

// Visible reports whether section selects this group.
func (g *Group) Visible(section int) bool {
	return g != nil && section == g.Owner
}

// Step advances every property one frame toward the target implied by
// section.
func (g *Group) Step(section int, factor float64) {
	if g == nil {
		return
	}
	visible := g.Visible(section)
	for _, p := range g.Props {
		p.Step(visible, factor)
	}
}

// Property returns the named property, or nil.
func (g *Group) Property(name string) *Property {
	if g == nil {
		return nil
	}
	for _, p := range g.Props {
		if p != nil && p.Name == name {
			return p
		}
	}
	return nil
}

// Value returns the current value of the named property.
func (g *Group) Value(name string) (float64, bool) {
	p := g.Property(name)
	if p == nil {
		return 0, false
	}
	return p.Current, true
}

// Phase reports HIDDEN or VISIBLE once every property is within eps of the
// corresponding endpoint, CONVERGING otherwise.
func (g *Group) Phase(section int, eps float64) Phase {
	visible := g.Visible(section)
	if g != nil {
		for _, p := range g.Props {
			if p != nil && math.Abs(p.Current-p.Target(visible)) > eps {
				return PhaseConverging
			}
		}
	}
	if visible {
		return PhaseVisible
	}
	return PhaseHidden
}
