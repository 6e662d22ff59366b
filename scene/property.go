package scene

import "github.com/weihouang/folio/common"

// DefaultDamping is the fraction of the remaining distance closed per frame.
const DefaultDamping = 0.05

// Property is a continuous value that eases toward one of two targets
// depending on whether its group is the active section.
type Property struct {
	Name    string
	Current float64
	Visible float64
	Hidden  float64
}

// NewProperty creates a property resting at its hidden target, or at its
// visible target when startVisible is set.
func NewProperty(name string, visible, hidden float64, startVisible bool) *Property {
	p := &Property{Name: name, Visible: visible, Hidden: hidden, Current: hidden}
	if startVisible {
		p.Current = visible
	}
	return p
}

// Target returns the value the property is converging on.
func (p *Property) Target(visible bool) float64 {
	if visible {
		return p.Visible
	}
	return p.Hidden
}

// Step moves Current one damped step toward the selected target.
func (p *Property) Step(visible bool, factor float64) {
	if p == nil {
		return
	}
	p.Current = common.Lerp(p.Current, p.Target(visible), factor)
}

// Retarget replaces both targets and leaves Current where it is, so the next
// frames ease from the present value instead of snapping.
func (p *Property) Retarget(visible, hidden float64) {
	if p == nil {
		return
	}
	p.Visible = visible
	p.Hidden = hidden
}
