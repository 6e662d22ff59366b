package component

// SectionLink makes an entity a clickable jump to another section.
type SectionLink struct {
	Target  int
	Hovered bool
}

var SectionLinkComponent = NewComponent[SectionLink]()
