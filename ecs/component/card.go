package component

// ProjectCard is a clickable panel in the projects gallery.
type ProjectCard struct {
	Title       string
	Description string
	Tech        []string
	Link        string
	Width       float64
	Height      float64
	Hovered     bool
}

var ProjectCardComponent = NewComponent[ProjectCard]()
