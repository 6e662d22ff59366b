package component

// IdleMotion drives Transform.IdleY from a script evaluated against elapsed
// time.
type IdleMotion struct {
	Script    string
	Amplitude float64
	Period    float64
}

var IdleMotionComponent = NewComponent[IdleMotion]()
