package ecs

// Clock counts frames and accumulates elapsed seconds. Elapsed only grows.
type Clock struct {
	Frame   int
	Elapsed float64
	Delta   float64
}

// Tick advances the clock by dt seconds. Non-positive dt still counts a
// frame but leaves Elapsed unchanged.
func (c *Clock) Tick(dt float64) {
	if c == nil {
		return
	}
	c.Frame++
	if dt < 0 {
		dt = 0
	}
	c.Delta = dt
	c.Elapsed += dt
}

// Viewport is the logical screen size in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// Narrow reports whether the compact layout applies.
func (v Viewport) Narrow(threshold float64) bool {
	return v.Width > 0 && v.Width < threshold
}
