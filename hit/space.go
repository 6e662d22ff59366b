// Package hit answers "what is under the pointer" for screen-space boxes
// using a chipmunk space as the spatial index.
package hit

import (
	"github.com/jakecoffman/cp"
)

// Rect is a screen-space rectangle with its top-left corner at X,Y.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

type box struct {
	body  *cp.Body
	shape *cp.Shape
	w, h  float64
}

// Space indexes one box per key. Boxes live on kinematic bodies so they can
// be moved every frame without stepping the simulation.
type Space[K comparable] struct {
	space  *cp.Space
	boxes  map[K]*box
	owners map[*cp.Shape]K
}

func NewSpace[K comparable]() *Space[K] {
	return &Space[K]{
		space:  cp.NewSpace(),
		boxes:  make(map[K]*box),
		owners: make(map[*cp.Shape]K),
	}
}

// Set places key's box at r, creating or resizing it as needed. An empty
// rect removes the box.
func (s *Space[K]) Set(key K, r Rect) {
	if r.Empty() {
		s.Remove(key)
		return
	}

	b, ok := s.boxes[key]
	if ok && (b.w != r.W || b.h != r.H) {
		s.removeShape(b)
		b.shape = nil
	}
	if !ok {
		body := cp.NewKinematicBody()
		s.space.AddBody(body)
		b = &box{body: body}
		s.boxes[key] = b
	}
	if b.shape == nil {
		b.shape = s.space.AddShape(cp.NewBox(b.body, r.W, r.H, 0))
		b.w, b.h = r.W, r.H
		s.owners[b.shape] = key
	}

	b.body.SetPosition(cp.Vector{X: r.X + r.W/2, Y: r.Y + r.H/2})
	s.space.ReindexShapesForBody(b.body)
}

func (s *Space[K]) removeShape(b *box) {
	if b.shape == nil {
		return
	}
	delete(s.owners, b.shape)
	s.space.RemoveShape(b.shape)
}

// Remove drops key's box if present.
func (s *Space[K]) Remove(key K) {
	b, ok := s.boxes[key]
	if !ok {
		return
	}
	s.removeShape(b)
	s.space.RemoveBody(b.body)
	delete(s.boxes, key)
}

// At returns the key whose box contains the point.
func (s *Space[K]) At(x, y float64) (K, bool) {
	var zero K
	info := s.space.PointQueryNearest(cp.Vector{X: x, Y: y}, 0, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return zero, false
	}
	key, ok := s.owners[info.Shape]
	return key, ok
}

func (s *Space[K]) Len() int {
	return len(s.boxes)
}
