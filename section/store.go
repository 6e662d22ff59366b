// Package section holds the active-section index and the keyboard binding
// that drives it.
package section

import "sync/atomic"

// Reader is the read side used by per-frame systems.
type Reader interface {
	Current() int
}

// Navigator moves the active section by one step.
type Navigator interface {
	Advance()
	Retreat()
}

// Controller reads and moves the active section.
type Controller interface {
	Reader
	Navigator
}

// JumpTo steps c one section at a time until it reaches target or stops
// moving. Each step is an ordinary Advance or Retreat.
func JumpTo(c Controller, target int) {
	if c == nil {
		return
	}
	for {
		cur := c.Current()
		switch {
		case cur < target:
			c.Advance()
		case cur > target:
			c.Retreat()
		default:
			return
		}
		if c.Current() == cur {
			return
		}
	}
}

// Store is the single source of truth for the active section. The index is
// published atomically so a reader on another goroutine never sees a torn
// value.
type Store struct {
	idx   atomic.Int32
	count int32
}

// NewStore returns a store at section 0. A count below one is treated as one.
func NewStore(count int) *Store {
	if count < 1 {
		count = 1
	}
	return &Store{count: int32(count)}
}

func (s *Store) Current() int {
	return int(s.idx.Load())
}

func (s *Store) Count() int {
	return int(s.count)
}

// Advance moves to the next section; a no-op on the last one.
func (s *Store) Advance() {
	for {
		cur := s.idx.Load()
		if cur >= s.count-1 {
			return
		}
		if s.idx.CompareAndSwap(cur, cur+1) {
			return
		}
	}
}

// Retreat moves to the previous section; a no-op on the first one.
func (s *Store) Retreat() {
	for {
		cur := s.idx.Load()
		if cur <= 0 {
			return
		}
		if s.idx.CompareAndSwap(cur, cur-1) {
			return
		}
	}
}
