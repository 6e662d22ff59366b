package section

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	DefaultAdvanceKey = ebiten.KeySpace
	DefaultRetreatKey = ebiten.KeyEscape
)

// KeySource reports key-down edges for the current frame.
type KeySource interface {
	JustPressed(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// EbitenKeys reads key edges from ebiten's input state.
func EbitenKeys() KeySource {
	return ebitenKeys{}
}

// Binding maps an advance key and a retreat key onto a Navigator.
type Binding struct {
	mu      sync.Mutex
	nav     Navigator
	keys    KeySource
	advance ebiten.Key
	retreat ebiten.Key
}

// Bind attaches nav to keys and returns the binding with its release
// function. Release may be called any number of times; after the first call
// the binding no longer touches nav.
func Bind(nav Navigator, keys KeySource, advance, retreat ebiten.Key) (*Binding, func()) {
	b := &Binding{nav: nav, keys: keys, advance: advance, retreat: retreat}
	var once sync.Once
	return b, func() {
		once.Do(b.release)
	}
}

func (b *Binding) release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nav = nil
	b.keys = nil
}

// Active reports whether the binding has not been released.
func (b *Binding) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.nav != nil
}

// Poll applies at most one navigation step for this frame and reports
// whether a bound key was handled. A handled key should not reach any other
// consumer this frame.
func (b *Binding) Poll() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.nav == nil || b.keys == nil {
		return false
	}

	switch {
	case b.keys.JustPressed(b.advance):
		b.nav.Advance()
		return true
	case b.keys.JustPressed(b.retreat):
		b.nav.Retreat()
		return true
	}
	return false
}
