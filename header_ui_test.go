package main

import "testing"

type fakeRelease bool

func (f fakeRelease) JustReleased() bool { return bool(f) }

func TestHeaderGuard(t *testing.T) {
	cases := []struct {
		name        string
		keyConsumed bool
		released    bool
		want        bool
	}{
		{"no_key_keyboard_activation", false, false, true},
		{"no_key_click", false, true, true},
		{"key_frame_click", true, true, true},
		{"key_frame_keyboard_activation", true, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := &HeaderUI{pointer: fakeRelease(c.released), keyConsumed: c.keyConsumed}
			called := false
			h.guard(func() { called = true })()
			if called != c.want {
				t.Fatalf("expected called=%v, got %v", c.want, called)
			}
		})
	}
}

func TestHeaderSectionLabel(t *testing.T) {
	h := &HeaderUI{names: []string{"hero", "about"}}
	cases := []struct {
		i    int
		want string
	}{
		{0, "hero"},
		{1, "about"},
		{2, ""},
		{-1, ""},
	}
	for _, c := range cases {
		if got := h.SectionLabel(c.i); got != c.want {
			t.Fatalf("section %d: expected %q, got %q", c.i, c.want, got)
		}
	}
}
