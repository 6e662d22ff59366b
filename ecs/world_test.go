package ecs

import (
	"testing"

	"github.com/weihouang/folio/ecs/component"
	"github.com/weihouang/folio/scene"
)

func intPtr(i int) *int {
	return &i
}

// newMember creates an entity shaped like a section drawable.
func newMember(t *testing.T, w *World, g *scene.Group, x float64) Entity {
	t.Helper()
	e := CreateEntity(w)
	if err := Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: scene.Vec3{X: x}}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e, component.TintComponent.Kind(), &component.Tint{}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e, component.GroupMemberComponent.Kind(), &component.GroupMember{Group: g}); err != nil {
		t.Fatal(err)
	}
	return e
}

func membersOf(w *World) map[*scene.Group]int {
	out := map[*scene.Group]int{}
	ForEach3(w, component.TransformComponent.Kind(), component.TintComponent.Kind(), component.GroupMemberComponent.Kind(),
		func(_ Entity, _ *component.Transform, _ *component.Tint, m *component.GroupMember) {
			out[m.Group]++
		})
	return out
}

func TestMembersByGroup(t *testing.T) {
	hero := scene.NewGroup("hero", 0)
	about := scene.NewGroup("about", 1)

	cases := []struct {
		name      string
		hero      int
		about     int
		destroy   []int // indexes into the created members, hero first
		wantHero  int
		wantAbout int
	}{
		{"empty", 0, 0, nil, 0, 0},
		{"two_groups", 2, 3, nil, 2, 3},
		{"destroy_hero_member", 2, 1, []int{0}, 1, 1},
		{"destroy_whole_group", 1, 2, []int{1, 2}, 1, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			var ents []Entity
			for i := 0; i < c.hero; i++ {
				ents = append(ents, newMember(t, w, hero, float64(i)))
			}
			for i := 0; i < c.about; i++ {
				ents = append(ents, newMember(t, w, about, float64(i)))
			}
			for _, i := range c.destroy {
				if !DestroyEntity(w, ents[i]) {
					t.Fatalf("destroy %d failed", i)
				}
			}

			got := membersOf(w)
			if got[hero] != c.wantHero || got[about] != c.wantAbout {
				t.Fatalf("expected hero=%d about=%d, got hero=%d about=%d", c.wantHero, c.wantAbout, got[hero], got[about])
			}
			if n := len(Entities(w)); n != c.wantHero+c.wantAbout {
				t.Fatalf("expected %d live entities, got %d", c.wantHero+c.wantAbout, n)
			}
		})
	}
}

func TestDestroyClearsEveryStore(t *testing.T) {
	w := NewWorld()
	g := scene.NewGroup("hero", 0)
	anchor := CreateEntity(w)
	if err := Add(w, anchor, component.SceneGroupComponent.Kind(), &component.SceneGroup{Group: g}); err != nil {
		t.Fatal(err)
	}
	member := newMember(t, w, g, 0)

	if !DestroyEntity(w, member) {
		t.Fatal("destroy member failed")
	}
	if DestroyEntity(w, member) {
		t.Fatal("second destroy should report false")
	}

	checks := []struct {
		name string
		has  bool
	}{
		{"transform", Has(w, member, component.TransformComponent.Kind())},
		{"tint", Has(w, member, component.TintComponent.Kind())},
		{"group_member", Has(w, member, component.GroupMemberComponent.Kind())},
	}
	for _, c := range checks {
		if c.has {
			t.Fatalf("%s still present after destroy", c.name)
		}
	}
	if w.store(component.TintComponent.Kind().ID(), false).Len() != 0 {
		t.Fatalf("tint store should be empty")
	}
	if e, ok := w.First(component.SceneGroupComponent.Kind()); !ok || e != anchor {
		t.Fatalf("group anchor must survive member destruction")
	}
}

func TestRebuildReusesSlotsWithNewGenerations(t *testing.T) {
	w := NewWorld()
	g := scene.NewGroup("projects", 2)

	first := []Entity{newMember(t, w, g, 0), newMember(t, w, g, 1), newMember(t, w, g, 2)}

	var stale []Entity
	ForEach(w, component.GroupMemberComponent.Kind(), func(e Entity, _ *component.GroupMember) {
		stale = append(stale, e)
	})
	for _, e := range stale {
		DestroyEntity(w, e)
	}
	second := []Entity{newMember(t, w, g, 10), newMember(t, w, g, 11)}

	firstIDs := map[entityID]bool{}
	for _, e := range first {
		firstIDs[e.id()] = true
		if IsAlive(w, e) {
			t.Fatalf("old handle %v still alive", e)
		}
		if _, ok := Get(w, e, component.TransformComponent.Kind()); ok {
			t.Fatalf("old handle %v still resolves a transform", e)
		}
	}
	for _, e := range second {
		if !firstIDs[e.id()] {
			t.Fatalf("expected slot reuse, got new id for %v", e)
		}
		if e.generation() == 0 {
			t.Fatalf("reused slot should carry a bumped generation")
		}
	}

	var xs []float64
	ForEach(w, component.TransformComponent.Kind(), func(_ Entity, tr *component.Transform) {
		xs = append(xs, tr.Position.X)
	})
	if len(xs) != 2 || xs[0] < 10 || xs[1] < 10 {
		t.Fatalf("expected only rebuilt transforms, got %v", xs)
	}
}

func TestForEachSkipsEntitiesDestroyedMidIteration(t *testing.T) {
	w := NewWorld()
	g := scene.NewGroup("hero", 0)
	a := newMember(t, w, g, 0)
	b := newMember(t, w, g, 1)

	visited := 0
	ForEach(w, component.GroupMemberComponent.Kind(), func(e Entity, _ *component.GroupMember) {
		visited++
		if e == a {
			DestroyEntity(w, b)
		} else {
			DestroyEntity(w, a)
		}
	})
	if visited != 1 {
		t.Fatalf("expected the destroyed entity to be skipped, visited %d", visited)
	}
}

func TestAddReplacesAndRemoveReports(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	kind := component.LabelComponent.Kind()

	if err := Add(w, e, kind, &component.Label{Text: "About"}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e, kind, &component.Label{Text: "About Me"}); err != nil {
		t.Fatal(err)
	}
	if l, ok := Get(w, e, kind); !ok || l.Text != "About Me" {
		t.Fatalf("expected replaced label, got %+v", l)
	}
	if w.store(kind.ID(), false).Len() != 1 {
		t.Fatalf("replacing must not grow the store")
	}
	if !Remove(w, e, kind) || Remove(w, e, kind) {
		t.Fatalf("remove should succeed once")
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if !DestroyEntity(w, old) {
		t.Fatal("failed to destroy entity")
	}

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected slot reuse, got %v and %v", old, reused)
	}
	if reused == old {
		t.Fatalf("expected a new generation for the reused slot")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle must not be alive")
	}
	if Has(w, reused, h.Kind()) {
		t.Fatalf("reused entity must not inherit components")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	if err := Add[int](w, e, component.NewComponentKind[int](), nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	var zero component.ComponentKind[int]
	if err := Add(w, e, zero, intPtr(1)); err != component.ErrInvalidComponentKind {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

type countingSystem struct {
	calls *[]string
	name  string
}

func (s countingSystem) Update(*World) { *s.calls = append(*s.calls, s.name) }

func TestSchedulerRegisterRelease(t *testing.T) {
	var calls []string
	sched := NewScheduler()
	releaseA := sched.Register(countingSystem{&calls, "a"})
	releaseB := sched.Register(countingSystem{&calls, "b"})
	defer releaseB()

	w := NewWorld()
	sched.Update(w)
	releaseA()
	releaseA()
	sched.Update(w)

	want := []string{"a", "b", "b"}
	if len(calls) != len(want) {
		t.Fatalf("expected %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, calls)
		}
	}
}

func TestSchedulerFlushesEvents(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Type: EventCardActivated})
	NewScheduler().Update(w)
	if evts := w.Events().Drain(); len(evts) != 0 {
		t.Fatalf("expected events flushed after update, got %v", evts)
	}
}

func TestClockMonotonic(t *testing.T) {
	var c Clock
	c.Tick(0.5)
	c.Tick(-1)
	c.Tick(0.25)
	if c.Frame != 3 || c.Elapsed != 0.75 {
		t.Fatalf("expected frame 3 elapsed 0.75, got %d %v", c.Frame, c.Elapsed)
	}
}

func TestFirstAndQuery(t *testing.T) {
	w := NewWorld()
	tag := component.NewComponentKind[struct{}]()
	val := component.NewComponentKind[int]()

	if _, ok := w.First(tag); ok {
		t.Fatalf("expected no entity for empty store")
	}

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	if err := Add(w, e1, tag, &struct{}{}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, tag, &struct{}{}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, val, intPtr(4)); err != nil {
		t.Fatal(err)
	}

	if e, ok := w.First(tag); !ok || e != e1 {
		t.Fatalf("expected e1 first, got %v ok=%v", e, ok)
	}
	got := w.Query(tag, val)
	if len(got) != 1 || got[0] != e2 {
		t.Fatalf("expected only e2, got %v", got)
	}

	var seen int
	ForEach2(w, tag, val, func(_ Entity, _ *struct{}, v *int) { seen += *v })
	if seen != 4 {
		t.Fatalf("expected ForEach2 to visit e2 once, got sum %d", seen)
	}
}
