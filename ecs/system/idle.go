package system

import (
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/weihouang/folio/ecs"
	"github.com/weihouang/folio/ecs/component"
)

// ScriptLoader returns the source of a named motion script.
type ScriptLoader func(name string) ([]byte, error)

type idleRuntime struct {
	scriptPath string
	compiled   *tengo.Compiled
	failed     bool
}

// IdleMotionSystem evaluates each entity's motion script against elapsed
// time and writes the script's `offset` into Transform.IdleY. Scripts see
// `t`, `amplitude` and `period`.
type IdleMotionSystem struct {
	load     ScriptLoader
	runtimes map[ecs.Entity]*idleRuntime
}

func NewIdleMotionSystem(load ScriptLoader) *IdleMotionSystem {
	return &IdleMotionSystem{load: load, runtimes: map[ecs.Entity]*idleRuntime{}}
}

// Invalidate drops every compiled script so the next frame recompiles from
// source.
func (s *IdleMotionSystem) Invalidate() {
	s.runtimes = map[ecs.Entity]*idleRuntime{}
}

func (s *IdleMotionSystem) Update(w *ecs.World) {
	if w == nil || s.load == nil {
		return
	}

	for e := range s.runtimes {
		if !w.IsAlive(e) {
			delete(s.runtimes, e)
		}
	}

	elapsed := w.Clock().Elapsed
	ecs.ForEach2(w, component.IdleMotionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, motion *component.IdleMotion, t *component.Transform) {
		rt := s.runtime(e, motion)
		if rt == nil || rt.failed {
			return
		}

		offset, err := rt.eval(elapsed, motion)
		if err != nil {
			log.Printf("idle: entity=%d script %s: %v", e, motion.Script, err)
			rt.failed = true
			return
		}
		t.IdleY = offset
	})
}

func (s *IdleMotionSystem) runtime(e ecs.Entity, motion *component.IdleMotion) *idleRuntime {
	if motion.Script == "" {
		return nil
	}
	if rt, ok := s.runtimes[e]; ok && rt.scriptPath == motion.Script {
		return rt
	}

	rt := &idleRuntime{scriptPath: motion.Script}
	s.runtimes[e] = rt

	compiled, err := compileIdleScript(s.load, motion.Script)
	if err != nil {
		log.Printf("idle: entity=%d compile %s: %v", e, motion.Script, err)
		rt.failed = true
		return rt
	}
	rt.compiled = compiled
	return rt
}

func compileIdleScript(load ScriptLoader, name string) (*tengo.Compiled, error) {
	src, err := load(name)
	if err != nil {
		return nil, err
	}
	script := tengo.NewScript(src)
	_ = script.Add("t", 0.0)
	_ = script.Add("amplitude", 0.0)
	_ = script.Add("period", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))
	return script.Compile()
}

func (rt *idleRuntime) eval(elapsed float64, motion *component.IdleMotion) (float64, error) {
	if err := rt.compiled.Set("t", elapsed); err != nil {
		return 0, err
	}
	if err := rt.compiled.Set("amplitude", motion.Amplitude); err != nil {
		return 0, err
	}
	if err := rt.compiled.Set("period", motion.Period); err != nil {
		return 0, err
	}
	if err := rt.compiled.Run(); err != nil {
		return 0, err
	}
	return rt.compiled.Get("offset").Float(), nil
}

// CheckScript compiles and runs a motion script once at t=0, reporting
// errors the frame loop would otherwise only log.
func CheckScript(load ScriptLoader, name string, motion component.IdleMotion) (float64, error) {
	compiled, err := compileIdleScript(load, name)
	if err != nil {
		return 0, err
	}
	return (&idleRuntime{scriptPath: name, compiled: compiled}).eval(0, &motion)
}
