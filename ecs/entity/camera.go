package entity

import (
	"fmt"

	"github.com/weihouang/folio/content"
	"github.com/weihouang/folio/ecs"
	"github.com/weihouang/folio/ecs/component"
	"github.com/weihouang/folio/scene"
)

func NewCamera(w *ecs.World, spec *content.Spec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	lo, hi := spec.OrbitLimits()
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Rig: &scene.CameraRig{
			Position: spec.Camera.Start.Vec3(),
			Targets:  spec.CameraTargets(),
		},
		FOV:   spec.Camera.FOV,
		Orbit: scene.Orbit{MinPolar: lo, MaxPolar: hi},
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	return camera, nil
}
