package entity

import (
	"fmt"

	"github.com/milk9111/tactical/assets"
	"github.com/milk9111/tactical/ecs"
	"github.com/milk9111/tactical/ecs/component"
	"github.com/milk9111/tactical/prefabs"
)

// ClipDefs converts a prefab clip table into the runtime form the
// sprite component plays from.
func ClipDefs(clips []prefabs.ClipSpec) map[string]component.ClipDef {
	defs := make(map[string]component.ClipDef, len(clips))
	for _, c := range clips {
		defs[c.Name] = component.ClipDef{
			Name:       c.Name,
			Row:        c.Row,
			ColStart:   c.ColStart,
			FrameCount: c.Frames,
			FrameW:     c.FrameW,
			FrameH:     c.FrameH,
			FPS:        c.FPS,
			Loop:       c.Loop,
		}
	}
	return defs
}

// NewPlayer spawns the player from prefabs/player.yaml. All components
// are created together; they go away together when the entity is
// destroyed.
func NewPlayer(w *ecs.World) (ecs.Entity, *prefabs.PlayerSpec, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, nil, err
	}

	sheet, err := assets.LoadImage(spec.Sprite.Sheet)
	if err != nil {
		return 0, nil, fmt.Errorf("player: sprite sheet: %w", err)
	}

	defs := ClipDefs(spec.Sprite.Clips)

	e := w.CreateEntity()

	sprite := &component.Sprite{Sheet: sheet, Defs: defs, FlipX: 1}
	start := spec.Sprite.Start
	if _, ok := defs[start]; !ok {
		start = component.ClipWalk
	}
	sprite.Play(start)

	adds := []error{
		ecs.Add(w, e, component.IntentComponent, &component.Intent{}),
		ecs.Add(w, e, component.ControllerComponent, &component.Controller{WalkSpeed: spec.WalkSpeed, FacingX: 1}),
		ecs.Add(w, e, component.ActorStateComponent, &component.ActorState{Current: component.StateIdle, Previous: component.StateIdle}),
		ecs.Add(w, e, component.TransformComponent, &component.Transform{X: spec.Transform.X, Y: spec.Transform.Y, Rotation: spec.Transform.Rotation}),
		ecs.Add(w, e, component.VelocityComponent, &component.Velocity{}),
		ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: spec.RenderLayer}),
		ecs.Add(w, e, component.SpriteComponent, sprite),
	}
	for _, err := range adds {
		if err != nil {
			return 0, nil, fmt.Errorf("player: add component: %w", err)
		}
	}

	return e, spec, nil
}
