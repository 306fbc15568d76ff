package system

import (
	"testing"

	"github.com/milk9111/tactical/ecs"
	"github.com/milk9111/tactical/ecs/component"
)

const testDelta = 1.0 / 60.0

// testClips mirrors the shipped player prefab closely enough for the
// process timing to be meaningful: 12 FPS one-shots are 5 ticks per
// frame at 60 TPS.
func testClips() map[string]component.ClipDef {
	mk := func(name string, row, frames int, fps float64, loop bool) component.ClipDef {
		return component.ClipDef{Name: name, Row: row, FrameCount: frames, FrameW: 48, FrameH: 48, FPS: fps, Loop: loop}
	}
	return map[string]component.ClipDef{
		component.ClipAim:        mk(component.ClipAim, 0, 4, 8, true),
		component.ClipWalk:       mk(component.ClipWalk, 1, 8, 10, true),
		component.ClipCrouch:     mk(component.ClipCrouch, 2, 4, 8, true),
		component.ClipFire:       mk(component.ClipFire, 3, 4, 12, false),
		component.ClipWalkFire:   mk(component.ClipWalkFire, 4, 8, 12, false),
		component.ClipCrouchFire: mk(component.ClipCrouchFire, 5, 4, 12, false),
		component.ClipReload:     mk(component.ClipReload, 6, 6, 10, false),
	}
}

// rig is a world with one player-like entity and the per-tick systems,
// minus device input: tests write the Intent snapshot themselves.
type rig struct {
	w      *ecs.World
	e      ecs.Entity
	in     *component.Intent
	ps     *component.ActorState
	ctrl   *component.Controller
	vel    *component.Velocity
	tr     *component.Transform
	sprite *component.Sprite

	behavior  *BehaviorSystem
	movement  *MovementSystem
	physics   *PhysicsSystem
	animation *AnimationSystem
}

func newRig(t *testing.T) *rig {
	t.Helper()

	w := ecs.NewWorld()
	e := w.CreateEntity()

	r := &rig{
		w:      w,
		e:      e,
		in:     &component.Intent{},
		ps:     &component.ActorState{Current: component.StateIdle, Previous: component.StateIdle},
		ctrl:   &component.Controller{WalkSpeed: 150, FacingX: 1},
		vel:    &component.Velocity{},
		tr:     &component.Transform{},
		sprite: &component.Sprite{Defs: testClips(), FlipX: 1},

		behavior:  NewBehaviorSystem(),
		movement:  NewMovementSystem(),
		physics:   NewPhysicsSystem(),
		animation: NewAnimationSystem(),
	}
	r.sprite.Play(component.ClipAim)

	adds := []error{
		ecs.Add(w, e, component.IntentComponent, r.in),
		ecs.Add(w, e, component.ActorStateComponent, r.ps),
		ecs.Add(w, e, component.ControllerComponent, r.ctrl),
		ecs.Add(w, e, component.VelocityComponent, r.vel),
		ecs.Add(w, e, component.TransformComponent, r.tr),
		ecs.Add(w, e, component.SpriteComponent, r.sprite),
	}
	for _, err := range adds {
		if err != nil {
			t.Fatalf("rig: %v", err)
		}
	}
	return r
}

// tick runs one frame with the given input snapshot, in system order.
func (r *rig) tick(in component.Intent) {
	*r.in = in
	r.w.SetDelta(testDelta)
	r.behavior.Update(r.w)
	r.movement.Update(r.w)
	r.physics.Update(r.w)
	r.animation.Update(r.w)
}

// tickUntil runs idle-input ticks until cond holds, failing after max.
func (r *rig) tickUntil(t *testing.T, max int, cond func() bool) int {
	t.Helper()
	for i := 0; i < max; i++ {
		if cond() {
			return i
		}
		r.tick(component.Intent{})
	}
	if !cond() {
		t.Fatalf("condition not met within %d ticks", max)
	}
	return max
}
