package system

import (
	"github.com/milk9111/tactical/ecs"
	"github.com/milk9111/tactical/ecs/component"
)

// MovementSystem recomputes velocity from state and intent each tick and
// keeps facing up to date. Crouching pins the entity in place; there is
// no vertical movement yet.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	entities := w.Query(
		component.VelocityComponent.ID(),
		component.ControllerComponent.ID(),
		component.ActorStateComponent.ID(),
		component.IntentComponent.ID(),
	)
	for _, e := range entities {
		vel, _ := ecs.Get(w, e, component.VelocityComponent)
		ctrl, _ := ecs.Get(w, e, component.ControllerComponent)
		ps, _ := ecs.Get(w, e, component.ActorStateComponent)
		in, _ := ecs.Get(w, e, component.IntentComponent)
		if vel == nil || ctrl == nil || ps == nil || in == nil {
			continue
		}

		if ps.Current == component.StateCrouching || ps.Current == component.StateCrouchFiring {
			vel.X = 0
			vel.Y = 0
		} else {
			vel.X = 0
			if in.Left {
				vel.X -= ctrl.WalkSpeed
			}
			if in.Right {
				vel.X += ctrl.WalkSpeed
			}
			vel.Y = 0
		}

		if in.Right && !in.Left {
			ctrl.FacingX = 1
		} else if in.Left && !in.Right {
			ctrl.FacingX = -1
		}
	}
}
