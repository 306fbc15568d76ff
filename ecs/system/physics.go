package system

import (
	"github.com/milk9111/tactical/ecs"
	"github.com/milk9111/tactical/ecs/component"
)

// PhysicsSystem integrates velocity into position with explicit Euler.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	dt := w.Delta()
	ecs.ForEach2(w, component.TransformComponent, component.VelocityComponent, func(_ ecs.Entity, t *component.Transform, v *component.Velocity) {
		t.X += v.X * dt
		t.Y += v.Y * dt
	})
}
