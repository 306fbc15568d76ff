package system

import (
	"log"

	"github.com/milk9111/tactical/ecs"
	"github.com/milk9111/tactical/ecs/component"
)

// NextState applies the behavior priority rules to one tick of input.
// Pure and total: every input combination maps to a state. Callers must
// not invoke it while the current state is locking.
func NextState(in component.Intent) component.State {
	moving := in.Left || in.Right
	switch {
	case in.Shoot && in.Crouch:
		return component.StateCrouchFiring
	case in.Shoot:
		return component.StateFiring
	case in.Reload:
		return component.StateReloading
	case in.Crouch:
		return component.StateCrouching
	case moving:
		return component.StateWalking
	default:
		return component.StateIdle
	}
}

// BehaviorSystem drives the player state machine. While the state is
// locking (firing, crouch firing, reloading) it only accumulates the
// state timer; the animation process owns the exit transition.
//
// When a behavior program is set, the decision comes from the compiled
// script instead of the built-in rules. The program can be swapped
// between ticks by the hot-reload bridge.
type BehaviorSystem struct {
	program *BehaviorProgram
}

func NewBehaviorSystem() *BehaviorSystem {
	return &BehaviorSystem{}
}

// SetProgram installs (or clears, with nil) the scripted decision rules.
func (b *BehaviorSystem) SetProgram(p *BehaviorProgram) {
	b.program = p
}

// Program returns the installed scripted rules, if any.
func (b *BehaviorSystem) Program() *BehaviorProgram {
	return b.program
}

func (b *BehaviorSystem) Update(w *ecs.World) {
	dt := w.Delta()
	ecs.ForEach2(w, component.ActorStateComponent, component.IntentComponent, func(_ ecs.Entity, ps *component.ActorState, in *component.Intent) {
		ps.Previous = ps.Current

		if ps.Current.Locking() {
			ps.StateTimer += dt
			return
		}

		next := b.decide(*in, ps.Current)
		if next != ps.Current {
			ps.Transition(next)
		} else {
			ps.StateTimer += dt
		}
	})
}

func (b *BehaviorSystem) decide(in component.Intent, current component.State) component.State {
	if b.program == nil {
		return NextState(in)
	}
	next, err := b.program.Next(in, current)
	if err != nil {
		log.Printf("behavior: script error, using built-in rules: %v", err)
		return NextState(in)
	}
	return next
}
