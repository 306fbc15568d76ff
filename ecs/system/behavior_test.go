package system

import (
	"testing"

	"github.com/milk9111/tactical/ecs/component"
)

func TestNextStatePriority(t *testing.T) {
	cases := []struct {
		name string
		in   component.Intent
		want component.State
	}{
		{"nothing", component.Intent{}, component.StateIdle},
		{"walk_right", component.Intent{Right: true}, component.StateWalking},
		{"walk_left", component.Intent{Left: true}, component.StateWalking},
		{"crouch", component.Intent{Crouch: true}, component.StateCrouching},
		{"crouch_beats_walk", component.Intent{Crouch: true, Right: true}, component.StateCrouching},
		{"reload", component.Intent{Reload: true}, component.StateReloading},
		{"reload_beats_crouch", component.Intent{Reload: true, Crouch: true}, component.StateReloading},
		{"shoot", component.Intent{Shoot: true}, component.StateFiring},
		{"shoot_beats_reload", component.Intent{Shoot: true, Reload: true}, component.StateFiring},
		{"crouch_fire", component.Intent{Shoot: true, Crouch: true}, component.StateCrouchFiring},
		{"crouch_fire_beats_everything", component.Intent{Shoot: true, Crouch: true, Reload: true, Left: true, Right: true}, component.StateCrouchFiring},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NextState(c.in); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestBehaviorLockIgnoresInput(t *testing.T) {
	r := newRig(t)
	r.tick(component.Intent{Reload: true})
	if r.ps.Current != component.StateReloading {
		t.Fatalf("expected Reloading, got %v", r.ps.Current)
	}

	// New input of every flavor must not dislodge a locked state.
	inputs := []component.Intent{
		{Shoot: true},
		{Shoot: true, Crouch: true},
		{Left: true},
		{Crouch: true},
	}
	for _, in := range inputs {
		r.tick(in)
		if r.ps.Current != component.StateReloading {
			t.Fatalf("locked state changed on input %+v: %v", in, r.ps.Current)
		}
	}
}

func TestBehaviorTimerResetOnTransition(t *testing.T) {
	r := newRig(t)

	r.tick(component.Intent{})
	if r.ps.StateTimer == 0 {
		t.Fatalf("timer should accumulate while the state holds")
	}

	r.tick(component.Intent{Right: true})
	if r.ps.Current != component.StateWalking {
		t.Fatalf("expected Walking, got %v", r.ps.Current)
	}
	if r.ps.StateTimer != 0 {
		t.Fatalf("timer must be 0 on the transition tick, got %v", r.ps.StateTimer)
	}

	before := r.ps.StateTimer
	r.tick(component.Intent{Right: true})
	if r.ps.StateTimer <= before {
		t.Fatalf("timer should increase while Walking holds")
	}
}

func TestBehaviorPreviousTracksPriorTick(t *testing.T) {
	r := newRig(t)
	r.tick(component.Intent{Right: true})
	if r.ps.Previous != component.StateIdle {
		t.Fatalf("previous should hold last tick's state, got %v", r.ps.Previous)
	}
	r.tick(component.Intent{Right: true})
	if r.ps.Previous != component.StateWalking {
		t.Fatalf("previous should catch up after one tick, got %v", r.ps.Previous)
	}
}

func TestBehaviorTransitionResetsCursor(t *testing.T) {
	r := newRig(t)
	r.tick(component.Intent{})
	if r.ps.Cursor == component.CursorStart {
		t.Fatalf("looping process should have parked the cursor")
	}
	r.tick(component.Intent{Right: true})
	// The transition zeroed the cursor, then this tick's animation step
	// consumed it again; the observable effect is the clip change.
	if !r.sprite.IsPlaying(component.ClipWalk) {
		t.Fatalf("expected %s after transition, playing %s", component.ClipWalk, r.sprite.Current)
	}
}
