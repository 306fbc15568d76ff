package system

import (
	"testing"

	"github.com/milk9111/tactical/ecs/component"
)

func TestFireStandingEndToEnd(t *testing.T) {
	r := newRig(t)

	// Shoot edge for exactly one tick while stationary.
	r.tick(component.Intent{Shoot: true})
	if r.ps.Current != component.StateFiring {
		t.Fatalf("expected Firing, got %v", r.ps.Current)
	}
	if !r.sprite.IsPlaying(component.ClipFire) {
		t.Fatalf("expected %s at entry, playing %s", component.ClipFire, r.sprite.Current)
	}

	ticks := r.tickUntil(t, 120, func() bool { return r.ps.Current == component.StateIdle })
	// GunFire is 4 frames at 12 FPS (5 ticks per frame): the finish
	// check fires on the tick of the 20th advance, 19 ticks after entry.
	if ticks != 19 {
		t.Fatalf("expected Idle after 19 follow-up ticks, took %d", ticks)
	}
	if r.ps.StateTimer != 0 {
		t.Fatalf("timer must be 0 on the transition tick")
	}

	// The idle clip takes over on the immediately following tick.
	r.tick(component.Intent{})
	if !r.sprite.IsPlaying(component.ClipAim) {
		t.Fatalf("expected %s after firing, playing %s", component.ClipAim, r.sprite.Current)
	}
}

func TestFireWalkingExitsAtShotBoundary(t *testing.T) {
	r := newRig(t)

	// Enter firing with non-zero horizontal velocity.
	r.tick(component.Intent{Right: true})
	r.tick(component.Intent{Right: true, Shoot: true})
	if r.ps.Current != component.StateFiring {
		t.Fatalf("expected Firing, got %v", r.ps.Current)
	}
	if !r.sprite.IsPlaying(component.ClipWalkFire) {
		t.Fatalf("entry velocity should pick %s, playing %s", component.ClipWalkFire, r.sprite.Current)
	}

	for i := 0; i < 120 && r.ps.Current == component.StateFiring; i++ {
		r.tick(component.Intent{Right: true})
	}
	if r.ps.Current != component.StateIdle {
		t.Fatalf("walk-fire should exit to Idle, got %v", r.ps.Current)
	}
	// The strip has 8 frames; a single shot ends at local frame 3, well
	// before the natural end.
	if r.sprite.FrameIndex() != walkFireLastShotFrame {
		t.Fatalf("expected early exit at frame %d, got %d", walkFireLastShotFrame, r.sprite.FrameIndex())
	}
}

func TestFireClipNotResampledMidFlight(t *testing.T) {
	r := newRig(t)
	r.tick(component.Intent{Shoot: true}) // stationary entry -> GunFire

	// Start moving while the shot plays out; the clip must not switch.
	for i := 0; i < 5; i++ {
		r.tick(component.Intent{Right: true})
	}
	if !r.sprite.IsPlaying(component.ClipFire) {
		t.Fatalf("clip was re-sampled mid-flight: %s", r.sprite.Current)
	}
}

func TestCrouchFireReturnsToCrouching(t *testing.T) {
	r := newRig(t)

	r.tick(component.Intent{Crouch: true, Shoot: true})
	if r.ps.Current != component.StateCrouchFiring {
		t.Fatalf("expected CrouchFiring, got %v", r.ps.Current)
	}
	if !r.sprite.IsPlaying(component.ClipCrouchFire) {
		t.Fatalf("expected %s, playing %s", component.ClipCrouchFire, r.sprite.Current)
	}

	for i := 0; i < 120 && r.ps.Current == component.StateCrouchFiring; i++ {
		r.tick(component.Intent{Crouch: true})
	}
	if r.ps.Current != component.StateCrouching {
		t.Fatalf("crouch fire should exit to Crouching, got %v", r.ps.Current)
	}
	r.tick(component.Intent{Crouch: true})
	if !r.sprite.IsPlaying(component.ClipCrouch) {
		t.Fatalf("expected %s after crouch fire, playing %s", component.ClipCrouch, r.sprite.Current)
	}
}

func TestReloadReturnsToIdle(t *testing.T) {
	r := newRig(t)

	r.tick(component.Intent{Reload: true})
	if r.ps.Current != component.StateReloading {
		t.Fatalf("expected Reloading, got %v", r.ps.Current)
	}
	if !r.sprite.IsPlaying(component.ClipReload) {
		t.Fatalf("expected %s, playing %s", component.ClipReload, r.sprite.Current)
	}

	r.tickUntil(t, 120, func() bool { return r.ps.Current == component.StateIdle })
}

func TestOneShotNeverFinishesOnEntryTick(t *testing.T) {
	r := newRig(t)
	// A 1-frame 60 FPS clip would satisfy the finish condition on the
	// entry tick; the process must still wait one full tick.
	r.sprite.Defs[component.ClipReload] = component.ClipDef{
		Name: component.ClipReload, Row: 6, FrameCount: 1, FrameW: 48, FrameH: 48, FPS: 60, Loop: false,
	}

	r.tick(component.Intent{Reload: true})
	if r.ps.Current != component.StateReloading {
		t.Fatalf("expected Reloading on entry tick, got %v", r.ps.Current)
	}

	r.tick(component.Intent{})
	if r.ps.Current == component.StateReloading {
		t.Fatalf("finish check should run on the tick after entry")
	}
}

func TestHotReloadCursorInvalidation(t *testing.T) {
	r := newRig(t)

	r.tick(component.Intent{Shoot: true})
	for i := 0; i < 17; i++ {
		r.tick(component.Intent{})
	}
	if r.ps.Current != component.StateFiring {
		t.Fatalf("shot should still be in flight, got %v", r.ps.Current)
	}
	if r.ps.Cursor == component.CursorStart {
		t.Fatalf("process should be mid-flight")
	}

	// The bridge resets stale cursors between ticks; the process must
	// restart from the top without finishing on the same tick.
	r.ps.Cursor = component.CursorStart
	r.tick(component.Intent{})
	if r.ps.Current != component.StateFiring {
		t.Fatalf("restarted process must not re-enter a passed finish check, got %v", r.ps.Current)
	}
	if r.sprite.FrameIndex() != 0 {
		t.Fatalf("restart should replay the clip from frame 0, got %d", r.sprite.FrameIndex())
	}

	// And the shot still completes afterwards.
	r.tickUntil(t, 120, func() bool { return r.ps.Current == component.StateIdle })
}

func TestLoopingStateParksWithoutReplaying(t *testing.T) {
	r := newRig(t)

	r.tick(component.Intent{Right: true})
	if !r.sprite.IsPlaying(component.ClipWalk) {
		t.Fatalf("expected %s, playing %s", component.ClipWalk, r.sprite.Current)
	}

	// Holding the state must not restart the clip every tick.
	r.tick(component.Intent{Right: true})
	frame := r.sprite.FrameIndex()
	timer := r.sprite.FrameTimer
	for i := 0; i < 6; i++ {
		r.tick(component.Intent{Right: true})
	}
	if r.sprite.FrameIndex() == frame && r.sprite.FrameTimer == timer {
		t.Fatalf("walk clip should advance, not restart")
	}
}

func TestFacingFlipsSpriteScale(t *testing.T) {
	r := newRig(t)

	r.tick(component.Intent{Left: true})
	if r.sprite.FlipX != -1 {
		t.Fatalf("expected flip -1 facing left, got %v", r.sprite.FlipX)
	}
	r.tick(component.Intent{Right: true})
	if r.sprite.FlipX != 1 {
		t.Fatalf("expected flip +1 facing right, got %v", r.sprite.FlipX)
	}
	// Neither held: facing (and flip) retain the last value.
	r.tick(component.Intent{})
	if r.sprite.FlipX != 1 {
		t.Fatalf("flip should retain last facing, got %v", r.sprite.FlipX)
	}
}
