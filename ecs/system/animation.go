package system

import (
	"github.com/milk9111/tactical/ecs"
	"github.com/milk9111/tactical/ecs/component"
)

// cursorWaiting is the one in-flight resume point: the clip has been
// started and the process is waiting on its finish condition (one-shot
// states) or parked until the state changes (looping states park on
// CursorDone instead).
const cursorWaiting = 1

// The walk-fire strip is authored with eight frames holding two shot
// cycles; a single shot ends at local frame 3.
const walkFireLastShotFrame = 3

// AnimationSystem owns clip playback and the exit transitions for the
// one-shot states. The per-entity procedure is resumable: it runs at
// most one step per tick and records where it left off in
// ActorState.Cursor, so no call stack has to survive between ticks or
// across a hot reload of this code.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	entities := w.Query(
		component.SpriteComponent.ID(),
		component.ActorStateComponent.ID(),
		component.ControllerComponent.ID(),
		component.VelocityComponent.ID(),
	)
	for _, e := range entities {
		sprite, _ := ecs.Get(w, e, component.SpriteComponent)
		ps, _ := ecs.Get(w, e, component.ActorStateComponent)
		ctrl, _ := ecs.Get(w, e, component.ControllerComponent)
		vel, _ := ecs.Get(w, e, component.VelocityComponent)
		if sprite == nil || ps == nil || ctrl == nil || vel == nil {
			continue
		}

		// An externally forced state write invalidates the saved
		// resume point. Transitions made through ActorState.Transition
		// have already zeroed it.
		if ps.Current != ps.Previous {
			ps.Cursor = component.CursorStart
		}

		a.step(ps, sprite, vel)

		// The clock advances and facing applies every tick no matter
		// what the procedure did.
		sprite.Advance()
		if ctrl.FacingX >= 0 {
			sprite.FlipX = 1
		} else {
			sprite.FlipX = -1
		}
	}
}

// step resumes the animation procedure for one tick.
func (a *AnimationSystem) step(ps *component.ActorState, sprite *component.Sprite, vel *component.Velocity) {
	switch ps.Current {
	case component.StateFiring:
		a.stepFiring(ps, sprite, vel)
	case component.StateCrouchFiring:
		a.stepOneShot(ps, sprite, component.ClipCrouchFire, component.StateCrouching)
	case component.StateReloading:
		a.stepOneShot(ps, sprite, component.ClipReload, component.StateIdle)
	default:
		a.stepLooping(ps, sprite)
	}
}

// stepLooping starts the state's looping clip once and parks. The clip
// then runs on the shared Advance call until the state changes.
func (a *AnimationSystem) stepLooping(ps *component.ActorState, sprite *component.Sprite) {
	if ps.Cursor != component.CursorStart {
		return
	}
	clip := component.ClipForState(ps.Current)
	if !sprite.IsPlaying(clip) {
		sprite.Play(clip)
	}
	ps.Cursor = component.CursorDone
}

// stepFiring picks the walk or stand variant from the velocity sampled
// on the entry tick; it is not re-sampled while the shot plays out.
func (a *AnimationSystem) stepFiring(ps *component.ActorState, sprite *component.Sprite, vel *component.Velocity) {
	switch ps.Cursor {
	case component.CursorStart:
		clip := component.ClipFire
		if vel.X != 0 {
			clip = component.ClipWalkFire
		}
		sprite.Play(clip)
		// Yield before any finish check: on the entry tick the clip's
		// timer has not advanced yet and a same-tick check could
		// misread a stale frame position.
		ps.Cursor = cursorWaiting
	case cursorWaiting:
		done := false
		if sprite.IsPlaying(component.ClipWalkFire) {
			done = sprite.FrameIndex() >= walkFireLastShotFrame
		} else {
			done = sprite.WillFinish() || sprite.Finished()
		}
		if done {
			ps.Transition(component.StateIdle)
		}
	}
}

// stepOneShot plays a one-shot clip to completion, then hands the state
// machine the exit state.
func (a *AnimationSystem) stepOneShot(ps *component.ActorState, sprite *component.Sprite, clip string, exit component.State) {
	switch ps.Cursor {
	case component.CursorStart:
		sprite.Play(clip)
		ps.Cursor = cursorWaiting
	case cursorWaiting:
		if sprite.WillFinish() || sprite.Finished() {
			ps.Transition(exit)
		}
	}
}
