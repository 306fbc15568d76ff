package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/tactical/ecs"
	"github.com/milk9111/tactical/ecs/component"
)

// InputSystem snapshots raw device state into Intent components once
// per tick. Movement and crouch use held state; shoot and reload fire
// only on the press edge.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	crouch := ebiten.IsKeyPressed(ebiten.KeyControlLeft)
	shoot := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	reload := inpututil.IsKeyJustPressed(ebiten.KeyR)

	const stickDeadzone = 0.2
	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if lx < -stickDeadzone {
			left = true
		} else if lx > stickDeadzone {
			right = true
		}
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if ly < -stickDeadzone {
			up = true
		} else if ly > stickDeadzone {
			down = true
		}
		crouch = crouch || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightRight)
		shoot = shoot || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		reload = reload || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
	}

	ecs.ForEach(w, component.IntentComponent, func(_ ecs.Entity, in *component.Intent) {
		in.Up = up
		in.Down = down
		in.Left = left
		in.Right = right
		in.Crouch = crouch
		in.Shoot = shoot
		in.Reload = reload
	})
}
