package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/milk9111/tactical/ecs"
	"github.com/milk9111/tactical/ecs/component"
	"github.com/milk9111/tactical/ecs/entity"
	"github.com/milk9111/tactical/ecs/system"
	"github.com/milk9111/tactical/prefabs"
	"github.com/milk9111/tactical/reload"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	tickDelta = 1.0 / 60.0
)

// session is the reloadable game unit: the world, its systems, and the
// compiled behavior program.
type session struct {
	world      *ecs.World
	behavior   *system.BehaviorSystem
	scriptPath string
	player     ecs.Entity
	debug      bool
}

func newSession() *session {
	return &session{}
}

func (s *session) Init(h *reload.Host) error {
	s.debug = h != nil && h.Debug

	w := ecs.NewWorld()
	s.behavior = system.NewBehaviorSystem()
	w.AddSystem(system.NewInputSystem())
	w.AddSystem(s.behavior)
	w.AddSystem(system.NewMovementSystem())
	w.AddSystem(system.NewPhysicsSystem())
	w.AddSystem(system.NewAnimationSystem())
	w.AddSystem(system.NewRenderSystem())

	player, spec, err := entity.NewPlayer(w)
	if err != nil {
		return fmt.Errorf("session: spawn player: %w", err)
	}

	s.world = w
	s.player = player
	s.scriptPath = spec.Behavior
	if err := s.compileBehavior(); err != nil {
		// Built-in rules keep the game running.
		log.Printf("session: behavior script: %v", err)
	}
	return nil
}

func (s *session) compileBehavior() error {
	if s.scriptPath == "" {
		return nil
	}
	src, err := prefabs.LoadScript(s.scriptPath)
	if err != nil {
		return err
	}
	p, err := system.CompileBehavior(s.scriptPath, src)
	if err != nil {
		return err
	}
	s.behavior.SetProgram(p)
	return nil
}

func (s *session) Update() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		s.debug = !s.debug
	}

	s.world.SetDelta(tickDelta)
	s.world.Update()
	return true
}

func (s *session) Render(screen *ebiten.Image) {
	screen.Fill(colornames.Cornflowerblue)
	s.world.Draw(screen)

	if s.debug {
		if ps, ok := ecs.Get(s.world, s.player, component.ActorStateComponent); ok {
			ebitenutil.DebugPrint(screen, fmt.Sprintf("state: %s  t: %.2f  cursor: %d  FPS: %.1f",
				ps.Current, ps.StateTimer, ps.Cursor, ebiten.ActualFPS()))
		}
	}
}

func (s *session) Shutdown() {}

// State hands the long-lived world across the reload boundary.
func (s *session) State() any {
	return s.world
}

// HotReload adopts the surviving world, re-reads the player prefab,
// recompiles the behavior script, and invalidates every saved resume
// cursor: the old resume points belong to the replaced program. A spec
// that fails to load or a script that fails to compile keeps the
// previous one running.
func (s *session) HotReload(state any) {
	if w, ok := state.(*ecs.World); ok && w != nil {
		s.world = w
	}
	if spec, err := prefabs.LoadPlayerSpec(); err != nil {
		log.Printf("session: hot reload: %v (keeping previous spec)", err)
	} else {
		s.applySpec(spec)
	}
	if err := s.compileBehavior(); err != nil {
		log.Printf("session: hot reload: %v (keeping previous program)", err)
	}
	ecs.ForEach(s.world, component.ActorStateComponent, func(_ ecs.Entity, ps *component.ActorState) {
		ps.Cursor = component.CursorStart
	})
	log.Printf("session: hot reloaded")
}

// applySpec refreshes the player values the prefab owns: walk speed,
// clip table, render layer, and the behavior script path. Live state
// stays put, so position, behavior state, and the state timer survive
// the swap. The embedded sprite sheet is not re-read.
func (s *session) applySpec(spec *prefabs.PlayerSpec) {
	s.scriptPath = spec.Behavior
	if ctrl, ok := ecs.Get(s.world, s.player, component.ControllerComponent); ok {
		ctrl.WalkSpeed = spec.WalkSpeed
	}
	if layer, ok := ecs.Get(s.world, s.player, component.RenderLayerComponent); ok {
		layer.Index = spec.RenderLayer
	}
	if sprite, ok := ecs.Get(s.world, s.player, component.SpriteComponent); ok {
		sprite.Defs = entity.ClipDefs(spec.Sprite.Clips)
		// The playback position may be past the end of a shortened clip.
		if def, ok := sprite.Defs[sprite.Current]; ok && sprite.Frame >= def.FrameCount {
			sprite.Play(sprite.Current)
		}
	}
}

// Game is the host loop: it owns the reloadable unit and applies swaps
// on tick boundaries only.
type Game struct {
	unit   reload.Unit
	bridge *reload.Bridge
}

func (g *Game) Update() error {
	g.bridge.Apply(g.unit)
	if !g.unit.Update() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.unit.Render(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
