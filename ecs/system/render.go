package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/tactical/ecs"
	"github.com/milk9111/tactical/ecs/component"
)

// RenderSystem draws every Transform+Sprite entity, lowest render layer
// first. Frames draw centered on the transform; horizontal flip is a
// negative x-scale around the frame center.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Update(w *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	entities := w.Query(component.TransformComponent.ID(), component.SpriteComponent.ID())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := 0, 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent); ok {
			li = layer.Index
		}
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent)
		if !ok || s.Sheet == nil {
			continue
		}
		rect, ok := s.FrameRect()
		if !ok {
			continue
		}
		frame, ok := s.Sheet.SubImage(rect).(*ebiten.Image)
		if !ok {
			continue
		}

		flip := s.FlipX
		if flip == 0 {
			flip = 1
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(rect.Dx())/2, -float64(rect.Dy())/2)
		op.GeoM.Scale(flip, 1)
		op.GeoM.Translate(t.X, t.Y)
		screen.DrawImage(frame, op)
	}
}
