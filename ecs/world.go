package ecs

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/tactical/ecs/component"
)

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// DrawSystem is implemented by systems that also draw each frame.
type DrawSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

// World owns entities, component storage, and system order. All access
// is single-threaded; systems run in the order they were added.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet
	systems  []System
	dt       float64
}

func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*sparseSet)}
}

func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all its components.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return true
}

func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// SetDelta records the fixed timestep for the coming tick.
func (w *World) SetDelta(dt float64) {
	w.dt = dt
}

// Delta returns the timestep systems should integrate with.
func (w *World) Delta() float64 {
	return w.dt
}

// Update runs all systems once in registration order.
func (w *World) Update() {
	for _, s := range w.systems {
		s.Update(w)
	}
}

// Draw calls every draw-capable system.
func (w *World) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	for _, s := range w.systems {
		if ds, ok := s.(DrawSystem); ok {
			ds.Draw(w, screen)
		}
	}
}

// Query returns the entities that carry every listed component. The
// result order follows the first component's dense storage.
func (w *World) Query(ids ...component.ComponentID) []Entity {
	if len(ids) == 0 {
		return nil
	}
	first, ok := w.stores[ids[0]]
	if !ok {
		return nil
	}
	out := make([]Entity, 0, first.len())
	for _, e := range first.denseEntities {
		if !w.entities.isAlive(e) {
			continue
		}
		match := true
		for _, id := range ids[1:] {
			s, ok := w.stores[id]
			if !ok || !s.has(e.id()) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns any one entity carrying the component.
func (w *World) First(id component.ComponentID) (Entity, bool) {
	s, ok := w.stores[id]
	if !ok || s.len() == 0 {
		return 0, false
	}
	for _, e := range s.denseEntities {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

func (w *World) store(id component.ComponentID) *sparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) addComponent(e Entity, id component.ComponentID, v any) error {
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if v == nil {
		return component.ErrNilComponent
	}
	w.store(id).set(e, v)
	return nil
}

func (w *World) getComponent(e Entity, id component.ComponentID) (any, bool) {
	if !w.entities.isAlive(e) {
		return nil, false
	}
	s, ok := w.stores[id]
	if !ok {
		return nil, false
	}
	return s.get(e.id())
}

func (w *World) removeComponent(e Entity, id component.ComponentID) bool {
	s, ok := w.stores[id]
	if !ok {
		return false
	}
	return s.remove(e.id())
}
