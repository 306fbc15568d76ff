package ecs

import "github.com/milk9111/tactical/ecs/component"

// Add attaches a component to an entity. The pointer is stored directly,
// so later mutation through Get is visible without a write-back.
func Add[T any](w *World, e Entity, h component.ComponentHandle[T], v *T) error {
	if v == nil {
		return component.ErrNilComponent
	}
	return w.addComponent(e, h.ID(), v)
}

func Get[T any](w *World, e Entity, h component.ComponentHandle[T]) (*T, bool) {
	v, ok := w.getComponent(e, h.ID())
	if !ok {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

func Has[T any](w *World, e Entity, h component.ComponentHandle[T]) bool {
	_, ok := w.getComponent(e, h.ID())
	return ok
}

func Remove[T any](w *World, e Entity, h component.ComponentHandle[T]) bool {
	return w.removeComponent(e, h.ID())
}

// ForEach visits every live entity carrying the component.
func ForEach[T any](w *World, h component.ComponentHandle[T], fn func(Entity, *T)) {
	s, ok := w.stores[h.ID()]
	if !ok {
		return
	}
	for i, e := range s.denseEntities {
		if !w.entities.isAlive(e) {
			continue
		}
		if v, ok := s.denseValues[i].(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits every live entity carrying both components.
func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ha.ID(), hb.ID()) {
		a, okA := Get(w, e, ha)
		b, okB := Get(w, e, hb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}
