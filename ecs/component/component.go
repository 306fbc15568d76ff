package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrNilComponent   = errors.New("ecs: component is nil")
)

// ComponentID identifies a component type at runtime. Ids are assigned
// once per process; only small integers ever cross the hot-reload
// boundary, never anything code-relative.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentHandle ties a component's Go type to its runtime id. Handles
// are created as package-level vars next to their component type.
type ComponentHandle[T any] struct {
	id ComponentID
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (h ComponentHandle[T]) ID() ComponentID {
	return h.id
}

func (h ComponentHandle[T]) Valid() bool {
	return h.id != 0
}
