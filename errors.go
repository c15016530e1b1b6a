package ecs

import (
	"errors"
	"fmt"
)

// Fatal conditions per spec.md §7 class 1: always a programmer error, so
// these are only ever wrapped with bark.AddTrace and panicked, never
// returned.
var (
	errShutdownWorld                     = errors.New("operation attempted on a shut-down world")
	errStructuralMutationDuringIteration = errors.New("structural mutation (create/add/remove component) attempted during iteration")
	errInvalidArchetypeId                = errors.New("invalid archetype id")
	errIteratorIndexOutOfRange           = errors.New("iterator column ordinal out of range")
)

// ComponentNotFoundError reports that an entity was asked for a component
// it does not carry. RemoveComponent returns it. Reads report the same
// recoverable misuse without this error: ComponentHandle.Get logs a
// diagnostic and returns nil, and ComponentHandle.TryGet silently reports
// false.
type ComponentNotFoundError struct {
	Entity    Entity
	Component ComponentId
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("entity %d does not have component %d", e.Entity, e.Component)
}

// UnknownComponentError reports an operation against a ComponentId that
// was never registered with the World.
type UnknownComponentError struct {
	Component ComponentId
}

func (e UnknownComponentError) Error() string {
	return fmt.Sprintf("component %d is not registered with this world", e.Component)
}

// InvalidEntityError reports an operation against an Entity handle the
// World has no record of (the zero handle, or one greater than the last
// entity this World created). A handle from another World that falls in
// this World's range is not detected.
type InvalidEntityError struct {
	Entity Entity
}

func (e InvalidEntityError) Error() string {
	return fmt.Sprintf("entity %d is not valid in this world", e.Entity)
}
