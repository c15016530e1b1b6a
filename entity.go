package ecs

// Entity is an opaque handle to a row of component data. Entities are
// allocated monotonically starting at 1 by World.CreateEntity and compare
// equal iff their underlying handles are equal; the zero value is never a
// valid entity. Entity deletion is deliberately not part of this core (see
// DESIGN.md open question 1) — an entity is alive from creation until its
// World is shut down.
//
// Entities are world-scoped: a handle from one World has no meaning in
// another, since every operation that takes an Entity also takes the
// *World that allocated it.
type Entity uint64

// Valid reports whether e is a non-zero handle. It does not check whether
// e was actually allocated by a particular World.
func (e Entity) Valid() bool {
	return e != 0
}

// entityRecord is the World's lookup from an entity handle to its current
// archetype and row within that archetype's columns.
type entityRecord struct {
	archetype ArchetypeId
	row       uint32
}
