package ecs

import (
	"fmt"
	"strings"
)

// ArchetypeId identifies an archetype within a single World. Ids are
// assigned sequentially starting at 0 as archetypes are created and never
// reused. The empty archetype (no components) is always id 0.
type ArchetypeId uint32

// Archetype stores every entity sharing one exact component signature, one
// Column per component, all rows aligned by index: row i of every column
// plus entities[i] all describe the same entity.
type Archetype struct {
	id       ArchetypeId
	set      *ComponentSet
	entities []Entity
	columns  []*Column
	edges    ArchetypeEdges
}

// newArchetype creates an empty archetype for the given component set. One
// Column is allocated per component, ordered by the set's ordinals.
func newArchetype(id ArchetypeId, set *ComponentSet, registry *componentRegistry) *Archetype {
	columns := make([]*Column, set.Count())
	for i, cid := range set.Ids() {
		meta, _ := registry.meta(cid)
		columns[i] = newColumn(cid, meta.Stride)
	}
	return &Archetype{
		id:      id,
		set:     set,
		columns: columns,
		edges:   newArchetypeEdges(),
	}
}

// Id returns the archetype's identity.
func (a *Archetype) Id() ArchetypeId {
	return a.id
}

// Set returns the archetype's component set.
func (a *Archetype) Set() *ComponentSet {
	return a.set
}

// Len returns the number of entities currently stored in this archetype.
func (a *Archetype) Len() int {
	return len(a.entities)
}

// Entities returns the archetype's dense entity list. Callers must not
// mutate the returned slice.
func (a *Archetype) Entities() []Entity {
	return a.entities
}

// column returns the Column holding component id's data, or nil if this
// archetype does not have that component.
func (a *Archetype) column(id ComponentId) *Column {
	idx, ok := a.set.GetIndex(id)
	if !ok {
		return nil
	}
	return a.columns[idx]
}

// columnAt returns the Column at ordinal position i. Used by the Iterator,
// which addresses columns by query-supplied ordinal rather than by
// component id.
func (a *Archetype) columnAt(i int) *Column {
	return a.columns[i]
}

// DebugString renders the archetype's id, its entity count and, for each
// component, its name and its column's stride/capacity, for ad-hoc
// inspection during development.
func (a *Archetype) DebugString(registry *componentRegistry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "archetype %d {entities=%d, components=[", a.id, len(a.entities))
	for i, cid := range a.set.Ids() {
		if i > 0 {
			b.WriteString(", ")
		}
		meta, _ := registry.meta(cid)
		col := a.columns[i]
		fmt.Fprintf(&b, "%s(stride=%d,cap=%d)", meta.Name, col.Stride(), col.Capacity())
	}
	b.WriteString("]}")
	return b.String()
}
