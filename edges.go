package ecs

// ArchetypeEdges caches an archetype's neighbors in the component-addition
// graph: add[c] is the archetype reached by adding component c, remove[c]
// the archetype reached by removing it. Entries are populated lazily by
// the transition engine the first time a given component is added/removed
// from this archetype, and a correctly linked pair is always mutual
// inverses: if add[c] == dst then remove[c] on dst == this archetype.
//
// Edges are keyed by ArchetypeId rather than by archetype pointer/index so
// that they stay valid across the archetype table's growth (append can
// reallocate the backing slice); World resolves an ArchetypeId back to its
// *Archetype on every lookup.
type ArchetypeEdges struct {
	add    map[ComponentId]ArchetypeId
	remove map[ComponentId]ArchetypeId
}

func newArchetypeEdges() ArchetypeEdges {
	return ArchetypeEdges{
		add:    make(map[ComponentId]ArchetypeId),
		remove: make(map[ComponentId]ArchetypeId),
	}
}

// addEdge returns the archetype reached by adding c, if cached.
func (e *ArchetypeEdges) addEdge(c ComponentId) (ArchetypeId, bool) {
	id, ok := e.add[c]
	return id, ok
}

// removeEdge returns the archetype reached by removing c, if cached.
func (e *ArchetypeEdges) removeEdge(c ComponentId) (ArchetypeId, bool) {
	id, ok := e.remove[c]
	return id, ok
}

// linkAdd caches "adding c from here leads to dst".
func (e *ArchetypeEdges) linkAdd(c ComponentId, dst ArchetypeId) {
	e.add[c] = dst
}

// linkRemove caches "removing c from here leads to dst".
func (e *ArchetypeEdges) linkRemove(c ComponentId, dst ArchetypeId) {
	e.remove[c] = dst
}
