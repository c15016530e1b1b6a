package ecs

// archetypeAfterAdd returns the archetype reached by adding id to src's
// component set, consulting and then populating src's edge cache. The
// reverse edge is linked on the destination too, so add/remove edges are
// always mutual inverses as soon as either direction has been taken once.
func (w *World) archetypeAfterAdd(src *Archetype, id ComponentId) *Archetype {
	if cached, ok := src.edges.addEdge(id); ok {
		return w.archetypeById(cached)
	}
	dst := w.getOrCreateArchetype(src.set.withAdded(id))
	src.edges.linkAdd(id, dst.id)
	dst.edges.linkRemove(id, src.id)
	return dst
}

// archetypeAfterRemove returns the archetype reached by removing id from
// src's component set, with the same edge-caching discipline as
// archetypeAfterAdd.
func (w *World) archetypeAfterRemove(src *Archetype, id ComponentId) *Archetype {
	if cached, ok := src.edges.removeEdge(id); ok {
		return w.archetypeById(cached)
	}
	dst := w.getOrCreateArchetype(src.set.withRemoved(id))
	src.edges.linkRemove(id, dst.id)
	dst.edges.linkAdd(id, src.id)
	return dst
}

// transitionEntity moves the entity at rec from its current (src) archetype
// into dst, copying every component dst and src share, zero-initializing
// any column dst has that src doesn't (the component just added), and
// dropping any column src has that dst doesn't (the component just
// removed). It returns the entity's new row in dst.
//
// Ordering matters for correctness: every byte dst needs is copied out of
// src's columns before src's own swap-remove runs, so a later in-place
// overwrite in src can never clobber a read that hasn't happened yet.
// After src's row is vacated by swap-remove, whichever entity the
// swap-remove relocated into that slot (the previous last row, if it
// wasn't already the removed row) has its record patched to point at its
// new row — skipping this patch is the classic archetype-transition bug
// this core does not reproduce.
func (w *World) transitionEntity(e Entity, rec entityRecord, dst *Archetype) uint32 {
	src := w.archetypeById(rec.archetype)
	srcRow := rec.row

	for i, id := range dst.set.Ids() {
		col := dst.columns[i]
		if srcCol := src.column(id); srcCol != nil {
			col.push(srcCol.at(srcRow))
		} else {
			col.pushZero()
		}
	}
	dstRow := uint32(len(dst.entities))
	dst.entities = append(dst.entities, e)

	lastRow := uint32(len(src.entities) - 1)
	movedEntity := src.entities[lastRow]
	for _, id := range src.set.Ids() {
		src.column(id).swapRemove(srcRow)
	}
	src.entities[srcRow] = src.entities[lastRow]
	src.entities = src.entities[:lastRow]

	if srcRow != lastRow {
		w.records[movedEntity-1] = entityRecord{archetype: src.id, row: srcRow}
	}
	w.records[e-1] = entityRecord{archetype: dst.id, row: dstRow}
	return dstRow
}

// AddComponent moves e into the archetype that has every component e
// already carries plus id, zero-initializing id's slot. Idempotent: if e
// already has id, it returns nil without touching the entity.
func (w *World) AddComponent(e Entity, id ComponentId) error {
	w.assertAlive()
	w.assertNotIterating()

	rec, ok := w.recordFor(e)
	if !ok {
		return InvalidEntityError{Entity: e}
	}
	if _, ok := w.registry.meta(id); !ok {
		return UnknownComponentError{Component: id}
	}
	src := w.archetypeById(rec.archetype)
	if src.set.Contains(id) {
		return nil
	}
	dst := w.archetypeAfterAdd(src, id)
	w.transitionEntity(e, rec, dst)
	return nil
}

// RemoveComponent moves e into the archetype that has every component e
// carries except id. Returns ComponentNotFoundError (recoverable) if e
// doesn't have id.
func (w *World) RemoveComponent(e Entity, id ComponentId) error {
	w.assertAlive()
	w.assertNotIterating()

	rec, ok := w.recordFor(e)
	if !ok {
		return InvalidEntityError{Entity: e}
	}
	src := w.archetypeById(rec.archetype)
	if !src.set.Contains(id) {
		return ComponentNotFoundError{Entity: e, Component: id}
	}
	dst := w.archetypeAfterRemove(src, id)
	w.transitionEntity(e, rec, dst)
	return nil
}

// HasComponent reports whether e currently carries id. Returns false for
// an entity handle the World has no record of.
func (w *World) HasComponent(e Entity, id ComponentId) bool {
	rec, ok := w.recordFor(e)
	if !ok {
		return false
	}
	return w.archetypeById(rec.archetype).set.Contains(id)
}

// componentBytes returns the raw storage for e's id component, or
// (nil, false) if e doesn't carry it. This is the shared primitive behind
// the generic ComponentHandle Get/TryGet wrappers in factory.go.
func (w *World) componentBytes(e Entity, id ComponentId) ([]byte, bool) {
	rec, ok := w.recordFor(e)
	if !ok {
		return nil, false
	}
	col := w.archetypeById(rec.archetype).column(id)
	if col == nil {
		return nil, false
	}
	return col.at(rec.row), true
}
