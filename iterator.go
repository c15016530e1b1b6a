package ecs

import "github.com/TheBitDrifter/bark"

// Iterator is the per-archetype view World.Iterate hands to a callback: a
// window onto one matching archetype's rows, with component columns
// addressed by the ordinal position the caller supplied to CreateQuery
// (the n-th included component), not by ComponentId.
type Iterator struct {
	world *World
	arch  *Archetype
	cols  []int
}

// EntityCount returns how many entities this archetype currently holds.
func (it *Iterator) EntityCount() int {
	return it.arch.Len()
}

// Entity returns the entity handle at row.
func (it *Iterator) Entity(row int) Entity {
	return it.arch.entities[row]
}

// World returns the World the archetype belongs to.
func (it *Iterator) World() *World {
	return it.world
}

// column returns the Column backing query ordinal i. Accessing an ordinal
// outside the query's include list is spec.md §7 class 1 fatal misuse.
func (it *Iterator) column(ordinal int) *Column {
	if ordinal < 0 || ordinal >= len(it.cols) {
		panic(bark.AddTrace(errIteratorIndexOutOfRange))
	}
	return it.arch.columnAt(it.cols[ordinal])
}

// Iterate runs fn once for every archetype currently matching q, passing
// an Iterator scoped to that archetype. Archetypes with zero entities are
// skipped. Structural mutation (CreateEntity, AddComponent,
// RemoveComponent) from within fn panics — World's re-entrancy guard is
// held for the whole call.
func (w *World) Iterate(q *Query, fn func(*Iterator)) {
	w.assertAlive()
	w.beginIterate()
	defer w.endIterate()

	for _, arch := range q.matching {
		if arch.Len() == 0 {
			continue
		}
		it := &Iterator{
			world: w,
			arch:  arch,
			cols:  q.ordinalColumns(arch),
		}
		fn(it)
	}
}
