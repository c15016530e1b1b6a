package ecs

import (
	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/mask"
)

// Query describes a filter over archetypes: every included component must
// be present, every excluded component must be absent. The include list's
// order is preserved exactly as supplied — it defines the ordinals an
// Iterator exposes component columns by, independent of each matching
// archetype's own internal column order.
//
// A Query keeps a live cache of matching archetypes, refreshed as new
// archetypes are created (World.getOrCreateArchetype notifies every
// registered Query), so CreateQuery pays the one-time archetype scan and
// every later Iterate call is a cheap walk of the cache.
type Query struct {
	world *World

	includeIds  []ComponentId
	includeMask mask.Mask
	excludeMask mask.Mask

	matching []*Archetype
}

// CreateQuery builds a Query over w and scans existing archetypes for an
// initial match set. Duplicate ids in either list are silently
// deduplicated (spec.md §7 class 3: legal setup misuse); a query with an
// empty include list matches every archetype not excluded.
func (w *World) CreateQuery(include []ComponentId, exclude []ComponentId) *Query {
	q := &Query{world: w}

	seen := make(map[ComponentId]struct{}, len(include))
	for _, id := range include {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		q.includeIds = append(q.includeIds, id)
		q.includeMask.Mark(uint32(id))
	}
	for _, id := range exclude {
		q.excludeMask.Mark(uint32(id))
	}

	for _, arch := range w.archetypes {
		q.considerArchetype(arch)
	}
	w.queries = append(w.queries, q)
	return q
}

// matches reports whether arch satisfies the include/exclude filter.
func (q *Query) matches(arch *Archetype) bool {
	sig := arch.set.Signature()
	return sig.ContainsAll(q.includeMask) && sig.ContainsNone(q.excludeMask)
}

// considerArchetype adds arch to the cached match list if it qualifies.
// Called once per archetype at query creation, and again by World every
// time a brand-new archetype is created, so the cache never needs a full
// rescan.
func (q *Query) considerArchetype(arch *Archetype) {
	if q.matches(arch) {
		q.matching = append(q.matching, arch)
	}
}

// ordinalColumns resolves, for one matching archetype, which
// archetype-local column index backs each of the query's include
// ordinals.
func (q *Query) ordinalColumns(arch *Archetype) []int {
	cols := make([]int, len(q.includeIds))
	for i, id := range q.includeIds {
		idx, ok := arch.set.GetIndex(id)
		if !ok {
			// A query only ever matches archetypes that are supersets of
			// includeIds, so this would mean the match cache is corrupt.
			panic(bark.AddTrace(errIteratorIndexOutOfRange))
		}
		cols[i] = int(idx)
	}
	return cols
}

// MatchCount returns how many archetypes currently satisfy the query.
func (q *Query) MatchCount() int {
	return len(q.matching)
}
