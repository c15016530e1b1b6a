package ecs

import (
	"sort"

	"github.com/TheBitDrifter/mask"
)

// invalidOrdinal marks "not present" the way the reference design's
// sparse open-addressing table uses an all-bits-set sentinel; this
// implementation stores ordinals densely (insertion/sort order) in a
// slice plus a lookup map, which is an equivalent representation of the
// same "unordered set with stable positions" contract.
const invalidOrdinal = ^uint32(0)

// ComponentSet is the unordered set of ComponentIds belonging to an
// archetype. Once an archetype is created its ComponentSet's ordinal
// positions never change — Archetype's Column slice is parallel to this
// set's Ids(), and Query/Iterator lookups key off these same ordinals.
//
// Ids are kept sorted ascending so that two archetypes built from the same
// component ids always assign identical ordinals, and so DebugString
// output is deterministic.
type ComponentSet struct {
	ids   []ComponentId
	index map[ComponentId]uint32
	sig   mask.Mask
}

// newComponentSet builds a ComponentSet from an unordered, possibly
// duplicated, list of ids. Duplicates are silently deduplicated (spec.md
// §7 class 3: setup misuse that is legal, not an error).
func newComponentSet(ids ...ComponentId) *ComponentSet {
	dedup := make(map[ComponentId]struct{}, len(ids))
	unique := make([]ComponentId, 0, len(ids))
	for _, id := range ids {
		if _, ok := dedup[id]; ok {
			continue
		}
		dedup[id] = struct{}{}
		unique = append(unique, id)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })

	set := &ComponentSet{
		ids:   unique,
		index: make(map[ComponentId]uint32, len(unique)),
	}
	for i, id := range unique {
		set.index[id] = uint32(i)
		set.sig.Mark(uint32(id))
	}
	return set
}

// Count returns the number of components in the set.
func (s *ComponentSet) Count() int {
	return len(s.ids)
}

// Ids returns the set's members in ordinal order. Callers must not mutate
// the returned slice.
func (s *ComponentSet) Ids() []ComponentId {
	return s.ids
}

// Contains reports whether id is a member of the set.
func (s *ComponentSet) Contains(id ComponentId) bool {
	_, ok := s.index[id]
	return ok
}

// GetIndex returns id's ordinal position, or (invalidOrdinal, false) if id
// is not a member.
func (s *ComponentSet) GetIndex(id ComponentId) (uint32, bool) {
	idx, ok := s.index[id]
	if !ok {
		return invalidOrdinal, false
	}
	return idx, true
}

// Signature returns the set's bitmask fingerprint. World deduplicates
// archetypes by it alone, and Query matching and supersetOf/disjointFrom
// compare only signatures, without consulting Ids() or Contains.
func (s *ComponentSet) Signature() mask.Mask {
	return s.sig
}

// supersetOf reports whether s contains every id in other.
func (s *ComponentSet) supersetOf(other *ComponentSet) bool {
	return s.sig.ContainsAll(other.sig)
}

// disjointFrom reports whether s and other share no ids.
func (s *ComponentSet) disjointFrom(other *ComponentSet) bool {
	return s.sig.ContainsNone(other.sig)
}

// withAdded returns the ids of s plus extra, used to compute the target
// signature of an add-component transition before a candidate archetype
// exists.
func (s *ComponentSet) withAdded(extra ComponentId) []ComponentId {
	out := make([]ComponentId, 0, len(s.ids)+1)
	out = append(out, s.ids...)
	out = append(out, extra)
	return out
}

// withRemoved returns the ids of s minus target.
func (s *ComponentSet) withRemoved(target ComponentId) []ComponentId {
	out := make([]ComponentId, 0, len(s.ids))
	for _, id := range s.ids {
		if id == target {
			continue
		}
		out = append(out, id)
	}
	return out
}
