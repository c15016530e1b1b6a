package ecs

import (
	"reflect"

	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/mask"
)

// iteratingLock is the single bit World.locks uses to flag "an Iterate
// callback is currently running". It plays the same role the teacher's
// storage.locks field plays for its deferred operation queue, repurposed
// here to guard against the one thing spec.md §7 calls fatal: mutating
// archetype structure while an Iterator over it is live.
const iteratingLock = 0

// World owns every entity, archetype and component definition created
// through it. A World is not safe for concurrent use (spec.md explicitly
// excludes thread-safety); all methods assume single-goroutine access.
type World struct {
	registry *componentRegistry
	typeIds  map[reflect.Type]ComponentId

	archetypes []*Archetype
	byMask     map[mask.Mask]ArchetypeId

	records     []entityRecord
	nextEntity  Entity
	entityCount int

	locks mask.Mask256

	systems     [PhaseCount][]*System
	systemNames *SimpleCache[*System]

	queries []*Query

	shutdown bool
}

// maxTrackedSystems bounds the name->System debug lookup cache.
const maxTrackedSystems = 1024

// NewWorld creates an empty World: it defines the reserved "Null"
// component (claiming ComponentId 0) and pre-populates the empty archetype
// (id 0, no components) every entity with no components lives in.
func NewWorld() *World {
	w := &World{
		registry:    newComponentRegistry(),
		typeIds:     make(map[reflect.Type]ComponentId),
		byMask:      make(map[mask.Mask]ArchetypeId),
		systemNames: newSimpleCache[*System](maxTrackedSystems),
	}
	w.registry.define("Null", 0)
	empty := newComponentSet()
	w.archetypes = append(w.archetypes, newArchetype(0, empty, w.registry))
	w.byMask[empty.Signature()] = 0
	return w
}

// Shutdown marks the World as no longer usable. After it, DefineComponent,
// CreateEntity, AddComponent, RemoveComponent, CreateSystem, Iterate,
// Progress and Shutdown itself panic. CreateQuery and the lookups
// (HasComponent, ComponentMeta, EntityCount, SystemByName and the
// ComponentHandle Get/TryGet accessors) do not check and do not panic.
func (w *World) Shutdown() {
	w.assertAlive()
	w.shutdown = true
}

// assertAlive panics if the World has been shut down. Operating on a
// destroyed world is spec.md §7 class 1: a fatal programmer error.
func (w *World) assertAlive() {
	if w.shutdown {
		panic(bark.AddTrace(errShutdownWorld))
	}
}

// assertNotIterating panics if a structural mutation is attempted while an
// Iterate callback is in flight.
func (w *World) assertNotIterating() {
	if !w.locks.IsEmpty() {
		panic(bark.AddTrace(errStructuralMutationDuringIteration))
	}
}

// beginIterate / endIterate bracket an Iterate call.
func (w *World) beginIterate() {
	w.locks.Mark(iteratingLock)
}

func (w *World) endIterate() {
	w.locks.Unmark(iteratingLock)
}

// DefineComponent registers a new component type by name and byte stride
// and returns its id. Each call allocates a fresh ComponentId; callers
// that want "define once per Go type" semantics should go through the
// generic DefineComponent[T] wrapper in factory.go, which caches by
// reflect.Type in w.typeIds.
func (w *World) DefineComponent(name string, stride uint32) ComponentId {
	w.assertAlive()
	return w.registry.define(name, stride)
}

// ComponentMeta looks up a previously defined component's metadata.
func (w *World) ComponentMeta(id ComponentId) (ComponentMeta, bool) {
	return w.registry.meta(id)
}

// EntityCount returns the number of entities ever created (entities are
// never deleted by this core, see DESIGN.md open question 1).
func (w *World) EntityCount() int {
	return w.entityCount
}

// archetypeById resolves a stable ArchetypeId to its *Archetype. Panics if
// id is out of range, which would indicate a corrupted edge cache rather
// than a reachable user error.
func (w *World) archetypeById(id ArchetypeId) *Archetype {
	if int(id) >= len(w.archetypes) {
		panic(bark.AddTrace(errInvalidArchetypeId))
	}
	return w.archetypes[id]
}

// recordFor returns the bookkeeping record for e, or false if e was never
// created by this World.
func (w *World) recordFor(e Entity) (entityRecord, bool) {
	if !e.Valid() || int(e) > len(w.records) {
		return entityRecord{}, false
	}
	return w.records[e-1], true
}

// archetypeOf returns the archetype e currently lives in.
func (w *World) archetypeOf(e Entity) (*Archetype, bool) {
	rec, ok := w.recordFor(e)
	if !ok {
		return nil, false
	}
	return w.archetypeById(rec.archetype), true
}

// getOrCreateArchetype returns the archetype whose component set is
// exactly ids (order-insensitive), creating it if this is the first time
// this exact signature has been seen.
func (w *World) getOrCreateArchetype(ids []ComponentId) *Archetype {
	set := newComponentSet(ids...)
	sig := set.Signature()
	if id, ok := w.byMask[sig]; ok {
		return w.archetypes[id]
	}
	id := ArchetypeId(len(w.archetypes))
	arch := newArchetype(id, set, w.registry)
	w.archetypes = append(w.archetypes, arch)
	w.byMask[sig] = id
	for _, q := range w.queries {
		q.considerArchetype(arch)
	}
	return arch
}

// CreateEntity allocates a new entity carrying exactly the given
// components, each initialized to its zero value. Passing no ids places
// the entity in the empty archetype.
func (w *World) CreateEntity(ids ...ComponentId) Entity {
	w.assertAlive()
	w.assertNotIterating()

	arch := w.getOrCreateArchetype(ids)
	row := uint32(len(arch.entities))
	for _, col := range arch.columns {
		col.pushZero()
	}

	w.nextEntity++
	e := w.nextEntity
	arch.entities = append(arch.entities, e)

	idx := int(e) - 1
	if idx >= len(w.records) {
		grown := make([]entityRecord, idx+1)
		copy(grown, w.records)
		w.records = grown
	}
	w.records[idx] = entityRecord{archetype: arch.id, row: row}
	w.entityCount++
	return e
}
