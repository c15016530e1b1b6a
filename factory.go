package ecs

import (
	"reflect"
	"unsafe"
)

// ComponentHandle is the typed, ergonomic front-end to a ComponentId.
// DefineComponent[T] returns one per Go type T registered on a World, and
// every later Add/Set/Get/TryGet/Has call against that type goes through
// it rather than juggling raw ComponentIds and byte slices directly.
type ComponentHandle[T any] struct {
	id     ComponentId
	stride uintptr
}

// Id returns the handle's underlying ComponentId, for interop with the
// untyped World/Query APIs.
func (h ComponentHandle[T]) Id() ComponentId {
	return h.id
}

// DefineComponent registers T as a component type on w, returning a typed
// handle. Calling it again for the same T on the same w returns the
// already-registered handle rather than defining a duplicate id — this is
// the "define once per Go type" convenience the low-level
// World.DefineComponent(name, stride) does not itself provide.
//
// A zero-sized T (struct{}) registers with stride 0 and becomes a tag
// component: Add still works, and Get/TryGet on an entity carrying it
// hand back a pointer to a zero value.
func DefineComponent[T any](w *World, name string) ComponentHandle[T] {
	var zero T
	t := reflect.TypeOf(zero)
	if id, ok := w.typeIds[t]; ok {
		return ComponentHandle[T]{id: id, stride: unsafe.Sizeof(zero)}
	}
	stride := unsafe.Sizeof(zero)
	id := w.DefineComponent(name, uint32(stride))
	w.typeIds[t] = id
	return ComponentHandle[T]{id: id, stride: stride}
}

// Add attaches h's component, zero-valued, to e. It is a thin wrapper over
// World.AddComponent; use AddWithValue to seed an initial value in one
// step.
func (h ComponentHandle[T]) Add(w *World, e Entity) error {
	return w.AddComponent(e, h.id)
}

// AddWithValue attaches h's component to e and immediately sets it to
// value.
func (h ComponentHandle[T]) AddWithValue(w *World, e Entity, value T) error {
	if err := w.AddComponent(e, h.id); err != nil {
		return err
	}
	h.Set(w, e, value)
	return nil
}

// Remove detaches h's component from e.
func (h ComponentHandle[T]) Remove(w *World, e Entity) error {
	return w.RemoveComponent(e, h.id)
}

// Has reports whether e carries h's component.
func (h ComponentHandle[T]) Has(w *World, e Entity) bool {
	return w.HasComponent(e, h.id)
}

// Get returns a pointer to e's value for h's component. If e does not
// carry it, Get logs a diagnostic through Config's Logger (identifying
// the component name and entity handle, per spec.md §7) and returns nil —
// it never panics, since a missing component is recoverable misuse, not a
// structural violation.
func (h ComponentHandle[T]) Get(w *World, e Entity) *T {
	ptr, ok := h.TryGet(w, e)
	if !ok {
		meta, _ := w.registry.meta(h.id)
		Config.logger.Printf("GetComponent miss: entity %d has no component %q (id %d)", e, meta.Name, h.id)
		return nil
	}
	return ptr
}

// TryGet returns a pointer to e's value for h's component and true, or
// (nil, false) if e does not carry it. Unlike Get, a miss is silent.
func (h ComponentHandle[T]) TryGet(w *World, e Entity) (*T, bool) {
	bytes, ok := w.componentBytes(e, h.id)
	if !ok {
		return nil, false
	}
	if h.stride == 0 {
		var zero T
		return &zero, true
	}
	return (*T)(unsafe.Pointer(&bytes[0])), true
}

// Set overwrites e's value for h's component, adding the component first
// if e does not already carry it.
func (h ComponentHandle[T]) Set(w *World, e Entity, value T) {
	h.Add(w, e)
	ptr, ok := h.TryGet(w, e)
	if !ok {
		return
	}
	*ptr = value
}

// Slice exposes every row of h's component in it's archetype as a
// contiguous Go slice, row-aligned with it.Entity(row). Valid only for the
// lifetime of the Iterator callback it was obtained in — a structural
// mutation invalidates it immediately, which is exactly what World's
// re-entrancy guard forbids while an Iterator is live.
func (h ComponentHandle[T]) Slice(it *Iterator, ordinal int) []T {
	col := it.column(ordinal)
	n := int(col.Len())
	if n == 0 || col.stride == 0 {
		return nil
	}
	return unsafe.Slice((*T)(col.ptr(0)), n)
}
