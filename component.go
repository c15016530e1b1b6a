package ecs

// ComponentId identifies a component type within a single World. Ids are
// dense, assigned in definition order starting at 0. World.NewWorld always
// defines the reserved "Null" component first, so id 0 is consumed by it
// before any user component is ever registered — the zero value of
// ComponentId therefore never identifies a user-defined component.
type ComponentId uint32

// invalidComponentId is the reserved null id, defined by every World as
// its first component (see World.NewWorld).
const invalidComponentId ComponentId = 0

// ComponentMeta describes a registered component type: its display name
// (used by Archetype.DebugString and diagnostic logging) and its byte
// stride. A stride of 0 marks a tag component — one that carries no data,
// only presence.
type ComponentMeta struct {
	Id     ComponentId
	Name   string
	Stride uint32
}

// IsTag reports whether this component carries no data.
func (m ComponentMeta) IsTag() bool {
	return m.Stride == 0
}

// componentRegistry assigns dense ComponentIds to names/strides and is the
// single owner of "what components exist" for a World.
type componentRegistry struct {
	metas []ComponentMeta // indexed by ComponentId
}

func newComponentRegistry() *componentRegistry {
	return &componentRegistry{}
}

// define registers a new component type and returns its id. Each call
// allocates a fresh id; the World layer is responsible for caching ids by
// Go type so a given type is only ever defined once.
func (r *componentRegistry) define(name string, stride uint32) ComponentId {
	id := ComponentId(len(r.metas))
	r.metas = append(r.metas, ComponentMeta{Id: id, Name: name, Stride: stride})
	return id
}

// meta looks up a previously defined component's metadata. The second
// return is false if id was never registered.
func (r *componentRegistry) meta(id ComponentId) (ComponentMeta, bool) {
	if int(id) >= len(r.metas) {
		return ComponentMeta{}, false
	}
	return r.metas[id], true
}

// count returns the number of defined components.
func (r *componentRegistry) count() int {
	return len(r.metas)
}
