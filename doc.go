/*
Package ecs provides an archetype-based Entity-Component-System (ECS) core
for games and simulations.

The package offers a performant approach to managing game entities through
component-based design. It's built on an archetype-based storage system
that keeps entities with the same component set together for optimal
cache utilization.

Core Concepts:

  - Entity: an opaque handle that represents a game object.
  - Component: a data attribute attached to entities, defined once per
    Go type against a World.
  - Archetype: the set of entities sharing an exact component set, stored
    as one packed Column per component.
  - Query: a way to find archetypes matching an include/exclude filter.
  - System: a named callback bound to one Phase and run once on every
    World.Progress call.

Basic Usage:

	world := ecs.NewWorld()

	height := ecs.DefineComponent[Height](world, "Height")
	velocity := ecs.DefineComponent[Velocity](world, "Velocity")

	ball := world.CreateEntity(height.Id(), velocity.Id())
	height.Set(world, ball, Height{Value: 3})
	velocity.Set(world, ball, Velocity{Value: 10})

	query := world.CreateQuery(
		[]ecs.ComponentId{height.Id(), velocity.Id()},
		nil,
	)

	world.CreateSystem(ecs.PhasePhysics, "apply_gravity", func(w *ecs.World, dt float64) {
		w.Iterate(query, func(it *ecs.Iterator) {
			heights := height.Slice(it, 0)
			velocities := velocity.Slice(it, 1)
			for i := range heights {
				heights[i].Value += velocities[i].Value * dt
				velocities[i].Value -= 9.81 * dt
			}
		})
	})

	world.Progress(0.05)

This package is the core of a larger game framework but also works as a
standalone library.
*/
package ecs
