package ecs_test

import (
	"fmt"

	"github.com/go-oecs/ecs"
)

// Position is a simple component for 2D coordinates.
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement.
type Velocity struct {
	X float64
	Y float64
}

// Name is a simple component for entity identification.
type Name struct {
	Value string
}

// Example_basic shows entity creation, component values and a query.
func Example_basic() {
	world := ecs.NewWorld()

	position := ecs.DefineComponent[Position](world, "Position")
	velocity := ecs.DefineComponent[Velocity](world, "Velocity")
	name := ecs.DefineComponent[Name](world, "Name")

	for i := 0; i < 5; i++ {
		world.CreateEntity(position.Id())
	}
	for i := 0; i < 3; i++ {
		world.CreateEntity(position.Id(), velocity.Id())
	}

	player := world.CreateEntity(position.Id(), velocity.Id(), name.Id())
	name.Set(world, player, Name{Value: "Player"})
	position.Set(world, player, Position{X: 10.0, Y: 20.0})
	velocity.Set(world, player, Velocity{X: 1.0, Y: 2.0})

	moving := world.CreateQuery([]ecs.ComponentId{position.Id(), velocity.Id()}, nil)
	matchCount := 0
	world.Iterate(moving, func(it *ecs.Iterator) {
		matchCount += it.EntityCount()
	})
	fmt.Printf("Found %d entities with position and velocity\n", matchCount)

	named := world.CreateQuery([]ecs.ComponentId{position.Id(), velocity.Id(), name.Id()}, nil)
	world.Iterate(named, func(it *ecs.Iterator) {
		positions := position.Slice(it, 0)
		velocities := velocity.Slice(it, 1)
		names := name.Slice(it, 2)
		for i := range names {
			positions[i].X += velocities[i].X
			positions[i].Y += velocities[i].Y
			fmt.Printf("Updated %s to position (%.1f, %.1f)\n", names[i].Value, positions[i].X, positions[i].Y)
		}
	})

	// Output:
	// Found 4 entities with position and velocity
	// Updated Player to position (11.0, 22.0)
}

// EmployeeName holds a staff member's display name.
type EmployeeName struct {
	Value string
}

// Salary holds a staff member's pay.
type Salary struct {
	Amount int
}

// Employee tags every staff member.
type Employee struct{}

// Manager tags a staff member who manages others.
type Manager struct{}

// Fired tags a staff member who no longer works here.
type Fired struct{}

// Example_queries mirrors a small HR system: every staff member has a
// name, the Employee tag and a salary; some are also managers, and some
// have since been fired. It shows include-only, include+exclude and
// plain tag queries side by side.
func Example_queries() {
	world := ecs.NewWorld()

	nameComp := ecs.DefineComponent[EmployeeName](world, "EmployeeName")
	salaryComp := ecs.DefineComponent[Salary](world, "Salary")
	employeeComp := ecs.DefineComponent[Employee](world, "Employee")
	managerComp := ecs.DefineComponent[Manager](world, "Manager")
	firedComp := ecs.DefineComponent[Fired](world, "Fired")

	hire := func(staffName string, salary int, isManager, isFired bool) {
		ids := []ecs.ComponentId{nameComp.Id(), salaryComp.Id(), employeeComp.Id()}
		if isManager {
			ids = append(ids, managerComp.Id())
		}
		if isFired {
			ids = append(ids, firedComp.Id())
		}
		e := world.CreateEntity(ids...)
		nameComp.Set(world, e, EmployeeName{Value: staffName})
		salaryComp.Set(world, e, Salary{Amount: salary})
	}

	hire("Alice", 95000, true, false)
	hire("Bob", 60000, false, false)
	hire("Carol", 58000, false, true)
	hire("Dave", 61000, false, false)

	allEmployees := world.CreateQuery([]ecs.ComponentId{employeeComp.Id()}, nil)
	count := 0
	world.Iterate(allEmployees, func(it *ecs.Iterator) { count += it.EntityCount() })
	fmt.Printf("all employees: %d\n", count)

	managers := world.CreateQuery([]ecs.ComponentId{employeeComp.Id(), managerComp.Id()}, nil)
	count = 0
	world.Iterate(managers, func(it *ecs.Iterator) { count += it.EntityCount() })
	fmt.Printf("managers: %d\n", count)

	active := world.CreateQuery([]ecs.ComponentId{employeeComp.Id()}, []ecs.ComponentId{firedComp.Id()})
	count = 0
	world.Iterate(active, func(it *ecs.Iterator) { count += it.EntityCount() })
	fmt.Printf("active employees: %d\n", count)

	// Output:
	// all employees: 4
	// managers: 1
	// active employees: 3
}

// Height and gravity-affected Velocity drive a one-dimensional physics
// system that runs every Progress call until the object lands.
type Height struct {
	Value float64
}

type GravityVelocity struct {
	Value float64
}

// Example_gravitySystem registers a PhasePhysics system that applies
// gravity to every entity with a Height and a GravityVelocity, and runs
// World.Progress until the object reaches the ground.
func Example_gravitySystem() {
	const gravity = 9.81
	const dt = 0.05

	world := ecs.NewWorld()
	height := ecs.DefineComponent[Height](world, "Height")
	velocity := ecs.DefineComponent[GravityVelocity](world, "GravityVelocity")

	ball := world.CreateEntity(height.Id(), velocity.Id())
	height.Set(world, ball, Height{Value: 3})
	velocity.Set(world, ball, GravityVelocity{Value: 10})

	falling := world.CreateQuery([]ecs.ComponentId{height.Id(), velocity.Id()}, nil)

	world.CreateSystem(ecs.PhasePhysics, "apply_gravity", func(w *ecs.World, dt float64) {
		w.Iterate(falling, func(it *ecs.Iterator) {
			heights := height.Slice(it, 0)
			velocities := velocity.Slice(it, 1)
			for i := range heights {
				heights[i].Value += velocities[i].Value * dt
				velocities[i].Value -= gravity * dt
			}
		})
	})

	steps := 0
	for height.Get(world, ball).Value > 0 {
		world.Progress(dt)
		steps++
	}
	fmt.Printf("ball landed after %d steps\n", steps)

	// Output:
	// ball landed after 47 steps
}
