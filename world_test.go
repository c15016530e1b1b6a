package ecs

import "testing"

func TestSystemsRunInPhaseAndRegistrationOrder(t *testing.T) {
	world := NewWorld()
	var order []string

	record := func(name string) SystemCallback {
		return func(w *World, dt float64) { order = append(order, name) }
	}

	world.CreateSystem(PhaseRender, "render", record("render"))
	world.CreateSystem(PhasePhysics, "physics-1", record("physics-1"))
	world.CreateSystem(PhasePreUpdate, "pre-update", record("pre-update"))
	world.CreateSystem(PhasePhysics, "physics-2", record("physics-2"))

	world.Progress(0.016)

	want := []string{"physics-1", "physics-2", "pre-update", "render"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q (phase order or registration order broken)", i, order[i], want[i])
		}
	}
}

func TestProgressDebugStats(t *testing.T) {
	Config.Debug = true
	defer func() { Config.Debug = false }()

	world := NewWorld()
	world.CreateSystem(PhaseUpdate, "counter", func(w *World, dt float64) {})

	world.Progress(0.016)
	world.Progress(0.016)

	sys, ok := world.SystemByName("counter")
	if !ok {
		t.Fatalf("SystemByName did not find registered system")
	}
	if sys.CallCount() != 2 {
		t.Errorf("CallCount() = %d, want 2", sys.CallCount())
	}
}

func TestEmptyArchetypeIsSkippedByIterate(t *testing.T) {
	world := NewWorld()
	pos := DefineComponent[tPos](world, "tPos")
	vel := DefineComponent[tVel](world, "tVel")

	e := world.CreateEntity(pos.Id())
	// Route e through pos+vel and back, so that archetype exists but is empty.
	if err := vel.Add(world, e); err != nil {
		t.Fatalf("AddComponent: %v", err)
	}
	if err := vel.Remove(world, e); err != nil {
		t.Fatalf("RemoveComponent: %v", err)
	}
	query := world.CreateQuery([]ComponentId{pos.Id(), vel.Id()}, nil)
	if query.MatchCount() != 1 {
		t.Fatalf("query matched %d archetypes, want 1 (the empty pos+vel archetype)", query.MatchCount())
	}

	called := false
	world.Iterate(query, func(it *Iterator) { called = true })
	if called {
		t.Errorf("Iterate invoked callback for a query with no matching entities")
	}

	// Give the entity velocity so the pos+vel archetype becomes
	// non-empty; now the query should fire.
	if err := vel.Add(world, e); err != nil {
		t.Fatalf("AddComponent: %v", err)
	}
	world.Iterate(query, func(it *Iterator) { called = true })
	if !called {
		t.Errorf("Iterate did not invoke callback once the archetype had entities")
	}
}

func TestShutdownPanicsOnFurtherUse(t *testing.T) {
	world := NewWorld()
	world.Shutdown()

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic after using a shut-down world")
		}
	}()
	world.CreateEntity()
}
