package ecs

import "time"

// Phase orders when a System runs within one World.Progress call. The
// eight phases always run in this exact ascending order; systems within a
// phase run in the order they were registered.
type Phase int

const (
	PhasePhysics Phase = iota
	PhasePreUpdate
	PhaseUpdate
	PhasePostUpdate
	PhaseTransform
	PhasePreRender
	PhaseRender
	PhasePostRender

	// PhaseCount is the number of phases, not a usable phase itself.
	PhaseCount
)

// SystemCallback is the function a System runs every Progress call. dt is
// the caller-supplied frame delta, passed through unmodified.
type SystemCallback func(w *World, dt float64)

// System is a named callback bound to a Phase. Callers get a handle back
// from CreateSystem mainly to read its debug stats when Config.Debug is on.
type System struct {
	name  string
	phase Phase
	fn    SystemCallback

	callCount uint64
	elapsed   time.Duration
}

// CreateSystem registers fn to run during phase on every future Progress
// call, after every system already registered for that phase.
func (w *World) CreateSystem(phase Phase, name string, fn SystemCallback) *System {
	w.assertAlive()
	s := &System{name: name, phase: phase, fn: fn}
	w.systems[phase] = append(w.systems[phase], s)
	if _, err := w.systemNames.Register(name, s); err != nil {
		Config.logger.Printf("system %q not tracked for debug stats: %v", name, err)
	}
	return s
}

// SystemByName looks up a previously created system by the name it was
// registered with. Used to inspect Config.Debug call-count/elapsed stats.
func (w *World) SystemByName(name string) (*System, bool) {
	idx, ok := w.systemNames.GetIndex(name)
	if !ok {
		return nil, false
	}
	return *w.systemNames.GetItem(idx), true
}

// Name returns the system's registered name.
func (s *System) Name() string {
	return s.name
}

// CallCount returns how many times the system has run. Only accumulated
// while Config.Debug is true.
func (s *System) CallCount() uint64 {
	return s.callCount
}

// Elapsed returns total time spent inside the system's callback. Only
// accumulated while Config.Debug is true.
func (s *System) Elapsed() time.Duration {
	return s.elapsed
}

func (s *System) run(w *World, dt float64) {
	if !Config.Debug {
		s.fn(w, dt)
		return
	}
	start := time.Now()
	s.fn(w, dt)
	s.elapsed += time.Since(start)
	s.callCount++
}

// Progress runs every registered system once, phase by phase in the fixed
// PhasePhysics..PhasePostRender order, and within each phase in
// registration order.
func (w *World) Progress(dt float64) {
	w.assertAlive()
	for phase := Phase(0); phase < PhaseCount; phase++ {
		for _, s := range w.systems[phase] {
			s.run(w, dt)
		}
	}
}
