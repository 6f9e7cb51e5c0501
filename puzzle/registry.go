package puzzle

import (
	"io"
	"sort"
)

// Factory produces a fresh unit on every call.
type Factory[I, O any] func() *Unit[I, O]

// Define wraps a plain parse/compute pair into a Factory for the given key.
func Define[I, O any](day int, stage Stage, parse ParseFunc[I], compute ComputeFunc[I, O]) Factory[I, O] {
	return func() *Unit[I, O] {
		return New(day, stage, parse, compute)
	}
}

// Key identifies a registered runner.
type Key struct {
	Day   int
	Stage Stage
}

// Registry maps (day, stage) to a Runner. It is populated once at startup
// and is not safe for concurrent use.
type Registry struct {
	runners map[Key]Runner
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{runners: make(map[Key]Runner)}
}

// Register invokes f and stores the unit it produces under the unit's own
// key, replacing any earlier entry.
func Register[I, O any](r *Registry, f Factory[I, O]) {
	r.Add(f())
}

// Add stores an already constructed runner, replacing any earlier entry
// with the same key.
func (r *Registry) Add(run Runner) {
	r.runners[Key{Day: run.Day(), Stage: run.Stage()}] = run
}

// Lookup returns the runner for (day, stage) or a *NotRegisteredError.
func (r *Registry) Lookup(day int, stage Stage) (Runner, error) {
	key := Key{Day: day, Stage: stage}
	run, ok := r.runners[key]
	if !ok {
		return nil, &NotRegisteredError{Key: key}
	}
	return run, nil
}

// Run dispatches raw to the runner registered for (day, stage). A missing
// entry is not an error: Run returns nil without writing anything. Use
// Lookup to tell the two cases apart.
func (r *Registry) Run(w io.Writer, day int, stage Stage, raw string) error {
	run, ok := r.runners[Key{Day: day, Stage: stage}]
	if !ok {
		return nil
	}
	return run.Run(w, raw)
}

// Keys returns every registered key ordered by day, then stage.
func (r *Registry) Keys() []Key {
	keys := make([]Key, 0, len(r.runners))
	for k := range r.runners {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Day != keys[j].Day {
			return keys[i].Day < keys[j].Day
		}
		return keys[i].Stage < keys[j].Stage
	})
	return keys
}
