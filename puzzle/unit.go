// Package puzzle holds typed puzzle units and the registry that dispatches
// them by (day, stage).
//
// A Unit is generic over its parsed input and its output. The Registry only
// stores the Runner interface, so units with unrelated type parameters live
// side by side in one map.
package puzzle

import (
	"fmt"
	"io"
)

// ParseFunc turns raw puzzle text into a typed input.
type ParseFunc[I any] func(raw string) (I, error)

// ComputeFunc solves a stage from its parsed input.
type ComputeFunc[I, O any] func(in I) (O, error)

// Runner is a unit with its input and output types erased.
type Runner interface {
	Day() int
	Stage() Stage
	// Run parses raw, computes the answer and writes one solution line to w.
	// Nothing is written when either step fails.
	Run(w io.Writer, raw string) error
}

// Verify interface compliance at compile time.
var _ Runner = (*Unit[int, int])(nil)

// Unit bundles one stage of one day: its key, parse step and compute step.
type Unit[I, O any] struct {
	day     int
	stage   Stage
	parse   ParseFunc[I]
	compute ComputeFunc[I, O]
}

// New stores the given fields without validating day.
func New[I, O any](day int, stage Stage, parse ParseFunc[I], compute ComputeFunc[I, O]) *Unit[I, O] {
	return &Unit[I, O]{
		day:     day,
		stage:   stage,
		parse:   parse,
		compute: compute,
	}
}

func (u *Unit[I, O]) Day() int     { return u.day }
func (u *Unit[I, O]) Stage() Stage { return u.stage }

// ParseInput runs the parse step.
func (u *Unit[I, O]) ParseInput(raw string) (I, error) {
	in, err := u.parse(raw)
	if err != nil {
		var zero I
		return zero, &ParseError{Day: u.day, Stage: u.stage, Err: err}
	}
	return in, nil
}

// Compute runs the compute step.
func (u *Unit[I, O]) Compute(in I) (O, error) {
	out, err := u.compute(in)
	if err != nil {
		var zero O
		return zero, &ComputeError{Day: u.day, Stage: u.stage, Err: err}
	}
	return out, nil
}

// Run implements Runner.
func (u *Unit[I, O]) Run(w io.Writer, raw string) error {
	in, err := u.ParseInput(raw)
	if err != nil {
		return err
	}
	out, err := u.Compute(in)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Solution: %v\n", out); err != nil {
		return fmt.Errorf("write solution: %w", err)
	}
	return nil
}
