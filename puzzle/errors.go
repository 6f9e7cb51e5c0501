package puzzle

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrInvalidStage matches every *StageParseError.
	ErrInvalidStage = errors.New("could not parse stage")

	// ErrNotRegistered matches every *NotRegisteredError.
	ErrNotRegistered = errors.New("puzzle not registered")
)

// StageParseError reports text that is not a known stage literal.
type StageParseError struct {
	Text string
}

func (e *StageParseError) Error() string {
	return fmt.Sprintf("%s %q", ErrInvalidStage, e.Text)
}

func (e *StageParseError) Is(target error) bool { return target == ErrInvalidStage }

// ParseError wraps a failure of a unit's parse step.
type ParseError struct {
	Day   int
	Stage Stage
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("day %d %s: parse input: %v", e.Day, e.Stage, e.Err)
}

// Unwrap returns the parse step's own error.
func (e *ParseError) Unwrap() error { return e.Err }

// ComputeError wraps a failure of a unit's compute step.
type ComputeError struct {
	Day   int
	Stage Stage
	Err   error
}

func (e *ComputeError) Error() string {
	return fmt.Sprintf("day %d %s: compute: %v", e.Day, e.Stage, e.Err)
}

// Unwrap returns the compute step's own error.
func (e *ComputeError) Unwrap() error { return e.Err }

// NotRegisteredError is returned by Registry.Lookup on a miss.
type NotRegisteredError struct {
	Key Key
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("%s: day %d %s", ErrNotRegistered, e.Key.Day, e.Key.Stage)
}

func (e *NotRegisteredError) Is(target error) bool { return target == ErrNotRegistered }
