package ftracker

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrUnknownWorkoutKind is returned for a package tagged with an unknown code.
	ErrUnknownWorkoutKind = errors.New("unknown workout kind")
	// ErrArityMismatch is returned when a package carries the wrong number of values.
	ErrArityMismatch = errors.New("wrong number of package values")
	// ErrInvalidDuration is returned for a duration that is not a positive finite number.
	ErrInvalidDuration = errors.New("duration must be positive")
	// ErrInvalidValue is returned for any other reading out of its domain.
	ErrInvalidValue = errors.New("invalid package value")
)

// UnknownKindError describes a package tagged with an unknown code.
type UnknownKindError struct {
	Kind  string
	Valid []Kind
}

func (e *UnknownKindError) Error() string {
	valid := make([]string, 0, len(e.Valid))
	for _, k := range e.Valid {
		valid = append(valid, string(k))
	}
	return fmt.Sprintf("%s %q, expected one of: %s", ErrUnknownWorkoutKind, e.Kind, strings.Join(valid, ", "))
}

func (e *UnknownKindError) Is(target error) bool {
	return target == ErrUnknownWorkoutKind
}

// ArityError describes a package whose value count does not match its kind.
type ArityError struct {
	Kind Kind
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: %s expects %d values, got %d", ErrArityMismatch, e.Kind, e.Want, e.Got)
}

func (e *ArityError) Is(target error) bool {
	return target == ErrArityMismatch
}

func checkDuration(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w, got %v", ErrInvalidDuration, v)
	}
	return nil
}

func checkPositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidValue, name, v)
	}
	return nil
}

func checkCount(name string, v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidValue, name, v)
	}
	return nil
}

// toCount converts a package value that must hold a whole number.
func toCount(name string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %v", ErrInvalidValue, name, v)
	}
	if v < 0 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s out of range, got %v", ErrInvalidValue, name, v)
	}
	return int(v), nil
}
