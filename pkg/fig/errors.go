// SPDX-License-Identifier: MPL-2.0

package fig

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidName is the sentinel error wrapped by InvalidNameError.
	ErrInvalidName = errors.New("invalid predicate name")
	// ErrEmptyValueSet is returned when a value-set constraint is declared
	// with zero values.
	ErrEmptyValueSet = errors.New("value set must contain at least one value")
	// ErrDuplicateValue is the sentinel error wrapped by DuplicateValueError.
	ErrDuplicateValue = errors.New("duplicate value in value set")
	// ErrValueNotAllowed is the sentinel error wrapped by ValueNotAllowedError.
	ErrValueNotAllowed = errors.New("value not allowed by constraint")
	// ErrEmit is the sentinel error wrapped by EmitError.
	ErrEmit = errors.New("directive emission failed")
)

type (
	// InvalidNameError is returned when a predicate name does not match the
	// orchestrator's identifier grammar. It wraps ErrInvalidName for
	// errors.Is() compatibility.
	InvalidNameError struct {
		Name string
	}

	// DuplicateValueError is returned when a value-set constraint contains
	// the same value twice. It wraps ErrDuplicateValue for errors.Is()
	// compatibility.
	DuplicateValueError struct {
		Value string
	}

	// ValueNotAllowedError is returned when an activation value is rejected
	// by the predicate's constraint. It carries both the rejected value and
	// the allowed set for diagnostics, and wraps ErrValueNotAllowed for
	// errors.Is() compatibility.
	ValueNotAllowedError struct {
		// Predicate is the name of the predicate being activated.
		Predicate Name
		// Value is the rejected activation value; nil means "no value"
		// (presence-only activation).
		Value *string
		// Allowed is the declared value set, empty for constraints that do
		// not enumerate values.
		Allowed []string
	}

	// EmitError is returned when writing directive lines to the output
	// stream fails. It wraps the underlying I/O error.
	EmitError struct {
		// Predicate is the name of the predicate whose directives failed to write.
		Predicate Name
		// Err is the underlying write error.
		Err error
	}
)

// Error implements the error interface for InvalidNameError.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid predicate name %q (must match [A-Za-z_][A-Za-z0-9_]*)", e.Name)
}

// Unwrap returns ErrInvalidName for errors.Is() compatibility.
func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }

// Error implements the error interface for DuplicateValueError.
func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("duplicate value %q in value set", e.Value)
}

// Unwrap returns ErrDuplicateValue for errors.Is() compatibility.
func (e *DuplicateValueError) Unwrap() error { return ErrDuplicateValue }

// Error implements the error interface for ValueNotAllowedError.
func (e *ValueNotAllowedError) Error() string {
	value := "<none>"
	if e.Value != nil {
		value = fmt.Sprintf("%q", *e.Value)
	}
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("value %s is not assignable to predicate %q", value, e.Predicate)
	}
	return fmt.Sprintf("value %s is not assignable to predicate %q (allowed: %s)",
		value, e.Predicate, strings.Join(e.Allowed, ", "))
}

// Unwrap returns ErrValueNotAllowed for errors.Is() compatibility.
func (e *ValueNotAllowedError) Unwrap() error { return ErrValueNotAllowed }

// Error implements the error interface for EmitError.
func (e *EmitError) Error() string {
	return fmt.Sprintf("failed to emit directives for predicate %q: %v", e.Predicate, e.Err)
}

// Unwrap returns the underlying write error.
func (e *EmitError) Unwrap() error { return e.Err }

// Is reports whether target is ErrEmit, in addition to the wrapped cause
// exposed through Unwrap.
func (e *EmitError) Is(target error) bool { return target == ErrEmit }
