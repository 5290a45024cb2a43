// SPDX-License-Identifier: MPL-2.0

package fig

import (
	"fmt"
	"io"

	"github.com/figtools/figgo/pkg/directive"
)

type (
	// Emitter writes registration and activation directives for validated
	// predicates to a single output stream. The stream is injected so that
	// tests can capture emitted lines in an in-memory sink instead of the
	// orchestrator's real sideband.
	//
	// Emitter performs no locking: the declaration pipeline is synchronous
	// and single-threaded, and line order is caller-invocation order.
	Emitter struct {
		out io.Writer
	}

	// Declared is a predicate that carries a validated name but no
	// constraint yet. It is consumed by exactly one transition: attaching
	// a constraint, or the boolean Set() shortcut.
	Declared struct {
		emitter  *Emitter
		name     Name
		consumed bool
	}

	// Constrained is a predicate whose legal value shape has been fixed.
	// It is consumed by exactly one activation call.
	Constrained struct {
		emitter    *Emitter
		name       Name
		constraint Constraint
		consumed   bool
	}
)

// NewEmitter creates an Emitter writing directives to out.
func NewEmitter(out io.Writer) *Emitter {
	return &Emitter{out: out}
}

// Declare starts a new predicate builder for name. The name is validated
// against the identifier grammar before any further transition is
// reachable; failures are reported as *InvalidNameError.
func (e *Emitter) Declare(name string) (*Declared, error) {
	parsed, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	return &Declared{emitter: e, name: parsed}, nil
}

// emit writes the registration and activation lines for an activated
// predicate, registration first so the verification pass sees the legal
// value declaration before the activation. Write failures are wrapped in
// *EmitError and are fatal to the declaration pipeline.
func (e *Emitter) emit(name Name, c Constraint, value *string) error {
	var clause string
	switch c.Kind() {
	case ConstraintAny:
		clause = directive.AnyClause()
	case ConstraintOneOf:
		clause = directive.OneOfClause(c.allowed...)
	case ConstraintNoneOrOneOf:
		clause = directive.NoneOrOneOfClause(c.allowed...)
	default:
		clause = directive.NoneClause()
	}

	registration := directive.Registration(name.String(), clause)
	activation := directive.Activation(name.String(), value)

	if _, err := fmt.Fprintln(e.out, registration); err != nil {
		return &EmitError{Predicate: name, Err: err}
	}
	if _, err := fmt.Fprintln(e.out, activation); err != nil {
		return &EmitError{Predicate: name, Err: err}
	}
	return nil
}

// Name returns the validated predicate name.
func (d *Declared) Name() Name { return d.name }

// AssignedOneOf constrains the predicate to exactly the given values.
// It fails with ErrEmptyValueSet when values is empty and with
// *DuplicateValueError when a value repeats. Declaration order is
// preserved for the registration line.
func (d *Declared) AssignedOneOf(values ...string) (*Constrained, error) {
	// A rejected value set is not a transition: the predicate stays Declared.
	set, err := newValueSet(values)
	if err != nil {
		return nil, err
	}

	d.consume("AssignedOneOf")
	return d.constrained(Constraint{kind: ConstraintOneOf, allowed: set}), nil
}

// AssignedNoneOrOneOf constrains the predicate to the given values while
// also allowing activation without a value. The value-set rules match
// AssignedOneOf.
func (d *Declared) AssignedNoneOrOneOf(values ...string) (*Constrained, error) {
	set, err := newValueSet(values)
	if err != nil {
		return nil, err
	}

	d.consume("AssignedNoneOrOneOf")
	return d.constrained(Constraint{kind: ConstraintNoneOrOneOf, allowed: set}), nil
}

// AssignedAny constrains the predicate to accept any non-empty value.
func (d *Declared) AssignedAny() *Constrained {
	d.consume("AssignedAny")
	return d.constrained(Constraint{kind: ConstraintAny})
}

// AssignedNone constrains the predicate to presence-only activation.
// Equivalent to the Set() shortcut split into two steps, for callers
// that hand the constrained predicate to another component before
// activating it.
func (d *Declared) AssignedNone() *Constrained {
	d.consume("AssignedNone")
	return d.constrained(Constraint{kind: ConstraintNone})
}

// Set activates the predicate as a boolean (presence-only) flag and
// emits its registration and activation directives. This is the
// shortcut transition for predicates that never attach a constraint.
func (d *Declared) Set() error {
	d.consume("Set")
	return d.emitter.emit(d.name, Constraint{kind: ConstraintNone}, nil)
}

// constrained builds the next builder state sharing this predicate's
// emitter and name.
func (d *Declared) constrained(c Constraint) *Constrained {
	return &Constrained{emitter: d.emitter, name: d.name, constraint: c}
}

// consume marks the state as used. Reusing a consumed state is a
// programming error, not a runtime condition, so it fails fast.
func (d *Declared) consume(op string) {
	if d.consumed {
		panic(fmt.Sprintf("fig: %s called on already-consumed predicate %q", op, d.name))
	}
	d.consumed = true
}

// Name returns the validated predicate name.
func (c *Constrained) Name() Name { return c.name }

// Constraint returns the attached value constraint.
func (c *Constrained) Constraint() Constraint { return c.constraint }

// Set validates value against the constraint and, on success, activates
// the predicate and emits its registration and activation directives.
// On failure it returns *ValueNotAllowedError carrying the rejected
// value and the allowed set, and emits nothing.
func (c *Constrained) Set(value string) error {
	return c.set(&value)
}

// SetNone activates the predicate without a value. Only constraint
// shapes that admit absence (none, none-or-one-of) accept this; other
// shapes fail with *ValueNotAllowedError and emit nothing.
func (c *Constrained) SetNone() error {
	return c.set(nil)
}

func (c *Constrained) set(value *string) error {
	if c.consumed {
		panic(fmt.Sprintf("fig: Set called on already-activated predicate %q", c.name))
	}

	// A rejected value is not a transition: the predicate stays
	// Constrained and nothing is emitted.
	if !c.constraint.Allows(value) {
		return &ValueNotAllowedError{
			Predicate: c.name,
			Value:     value,
			Allowed:   c.constraint.Allowed(),
		}
	}

	c.consumed = true
	return c.emitter.emit(c.name, c.constraint, value)
}
