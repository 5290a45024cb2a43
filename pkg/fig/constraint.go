// SPDX-License-Identifier: MPL-2.0

package fig

import "slices"

const (
	// ConstraintNone accepts only presence-style activation (no value).
	ConstraintNone ConstraintKind = "none"
	// ConstraintAny accepts any non-empty string value.
	ConstraintAny ConstraintKind = "any"
	// ConstraintOneOf accepts exactly the values in the declared set.
	ConstraintOneOf ConstraintKind = "one_of"
	// ConstraintNoneOrOneOf accepts the declared set or no value at all.
	ConstraintNoneOrOneOf ConstraintKind = "none_or_one_of"
)

type (
	// ConstraintKind identifies the shape of a value constraint.
	ConstraintKind string

	// Constraint is the rule restricting which values a predicate may be
	// activated with. The zero value is not meaningful; constraints are
	// built by the Declared transitions.
	Constraint struct {
		kind    ConstraintKind
		allowed []string
	}
)

// Kind returns the shape of the constraint.
func (c Constraint) Kind() ConstraintKind { return c.kind }

// Allowed returns a copy of the declared value set. It is empty for
// the none and any constraint shapes.
func (c Constraint) Allowed() []string {
	return slices.Clone(c.allowed)
}

// Allows reports whether value may be assigned under this constraint.
// A nil value means presence-only activation. Pure and deterministic.
func (c Constraint) Allows(value *string) bool {
	switch c.kind {
	case ConstraintNone:
		return value == nil
	case ConstraintAny:
		return value != nil
	case ConstraintOneOf:
		return value != nil && slices.Contains(c.allowed, *value)
	case ConstraintNoneOrOneOf:
		return value == nil || slices.Contains(c.allowed, *value)
	default:
		return false
	}
}

// newValueSet checks a proposed value set for the one-of constraint
// shapes: it must be non-empty and free of duplicates. The input order
// is preserved so registration lines match the declaration.
func newValueSet(values []string) ([]string, error) {
	if len(values) == 0 {
		return nil, ErrEmptyValueSet
	}
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			return nil, &DuplicateValueError{Value: v}
		}
		seen[v] = struct{}{}
	}
	return slices.Clone(values), nil
}
