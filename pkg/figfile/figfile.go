// SPDX-License-Identifier: MPL-2.0

package figfile

import (
	"errors"
	"fmt"

	"github.com/figtools/figgo/pkg/fig"
)

var (
	// ErrDuplicatePredicate is returned when two manifest entries declare
	// the same predicate name. The orchestrator treats same-name
	// directives as last-write-wins, so a duplicate in one manifest is
	// almost always a mistake.
	ErrDuplicatePredicate = errors.New("duplicate predicate in figfile")
	// ErrInvalidPredicateEntry is the sentinel error wrapped by
	// InvalidPredicateEntryError.
	ErrInvalidPredicateEntry = errors.New("invalid predicate entry")
)

type (
	// Figfile is a parsed predicate manifest.
	Figfile struct {
		// Version is the optional manifest format version.
		Version string `json:"version,omitempty" toml:"version,omitempty"`
		// Predicates lists the declared predicates in emission order.
		Predicates []Predicate `json:"predicates" toml:"predicates"`

		// FilePath is where the manifest was loaded from (set by Parse).
		FilePath string `json:"-" toml:"-"`
	}

	// Predicate is one manifest entry: a predicate name, its value
	// constraint, and how the activation value is chosen.
	Predicate struct {
		// Name is the predicate name.
		Name string `json:"name" toml:"name"`
		// Values enumerates the legal activation values (optional).
		Values []string `json:"values,omitempty" toml:"values,omitempty"`
		// AllowUnset additionally permits activation without a value.
		// Only meaningful together with Values.
		AllowUnset bool `json:"allow_unset,omitempty" toml:"allow_unset,omitempty"`
		// Any accepts any non-empty value instead of an enumerated list.
		Any bool `json:"any,omitempty" toml:"any,omitempty"`
		// Value is a literal activation value (optional).
		Value *string `json:"value,omitempty" toml:"value,omitempty"`
		// FromEnv names an environment variable consulted for the
		// activation value (optional, mutually exclusive with Value).
		FromEnv string `json:"from_env,omitempty" toml:"from_env,omitempty"`
		// Default is the fallback when FromEnv is unset or empty.
		Default *string `json:"default,omitempty" toml:"default,omitempty"`
	}

	// InvalidPredicateEntryError is returned when a manifest entry has an
	// incoherent field combination. It wraps ErrInvalidPredicateEntry for
	// errors.Is() compatibility.
	InvalidPredicateEntryError struct {
		// Name is the entry's predicate name (may itself be invalid).
		Name string
		// FieldErrors lists the individual problems.
		FieldErrors []error
	}
)

// Error implements the error interface for InvalidPredicateEntryError.
func (e *InvalidPredicateEntryError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("predicate %q: %v", e.Name, e.FieldErrors[0])
	}
	return fmt.Sprintf("predicate %q: %d field error(s)", e.Name, len(e.FieldErrors))
}

// Unwrap returns ErrInvalidPredicateEntry for errors.Is() compatibility.
func (e *InvalidPredicateEntryError) Unwrap() error { return ErrInvalidPredicateEntry }

// validate applies the rules the schema cannot express: predicate name
// uniqueness across entries and per-entry field coherence.
func (f *Figfile) validate() error {
	seen := make(map[string]int, len(f.Predicates))
	for i, p := range f.Predicates {
		if firstIdx, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: predicates[%d] %q already declared at predicates[%d]",
				ErrDuplicatePredicate, i, p.Name, firstIdx)
		}
		seen[p.Name] = i

		if err := p.validate(); err != nil {
			return fmt.Errorf("predicates[%d]: %w", i, err)
		}
	}
	return nil
}

// validate checks one entry's field combination for coherence.
// Name grammar and value-set rules are left to the fig builder, which
// revalidates them on Apply.
func (p Predicate) validate() error {
	var errs []error

	if p.Any && len(p.Values) > 0 {
		errs = append(errs, errors.New("any and values are mutually exclusive"))
	}
	if p.AllowUnset && len(p.Values) == 0 {
		errs = append(errs, errors.New("allow_unset requires values"))
	}
	if p.Value != nil && p.FromEnv != "" {
		errs = append(errs, errors.New("value and from_env are mutually exclusive"))
	}
	if p.Default != nil && p.FromEnv == "" {
		errs = append(errs, errors.New("default requires from_env"))
	}
	if p.Value != nil && !p.Any && len(p.Values) == 0 {
		errs = append(errs, errors.New("value given for a presence-only predicate (declare values or any)"))
	}

	if len(errs) > 0 {
		return &InvalidPredicateEntryError{Name: p.Name, FieldErrors: errs}
	}
	return nil
}

// Apply runs every manifest entry through the declaration pipeline,
// emitting directives via e in manifest order. It stops at the first
// failing entry; entries before it have already been emitted.
func (f *Figfile) Apply(e *fig.Emitter) error {
	for i, p := range f.Predicates {
		if err := p.Apply(e); err != nil {
			return fmt.Errorf("predicates[%d]: %w", i, err)
		}
	}
	return nil
}

// Apply runs one entry through the declare → constrain → activate
// pipeline against e.
func (p Predicate) Apply(e *fig.Emitter) error {
	declared, err := e.Declare(p.Name)
	if err != nil {
		return err
	}

	// Presence-only predicates with no environment lookup take the
	// boolean shortcut.
	if !p.Any && len(p.Values) == 0 && p.FromEnv == "" {
		return declared.Set()
	}

	constrained, err := p.constrain(declared)
	if err != nil {
		return err
	}

	switch {
	case p.FromEnv != "":
		return constrained.SetFromEnvOr(p.FromEnv, func() *string { return p.Default })
	case p.Value != nil:
		return constrained.Set(*p.Value)
	default:
		return constrained.SetNone()
	}
}

// constrain attaches the entry's value constraint to the declared
// predicate.
func (p Predicate) constrain(d *fig.Declared) (*fig.Constrained, error) {
	switch {
	case p.Any:
		return d.AssignedAny(), nil
	case len(p.Values) > 0 && p.AllowUnset:
		return d.AssignedNoneOrOneOf(p.Values...)
	case len(p.Values) > 0:
		return d.AssignedOneOf(p.Values...)
	default:
		return d.AssignedNone(), nil
	}
}
