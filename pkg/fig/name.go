// SPDX-License-Identifier: MPL-2.0

package fig

// Name is a predicate name that has passed the identifier validator.
// A valid name is non-empty, starts with a letter or underscore, and
// continues with letters, digits, or underscores only. Immutable once
// a builder is created from it.
type Name string

// String returns the string representation of the Name.
func (n Name) String() string { return string(n) }

// ParseName validates candidate against the orchestrator's identifier
// grammar and returns it as a Name. It is pure and deterministic;
// failures are reported as *InvalidNameError.
func ParseName(candidate string) (Name, error) {
	if !isValidName(candidate) {
		return "", &InvalidNameError{Name: candidate}
	}
	return Name(candidate), nil
}

// isValidName reports whether s matches [A-Za-z_][A-Za-z0-9_]*.
// Implemented as a direct scan: the grammar is ASCII-only, and directive
// names are validated on every declaration.
func isValidName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
