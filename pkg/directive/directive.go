// SPDX-License-Identifier: MPL-2.0

package directive

import "strings"

const (
	// checkCfgPrefix starts every registration directive.
	checkCfgPrefix = "cargo::rustc-check-cfg="
	// cfgPrefix starts every activation directive.
	cfgPrefix = "cargo::rustc-cfg="

	// valueSeparator joins quoted values inside a values() clause.
	valueSeparator = ", "
)

// NoneClause is the values() clause for presence-only predicates.
// The orchestrator grammar requires the explicit none() marker; an
// omitted list would register the predicate as value-carrying.
func NoneClause() string { return "none()" }

// AnyClause is the values() clause for predicates accepting any value.
func AnyClause() string { return "any()" }

// OneOfClause renders the values() clause for an enumerated value set,
// quoting each value and preserving declaration order.
func OneOfClause(values ...string) string {
	if len(values) == 0 {
		return ""
	}

	var sb strings.Builder
	size := len(valueSeparator) * (len(values) - 1)
	for _, v := range values {
		size += len(v) + 2
	}
	sb.Grow(size)

	for i, v := range values {
		if i > 0 {
			sb.WriteString(valueSeparator)
		}
		sb.WriteByte('"')
		sb.WriteString(v)
		sb.WriteByte('"')
	}
	return sb.String()
}

// NoneOrOneOfClause renders the values() clause for a set that may also
// be left unset.
func NoneOrOneOfClause(values ...string) string {
	return NoneClause() + valueSeparator + OneOfClause(values...)
}

// Registration renders the check-cfg line that registers name and its
// legal values with the orchestrator's static verification pass.
// valuesClause is one of the *Clause helpers above.
func Registration(name, valuesClause string) string {
	return checkCfgPrefix + "cfg(" + name + ", values(" + valuesClause + "))"
}

// Activation renders the cfg line that activates name for the current
// build. A nil value activates the predicate without a value.
func Activation(name string, value *string) string {
	if value == nil {
		return cfgPrefix + name
	}
	return cfgPrefix + name + `="` + *value + `"`
}
