// SPDX-License-Identifier: MPL-2.0

package fig

import "os"

// SetFromEnv activates the predicate from the named environment
// variable: a non-empty value activates with that value, while an unset
// or empty variable activates without one. Validation follows the
// attached constraint exactly as with Set and SetNone.
func (c *Constrained) SetFromEnv(key string) error {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return c.SetNone()
	}
	return c.Set(value)
}

// SetFromEnvOr is SetFromEnv with a fallback: when the variable is
// unset or empty, fallback decides the activation value instead (nil
// meaning no value).
func (c *Constrained) SetFromEnvOr(key string, fallback func() *string) error {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return c.set(fallback())
	}
	return c.Set(value)
}
