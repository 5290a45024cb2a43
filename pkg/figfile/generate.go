// SPDX-License-Identifier: MPL-2.0

package figfile

import (
	"fmt"
	"strings"
)

// GenerateCUE renders a manifest as CUE text, suitable for writing a
// starter figfile. The output round-trips through ParseBytes.
func GenerateCUE(f *Figfile) string {
	var sb strings.Builder

	sb.WriteString("// Figfile: build-configuration predicate manifest.\n")
	sb.WriteString("// See https://github.com/figtools/figgo for documentation.\n\n")

	if f.Version != "" {
		fmt.Fprintf(&sb, "version: %q\n\n", f.Version)
	}

	sb.WriteString("predicates: [\n")
	for _, p := range f.Predicates {
		sb.WriteString("\t{\n")
		fmt.Fprintf(&sb, "\t\tname: %q\n", p.Name)
		if len(p.Values) > 0 {
			sb.WriteString("\t\tvalues: [")
			for i, v := range p.Values {
				if i > 0 {
					sb.WriteString(", ")
				}
				fmt.Fprintf(&sb, "%q", v)
			}
			sb.WriteString("]\n")
		}
		if p.AllowUnset {
			sb.WriteString("\t\tallow_unset: true\n")
		}
		if p.Any {
			sb.WriteString("\t\tany: true\n")
		}
		if p.Value != nil {
			fmt.Fprintf(&sb, "\t\tvalue: %q\n", *p.Value)
		}
		if p.FromEnv != "" {
			fmt.Fprintf(&sb, "\t\tfrom_env: %q\n", p.FromEnv)
		}
		if p.Default != nil {
			fmt.Fprintf(&sb, "\t\tdefault: %q\n", *p.Default)
		}
		sb.WriteString("\t},\n")
	}
	sb.WriteString("]\n")

	return sb.String()
}
