// SPDX-License-Identifier: MPL-2.0

// figgo declares custom cfg predicates and emits build-script directives.
package main

import (
	cmd "github.com/figtools/figgo/cmd/figgo"
)

func main() {
	cmd.Execute()
}
