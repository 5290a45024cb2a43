// SPDX-License-Identifier: MPL-2.0

// Package directive renders the line-oriented directives consumed by the
// host build orchestrator.
//
// The wire grammar is the cargo build-script directive dialect:
//
//	cargo::rustc-check-cfg=cfg(NAME, values("a", "b"))   registration
//	cargo::rustc-cfg=NAME="a"                            activation
//
// Rendering is pure; writing the lines to the orchestrator's stream is
// the caller's job (see pkg/fig).
package directive
