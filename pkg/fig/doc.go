// SPDX-License-Identifier: MPL-2.0

// Package fig declares custom build-configuration predicates and emits
// the directives that register and activate them with the host build
// orchestrator.
//
// A predicate moves through three states, each represented by its own
// type so that only legal transitions compile:
//
//	Declared ──AssignedOneOf──▶ Constrained ──Set(value)──▶ activated
//	Declared ────────────────────Set()───────────────────▶ activated
//
// Activation writes two directive lines to the Emitter's output stream:
// a check-cfg registration line (so the orchestrator's static verification
// pass knows the name and its legal values) followed by a cfg activation
// line. Nothing is written when validation fails.
//
// # Usage
//
//	e := fig.NewEmitter(os.Stdout)
//
//	profile, err := e.Declare("build_profile")
//	if err != nil { ... }
//	constrained, err := profile.AssignedOneOf("debug", "release")
//	if err != nil { ... }
//	if err := constrained.Set("release"); err != nil { ... }
//
//	// Boolean (presence-only) predicates skip the constraint step:
//	telemetry, _ := e.Declare("telemetry")
//	_ = telemetry.Set()
//
// Every builder state is single-shot: invoking a transition on a state
// that was already consumed is a programming error and panics.
package fig
