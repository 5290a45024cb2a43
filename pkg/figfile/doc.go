// SPDX-License-Identifier: MPL-2.0

// Package figfile provides types and parsing for figfile predicate
// manifests.
//
// A figfile declares build-configuration predicates: each entry names a
// predicate, optionally restricts its legal values, and says how the
// activation value is chosen (a literal value, an environment variable,
// or plain presence). Manifests are written in CUE (validated against
// the embedded #Figfile schema) or TOML.
//
// This package handles schema validation, parsing to Go structs, and
// the Go-side checks the schema cannot express (duplicate predicate
// names, constraint/activation coherence). Running a parsed manifest
// through the declaration pipeline is Figfile.Apply.
package figfile
