// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates the figgo application configuration.
//
// Configuration lives in a CUE file under the platform config directory
// (e.g. ~/.config/figgo/config.cue on Linux) or in the working
// directory. Files are validated against the embedded #Config schema,
// merged into Viper on top of the defaults, and decoded into Config.
package config
