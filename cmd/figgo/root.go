// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for figgo.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/figtools/figgo/internal/config"
	"github.com/figtools/figgo/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded configuration, set by initRootConfig. It stays nil
	// when loading fails; commands must tolerate that.
	cfg *config.Config

	// logger carries verbose diagnostics. Debug lines are suppressed
	// unless --verbose (or ui.verbose) is set.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "figgo",
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "figgo",
		Short: "Declare and emit custom cfg predicates for build scripts",
		Long: TitleStyle.Render("figgo") + SubtitleStyle.Render(" - custom cfg predicates for build scripts") + `

figgo declares custom conditional-compilation predicates, validates
their values against the declared constraints, and emits the matching
build-script directives (registration and activation lines) on stdout.

Predicates are defined in 'figfile' manifests using CUE or TOML format,
or programmatically through the figgo library.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Create a figfile in your project directory
  2. Declare predicates and their allowed values
  3. Emit directives with: figgo emit

` + SubtitleStyle.Render("Examples:") + `
  figgo emit                Emit directives for ./figfile.cue
  figgo emit build/fig.toml Emit directives for a specific manifest
  figgo check               Validate the manifest without emitting
  figgo init                Create a new figfile
  figgo config show         Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/figgo/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(emitCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	// Set custom config file path if provided via --config flag
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	// Load configuration
	loaded, err := config.Load()
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	cfg = loaded

	// Apply verbose from config if not set via flag
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}

	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// styleName maps the configured color scheme to a glamour style name.
// The auto scheme falls back to dark, the safer default on terminals.
func styleName() string {
	if cfg != nil && cfg.UI.ColorScheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}

// printIssueCard renders a styled issue card to stderr followed by the
// formatted error itself.
func printIssueCard(id issue.Id, err error) {
	if rendered, rerr := issue.Get(id).Render(styleName()); rerr == nil {
		fmt.Fprint(os.Stderr, rendered)
	}
	fmt.Fprintf(os.Stderr, "\n%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
