// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/figtools/figgo/pkg/figfile"

	"github.com/spf13/cobra"
)

var (
	initForce    bool
	initTemplate string

	// initCmd creates a new figfile
	initCmd = &cobra.Command{
		Use:   "init [filename]",
		Short: "Create a new figfile in the current directory",
		Long: `Create a new figfile in the current directory with example predicates.

This command generates a starter figfile with sample predicate
declarations to help you get started quickly.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing figfile")
	initCmd.Flags().StringVarP(&initTemplate, "template", "t", "default", "template to use (default, minimal, full)")
}

func runInit(cmd *cobra.Command, args []string) error {
	filename := figfile.DefaultFileName
	if cfg != nil && cfg.FigfileName != "" {
		filename = cfg.FigfileName.String()
	}
	if len(args) > 0 {
		filename = args[0]
	}

	// Check if file exists
	if _, err := os.Stat(filename); err == nil && !initForce {
		return fmt.Errorf("file '%s' already exists. Use --force to overwrite", filename)
	}

	content, err := generateFigfile(initTemplate)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	absPath, _ := filepath.Abs(filename)
	fmt.Printf("%s Created %s\n", SuccessStyle.Render("✓"), absPath)
	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Next steps:"))
	fmt.Println("  1. Edit the figfile to declare your predicates")
	fmt.Println("  2. Run 'figgo check' to validate the manifest")
	fmt.Println("  3. Run 'figgo emit' from your build script to emit directives")

	return nil
}

func generateFigfile(template string) (string, error) {
	var ff *figfile.Figfile

	switch template {
	case "minimal":
		ff = &figfile.Figfile{
			Predicates: []figfile.Predicate{
				{Name: "has_feature"},
			},
		}

	case "full":
		channel := "stable"
		ff = &figfile.Figfile{
			Version: "1",
			Predicates: []figfile.Predicate{
				{Name: "has_feature"},
				{
					Name:    "release_channel",
					Values:  []string{"stable", "beta", "nightly"},
					Value:   &channel,
					Default: nil,
				},
				{
					Name:       "target_tier",
					Values:     []string{"one", "two"},
					AllowUnset: true,
					FromEnv:    "TARGET_TIER",
				},
				{
					Name:    "build_host",
					Any:     true,
					FromEnv: "BUILD_HOST",
				},
			},
		}

	case "default":
		value := "foo"
		ff = &figfile.Figfile{
			Predicates: []figfile.Predicate{
				{Name: "has_feature"},
				{
					Name:   "custom_cfg",
					Values: []string{"foo", "bar"},
					Value:  &value,
				},
			},
		}

	default:
		return "", fmt.Errorf("unknown template '%s' (expected default, minimal, or full)", template)
	}

	return figfile.GenerateCUE(ff), nil
}
