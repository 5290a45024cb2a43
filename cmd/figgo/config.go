// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/figtools/figgo/internal/config"
	"github.com/figtools/figgo/internal/issue"
	"github.com/figtools/figgo/pkg/figfile"

	"github.com/spf13/cobra"
)

// configCmd is the `figgo config` command tree.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage figgo configuration",
	Long: `Manage figgo configuration.

Configuration is stored in:
  - Linux: ~/.config/figgo/config.cue
  - macOS: ~/Library/Application Support/figgo/config.cue
  - Windows: %APPDATA%\figgo\config.cue`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			fmt.Print(config.GenerateCUE(loaded))
			return nil
		},
	})
}

func showConfig() error {
	loaded, err := config.Load()
	if err != nil {
		printIssueCard(issue.ConfigLoadFailedId, err)
		return &ExitError{Code: 1, Err: err}
	}

	keyStyle := DirectiveStyle
	valueStyle := SuccessStyle

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()

	if path, perr := config.ConfigFilePath(); perr == nil {
		if _, serr := os.Stat(path); serr == nil {
			fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), path)
		} else {
			fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
		}
	} else {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	figfileName := loaded.FigfileName.String()
	if figfileName == "" {
		figfileName = figfile.DefaultFileName
	}
	fmt.Printf("%s: %s\n", keyStyle.Render("figfile_name"), valueStyle.Render(figfileName))

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("ui"))
	fmt.Printf("  color_scheme: %s\n", valueStyle.Render(loaded.UI.ColorScheme.String()))
	fmt.Printf("  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", loaded.UI.Verbose)))

	return nil
}

func initConfigFile() error {
	path, err := config.ConfigFilePath()
	if err != nil {
		return err
	}

	if _, serr := os.Stat(path); serr == nil {
		return fmt.Errorf("configuration file already exists at %s", path)
	}

	if err := config.CreateDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Printf("%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}

func showConfigPath() error {
	path, err := config.ConfigFilePath()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
