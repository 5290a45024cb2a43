// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/figtools/figgo/internal/config"
	"github.com/figtools/figgo/internal/issue"
	"github.com/figtools/figgo/pkg/fig"
	"github.com/figtools/figgo/pkg/figfile"

	"github.com/spf13/cobra"
)

var (
	emitOutput string

	// emitCmd parses a figfile and emits its directives.
	emitCmd = &cobra.Command{
		Use:   "emit [figfile]",
		Short: "Emit build-script directives for a figfile",
		Long: `Parse a figfile manifest and emit the registration and activation
directives for every predicate it declares.

By default the manifest is looked up in the current directory under the
configured filename (figfile.cue unless overridden). Directives are
written to stdout so the output can be consumed by a build script.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEmit,
	}
)

func init() {
	emitCmd.Flags().StringVarP(&emitOutput, "output", "o", "", "write directives to a file instead of stdout")
}

func runEmit(cmd *cobra.Command, args []string) error {
	path, err := resolveFigfilePath(cfg, args)
	if err != nil {
		printIssueCard(issue.FigfileNotFoundId, err)
		return &ExitError{Code: 2, Err: err}
	}
	logger.Debug("parsing figfile", "path", path)

	ff, err := figfile.Parse(path)
	if err != nil {
		printIssueCard(classifyFigfileError(err), err)
		return &ExitError{Code: 1, Err: err}
	}
	logger.Debug("figfile parsed", "predicates", len(ff.Predicates))

	out := cmd.OutOrStdout()
	if emitOutput != "" {
		f, err := os.Create(emitOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := ff.Apply(fig.NewEmitter(out)); err != nil {
		printIssueCard(classifyApplyError(err), err)
		return &ExitError{Code: 1, Err: err}
	}

	return nil
}

// resolveFigfilePath determines which manifest to operate on. An explicit
// argument wins; otherwise the configured filename is tried, then the
// built-in defaults (figfile.cue, figfile.toml) in the current directory.
func resolveFigfilePath(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 {
		if _, err := os.Stat(args[0]); err != nil {
			return "", issue.NewErrorContext().
				WithOperation("locate figfile").
				WithResource(args[0]).
				WithSuggestion("check the path for typos").
				WithSuggestion("run 'figgo init' to create a new figfile").
				Wrap(err).
				Build()
		}
		return args[0], nil
	}

	candidates := []string{figfile.DefaultFileName, "figfile.toml"}
	if cfg != nil && cfg.FigfileName != "" {
		candidates = []string{cfg.FigfileName.String()}
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}
	return "", issue.NewErrorContext().
		WithOperation("locate figfile").
		WithResource(candidates[0]).
		WithSuggestion("run 'figgo init' to create a new figfile").
		WithSuggestion("pass the manifest path explicitly: figgo emit <path>").
		Wrap(fs.ErrNotExist).
		Build()
}

// classifyFigfileError maps a parse failure to the issue card shown to the user.
func classifyFigfileError(err error) issue.Id {
	if errors.Is(err, fs.ErrNotExist) {
		return issue.FigfileNotFoundId
	}
	return issue.FigfileParseErrorId
}

// classifyApplyError maps an emission failure to the issue card shown to the user.
func classifyApplyError(err error) issue.Id {
	switch {
	case errors.Is(err, fig.ErrValueNotAllowed):
		return issue.ValueNotAllowedId
	case errors.Is(err, fig.ErrEmit):
		return issue.EmissionFailedId
	default:
		return issue.FigfileParseErrorId
	}
}
