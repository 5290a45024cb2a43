// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/figtools/figgo/pkg/fig"
	"github.com/figtools/figgo/pkg/figfile"

	"github.com/spf13/cobra"
)

// checkCmd validates a figfile without emitting directives.
var checkCmd = &cobra.Command{
	Use:   "check [figfile]",
	Short: "Validate a figfile without emitting directives",
	Long: `Parse a figfile manifest and run the full validation pipeline —
name grammar, value-set constraints, and activation values — while
discarding the directive output.

Exits non-zero when the manifest would fail 'figgo emit'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	path, err := resolveFigfilePath(cfg, args)
	if err != nil {
		printIssueCard(classifyFigfileError(err), err)
		return &ExitError{Code: 2, Err: err}
	}

	ff, err := figfile.Parse(path)
	if err != nil {
		printIssueCard(classifyFigfileError(err), err)
		return &ExitError{Code: 1, Err: err}
	}

	// Run the real pipeline against a discarded sink so activation
	// values are checked against their constraints too.
	if err := ff.Apply(fig.NewEmitter(io.Discard)); err != nil {
		printIssueCard(classifyApplyError(err), err)
		return &ExitError{Code: 1, Err: err}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s is valid (%d predicate(s))\n",
		SuccessStyle.Render("✓"), DirectiveStyle.Render(path), len(ff.Predicates))
	return nil
}
