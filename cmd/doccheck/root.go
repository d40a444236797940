package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spboyer/doccheck/internal/checks"
	"github.com/spboyer/doccheck/internal/corpus"
	"github.com/spboyer/doccheck/internal/projectconfig"
	"github.com/spboyer/doccheck/internal/suite"
	"github.com/spboyer/doccheck/internal/toolrunner"
)

var version = "dev"

func newRootCommand(tools toolrunner.Runner) *cobra.Command {
	opts := projectconfig.New()
	var noColor bool

	cmd := &cobra.Command{
		Use:   "doccheck",
		Short: "doccheck - quality checks for a Markdown documentation tree",
		Long: `doccheck runs a fixed suite of quality checks over a directory of
Markdown documents and prints a pass/fail report.

Checks, in order:
  Link Validation       relative link targets exist
  Markdown Syntax       markdownlint findings (warnings only)
  Code Blocks           fenced blocks carry a language tag (warnings only)
  Unclosed Code Blocks  fence markers are balanced
  Missing Images        image files exist (warnings only)
  YAML Frontmatter      frontmatter lines look like key: value
  MkDocs Build          mkdocs build --strict succeeds
  Cross References      linked documents exist somewhere in the tree
  Anchor Links          in-page #anchors name a heading (warnings only)

Exits 0 when every check passes and 1 otherwise.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChecks(cmd, opts, tools, !noColor && isTerminal(cmd.OutOrStdout()))
		},
	}

	cmd.Flags().StringVar(&opts.DocsDir, "docs-dir", opts.DocsDir, "Root directory of the documentation tree")
	cmd.Flags().DurationVar(&opts.ToolTimeout, "timeout", opts.ToolTimeout, "Timeout for each external tool run")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	return cmd
}

func runChecks(cmd *cobra.Command, opts *projectconfig.Options, tools toolrunner.Runner, color bool) error {
	src := corpus.Source{Root: opts.DocsDir, Extension: opts.Extension}
	slog.Debug("running documentation checks", "root", src.Root, "timeout", opts.ToolTimeout)

	summary := suite.New(src, checks.DefaultCheckers(opts, tools),
		suite.WithOutput(cmd.OutOrStdout()),
		suite.WithColor(color),
	).Run(cmd.Context())

	if !summary.OK() {
		return &ChecksFailedError{Failed: summary.Failed}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func execute(ctx context.Context) error {
	rootCmd := newRootCommand(toolrunner.New())
	return rootCmd.ExecuteContext(ctx)
}
