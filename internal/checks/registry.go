package checks

import (
	"github.com/spboyer/doccheck/internal/projectconfig"
	"github.com/spboyer/doccheck/internal/toolrunner"
)

// DefaultCheckers returns all documentation checks in report order.
func DefaultCheckers(opts *projectconfig.Options, runner toolrunner.Runner) []Checker {
	return []Checker{
		&LinkChecker{},
		&MarkdownLintChecker{Runner: runner, Tool: opts.Linter, Timeout: opts.ToolTimeout},
		&CodeBlockLanguageChecker{},
		&UnclosedCodeBlockChecker{},
		&MissingImageChecker{},
		&FrontmatterChecker{},
		&MkDocsBuildChecker{Runner: runner, Tool: opts.Builder, Timeout: opts.ToolTimeout},
		&CrossReferenceChecker{},
		&AnchorChecker{},
	}
}
