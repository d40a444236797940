package checks

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spboyer/doccheck/internal/corpus"
	"github.com/spboyer/doccheck/internal/projectconfig"
	"github.com/spboyer/doccheck/internal/toolrunner"
)

// lintRulePattern recognizes markdownlint rule codes such as MD013.
var lintRulePattern = regexp.MustCompile(`\bMD\d{3}\b`)

// MarkdownLintChecker runs the external Markdown linter over the corpus root.
// It is advisory: a missing linter and every reported issue become warnings,
// and the check always passes.
type MarkdownLintChecker struct {
	Runner  toolrunner.Runner
	Tool    string
	Timeout time.Duration
}

var _ Checker = (*MarkdownLintChecker)(nil)

func (*MarkdownLintChecker) Name() string { return "Markdown Syntax" }

func (c *MarkdownLintChecker) Check(ctx context.Context, src corpus.Source) (*CheckResult, error) {
	r := &CheckResult{Name: c.Name(), Passed: true}

	tool := c.Runner.Discover(c.Tool)
	if !tool.Found {
		r.warnf("%s not installed, skipping", c.Tool)
		return r, nil
	}

	res, err := c.Runner.Run(ctx, toolrunner.Invocation{
		Path:    tool.Path,
		Args:    []string{src.Root},
		Timeout: c.Timeout,
	})
	if err != nil {
		r.warnf("Markdown lint: %v", err)
		return r, nil
	}
	if res.Success() {
		return r, nil
	}

	// markdownlint-cli reports on stderr, older releases on stdout.
	for _, line := range lintIssueLines(res.Stdout + "\n" + res.Stderr) {
		r.warnf("Markdown lint: %s", line)
	}
	return r, nil
}

func lintIssueLines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if lintRulePattern.MatchString(line) {
			lines = append(lines, line)
		}
	}
	return lines
}

// MkDocsBuildChecker runs the site builder in strict mode. The build is
// mandatory: a missing builder or a failed build fails the check.
type MkDocsBuildChecker struct {
	Runner  toolrunner.Runner
	Tool    string
	Timeout time.Duration
}

var _ Checker = (*MkDocsBuildChecker)(nil)

func (*MkDocsBuildChecker) Name() string { return "MkDocs Build" }

func (c *MkDocsBuildChecker) Check(ctx context.Context, src corpus.Source) (*CheckResult, error) {
	r := &CheckResult{Name: c.Name()}

	tool := c.Runner.Discover(c.Tool)
	if !tool.Found {
		r.errorf("%s not installed", c.Tool)
		return r, nil
	}

	inv := toolrunner.Invocation{
		Path:    tool.Path,
		Args:    []string{"build", "--strict"},
		Timeout: c.Timeout,
	}

	cfgPath, err := projectconfig.FindMkDocsConfig(src.Root)
	switch {
	case err == nil:
		inv.Dir = c.inspectConfig(r, cfgPath, src.Root)
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("no mkdocs config above corpus root, building in working directory", "root", src.Root)
	default:
		r.warnf("MkDocs config: %v", err)
	}

	res, err := c.Runner.Run(ctx, inv)
	if err != nil {
		r.errorf("MkDocs build failed: %v", err)
		return r, nil
	}
	if !res.Success() {
		r.errorf("MkDocs build failed: %s", strings.TrimSpace(res.Stderr))
		return r, nil
	}

	r.Passed = true
	return r, nil
}

// inspectConfig warns when the mkdocs config would build a different docs
// directory than the one being checked, and returns the directory the
// builder must run in.
func (c *MkDocsBuildChecker) inspectConfig(r *CheckResult, path, root string) string {
	cfg, err := projectconfig.LoadMkDocsConfig(path)
	if err != nil {
		r.warnf("MkDocs config: %v", err)
		return filepath.Dir(path)
	}

	ok, err := cfg.ServesDocsDir(root)
	if err != nil {
		r.warnf("MkDocs config: %v", err)
	} else if !ok {
		r.warnf("MkDocs config: docs_dir %s does not match %s", cfg.EffectiveDocsDir(), root)
	}
	return cfg.Dir()
}
