package checks

import (
	"context"
	"strings"

	"github.com/spboyer/doccheck/internal/corpus"
)

const codeFence = "```"

// untaggedFenceLines returns the 1-based line numbers of opening fences that
// carry no language tag. Fences are lines starting with three backticks and
// are paired top to bottom. A line that opens and closes a fence on its own
// is skipped.
func untaggedFenceLines(content string) []int {
	var lines []int
	open := false
	for i, line := range strings.Split(content, "\n") {
		if !strings.HasPrefix(line, codeFence) {
			continue
		}
		if open {
			open = false
			continue
		}
		rest := line[len(codeFence):]
		if strings.Contains(rest, codeFence) {
			// ```js``` opens and closes on one line.
			continue
		}
		open = true
		if strings.TrimSpace(rest) == "" {
			lines = append(lines, i+1)
		}
	}
	return lines
}

// CodeBlockLanguageChecker warns about fenced code blocks without a
// language tag. It never fails.
type CodeBlockLanguageChecker struct{}

var _ Checker = (*CodeBlockLanguageChecker)(nil)

func (*CodeBlockLanguageChecker) Name() string { return "Code Blocks" }

func (c *CodeBlockLanguageChecker) Check(_ context.Context, src corpus.Source) (*CheckResult, error) {
	docs, err := src.Documents()
	if err != nil {
		return nil, err
	}

	r := &CheckResult{Name: c.Name(), Passed: true}
	for _, doc := range docs {
		for _, line := range untaggedFenceLines(doc.Content) {
			r.warnf("Code block: %s:%d: fenced block without language", doc.Rel, line)
		}
	}
	return r, nil
}

// UnclosedCodeBlockChecker fails documents with an odd number of fence
// markers. Every occurrence of three backticks counts, inline ones included.
type UnclosedCodeBlockChecker struct{}

var _ Checker = (*UnclosedCodeBlockChecker)(nil)

func (*UnclosedCodeBlockChecker) Name() string { return "Unclosed Code Blocks" }

func (c *UnclosedCodeBlockChecker) Check(_ context.Context, src corpus.Source) (*CheckResult, error) {
	docs, err := src.Documents()
	if err != nil {
		return nil, err
	}

	r := &CheckResult{Name: c.Name()}
	for _, doc := range docs {
		if n := strings.Count(doc.Content, codeFence); n%2 != 0 {
			r.errorf("Unclosed code block: %s: %d code fences (odd number)", doc.Rel, n)
		}
	}
	r.Passed = len(r.Errors()) == 0
	return r, nil
}
