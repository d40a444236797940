package checks

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/spboyer/doccheck/internal/corpus"
)

const (
	frontmatterDelimiter = "---"

	// maxQuotedLineWidth bounds how much of an offending line a finding quotes.
	maxQuotedLineWidth = 50
)

// splitFrontmatter splits content on the frontmatter delimiter. ok is false
// when content does not start with a delimiter. closed is false when no second
// delimiter follows. The split is textual: the delimiter need not sit on its
// own line.
func splitFrontmatter(content string) (block, body string, ok, closed bool) {
	if !strings.HasPrefix(content, frontmatterDelimiter) {
		return "", content, false, false
	}
	parts := strings.SplitN(content, frontmatterDelimiter, 3)
	if len(parts) < 3 {
		return "", content, true, false
	}
	return parts[1], parts[2], true, true
}

// malformedFrontmatterLines returns the lines of a frontmatter block that are
// neither key-value pairs, comments, blank, nor indented continuations.
func malformedFrontmatterLines(block string) []string {
	var bad []string
	for _, line := range strings.Split(strings.Trim(block, "\r\n"), "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.Contains(line, ":") || startsWithSpace(line) {
			continue
		}
		bad = append(bad, line)
	}
	return bad
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}

// FrontmatterChecker performs a shallow line-shape check of YAML frontmatter.
// It does not parse YAML.
type FrontmatterChecker struct{}

var _ Checker = (*FrontmatterChecker)(nil)

func (*FrontmatterChecker) Name() string { return "YAML Frontmatter" }

func (c *FrontmatterChecker) Check(_ context.Context, src corpus.Source) (*CheckResult, error) {
	docs, err := src.Documents()
	if err != nil {
		return nil, err
	}

	r := &CheckResult{Name: c.Name()}
	for _, doc := range docs {
		block, _, ok, closed := splitFrontmatter(doc.Content)
		if !ok {
			continue
		}
		if !closed {
			r.warnf("Frontmatter: %s: no closing delimiter", doc.Rel)
			continue
		}
		for _, line := range malformedFrontmatterLines(block) {
			r.errorf("Invalid YAML: %s: Invalid YAML line: %s", doc.Rel, runewidth.Truncate(line, maxQuotedLineWidth, ""))
		}
	}
	r.Passed = len(r.Errors()) == 0
	return r, nil
}
