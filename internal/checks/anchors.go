package checks

import (
	"context"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/spboyer/doccheck/internal/corpus"
)

// headingParser assigns ids to headings the way the site renders them:
// generated from the heading text unless set explicitly with {#id}. Ids come
// from tocIDs so they follow the MkDocs toc slug rules, including the _1
// suffix on duplicates. Slugs are built from the raw heading source, so a
// heading containing a link or inline HTML may still differ from the site.
var headingParser = goldmark.New(
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
		parser.WithAttribute(),
	),
)

// headingIDs returns the ids of all headings in a Markdown body.
func headingIDs(body string) map[string]bool {
	source := []byte(body)
	ctx := parser.NewContext(parser.WithIDs(newTocIDs()))
	doc := headingParser.Parser().Parse(text.NewReader(source), parser.WithContext(ctx))

	ids := make(map[string]bool)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if v, ok := h.AttributeString("id"); ok {
			switch id := v.(type) {
			case []byte:
				ids[string(id)] = true
			case string:
				ids[id] = true
			}
		}
		return ast.WalkSkipChildren, nil
	})
	return ids
}

// AnchorChecker warns about same-document #fragment links that match no
// heading. It never fails.
type AnchorChecker struct{}

var _ Checker = (*AnchorChecker)(nil)

func (*AnchorChecker) Name() string { return "Anchor Links" }

func (c *AnchorChecker) Check(_ context.Context, src corpus.Source) (*CheckResult, error) {
	docs, err := src.Documents()
	if err != nil {
		return nil, err
	}

	r := &CheckResult{Name: c.Name(), Passed: true}
	for _, doc := range docs {
		var ids map[string]bool
		for _, m := range linkPattern.FindAllStringSubmatch(doc.Content, -1) {
			target := m[2]
			if !isAnchor(target) || len(target) == 1 {
				continue
			}
			if ids == nil {
				// Frontmatter would otherwise parse as a setext heading.
				_, body, _, closed := splitFrontmatter(doc.Content)
				if !closed {
					body = doc.Content
				}
				ids = headingIDs(body)
			}
			if !ids[target[1:]] {
				r.warnf("Missing anchor: %s: %s", doc.Rel, target)
			}
		}
	}
	return r, nil
}
