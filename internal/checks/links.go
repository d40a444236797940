package checks

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spboyer/doccheck/internal/corpus"
)

var (
	// linkPattern matches [text](target). It also matches the bracketed part
	// of a non-empty-alt image, so a missing image with alt text fails Link
	// Validation even though Missing Images only warns about it. Only images
	// with empty alt text are left to Missing Images alone. Changing this
	// pattern changes which images can fail a run.
	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^\)]+)\)`)

	imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
)

// isExternalURL returns true for http:// and https:// URLs.
func isExternalURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

// isAnchor returns true for same-document fragments such as #usage.
// Targets like page.md#usage are not anchors and are checked as paths.
func isAnchor(target string) bool {
	return strings.HasPrefix(target, "#")
}

// skipLocalCheck reports whether a target is exempt from existence checks.
func skipLocalCheck(target string) bool {
	return isExternalURL(target) || isAnchor(target) || strings.HasPrefix(target, "file://")
}

// resolveTarget joins a link target onto the document's directory.
// Absolute targets are used as-is.
func resolveTarget(doc *corpus.Document, target string) string {
	p := filepath.FromSlash(target)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(doc.Dir(), p)
}

func pathExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// missingTargets returns the local targets in content that do not exist on
// disk, in document order.
func missingTargets(doc *corpus.Document, pattern *regexp.Regexp) []string {
	var missing []string
	for _, m := range pattern.FindAllStringSubmatch(doc.Content, -1) {
		target := m[2]
		if skipLocalCheck(target) {
			continue
		}
		if !pathExists(resolveTarget(doc, target)) {
			missing = append(missing, target)
		}
	}
	return missing
}

// LinkChecker verifies that relative link targets exist.
type LinkChecker struct{}

var _ Checker = (*LinkChecker)(nil)

func (*LinkChecker) Name() string { return "Link Validation" }

func (c *LinkChecker) Check(_ context.Context, src corpus.Source) (*CheckResult, error) {
	docs, err := src.Documents()
	if err != nil {
		return nil, err
	}

	r := &CheckResult{Name: c.Name()}
	for _, doc := range docs {
		for _, target := range missingTargets(doc, linkPattern) {
			r.errorf("Broken link: %s: %s", doc.Rel, target)
		}
	}
	r.Passed = len(r.Errors()) == 0
	return r, nil
}

// MissingImageChecker reports image references whose files do not exist.
// Missing images are common while drafting, so they only produce warnings.
type MissingImageChecker struct{}

var _ Checker = (*MissingImageChecker)(nil)

func (*MissingImageChecker) Name() string { return "Missing Images" }

func (c *MissingImageChecker) Check(_ context.Context, src corpus.Source) (*CheckResult, error) {
	docs, err := src.Documents()
	if err != nil {
		return nil, err
	}

	r := &CheckResult{Name: c.Name(), Passed: true}
	for _, doc := range docs {
		for _, target := range missingTargets(doc, imagePattern) {
			r.warnf("Missing image: %s: %s", doc.Rel, target)
		}
	}
	return r, nil
}

// CrossReferenceChecker verifies that links to other documents name a
// document that exists somewhere in the corpus. Matching is by stem only;
// the directory part of the reference is ignored.
type CrossReferenceChecker struct{}

var _ Checker = (*CrossReferenceChecker)(nil)

func (*CrossReferenceChecker) Name() string { return "Cross References" }

func (c *CrossReferenceChecker) Check(_ context.Context, src corpus.Source) (*CheckResult, error) {
	docs, err := src.Documents()
	if err != nil {
		return nil, err
	}

	stems := corpus.Stems(docs)
	pattern := crossReferencePattern(src.Extension)

	r := &CheckResult{Name: c.Name()}
	for _, doc := range docs {
		for _, m := range pattern.FindAllStringSubmatch(doc.Content, -1) {
			ref := m[2]
			if isExternalURL(ref) {
				continue
			}
			if !stems[corpus.Stem(ref)] {
				r.errorf("Broken reference: %s: references %s", doc.Rel, ref)
			}
		}
	}
	r.Passed = len(r.Errors()) == 0
	return r, nil
}

// crossReferencePattern matches [text](target<ext>).
func crossReferencePattern(ext string) *regexp.Regexp {
	return regexp.MustCompile(`\[([^\]]+)\]\(([^)]+` + regexp.QuoteMeta(ext) + `)\)`)
}
