// Package checks provides the Checker interface and the documentation checks
// that run against a corpus of Markdown documents.
package checks

import (
	"context"
	"fmt"

	"github.com/spboyer/doccheck/internal/corpus"
)

// Finding is a single diagnostic produced by a check.
type Finding struct {
	Severity Severity
	// Check is the name of the check that produced the finding.
	Check string
	// Message names the offending document and fragment.
	Message string
}

func (f Finding) String() string {
	return f.Message
}

// CheckResult holds the outcome of a single check.
type CheckResult struct {
	// Name is the check's display name.
	Name string
	// Passed is false only when the check's acceptance criteria were not met.
	// Warnings never affect it, and a check may fail without any finding.
	Passed bool
	// Findings lists errors and warnings in the order they were found.
	Findings []Finding
}

// Errors returns the fatal findings.
func (r *CheckResult) Errors() []Finding {
	return r.filter(SeverityError)
}

// Warnings returns the non-fatal findings.
func (r *CheckResult) Warnings() []Finding {
	return r.filter(SeverityWarning)
}

func (r *CheckResult) filter(sev Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}

func (r *CheckResult) errorf(format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Severity: SeverityError, Check: r.Name, Message: fmt.Sprintf(format, args...)})
}

func (r *CheckResult) warnf(format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Severity: SeverityWarning, Check: r.Name, Message: fmt.Sprintf(format, args...)})
}

// Checker runs a single documentation check. Implementations rediscover the
// corpus from src on every call and must not depend on other checks.
type Checker interface {
	Name() string
	Check(ctx context.Context, src corpus.Source) (*CheckResult, error)
}
