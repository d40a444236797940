// Package suite runs an ordered set of documentation checks, aggregates their
// findings and renders the console report.
package suite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spboyer/doccheck/internal/checks"
	"github.com/spboyer/doccheck/internal/corpus"
)

// Summary is the aggregated outcome of one run.
type Summary struct {
	Passed int
	Failed int
	// Results holds one entry per check in run order. Checks that errored
	// appear as failed results without findings.
	Results []*checks.CheckResult
	// Errors and Warnings accumulate over the whole run in check order.
	Errors   []checks.Finding
	Warnings []checks.Finding
}

// OK reports whether every check passed.
func (s *Summary) OK() bool {
	return s.Failed == 0
}

func (s *Summary) add(res *checks.CheckResult) {
	s.Results = append(s.Results, res)
	for _, f := range res.Findings {
		switch f.Severity {
		case checks.SeverityError:
			s.Errors = append(s.Errors, f)
		default:
			s.Warnings = append(s.Warnings, f)
		}
	}
	if res.Passed {
		s.Passed++
	} else {
		s.Failed++
	}
}

// Runner executes checks against a corpus.
type Runner struct {
	src      corpus.Source
	checkers []checks.Checker
	out      io.Writer
	color    bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets where the report is written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithColor enables or disables ANSI colors in the report.
func WithColor(enabled bool) Option {
	return func(r *Runner) {
		r.color = enabled
	}
}

// New creates a Runner for the given checks, run in order.
func New(src corpus.Source, checkers []checks.Checker, opts ...Option) *Runner {
	r := &Runner{
		src:      src,
		checkers: checkers,
		out:      os.Stdout,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run executes every check in order and prints the report. A check that
// returns an error or panics is counted as failed; the run always continues.
func (r *Runner) Run(ctx context.Context) *Summary {
	p := newPrinter(r.out, r.color, r.checkers)
	p.header()

	s := &Summary{}
	for _, c := range r.checkers {
		name := c.Name()
		p.running(name)

		start := time.Now()
		res, err := r.runOne(ctx, c)
		if err != nil {
			slog.Debug("check errored", "check", name, "duration", time.Since(start), "error", err)
			p.errored(err)
			s.add(&checks.CheckResult{Name: name})
			s.Errors = append(s.Errors, checks.Finding{
				Severity: checks.SeverityError,
				Check:    name,
				Message:  fmt.Sprintf("%s: %v", name, err),
			})
			continue
		}

		slog.Debug("check finished", "check", name, "passed", res.Passed, "duration", time.Since(start),
			"errors", len(res.Errors()), "warnings", len(res.Warnings()))
		s.add(res)
		if res.Passed {
			p.pass()
		} else {
			p.fail()
		}
	}

	p.summary(s)
	return s
}

func (r *Runner) runOne(ctx context.Context, c checks.Checker) (res *checks.CheckResult, err error) {
	defer func() {
		if v := recover(); v != nil {
			res, err = nil, fmt.Errorf("check panicked: %v", v)
		}
	}()

	res, err = c.Check(ctx, r.src)
	if err == nil && res == nil {
		err = errors.New("check returned no result")
	}
	return res, err
}
