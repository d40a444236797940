package suite

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/spboyer/doccheck/internal/checks"
)

const ruleWidth = 60

// printer renders the console report. Green marks success, red failures and
// errors, yellow warnings.
type printer struct {
	w         io.Writer
	nameWidth int
	okColor   *color.Color
	failColor *color.Color
	warnColor *color.Color
}

func newPrinter(w io.Writer, enabled bool, checkers []checks.Checker) *printer {
	p := &printer{
		w:         w,
		okColor:   color.New(color.FgGreen),
		failColor: color.New(color.FgRed),
		warnColor: color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.okColor, p.failColor, p.warnColor} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	for _, c := range checkers {
		if n := runewidth.StringWidth(c.Name()); n > p.nameWidth {
			p.nameWidth = n
		}
	}
	return p
}

func (p *printer) header() {
	fmt.Fprint(p.w, "🧪 Running Documentation Tests\n\n") //nolint:errcheck
}

func (p *printer) running(name string) {
	fmt.Fprintf(p.w, "Testing: %s ", runewidth.FillRight(name+"...", p.nameWidth+3)) //nolint:errcheck
}

func (p *printer) pass() {
	p.okColor.Fprintln(p.w, "✓ PASS") //nolint:errcheck
}

func (p *printer) fail() {
	p.failColor.Fprintln(p.w, "✗ FAIL") //nolint:errcheck
}

func (p *printer) errored(err error) {
	p.failColor.Fprintf(p.w, "✗ ERROR: %v\n", err) //nolint:errcheck
}

func (p *printer) summary(s *Summary) {
	fmt.Fprintf(p.w, "\n%s\n", strings.Repeat("=", ruleWidth)) //nolint:errcheck
	fmt.Fprintf(p.w, "Results: %s, %s\n", //nolint:errcheck
		p.okColor.Sprintf("%d passed", s.Passed),
		p.failColor.Sprintf("%d failed", s.Failed))

	if len(s.Warnings) > 0 {
		fmt.Fprintf(p.w, "\n%s\n", p.warnColor.Sprint("Warnings:")) //nolint:errcheck
		for _, f := range s.Warnings {
			fmt.Fprintf(p.w, "  ⚠ %s\n", f) //nolint:errcheck
		}
	}

	if len(s.Errors) > 0 {
		fmt.Fprintf(p.w, "\n%s\n", p.failColor.Sprint("Errors:")) //nolint:errcheck
		for _, f := range s.Errors {
			fmt.Fprintf(p.w, "  ✗ %s\n", f) //nolint:errcheck
		}
	}
}
