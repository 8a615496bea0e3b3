// Package renderer turns a finished comparison report into rustc-style
// terminal diagnostics or JSON. It performs no classification of its own.
package renderer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"semvet/pkg/classifier"
	"semvet/pkg/report"
)

// Renderer writes diagnostic reports to an output stream.
type Renderer struct {
	out io.Writer

	errLabel  func(a ...interface{}) string
	warnLabel func(a ...interface{}) string
}

// New creates a renderer. Coloring only affects the error/warning labels;
// everything else is plain text either way.
func New(out io.Writer, useColor bool) *Renderer {
	r := &Renderer{out: out}
	if useColor {
		r.errLabel = color.New(color.FgRed, color.Bold).SprintFunc()
		r.warnLabel = color.New(color.FgYellow, color.Bold).SprintFunc()
	} else {
		r.errLabel = fmt.Sprint
		r.warnLabel = fmt.Sprint
	}
	return r
}

// Render writes one diagnostic block per classified change, then the summary
// line and the version bump line. Item order is the report's order, which the
// differ already made deterministic.
func (r *Renderer) Render(rpt *report.Report) error {
	for _, item := range rpt.Items {
		for _, row := range item.Rows {
			if row.Verdict.Severity == classifier.Nothing {
				continue
			}
			if err := r.renderBlock(item.Path, row); err != nil {
				return err
			}
		}
	}

	if err := r.renderSummary(rpt); err != nil {
		return err
	}

	_, err := fmt.Fprintf(r.out, "version bump: %s -> (%s) -> %s\n",
		rpt.OldVersion, rpt.Aggregate, rpt.Recommended)
	return err
}

func (r *Renderer) renderBlock(path string, row report.Row) error {
	var header string
	if row.Verdict.Severity == classifier.Breaking {
		header = fmt.Sprintf("%s: breaking changes in `%s`", r.errLabel("error"), path)
	} else {
		header = fmt.Sprintf("%s: non-breaking changes in `%s`", r.warnLabel("warning"), path)
	}

	loc := row.Change.Loc
	gutter := strings.Repeat(" ", len(strconv.Itoa(loc.Line)))
	carets := strings.Repeat("^", len([]rune(loc.Excerpt)))

	var tag string
	if row.Verdict.Severity == classifier.Breaking {
		tag = fmt.Sprintf("= warning: %s (breaking)", row.Verdict.Note)
	} else {
		tag = fmt.Sprintf("= note: %s (non-breaking)", row.Verdict.Note)
	}

	_, err := fmt.Fprintf(r.out, "%s\n%s--> %s\n%s |\n%d | %s\n%s | %s\n%s |\n%s %s\n\n",
		header,
		gutter, loc,
		gutter,
		loc.Line, loc.Excerpt,
		gutter, carets,
		gutter,
		gutter, tag)
	return err
}

func (r *Renderer) renderSummary(rpt *report.Report) error {
	errors := rpt.Errors()
	warnings := rpt.Warnings()

	switch {
	case errors > 0:
		line := fmt.Sprintf("%s: aborting due to %d previous errors", r.errLabel("error"), errors)
		if warnings > 0 {
			line += fmt.Sprintf("; %d warnings emitted", warnings)
		}
		_, err := fmt.Fprintln(r.out, line)
		return err
	case warnings > 0:
		_, err := fmt.Fprintf(r.out, "%s: %d warnings emitted\n", r.warnLabel("warning"), warnings)
		return err
	default:
		_, err := fmt.Fprintln(r.out, "no changes to the public api detected")
		return err
	}
}
