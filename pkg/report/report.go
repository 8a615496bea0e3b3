// Package report assembles classified API changes into one immutable report
// with an aggregate severity and a semver bump recommendation.
package report

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"semvet/pkg/api"
	"semvet/pkg/classifier"
	"semvet/pkg/differ"
)

// Row is one classified change.
type Row struct {
	Change  differ.Change      `json:"change"`
	Verdict classifier.Verdict `json:"verdict"`
}

// ItemReport groups a changed item's rows with the item's overall severity,
// which is the maximum over its rows.
type ItemReport struct {
	Path     string              `json:"path"`
	Severity classifier.Severity `json:"severity"`
	Rows     []Row               `json:"changes"`
}

// Report is the complete outcome of one comparison run.
type Report struct {
	Items       []ItemReport        `json:"items"`
	Aggregate   classifier.Severity `json:"aggregate"`
	OldVersion  string              `json:"old_version"`
	Recommended string              `json:"recommended_version"`
}

// Build diffs two validated snapshots, classifies every change, folds the
// severities and derives the recommended version from the old snapshot's
// declared version. A classification failure aborts the whole build; partial
// reports are never returned.
func Build(old, new *api.Snapshot, policy Policy) (*Report, error) {
	if err := old.Validate(); err != nil {
		return nil, err
	}
	if err := new.Validate(); err != nil {
		return nil, err
	}

	current, err := semver.NewVersion(old.Version)
	if err != nil {
		return nil, fmt.Errorf("parsing declared version %q: %w", old.Version, err)
	}

	diffs := differ.Diff(old, new)

	rpt := &Report{
		Items:      make([]ItemReport, 0, len(diffs)),
		Aggregate:  classifier.Nothing,
		OldVersion: current.String(),
	}

	for _, d := range diffs {
		item := ItemReport{Path: d.Path, Rows: make([]Row, 0, len(d.Changes))}

		for _, c := range d.Changes {
			verdict, err := classifier.Classify(c)
			if err != nil {
				return nil, err
			}
			item.Rows = append(item.Rows, Row{Change: c, Verdict: verdict})
			item.Severity = classifier.Max(item.Severity, verdict.Severity)
		}

		rpt.Items = append(rpt.Items, item)
		rpt.Aggregate = classifier.Max(rpt.Aggregate, item.Severity)
	}

	rpt.Recommended = Recommend(current, rpt.Aggregate, policy).String()

	return rpt, nil
}

// Errors counts items whose overall severity is breaking.
func (r *Report) Errors() int {
	n := 0
	for _, item := range r.Items {
		if item.Severity == classifier.Breaking {
			n++
		}
	}
	return n
}

// Warnings counts items whose overall severity is non-breaking.
func (r *Report) Warnings() int {
	n := 0
	for _, item := range r.Items {
		if item.Severity == classifier.NonBreaking {
			n++
		}
	}
	return n
}

// Satisfies reports whether a declared new version is at least the
// recommended one under semver ordering. The host CLI turns this into its
// exit status.
func (r *Report) Satisfies(declared string) (bool, error) {
	v, err := semver.NewVersion(declared)
	if err != nil {
		return false, fmt.Errorf("parsing declared version %q: %w", declared, err)
	}

	recommended := semver.MustParse(r.Recommended)
	return !v.LessThan(recommended), nil
}
