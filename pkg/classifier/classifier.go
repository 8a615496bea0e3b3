// Package classifier maps detected API changes to compatibility severities
// using a fixed rule table.
package classifier

import (
	"fmt"

	"semvet/pkg/differ"
)

// Severity is the compatibility impact of one change. The zero value means
// no impact; higher values dominate when severities are folded together.
type Severity int

const (
	Nothing Severity = iota
	NonBreaking
	Breaking
)

func (s Severity) String() string {
	switch s {
	case Nothing:
		return "none"
	case NonBreaking:
		return "non-breaking"
	case Breaking:
		return "breaking"
	default:
		return "unknown"
	}
}

// MarshalJSON renders severities by name in JSON reports.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Max returns the higher of two severities.
func Max(a, b Severity) Severity {
	if a > b {
		return a
	}
	return b
}

// Verdict is the classification of one change: its severity plus the fixed
// explanatory note rendered with the diagnostic.
type Verdict struct {
	Severity Severity `json:"severity"`
	Note     string   `json:"note"`
}

// ErrUnclassifiedChange reports a change kind with no rule. The rule table is
// total over every kind the differ can produce, so hitting this means the
// build is internally inconsistent, not that the input was bad.
type ErrUnclassifiedChange struct {
	Kind differ.ChangeKind
}

func (e *ErrUnclassifiedChange) Error() string {
	return fmt.Sprintf("internal: no classification rule for change kind %q", e.Kind)
}

// Classify applies the rule table to one change. It is a pure function: the
// same change always yields the same verdict.
func Classify(c differ.Change) (Verdict, error) {
	switch c.Kind {
	case differ.ChangeItemRemoved:
		// Callers referencing the item stop compiling.
		return Verdict{Breaking, "path removed"}, nil

	case differ.ChangeItemAdded:
		// New surface cannot break existing callers.
		return Verdict{NonBreaking, "path added"}, nil

	case differ.ChangeParameterCount:
		return Verdict{Breaking, "incorrect number of function parameters"}, nil

	case differ.ChangeParameterType:
		return Verdict{Breaking, "function parameter type changed"}, nil

	case differ.ChangeReturnType:
		return Verdict{Breaking, "function return type changed"}, nil

	case differ.ChangeGenericAdded:
		// With a default, existing call sites omit the parameter and
		// inherit it; without one they become under-specified.
		if c.HasDefault {
			return Verdict{NonBreaking, "defaulted type parameter added"}, nil
		}
		return Verdict{Breaking, "type parameter added"}, nil

	case differ.ChangeGenericRemoved:
		return Verdict{Breaking, "type parameter removed"}, nil

	case differ.ChangeConstnessChanged:
		// Gaining constness only adds capability; losing it breaks
		// callers that used the fn in a compile-time context.
		if !c.OldConst && c.NewConst {
			return Verdict{NonBreaking, "fn made const"}, nil
		}
		return Verdict{Breaking, "fn no longer const"}, nil

	default:
		return Verdict{}, &ErrUnclassifiedChange{Kind: c.Kind}
	}
}
