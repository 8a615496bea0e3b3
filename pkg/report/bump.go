package report

import (
	"github.com/Masterminds/semver/v3"

	"semvet/pkg/classifier"
)

// Policy selects the bump semantics for pre-1.0 versions. Under the 0.x
// convention the minor component is the breaking slot, so a breaking change
// to 0.3.1 recommends 0.4.0 rather than 1.0.0.
type Policy struct {
	ZeroVer bool
}

// DefaultPolicy treats 0.x versions by the 0.x convention.
func DefaultPolicy() Policy {
	return Policy{ZeroVer: true}
}

// Recommend derives the minimal version that honestly reflects the aggregate
// severity. It never mutates the current version. A bump drops pre-release
// and build metadata; no change returns the current version unchanged.
func Recommend(current *semver.Version, aggregate classifier.Severity, policy Policy) semver.Version {
	zerover := policy.ZeroVer && current.Major() == 0

	switch aggregate {
	case classifier.Breaking:
		if zerover {
			return current.IncMinor()
		}
		return current.IncMajor()
	case classifier.NonBreaking:
		if zerover {
			return current.IncPatch()
		}
		return current.IncMinor()
	default:
		return *current
	}
}
