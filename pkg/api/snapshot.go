package api

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Snapshot is one version's extracted API surface: the declared semver of the
// library plus every public item, as produced by the extraction tool.
type Snapshot struct {
	Version string `yaml:"version" json:"version"`
	Items   []Item `yaml:"items" json:"items"`
}

// ValidationError reports a snapshot that violates an Item Model invariant.
// A snapshot with any validation error is rejected outright; no comparison
// runs against partially valid input.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed snapshot: %s", e.Reason)
	}
	return fmt.Sprintf("malformed snapshot: item `%s`: %s", e.Path, e.Reason)
}

// Parse decodes a YAML snapshot and validates its invariants.
func Parse(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	if err := snap.Validate(); err != nil {
		return nil, err
	}

	return &snap, nil
}

// ParseFile reads and parses a snapshot file.
func ParseFile(filename string) (*Snapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot '%s': %w", filename, err)
	}

	snap, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return snap, nil
}

// Validate checks the Item Model invariants: unique non-empty paths, a
// signature present for every function, and fully resolved (non-empty) type
// strings throughout.
func (s *Snapshot) Validate() error {
	seen := make(map[string]bool, len(s.Items))

	for _, item := range s.Items {
		if item.Path == "" {
			return &ValidationError{Reason: "item with empty path"}
		}
		if seen[item.Path] {
			return &ValidationError{Path: item.Path, Reason: "duplicate path"}
		}
		seen[item.Path] = true

		switch item.Kind {
		case KindFunction:
			if err := validateFunction(item.Path, item.Function); err != nil {
				return err
			}
		default:
			return &ValidationError{Path: item.Path, Reason: fmt.Sprintf("unknown item kind %q", item.Kind)}
		}
	}

	return nil
}

func validateFunction(path string, sig *FunctionSignature) error {
	if sig == nil {
		return &ValidationError{Path: path, Reason: "function item without signature"}
	}

	for i, p := range sig.Params {
		if p == "" {
			return &ValidationError{Path: path, Reason: fmt.Sprintf("parameter %d has no resolved type", i)}
		}
	}

	// The unit type is the literal "()"; an empty return means the
	// extraction tool never resolved it.
	if sig.Return == "" {
		return &ValidationError{Path: path, Reason: "return type not resolved (unit must be \"()\")"}
	}

	for _, g := range sig.Generics {
		if g.Name == "" {
			return &ValidationError{Path: path, Reason: "generic parameter without name"}
		}
	}

	return nil
}

// ItemsByPath returns the snapshot's items keyed by path. Validate must have
// passed, so keys are unique.
func (s *Snapshot) ItemsByPath() map[string]*Item {
	byPath := make(map[string]*Item, len(s.Items))
	for i := range s.Items {
		byPath[s.Items[i].Path] = &s.Items[i]
	}
	return byPath
}
