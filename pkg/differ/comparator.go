package differ

import (
	"semvet/pkg/api"
)

// CompareSignatures diffs a matched pair facet by facet and returns every
// structural difference, in a fixed order: generic parameter list first
// (generic changes affect how the parameter types read), then constness, then
// parameter count and per-parameter types, then the return type.
//
// Type equality is string equality of the resolved type forms; the extraction
// tool guarantees aliases are expanded, so equal strings mean equal types.
func CompareSignatures(pair MatchedPair) []Change {
	old := pair.Old.Function
	new := pair.New.Function
	path := pair.Old.Path
	loc := pair.New.Location

	var changes []Change

	changes = append(changes, compareGenerics(path, loc, old.Generics, new.Generics)...)

	if old.Const != new.Const {
		changes = append(changes, Change{
			Kind:     ChangeConstnessChanged,
			Path:     path,
			Loc:      loc,
			OldConst: old.Const,
			NewConst: new.Const,
		})
	}

	if len(old.Params) != len(new.Params) {
		// A count mismatch is reported once; per-parameter comparison
		// past the point of misalignment would only produce noise.
		changes = append(changes, Change{
			Kind:     ChangeParameterCount,
			Path:     path,
			Loc:      loc,
			OldCount: len(old.Params),
			NewCount: len(new.Params),
		})
	} else {
		for i := range old.Params {
			if old.Params[i] != new.Params[i] {
				changes = append(changes, Change{
					Kind:    ChangeParameterType,
					Path:    path,
					Loc:     loc,
					Index:   i,
					OldType: old.Params[i],
					NewType: new.Params[i],
				})
			}
		}
	}

	if old.Return != new.Return {
		changes = append(changes, Change{
			Kind:    ChangeReturnType,
			Path:    path,
			Loc:     loc,
			OldType: old.Return,
			NewType: new.Return,
		})
	}

	return changes
}

// compareGenerics walks both generic parameter lists in order. Shared prefix
// positions are unchanged parameters; list-length differences become added or
// removed records for the tail.
func compareGenerics(path string, loc api.Location, old, new []api.GenericParam) []Change {
	var changes []Change

	shared := len(old)
	if len(new) < shared {
		shared = len(new)
	}

	for _, g := range new[shared:] {
		changes = append(changes, Change{
			Kind:        ChangeGenericAdded,
			Path:        path,
			Loc:         loc,
			GenericName: g.Name,
			HasDefault:  g.HasDefault(),
		})
	}

	for _, g := range old[shared:] {
		changes = append(changes, Change{
			Kind:        ChangeGenericRemoved,
			Path:        path,
			Loc:         loc,
			GenericName: g.Name,
		})
	}

	return changes
}
