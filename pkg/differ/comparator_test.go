package differ

import (
	"testing"

	"semvet/pkg/api"
)

func pairOf(old, new api.FunctionSignature) MatchedPair {
	oldItem := fnItem("lib.f", old)
	newItem := fnItem("lib.f", new)
	return MatchedPair{Old: &oldItem, New: &newItem}
}

func TestCompareSignatures_Identical(t *testing.T) {
	sig := api.FunctionSignature{
		Const:    true,
		Params:   []string{"u8", "&str"},
		Return:   "bool",
		Generics: []api.GenericParam{{Name: "T"}},
	}

	changes := CompareSignatures(pairOf(sig, sig))
	if len(changes) != 0 {
		t.Errorf("Expected no changes, got %v", changes)
	}
}

func TestCompareSignatures_ParameterCount(t *testing.T) {
	old := api.FunctionSignature{Params: nil, Return: "()"}
	new := api.FunctionSignature{Params: []string{"u8"}, Return: "()"}

	changes := CompareSignatures(pairOf(old, new))

	if len(changes) != 1 {
		t.Fatalf("Expected exactly 1 change, got %d: %v", len(changes), changes)
	}
	c := changes[0]
	if c.Kind != ChangeParameterCount {
		t.Errorf("Expected parameter_count_changed, got %s", c.Kind)
	}
	if c.OldCount != 0 || c.NewCount != 1 {
		t.Errorf("Expected counts 0 -> 1, got %d -> %d", c.OldCount, c.NewCount)
	}
}

func TestCompareSignatures_CountMismatchSkipsPerParameter(t *testing.T) {
	// One parameter becomes two, and the shared parameter also changes
	// type. Only the count record may be emitted; per-parameter records
	// past the point of misalignment would be noise.
	old := api.FunctionSignature{Params: []string{"u8"}, Return: "()"}
	new := api.FunctionSignature{Params: []string{"i64", "bool"}, Return: "()"}

	changes := CompareSignatures(pairOf(old, new))

	if len(changes) != 1 {
		t.Fatalf("Expected exactly 1 change, got %d: %v", len(changes), changes)
	}
	if changes[0].Kind != ChangeParameterCount {
		t.Errorf("Expected parameter_count_changed, got %s", changes[0].Kind)
	}
}

func TestCompareSignatures_ParameterType(t *testing.T) {
	old := api.FunctionSignature{Params: []string{"u8", "bool"}, Return: "()"}
	new := api.FunctionSignature{Params: []string{"u8", "&str"}, Return: "()"}

	changes := CompareSignatures(pairOf(old, new))

	if len(changes) != 1 {
		t.Fatalf("Expected 1 change, got %d", len(changes))
	}
	c := changes[0]
	if c.Kind != ChangeParameterType {
		t.Fatalf("Expected parameter_type_changed, got %s", c.Kind)
	}
	if c.Index != 1 || c.OldType != "bool" || c.NewType != "&str" {
		t.Errorf("Expected index 1 bool -> &str, got index %d %s -> %s", c.Index, c.OldType, c.NewType)
	}
}

func TestCompareSignatures_ReturnType(t *testing.T) {
	old := api.FunctionSignature{Return: "()"}
	new := api.FunctionSignature{Return: "u16"}

	changes := CompareSignatures(pairOf(old, new))

	if len(changes) != 1 {
		t.Fatalf("Expected 1 change, got %d", len(changes))
	}
	c := changes[0]
	if c.Kind != ChangeReturnType {
		t.Fatalf("Expected return_type_changed, got %s", c.Kind)
	}
	if c.OldType != "()" || c.NewType != "u16" {
		t.Errorf("Expected () -> u16, got %s -> %s", c.OldType, c.NewType)
	}
}

func TestCompareSignatures_GenericAdded(t *testing.T) {
	tests := []struct {
		name       string
		generic    api.GenericParam
		hasDefault bool
	}{
		{"with default", api.GenericParam{Name: "A", Default: "u8"}, true},
		{"without default", api.GenericParam{Name: "A"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := api.FunctionSignature{Return: "()"}
			new := api.FunctionSignature{Return: "()", Generics: []api.GenericParam{tt.generic}}

			changes := CompareSignatures(pairOf(old, new))

			if len(changes) != 1 {
				t.Fatalf("Expected 1 change, got %d", len(changes))
			}
			c := changes[0]
			if c.Kind != ChangeGenericAdded {
				t.Fatalf("Expected generic_parameter_added, got %s", c.Kind)
			}
			if c.GenericName != "A" {
				t.Errorf("Expected generic A, got %s", c.GenericName)
			}
			if c.HasDefault != tt.hasDefault {
				t.Errorf("Expected HasDefault=%v, got %v", tt.hasDefault, c.HasDefault)
			}
		})
	}
}

func TestCompareSignatures_GenericRemoved(t *testing.T) {
	old := api.FunctionSignature{Return: "()", Generics: []api.GenericParam{{Name: "T"}}}
	new := api.FunctionSignature{Return: "()"}

	changes := CompareSignatures(pairOf(old, new))

	if len(changes) != 1 || changes[0].Kind != ChangeGenericRemoved {
		t.Fatalf("Expected one generic_parameter_removed, got %v", changes)
	}
	if changes[0].GenericName != "T" {
		t.Errorf("Expected generic T, got %s", changes[0].GenericName)
	}
}

func TestCompareSignatures_Constness(t *testing.T) {
	old := api.FunctionSignature{Const: false, Return: "()"}
	new := api.FunctionSignature{Const: true, Return: "()"}

	changes := CompareSignatures(pairOf(old, new))

	if len(changes) != 1 || changes[0].Kind != ChangeConstnessChanged {
		t.Fatalf("Expected one constness_changed, got %v", changes)
	}
	if changes[0].OldConst || !changes[0].NewConst {
		t.Errorf("Expected false -> true, got %v -> %v", changes[0].OldConst, changes[0].NewConst)
	}
}

func TestCompareSignatures_FacetOrder(t *testing.T) {
	// All facets change at once; records must come out in the fixed
	// evaluation order: generics, constness, parameters, return type.
	old := api.FunctionSignature{
		Const:  true,
		Params: []string{"u8"},
		Return: "()",
	}
	new := api.FunctionSignature{
		Const:    false,
		Params:   []string{"u8", "bool"},
		Return:   "u16",
		Generics: []api.GenericParam{{Name: "A", Default: "u8"}},
	}

	changes := CompareSignatures(pairOf(old, new))

	expected := []ChangeKind{
		ChangeGenericAdded,
		ChangeConstnessChanged,
		ChangeParameterCount,
		ChangeReturnType,
	}

	if len(changes) != len(expected) {
		t.Fatalf("Expected %d changes, got %d: %v", len(expected), len(changes), changes)
	}
	for i, kind := range expected {
		if changes[i].Kind != kind {
			t.Errorf("Expected changes[%d] = %s, got %s", i, kind, changes[i].Kind)
		}
	}
}
