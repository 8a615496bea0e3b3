package differ

import (
	"semvet/pkg/api"
)

// ChangeKind tags the signature facet a Change describes.
type ChangeKind string

const (
	ChangeItemAdded        ChangeKind = "item_added"
	ChangeItemRemoved      ChangeKind = "item_removed"
	ChangeParameterCount   ChangeKind = "parameter_count_changed"
	ChangeParameterType    ChangeKind = "parameter_type_changed"
	ChangeReturnType       ChangeKind = "return_type_changed"
	ChangeGenericAdded     ChangeKind = "generic_parameter_added"
	ChangeGenericRemoved   ChangeKind = "generic_parameter_removed"
	ChangeConstnessChanged ChangeKind = "constness_changed"
)

// Change is one detected difference between the old and new declaration of an
// item. It carries everything its diagnostic needs, so rendering never has to
// consult the original items again. Only the fields relevant to Kind are set.
type Change struct {
	Kind ChangeKind   `json:"kind"`
	Path string       `json:"path"`
	Loc  api.Location `json:"location"`

	// parameter_count_changed
	OldCount int `json:"old_count,omitempty"`
	NewCount int `json:"new_count,omitempty"`

	// parameter_type_changed (Index), return_type_changed
	Index   int    `json:"index,omitempty"`
	OldType string `json:"old_type,omitempty"`
	NewType string `json:"new_type,omitempty"`

	// generic_parameter_added / generic_parameter_removed
	GenericName string `json:"generic_name,omitempty"`
	HasDefault  bool   `json:"has_default,omitempty"`

	// constness_changed
	OldConst bool `json:"old_const,omitempty"`
	NewConst bool `json:"new_const,omitempty"`
}

// ItemDiff is every change detected for one item path, in comparator order.
type ItemDiff struct {
	Path    string   `json:"path"`
	Changes []Change `json:"changes"`
}
