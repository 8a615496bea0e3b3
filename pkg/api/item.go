package api

import "fmt"

// ItemKind tags the kind of public declaration an Item describes.
type ItemKind string

const (
	KindFunction ItemKind = "function"
)

// Item is one public declaration in a library's API surface. Path is the
// stable identity used to match declarations across versions.
type Item struct {
	Path     string             `yaml:"path" json:"path"`
	Kind     ItemKind           `yaml:"kind" json:"kind"`
	Function *FunctionSignature `yaml:"function,omitempty" json:"function,omitempty"`
	Location Location           `yaml:"location" json:"location"`
}

// FunctionSignature holds the comparable facets of a function declaration.
// All type strings are fully resolved by the extraction tool that produced
// the snapshot, so equality is plain string equality.
type FunctionSignature struct {
	Const    bool           `yaml:"const" json:"const"`
	Params   []string       `yaml:"params" json:"params"`
	Return   string         `yaml:"return" json:"return"`
	Generics []GenericParam `yaml:"generics,omitempty" json:"generics,omitempty"`
}

// GenericParam is one generic type parameter, optionally defaulted.
type GenericParam struct {
	Name    string `yaml:"name" json:"name"`
	Default string `yaml:"default,omitempty" json:"default,omitempty"`
}

// HasDefault reports whether the parameter carries a default type.
func (g GenericParam) HasDefault() bool {
	return g.Default != ""
}

// Location points at the declaration in the original source. It travels with
// items purely for diagnostics and never participates in comparison.
type Location struct {
	File    string `yaml:"file" json:"file"`
	Line    int    `yaml:"line" json:"line"`
	Column  int    `yaml:"column" json:"column"`
	Excerpt string `yaml:"excerpt" json:"excerpt"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}
