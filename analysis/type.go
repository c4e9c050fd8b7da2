// Package analysis implements the analysis stage: name resolution against
// the session's binding table, monomorphic type inference, and optional
// evaluation of the checked tree.
//
// Problems surface as diagnostics, never as Go errors or panics; a fragment
// with a fatal diagnostic produces no artifact and commits no binding.
package analysis

import "strings"

// Kind discriminates types.
type Kind int

const (
	// KindInt is the 64-bit integer type.
	KindInt Kind = iota
	// KindBool is the boolean type.
	KindBool
	// KindStr is the string type.
	KindStr
	// KindFunc is a function type with parameter and return types.
	KindFunc
)

// Type is a monomorphic Ember type.
type Type struct {
	Kind   Kind
	Params []Type
	Ret    *Type
}

// Primitive types.
var (
	TypeInt  = Type{Kind: KindInt}
	TypeBool = Type{Kind: KindBool}
	TypeStr  = Type{Kind: KindStr}
)

// FuncType builds a function type.
func FuncType(params []Type, ret Type) Type {
	return Type{Kind: KindFunc, Params: params, Ret: &ret}
}

// ParseTypeName resolves a parameter annotation to a type.
// Only primitive annotations are accepted.
func ParseTypeName(name string) (Type, bool) {
	switch name {
	case "Int":
		return TypeInt, true
	case "Bool":
		return TypeBool, true
	case "Str":
		return TypeStr, true
	default:
		return Type{}, false
	}
}

// String renders the type the way `:t` reports it.
func (t Type) String() string {
	switch t.Kind {
	case KindInt:
		return "Int"
	case KindBool:
		return "Bool"
	case KindStr:
		return "Str"
	case KindFunc:
		params := make([]string, len(t.Params))
		for i, p := range t.Params {
			params[i] = p.String()
		}
		return "fn(" + strings.Join(params, ", ") + ") -> " + t.Ret.String()
	default:
		return "?"
	}
}

// Equal reports structural type equality.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind {
		return false
	}
	if t.Kind != KindFunc {
		return true
	}
	if len(t.Params) != len(o.Params) {
		return false
	}
	for i := range t.Params {
		if !t.Params[i].Equal(o.Params[i]) {
			return false
		}
	}
	return t.Ret.Equal(*o.Ret)
}
