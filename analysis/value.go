package analysis

import (
	"fmt"
	"strconv"

	"github.com/ember-lang/ember/syntax"
)

// Value is an evaluated Ember value.
type Value interface {
	// String renders the value the way the REPL prints it.
	String() string
}

// IntValue is an integer value.
type IntValue int64

// BoolValue is a boolean value.
type BoolValue bool

// StrValue is a string value.
type StrValue string

// Closure is a function value capturing its defining environment.
type Closure struct {
	Params []syntax.Param
	Body   syntax.Expr
	Env    *Env
	// Sig is the function's checked type, kept for display.
	Sig Type
}

func (v IntValue) String() string  { return strconv.FormatInt(int64(v), 10) }
func (v BoolValue) String() string { return strconv.FormatBool(bool(v)) }
func (v StrValue) String() string  { return fmt.Sprintf("%q", string(v)) }
func (v *Closure) String() string  { return "<" + v.Sig.String() + ">" }
