package analysis

import (
	"github.com/ember-lang/ember/syntax"
	"github.com/ember-lang/ember/types"
)

// Result is the analysis artifact for one fragment.
type Result struct {
	// Name is the bound name when the fragment is a let statement.
	Name string
	// Type is the inferred type of the fragment's expression.
	Type Type
	// Value is the evaluated value; nil when evaluation was not requested.
	Value Value
}

// Check resolves names, infers the fragment's type, and, when evaluate is
// set, evaluates it. Prior session bindings seed the environment. On any
// fatal diagnostic the result is nil and no binding should commit.
func Check(stmt syntax.Stmt, globals map[string]Binding, sourceID string, evaluate bool) (*Result, []types.Diagnostic) {
	c := &checker{sourceID: sourceID}

	env := NewGlobalEnv(globals)
	res := &Result{}

	var expr syntax.Expr
	switch s := stmt.(type) {
	case *syntax.LetStmt:
		res.Name = s.Name
		expr = s.Value
	case *syntax.ExprStmt:
		expr = s.X
	default:
		return nil, []types.Diagnostic{types.Errorf(types.StageAnalysis, "unsupported statement")}
	}

	typ, ok := c.infer(expr, env)
	if !ok {
		return nil, c.diags
	}
	res.Type = typ

	if evaluate {
		ev := &evaluator{sourceID: sourceID}
		val, ok := ev.eval(expr, env)
		if !ok {
			return nil, []types.Diagnostic{ev.diag}
		}
		res.Value = val
	}

	return res, nil
}

type checker struct {
	sourceID string
	diags    []types.Diagnostic
}

func (c *checker) errorAt(span types.Span, format string, args ...any) {
	d := types.Errorf(types.StageAnalysis, format, args...)
	d.SourceID = c.sourceID
	d.Span = span
	c.diags = append(c.diags, d)
}

func (c *checker) infer(e syntax.Expr, env *Env) (Type, bool) {
	switch e := e.(type) {
	case *syntax.IntLit:
		return TypeInt, true
	case *syntax.BoolLit:
		return TypeBool, true
	case *syntax.StrLit:
		return TypeStr, true

	case *syntax.Ident:
		b, ok := env.Lookup(e.Name)
		if !ok {
			c.errorAt(e.Pos, "undefined name %q", e.Name)
			return Type{}, false
		}
		return b.Type, true

	case *syntax.Unary:
		// Desugaring normally lowers these, but the checker stays total.
		x, ok := c.infer(e.X, env)
		if !ok {
			return Type{}, false
		}
		want := TypeInt
		if e.Op == "!" {
			want = TypeBool
		}
		if !x.Equal(want) {
			c.errorAt(e.Pos, "operator %q expects %s, found %s", e.Op, want, x)
			return Type{}, false
		}
		return want, true

	case *syntax.Binary:
		return c.inferBinary(e, env)

	case *syntax.Cond:
		cond, ok := c.infer(e.Cond, env)
		if !ok {
			return Type{}, false
		}
		if !cond.Equal(TypeBool) {
			c.errorAt(e.Cond.Span(), "condition must be Bool, found %s", cond)
			return Type{}, false
		}
		then, ok := c.infer(e.Then, env)
		if !ok {
			return Type{}, false
		}
		els, ok := c.infer(e.Else, env)
		if !ok {
			return Type{}, false
		}
		if !then.Equal(els) {
			c.errorAt(e.Pos, "branches have different types: %s and %s", then, els)
			return Type{}, false
		}
		return then, true

	case *syntax.FuncLit:
		child := NewEnv(env)
		params := make([]Type, len(e.Params))
		for i, p := range e.Params {
			pt, ok := ParseTypeName(p.Type)
			if !ok {
				c.errorAt(p.Pos, "unknown type %q", p.Type)
				return Type{}, false
			}
			params[i] = pt
			child.Define(p.Name, Binding{Type: pt})
		}
		ret, ok := c.infer(e.Body, child)
		if !ok {
			return Type{}, false
		}
		return FuncType(params, ret), true

	case *syntax.Call:
		fn, ok := c.infer(e.Fn, env)
		if !ok {
			return Type{}, false
		}
		if fn.Kind != KindFunc {
			c.errorAt(e.Pos, "cannot call a value of type %s", fn)
			return Type{}, false
		}
		if len(e.Args) != len(fn.Params) {
			c.errorAt(e.Pos, "expected %d argument(s), found %d", len(fn.Params), len(e.Args))
			return Type{}, false
		}
		for i, arg := range e.Args {
			at, ok := c.infer(arg, env)
			if !ok {
				return Type{}, false
			}
			if !at.Equal(fn.Params[i]) {
				c.errorAt(arg.Span(), "argument %d must be %s, found %s", i+1, fn.Params[i], at)
				return Type{}, false
			}
		}
		return *fn.Ret, true

	default:
		c.errorAt(e.Span(), "unsupported expression")
		return Type{}, false
	}
}

func (c *checker) inferBinary(e *syntax.Binary, env *Env) (Type, bool) {
	left, ok := c.infer(e.Left, env)
	if !ok {
		return Type{}, false
	}
	right, ok := c.infer(e.Right, env)
	if !ok {
		return Type{}, false
	}

	switch e.Op {
	case "+":
		if left.Equal(TypeInt) && right.Equal(TypeInt) {
			return TypeInt, true
		}
		if left.Equal(TypeStr) && right.Equal(TypeStr) {
			return TypeStr, true
		}
		c.errorAt(e.Pos, "operator + expects Int or Str operands, found %s and %s", left, right)
	case "-", "*", "/", "%":
		if left.Equal(TypeInt) && right.Equal(TypeInt) {
			return TypeInt, true
		}
		c.errorAt(e.Pos, "operator %s expects Int operands, found %s and %s", e.Op, left, right)
	case "<", "<=", ">", ">=":
		if left.Equal(TypeInt) && right.Equal(TypeInt) {
			return TypeBool, true
		}
		c.errorAt(e.Pos, "operator %s expects Int operands, found %s and %s", e.Op, left, right)
	case "==", "!=":
		if left.Kind == KindFunc || right.Kind == KindFunc {
			c.errorAt(e.Pos, "functions are not comparable")
		} else if !left.Equal(right) {
			c.errorAt(e.Pos, "operator %s expects matching operand types, found %s and %s", e.Op, left, right)
		} else {
			return TypeBool, true
		}
	default:
		c.errorAt(e.Pos, "unknown operator %q", e.Op)
	}
	return Type{}, false
}
