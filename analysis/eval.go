package analysis

import (
	"github.com/ember-lang/ember/syntax"
	"github.com/ember-lang/ember/types"
)

// evaluator walks a checked, desugared tree. Runtime failures (division by
// zero, reference to a binding that was type checked but never evaluated)
// become a single positioned diagnostic.
type evaluator struct {
	sourceID string
	diag     types.Diagnostic
}

func (ev *evaluator) fail(span types.Span, format string, args ...any) (Value, bool) {
	d := types.Errorf(types.StageAnalysis, format, args...)
	d.SourceID = ev.sourceID
	d.Span = span
	ev.diag = d
	return nil, false
}

func (ev *evaluator) eval(e syntax.Expr, env *Env) (Value, bool) {
	switch e := e.(type) {
	case *syntax.IntLit:
		return IntValue(e.Value), true
	case *syntax.BoolLit:
		return BoolValue(e.Value), true
	case *syntax.StrLit:
		return StrValue(e.Value), true

	case *syntax.Ident:
		b, ok := env.Lookup(e.Name)
		if !ok {
			return ev.fail(e.Pos, "undefined name %q", e.Name)
		}
		if b.Value == nil {
			return ev.fail(e.Pos, "name %q has no value (it was defined without evaluation)", e.Name)
		}
		return b.Value, true

	case *syntax.Binary:
		return ev.evalBinary(e, env)

	case *syntax.Cond:
		cond, ok := ev.eval(e.Cond, env)
		if !ok {
			return nil, false
		}
		if cond.(BoolValue) {
			return ev.eval(e.Then, env)
		}
		return ev.eval(e.Else, env)

	case *syntax.FuncLit:
		params := make([]Type, len(e.Params))
		for i, p := range e.Params {
			pt, _ := ParseTypeName(p.Type)
			params[i] = pt
		}
		// Return type was proven by the checker; it is not re-derived here,
		// so display falls back to the parameter signature.
		ret := Type{}
		c := &checker{sourceID: ev.sourceID}
		if t, ok := c.infer(e, env); ok {
			ret = *t.Ret
		}
		return &Closure{Params: e.Params, Body: e.Body, Env: env, Sig: FuncType(params, ret)}, true

	case *syntax.Call:
		fn, ok := ev.eval(e.Fn, env)
		if !ok {
			return nil, false
		}
		closure, ok := fn.(*Closure)
		if !ok {
			return ev.fail(e.Pos, "cannot call a non-function value")
		}
		frame := NewEnv(closure.Env)
		for i, p := range closure.Params {
			arg, ok := ev.eval(e.Args[i], env)
			if !ok {
				return nil, false
			}
			pt, _ := ParseTypeName(p.Type)
			frame.Define(p.Name, Binding{Type: pt, Value: arg})
		}
		return ev.eval(closure.Body, frame)

	case *syntax.Unary:
		x, ok := ev.eval(e.X, env)
		if !ok {
			return nil, false
		}
		if e.Op == "!" {
			return BoolValue(!x.(BoolValue)), true
		}
		return IntValue(-x.(IntValue)), true

	default:
		return ev.fail(e.Span(), "unsupported expression")
	}
}

func (ev *evaluator) evalBinary(e *syntax.Binary, env *Env) (Value, bool) {
	left, ok := ev.eval(e.Left, env)
	if !ok {
		return nil, false
	}
	right, ok := ev.eval(e.Right, env)
	if !ok {
		return nil, false
	}

	if l, ok := left.(StrValue); ok {
		r := right.(StrValue)
		switch e.Op {
		case "+":
			return l + r, true
		case "==":
			return BoolValue(l == r), true
		case "!=":
			return BoolValue(l != r), true
		}
	}

	if l, ok := left.(BoolValue); ok {
		r := right.(BoolValue)
		switch e.Op {
		case "==":
			return BoolValue(l == r), true
		case "!=":
			return BoolValue(l != r), true
		}
	}

	l := left.(IntValue)
	r := right.(IntValue)
	switch e.Op {
	case "+":
		return l + r, true
	case "-":
		return l - r, true
	case "*":
		return l * r, true
	case "/":
		if r == 0 {
			return ev.fail(e.Pos, "division by zero")
		}
		return l / r, true
	case "%":
		if r == 0 {
			return ev.fail(e.Pos, "division by zero")
		}
		return l % r, true
	case "<":
		return BoolValue(l < r), true
	case "<=":
		return BoolValue(l <= r), true
	case ">":
		return BoolValue(l > r), true
	case ">=":
		return BoolValue(l >= r), true
	case "==":
		return BoolValue(l == r), true
	case "!=":
		return BoolValue(l != r), true
	default:
		return ev.fail(e.Pos, "unknown operator %q", e.Op)
	}
}
