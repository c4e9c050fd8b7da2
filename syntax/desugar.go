package syntax

// Desugar lowers surface constructs into the core tree the analysis stage
// understands:
//
//	a && b  ->  if a then b else false
//	a || b  ->  if a then true else b
//	!x      ->  if x then false else true
//	-x      ->  0 - x
//
// The short-circuit lowering preserves evaluation order: the right operand
// only evaluates on the branch that needs it.
func Desugar(s Stmt) Stmt {
	switch s := s.(type) {
	case *LetStmt:
		return &LetStmt{Name: s.Name, Value: desugarExpr(s.Value), Pos: s.Pos}
	case *ExprStmt:
		return &ExprStmt{X: desugarExpr(s.X)}
	default:
		return s
	}
}

func desugarExpr(e Expr) Expr {
	switch e := e.(type) {
	case *Unary:
		x := desugarExpr(e.X)
		switch e.Op {
		case "!":
			return &Cond{
				Cond: x,
				Then: &BoolLit{Value: false, Pos: e.Pos},
				Else: &BoolLit{Value: true, Pos: e.Pos},
				Pos:  e.Pos,
			}
		case "-":
			return &Binary{
				Op:    "-",
				Left:  &IntLit{Value: 0, Pos: e.Pos},
				Right: x,
				Pos:   e.Pos,
			}
		}
		return &Unary{Op: e.Op, X: x, Pos: e.Pos}
	case *Binary:
		left := desugarExpr(e.Left)
		right := desugarExpr(e.Right)
		switch e.Op {
		case "&&":
			return &Cond{
				Cond: left,
				Then: right,
				Else: &BoolLit{Value: false, Pos: e.Pos},
				Pos:  e.Pos,
			}
		case "||":
			return &Cond{
				Cond: left,
				Then: &BoolLit{Value: true, Pos: e.Pos},
				Else: right,
				Pos:  e.Pos,
			}
		}
		return &Binary{Op: e.Op, Left: left, Right: right, Pos: e.Pos}
	case *Cond:
		return &Cond{
			Cond: desugarExpr(e.Cond),
			Then: desugarExpr(e.Then),
			Else: desugarExpr(e.Else),
			Pos:  e.Pos,
		}
	case *FuncLit:
		return &FuncLit{Params: e.Params, Body: desugarExpr(e.Body), Pos: e.Pos}
	case *Call:
		args := make([]Expr, len(e.Args))
		for i, a := range e.Args {
			args[i] = desugarExpr(a)
		}
		return &Call{Fn: desugarExpr(e.Fn), Args: args, Pos: e.Pos}
	default:
		return e
	}
}
