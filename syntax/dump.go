package syntax

import (
	"fmt"
	"strings"
)

// Dump renders parsed trees as an indented textual outline. This is the
// artifact for a tree display request; it shows the tree before desugaring.
func Dump(stmts []Stmt) string {
	var b strings.Builder
	for _, s := range stmts {
		dumpStmt(&b, s, 0)
	}
	return strings.TrimRight(b.String(), "\n")
}

func dumpStmt(b *strings.Builder, s Stmt, depth int) {
	switch s := s.(type) {
	case *LetStmt:
		writeLine(b, depth, "Let %s", s.Name)
		dumpExpr(b, s.Value, depth+1)
	case *ExprStmt:
		dumpExpr(b, s.X, depth)
	}
}

func dumpExpr(b *strings.Builder, e Expr, depth int) {
	switch e := e.(type) {
	case *IntLit:
		writeLine(b, depth, "Int %d", e.Value)
	case *BoolLit:
		writeLine(b, depth, "Bool %t", e.Value)
	case *StrLit:
		writeLine(b, depth, "Str %q", e.Value)
	case *Ident:
		writeLine(b, depth, "Ident %s", e.Name)
	case *Unary:
		writeLine(b, depth, "Unary %s", e.Op)
		dumpExpr(b, e.X, depth+1)
	case *Binary:
		writeLine(b, depth, "Binary %s", e.Op)
		dumpExpr(b, e.Left, depth+1)
		dumpExpr(b, e.Right, depth+1)
	case *Cond:
		writeLine(b, depth, "If")
		dumpExpr(b, e.Cond, depth+1)
		writeLine(b, depth, "Then")
		dumpExpr(b, e.Then, depth+1)
		writeLine(b, depth, "Else")
		dumpExpr(b, e.Else, depth+1)
	case *FuncLit:
		params := make([]string, len(e.Params))
		for i, p := range e.Params {
			params[i] = p.Name + ": " + p.Type
		}
		writeLine(b, depth, "Fn (%s)", strings.Join(params, ", "))
		dumpExpr(b, e.Body, depth+1)
	case *Call:
		writeLine(b, depth, "Call")
		dumpExpr(b, e.Fn, depth+1)
		for _, arg := range e.Args {
			dumpExpr(b, arg, depth+1)
		}
	}
}

func writeLine(b *strings.Builder, depth int, format string, args ...any) {
	b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(b, format, args...)
	b.WriteByte('\n')
}
