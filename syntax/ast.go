package syntax

import "github.com/ember-lang/ember/types"

// Node is any parsed tree node.
type Node interface {
	// Span returns the node's starting position within its source.
	Span() types.Span
}

// Stmt is a top-level statement: one fragment parses to exactly one Stmt.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// LetStmt binds a name for this and all later interactive blocks.
type LetStmt struct {
	Name  string
	Value Expr
	Pos   types.Span
}

// ExprStmt is a bare expression at the top level.
type ExprStmt struct {
	X Expr
}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
	Pos   types.Span
}

// BoolLit is a boolean literal.
type BoolLit struct {
	Value bool
	Pos   types.Span
}

// StrLit is a string literal (escapes already resolved).
type StrLit struct {
	Value string
	Pos   types.Span
}

// Ident is a name reference.
type Ident struct {
	Name string
	Pos  types.Span
}

// Unary is a prefix operator application.
type Unary struct {
	Op  string
	X   Expr
	Pos types.Span
}

// Binary is an infix operator application.
type Binary struct {
	Op          string
	Left, Right Expr
	Pos         types.Span
}

// Cond is `if cond then a else b`. Desugaring also lowers the short-circuit
// operators into Cond nodes.
type Cond struct {
	Cond, Then, Else Expr
	Pos              types.Span
}

// Param is one annotated function parameter.
type Param struct {
	Name string
	Type string
	Pos  types.Span
}

// FuncLit is `fn(x: Int, ...) => body`.
type FuncLit struct {
	Params []Param
	Body   Expr
	Pos    types.Span
}

// Call applies a function to arguments.
type Call struct {
	Fn   Expr
	Args []Expr
	Pos  types.Span
}

func (s *LetStmt) Span() types.Span  { return s.Pos }
func (s *ExprStmt) Span() types.Span { return s.X.Span() }
func (e *IntLit) Span() types.Span   { return e.Pos }
func (e *BoolLit) Span() types.Span  { return e.Pos }
func (e *StrLit) Span() types.Span   { return e.Pos }
func (e *Ident) Span() types.Span    { return e.Pos }
func (e *Unary) Span() types.Span    { return e.Pos }
func (e *Binary) Span() types.Span   { return e.Pos }
func (e *Cond) Span() types.Span     { return e.Pos }
func (e *FuncLit) Span() types.Span  { return e.Pos }
func (e *Call) Span() types.Span     { return e.Pos }

func (*LetStmt) stmtNode()  {}
func (*ExprStmt) stmtNode() {}

func (*IntLit) exprNode()  {}
func (*BoolLit) exprNode() {}
func (*StrLit) exprNode()  {}
func (*Ident) exprNode()   {}
func (*Unary) exprNode()   {}
func (*Binary) exprNode()  {}
func (*Cond) exprNode()    {}
func (*FuncLit) exprNode() {}
func (*Call) exprNode()    {}
