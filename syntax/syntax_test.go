package syntax

import (
	"strings"
	"testing"
)

func parseOne(t *testing.T, src string) Stmt {
	t.Helper()
	stmt, diags := Parse(Fragment{Text: src, Line: 1, Column: 1}, "test")
	if len(diags) > 0 {
		t.Fatalf("parse %q: %v", src, diags[0].Message)
	}
	return stmt
}

func TestLexer_Positions(t *testing.T) {
	lex := NewLexer("let x = 1", 1, 1)
	toks := lex.Tokens()

	want := []struct {
		typ TokenType
		col int
	}{
		{TokenLet, 1},
		{TokenIdent, 5},
		{TokenAssign, 7},
		{TokenInt, 9},
		{TokenEOF, 10},
	}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(toks))
	}
	for i, w := range want {
		if toks[i].Type != w.typ || toks[i].Column != w.col {
			t.Errorf("token %d: got %s at col %d, want %s at col %d",
				i, toks[i].Type, toks[i].Column, w.typ, w.col)
		}
	}
}

func TestLexer_BaseOffset(t *testing.T) {
	// A fragment starting mid-line keeps absolute columns.
	lex := NewLexer("y + 1", 1, 10)
	toks := lex.Tokens()
	if toks[0].Column != 10 {
		t.Errorf("expected first token at column 10, got %d", toks[0].Column)
	}
}

func TestParse_LetBinding(t *testing.T) {
	stmt := parseOne(t, "let answer = 40 + 2")
	let, ok := stmt.(*LetStmt)
	if !ok {
		t.Fatalf("expected LetStmt, got %T", stmt)
	}
	if let.Name != "answer" {
		t.Errorf("expected name %q, got %q", "answer", let.Name)
	}
	if _, ok := let.Value.(*Binary); !ok {
		t.Errorf("expected Binary value, got %T", let.Value)
	}
}

func TestParse_Precedence(t *testing.T) {
	stmt := parseOne(t, "1 + 2 * 3")
	bin := stmt.(*ExprStmt).X.(*Binary)
	if bin.Op != "+" {
		t.Fatalf("expected + at root, got %s", bin.Op)
	}
	right, ok := bin.Right.(*Binary)
	if !ok || right.Op != "*" {
		t.Errorf("expected * on the right, got %T", bin.Right)
	}
}

func TestParse_CondAndCall(t *testing.T) {
	stmt := parseOne(t, `if f(1) < 2 then "low" else "high"`)
	cond, ok := stmt.(*ExprStmt).X.(*Cond)
	if !ok {
		t.Fatalf("expected Cond, got %T", stmt.(*ExprStmt).X)
	}
	cmp := cond.Cond.(*Binary)
	if _, ok := cmp.Left.(*Call); !ok {
		t.Errorf("expected Call on the left of <, got %T", cmp.Left)
	}
}

func TestParse_FuncLit(t *testing.T) {
	stmt := parseOne(t, "fn(x: Int, y: Int) => x + y")
	fn, ok := stmt.(*ExprStmt).X.(*FuncLit)
	if !ok {
		t.Fatalf("expected FuncLit, got %T", stmt.(*ExprStmt).X)
	}
	if len(fn.Params) != 2 || fn.Params[1].Name != "y" || fn.Params[1].Type != "Int" {
		t.Errorf("unexpected params: %+v", fn.Params)
	}
}

func TestParse_ErrorHasPosition(t *testing.T) {
	_, diags := Parse(Fragment{Text: "1 + ", Line: 1, Column: 1}, "test")
	if len(diags) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", len(diags))
	}
	if diags[0].SourceID != "test" {
		t.Errorf("expected source id on diagnostic, got %q", diags[0].SourceID)
	}
	if diags[0].Span.Line == 0 {
		t.Error("expected a positioned diagnostic")
	}
}

func TestParse_TrailingGarbage(t *testing.T) {
	_, diags := Parse(Fragment{Text: "1 2", Line: 1, Column: 1}, "test")
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for trailing tokens")
	}
}

func TestSplitFragments_TopLevelOnly(t *testing.T) {
	frags := SplitFragments(`let s = "a;b"; f(1; 2); 3`)
	// The semicolon in the string and the one inside parens must not split.
	if len(frags) != 3 {
		t.Fatalf("expected 3 fragments, got %d: %+v", len(frags), frags)
	}
	if !strings.Contains(frags[0].Text, `"a;b"`) {
		t.Errorf("string semicolon split fragment: %q", frags[0].Text)
	}
	if !strings.Contains(frags[1].Text, "f(1; 2)") {
		t.Errorf("paren semicolon split fragment: %q", frags[1].Text)
	}
}

func TestSplitFragments_DropsEmpty(t *testing.T) {
	frags := SplitFragments("1;;2;")
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(frags))
	}
}

func TestSplitFragments_TracksColumns(t *testing.T) {
	frags := SplitFragments("1 + 2; 3 * 4")
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(frags))
	}
	if frags[1].Column != 7 {
		t.Errorf("expected second fragment at column 7, got %d", frags[1].Column)
	}
}

func TestDump_Outline(t *testing.T) {
	stmt := parseOne(t, "let x = 1 + 2")
	got := Dump([]Stmt{stmt})
	want := "Let x\n  Binary +\n    Int 1\n    Int 2"
	if got != want {
		t.Errorf("unexpected dump:\n%s\nwant:\n%s", got, want)
	}
}

func TestDesugar_ShortCircuit(t *testing.T) {
	stmt := parseOne(t, "true && false")
	cond, ok := Desugar(stmt).(*ExprStmt).X.(*Cond)
	if !ok {
		t.Fatalf("expected && to lower to Cond, got %T", Desugar(stmt).(*ExprStmt).X)
	}
	if b, ok := cond.Else.(*BoolLit); !ok || b.Value {
		t.Error("expected else branch of && to be false literal")
	}

	stmt = parseOne(t, "true || false")
	cond = Desugar(stmt).(*ExprStmt).X.(*Cond)
	if b, ok := cond.Then.(*BoolLit); !ok || !b.Value {
		t.Error("expected then branch of || to be true literal")
	}
}

func TestDesugar_UnaryMinus(t *testing.T) {
	stmt := parseOne(t, "-7")
	bin, ok := Desugar(stmt).(*ExprStmt).X.(*Binary)
	if !ok || bin.Op != "-" {
		t.Fatalf("expected -x to lower to binary subtraction")
	}
	if lit, ok := bin.Left.(*IntLit); !ok || lit.Value != 0 {
		t.Error("expected zero literal on the left")
	}
}

func TestDesugar_LeavesDumpInputAlone(t *testing.T) {
	// Dump shows the pre-desugar tree: sugar must still be visible there.
	stmt := parseOne(t, "!true")
	if !strings.Contains(Dump([]Stmt{stmt}), "Unary !") {
		t.Error("parse tree should keep unary ! before desugaring")
	}
}
