package syntax

import (
	"fmt"
	"strconv"

	"github.com/ember-lang/ember/types"
)

// Operator precedence, lowest first.
const (
	precLowest = iota
	precOr
	precAnd
	precEquality
	precCompare
	precSum
	precProduct
	precPrefix
	precCall
)

var infixPrec = map[TokenType]int{
	TokenOr:      precOr,
	TokenAnd:     precAnd,
	TokenEq:      precEquality,
	TokenNotEq:   precEquality,
	TokenLt:      precCompare,
	TokenLtEq:    precCompare,
	TokenGt:      precCompare,
	TokenGtEq:    precCompare,
	TokenPlus:    precSum,
	TokenMinus:   precSum,
	TokenStar:    precProduct,
	TokenSlash:   precProduct,
	TokenPercent: precProduct,
	TokenLParen:  precCall,
}

// Parser parses one fragment into a single statement.
type Parser struct {
	tokens   []Token
	pos      int
	sourceID string
	diags    []types.Diagnostic
}

// Parse lexes and parses one fragment. On failure the returned statement is
// nil and diagnostics describe the problem; the first error aborts the
// fragment, matching the fatal-for-block rule.
func Parse(frag Fragment, sourceID string) (Stmt, []types.Diagnostic) {
	lex := NewLexer(frag.Text, frag.Line, frag.Column)
	p := &Parser{tokens: lex.Tokens(), sourceID: sourceID}

	stmt := p.parseStmt()
	if len(p.diags) > 0 {
		return nil, p.diags
	}
	if tok := p.peek(); tok.Type != TokenEOF {
		p.errorAt(tok, "unexpected %q after expression", tok.Lit)
		return nil, p.diags
	}
	return stmt, nil
}

func (p *Parser) parseStmt() Stmt {
	if p.peek().Type == TokenLet {
		let := p.advance()
		name := p.expect(TokenIdent, "binding name")
		p.expect(TokenAssign, "'='")
		value := p.parseExpr(precLowest)
		if len(p.diags) > 0 {
			return nil
		}
		return &LetStmt{
			Name:  name.Lit,
			Value: value,
			Pos:   span(let),
		}
	}

	x := p.parseExpr(precLowest)
	if len(p.diags) > 0 {
		return nil
	}
	return &ExprStmt{X: x}
}

func (p *Parser) parseExpr(minPrec int) Expr {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for {
		tok := p.peek()
		prec, ok := infixPrec[tok.Type]
		if !ok || prec <= minPrec {
			return left
		}
		if tok.Type == TokenLParen {
			left = p.parseCall(left)
		} else {
			op := p.advance()
			right := p.parseExpr(prec)
			if right == nil {
				return nil
			}
			left = &Binary{Op: string(op.Type), Left: left, Right: right, Pos: left.Span()}
		}
		if len(p.diags) > 0 {
			return nil
		}
	}
}

func (p *Parser) parsePrefix() Expr {
	tok := p.peek()
	switch tok.Type {
	case TokenInt:
		p.advance()
		n, err := strconv.ParseInt(tok.Lit, 10, 64)
		if err != nil {
			p.errorAt(tok, "integer literal %q out of range", tok.Lit)
			return nil
		}
		return &IntLit{Value: n, Pos: span(tok)}
	case TokenString:
		p.advance()
		return &StrLit{Value: tok.Lit, Pos: span(tok)}
	case TokenTrue, TokenFalse:
		p.advance()
		return &BoolLit{Value: tok.Type == TokenTrue, Pos: span(tok)}
	case TokenIdent:
		p.advance()
		return &Ident{Name: tok.Lit, Pos: span(tok)}
	case TokenMinus, TokenBang:
		p.advance()
		x := p.parseExpr(precPrefix)
		if x == nil {
			return nil
		}
		return &Unary{Op: string(tok.Type), X: x, Pos: span(tok)}
	case TokenLParen:
		p.advance()
		x := p.parseExpr(precLowest)
		p.expect(TokenRParen, "')'")
		return x
	case TokenIf:
		return p.parseCond()
	case TokenFn:
		return p.parseFunc()
	case TokenIllegal:
		p.errorAt(tok, "%s", tok.Lit)
		return nil
	case TokenEOF:
		p.errorAt(tok, "unexpected end of input")
		return nil
	default:
		p.errorAt(tok, "unexpected %q", tok.Lit)
		return nil
	}
}

func (p *Parser) parseCond() Expr {
	ifTok := p.advance()
	cond := p.parseExpr(precLowest)
	p.expect(TokenThen, "'then'")
	then := p.parseExpr(precLowest)
	p.expect(TokenElse, "'else'")
	els := p.parseExpr(precLowest)
	if len(p.diags) > 0 {
		return nil
	}
	return &Cond{Cond: cond, Then: then, Else: els, Pos: span(ifTok)}
}

func (p *Parser) parseFunc() Expr {
	fnTok := p.advance()
	p.expect(TokenLParen, "'('")

	var params []Param
	for p.peek().Type != TokenRParen {
		if len(params) > 0 {
			p.expect(TokenComma, "','")
		}
		name := p.expect(TokenIdent, "parameter name")
		p.expect(TokenColon, "':'")
		typ := p.expect(TokenIdent, "parameter type")
		if len(p.diags) > 0 {
			return nil
		}
		params = append(params, Param{Name: name.Lit, Type: typ.Lit, Pos: span(name)})
	}
	p.expect(TokenRParen, "')'")
	p.expect(TokenArrow, "'=>'")
	body := p.parseExpr(precLowest)
	if len(p.diags) > 0 {
		return nil
	}
	return &FuncLit{Params: params, Body: body, Pos: span(fnTok)}
}

func (p *Parser) parseCall(fn Expr) Expr {
	p.advance() // '('
	var args []Expr
	for p.peek().Type != TokenRParen {
		if len(args) > 0 {
			p.expect(TokenComma, "','")
		}
		arg := p.parseExpr(precLowest)
		if len(p.diags) > 0 {
			return nil
		}
		args = append(args, arg)
	}
	p.expect(TokenRParen, "')'")
	return &Call{Fn: fn, Args: args, Pos: fn.Span()}
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(typ TokenType, what string) Token {
	tok := p.peek()
	if tok.Type != typ {
		got := tok.Lit
		if tok.Type == TokenEOF {
			got = "end of input"
		} else {
			got = fmt.Sprintf("%q", got)
		}
		p.errorAt(tok, "expected %s, found %s", what, got)
		return tok
	}
	return p.advance()
}

func (p *Parser) errorAt(tok Token, format string, args ...any) {
	if len(p.diags) > 0 {
		// First error wins; the fragment is already abandoned.
		return
	}
	d := types.Errorf(types.StageParse, format, args...)
	d.SourceID = p.sourceID
	d.Span = span(tok)
	p.diags = append(p.diags, d)
}

func span(tok Token) types.Span {
	return types.Span{Line: tok.Line, Column: tok.Column}
}
