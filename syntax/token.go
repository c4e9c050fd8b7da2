// Package syntax implements the lexer and parser stage of the pipeline.
//
// The parser accepts one fragment of source text plus its source id and
// returns a parsed tree or a list of diagnostics. Fragments are independent
// of each other, so the driver may parse them in parallel.
package syntax

// TokenType identifies a lexical token class.
type TokenType string

// Token classes.
const (
	TokenInt    TokenType = "INT"
	TokenString TokenType = "STR"
	TokenIdent  TokenType = "IDENT"

	TokenLet   TokenType = "let"
	TokenIf    TokenType = "if"
	TokenThen  TokenType = "then"
	TokenElse  TokenType = "else"
	TokenFn    TokenType = "fn"
	TokenTrue  TokenType = "true"
	TokenFalse TokenType = "false"

	TokenAssign  TokenType = "="
	TokenPlus    TokenType = "+"
	TokenMinus   TokenType = "-"
	TokenStar    TokenType = "*"
	TokenSlash   TokenType = "/"
	TokenPercent TokenType = "%"
	TokenEq      TokenType = "=="
	TokenNotEq   TokenType = "!="
	TokenLt      TokenType = "<"
	TokenLtEq    TokenType = "<="
	TokenGt      TokenType = ">"
	TokenGtEq    TokenType = ">="
	TokenAnd     TokenType = "&&"
	TokenOr      TokenType = "||"
	TokenBang    TokenType = "!"

	TokenLParen TokenType = "("
	TokenRParen TokenType = ")"
	TokenComma  TokenType = ","
	TokenColon  TokenType = ":"
	TokenArrow  TokenType = "=>"

	TokenEOF     TokenType = "EOF"
	TokenIllegal TokenType = "ILLEGAL"
)

var keywords = map[string]TokenType{
	"let":   TokenLet,
	"if":    TokenIf,
	"then":  TokenThen,
	"else":  TokenElse,
	"fn":    TokenFn,
	"true":  TokenTrue,
	"false": TokenFalse,
}

// Token is one lexical token with its 1-based position.
type Token struct {
	Type   TokenType
	Lit    string
	Line   int
	Column int
}
