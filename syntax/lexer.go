package syntax

// Lexer converts one fragment of source into a flat token stream.
type Lexer struct {
	src  string
	pos  int
	line int
	col  int
}

// NewLexer creates a lexer positioned at the given 1-based line and column.
// Fragments later in a turn's input keep their original positions this way.
func NewLexer(src string, line, col int) *Lexer {
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	return &Lexer{src: src, line: line, col: col}
}

// Tokens lexes the whole fragment, ending with an EOF token. Unterminated
// strings and unknown characters become ILLEGAL tokens; the parser turns
// those into diagnostics.
func (l *Lexer) Tokens() []Token {
	var out []Token
	for {
		tok := l.next()
		out = append(out, tok)
		if tok.Type == TokenEOF {
			return out
		}
	}
}

func (l *Lexer) next() Token {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return l.token(TokenEOF, "")
	}

	ch := l.src[l.pos]
	switch {
	case isDigit(ch):
		return l.lexNumber()
	case isIdentStart(ch):
		return l.lexIdent()
	case ch == '"':
		return l.lexString()
	}

	start := l.markToken()
	two := ""
	if l.pos+1 < len(l.src) {
		two = l.src[l.pos : l.pos+2]
	}
	switch two {
	case "==", "!=", "<=", ">=", "&&", "||", "=>":
		l.advance(2)
		return at(start, TokenType(two), two)
	}

	l.advance(1)
	switch ch {
	case '=', '+', '-', '*', '/', '%', '<', '>', '!', '(', ')', ',', ':':
		return at(start, TokenType(ch), string(ch))
	}
	return at(start, TokenIllegal, string(ch))
}

func (l *Lexer) skipSpace() {
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.advance(1)
			continue
		}
		// Line comment runs to end of line.
		if ch == '#' {
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.advance(1)
			}
			continue
		}
		return
	}
}

func (l *Lexer) lexNumber() Token {
	start := l.markToken()
	begin := l.pos
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.advance(1)
	}
	return at(start, TokenInt, l.src[begin:l.pos])
}

func (l *Lexer) lexIdent() Token {
	start := l.markToken()
	begin := l.pos
	for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
		l.advance(1)
	}
	lit := l.src[begin:l.pos]
	if kw, ok := keywords[lit]; ok {
		return at(start, kw, lit)
	}
	return at(start, TokenIdent, lit)
}

func (l *Lexer) lexString() Token {
	start := l.markToken()
	l.advance(1) // opening quote
	var out []byte
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		if ch == '"' {
			l.advance(1)
			return at(start, TokenString, string(out))
		}
		if ch == '\\' && l.pos+1 < len(l.src) {
			l.advance(1)
			esc := l.src[l.pos]
			switch esc {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			default:
				out = append(out, esc)
			}
			l.advance(1)
			continue
		}
		out = append(out, ch)
		l.advance(1)
	}
	return at(start, TokenIllegal, "unterminated string")
}

func (l *Lexer) markToken() Token {
	return Token{Line: l.line, Column: l.col}
}

func at(mark Token, typ TokenType, lit string) Token {
	mark.Type = typ
	mark.Lit = lit
	return mark
}

func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.pos >= len(l.src) {
			return
		}
		if l.src[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.pos++
	}
}

func (l *Lexer) token(typ TokenType, lit string) Token {
	return Token{Type: typ, Lit: lit, Line: l.line, Column: l.col}
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool { return isIdentStart(ch) || isDigit(ch) }
