package syntax

// Fragment is one independently parseable unit of a turn's source text.
// Line and Column locate its first character within the original source,
// so diagnostics keep their positions after splitting.
type Fragment struct {
	Text   string
	Line   int
	Column int
}

// SplitFragments cuts source at top-level semicolons. Semicolons inside
// string literals or parentheses do not split. Empty fragments (from
// trailing or doubled semicolons) are dropped.
//
// Each fragment is the parse stage's unit of fan-out: fragments parse
// independently and in parallel over the worker pool.
func SplitFragments(source string) []Fragment {
	var out []Fragment

	line, col := 1, 1
	startPos := 0
	startLine, startCol := 1, 1
	depth := 0
	inString := false

	flush := func(end int) {
		text := source[startPos:end]
		if hasContent(text) {
			out = append(out, Fragment{Text: text, Line: startLine, Column: startCol})
		}
	}

	for i := 0; i < len(source); i++ {
		ch := source[i]
		switch {
		case inString:
			if ch == '\\' && i+1 < len(source) {
				i++
				col++
			} else if ch == '"' {
				inString = false
			}
		case ch == '"':
			inString = true
		case ch == '(':
			depth++
		case ch == ')':
			if depth > 0 {
				depth--
			}
		case ch == ';' && depth == 0:
			flush(i)
			startPos = i + 1
			startLine, startCol = line, col+1
		}

		if ch == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	flush(len(source))

	return out
}

func hasContent(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r', '\n':
		default:
			return true
		}
	}
	return false
}
