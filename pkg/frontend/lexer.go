package frontend

// Lex tokenizes a preprocessed SourceFile into a flat TokenList. Each line
// is tokenized independently (see lexLine) and the resulting token lists
// are concatenated in source order. On any diagnostic, Lex still finishes
// tokenizing every line (so a single run reports as many lexer errors as
// possible, per spec §7) and then returns the accumulated ErrorBuffer
// instead of a TokenList.
func Lex(source *SourceFile) (TokenList, error) {
	var errs ErrorBuffer
	var tokens TokenList
	for _, line := range source.Lines {
		tokens = append(tokens, lexLine(line, &errs)...)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

func isAlpha(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return isAlpha(c) || c == '_'
}

func isIdentChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}

// lexLine tokenizes one (already comment-stripped) source line, per spec
// §4.2's per-line algorithm: leading-space indentation counting, then a
// left-to-right character classification pass, terminated by a single
// EndOfExpression token — except that a line made of nothing but spaces
// produces no tokens at all.
func lexLine(line SourceLine, errs *ErrorBuffer) []Token {
	text := line.Text
	ref := line.Ref(1)

	spaceCount := 0
	for spaceCount < len(text) && text[spaceCount] == ' ' {
		spaceCount++
	}
	if spaceCount == len(text) {
		// Line is entirely spaces (or empty): no Indentation, no
		// EndOfExpression.
		return nil
	}

	var tokens []Token
	if spaceCount%4 != 0 {
		errs.Push(ref.InSameLine(1), "extra spaces at the beginning of line are not allowed")
	}
	indentCount := spaceCount / 4
	indentRef := ref.InSameLine(indentCount*4 + 1)
	for i := 0; i < indentCount; i++ {
		tokens = append(tokens, newSpecialToken(SpecialIndentation, indentRef))
	}

	i := spaceCount
	for i < len(text) {
		c := text[i]
		col := i + 1
		twoCharOp := matchTwoCharOp(text, i)

		switch {
		// A disallowed character straight after an identifier run (e.g.
		// `x@`) is not flagged here specifically; it falls through to the
		// next iteration and is reported generically by the default case
		// below as an unexpected symbol.
		case isIdentStart(c):
			start := i
			for i < len(text) && isIdentChar(text[i]) {
				i++
			}
			run := text[start:i]
			tref := ref.InSameLine(start + 1)
			if kw, ok := keywordTable[run]; ok {
				tokens = append(tokens, newKeywordToken(kw, tref))
			} else {
				tokens = append(tokens, newLiteralToken(TokenIdentifier, run, tref))
			}

		case isDigit(c):
			start := i
			for i < len(text) && isDigit(text[i]) {
				i++
			}
			isFloat := false
			if i < len(text) && text[i] == '.' {
				isFloat = true
				i++
				for i < len(text) && isDigit(text[i]) {
					i++
				}
			}
			if i < len(text) && isAlpha(text[i]) {
				errs.Push(ref.InSameLine(col), "unexpected characters in numeric literal")
			}
			run := text[start:i]
			tref := ref.InSameLine(start + 1)
			if isFloat {
				tokens = append(tokens, newLiteralToken(TokenFloatingPointLiteral, run, tref))
			} else {
				tokens = append(tokens, newLiteralToken(TokenIntegerLiteral, run, tref))
			}

		case c == '"':
			start := i + 1
			j := start
			for j < len(text) && text[j] != '"' {
				j++
			}
			tref := ref.InSameLine(col)
			tokens = append(tokens, newLiteralToken(TokenStringLiteral, text[start:j], tref))
			if j >= len(text) {
				errs.Push(ref.InSameLine(len(text)+1), "no matching closing quote found")
				i = j
				break
			}
			i = j + 1

		case twoCharOp != "":
			tref := ref.InSameLine(col)
			if twoCharOp == "->" {
				tokens = append(tokens, newSpecialToken(SpecialArrow, tref))
			} else {
				tokens = append(tokens, newOperatorToken(operatorTable[twoCharOp], tref))
			}
			i += 2

		case c == ':':
			tokens = append(tokens, newSpecialToken(SpecialColon, ref.InSameLine(col)))
			i++

		case c == ' ' || c == '\t':
			i++

		default:
			if op, ok := operatorTable[string(c)]; ok {
				tokens = append(tokens, newOperatorToken(op, ref.InSameLine(col)))
				i++
				continue
			}
			errs.Push(ref.InSameLine(col), "unexpected symbol %q", c)
			i = len(text) // stop tokenizing the rest of this line
		}
	}

	tokens = append(tokens, newSpecialToken(SpecialEndOfExpression, ref.InSameLine(len(text)+1)))
	return tokens
}

var twoCharOps = []string{"==", "!=", "<=", ">=", "->"}

// matchTwoCharOp returns the two-character operator spelling starting at
// text[i], or "" if none matches. Two-character spellings are always
// checked before falling back to single-character operators (spec §4.2).
func matchTwoCharOp(text string, i int) string {
	if i+2 > len(text) {
		return ""
	}
	s := text[i : i+2]
	for _, op := range twoCharOps {
		if s == op {
			return op
		}
	}
	return ""
}
