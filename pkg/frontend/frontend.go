// Package frontend implements the front end of a small, indentation-
// sensitive scripting language: a comment-stripping preprocessor, an
// indentation-aware lexer, and a recursive-descent parser that produces a
// syntax tree ready for a separate semantic analysis stage.
//
// The three stages compose linearly and are also exposed individually
// (Preprocess, Lex, Parse) so callers that only need tokens — an editor's
// syntax highlighter, say — never have to pay for parsing.
package frontend

// Compile runs the full pipeline — Preprocess, then Lex, then Parse — over
// a SourceFile, stopping at the first stage that reports a diagnostic.
func Compile(source *SourceFile) (*SyntaxTree, error) {
	clean := Preprocess(source)
	tokens, err := Lex(clean)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}
