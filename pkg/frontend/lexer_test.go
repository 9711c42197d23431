package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lex(t *testing.T, lines ...string) TokenList {
	t.Helper()
	tokens, err := Lex(NewSourceFile("test.fox", lines))
	require.NoError(t, err)
	return tokens
}

func TestLexSimpleAssignment(t *testing.T) {
	tokens := lex(t, "x: int = 1")
	require.Len(t, tokens, 6)
	assert.Equal(t, TokenIdentifier, tokens[0].Type)
	assert.Equal(t, "x", tokens[0].Literal)
	assert.True(t, tokens[1].Is(SpecialColon))
	assert.True(t, tokens[2].Is(KeywordInt))
	assert.True(t, tokens[3].Is(OperatorAssign))
	assert.Equal(t, TokenIntegerLiteral, tokens[4].Type)
	assert.Equal(t, "1", tokens[4].Literal)
	assert.True(t, tokens[5].Is(SpecialEndOfExpression))
}

func TestLexIndentation(t *testing.T) {
	tokens := lex(t, "        x = 1")
	assert.True(t, tokens[0].Is(SpecialIndentation))
	assert.True(t, tokens[1].Is(SpecialIndentation))
	assert.Equal(t, TokenIdentifier, tokens[2].Type)
}

func TestLexBlankLineProducesNoTokens(t *testing.T) {
	tokens := lex(t, "    ", "x = 1")
	require.Len(t, tokens, 4) // identifier, =, 1, EndOfExpression -- no indentation, no EndOfExpression for the blank line
}

func TestLexTwoCharOperators(t *testing.T) {
	tokens := lex(t, "a == b", "a != b", "a <= b", "a >= b", "a -> b")
	var ops []Operator
	var specials []Special
	for _, tok := range tokens {
		if tok.Type == TokenOperator {
			ops = append(ops, tok.Operator)
		}
		if tok.Is(SpecialArrow) {
			specials = append(specials, tok.Special)
		}
	}
	assert.Equal(t, []Operator{OperatorEqual, OperatorNotEqual, OperatorLessEqual, OperatorGreaterEqual}, ops)
	assert.Equal(t, []Special{SpecialArrow}, specials)
}

func TestLexStringLiteral(t *testing.T) {
	tokens := lex(t, `s: str = "hello world"`)
	var found bool
	for _, tok := range tokens {
		if tok.Type == TokenStringLiteral {
			assert.Equal(t, "hello world", tok.Literal)
			found = true
		}
	}
	assert.True(t, found)
}

func TestLexUnclosedStringIsADiagnostic(t *testing.T) {
	_, err := Lex(NewSourceFile("t.fox", []string{`s: str = "hello`}))
	require.Error(t, err)
}

func TestLexExtraSpacesIsADiagnostic(t *testing.T) {
	_, err := Lex(NewSourceFile("t.fox", []string{"   x = 1"}))
	require.Error(t, err)
}

func TestLexUnexpectedSymbolIsADiagnostic(t *testing.T) {
	_, err := Lex(NewSourceFile("t.fox", []string{"x = 1 @ 2"}))
	require.Error(t, err)
}

func TestLexKeywordVsIdentifier(t *testing.T) {
	tokens := lex(t, "while x")
	require.True(t, tokens[0].Is(KeywordWhile))
	assert.Equal(t, TokenIdentifier, tokens[1].Type)
}

func TestTokenDumpFormat(t *testing.T) {
	tok := newKeywordToken(KeywordIf, SourceRef{})
	assert.Equal(t, "Keyword              : if", tok.Dump())

	id := newLiteralToken(TokenIdentifier, "x", SourceRef{})
	assert.Equal(t, "Identifier           : x", id.Dump())
}
