package frontend

import "fmt"

// TokenType discriminates the payload carried by a Token's Value.
type TokenType int

const (
	TokenKeyword TokenType = iota
	TokenIdentifier
	TokenOperator
	TokenSpecial
	TokenIntegerLiteral
	TokenFloatingPointLiteral
	TokenStringLiteral
)

// Keyword enumerates every reserved word of the language subset.
type Keyword int

const (
	KeywordBool Keyword = iota
	KeywordInt
	KeywordFloat
	KeywordStr
	KeywordList
	KeywordNone
	KeywordTrue
	KeywordFalse
	KeywordIf
	KeywordElse
	KeywordElif
	KeywordWhile
	KeywordFor
	KeywordRange
	KeywordIn
	KeywordBreak
	KeywordContinue
	KeywordReturn
	KeywordImport
	KeywordDefinition
	KeywordOr
	KeywordAnd
	KeywordNot
)

var keywordText = map[Keyword]string{
	KeywordBool:       "bool",
	KeywordInt:        "int",
	KeywordFloat:      "float",
	KeywordStr:        "str",
	KeywordList:       "list",
	KeywordNone:       "None",
	KeywordTrue:       "True",
	KeywordFalse:      "False",
	KeywordIf:         "if",
	KeywordElse:       "else",
	KeywordElif:       "elif",
	KeywordWhile:      "while",
	KeywordFor:        "for",
	KeywordRange:      "range",
	KeywordIn:         "in",
	KeywordBreak:      "break",
	KeywordContinue:   "continue",
	KeywordReturn:     "return",
	KeywordImport:     "import",
	KeywordDefinition: "def",
	KeywordOr:         "or",
	KeywordAnd:        "and",
	KeywordNot:        "not",
}

// keywordTable maps the exact, case-sensitive spelling of a keyword to its
// Keyword value. Built once; never mutated after init.
var keywordTable = func() map[string]Keyword {
	m := make(map[string]Keyword, len(keywordText))
	for k, s := range keywordText {
		m[s] = k
	}
	return m
}()

// Operator enumerates every binary/unary/grouping operator symbol.
type Operator int

const (
	OperatorDot Operator = iota
	OperatorComma
	OperatorAssign
	OperatorAdd
	OperatorSub
	OperatorMult
	OperatorDiv
	OperatorMod
	OperatorEqual
	OperatorNotEqual
	OperatorLess
	OperatorGreater
	OperatorLessEqual
	OperatorGreaterEqual
	OperatorLeftBrace
	OperatorRightBrace
	OperatorRectLeftBrace
	OperatorRectRightBrace
)

var operatorText = map[Operator]string{
	OperatorDot:            ".",
	OperatorComma:          ",",
	OperatorAssign:         "=",
	OperatorAdd:            "+",
	OperatorSub:            "-",
	OperatorMult:           "*",
	OperatorDiv:            "/",
	OperatorMod:            "%",
	OperatorEqual:          "==",
	OperatorNotEqual:       "!=",
	OperatorLess:           "<",
	OperatorGreater:        ">",
	OperatorLessEqual:      "<=",
	OperatorGreaterEqual:   ">=",
	OperatorLeftBrace:      "(",
	OperatorRightBrace:     ")",
	OperatorRectLeftBrace:  "[",
	OperatorRectRightBrace: "]",
}

// operatorTable maps every single- and two-character operator spelling to
// its Operator value. Two-character spellings are checked first by the
// lexer, so both coexist in the same table without ambiguity.
var operatorTable = func() map[string]Operator {
	m := make(map[string]Operator, len(operatorText))
	for op, s := range operatorText {
		m[s] = op
	}
	return m
}()

// Special enumerates the non-lexical, structural tokens.
type Special int

const (
	SpecialIndentation Special = iota
	SpecialEndOfExpression
	SpecialArrow
	SpecialColon
)

var specialText = map[Special]string{
	SpecialIndentation:     "Indentation",
	SpecialEndOfExpression: "EndOfExpression",
	SpecialArrow:           "Arrow",
	SpecialColon:           "Colon",
}

// Token is a tagged value: exactly one of Keyword/Operator/Special/Literal
// is meaningful, selected by Type. Two tokens compare equal (Equal) when
// their Type and payload match, ignoring source position.
type Token struct {
	Type     TokenType
	Keyword  Keyword
	Operator Operator
	Special  Special
	Literal  string // Identifier and every *Literal kind carry their text here
	Ref      SourceRef
}

func newKeywordToken(kw Keyword, ref SourceRef) Token {
	return Token{Type: TokenKeyword, Keyword: kw, Ref: ref}
}

func newOperatorToken(op Operator, ref SourceRef) Token {
	return Token{Type: TokenOperator, Operator: op, Ref: ref}
}

func newSpecialToken(sp Special, ref SourceRef) Token {
	return Token{Type: TokenSpecial, Special: sp, Ref: ref}
}

func newLiteralToken(typ TokenType, text string, ref SourceRef) Token {
	return Token{Type: typ, Literal: text, Ref: ref}
}

// Is reports whether the token is of the given type and carries the given
// payload. It accepts a Keyword, Operator or Special value.
func (t Token) Is(payload interface{}) bool {
	switch v := payload.(type) {
	case Keyword:
		return t.Type == TokenKeyword && t.Keyword == v
	case Operator:
		return t.Type == TokenOperator && t.Operator == v
	case Special:
		return t.Type == TokenSpecial && t.Special == v
	default:
		return false
	}
}

// Equal compares tag and payload, ignoring source position.
func (t Token) Equal(other Token) bool {
	if t.Type != other.Type {
		return false
	}
	switch t.Type {
	case TokenKeyword:
		return t.Keyword == other.Keyword
	case TokenOperator:
		return t.Operator == other.Operator
	case TokenSpecial:
		return t.Special == other.Special
	default:
		return t.Literal == other.Literal
	}
}

// Dump renders the token in the fixed-width, 8-variant golden format used by
// golden tests: a left-justified 20-character label, " : ", then the
// payload's textual form.
func (t Token) Dump() string {
	label, value := t.dumpParts()
	return fmt.Sprintf("%-20s : %s", label, value)
}

func (t Token) dumpParts() (label, value string) {
	switch t.Type {
	case TokenKeyword:
		return "Keyword", keywordText[t.Keyword]
	case TokenOperator:
		return "Operator", operatorText[t.Operator]
	case TokenSpecial:
		return "Special", specialText[t.Special]
	case TokenIdentifier:
		return "Identifier", t.Literal
	case TokenIntegerLiteral:
		return "IntegerLiteral", t.Literal
	case TokenFloatingPointLiteral:
		return "FloatingPointLiteral", t.Literal
	case TokenStringLiteral:
		return "StringLiteral", t.Literal
	default:
		return "Unknown", t.Literal
	}
}

// TokenList is the flat output of the lexer: one concatenated stream across
// every line of the source file.
type TokenList []Token

// Dump renders every token on its own line in golden-test format.
func (l TokenList) Dump() string {
	var out string
	for _, t := range l {
		out += t.Dump() + "\n"
	}
	return out
}
