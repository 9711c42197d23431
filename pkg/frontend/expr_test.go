package frontend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseExprProgram wraps a single return expression in a minimal function so
// the full Preprocess->Lex->Parse pipeline can be exercised, then returns
// the dump of the ReturnStatement's Expression subtree.
func parseExprProgram(t *testing.T, expr string) string {
	t.Helper()
	src := "def f() -> int:\n    return " + expr + "\n"
	tree, err := Compile(SourceFileFromString("t.fox", src))
	require.NoError(t, err)

	fn := tree.Root.Children[0]
	branch := fn.Children[len(fn.Children)-1]
	require.Equal(t, NodeBranchRoot, branch.Type)
	ret := branch.Children[0]
	require.Equal(t, NodeReturnStatement, ret.Type)
	require.Len(t, ret.Children, 1)
	return ret.Children[0].DumpString()
}

func TestExpressionPrecedenceMultiplicationBindsTighterThanAddition(t *testing.T) {
	got := parseExprProgram(t, "1 + 2 * 3")
	want := "Expression\n" +
		"  BinaryOperation: Add\n" +
		"    IntegerLiteralValue: 1\n" +
		"    BinaryOperation: Mult\n" +
		"      IntegerLiteralValue: 2\n" +
		"      IntegerLiteralValue: 3\n"
	assert.Equal(t, want, got)
}

func TestExpressionLeftAssociativity(t *testing.T) {
	got := parseExprProgram(t, "1 - 2 - 3")
	want := "Expression\n" +
		"  BinaryOperation: Sub\n" +
		"    BinaryOperation: Sub\n" +
		"      IntegerLiteralValue: 1\n" +
		"      IntegerLiteralValue: 2\n" +
		"    IntegerLiteralValue: 3\n"
	assert.Equal(t, want, got)
}

func TestExpressionParenthesesOverridePrecedence(t *testing.T) {
	got := parseExprProgram(t, "(1 + 2) * 3")
	want := "Expression\n" +
		"  BinaryOperation: Mult\n" +
		"    BinaryOperation: Add\n" +
		"      IntegerLiteralValue: 1\n" +
		"      IntegerLiteralValue: 2\n" +
		"    IntegerLiteralValue: 3\n"
	assert.Equal(t, want, got)
}

func TestExpressionEqualityBetweenRelationalAndLogical(t *testing.T) {
	// (1 < 2) == (3 < 4) and True
	got := parseExprProgram(t, "1 < 2 == 3 < 4 and True")
	require.True(t, strings.HasPrefix(got, "Expression\n  BinaryOperation: And\n"))
}

func TestExpressionFunctionCall(t *testing.T) {
	got := parseExprProgram(t, "g(1, 2 + 3)")
	want := "Expression\n" +
		"  FunctionCall: g\n" +
		"    IntegerLiteralValue: 1\n" +
		"    BinaryOperation: Add\n" +
		"      IntegerLiteralValue: 2\n" +
		"      IntegerLiteralValue: 3\n"
	assert.Equal(t, want, got)
}

func TestExpressionListAccessor(t *testing.T) {
	got := parseExprProgram(t, "xs[0]")
	want := "Expression\n" +
		"  ListAccessor: xs\n" +
		"    IntegerLiteralValue: 0\n"
	assert.Equal(t, want, got)
}

func TestExpressionUnaryNot(t *testing.T) {
	got := parseExprProgram(t, "not True")
	want := "Expression\n" +
		"  UnaryOperation: Not\n" +
		"    BooleanLiteralValue: true\n"
	assert.Equal(t, want, got)
}

func TestExpressionNoneLiteral(t *testing.T) {
	got := parseExprProgram(t, "None")
	want := "Expression\n" +
		"  NoneLiteralValue\n"
	assert.Equal(t, want, got)
}

func TestExpressionOutOfRangeIntegerIsADiagnostic(t *testing.T) {
	src := "def f() -> int:\n    return 99999999999999999999999999\n"
	_, err := Compile(SourceFileFromString("t.fox", src))
	require.Error(t, err)
}
