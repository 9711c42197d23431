package frontend

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, src string) *SyntaxTree {
	t.Helper()
	tree, err := Compile(SourceFileFromString("t.fox", src))
	require.NoError(t, err)
	return tree
}

// nodeDiffOptions configures go-cmp to compare AST subtrees structurally:
// Parent is a non-owning back-pointer (comparing it would chase a cycle),
// and Value's payload fields are unexported, so it is compared via its
// rendered form instead of field-by-field.
var nodeDiffOptions = []cmp.Option{
	cmpopts.IgnoreFields(Node{}, "Parent", "Ref"),
	cmp.Comparer(func(a, b Value) bool { return a.String() == b.String() && a.kind == b.kind }),
}

func TestParseMinimalFunction(t *testing.T) {
	tree := parseProgram(t, "def f() -> int:\n    return 1\n")
	require.Len(t, tree.Root.Children, 1)

	fn := tree.Root.Children[0]
	assert.Equal(t, NodeFunctionDefinition, fn.Type)
	assert.Equal(t, "f", fn.Children[0].Value.Str())
	assert.Equal(t, NodeFunctionArguments, fn.Children[1].Type)
	assert.Empty(t, fn.Children[1].Children)
	assert.Equal(t, IntType, fn.Children[2].Value.Type())
}

func TestParseFunctionWithArguments(t *testing.T) {
	tree := parseProgram(t, "def add(a: int, b: int) -> int:\n    return a + b\n")
	fn := tree.Root.Children[0]
	argsNode := fn.Children[1]
	require.Len(t, argsNode.Children, 2)
	assert.Equal(t, "a", argsNode.Children[0].Children[1].Value.Str())
	assert.Equal(t, "b", argsNode.Children[1].Children[1].Value.Str())
}

func TestParseIfElifElse(t *testing.T) {
	src := "def f() -> int:\n" +
		"    if 1 < 2:\n" +
		"        return 1\n" +
		"    elif 2 < 3:\n" +
		"        return 2\n" +
		"    else:\n" +
		"        return 3\n"
	tree := parseProgram(t, src)
	fn := tree.Root.Children[0]
	branch := fn.Children[len(fn.Children)-1]
	ifStmt := branch.Children[0]
	require.Equal(t, NodeIfStatement, ifStmt.Type)

	var hasElif, hasElse bool
	for _, c := range ifStmt.Children {
		switch c.Type {
		case NodeElifStatement:
			hasElif = true
		case NodeElseStatement:
			hasElse = true
		}
	}
	assert.True(t, hasElif)
	assert.True(t, hasElse)
}

func TestParseWhileLoop(t *testing.T) {
	src := "def f() -> int:\n" +
		"    while 1 < 2:\n" +
		"        return 1\n"
	tree := parseProgram(t, src)
	fn := tree.Root.Children[0]
	branch := fn.Children[len(fn.Children)-1]
	assert.Equal(t, NodeWhileStatement, branch.Children[0].Type)
}

func TestParseVariableDeclarationWithInitializer(t *testing.T) {
	src := "def f() -> int:\n" +
		"    x: int = 1 + 2\n" +
		"    return x\n"
	tree := parseProgram(t, src)
	fn := tree.Root.Children[0]
	branch := fn.Children[len(fn.Children)-1]
	decl := branch.Children[0]
	require.Equal(t, NodeVariableDeclaration, decl.Type)

	want := NewNode(NodeVariableDeclaration, SourceRef{})
	typeNode := want.PushChild(NodeTypeName, SourceRef{})
	typeNode.Value = TypeValue(IntType)
	nameNode := want.PushChild(NodeVariableName, SourceRef{})
	nameNode.Value = StringValue("x")
	exprNode := want.PushChild(NodeExpression, SourceRef{})
	addNode := exprNode.PushChild(NodeBinaryOperation, SourceRef{})
	addNode.Value = BinaryOpValue(BinaryAdd)
	left := addNode.PushChild(NodeIntegerLiteralValue, SourceRef{})
	left.Value = IntValue(1)
	right := addNode.PushChild(NodeIntegerLiteralValue, SourceRef{})
	right.Value = IntValue(2)

	if diff := cmp.Diff(want, decl, nodeDiffOptions...); diff != "" {
		t.Errorf("variable declaration tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseListVariableDeclaration(t *testing.T) {
	src := "def f() -> int:\n" +
		"    xs: list[int] = [1, 2, 3]\n" +
		"    return xs[0]\n"
	tree := parseProgram(t, src)
	fn := tree.Root.Children[0]
	branch := fn.Children[len(fn.Children)-1]
	decl := branch.Children[0]
	require.Equal(t, NodeVariableDeclaration, decl.Type)

	exprNode := decl.Children[2]
	require.Equal(t, NodeExpression, exprNode.Type)
	require.Len(t, exprNode.Children, 1)
	listStmt := exprNode.Children[0]
	require.Equal(t, NodeListStatement, listStmt.Type)
	require.Len(t, listStmt.Children, 3)
	for _, elem := range listStmt.Children {
		require.Equal(t, NodeExpression, elem.Type)
		require.Len(t, elem.Children, 1)
	}
	assert.Equal(t, int64(1), listStmt.Children[0].Children[0].Value.Int())
	assert.Equal(t, int64(2), listStmt.Children[1].Children[0].Value.Int())
	assert.Equal(t, int64(3), listStmt.Children[2].Children[0].Value.Int())
}

func TestParseIndentationMismatchIsADiagnostic(t *testing.T) {
	src := "def f() -> int:\n" +
		"        return 1\n" // double-indented first statement
	_, err := Compile(SourceFileFromString("t.fox", src))
	require.Error(t, err)
}

func TestParseMissingColonIsADiagnostic(t *testing.T) {
	src := "def f() -> int\n    return 1\n"
	_, err := Compile(SourceFileFromString("t.fox", src))
	require.Error(t, err)
}

func TestParseElifWithoutIfIsADiagnostic(t *testing.T) {
	src := "def f() -> int:\n" +
		"    elif 1 < 2:\n" +
		"        return 1\n"
	_, err := Compile(SourceFileFromString("t.fox", src))
	require.Error(t, err)
}

func TestParseTopLevelNonFunctionIsADiagnostic(t *testing.T) {
	_, err := Compile(SourceFileFromString("t.fox", "x = 1\n"))
	require.Error(t, err)
}
