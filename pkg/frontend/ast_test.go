package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAccessorsPanicOnWrongKind(t *testing.T) {
	v := IntValue(5)
	assert.Equal(t, int64(5), v.Int())
	assert.Panics(t, func() { v.Float() })
	assert.Panics(t, func() { v.Str() })
	assert.Panics(t, func() { v.Bool() })
}

func TestValueStringRendersEveryKind(t *testing.T) {
	assert.Equal(t, "5", IntValue(5).String())
	assert.Equal(t, "2.5", FloatValue(2.5).String())
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "hi", StringValue("hi").String())
	assert.Equal(t, "IntType", TypeValue(IntType).String())
	assert.Equal(t, "Add", BinaryOpValue(BinaryAdd).String())
	assert.Equal(t, "Not", UnaryOpValue(UnaryNot).String())
}

func TestNodePushAndAdoptChild(t *testing.T) {
	root := NewNode(NodeExpression, SourceRef{})
	a := root.PushChild(NodeVariableName, SourceRef{})
	a.Value = StringValue("a")

	b := NewNode(NodeVariableName, SourceRef{})
	b.Value = StringValue("b")
	root.AdoptChild(b)

	require.Len(t, root.Children, 2)
	assert.Equal(t, "b", root.Children[0].Value.Str())
	assert.Equal(t, "a", root.Children[1].Value.Str())
	assert.Same(t, root, a.Parent)
	assert.Same(t, root, b.Parent)
}

func TestNodeDumpFormat(t *testing.T) {
	root := NewNode(NodeExpression, SourceRef{})
	child := root.PushChild(NodeIntegerLiteralValue, SourceRef{})
	child.Value = IntValue(42)

	assert.Equal(t, "Expression\n  IntegerLiteralValue: 42\n", root.DumpString())
}

func TestTypeRegistryBuiltinsAndUserTypes(t *testing.T) {
	r := NewTypeRegistry()
	assert.True(t, r.IsTypename(newKeywordToken(KeywordInt, SourceRef{})))
	assert.False(t, r.IsTypename(newLiteralToken(TokenIdentifier, "Widget", SourceRef{})))

	id := r.Register("Widget")
	assert.True(t, r.IsTypename(newLiteralToken(TokenIdentifier, "Widget", SourceRef{})))
	assert.Equal(t, id, r.Register("Widget"))
	assert.NotEqual(t, UnknownType, id)
}

func TestTypeRegistryIsScopedPerInstance(t *testing.T) {
	a := NewTypeRegistry()
	b := NewTypeRegistry()
	a.Register("Widget")
	assert.False(t, b.IsTypename(newLiteralToken(TokenIdentifier, "Widget", SourceRef{})))
}
