package frontend

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// NodeType is the closed set of AST node kinds.
type NodeType int

const (
	NodeProgramRoot NodeType = iota
	NodeBranchRoot
	NodeExpression
	NodeFunctionDefinition
	NodeFunctionArguments
	NodeFunctionArgument
	NodeFunctionCall
	NodeIfStatement
	NodeElifStatement
	NodeElseStatement
	NodeWhileStatement
	NodeVariableDeclaration
	NodeReturnStatement
	NodeTypeConversion
	NodeListStatement
	NodeListAccessor
	NodeFunctionName
	NodeVariableName
	NodeStringLiteralValue
	NodeTypeName
	NodeFunctionReturnType
	NodeIntegerLiteralValue
	NodeFloatingPointLiteralValue
	NodeBooleanLiteralValue
	NodeNoneLiteralValue
	NodeBinaryOperation
	NodeUnaryOperation
)

var nodeTypeText = map[NodeType]string{
	NodeProgramRoot:               "ProgramRoot",
	NodeBranchRoot:                "BranchRoot",
	NodeExpression:                "Expression",
	NodeFunctionDefinition:        "FunctionDefinition",
	NodeFunctionArguments:         "FunctionArguments",
	NodeFunctionArgument:          "FunctionArgument",
	NodeFunctionCall:              "FunctionCall",
	NodeIfStatement:               "IfStatement",
	NodeElifStatement:             "ElifStatement",
	NodeElseStatement:             "ElseStatement",
	NodeWhileStatement:            "WhileStatement",
	NodeVariableDeclaration:       "VariableDeclaration",
	NodeReturnStatement:           "ReturnStatement",
	NodeTypeConversion:            "TypeConversion",
	NodeListStatement:             "ListStatement",
	NodeListAccessor:              "ListAccessor",
	NodeFunctionName:              "FunctionName",
	NodeVariableName:              "VariableName",
	NodeStringLiteralValue:        "StringLiteralValue",
	NodeTypeName:                  "TypeName",
	NodeFunctionReturnType:        "FunctionReturnType",
	NodeIntegerLiteralValue:       "IntegerLiteralValue",
	NodeFloatingPointLiteralValue: "FloatingPointLiteralValue",
	NodeBooleanLiteralValue:       "BooleanLiteralValue",
	NodeNoneLiteralValue:          "NoneLiteralValue",
	NodeBinaryOperation:           "BinaryOperation",
	NodeUnaryOperation:            "UnaryOperation",
}

func (t NodeType) String() string {
	if s, ok := nodeTypeText[t]; ok {
		return s
	}
	return "Unknown"
}

// BinaryOperation enumerates the binary operator tags a BinaryOperation node
// can hold. Zero value Unknown distinguishes an unpopulated Value from a
// legitimately-zero tag (see original_source's ast::BinaryOperation::Unknown).
type BinaryOperation int

const (
	BinaryUnknown BinaryOperation = iota
	BinaryAdd
	BinarySub
	BinaryMult
	BinaryDiv
	BinaryMod
	BinaryAnd
	BinaryOr
	BinaryEqual
	BinaryNotEqual
	BinaryLess
	BinaryGreater
	BinaryLessEqual
	BinaryGreaterEqual
	BinaryAssign
)

var binaryOperationText = map[BinaryOperation]string{
	BinaryUnknown:      "Unknown",
	BinaryAdd:          "Add",
	BinarySub:          "Sub",
	BinaryMult:         "Mult",
	BinaryDiv:          "Div",
	BinaryMod:          "Mod",
	BinaryAnd:          "And",
	BinaryOr:           "Or",
	BinaryEqual:        "Equal",
	BinaryNotEqual:     "NotEqual",
	BinaryLess:         "Less",
	BinaryGreater:      "Greater",
	BinaryLessEqual:    "LessEqual",
	BinaryGreaterEqual: "GreaterEqual",
	BinaryAssign:       "Assign",
}

func (op BinaryOperation) String() string {
	if s, ok := binaryOperationText[op]; ok {
		return s
	}
	return "Unknown"
}

// UnaryOperation enumerates the unary operator tags a UnaryOperation node
// can hold.
type UnaryOperation int

const (
	UnaryUnknown UnaryOperation = iota
	UnaryNot
	UnaryNegative
)

var unaryOperationText = map[UnaryOperation]string{
	UnaryUnknown:  "Unknown",
	UnaryNot:      "Not",
	UnaryNegative: "Negative",
}

func (op UnaryOperation) String() string {
	if s, ok := unaryOperationText[op]; ok {
		return s
	}
	return "Unknown"
}

// TypeId is an opaque small integer identifying a recognized type name.
type TypeId int

const (
	UnknownType TypeId = iota
	IntType
	FloatType
	BoolType
	StrType
	ListType
	NoneType
	firstUserType
)

var builtinTypeText = map[TypeId]string{
	UnknownType: "UnknownType",
	IntType:     "IntType",
	FloatType:   "FloatType",
	BoolType:    "BoolType",
	StrType:     "StrType",
	ListType:    "ListType",
	NoneType:    "NoneType",
}

// valueKind discriminates which field of Value is meaningful. It mirrors
// the (NodeType -> value kind) legality table in spec §3: accessors panic
// on a kind mismatch, since an illegal pairing is a bug, not a recoverable
// runtime error (spec §9).
type valueKind int

const (
	valueNone valueKind = iota
	valueInt
	valueFloat
	valueBool
	valueString
	valueType
	valueBinaryOp
	valueUnaryOp
)

// Value is the tagged union carried by an AST Node, holding at most one of:
// nothing, a signed integer, a double, a bool, a string, a TypeId, a
// BinaryOperation or a UnaryOperation. It is a plain struct rather than an
// interface{} so the legal-payload table is visible at compile time and
// accessors can panic precisely on misuse.
type Value struct {
	kind   valueKind
	i      int64
	f      float64
	b      bool
	s      string
	typ    TypeId
	binOp  BinaryOperation
	unaryO UnaryOperation
}

func IntValue(v int64) Value                { return Value{kind: valueInt, i: v} }
func FloatValue(v float64) Value            { return Value{kind: valueFloat, f: v} }
func BoolValue(v bool) Value                { return Value{kind: valueBool, b: v} }
func StringValue(v string) Value            { return Value{kind: valueString, s: v} }
func TypeValue(v TypeId) Value               { return Value{kind: valueType, typ: v} }
func BinaryOpValue(v BinaryOperation) Value { return Value{kind: valueBinaryOp, binOp: v} }
func UnaryOpValue(v UnaryOperation) Value   { return Value{kind: valueUnaryOp, unaryO: v} }

func (v Value) Int() int64 {
	if v.kind != valueInt {
		panic("frontend: Value does not hold an integer")
	}
	return v.i
}

func (v Value) Float() float64 {
	if v.kind != valueFloat {
		panic("frontend: Value does not hold a float")
	}
	return v.f
}

func (v Value) Bool() bool {
	if v.kind != valueBool {
		panic("frontend: Value does not hold a bool")
	}
	return v.b
}

func (v Value) String() string {
	switch v.kind {
	case valueNone:
		return ""
	case valueInt:
		return strconv.FormatInt(v.i, 10)
	case valueFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case valueBool:
		return strconv.FormatBool(v.b)
	case valueString:
		return v.s
	case valueType:
		return v.typ.String()
	case valueBinaryOp:
		return v.binOp.String()
	case valueUnaryOp:
		return v.unaryO.String()
	default:
		return ""
	}
}

// Str returns the raw string payload, panicking if Value does not hold one.
func (v Value) Str() string {
	if v.kind != valueString {
		panic("frontend: Value does not hold a string")
	}
	return v.s
}

func (v Value) Type() TypeId {
	if v.kind != valueType {
		panic("frontend: Value does not hold a TypeId")
	}
	return v.typ
}

func (v Value) BinaryOp() BinaryOperation {
	if v.kind != valueBinaryOp {
		panic("frontend: Value does not hold a BinaryOperation")
	}
	return v.binOp
}

func (v Value) UnaryOp() UnaryOperation {
	if v.kind != valueUnaryOp {
		panic("frontend: Value does not hold a UnaryOperation")
	}
	return v.unaryO
}

func (v Value) isNone() bool { return v.kind == valueNone }

// Node is one AST node: a NodeType tag, its Value payload, an ordered list
// of owned children, a non-owning Parent back-pointer, and the SourceRef of
// the token that introduced it. Parent is a plain pointer — Go's garbage
// collector tolerates the resulting cycle — but it must never be used to
// free or traverse-and-mutate a subtree, only to navigate upward (spec §9).
type Node struct {
	Type     NodeType
	Value    Value
	Children []*Node
	Parent   *Node
	Ref      SourceRef
}

// NewNode constructs a detached node of the given type with no value.
func NewNode(typ NodeType, ref SourceRef) *Node {
	return &Node{Type: typ, Ref: ref}
}

// PushChild appends a new child of the given type to node, setting the
// child's Parent back-reference, and returns it.
func (n *Node) PushChild(typ NodeType, ref SourceRef) *Node {
	child := NewNode(typ, ref)
	child.Parent = n
	n.Children = append(n.Children, child)
	return child
}

// AdoptChild attaches an already-built subtree as the first child of node.
// The expression engine uses it (see attachChildren in expr.go) to compose
// operand subtrees it already finished building rather than building a
// child node fresh in place, which is all PushChild can do.
func (n *Node) AdoptChild(child *Node) {
	child.Parent = n
	n.Children = append([]*Node{child}, n.Children...)
}

// Dump writes the indented, two-space-per-depth textual form used by golden
// tests: NodeType on its own line, with ": <value>" appended when the node
// carries a value.
func (n *Node) Dump(w io.Writer) {
	n.dump(w, 0)
}

func (n *Node) dump(w io.Writer, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.Value.isNone() {
		fmt.Fprintf(w, "%s%s\n", indent, n.Type)
	} else {
		fmt.Fprintf(w, "%s%s: %s\n", indent, n.Type, n.Value.String())
	}
	for _, child := range n.Children {
		child.dump(w, depth+1)
	}
}

// DumpString renders Dump to a string.
func (n *Node) DumpString() string {
	var sb strings.Builder
	n.Dump(&sb)
	return sb.String()
}

// FunctionSignature is the recorded return type and argument types for one
// declared function, populated by the out-of-scope semantizer.
type FunctionSignature struct {
	ReturnType    TypeId
	ArgumentTypes []TypeId
}

// SyntaxTree is the parser's output: a ProgramRoot-rooted Node tree plus an
// (initially empty) function table the semantizer populates.
type SyntaxTree struct {
	Root      *Node
	Functions map[string]FunctionSignature
}

func newSyntaxTree() *SyntaxTree {
	return &SyntaxTree{
		Root:      NewNode(NodeProgramRoot, SourceRef{}),
		Functions: make(map[string]FunctionSignature),
	}
}

// Dump renders the whole tree in golden-test format.
func (t *SyntaxTree) Dump(w io.Writer) {
	t.Root.Dump(w)
}

// DumpString renders Dump to a string.
func (t *SyntaxTree) DumpString() string {
	var sb strings.Builder
	t.Dump(&sb)
	return sb.String()
}

// TypeRegistry maps recognized type names to TypeIds. It is owned by a
// single ParserContext / Parse invocation (spec §9's redesign note) so that
// user-defined types registered while parsing one program can never leak
// into another.
type TypeRegistry struct {
	userTypes map[string]TypeId
	next      TypeId
}

// NewTypeRegistry returns a registry pre-populated with only the built-in
// types.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{userTypes: make(map[string]TypeId), next: firstUserType}
}

// Register adds a user-defined type name, returning its newly assigned
// TypeId, or the existing one if already registered.
func (r *TypeRegistry) Register(name string) TypeId {
	if id, ok := r.userTypes[name]; ok {
		return id
	}
	id := r.next
	r.next++
	r.userTypes[name] = id
	return id
}

// IsTypename reports whether a token denotes a type: a builtin type
// keyword, or an identifier previously registered as a user-defined type.
func (r *TypeRegistry) IsTypename(tok Token) bool {
	if tok.Type == TokenKeyword {
		switch tok.Keyword {
		case KeywordInt, KeywordFloat, KeywordBool, KeywordStr, KeywordNone, KeywordList:
			return true
		}
		return false
	}
	if tok.Type == TokenIdentifier {
		_, ok := r.userTypes[tok.Literal]
		return ok
	}
	return false
}

// TypeId resolves a type-denoting token to its TypeId, or UnknownType if it
// does not denote a recognized type.
func (r *TypeRegistry) TypeId(tok Token) TypeId {
	if tok.Type == TokenIdentifier {
		if id, ok := r.userTypes[tok.Literal]; ok {
			return id
		}
		return UnknownType
	}
	if tok.Type != TokenKeyword {
		return UnknownType
	}
	switch tok.Keyword {
	case KeywordInt:
		return IntType
	case KeywordFloat:
		return FloatType
	case KeywordBool:
		return BoolType
	case KeywordStr:
		return StrType
	case KeywordList:
		return ListType
	case KeywordNone:
		return NoneType
	default:
		return UnknownType
	}
}

func (t TypeId) String() string {
	if s, ok := builtinTypeText[t]; ok {
		return s
	}
	return fmt.Sprintf("UserType(%d)", int(t))
}
