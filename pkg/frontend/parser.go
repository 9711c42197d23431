package frontend

// subparser is a function chosen by the current AST node's type that
// consumes tokens and extends the tree. A PDA whose stack is the AST spine:
// a subparser reads tokens, mutates ctx.node's subtree, and may recurse into
// other subparsers via ctx.propagate, which looks up the subparser
// registered for ctx.node's (possibly just-changed) type.
type subparser func(ctx *parserContext)

// parserContext is the parser's single piece of mutable state, threaded
// through every subparser call by pointer.
type parserContext struct {
	subparsers   map[NodeType]subparser
	node         *Node
	tokens       TokenList
	pos          int
	nestingLevel int
	types        *TypeRegistry
	errors       ErrorBuffer
}

func (ctx *parserContext) atEnd() bool {
	return ctx.pos >= len(ctx.tokens)
}

// token returns the current token. Calling it at end-of-stream is a bug in
// the subparser (every subparser is expected to check atEnd first, or to
// rely on the trailing EndOfExpression token that every non-blank line
// carries), so it panics rather than returning a zero Token.
func (ctx *parserContext) token() Token {
	if ctx.atEnd() {
		panic("frontend: parser read past end of token stream")
	}
	return ctx.tokens[ctx.pos]
}

func (ctx *parserContext) peekAt(offset int) (Token, bool) {
	i := ctx.pos + offset
	if i < 0 || i >= len(ctx.tokens) {
		return Token{}, false
	}
	return ctx.tokens[i], true
}

func (ctx *parserContext) goNextToken() {
	ctx.pos++
}

// pushChildNode appends a child of the given type under ctx.node, sourced
// at the current token's ref.
func (ctx *parserContext) pushChildNode(typ NodeType) *Node {
	return ctx.node.PushChild(typ, ctx.token().Ref)
}

func (ctx *parserContext) propagate() {
	sub, ok := ctx.subparsers[ctx.node.Type]
	if !ok {
		panic("frontend: no subparser registered for node type " + ctx.node.Type.String())
	}
	sub(ctx)
}

func (ctx *parserContext) pushError(format string, args ...interface{}) {
	ref := SourceRef{}
	if !ctx.atEnd() {
		ref = ctx.token().Ref
	}
	ctx.errors.Push(ref, format, args...)
}

// goNextExpression skips tokens until just after the next EndOfExpression,
// the parser's standard resynchronization move after a recoverable error.
func (ctx *parserContext) goNextExpression() {
	for !ctx.atEnd() && !ctx.token().Is(SpecialEndOfExpression) {
		ctx.goNextToken()
	}
	if !ctx.atEnd() {
		ctx.goNextToken()
	}
}

func (ctx *parserContext) goParentNode() {
	ctx.node = ctx.node.Parent
}

// newSubparserTable builds the NodeType -> subparser dispatch map fresh for
// one Parse call. Built locally rather than via package-level init-time
// registration, per spec §9's explicit redesign note (the teacher's own
// ast.go/parser.go duplication shows what global construction-time
// registration across "generations" of the same code leads to).
func newSubparserTable() map[NodeType]subparser {
	return map[NodeType]subparser{
		NodeProgramRoot:         parseProgramRoot,
		NodeFunctionDefinition:  parseFunctionDefinition,
		NodeFunctionArguments:   parseFunctionArguments,
		NodeBranchRoot:          parseBranchRoot,
		NodeIfStatement:         parseIfStatement,
		NodeElifStatement:       parseElifStatement,
		NodeElseStatement:       parseElseStatement,
		NodeWhileStatement:      parseWhileStatement,
		NodeReturnStatement:     parseReturnStatement,
		NodeVariableDeclaration: parseVariableDeclaration,
		NodeExpression:          parseExpression,
		NodeListStatement:       parseListStatement,
	}
}

// Parse drives the recursive-descent subparser dispatch over tokens,
// producing a SyntaxTree rooted at a fresh ProgramRoot node. On any
// diagnostic, parsing still runs to completion (so a single run reports as
// many parser errors as possible) before the accumulated ErrorBuffer is
// returned instead of a tree.
func Parse(tokens TokenList) (*SyntaxTree, error) {
	tree := newSyntaxTree()
	ctx := &parserContext{
		subparsers: newSubparserTable(),
		node:       tree.Root,
		tokens:     tokens,
		types:      NewTypeRegistry(),
	}
	ctx.propagate()
	if err := ctx.errors.Err(); err != nil {
		return nil, err
	}
	return tree, nil
}

func parseProgramRoot(ctx *parserContext) {
	for !ctx.atEnd() {
		if ctx.token().Is(KeywordDefinition) {
			ctx.node = ctx.pushChildNode(NodeFunctionDefinition)
			ctx.propagate()
		} else {
			ctx.pushError("function definition was expected")
			return
		}
	}
}

func parseFunctionDefinition(ctx *parserContext) {
	ctx.goNextToken() // def
	if ctx.atEnd() || ctx.token().Type != TokenIdentifier {
		ctx.pushError("function name was expected")
	} else {
		ctx.pushChildNode(NodeFunctionName).Value = StringValue(ctx.token().Literal)
		ctx.goNextToken()
	}
	if ctx.atEnd() || !ctx.token().Is(OperatorLeftBrace) {
		ctx.pushError("'(' was expected in function definition")
	}
	ctx.node = ctx.pushChildNode(NodeFunctionArguments)
	ctx.propagate()
	if ctx.atEnd() || !ctx.token().Is(SpecialArrow) {
		ctx.pushError("function return type is mandatory in its header")
	} else {
		ctx.goNextToken()
	}
	if ctx.atEnd() || !ctx.types.IsTypename(ctx.token()) {
		ctx.pushError("type name was expected")
	} else {
		ctx.pushChildNode(NodeFunctionReturnType).Value = TypeValue(ctx.types.TypeId(ctx.token()))
		ctx.goNextToken()
	}
	if ctx.atEnd() || !ctx.token().Is(SpecialColon) {
		ctx.pushError("colon expected at the end of function header")
	} else {
		ctx.goNextToken()
	}
	ctx.node = ctx.pushChildNode(NodeBranchRoot)
	ctx.nestingLevel = 1
	ctx.propagate()
}

func parseFunctionArguments(ctx *parserContext) {
	ctx.goNextToken() // (
	for !ctx.atEnd() && !ctx.token().Is(OperatorRightBrace) {
		nameTok, hasName := ctx.peekAt(0)
		colonTok, hasColon := ctx.peekAt(1)
		typeTok, hasType := ctx.peekAt(2)
		if !hasName || !hasColon || !hasType ||
			nameTok.Type != TokenIdentifier || !colonTok.Is(SpecialColon) || !ctx.types.IsTypename(typeTok) {
			ctx.pushError("function argument declaration is ill-formed")
			for !ctx.atEnd() && !ctx.token().Is(OperatorRightBrace) && !ctx.token().Is(SpecialColon) {
				ctx.goNextToken()
			}
			break
		}
		arg := ctx.pushChildNode(NodeFunctionArgument)
		typeNode := arg.PushChild(NodeTypeName, typeTok.Ref)
		typeNode.Value = TypeValue(ctx.types.TypeId(typeTok))
		nameNode := arg.PushChild(NodeVariableName, nameTok.Ref)
		nameNode.Value = StringValue(nameTok.Literal)

		last, hasLast := ctx.peekAt(3)
		if hasLast && last.Is(OperatorComma) {
			ctx.pos += 4
		} else {
			ctx.pos += 3
		}
	}
	ctx.goParentNode()
	if !ctx.atEnd() {
		ctx.goNextToken() // )
	}
}

// isVariableDeclaration reports whether the upcoming tokens form
// `IDENT : TYPENAME`, the lookahead BranchRoot uses to distinguish a
// variable declaration from a bare expression statement.
func isVariableDeclaration(ctx *parserContext) bool {
	nameTok, hasName := ctx.peekAt(0)
	colonTok, hasColon := ctx.peekAt(1)
	typeTok, hasType := ctx.peekAt(2)
	if !hasName || !hasColon || !hasType {
		return false
	}
	return nameTok.Type == TokenIdentifier && colonTok.Is(SpecialColon) && ctx.types.IsTypename(typeTok)
}

func parseBranchRoot(ctx *parserContext) {
	for ctx.nestingLevel > 0 {
		if ctx.atEnd() {
			return
		}
		for !ctx.atEnd() && (ctx.token().Is(SpecialEndOfExpression) || ctx.token().Is(SpecialColon)) {
			ctx.goNextToken()
		}
		if ctx.atEnd() {
			return
		}

		currNestingLevel := 0
		for !ctx.atEnd() && ctx.token().Is(SpecialIndentation) {
			currNestingLevel++
			ctx.goNextToken()
		}

		if currNestingLevel > ctx.nestingLevel {
			ctx.pushError("unexpected indentation mismatch: %d indentation(s) expected, %d given",
				ctx.nestingLevel, currNestingLevel)
		} else if currNestingLevel < ctx.nestingLevel {
			ctx.goParentNode()
			for ctx.node.Type != NodeBranchRoot && ctx.node.Parent != nil {
				ctx.goParentNode()
			}
			ctx.nestingLevel--
			ctx.pos -= currNestingLevel
			return
		}

		if ctx.atEnd() {
			return
		}
		curr := ctx.token()
		switch {
		case curr.Is(KeywordIf):
			ctx.node = ctx.pushChildNode(NodeIfStatement)
		case curr.Is(KeywordWhile):
			ctx.node = ctx.pushChildNode(NodeWhileStatement)
		case isVariableDeclaration(ctx):
			ctx.node = ctx.pushChildNode(NodeVariableDeclaration)
		case curr.Is(KeywordElif), curr.Is(KeywordElse):
			if len(ctx.node.Children) == 0 || ctx.node.Children[len(ctx.node.Children)-1].Type != NodeIfStatement {
				word := "elif"
				if curr.Is(KeywordElse) {
					word = "else"
				}
				ctx.pushError("%s is not allowed here", word)
				ctx.goNextExpression()
				continue
			}
			lastIf := ctx.node.Children[len(ctx.node.Children)-1]
			nodeType := NodeElifStatement
			if curr.Is(KeywordElse) {
				nodeType = NodeElseStatement
			}
			ctx.node = lastIf.PushChild(nodeType, curr.Ref)
		case curr.Is(KeywordReturn):
			ctx.node = ctx.pushChildNode(NodeReturnStatement)
		default:
			ctx.node = ctx.pushChildNode(NodeExpression)
		}
		ctx.propagate()
	}
}

func parseIfStatement(ctx *parserContext) {
	ctx.goNextToken() // if
	ctx.node = ctx.pushChildNode(NodeExpression)
	ctx.propagate()
	if ctx.atEnd() || !ctx.token().Is(SpecialColon) {
		ctx.pushError("colon expected here")
		ctx.goNextExpression()
	}
	ctx.node = ctx.node.PushChild(NodeBranchRoot, SourceRef{})
	ctx.nestingLevel++
	ctx.propagate()
}

func parseElifStatement(ctx *parserContext) {
	ctx.goNextToken() // elif
	ctx.node = ctx.pushChildNode(NodeExpression)
	ctx.propagate()
	if ctx.atEnd() || !ctx.token().Is(SpecialColon) {
		ctx.pushError("colon expected here")
		ctx.goNextExpression()
	}
	ctx.node = ctx.node.PushChild(NodeBranchRoot, SourceRef{})
	ctx.nestingLevel++
	ctx.propagate()
}

func parseElseStatement(ctx *parserContext) {
	ctx.goNextToken() // else
	if ctx.atEnd() || !ctx.token().Is(SpecialColon) {
		ctx.pushError("colon expected here")
		ctx.goNextExpression()
	} else {
		ctx.goNextToken()
	}
	ctx.node = ctx.node.PushChild(NodeBranchRoot, SourceRef{})
	ctx.nestingLevel++
	ctx.propagate()
}

func parseWhileStatement(ctx *parserContext) {
	ctx.goNextToken() // while
	ctx.node = ctx.pushChildNode(NodeExpression)
	ctx.propagate()
	if ctx.atEnd() || !ctx.token().Is(SpecialColon) {
		ctx.pushError("colon expected here")
		ctx.goNextExpression()
	}
	ctx.node = ctx.node.PushChild(NodeBranchRoot, SourceRef{})
	ctx.nestingLevel++
	ctx.propagate()
}

func parseReturnStatement(ctx *parserContext) {
	ctx.goNextToken() // return
	if ctx.atEnd() || ctx.token().Is(SpecialEndOfExpression) {
		ctx.goParentNode()
		if !ctx.atEnd() {
			ctx.goNextToken()
		}
		return
	}
	curr := ctx.token()
	canStartExpr := curr.Type == TokenFloatingPointLiteral || curr.Type == TokenIdentifier ||
		curr.Type == TokenIntegerLiteral || curr.Type == TokenStringLiteral || curr.Is(OperatorLeftBrace) ||
		curr.Is(KeywordTrue) || curr.Is(KeywordFalse) || curr.Is(KeywordNone) || curr.Is(KeywordNot)
	if !canStartExpr {
		ctx.pushError("expression as function return value was expected")
		ctx.goNextExpression()
		return
	}
	ctx.node = ctx.pushChildNode(NodeExpression)
	ctx.propagate()
	ctx.goParentNode()
}

func parseVariableDeclaration(ctx *parserContext) {
	varName := ctx.token()
	ctx.goNextToken() // IDENT
	ctx.goNextToken() // :
	varType := ctx.token()

	node := ctx.pushChildNode(NodeTypeName)
	node.Value = TypeValue(ctx.types.TypeId(varType))
	isListType := varType.Is(KeywordList)

	ctx.goNextToken() // TYPENAME
	if isListType {
		if ctx.atEnd() || !ctx.token().Is(OperatorRectLeftBrace) {
			ctx.pushError("malformed list declaration")
		} else {
			ctx.goNextToken() // [
		}
		elemType := ctx.token()
		listTypeNode := node.PushChild(NodeTypeName, elemType.Ref)
		listTypeNode.Value = TypeValue(ctx.types.TypeId(elemType))
		ctx.goNextToken() // element type
		if ctx.atEnd() || !ctx.token().Is(OperatorRectRightBrace) {
			ctx.pushError("malformed list declaration")
		} else {
			ctx.goNextToken() // ]
		}
	}

	nameNode := ctx.node.PushChild(NodeVariableName, varName.Ref)
	nameNode.Value = StringValue(varName.Literal)

	if ctx.atEnd() {
		ctx.goParentNode()
		return
	}
	switch {
	case ctx.token().Is(SpecialEndOfExpression):
		ctx.goNextToken()
		ctx.goParentNode()
	case ctx.token().Is(OperatorAssign):
		ctx.goNextToken()
		exprNode := ctx.pushChildNode(NodeExpression)
		if isListType {
			ctx.node = exprNode.PushChild(NodeListStatement, exprNode.Ref)
			ctx.propagate()
			ctx.goParentNode() // Expression -> VariableDeclaration
		} else {
			ctx.node = exprNode
			ctx.propagate()
		}
		ctx.goParentNode() // VariableDeclaration -> enclosing BranchRoot
	default:
		ctx.pushError("definition expression or line break was expected")
		ctx.goNextExpression()
		ctx.goParentNode()
	}
}
