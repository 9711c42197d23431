package frontend

import (
	"math"
	"strconv"
)

// binaryOperatorPriority gives each binary operation its place in the fixed
// precedence table: a LOWER number binds tighter. Mult/Div sit at the top,
// Assign at the bottom, and every operator is left-associative — there is no
// right-associative construct in the language this parses.
var binaryOperatorPriority = map[BinaryOperation]int{
	BinaryMult:         10,
	BinaryDiv:          10,
	BinaryMod:          10,
	BinaryAdd:          20,
	BinarySub:          20,
	BinaryLess:         30,
	BinaryGreater:      30,
	BinaryLessEqual:    30,
	BinaryGreaterEqual: 30,
	BinaryEqual:        35,
	BinaryNotEqual:     35,
	BinaryAnd:          40,
	BinaryOr:           50,
	BinaryAssign:       60,
}

// noMorePriority is a sentinel looser than every real operator, used as the
// starting bound for a fresh expression.
const noMorePriority = math.MaxInt32

// peekBinaryOp classifies the current token as a binary operator, if it is
// one. Keyword `and`/`or` count alongside the symbolic operators.
func (ctx *parserContext) peekBinaryOp() (BinaryOperation, bool) {
	if ctx.atEnd() {
		return BinaryUnknown, false
	}
	tok := ctx.token()
	if tok.Type == TokenOperator {
		switch tok.Operator {
		case OperatorAdd:
			return BinaryAdd, true
		case OperatorSub:
			return BinarySub, true
		case OperatorMult:
			return BinaryMult, true
		case OperatorDiv:
			return BinaryDiv, true
		case OperatorMod:
			return BinaryMod, true
		case OperatorEqual:
			return BinaryEqual, true
		case OperatorNotEqual:
			return BinaryNotEqual, true
		case OperatorLess:
			return BinaryLess, true
		case OperatorGreater:
			return BinaryGreater, true
		case OperatorLessEqual:
			return BinaryLessEqual, true
		case OperatorGreaterEqual:
			return BinaryGreaterEqual, true
		case OperatorAssign:
			return BinaryAssign, true
		}
	}
	if tok.Type == TokenKeyword {
		switch tok.Keyword {
		case KeywordAnd:
			return BinaryAnd, true
		case KeywordOr:
			return BinaryOr, true
		}
	}
	return BinaryUnknown, false
}

// isExpressionStopToken reports whether tok can never continue an
// expression at the top level of the current subparser call: every
// subparser that descends into an expression is responsible for knowing
// which of these terminates ITS particular expression (EndOfExpression for
// a statement, Colon for an if/while condition, a matching close-brace for
// an argument or accessor), but none of them is ever a valid operand or
// operator, so parsePrimary can universally refuse to consume any of them.
func isExpressionStopToken(tok Token) bool {
	return tok.Is(SpecialEndOfExpression) || tok.Is(SpecialColon) ||
		tok.Is(OperatorComma) || tok.Is(OperatorRightBrace) || tok.Is(OperatorRectRightBrace)
}

// attachChildren appends already-built subtrees, in order, as children of
// parent. Node.AdoptChild only prepends one subtree at a time, so the
// children are adopted back-to-front, each push landing one position ahead
// of the last, which restores the caller's original left-to-right order.
func attachChildren(parent *Node, children ...*Node) {
	for i := len(children) - 1; i >= 0; i-- {
		parent.AdoptChild(children[i])
	}
}

// parseExpression is the Expression node's subparser. It builds the
// expression rooted at the current token via climbExpression and attaches
// it as the node's single child, then returns control to the node's own
// parent — the convention every statement-level subparser relies on.
func parseExpression(ctx *parserContext) {
	exprNode := ctx.node
	root := ctx.climbExpression(noMorePriority)
	if root != nil {
		attachChildren(exprNode, root)
	}
	ctx.node = exprNode
	ctx.goParentNode()
}

// climbExpression is precedence climbing adapted to the table's inverted
// numbering (lower number binds tighter): a binary operator is folded into
// the running left-hand side as long as its priority is no looser than
// maxPriority, and its own right-hand operand is climbed with a strictly
// tighter bound so that a following operator of equal or looser priority is
// left for the enclosing call — giving every operator left-associativity
// without a separate associativity table.
func (ctx *parserContext) climbExpression(maxPriority int) *Node {
	left := ctx.parsePrimary()
	if left == nil {
		return nil
	}
	for {
		op, ok := ctx.peekBinaryOp()
		if !ok {
			return left
		}
		prio := binaryOperatorPriority[op]
		if prio > maxPriority {
			return left
		}
		opRef := ctx.token().Ref
		ctx.goNextToken()
		right := ctx.climbExpression(prio - 1)
		if right == nil {
			ctx.pushError("expression expected after operator")
			return left
		}
		node := NewNode(NodeBinaryOperation, opRef)
		node.Value = BinaryOpValue(op)
		attachChildren(node, left, right)
		left = node
	}
}

// parsePrimary consumes one operand: a literal, a variable reference, a
// function call, a list accessor, a parenthesized subexpression, or a
// `not`-prefixed operand. Returns nil (and, unless already at a legitimate
// stop token, pushes a diagnostic) if no operand can start here.
func (ctx *parserContext) parsePrimary() *Node {
	if ctx.atEnd() {
		return nil
	}
	tok := ctx.token()
	if isExpressionStopToken(tok) {
		return nil
	}

	switch {
	case tok.Type == TokenIntegerLiteral:
		ctx.goNextToken()
		node := NewNode(NodeIntegerLiteralValue, tok.Ref)
		node.Value = IntValue(parseIntLiteral(ctx, tok))
		return node

	case tok.Type == TokenFloatingPointLiteral:
		ctx.goNextToken()
		node := NewNode(NodeFloatingPointLiteralValue, tok.Ref)
		node.Value = FloatValue(parseFloatLiteral(ctx, tok))
		return node

	case tok.Type == TokenStringLiteral:
		ctx.goNextToken()
		node := NewNode(NodeStringLiteralValue, tok.Ref)
		node.Value = StringValue(tok.Literal)
		return node

	case tok.Is(KeywordTrue), tok.Is(KeywordFalse):
		ctx.goNextToken()
		node := NewNode(NodeBooleanLiteralValue, tok.Ref)
		node.Value = BoolValue(tok.Is(KeywordTrue))
		return node

	case tok.Is(KeywordNone):
		ctx.goNextToken()
		return NewNode(NodeNoneLiteralValue, tok.Ref)

	case tok.Is(KeywordNot):
		ctx.goNextToken()
		operand := ctx.parsePrimary()
		if operand == nil {
			ctx.pushError("expression expected after 'not'")
			return nil
		}
		node := NewNode(NodeUnaryOperation, tok.Ref)
		node.Value = UnaryOpValue(UnaryNot)
		attachChildren(node, operand)
		return node

	case tok.Is(OperatorLeftBrace):
		ctx.goNextToken()
		inner := ctx.climbExpression(noMorePriority)
		if ctx.atEnd() || !ctx.token().Is(OperatorRightBrace) {
			ctx.pushError("matching ')' was expected")
		} else {
			ctx.goNextToken()
		}
		return inner

	case tok.Type == TokenIdentifier:
		return ctx.parseIdentifierPrimary(tok)

	default:
		ctx.pushError("expression expected")
		return nil
	}
}

// parseIdentifierPrimary disambiguates a bare variable reference from a
// function call or a list accessor by looking one token past the
// identifier, consuming whichever shape is present.
func (ctx *parserContext) parseIdentifierPrimary(tok Token) *Node {
	ctx.goNextToken() // identifier
	next, hasNext := ctx.peekAt(0)

	switch {
	case hasNext && next.Is(OperatorLeftBrace):
		return ctx.parseFunctionCall(tok)
	case hasNext && next.Is(OperatorRectLeftBrace):
		return ctx.parseListAccessor(tok)
	default:
		node := NewNode(NodeVariableName, tok.Ref)
		node.Value = StringValue(tok.Literal)
		return node
	}
}

// parseFunctionCall consumes `( arg, arg, ... )` after the function name
// token has already been identified (but not yet consumed past the '(').
func (ctx *parserContext) parseFunctionCall(name Token) *Node {
	call := NewNode(NodeFunctionCall, name.Ref)
	call.Value = StringValue(name.Literal)
	ctx.goNextToken() // (

	var args []*Node
	for !ctx.atEnd() && !ctx.token().Is(OperatorRightBrace) {
		arg := ctx.climbExpression(noMorePriority)
		if arg == nil {
			ctx.pushError("function argument expression was expected")
			for !ctx.atEnd() && !ctx.token().Is(OperatorRightBrace) && !ctx.token().Is(SpecialColon) {
				ctx.goNextToken()
			}
			break
		}
		args = append(args, arg)
		if !ctx.atEnd() && ctx.token().Is(OperatorComma) {
			ctx.goNextToken()
			continue
		}
		break
	}
	attachChildren(call, args...)
	if ctx.atEnd() || !ctx.token().Is(OperatorRightBrace) {
		ctx.pushError("matching ')' was expected in function call")
	} else {
		ctx.goNextToken()
	}
	return call
}

// parseListAccessor consumes `[ index ]` after the list-valued variable
// name token has already been identified (but not yet consumed past '[').
func (ctx *parserContext) parseListAccessor(name Token) *Node {
	accessor := NewNode(NodeListAccessor, name.Ref)
	accessor.Value = StringValue(name.Literal)
	ctx.goNextToken() // [

	index := ctx.climbExpression(noMorePriority)
	if index == nil {
		ctx.pushError("list index expression was expected")
	} else {
		attachChildren(accessor, index)
	}
	if ctx.atEnd() || !ctx.token().Is(OperatorRectRightBrace) {
		ctx.pushError("matching ']' was expected in list accessor")
	} else {
		ctx.goNextToken()
	}
	return accessor
}

// parseListStatement is the ListStatement node's subparser: a bracketed,
// comma-separated literal `[ expr, expr, ... ]` used to initialize a
// list-typed variable declaration. Each element is wrapped in its own
// Expression node, matching how every other expression-shaped position in
// the tree is represented.
func parseListStatement(ctx *parserContext) {
	node := ctx.node
	if ctx.atEnd() || !ctx.token().Is(OperatorRectLeftBrace) {
		ctx.pushError("'[' was expected to start a list literal")
		ctx.node = node
		ctx.goParentNode()
		return
	}
	ctx.goNextToken() // [

	// Collected rather than attached one at a time: attachChildren prepends
	// through AdoptChild, so calling it once per element inside the loop
	// would reverse the elements' source order.
	var elems []*Node
	for !ctx.atEnd() && !ctx.token().Is(OperatorRectRightBrace) {
		elemRef := ctx.token().Ref
		elem := ctx.climbExpression(noMorePriority)
		if elem == nil {
			ctx.pushError("list element expression was expected")
			for !ctx.atEnd() && !ctx.token().Is(OperatorRectRightBrace) && !ctx.token().Is(SpecialEndOfExpression) {
				ctx.goNextToken()
			}
			break
		}
		exprNode := NewNode(NodeExpression, elemRef)
		attachChildren(exprNode, elem)
		elems = append(elems, exprNode)
		if !ctx.atEnd() && ctx.token().Is(OperatorComma) {
			ctx.goNextToken()
			continue
		}
		break
	}
	attachChildren(node, elems...)
	if ctx.atEnd() || !ctx.token().Is(OperatorRectRightBrace) {
		ctx.pushError("matching ']' was expected to close a list literal")
	} else {
		ctx.goNextToken()
	}
	ctx.node = node
	ctx.goParentNode()
}

// parseIntLiteral converts an integer literal's text to int64. An
// out-of-range literal is reported as a diagnostic rather than silently
// wrapping or truncating, and the literal is clamped to the nearest
// representable bound so parsing can continue.
func parseIntLiteral(ctx *parserContext, tok Token) int64 {
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err == nil {
		return v
	}
	ctx.errors.Push(tok.Ref, "integer literal %q is out of range", tok.Literal)
	if len(tok.Literal) > 0 && tok.Literal[0] == '-' {
		return math.MinInt64
	}
	return math.MaxInt64
}

func parseFloatLiteral(ctx *parserContext, tok Token) float64 {
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		ctx.errors.Push(tok.Ref, "floating point literal %q is invalid", tok.Literal)
		return 0
	}
	return v
}
