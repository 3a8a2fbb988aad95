package parser

import (
	"github.com/go-sqltoast/sqltoast/ast"
	"github.com/go-sqltoast/sqltoast/token"
)

// parseSearchCondition left-folds boolean terms joined by OR, per
// parse_search_condition.
func (ctx *Context) parseSearchCondition() (ast.SearchCondition, bool) {
	left, ok := ctx.parseBooleanTerm()
	if !ok {
		return nil, false
	}
	for ctx.has(token.OR) {
		if !ctx.advance2() {
			return nil, false
		}
		right, ok := ctx.parseBooleanTerm()
		if !ok {
			return nil, false
		}
		left = &ast.BooleanTerm{SpanVal: spanTo(left.Span(), ctx.cur.Span), Left: left, Right: right}
	}
	return left, true
}

// parseBooleanTerm left-folds boolean factors joined by AND, per
// parse_boolean_term.
func (ctx *Context) parseBooleanTerm() (ast.SearchCondition, bool) {
	left, ok := ctx.parseBooleanFactor()
	if !ok {
		return nil, false
	}
	for ctx.has(token.AND) {
		if !ctx.advance2() {
			return nil, false
		}
		right, ok := ctx.parseBooleanFactor()
		if !ok {
			return nil, false
		}
		left = &ast.BooleanTerm{SpanVal: spanTo(left.Span(), ctx.cur.Span), Left: left, Right: right}
	}
	return left, true
}

// parseBooleanFactor handles an optional leading NOT in front of a
// predicate or a parenthesized search condition, per parse_boolean_factor.
func (ctx *Context) parseBooleanFactor() (ast.SearchCondition, bool) {
	start := ctx.cur.Span
	negated := false
	if ctx.has(token.NOT) {
		negated = true
		if !ctx.advance2() {
			return nil, false
		}
	}
	if ctx.has(token.LPAREN) {
		m := ctx.mark()
		if !ctx.advance2() {
			return nil, false
		}
		inner, ok := ctx.parseSearchCondition()
		if ok && ctx.has(token.RPAREN) {
			if !ctx.advance2() {
				return nil, false
			}
			if !negated {
				return inner, true
			}
			return &ast.BooleanFactor{SpanVal: spanTo(start, ctx.cur.Span), Negated: true, Operand: inner}, true
		}
		if ctx.errSet {
			return nil, false
		}
		ctx.reset(m)
	}
	pred, ok := ctx.parsePredicate()
	if !ok {
		return nil, false
	}
	if !negated {
		return pred, true
	}
	return &ast.BooleanFactor{SpanVal: spanTo(start, ctx.cur.Span), Negated: true, Operand: pred}, true
}

// compOp peeks for a comparison operator, folding the two-token <= and >=
// spellings (LESS_THAN/GREATER_THAN immediately followed by EQUAL) since
// this grammar has no dedicated lexer symbols for them.
func (ctx *Context) compOp() (ast.ComparisonOp, int, bool) {
	switch {
	case ctx.has(token.EQUAL):
		return ast.CompEqual, 1, true
	case ctx.has(token.NOT_EQUAL):
		return ast.CompNotEqual, 1, true
	case ctx.hasSequence(token.LESS_THAN, token.EQUAL):
		return ast.CompLessOrEqual, 2, true
	case ctx.hasSequence(token.GREATER_THAN, token.EQUAL):
		return ast.CompGreaterOrEqual, 2, true
	case ctx.has(token.LESS_THAN):
		return ast.CompLessThan, 1, true
	case ctx.has(token.GREATER_THAN):
		return ast.CompGreaterThan, 1, true
	}
	return 0, 0, false
}

// parsePredicate parses a single predicate rooted at a row value
// constructor, dispatching on the operator that follows it.
func (ctx *Context) parsePredicate() (ast.Predicate, bool) {
	start := ctx.cur.Span
	if ctx.has(token.EXISTS) {
		if !ctx.advance2() {
			return nil, false
		}
		if !ctx.expect(token.LPAREN) {
			return nil, false
		}
		q, ok := ctx.parseQueryExpression()
		if !ok {
			return nil, false
		}
		if !ctx.expect(token.RPAREN) {
			return nil, false
		}
		return &ast.ExistsPredicate{SpanVal: spanTo(start, ctx.cur.Span), Query: q}, true
	}

	operand, ok := ctx.parseRowValueConstructor()
	if !ok {
		return nil, false
	}

	negated := false
	if ctx.has(token.NOT) {
		negated = true
		if !ctx.advance2() {
			return nil, false
		}
	}

	switch {
	case ctx.has(token.BETWEEN):
		if !ctx.advance2() {
			return nil, false
		}
		low, ok := ctx.parseRowValueConstructor()
		if !ok {
			return nil, false
		}
		if !ctx.expect(token.AND) {
			return nil, false
		}
		high, ok := ctx.parseRowValueConstructor()
		if !ok {
			return nil, false
		}
		return &ast.BetweenPredicate{SpanVal: spanTo(start, ctx.cur.Span), Negated: negated, Operand: operand, Low: low, High: high}, true

	case ctx.has(token.LIKE):
		if !ctx.advance2() {
			return nil, false
		}
		pattern, ok := ctx.parseRowValueConstructor()
		if !ok {
			return nil, false
		}
		var escape *ast.RowValueConstructor
		if ctx.has(token.ESCAPE) {
			if !ctx.advance2() {
				return nil, false
			}
			e, ok := ctx.parseRowValueConstructor()
			if !ok {
				return nil, false
			}
			escape = e
		}
		return &ast.LikePredicate{SpanVal: spanTo(start, ctx.cur.Span), Negated: negated, Operand: operand, Pattern: pattern, Escape: escape}, true

	case ctx.has(token.IN):
		if !ctx.advance2() {
			return nil, false
		}
		if !ctx.expect(token.LPAREN) {
			return nil, false
		}
		if ctx.hasAny(token.SELECT) {
			q, ok := ctx.parseQueryExpression()
			if !ok {
				return nil, false
			}
			if !ctx.expect(token.RPAREN) {
				return nil, false
			}
			values := &ast.InPredicateValues{SpanVal: spanTo(start, ctx.cur.Span), Subquery: q}
			return &ast.InPredicate{SpanVal: spanTo(start, ctx.cur.Span), Negated: negated, Operand: operand, Values: values}, true
		}
		var list []*ast.RowValueConstructor
		for {
			v, ok := ctx.parseRowValueConstructor()
			if !ok {
				return nil, false
			}
			list = append(list, v)
			if !ctx.has(token.COMMA) {
				break
			}
			if !ctx.advance2() {
				return nil, false
			}
		}
		if !ctx.expect(token.RPAREN) {
			return nil, false
		}
		values := &ast.InPredicateValues{SpanVal: spanTo(start, ctx.cur.Span), Values: list}
		return &ast.InPredicate{SpanVal: spanTo(start, ctx.cur.Span), Negated: negated, Operand: operand, Values: values}, true

	case ctx.has(token.IS):
		if !ctx.advance2() {
			return nil, false
		}
		isNegated := false
		if ctx.has(token.NOT) {
			isNegated = true
			if !ctx.advance2() {
				return nil, false
			}
		}
		if !ctx.expect(token.NULL) {
			return nil, false
		}
		return &ast.NullPredicate{SpanVal: spanTo(start, ctx.cur.Span), Negated: isNegated, Operand: operand}, true
	}

	if negated {
		ctx.syntaxErrorf("Expected BETWEEN, LIKE, or IN after NOT but found %s.", ctx.cur.Symbol)
		return nil, false
	}

	op, width, ok := ctx.compOp()
	if !ok {
		ctx.syntaxErrorf("Expected comparison operator but found %s.", ctx.cur.Symbol)
		return nil, false
	}
	for i := 0; i < width; i++ {
		if !ctx.advance2() {
			return nil, false
		}
	}
	right, ok := ctx.parseRowValueConstructor()
	if !ok {
		return nil, false
	}
	return &ast.ComparisonPredicate{SpanVal: spanTo(start, ctx.cur.Span), Op: op, Left: operand, Right: right}, true
}
