package parser

import (
	"strings"

	"github.com/go-sqltoast/sqltoast/ast"
	"github.com/go-sqltoast/sqltoast/token"
)

// parseColumnReference parses a (possibly qualified) column name, keeping
// each dot-separated part as its own Identifier so callers can inspect
// correlation-name qualification without re-splitting strings.
func (ctx *Context) parseColumnReference() (*ast.ColumnReference, bool) {
	id, ok := ctx.parseIdentifier()
	if !ok {
		return nil, false
	}
	segments := strings.Split(id.Name, ".")
	parts := make([]*ast.Identifier, len(segments))
	for i, seg := range segments {
		parts[i] = &ast.Identifier{SpanVal: id.SpanVal, Name: seg}
	}
	return &ast.ColumnReference{SpanVal: id.SpanVal, Parts: parts}, true
}

// parseRowValueConstructorElement parses a single value_expression | NULL
// | DEFAULT, per parse_row_value_constructor_element.
func (ctx *Context) parseRowValueConstructorElement() (ast.RowValueConstructorElement, bool) {
	if ctx.has(token.NULL) {
		start := ctx.cur.Span
		if !ctx.advance2() {
			return nil, false
		}
		return &ast.NullValue{SpanVal: start}, true
	}
	if ctx.has(token.DEFAULT) {
		start := ctx.cur.Span
		if !ctx.advance2() {
			return nil, false
		}
		return &ast.DefaultValue{SpanVal: start}, true
	}
	ve, ok := ctx.parseValueExpression()
	if !ok {
		return nil, false
	}
	return ve.(ast.RowValueConstructorElement), true
}

// parseRowValueConstructor parses either a single element or a
// parenthesized comma-delimited list of elements, per
// parse_row_value_constructor.
func (ctx *Context) parseRowValueConstructor() (*ast.RowValueConstructor, bool) {
	start := ctx.cur.Span
	if ctx.has(token.LPAREN) {
		m := ctx.mark()
		if !ctx.advance2() {
			return nil, false
		}
		first, ok := ctx.parseRowValueConstructorElement()
		if ok && ctx.has(token.COMMA) {
			elems := []ast.RowValueConstructorElement{first}
			for ctx.has(token.COMMA) {
				if !ctx.advance2() {
					return nil, false
				}
				el, ok := ctx.parseRowValueConstructorElement()
				if !ok {
					return nil, false
				}
				elems = append(elems, el)
			}
			if !ctx.expect(token.RPAREN) {
				return nil, false
			}
			return &ast.RowValueConstructor{SpanVal: spanTo(start, ctx.cur.Span), Elements: elems}, true
		}
		// Not a comma-delimited list: rewind and fall through to treating
		// the whole parenthesized thing as a single value expression
		// (e.g. a parenthesized numeric expression).
		ctx.reset(m)
	}
	el, ok := ctx.parseRowValueConstructorElement()
	if !ok {
		return nil, false
	}
	return &ast.RowValueConstructor{SpanVal: el.Span(), Elements: []ast.RowValueConstructorElement{el}}, true
}

// parseValueExpression tries numeric, then character, then datetime value
// expressions in turn, per parse_value_expression. A numeric parse that is
// followed by || is rewound and retried as a character value expression.
// There is no separate interval value expression attempt.
func (ctx *Context) parseValueExpression() (ast.ValueExpression, bool) {
	m := ctx.mark()
	if ve, ok := ctx.parseNumericValueExpression(); ok && !ctx.has(token.CONCATENATION) {
		return ve, true
	}
	if ctx.errSet {
		return nil, false
	}
	ctx.reset(m)
	if ve, ok := ctx.parseCharacterValueExpression(); ok {
		return ve, true
	}
	if ctx.errSet {
		return nil, false
	}
	ctx.reset(m)
	if ve, ok := ctx.parseDatetimeValueExpression(); ok {
		return ve, true
	}
	if ctx.errSet {
		return nil, false
	}
	ctx.reset(m)
	ctx.syntaxErrorf("Expected value expression but found %s.", ctx.cur.Symbol)
	return nil, false
}

// parseValueExpressionPrimary parses the common leaf of every value
// expression family: a literal, a column reference, a set function, a
// CASE expression, or a parenthesized value expression.
func (ctx *Context) parseValueExpressionPrimary() (ast.ValueExpression, bool) {
	start := ctx.cur.Span
	switch {
	case ctx.cur.Symbol.IsLiteral():
		tok := ctx.cur
		if !ctx.advance2() {
			return nil, false
		}
		return &ast.Literal{SpanVal: tok.Span, Symbol: tok.Symbol, Text: tok.Lexeme(ctx.src())}, true
	case ctx.hasAny(token.COUNT, token.AVG, token.MAX, token.MIN, token.SUM):
		return ctx.parseSetFunction()
	case ctx.has(token.CASE):
		return ctx.parseCaseExpression()
	case ctx.has(token.LPAREN):
		if !ctx.advance2() {
			return nil, false
		}
		ve, ok := ctx.parseValueExpression()
		if !ok {
			return nil, false
		}
		if !ctx.expect(token.RPAREN) {
			return nil, false
		}
		return ve, true
	case ctx.has(token.IDENTIFIER):
		col, ok := ctx.parseColumnReference()
		if !ok {
			return nil, false
		}
		return col, true
	}
	ctx.syntaxErrorf("Expected value expression but found %s.", ctx.cur.Symbol)
	_ = start
	return nil, false
}

func (ctx *Context) parseSetFunction() (ast.ValueExpression, bool) {
	start := ctx.cur.Span
	var name ast.SetFunctionName
	switch ctx.cur.Symbol {
	case token.COUNT:
		name = ast.SetFunctionCount
	case token.AVG:
		name = ast.SetFunctionAvg
	case token.MAX:
		name = ast.SetFunctionMax
	case token.MIN:
		name = ast.SetFunctionMin
	case token.SUM:
		name = ast.SetFunctionSum
	}
	if !ctx.advance2() {
		return nil, false
	}
	if !ctx.expect(token.LPAREN) {
		return nil, false
	}
	if name == ast.SetFunctionCount && ctx.has(token.ASTERISK) {
		if !ctx.advance2() {
			return nil, false
		}
		if !ctx.expect(token.RPAREN) {
			return nil, false
		}
		return &ast.SetFunction{SpanVal: spanTo(start, ctx.cur.Span), Name: name, Star: true}, true
	}
	distinct := false
	if ctx.hasAny(token.DISTINCT, token.ALL) {
		distinct = ctx.has(token.DISTINCT)
		if !ctx.advance2() {
			return nil, false
		}
	}
	arg, ok := ctx.parseValueExpression()
	if !ok {
		return nil, false
	}
	if !ctx.expect(token.RPAREN) {
		return nil, false
	}
	return &ast.SetFunction{SpanVal: spanTo(start, ctx.cur.Span), Name: name, Distinct: distinct, Argument: arg}, true
}

func (ctx *Context) parseCaseExpression() (ast.ValueExpression, bool) {
	start := ctx.cur.Span
	if !ctx.advance2() { // consume CASE
		return nil, false
	}
	var operand ast.ValueExpression
	if !ctx.has(token.WHEN) {
		ve, ok := ctx.parseValueExpression()
		if !ok {
			return nil, false
		}
		operand = ve
	}
	var whens []ast.CaseWhenClause
	for ctx.has(token.WHEN) {
		if !ctx.advance2() {
			return nil, false
		}
		var cond ast.SearchCondition
		if operand != nil {
			right, ok := ctx.parseValueExpression()
			if !ok {
				return nil, false
			}
			cond = &ast.ComparisonPredicate{
				Op:    ast.CompEqual,
				Left:  &ast.RowValueConstructor{Elements: []ast.RowValueConstructorElement{operand.(ast.RowValueConstructorElement)}},
				Right: &ast.RowValueConstructor{Elements: []ast.RowValueConstructorElement{right.(ast.RowValueConstructorElement)}},
			}
		} else {
			sc, ok := ctx.parseSearchCondition()
			if !ok {
				return nil, false
			}
			cond = sc
		}
		if !ctx.expect(token.THEN) {
			return nil, false
		}
		result, ok := ctx.parseValueExpression()
		if !ok {
			return nil, false
		}
		whens = append(whens, ast.CaseWhenClause{Condition: cond, Result: result})
	}
	if len(whens) == 0 {
		ctx.syntaxErrorf("Expected WHEN but found %s.", ctx.cur.Symbol)
		return nil, false
	}
	var elseResult ast.ValueExpression
	if ctx.has(token.ELSE) {
		if !ctx.advance2() {
			return nil, false
		}
		e, ok := ctx.parseValueExpression()
		if !ok {
			return nil, false
		}
		elseResult = e
	}
	if !ctx.expect(token.END) {
		return nil, false
	}
	return &ast.CaseExpression{SpanVal: spanTo(start, ctx.cur.Span), Operand: operand, When: whens, Else: elseResult}, true
}

// parseNumericValueExpression left-folds a chain of terms joined by + or
// -, per parse_numeric_value_expression.
func (ctx *Context) parseNumericValueExpression() (ast.ValueExpression, bool) {
	left, ok := ctx.parseNumericTerm()
	if !ok {
		return nil, false
	}
	for !token.IsValueExpressionTerminator(ctx.cur.Symbol) && ctx.hasAny(token.PLUS, token.MINUS) {
		op := ast.OpAdd
		if ctx.has(token.MINUS) {
			op = ast.OpSubtract
		}
		if !ctx.advance2() {
			return nil, false
		}
		right, ok := ctx.parseNumericTerm()
		if !ok {
			return nil, false
		}
		left = &ast.BinaryValueExpression{SpanVal: spanTo(left.Span(), ctx.cur.Span), Op: op, Left: left, Right: right}
	}
	return left, true
}

// parseNumericTerm left-folds a chain of factors joined by * or /.
func (ctx *Context) parseNumericTerm() (ast.ValueExpression, bool) {
	left, ok := ctx.parseNumericFactor()
	if !ok {
		return nil, false
	}
	for !token.IsValueExpressionTerminator(ctx.cur.Symbol) && ctx.hasAny(token.ASTERISK, token.SOLIDUS) {
		op := ast.OpMultiply
		if ctx.has(token.SOLIDUS) {
			op = ast.OpDivide
		}
		if !ctx.advance2() {
			return nil, false
		}
		right, ok := ctx.parseNumericFactor()
		if !ok {
			return nil, false
		}
		left = &ast.BinaryValueExpression{SpanVal: spanTo(left.Span(), ctx.cur.Span), Op: op, Left: left, Right: right}
	}
	return left, true
}

// parseNumericFactor handles an optional leading sign on a primary.
func (ctx *Context) parseNumericFactor() (ast.ValueExpression, bool) {
	start := ctx.cur.Span
	if ctx.hasAny(token.PLUS, token.MINUS) {
		neg := ctx.has(token.MINUS)
		if !ctx.advance2() {
			return nil, false
		}
		operand, ok := ctx.parseValueExpressionPrimary()
		if !ok {
			return nil, false
		}
		return &ast.UnarySign{SpanVal: spanTo(start, ctx.cur.Span), Negative: neg, Operand: operand}, true
	}
	return ctx.parseValueExpressionPrimary()
}

// parseCharacterValueExpression left-folds a chain of factors joined by
// the concatenation operator ||, per parse_character_value_expression.
func (ctx *Context) parseCharacterValueExpression() (ast.ValueExpression, bool) {
	left, ok := ctx.parseValueExpressionPrimary()
	if !ok {
		return nil, false
	}
	for !token.IsValueExpressionTerminator(ctx.cur.Symbol) && ctx.has(token.CONCATENATION) {
		if !ctx.advance2() {
			return nil, false
		}
		right, ok := ctx.parseValueExpressionPrimary()
		if !ok {
			return nil, false
		}
		left = &ast.BinaryValueExpression{SpanVal: spanTo(left.Span(), ctx.cur.Span), Op: ast.OpConcatenate, Left: left, Right: right}
	}
	return left, true
}

// parseDatetimeValueExpression left-folds +/- against interval terms,
// per parse_datetime_value_expression. Since this parser does not model
// datetime arithmetic separately from numeric arithmetic at the AST
// level, a bare datetime primary (no trailing +/- interval) is accepted
// here and the fold only triggers when a continuation is actually
// present.
func (ctx *Context) parseDatetimeValueExpression() (ast.ValueExpression, bool) {
	left, ok := ctx.parseValueExpressionPrimary()
	if !ok {
		return nil, false
	}
	for !token.IsValueExpressionTerminator(ctx.cur.Symbol) && ctx.hasAny(token.PLUS, token.MINUS) {
		op := ast.OpAdd
		if ctx.has(token.MINUS) {
			op = ast.OpSubtract
		}
		if !ctx.advance2() {
			return nil, false
		}
		right, ok := ctx.parseValueExpressionPrimary()
		if !ok {
			return nil, false
		}
		left = &ast.BinaryValueExpression{SpanVal: spanTo(left.Span(), ctx.cur.Span), Op: op, Left: left, Right: right}
	}
	return left, true
}
