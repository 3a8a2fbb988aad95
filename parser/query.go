package parser

import (
	"github.com/go-sqltoast/sqltoast/ast"
	"github.com/go-sqltoast/sqltoast/token"
)

// parseQueryExpression parses a full <query expression>: a left-folded
// chain of non-join query terms joined by UNION/EXCEPT. A joined table is
// not accepted here; joins are parsed only as FROM-list table references.
// Neither has a surviving implementation in the source this parser was
// ported from; the shape here follows the published SQL-92 grammar
// directly. See DESIGN.md.
func (ctx *Context) parseQueryExpression() (ast.QueryExpression, bool) {
	left, ok := ctx.parseNonJoinQueryTerm()
	if !ok {
		return nil, false
	}
	for ctx.hasAny(token.UNION, token.EXCEPT) {
		op := ast.SetOperatorUnion
		if ctx.has(token.EXCEPT) {
			op = ast.SetOperatorExcept
		}
		if !ctx.advance2() {
			return nil, false
		}
		all := false
		if ctx.has(token.ALL) {
			all = true
			if !ctx.advance2() {
				return nil, false
			}
		}
		right, ok := ctx.parseNonJoinQueryTerm()
		if !ok {
			return nil, false
		}
		left = &ast.SetOperationQueryExpression{SpanVal: spanTo(left.Span(), ctx.cur.Span), Operator: op, All: all, Left: left, Right: right}
	}
	return left, true
}

// parseNonJoinQueryTerm left-folds INTERSECT, which binds tighter than
// UNION/EXCEPT.
func (ctx *Context) parseNonJoinQueryTerm() (ast.QueryExpression, bool) {
	left, ok := ctx.parseNonJoinQueryPrimary()
	if !ok {
		return nil, false
	}
	for ctx.has(token.INTERSECT) {
		if !ctx.advance2() {
			return nil, false
		}
		all := false
		if ctx.has(token.ALL) {
			all = true
			if !ctx.advance2() {
				return nil, false
			}
		}
		right, ok := ctx.parseNonJoinQueryPrimary()
		if !ok {
			return nil, false
		}
		left = &ast.SetOperationQueryExpression{SpanVal: spanTo(left.Span(), ctx.cur.Span), Operator: ast.SetOperatorIntersect, All: all, Left: left, Right: right}
	}
	return left, true
}

// parseNonJoinQueryPrimary parses a query specification, a VALUES table
// value constructor, a TABLE <name>, or a parenthesized query expression.
func (ctx *Context) parseNonJoinQueryPrimary() (ast.QueryExpression, bool) {
	start := ctx.cur.Span
	switch {
	case ctx.has(token.SELECT):
		return ctx.parseQuerySpecification()
	case ctx.has(token.VALUES):
		if !ctx.advance2() {
			return nil, false
		}
		var rows []*ast.RowValueConstructor
		for {
			r, ok := ctx.parseRowValueConstructor()
			if !ok {
				return nil, false
			}
			rows = append(rows, r)
			if !ctx.has(token.COMMA) {
				break
			}
			if !ctx.advance2() {
				return nil, false
			}
		}
		return &ast.TableValueConstructor{SpanVal: spanTo(start, ctx.cur.Span), Rows: rows}, true
	case ctx.has(token.TABLE):
		if !ctx.advance2() {
			return nil, false
		}
		name, ok := ctx.parseIdentifier()
		if !ok {
			return nil, false
		}
		return &ast.ExplicitTable{SpanVal: spanTo(start, ctx.cur.Span), Name: name}, true
	case ctx.has(token.LPAREN):
		if !ctx.advance2() {
			return nil, false
		}
		q, ok := ctx.parseQueryExpression()
		if !ok {
			return nil, false
		}
		if !ctx.expect(token.RPAREN) {
			return nil, false
		}
		return &ast.SubqueryExpression{SpanVal: spanTo(start, ctx.cur.Span), Query: q}, true
	}
	ctx.syntaxErrorf("Expected query expression but found %s.", ctx.cur.Symbol)
	return nil, false
}

// parseQuerySpecification parses SELECT [DISTINCT|ALL] <select list>
// <table expression>.
func (ctx *Context) parseQuerySpecification() (ast.QueryExpression, bool) {
	start := ctx.cur.Span
	if !ctx.advance2() { // consume SELECT
		return nil, false
	}
	distinct := false
	if ctx.hasAny(token.DISTINCT, token.ALL) {
		distinct = ctx.has(token.DISTINCT)
		if !ctx.advance2() {
			return nil, false
		}
	}
	var selected []ast.DerivedColumn
	for {
		col, ok := ctx.parseDerivedColumn()
		if !ok {
			return nil, false
		}
		selected = append(selected, col)
		if !ctx.has(token.COMMA) {
			break
		}
		if !ctx.advance2() {
			return nil, false
		}
	}
	tableExpr, ok := ctx.parseTableExpression()
	if !ok {
		return nil, false
	}
	return &ast.QuerySpecification{SpanVal: spanTo(start, ctx.cur.Span), Distinct: distinct, Selected: selected, TableExpr: tableExpr}, true
}

func (ctx *Context) parseDerivedColumn() (ast.DerivedColumn, bool) {
	start := ctx.cur.Span
	if ctx.has(token.ASTERISK) {
		if !ctx.advance2() {
			return ast.DerivedColumn{}, false
		}
		return ast.DerivedColumn{SpanVal: spanTo(start, ctx.cur.Span), Star: true}, true
	}
	ve, ok := ctx.parseValueExpression()
	if !ok {
		return ast.DerivedColumn{}, false
	}
	var alias *ast.Identifier
	if ctx.has(token.AS) {
		if !ctx.advance2() {
			return ast.DerivedColumn{}, false
		}
		id, ok := ctx.parseIdentifier()
		if !ok {
			return ast.DerivedColumn{}, false
		}
		alias = id
	} else if ctx.has(token.IDENTIFIER) {
		id, ok := ctx.parseIdentifier()
		if !ok {
			return ast.DerivedColumn{}, false
		}
		alias = id
	}
	return ast.DerivedColumn{SpanVal: spanTo(start, ctx.cur.Span), Expression: ve, Alias: alias}, true
}

// parseTableExpression parses FROM <table reference list> [WHERE ...]
// [GROUP BY ...] [HAVING ...].
func (ctx *Context) parseTableExpression() (*ast.TableExpression, bool) {
	start := ctx.cur.Span
	if !ctx.expect(token.FROM) {
		return nil, false
	}
	var tables []ast.TableReference
	for {
		t, ok := ctx.parseTableReference()
		if !ok {
			return nil, false
		}
		tables = append(tables, t)
		if !ctx.has(token.COMMA) {
			break
		}
		if !ctx.advance2() {
			return nil, false
		}
	}
	var where ast.SearchCondition
	if ctx.has(token.WHERE) {
		if !ctx.advance2() {
			return nil, false
		}
		w, ok := ctx.parseSearchCondition()
		if !ok {
			return nil, false
		}
		where = w
	}
	var groupBy []ast.GroupingColumnReference
	if ctx.hasSequence(token.GROUP) {
		if !ctx.expectSequence(token.GROUP) {
			return nil, false
		}
		if !ctx.expectSequence(token.BY) {
			return nil, false
		}
		for {
			col, ok := ctx.parseColumnReference()
			if !ok {
				return nil, false
			}
			groupBy = append(groupBy, ast.GroupingColumnReference{Column: col})
			if !ctx.has(token.COMMA) {
				break
			}
			if !ctx.advance2() {
				return nil, false
			}
		}
	}
	var having ast.SearchCondition
	if ctx.has(token.HAVING) {
		if !ctx.advance2() {
			return nil, false
		}
		h, ok := ctx.parseSearchCondition()
		if !ok {
			return nil, false
		}
		having = h
	}
	return &ast.TableExpression{SpanVal: spanTo(start, ctx.cur.Span), ReferencedTables: tables, Where: where, GroupBy: groupBy, Having: having}, true
}

// parseTableReference parses a single FROM-list element: a base table, a
// derived table, or a chain of joins, left-folded so "a JOIN b JOIN c"
// associates left to right.
func (ctx *Context) parseTableReference() (ast.TableReference, bool) {
	left, ok := ctx.parseTablePrimary()
	if !ok {
		return nil, false
	}
	for {
		joinType, matched, err := ctx.peekJoinType()
		if err {
			return nil, false
		}
		if !matched {
			break
		}
		start := left.Span()
		if joinType == ast.JoinCross {
			if !ctx.expectSequence(token.CROSS) {
				return nil, false
			}
			if !ctx.expect(token.JOIN) {
				return nil, false
			}
		} else if joinType == ast.JoinNatural {
			if !ctx.expectSequence(token.NATURAL) {
				return nil, false
			}
			if !ctx.expect(token.JOIN) {
				return nil, false
			}
		} else {
			if err := ctx.consumeJoinKeyword(joinType); err {
				return nil, false
			}
			if !ctx.expect(token.JOIN) {
				return nil, false
			}
		}
		right, ok := ctx.parseTablePrimary()
		if !ok {
			return nil, false
		}
		var spec *ast.JoinSpecification
		if joinType != ast.JoinCross && joinType != ast.JoinNatural {
			if ctx.has(token.ON) {
				if !ctx.advance2() {
					return nil, false
				}
				cond, ok := ctx.parseSearchCondition()
				if !ok {
					return nil, false
				}
				spec = &ast.JoinSpecification{Condition: cond}
			} else if ctx.has(token.USING) {
				if !ctx.advance2() {
					return nil, false
				}
				cols, ok := ctx.parseIdentifierList()
				if !ok {
					return nil, false
				}
				spec = &ast.JoinSpecification{NamedColumns: cols}
			} else {
				ctx.syntaxErrorf("Expected ON or USING but found %s.", ctx.cur.Symbol)
				return nil, false
			}
		}
		joined := &ast.JoinedTable{SpanVal: spanTo(start, ctx.cur.Span), Type: joinType, Left: left, Right: right, Spec: spec}
		left = &ast.JoinedTableReference{Joined: joined}
	}
	return left, true
}

// peekJoinType reports which, if any, join keyword sequence starts the
// current lookahead, without consuming anything.
func (ctx *Context) peekJoinType() (ast.JoinType, bool, bool) {
	switch {
	case ctx.hasSequence(token.CROSS, token.JOIN):
		return ast.JoinCross, true, false
	case ctx.hasSequence(token.NATURAL, token.JOIN):
		return ast.JoinNatural, true, false
	case ctx.hasSequence(token.INNER, token.JOIN):
		return ast.JoinInner, true, false
	case ctx.hasSequence(token.LEFT, token.JOIN):
		return ast.JoinLeft, true, false
	case ctx.hasSequence(token.LEFT, token.OUTER, token.JOIN):
		return ast.JoinLeft, true, false
	case ctx.hasSequence(token.RIGHT, token.JOIN):
		return ast.JoinRight, true, false
	case ctx.hasSequence(token.RIGHT, token.OUTER, token.JOIN):
		return ast.JoinRight, true, false
	case ctx.hasSequence(token.FULL, token.JOIN):
		return ast.JoinFull, true, false
	case ctx.hasSequence(token.FULL, token.OUTER, token.JOIN):
		return ast.JoinFull, true, false
	case ctx.has(token.JOIN):
		return ast.JoinInner, true, false
	}
	return 0, false, false
}

// consumeJoinKeyword advances past the leading keyword(s) of a non-CROSS,
// non-NATURAL join, leaving the trailing JOIN keyword for the caller.
func (ctx *Context) consumeJoinKeyword(jt ast.JoinType) bool {
	switch {
	case ctx.hasSequence(token.LEFT, token.OUTER):
		return !ctx.expectSequence(token.LEFT, token.OUTER)
	case ctx.hasSequence(token.RIGHT, token.OUTER):
		return !ctx.expectSequence(token.RIGHT, token.OUTER)
	case ctx.hasSequence(token.FULL, token.OUTER):
		return !ctx.expectSequence(token.FULL, token.OUTER)
	case ctx.has(token.LEFT):
		return !ctx.expectSequence(token.LEFT)
	case ctx.has(token.RIGHT):
		return !ctx.expectSequence(token.RIGHT)
	case ctx.has(token.FULL):
		return !ctx.expectSequence(token.FULL)
	case ctx.has(token.INNER):
		return !ctx.expectSequence(token.INNER)
	case ctx.has(token.JOIN):
		return false
	}
	return false
}

// parseTablePrimary parses a base table reference or a parenthesized
// derived table/joined table.
func (ctx *Context) parseTablePrimary() (ast.TableReference, bool) {
	start := ctx.cur.Span
	if ctx.has(token.LPAREN) {
		m := ctx.mark()
		if !ctx.advance2() {
			return nil, false
		}
		if ctx.has(token.SELECT) || ctx.has(token.VALUES) || ctx.has(token.TABLE) {
			q, ok := ctx.parseQueryExpression()
			if !ok {
				return nil, false
			}
			if !ctx.expect(token.RPAREN) {
				return nil, false
			}
			if !ctx.expect(token.AS) {
				return nil, false
			}
			alias, ok := ctx.parseIdentifier()
			if !ok {
				return nil, false
			}
			return &ast.DerivedTable{SpanVal: spanTo(start, ctx.cur.Span), Query: q, Alias: alias}, true
		}
		inner, ok := ctx.parseTableReference()
		if ok && ctx.has(token.RPAREN) {
			if !ctx.advance2() {
				return nil, false
			}
			return inner, true
		}
		if ctx.errSet {
			return nil, false
		}
		ctx.reset(m)
	}
	name, ok := ctx.parseIdentifier()
	if !ok {
		return nil, false
	}
	var alias *ast.Identifier
	if ctx.has(token.AS) {
		if !ctx.advance2() {
			return nil, false
		}
		a, ok := ctx.parseIdentifier()
		if !ok {
			return nil, false
		}
		alias = a
	} else if ctx.has(token.IDENTIFIER) {
		a, ok := ctx.parseIdentifier()
		if !ok {
			return nil, false
		}
		alias = a
	}
	return &ast.Table{SpanVal: spanTo(start, ctx.cur.Span), Name: name, Alias: alias}, true
}
