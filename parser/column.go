package parser

import (
	"github.com/go-sqltoast/sqltoast/ast"
	"github.com/go-sqltoast/sqltoast/token"
)

// parseColumnDefinition parses a single <column definition>: name, data
// type, optional default clause, zero or more column constraints, and an
// optional COLLATE clause.
func (ctx *Context) parseColumnDefinition() (*ast.ColumnDefinition, bool) {
	start := ctx.cur.Span
	name, ok := ctx.parseIdentifier()
	if !ok {
		return nil, false
	}
	dt, ok := ctx.parseDataType()
	if !ok {
		return nil, false
	}
	var def *ast.DefaultClause
	if ctx.has(token.DEFAULT) {
		d, ok := ctx.parseDefaultClause()
		if !ok {
			return nil, false
		}
		def = d
	}
	var constraints []ast.Constraint
	for ctx.hasAny(token.NOT, token.UNIQUE, token.PRIMARY, token.REFERENCES, token.CHECK, token.CONSTRAINT) {
		c, ok := ctx.parseColumnConstraint()
		if !ok {
			return nil, false
		}
		constraints = append(constraints, c)
	}
	var collate *ast.Identifier
	if ctx.has(token.COLLATE) {
		if !ctx.advance2() {
			return nil, false
		}
		id, ok := ctx.parseIdentifier()
		if !ok {
			return nil, false
		}
		collate = id
	}
	return &ast.ColumnDefinition{SpanVal: spanTo(start, ctx.cur.Span), Name: name, Type: dt, Default: def, Constraints: constraints, Collate: collate}, true
}

// parseDefaultClause parses DEFAULT <default option>: a literal, a signed
// numeric literal, NULL, USER, CURRENT_USER, SESSION_USER, SYSTEM_USER,
// CURRENT_DATE, CURRENT_TIME[(p)], or CURRENT_TIMESTAMP[(p)].
func (ctx *Context) parseDefaultClause() (*ast.DefaultClause, bool) {
	start := ctx.cur.Span
	if !ctx.advance2() { // consume DEFAULT
		return nil, false
	}
	switch {
	case ctx.has(token.NULL):
		if !ctx.advance2() {
			return nil, false
		}
		return &ast.DefaultClause{SpanVal: spanTo(start, ctx.cur.Span), Kind: ast.DefaultNull}, true
	case ctx.has(token.USER):
		if !ctx.advance2() {
			return nil, false
		}
		return &ast.DefaultClause{SpanVal: spanTo(start, ctx.cur.Span), Kind: ast.DefaultUser}, true
	case ctx.has(token.CURRENT_USER):
		if !ctx.advance2() {
			return nil, false
		}
		return &ast.DefaultClause{SpanVal: spanTo(start, ctx.cur.Span), Kind: ast.DefaultCurrentUser}, true
	case ctx.has(token.SESSION_USER):
		if !ctx.advance2() {
			return nil, false
		}
		return &ast.DefaultClause{SpanVal: spanTo(start, ctx.cur.Span), Kind: ast.DefaultSessionUser}, true
	case ctx.has(token.SYSTEM_USER):
		if !ctx.advance2() {
			return nil, false
		}
		return &ast.DefaultClause{SpanVal: spanTo(start, ctx.cur.Span), Kind: ast.DefaultSystemUser}, true
	case ctx.has(token.CURRENT_DATE):
		if !ctx.advance2() {
			return nil, false
		}
		return &ast.DefaultClause{SpanVal: spanTo(start, ctx.cur.Span), Kind: ast.DefaultCurrentDate}, true
	case ctx.hasAny(token.CURRENT_TIME, token.CURRENT_TIMESTAMP):
		isStamp := ctx.has(token.CURRENT_TIMESTAMP)
		if !ctx.advance2() {
			return nil, false
		}
		var prec *int
		if ctx.has(token.LPAREN) {
			n, ok := ctx.parseLengthSpecifier()
			if !ok {
				return nil, false
			}
			prec = &n
		}
		kind := ast.DefaultCurrentTime
		if isStamp {
			kind = ast.DefaultCurrentTimestamp
		}
		return &ast.DefaultClause{SpanVal: spanTo(start, ctx.cur.Span), Kind: kind, Precision: prec}, true
	case ctx.hasAny(token.PLUS, token.MINUS):
		neg := ctx.has(token.MINUS)
		if !ctx.advance2() {
			return nil, false
		}
		if !ctx.cur.Symbol.IsLiteral() {
			ctx.syntaxErrorf("Expected numeric literal after sign but found %s.", ctx.cur.Symbol)
			return nil, false
		}
		tok := ctx.cur
		if !ctx.advance2() {
			return nil, false
		}
		lit := &ast.Literal{SpanVal: tok.Span, Symbol: tok.Symbol, Text: tok.Lexeme(ctx.src())}
		signed := &ast.UnarySign{SpanVal: spanTo(start, ctx.cur.Span), Negative: neg, Operand: lit}
		return &ast.DefaultClause{SpanVal: spanTo(start, ctx.cur.Span), Kind: ast.DefaultLiteral, Signed: signed}, true
	case ctx.cur.Symbol.IsLiteral():
		tok := ctx.cur
		if !ctx.advance2() {
			return nil, false
		}
		lit := &ast.Literal{SpanVal: tok.Span, Symbol: tok.Symbol, Text: tok.Lexeme(ctx.src())}
		return &ast.DefaultClause{SpanVal: spanTo(start, ctx.cur.Span), Kind: ast.DefaultLiteral, Literal: lit}, true
	}
	ctx.syntaxErrorf("Expected default option but found %s.", ctx.cur.Symbol)
	return nil, false
}

// parseConstraintName parses an optional CONSTRAINT <name> prefix shared
// by every table- and column-level constraint.
func (ctx *Context) parseConstraintName() (*ast.Identifier, bool) {
	if !ctx.has(token.CONSTRAINT) {
		return nil, true
	}
	if !ctx.advance2() {
		return nil, false
	}
	return ctx.parseIdentifier()
}

// parseColumnConstraint parses a single column constraint: [CONSTRAINT
// name] followed by NOT NULL, UNIQUE, PRIMARY KEY, REFERENCES, or CHECK.
func (ctx *Context) parseColumnConstraint() (ast.Constraint, bool) {
	start := ctx.cur.Span
	name, ok := ctx.parseConstraintName()
	if !ok {
		return nil, false
	}
	switch {
	case ctx.has(token.NOT):
		if !ctx.advance2() {
			return nil, false
		}
		if !ctx.expect(token.NULL) {
			return nil, false
		}
		return &ast.NotNullConstraint{SpanVal: spanTo(start, ctx.cur.Span), Name: name}, true
	case ctx.has(token.UNIQUE):
		if !ctx.advance2() {
			return nil, false
		}
		return &ast.UniqueConstraint{SpanVal: spanTo(start, ctx.cur.Span), Name: name}, true
	case ctx.has(token.PRIMARY):
		if !ctx.advance2() {
			return nil, false
		}
		if !ctx.expect(token.KEY) {
			return nil, false
		}
		return &ast.PrimaryKeyConstraint{SpanVal: spanTo(start, ctx.cur.Span), Name: name}, true
	case ctx.has(token.REFERENCES):
		ref, ok := ctx.parseReferencesSpecification()
		if !ok {
			return nil, false
		}
		return &ast.ForeignKeyConstraint{SpanVal: spanTo(start, ctx.cur.Span), Name: name, References: ref}, true
	case ctx.has(token.CHECK):
		ctx.syntaxErrorf("CHECK constraints are not supported.")
		return nil, false
	}
	ctx.syntaxErrorf("Expected column constraint but found %s.", ctx.cur.Symbol)
	return nil, false
}

// parseTableConstraint parses a single table-level <table constraint
// definition>: [CONSTRAINT name] followed by UNIQUE, PRIMARY KEY, FOREIGN
// KEY, or CHECK, each taking a parenthesized column list (except CHECK).
func (ctx *Context) parseTableConstraint() (ast.Constraint, bool) {
	start := ctx.cur.Span
	name, ok := ctx.parseConstraintName()
	if !ok {
		return nil, false
	}
	switch {
	case ctx.has(token.UNIQUE):
		if !ctx.advance2() {
			return nil, false
		}
		cols, ok := ctx.parseIdentifierList()
		if !ok {
			return nil, false
		}
		return &ast.UniqueConstraint{SpanVal: spanTo(start, ctx.cur.Span), Name: name, Columns: cols}, true
	case ctx.has(token.PRIMARY):
		if !ctx.advance2() {
			return nil, false
		}
		if !ctx.expect(token.KEY) {
			return nil, false
		}
		cols, ok := ctx.parseIdentifierList()
		if !ok {
			return nil, false
		}
		return &ast.PrimaryKeyConstraint{SpanVal: spanTo(start, ctx.cur.Span), Name: name, Columns: cols}, true
	case ctx.has(token.FOREIGN):
		if !ctx.advance2() {
			return nil, false
		}
		if !ctx.expect(token.KEY) {
			return nil, false
		}
		cols, ok := ctx.parseIdentifierList()
		if !ok {
			return nil, false
		}
		ref, ok := ctx.parseReferencesSpecification()
		if !ok {
			return nil, false
		}
		return &ast.ForeignKeyConstraint{SpanVal: spanTo(start, ctx.cur.Span), Name: name, Columns: cols, References: ref}, true
	case ctx.has(token.CHECK):
		ctx.syntaxErrorf("CHECK constraints are not supported.")
		return nil, false
	}
	ctx.syntaxErrorf("Expected table constraint but found %s.", ctx.cur.Symbol)
	return nil, false
}

// parseReferencesSpecification parses REFERENCES <table> [(<cols>)]
// [MATCH <type>] [ON UPDATE <action>] [ON DELETE <action>].
func (ctx *Context) parseReferencesSpecification() (*ast.ReferencesSpecification, bool) {
	start := ctx.cur.Span
	if !ctx.advance2() { // consume REFERENCES
		return nil, false
	}
	table, ok := ctx.parseIdentifier()
	if !ok {
		return nil, false
	}
	var cols []*ast.Identifier
	if ctx.has(token.LPAREN) {
		c, ok := ctx.parseIdentifierList()
		if !ok {
			return nil, false
		}
		cols = c
	}
	var match *ast.MatchType
	if ctx.has(token.MATCH) {
		if !ctx.advance2() {
			return nil, false
		}
		m, ok := ctx.parseMatchType()
		if !ok {
			return nil, false
		}
		match = &m
	}
	var onUpdate, onDelete *ast.ReferentialAction
	for ctx.has(token.ON) {
		if !ctx.advance2() {
			return nil, false
		}
		isUpdate := ctx.has(token.UPDATE)
		if !ctx.hasAny(token.UPDATE, token.DELETE) {
			ctx.syntaxErrorf("Expected UPDATE or DELETE but found %s.", ctx.cur.Symbol)
			return nil, false
		}
		if !ctx.advance2() {
			return nil, false
		}
		action, ok := ctx.parseReferentialAction()
		if !ok {
			return nil, false
		}
		if isUpdate {
			onUpdate = &action
		} else {
			onDelete = &action
		}
	}
	return &ast.ReferencesSpecification{SpanVal: spanTo(start, ctx.cur.Span), Table: table, Columns: cols, Match: match, OnUpdate: onUpdate, OnDelete: onDelete}, true
}

func (ctx *Context) parseMatchType() (ast.MatchType, bool) {
	switch {
	case ctx.has(token.FULL):
		if !ctx.advance2() {
			return 0, false
		}
		return ast.MatchFull, true
	case ctx.has(token.PARTIAL):
		if !ctx.advance2() {
			return 0, false
		}
		return ast.MatchPartial, true
	}
	ctx.syntaxErrorf("Expected FULL or PARTIAL but found %s.", ctx.cur.Symbol)
	return 0, false
}

func (ctx *Context) parseReferentialAction() (ast.ReferentialAction, bool) {
	switch {
	case ctx.has(token.CASCADE):
		if !ctx.advance2() {
			return 0, false
		}
		return ast.ActionCascade, true
	case ctx.hasSequence(token.SET, token.NULL):
		if !ctx.expectSequence(token.SET, token.NULL) {
			return 0, false
		}
		return ast.ActionSetNull, true
	case ctx.hasSequence(token.SET, token.DEFAULT):
		if !ctx.expectSequence(token.SET, token.DEFAULT) {
			return 0, false
		}
		return ast.ActionSetDefault, true
	case ctx.hasSequence(token.NO, token.ACTION):
		if !ctx.expectSequence(token.NO, token.ACTION) {
			return 0, false
		}
		return ast.ActionNoAction, true
	}
	ctx.syntaxErrorf("Expected referential action but found %s.", ctx.cur.Symbol)
	return 0, false
}
