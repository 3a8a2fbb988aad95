package parser

import (
	"github.com/go-sqltoast/sqltoast/ast"
	"github.com/go-sqltoast/sqltoast/token"
)

// parseIdentifier commits to consuming a single identifier token. Bare
// identifiers and the subset of keywords SQL-92 allows as non-reserved
// names are both accepted via IDENTIFIER; this parser treats every
// reserved keyword as reserved, matching spec.md's keyword list.
func (ctx *Context) parseIdentifier() (*ast.Identifier, bool) {
	if !ctx.has(token.IDENTIFIER) {
		ctx.syntaxErrorf("Expected identifier but found %s.", ctx.cur.Symbol)
		return nil, false
	}
	tok := ctx.cur
	if !ctx.advance2() {
		return nil, false
	}
	return &ast.Identifier{SpanVal: tok.Span, Name: tok.Lexeme(ctx.src())}, true
}

// parseIdentifierList parses a parenthesized, comma-delimited list of
// identifiers: ( id1, id2, ... ).
func (ctx *Context) parseIdentifierList() ([]*ast.Identifier, bool) {
	if !ctx.expect(token.LPAREN) {
		return nil, false
	}
	var ids []*ast.Identifier
	for {
		id, ok := ctx.parseIdentifier()
		if !ok {
			return nil, false
		}
		ids = append(ids, id)
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
	return ids, true
}

// parseQualifiedName parses a (possibly dot-qualified) name. The lexer
// scans schema.table/table.column as a single IDENTIFIER token, so this
// is just parseIdentifier under a name that matches how callers use it.
func (ctx *Context) parseQualifiedName() (*ast.Identifier, bool) {
	return ctx.parseIdentifier()
}
