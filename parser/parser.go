package parser

import (
	"github.com/go-sqltoast/sqltoast/ast"
	"github.com/go-sqltoast/sqltoast/token"
)

// Parse tokenizes and parses src as a sequence of semicolon-separated
// SQL-92 statements (the last may end at end of input), stopping at the
// first syntax or input error.
func Parse(src string, opts Options) Result {
	ctx, err := newContext(src, opts)
	if err != nil {
		return Result{Code: InputError, ErrorText: err.Error()}
	}
	if ctx.has(token.EOF) {
		ctx.inputErrorf("Nothing to parse.")
		return ctx.result(nil)
	}
	var stmts []ast.Statement
	for !ctx.has(token.EOF) {
		for ctx.has(token.SEMICOLON) {
			if !ctx.advance2() {
				return ctx.result(stmts)
			}
		}
		if ctx.has(token.EOF) {
			break
		}
		stmt, ok := ctx.parseStatement()
		if !ok {
			return ctx.result(stmts)
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		if ctx.has(token.EOF) {
			break
		}
		if !ctx.expect(token.SEMICOLON) {
			return ctx.result(stmts)
		}
	}
	return ctx.result(stmts)
}
