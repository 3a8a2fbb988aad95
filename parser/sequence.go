package parser

import "github.com/go-sqltoast/sqltoast/token"

// hasSequence reports whether the next len(syms) tokens starting at the
// current lookahead match syms exactly, without consuming anything and
// without ever setting an error. This is the non-committing multi-token
// lookahead used to decide between candidate productions that share a
// leading keyword (e.g. PRIMARY KEY vs. a bare PRIMARY in some other
// context).
func (ctx *Context) hasSequence(syms ...token.Symbol) bool {
	if len(syms) == 0 {
		return true
	}
	if ctx.cur.Symbol != syms[0] {
		return false
	}
	pos := ctx.cur.Span.End
	for _, sym := range syms[1:] {
		tok, next, err := ctx.lex.PeekFrom(pos)
		if err != nil || tok.Symbol != sym {
			return false
		}
		pos = next
	}
	return true
}

// expectSequence consumes len(syms) tokens if they match syms exactly,
// returning true. If they don't, it commits the parse to failure via the
// same sticky syntax error reporting as expect.
func (ctx *Context) expectSequence(syms ...token.Symbol) bool {
	if !ctx.hasSequence(syms...) {
		ctx.syntaxErrorf("Expected %s but found %s.", syms[0], ctx.cur.Symbol)
		return false
	}
	for range syms {
		if err := ctx.advance(); err != nil {
			ctx.inputErrorf("%s", err)
			return false
		}
	}
	return true
}
