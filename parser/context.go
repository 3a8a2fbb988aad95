// Package parser implements a recursive-descent parser for SQL-92 built
// directly on top of the token and lexer packages: no parser generator,
// no grammar DSL.
package parser

import (
	"fmt"
	"strings"

	"github.com/go-sqltoast/sqltoast/ast"
	"github.com/go-sqltoast/sqltoast/lexer"
	"github.com/go-sqltoast/sqltoast/token"
)

// Code classifies the outcome of a parse.
type Code int

const (
	OK Code = iota
	InputError
	SyntaxError
)

// Options tunes how a parse runs.
type Options struct {
	// DisableStatementConstruction makes the data type productions run
	// their grammar checks without allocating their nodes, so a parsed
	// column definition carries a nil Type. Every other production still
	// builds its AST node, statements included.
	DisableStatementConstruction bool
}

// Result is the outcome of parsing a complete SQL-92 text: either a
// sequence of statements (Code == OK) or the first syntax/input error
// encountered, formatted with a caret marker pointing at the offending
// token.
type Result struct {
	Code       Code
	ErrorText  string
	Statements []ast.Statement
}

// Context carries the mutable state threaded through every parse
// production: the lexer cursor, parse options, the current lookahead
// token, and the sticky first error. A Context is built once per Parse
// call and is not reused across calls; distinct Contexts over distinct
// (or identical) input are independent and may run concurrently.
type Context struct {
	lex  *lexer.Lexer
	opts Options
	cur  token.Token

	errSet bool
	errPos int
	errMsg string
}

// mark is a lexer/lookahead savepoint, used to rewind a non-committed
// production that turned out not to match.
type mark struct {
	cur token.Token
}

func newContext(src string, opts Options) (*Context, error) {
	ctx := &Context{lex: lexer.New(src), opts: opts}
	tok, err := ctx.lex.Next()
	if err != nil {
		return nil, err
	}
	ctx.cur = tok
	return ctx, nil
}

func (ctx *Context) src() string { return ctx.lex.Source() }

func (ctx *Context) mark() mark {
	return mark{cur: ctx.cur}
}

// reset rewinds the context to a previously taken mark. Because Token
// spans are zero-copy offsets, restoring cur and the lexer's position is
// sufficient to fully undo any lookahead performed since mark was taken.
func (ctx *Context) reset(m mark) {
	ctx.cur = m.cur
	ctx.lex.SeekTo(m.cur.Span.End)
}

// advance consumes the current token and scans the next one into cur.
func (ctx *Context) advance() error {
	tok, err := ctx.lex.Next()
	if err != nil {
		return err
	}
	ctx.cur = tok
	return nil
}

// has reports whether the current token's symbol is sym, without
// consuming anything and without ever setting an error. Productions use
// this for non-committing lookahead: "is this production even a
// candidate here?"
func (ctx *Context) has(sym token.Symbol) bool {
	return ctx.cur.Symbol == sym
}

// hasAny is the variadic form of has.
func (ctx *Context) hasAny(syms ...token.Symbol) bool {
	for _, s := range syms {
		if ctx.cur.Symbol == s {
			return true
		}
	}
	return false
}

// expect consumes the current token if it matches sym, advancing past it
// and returning true. If it does not match, expect commits the parse to
// failure: it records a sticky syntax error (if none deeper has already
// been recorded) and returns false. Callers that called expect are
// telling the parser "this token was mandatory here" and should
// propagate the false return immediately without attempting any further
// alternative production.
func (ctx *Context) expect(sym token.Symbol) bool {
	if ctx.cur.Symbol != sym {
		ctx.syntaxErrorf("Expected %s but found %s.", sym, ctx.cur.Symbol)
		return false
	}
	if err := ctx.advance(); err != nil {
		ctx.inputErrorf("%s", err)
		return false
	}
	return true
}

// syntaxErrorf records a syntax error at the current token's position.
// Per the sticky-first-error discipline, only the deepest (furthest into
// the input) error is retained; a shallower error arriving after a
// deeper one has already been recorded is ignored.
func (ctx *Context) syntaxErrorf(format string, args ...any) bool {
	pos := ctx.cur.Span.Start
	if ctx.errSet && ctx.errPos >= pos {
		return false
	}
	ctx.errSet = true
	ctx.errPos = pos
	ctx.errMsg = fmt.Sprintf(format, args...)
	return false
}

func (ctx *Context) inputErrorf(format string, args ...any) bool {
	ctx.errSet = true
	ctx.errPos = -1
	ctx.errMsg = fmt.Sprintf(format, args...)
	return false
}

// result builds the final parser Result from the context's accumulated
// error state (if any) and the statements successfully parsed before it.
func (ctx *Context) result(stmts []ast.Statement) Result {
	if !ctx.errSet {
		return Result{Code: OK, Statements: stmts}
	}
	if ctx.errPos < 0 {
		return Result{Code: InputError, ErrorText: ctx.errMsg}
	}
	return Result{Code: SyntaxError, ErrorText: formatSyntaxError(ctx.src(), ctx.errPos, ctx.errMsg)}
}

// formatSyntaxError renders a two-line, caret-marked error: the original
// source text on the first line, and a line of spaces with a caret under
// the offending position followed by the message, on the second.
func formatSyntaxError(src string, pos int, msg string) string {
	var marker strings.Builder
	for i := 0; i < pos; i++ {
		if src[i] == '\t' {
			marker.WriteByte('\t')
		} else {
			marker.WriteByte(' ')
		}
	}
	marker.WriteByte('^')
	return fmt.Sprintf("%s\n%s %s", src, marker.String(), msg)
}
