// Package lexer implements a cursor-driven tokenizer for SQL-92.
package lexer

import (
	"fmt"

	"github.com/go-sqltoast/sqltoast/token"
)

// Error is returned by Next when the input cannot be tokenized at the
// current cursor position (an unterminated string, comment, or delimited
// identifier). It carries the byte offset where the scan started.
type Error struct {
	Pos int
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Msg, e.Pos)
}

// Lexer scans a fixed input buffer into a stream of token.Token values.
// It never copies the input: every token it produces carries a span into
// the original string. A Lexer is not safe for concurrent use, but two
// Lexers over the same (or different) input strings are fully independent.
type Lexer struct {
	src string
	pos int
}

// New returns a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// Source returns the buffer the lexer was constructed with.
func (l *Lexer) Source() string { return l.src }

// Pos returns the current byte offset of the cursor.
func (l *Lexer) Pos() int { return l.pos }

// SeekTo rewinds or advances the cursor to an offset previously obtained
// from Pos. The parser relies on this to backtrack after a non-committed
// production fails to match.
func (l *Lexer) SeekTo(pos int) { l.pos = pos }

func (l *Lexer) byteAt(pos int) byte {
	if pos < 0 || pos >= len(l.src) {
		return 0
	}
	return l.src[pos]
}

func (l *Lexer) skipWhitespaceAndSimpleComments(pos int) int {
	for pos < len(l.src) {
		c := l.src[pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			pos++
		case c == '-' && l.byteAt(pos+1) == '-':
			pos += 2
			for pos < len(l.src) && l.src[pos] != '\n' {
				pos++
			}
		default:
			return pos
		}
	}
	return pos
}

// PeekFrom scans the next token starting at pos without moving the
// lexer's own cursor, returning the token and the offset immediately
// following it. This underlies the parser's has_sequence/expect_sequence
// lookahead without committing to a position change.
func (l *Lexer) PeekFrom(pos int) (token.Token, int, error) {
	pos = l.skipWhitespaceAndSimpleComments(pos)
	if pos >= len(l.src) {
		return token.Token{Symbol: token.EOF, Span: token.Span{Start: pos, End: pos}}, pos, nil
	}

	start := pos
	c := l.src[pos]

	if c == '/' && l.byteAt(pos+1) == '*' {
		return l.scanBracketedComment(start)
	}
	if isDigit(c) || ((c == '+' || c == '-') && isDigit(l.byteAt(pos+1))) {
		return l.scanNumericLiteral(start)
	}
	if tok, next, ok := l.scanPunctuator(start); ok {
		return tok, next, nil
	}
	if c == '\'' {
		return l.scanCharacterStringLiteral(start, token.LITERAL_CHARACTER_STRING, '\'')
	}
	if (c == 'n' || c == 'N') && l.byteAt(pos+1) == '\'' {
		return l.scanCharacterStringLiteral(start+1, token.LITERAL_NATIONAL_CHARACTER_STRING, '\'')
	}
	if (c == 'b' || c == 'B') && l.byteAt(pos+1) == '\'' {
		return l.scanDelimitedLiteral(start+1, token.LITERAL_BIT_STRING, isBitDigit)
	}
	if (c == 'x' || c == 'X') && l.byteAt(pos+1) == '\'' {
		return l.scanDelimitedLiteral(start+1, token.LITERAL_HEX_STRING, isHexDigit)
	}
	if isIdentStart(c) {
		return l.scanKeywordOrIdentifier(start)
	}
	if c == '"' {
		return l.scanDelimitedIdentifier(start, '"')
	}

	return token.Token{}, pos, &Error{Pos: start, Msg: fmt.Sprintf("unrecognized character %q", c)}
}

// Peek returns the next token from the current cursor without advancing it.
func (l *Lexer) Peek() (token.Token, error) {
	tok, _, err := l.PeekFrom(l.pos)
	return tok, err
}

// Next scans and consumes the next token, advancing the cursor past it.
func (l *Lexer) Next() (token.Token, error) {
	tok, next, err := l.PeekFrom(l.pos)
	if err != nil {
		return tok, err
	}
	l.pos = next
	return tok, nil
}

func (l *Lexer) scanPunctuator(pos int) (token.Token, int, bool) {
	c := l.src[pos]
	mk := func(sym token.Symbol, width int) (token.Token, int, bool) {
		return token.Token{Symbol: sym, Span: token.Span{Start: pos, End: pos + width}}, pos + width, true
	}
	switch c {
	case ',':
		return mk(token.COMMA, 1)
	case '=':
		return mk(token.EQUAL, 1)
	case '(':
		return mk(token.LPAREN, 1)
	case ')':
		return mk(token.RPAREN, 1)
	case '*':
		return mk(token.ASTERISK, 1)
	case '<':
		if l.byteAt(pos+1) == '>' {
			return mk(token.NOT_EQUAL, 2)
		}
		return mk(token.LESS_THAN, 1)
	case '>':
		return mk(token.GREATER_THAN, 1)
	case '!':
		return mk(token.EXCLAMATION, 1)
	case '+':
		return mk(token.PLUS, 1)
	case '-':
		return mk(token.MINUS, 1)
	case '/':
		return mk(token.SOLIDUS, 1)
	case '|':
		if l.byteAt(pos+1) == '|' {
			return mk(token.CONCATENATION, 2)
		}
		return mk(token.VERTICAL_BAR, 1)
	case ';':
		return mk(token.SEMICOLON, 1)
	case '?':
		return mk(token.QUESTION_MARK, 1)
	case ':':
		return mk(token.COLON, 1)
	}
	return token.Token{}, pos, false
}

func (l *Lexer) scanBracketedComment(pos int) (token.Token, int, error) {
	start := pos
	pos += 2 // consume "/*"
	for {
		if pos >= len(l.src) {
			return token.Token{}, pos, &Error{Pos: start, Msg: "comment has no closing delimiter"}
		}
		if l.src[pos] == '*' && l.byteAt(pos+1) == '/' {
			pos += 2
			break
		}
		pos++
	}
	return token.Token{Symbol: token.COMMENT, Span: token.Span{Start: start, End: pos}}, pos, nil
}

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBitDigit(c byte) bool { return c == '0' || c == '1' }

func (l *Lexer) scanKeywordOrIdentifier(start int) (token.Token, int, error) {
	pos := start
	for pos < len(l.src) && isIdentCont(l.src[pos]) {
		pos++
	}
	word := l.src[start:pos]
	if sym := token.LookupKeyword(word); sym != token.IDENTIFIER {
		return token.Token{Symbol: sym, Span: token.Span{Start: start, End: pos}}, pos, nil
	}
	// Not a keyword: a plain identifier may continue through '.'-qualified
	// segments and a trailing '*' (table.*), since SQL-92 qualified names
	// are lexed as a single identifier token rather than dot-separated
	// tokens (there is no DOT punctuator in this grammar).
	for pos < len(l.src) && l.src[pos] == '.' && pos+1 < len(l.src) {
		if l.src[pos+1] == '*' {
			pos += 2
			break
		}
		if !isIdentStart(l.src[pos+1]) {
			break
		}
		pos++
		for pos < len(l.src) && isIdentCont(l.src[pos]) {
			pos++
		}
	}
	return token.Token{Symbol: token.IDENTIFIER, Span: token.Span{Start: start, End: pos}}, pos, nil
}

// scanNumericLiteral implements the approximate/exact numeric literal
// state machine: optional leading sign, a run of digits, an optional
// single '.' fraction, and an optional exponent marker.
func (l *Lexer) scanNumericLiteral(start int) (token.Token, int, error) {
	pos := start
	signed := false
	if l.src[pos] == '+' || l.src[pos] == '-' {
		signed = true
		pos++
	}
	for pos < len(l.src) && isDigit(l.src[pos]) {
		pos++
	}
	isDecimal := false
	if pos < len(l.src) && l.src[pos] == '.' {
		isDecimal = true
		pos++
		for pos < len(l.src) && isDigit(l.src[pos]) {
			pos++
		}
	}
	isApprox := false
	if pos < len(l.src) && (l.src[pos] == 'e' || l.src[pos] == 'E') {
		mark := pos
		pos++
		if pos < len(l.src) && (l.src[pos] == '+' || l.src[pos] == '-') {
			pos++
		}
		if pos < len(l.src) && isDigit(l.src[pos]) {
			isApprox = true
			for pos < len(l.src) && isDigit(l.src[pos]) {
				pos++
			}
		} else {
			pos = mark
		}
	}

	var sym token.Symbol
	switch {
	case isApprox:
		sym = token.LITERAL_APPROXIMATE_NUMBER
	case isDecimal && signed:
		sym = token.LITERAL_SIGNED_DECIMAL
	case isDecimal:
		sym = token.LITERAL_UNSIGNED_DECIMAL
	case signed:
		sym = token.LITERAL_SIGNED_INTEGER
	default:
		sym = token.LITERAL_UNSIGNED_INTEGER
	}
	return token.Token{Symbol: sym, Span: token.Span{Start: start, End: pos}}, pos, nil
}

// scanCharacterStringLiteral consumes a quote-delimited literal where the
// quote character escapes itself by doubling ('' inside a '...' literal).
func (l *Lexer) scanCharacterStringLiteral(start int, sym token.Symbol, quote byte) (token.Token, int, error) {
	pos := start + 1
	for {
		if pos >= len(l.src) {
			return token.Token{}, pos, &Error{Pos: start, Msg: "string literal has no closing delimiter"}
		}
		if l.src[pos] == quote {
			if l.byteAt(pos+1) == quote {
				pos += 2
				continue
			}
			pos++
			break
		}
		pos++
	}
	return token.Token{Symbol: sym, Span: token.Span{Start: start, End: pos}}, pos, nil
}

// scanDelimitedLiteral handles B'...' and X'...' literals, whose bodies
// are restricted to the alphabet accepted by valid.
func (l *Lexer) scanDelimitedLiteral(start int, sym token.Symbol, valid func(byte) bool) (token.Token, int, error) {
	pos := start + 1
	for pos < len(l.src) && l.src[pos] != '\'' {
		if !valid(l.src[pos]) {
			return token.Token{}, pos, &Error{Pos: start, Msg: fmt.Sprintf("invalid character %q in literal", l.src[pos])}
		}
		pos++
	}
	if pos >= len(l.src) {
		return token.Token{}, pos, &Error{Pos: start, Msg: "literal has no closing delimiter"}
	}
	pos++ // consume closing quote
	return token.Token{Symbol: sym, Span: token.Span{Start: start - 1, End: pos}}, pos, nil
}

// scanDelimitedIdentifier consumes a "..." delimited identifier, where the
// delimiter escapes itself by doubling.
func (l *Lexer) scanDelimitedIdentifier(start int, quote byte) (token.Token, int, error) {
	pos := start + 1
	for {
		if pos >= len(l.src) {
			return token.Token{}, pos, &Error{Pos: start, Msg: "delimited identifier has no closing delimiter"}
		}
		if l.src[pos] == quote {
			if l.byteAt(pos+1) == quote {
				pos += 2
				continue
			}
			pos++
			break
		}
		pos++
	}
	return token.Token{Symbol: token.IDENTIFIER, Span: token.Span{Start: start, End: pos}}, pos, nil
}

// Tokenize scans src in its entirety, returning every token through EOF.
// It is a convenience for tests and tooling; the parser itself drives a
// Lexer incrementally via Next/Peek/PeekFrom.
func Tokenize(src string) ([]token.Token, error) {
	l := New(src)
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Symbol == token.EOF {
			return toks, nil
		}
	}
}
