package parser

import (
	"strconv"

	"github.com/go-sqltoast/sqltoast/ast"
	"github.com/go-sqltoast/sqltoast/token"
)

// parseDataType dispatches across the data type descriptor alternatives in
// the order the original grammar tries them: character string, national
// character string, bit string, exact numeric, approximate numeric,
// datetime, interval.
func (ctx *Context) parseDataType() (ast.DataType, bool) {
	if dt, ok := ctx.parseCharacterString(); ok {
		return dt, true
	}
	if ctx.errSet {
		return nil, false
	}
	if dt, ok := ctx.parseNationalCharacterString(); ok {
		return dt, true
	}
	if ctx.errSet {
		return nil, false
	}
	if dt, ok := ctx.parseBitString(); ok {
		return dt, true
	}
	if ctx.errSet {
		return nil, false
	}
	if dt, ok := ctx.parseExactNumeric(); ok {
		return dt, true
	}
	if ctx.errSet {
		return nil, false
	}
	if dt, ok := ctx.parseApproximateNumeric(); ok {
		return dt, true
	}
	if ctx.errSet {
		return nil, false
	}
	if dt, ok := ctx.parseDatetime(); ok {
		return dt, true
	}
	if ctx.errSet {
		return nil, false
	}
	if dt, ok := ctx.parseInterval(); ok {
		return dt, true
	}
	if ctx.errSet {
		return nil, false
	}
	ctx.syntaxErrorf("Expected data type but found %s.", ctx.cur.Symbol)
	return nil, false
}

func (ctx *Context) parseLengthSpecifier() (int, bool) {
	if !ctx.expect(token.LPAREN) {
		return 0, false
	}
	if !ctx.has(token.LITERAL_UNSIGNED_INTEGER) {
		ctx.syntaxErrorf("Expected unsigned integer length but found %s.", ctx.cur.Symbol)
		return 0, false
	}
	n, _ := strconv.Atoi(ctx.cur.Lexeme(ctx.src()))
	if !ctx.advance2() {
		return 0, false
	}
	if !ctx.expect(token.RPAREN) {
		return 0, false
	}
	return n, true
}

// advance2 wraps advance with the context's input-error reporting, for
// spots that need to step past a token already known to match.
func (ctx *Context) advance2() bool {
	if err := ctx.advance(); err != nil {
		ctx.inputErrorf("%s", err)
		return false
	}
	return true
}

func (ctx *Context) parseCharacterString() (ast.DataType, bool) {
	start := ctx.cur.Span
	if !ctx.hasAny(token.CHAR, token.CHARACTER, token.VARCHAR) {
		return nil, false
	}
	varying := ctx.has(token.VARCHAR)
	if !ctx.advance2() {
		return nil, false
	}
	if !varying && ctx.has(token.VARYING) {
		varying = true
		if !ctx.advance2() {
			return nil, false
		}
	}
	var length *int
	if ctx.has(token.LPAREN) {
		n, ok := ctx.parseLengthSpecifier()
		if !ok {
			return nil, false
		}
		length = &n
	}
	var charset *ast.Identifier
	if ctx.hasSequence(token.CHARACTER) {
		// CHARACTER SET <identifier>
		if !ctx.advance2() {
			return nil, false
		}
		if !ctx.expect(token.SET) {
			return nil, false
		}
		id, ok := ctx.parseIdentifier()
		if !ok {
			return nil, false
		}
		charset = id
	}
	if ctx.opts.DisableStatementConstruction {
		return nil, true
	}
	return &ast.CharacterStringType{SpanVal: spanTo(start, ctx.cur.Span), Varying: varying, Length: length, CharacterSet: charset}, true
}

func (ctx *Context) parseNationalCharacterString() (ast.DataType, bool) {
	start := ctx.cur.Span
	if !ctx.hasAny(token.NATIONAL, token.NCHAR) {
		return nil, false
	}
	national := ctx.has(token.NATIONAL)
	if !ctx.advance2() {
		return nil, false
	}
	if national {
		if !ctx.hasAny(token.CHAR, token.CHARACTER) {
			ctx.syntaxErrorf("Expected CHAR or CHARACTER after NATIONAL but found %s.", ctx.cur.Symbol)
			return nil, false
		}
		if !ctx.advance2() {
			return nil, false
		}
	}
	varying := false
	if ctx.has(token.VARYING) {
		varying = true
		if !ctx.advance2() {
			return nil, false
		}
	}
	var length *int
	if ctx.has(token.LPAREN) {
		n, ok := ctx.parseLengthSpecifier()
		if !ok {
			return nil, false
		}
		length = &n
	}
	if ctx.opts.DisableStatementConstruction {
		return nil, true
	}
	return &ast.NationalCharacterStringType{SpanVal: spanTo(start, ctx.cur.Span), Varying: varying, Length: length}, true
}

func (ctx *Context) parseBitString() (ast.DataType, bool) {
	start := ctx.cur.Span
	if !ctx.has(token.BIT) {
		return nil, false
	}
	if !ctx.advance2() {
		return nil, false
	}
	varying := false
	if ctx.has(token.VARYING) {
		varying = true
		if !ctx.advance2() {
			return nil, false
		}
	}
	n, ok := ctx.parseLengthSpecifier()
	if !ok {
		return nil, false
	}
	if ctx.opts.DisableStatementConstruction {
		return nil, true
	}
	return &ast.BitStringType{SpanVal: spanTo(start, ctx.cur.Span), Varying: varying, Length: n}, true
}

func (ctx *Context) parsePrecisionScale() (prec, scale *int, ok bool) {
	if !ctx.has(token.LPAREN) {
		return nil, nil, true
	}
	if !ctx.advance2() {
		return nil, nil, false
	}
	if !ctx.has(token.LITERAL_UNSIGNED_INTEGER) {
		ctx.syntaxErrorf("Expected precision but found %s.", ctx.cur.Symbol)
		return nil, nil, false
	}
	p, _ := strconv.Atoi(ctx.cur.Lexeme(ctx.src()))
	if !ctx.advance2() {
		return nil, nil, false
	}
	var s *int
	if ctx.has(token.COMMA) {
		if !ctx.advance2() {
			return nil, nil, false
		}
		if !ctx.has(token.LITERAL_UNSIGNED_INTEGER) {
			ctx.syntaxErrorf("Expected scale but found %s.", ctx.cur.Symbol)
			return nil, nil, false
		}
		sv, _ := strconv.Atoi(ctx.cur.Lexeme(ctx.src()))
		s = &sv
		if !ctx.advance2() {
			return nil, nil, false
		}
	}
	if !ctx.expect(token.RPAREN) {
		return nil, nil, false
	}
	return &p, s, true
}

func (ctx *Context) parseExactNumeric() (ast.DataType, bool) {
	start := ctx.cur.Span
	switch {
	case ctx.hasAny(token.INT, token.INTEGER):
		if !ctx.advance2() {
			return nil, false
		}
		if ctx.opts.DisableStatementConstruction {
			return nil, true
		}
		return &ast.ExactNumericType{SpanVal: spanTo(start, ctx.cur.Span), Kind: ast.ExactNumericInteger}, true
	case ctx.has(token.SMALLINT):
		if !ctx.advance2() {
			return nil, false
		}
		if ctx.opts.DisableStatementConstruction {
			return nil, true
		}
		return &ast.ExactNumericType{SpanVal: spanTo(start, ctx.cur.Span), Kind: ast.ExactNumericSmallInt}, true
	case ctx.hasAny(token.NUMERIC, token.DEC, token.DECIMAL):
		if !ctx.advance2() {
			return nil, false
		}
		prec, scale, ok := ctx.parsePrecisionScale()
		if !ok {
			return nil, false
		}
		if ctx.opts.DisableStatementConstruction {
			return nil, true
		}
		return &ast.ExactNumericType{SpanVal: spanTo(start, ctx.cur.Span), Kind: ast.ExactNumericNumeric, Precision: prec, Scale: scale}, true
	}
	return nil, false
}

func (ctx *Context) parseApproximateNumeric() (ast.DataType, bool) {
	start := ctx.cur.Span
	switch {
	case ctx.has(token.FLOAT):
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
		if ctx.opts.DisableStatementConstruction {
			return nil, true
		}
		return &ast.ApproximateNumericType{SpanVal: spanTo(start, ctx.cur.Span), Kind: ast.ApproximateNumericFloat, Precision: prec}, true
	case ctx.has(token.REAL):
		if !ctx.advance2() {
			return nil, false
		}
		if ctx.opts.DisableStatementConstruction {
			return nil, true
		}
		twentyFour := 24
		return &ast.ApproximateNumericType{SpanVal: spanTo(start, ctx.cur.Span), Kind: ast.ApproximateNumericReal, Precision: &twentyFour}, true
	case ctx.has(token.DOUBLE):
		if !ctx.advance2() {
			return nil, false
		}
		if !ctx.expect(token.PRECISION) {
			return nil, false
		}
		if ctx.opts.DisableStatementConstruction {
			return nil, true
		}
		return &ast.ApproximateNumericType{SpanVal: spanTo(start, ctx.cur.Span), Kind: ast.ApproximateNumericDouble}, true
	}
	return nil, false
}

func (ctx *Context) parseDatetime() (ast.DataType, bool) {
	start := ctx.cur.Span
	switch {
	case ctx.has(token.DATE):
		if !ctx.advance2() {
			return nil, false
		}
		if ctx.opts.DisableStatementConstruction {
			return nil, true
		}
		return &ast.DatetimeType{SpanVal: spanTo(start, ctx.cur.Span), Kind: ast.DatetimeDate}, true
	case ctx.hasAny(token.TIME, token.TIMESTAMP):
		isTimestamp := ctx.has(token.TIMESTAMP)
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
		withZone := false
		if ctx.hasSequence(token.WITH) {
			if !ctx.expectSequence(token.WITH) {
				return nil, false
			}
			if !ctx.expectSequence(token.TIME) {
				return nil, false
			}
			if !ctx.expectSequence(token.ZONE) {
				return nil, false
			}
			withZone = true
		}
		if ctx.opts.DisableStatementConstruction {
			return nil, true
		}
		kind := ast.DatetimeTime
		if isTimestamp {
			kind = ast.DatetimeTimestamp
		}
		return &ast.DatetimeType{SpanVal: spanTo(start, ctx.cur.Span), Kind: kind, Precision: prec, WithTimeZone: withZone}, true
	}
	return nil, false
}

func (ctx *Context) parseInterval() (ast.DataType, bool) {
	start := ctx.cur.Span
	if !ctx.has(token.INTERVAL) {
		return nil, false
	}
	if !ctx.advance2() {
		return nil, false
	}
	var field ast.IntervalField
	switch {
	case ctx.has(token.YEAR):
		field = ast.IntervalYear
	case ctx.has(token.MONTH):
		field = ast.IntervalMonth
	case ctx.has(token.DAY):
		field = ast.IntervalDay
	case ctx.has(token.HOUR):
		field = ast.IntervalHour
	case ctx.has(token.MINUTE):
		field = ast.IntervalMinute
	case ctx.has(token.SECOND):
		field = ast.IntervalSecond
	default:
		ctx.syntaxErrorf("Expected interval field but found %s.", ctx.cur.Symbol)
		return nil, false
	}
	if !ctx.advance2() {
		return nil, false
	}
	var secPrec *int
	if field == ast.IntervalSecond && ctx.has(token.LPAREN) {
		n, ok := ctx.parseLengthSpecifier()
		if !ok {
			return nil, false
		}
		secPrec = &n
	}
	if ctx.opts.DisableStatementConstruction {
		return nil, true
	}
	return &ast.IntervalType{SpanVal: spanTo(start, ctx.cur.Span), Field: field, SecondPrecision: secPrec}, true
}

func spanTo(start, end token.Span) token.Span {
	return token.Span{Start: start.Start, End: end.Start}
}
