package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-sqltoast/sqltoast/token"
)

func symbols(t *testing.T, toks []token.Token) []token.Symbol {
	t.Helper()
	syms := make([]token.Symbol, len(toks))
	for i, tok := range toks {
		syms[i] = tok.Symbol
	}
	return syms
}

func TestTokenizeSimpleSelect(t *testing.T) {
	toks, err := Tokenize("SELECT * FROM widgets;")
	require.NoError(t, err)
	assert.Equal(t, []token.Symbol{
		token.SELECT, token.ASTERISK, token.FROM, token.IDENTIFIER, token.SEMICOLON, token.EOF,
	}, symbols(t, toks))
}

func TestTokenizeQualifiedIdentifierIsOneToken(t *testing.T) {
	toks, err := Tokenize("accounting.widgets")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.IDENTIFIER, toks[0].Symbol)
	assert.Equal(t, "accounting.widgets", toks[0].Span.Text("accounting.widgets"))
}

func TestTokenizeStarQualifiedIdentifier(t *testing.T) {
	toks, err := Tokenize("t.*")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.IDENTIFIER, toks[0].Symbol)
	assert.Equal(t, "t.*", toks[0].Span.Text("t.*"))
}

func TestTokenizeComparisonPunctuators(t *testing.T) {
	toks, err := Tokenize("a <> b <= c")
	require.NoError(t, err)
	assert.Equal(t, []token.Symbol{
		token.IDENTIFIER, token.NOT_EQUAL, token.IDENTIFIER,
		token.LESS_THAN, token.EQUAL, token.IDENTIFIER, token.EOF,
	}, symbols(t, toks))
}

func TestTokenizeConcatenationVsVerticalBar(t *testing.T) {
	toks, err := Tokenize("a || b | c")
	require.NoError(t, err)
	assert.Equal(t, []token.Symbol{
		token.IDENTIFIER, token.CONCATENATION, token.IDENTIFIER,
		token.VERTICAL_BAR, token.IDENTIFIER, token.EOF,
	}, symbols(t, toks))
}

func TestTokenizeNumericLiterals(t *testing.T) {
	cases := []struct {
		src  string
		want token.Symbol
	}{
		{"42", token.LITERAL_UNSIGNED_INTEGER},
		{"-42", token.LITERAL_SIGNED_INTEGER},
		{"3.14", token.LITERAL_UNSIGNED_DECIMAL},
		{"-3.14", token.LITERAL_SIGNED_DECIMAL},
		{"1.5e10", token.LITERAL_APPROXIMATE_NUMBER},
		{"1E-3", token.LITERAL_APPROXIMATE_NUMBER},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			require.NoError(t, err)
			require.Len(t, toks, 2)
			assert.Equal(t, c.want, toks[0].Symbol)
		})
	}
}

func TestTokenizeStringLiteralWithEscapedQuote(t *testing.T) {
	toks, err := Tokenize(`'it''s here'`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.LITERAL_CHARACTER_STRING, toks[0].Symbol)
	assert.Equal(t, `'it''s here'`, toks[0].Span.Text(`'it''s here'`))
}

func TestTokenizeNationalBitAndHexLiterals(t *testing.T) {
	cases := []struct {
		src  string
		want token.Symbol
	}{
		{"N'abc'", token.LITERAL_NATIONAL_CHARACTER_STRING},
		{"B'1010'", token.LITERAL_BIT_STRING},
		{"X'1F2a'", token.LITERAL_HEX_STRING},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			require.NoError(t, err)
			require.Len(t, toks, 2)
			assert.Equal(t, c.want, toks[0].Symbol)
		})
	}
}

func TestTokenizeDelimitedIdentifier(t *testing.T) {
	toks, err := Tokenize(`"Order Details"`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.IDENTIFIER, toks[0].Symbol)
}

func TestTokenizeSkipsLineCommentsAndKeepsBracketedComments(t *testing.T) {
	toks, err := Tokenize("SELECT 1 -- trailing comment\n/* block */ FROM t")
	require.NoError(t, err)
	assert.Equal(t, []token.Symbol{
		token.SELECT, token.LITERAL_UNSIGNED_INTEGER, token.COMMENT, token.FROM, token.IDENTIFIER, token.EOF,
	}, symbols(t, toks))
}

func TestTokenizeUnterminatedStringErrors(t *testing.T) {
	_, err := Tokenize("'unterminated")
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 0, lexErr.Pos)
}

func TestTokenizeUnterminatedBracketedCommentErrors(t *testing.T) {
	_, err := Tokenize("/* never closes")
	require.Error(t, err)
}

func TestTokenizeUnrecognizedCharacterErrors(t *testing.T) {
	_, err := Tokenize("SELECT # FROM t")
	require.Error(t, err)
}

func TestPeekFromDoesNotMoveCursor(t *testing.T) {
	l := New("SELECT FROM")
	before := l.Pos()
	tok, next, err := l.PeekFrom(l.Pos())
	require.NoError(t, err)
	assert.Equal(t, token.SELECT, tok.Symbol)
	assert.Equal(t, before, l.Pos())
	assert.Greater(t, next, before)
}

func TestSeekToRewindsCursor(t *testing.T) {
	l := New("SELECT FROM")
	first, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, token.SELECT, first.Symbol)
	l.SeekTo(0)
	again, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, token.SELECT, again.Symbol)
}
