package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKeywordRecognizesReservedWords(t *testing.T) {
	cases := []struct {
		word string
		want Symbol
	}{
		{"SELECT", SELECT},
		{"select", SELECT},
		{"SeLeCt", SELECT},
		{"FROM", FROM},
		{"WHERE", WHERE},
		{"INTERSECT", INTERSECT},
		{"EXCEPT", EXCEPT},
		{"VARCHAR", VARCHAR},
		{"NATIONAL", NATIONAL},
		{"ZONE", ZONE},
	}
	for _, c := range cases {
		t.Run(c.word, func(t *testing.T) {
			assert.Equal(t, c.want, LookupKeyword(c.word))
		})
	}
}

func TestLookupKeywordRejectsNonKeywords(t *testing.T) {
	for _, word := range []string{"widgets", "customer_id", "Foo", "", "select_all"} {
		assert.Equal(t, IDENTIFIER, LookupKeyword(word), word)
	}
}

func TestSymbolIsKeyword(t *testing.T) {
	assert.True(t, SELECT.IsKeyword())
	assert.True(t, ZONE.IsKeyword())
	assert.False(t, IDENTIFIER.IsKeyword())
	assert.False(t, ASTERISK.IsKeyword())
	assert.False(t, LITERAL_UNSIGNED_INTEGER.IsKeyword())
}

func TestSymbolIsLiteral(t *testing.T) {
	assert.True(t, LITERAL_UNSIGNED_INTEGER.IsLiteral())
	assert.True(t, LITERAL_APPROXIMATE_NUMBER.IsLiteral())
	assert.False(t, IDENTIFIER.IsLiteral())
	assert.False(t, SELECT.IsLiteral())
}

func TestIsValueExpressionTerminator(t *testing.T) {
	assert.True(t, IsValueExpressionTerminator(COMMA))
	assert.True(t, IsValueExpressionTerminator(FROM))
	assert.True(t, IsValueExpressionTerminator(EOF))
	assert.False(t, IsValueExpressionTerminator(PLUS))
	assert.False(t, IsValueExpressionTerminator(IDENTIFIER))
}

func TestSymbolStringSpelling(t *testing.T) {
	assert.Equal(t, "'*'", ASTERISK.String())
	assert.Equal(t, "SELECT", SELECT.String())
	assert.Equal(t, "<< identifier >>", IDENTIFIER.String())
	assert.Equal(t, "<< unknown >>", Symbol(99999).String())
}

func TestSpanText(t *testing.T) {
	src := "SELECT * FROM widgets"
	sp := Span{Start: 7, End: 8}
	assert.Equal(t, "*", sp.Text(src))
}

func TestTokenLexeme(t *testing.T) {
	src := "FROM widgets"
	tok := Token{Symbol: IDENTIFIER, Span: Span{Start: 5, End: 12}}
	assert.Equal(t, "widgets", tok.Lexeme(src))
}
