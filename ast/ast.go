// Package ast defines the Abstract Syntax Tree produced by parsing SQL-92
// text. Every node is a plain struct; polymorphism is expressed through
// the Statement/DataType/Constraint/Predicate/ValueExpression/
// QueryExpression/TableReference marker interfaces and a type switch on
// the concrete pointer type, never through embedded behavior.
package ast

import "github.com/go-sqltoast/sqltoast/token"

// Node is implemented by every AST type. Span reports the lexeme range
// the node was parsed from, for callers that want to slice the original
// input (e.g. to re-render a fragment or report a location).
type Node interface {
	Span() token.Span
}

// Identifier is an unqualified or a single part of a qualified SQL name.
type Identifier struct {
	SpanVal token.Span
	Name    string
}

func (i *Identifier) Span() token.Span { return i.SpanVal }

// Program is the root of a parsed SQL-92 text: zero or more statements,
// separated by semicolons in the source.
type Program struct {
	Statements []Statement
}

// Span reports the range from the start of the first statement to the
// end of the last, or the zero span for an empty program.
func (p *Program) Span() token.Span {
	if len(p.Statements) == 0 {
		return token.Span{}
	}
	return token.Span{Start: p.Statements[0].Span().Start, End: p.Statements[len(p.Statements)-1].Span().End}
}
