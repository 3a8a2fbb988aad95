package ast

import "github.com/go-sqltoast/sqltoast/token"

// ValueExpression is implemented by every node that can appear where a
// SQL-92 <value expression> is expected: numeric, character, datetime,
// and interval value expressions, each a left-folded tree of terms and
// factors over +, -, and (for character) ||.
type ValueExpression interface {
	Node
	valueExpressionNode()
}

// ColumnReference names a (possibly qualified) column.
type ColumnReference struct {
	SpanVal token.Span
	Parts   []*Identifier
}

func (c *ColumnReference) Span() token.Span      { return c.SpanVal }
func (*ColumnReference) valueExpressionNode()     {}
func (*ColumnReference) rowValueConstructorNode() {}

// Literal wraps a single scanned literal token (numeric, string, bit, hex,
// national character) as a value expression primary.
type Literal struct {
	SpanVal token.Span
	Symbol  token.Symbol
	Text    string
}

func (l *Literal) Span() token.Span      { return l.SpanVal }
func (*Literal) valueExpressionNode()     {}
func (*Literal) rowValueConstructorNode() {}

// NullValue represents the NULL keyword used as a row value constructor
// element.
type NullValue struct {
	SpanVal token.Span
}

func (n *NullValue) Span() token.Span      { return n.SpanVal }
func (*NullValue) rowValueConstructorNode() {}

// DefaultValue represents the DEFAULT keyword used as a row value
// constructor element (e.g. inside INSERT ... VALUES).
type DefaultValue struct {
	SpanVal token.Span
}

func (d *DefaultValue) Span() token.Span      { return d.SpanVal }
func (*DefaultValue) rowValueConstructorNode() {}

// ArithmeticOp identifies the operator joining two terms in a left-folded
// numeric, datetime, or interval value expression.
type ArithmeticOp int

const (
	OpAdd ArithmeticOp = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpConcatenate
)

// BinaryValueExpression is a left-folded two-operand node: (Left Op Right).
// Numeric value expressions fold over +/-/*//, character value expressions
// fold over ||, and datetime/interval value expressions fold over +/-.
type BinaryValueExpression struct {
	SpanVal token.Span
	Op      ArithmeticOp
	Left    ValueExpression
	Right   ValueExpression
}

func (b *BinaryValueExpression) Span() token.Span   { return b.SpanVal }
func (*BinaryValueExpression) valueExpressionNode()  {}
func (*BinaryValueExpression) rowValueConstructorNode() {}

// UnarySign applies a leading + or - to a numeric factor.
type UnarySign struct {
	SpanVal  token.Span
	Negative bool
	Operand  ValueExpression
}

func (u *UnarySign) Span() token.Span      { return u.SpanVal }
func (*UnarySign) valueExpressionNode()     {}
func (*UnarySign) rowValueConstructorNode() {}

// SetFunctionName identifies a SQL-92 set function.
type SetFunctionName int

const (
	SetFunctionCount SetFunctionName = iota
	SetFunctionAvg
	SetFunctionMax
	SetFunctionMin
	SetFunctionSum
)

// SetFunction covers COUNT(*) and COUNT/AVG/MAX/MIN/SUM([DISTINCT|ALL] expr).
type SetFunction struct {
	SpanVal  token.Span
	Name     SetFunctionName
	Star     bool
	Distinct bool
	Argument ValueExpression
}

func (s *SetFunction) Span() token.Span      { return s.SpanVal }
func (*SetFunction) valueExpressionNode()     {}
func (*SetFunction) rowValueConstructorNode() {}

// CaseWhenClause is one WHEN <condition> THEN <result> arm of a searched
// CASE expression.
type CaseWhenClause struct {
	Condition SearchCondition
	Result    ValueExpression
}

// CaseExpression covers both the simple and searched forms of CASE. When
// Operand is non-nil this is a simple CASE (WHEN compares Operand by
// equality); otherwise each When's Condition is evaluated directly.
type CaseExpression struct {
	SpanVal token.Span
	Operand ValueExpression
	When    []CaseWhenClause
	Else    ValueExpression
}

func (c *CaseExpression) Span() token.Span      { return c.SpanVal }
func (*CaseExpression) valueExpressionNode()     {}
func (*CaseExpression) rowValueConstructorNode() {}

// RowValueConstructorElement is implemented by ColumnReference, Literal,
// NullValue, DefaultValue, and any other value expression usable as a
// single element of a row value constructor.
type RowValueConstructorElement interface {
	Node
	rowValueConstructorNode()
}

// RowValueConstructor is either a single element or a parenthesized list
// of elements: ( v1, v2, ... ).
type RowValueConstructor struct {
	SpanVal  token.Span
	Elements []RowValueConstructorElement
}

func (r *RowValueConstructor) Span() token.Span { return r.SpanVal }
