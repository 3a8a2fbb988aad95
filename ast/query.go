package ast

import "github.com/go-sqltoast/sqltoast/token"

// QueryExpression is implemented by every node that can stand as a full
// SQL-92 <query expression>: a non-join query expression (query
// specification, table value constructor, explicit table, or a
// parenthesized sub-expression) or a joined table.
type QueryExpression interface {
	Node
	queryExpressionNode()
}

// DerivedColumn is one selected item of a <select list>: an expression
// with an optional AS alias, or the bare '*'.
type DerivedColumn struct {
	SpanVal    token.Span
	Star       bool
	Expression ValueExpression
	Alias      *Identifier
}

// GroupingColumnReference names one column of a GROUP BY clause.
type GroupingColumnReference struct {
	Column *ColumnReference
}

// TableExpression is the FROM/WHERE/GROUP BY/HAVING body of a query
// specification.
type TableExpression struct {
	SpanVal         token.Span
	ReferencedTables []TableReference
	Where           SearchCondition
	GroupBy         []GroupingColumnReference
	Having          SearchCondition
}

func (t *TableExpression) Span() token.Span { return t.SpanVal }

// QuerySpecification covers SELECT [DISTINCT|ALL] <select list> <table expression>.
type QuerySpecification struct {
	SpanVal   token.Span
	Distinct  bool
	Selected  []DerivedColumn
	TableExpr *TableExpression
}

func (q *QuerySpecification) Span() token.Span  { return q.SpanVal }
func (*QuerySpecification) queryExpressionNode() {}

// TableValueConstructor covers VALUES <row value constructor list>.
type TableValueConstructor struct {
	SpanVal token.Span
	Rows    []*RowValueConstructor
}

func (t *TableValueConstructor) Span() token.Span  { return t.SpanVal }
func (*TableValueConstructor) queryExpressionNode() {}

// ExplicitTable covers TABLE <table name>.
type ExplicitTable struct {
	SpanVal token.Span
	Name    *Identifier
}

func (e *ExplicitTable) Span() token.Span  { return e.SpanVal }
func (*ExplicitTable) queryExpressionNode() {}

// SetOperator identifies UNION or EXCEPT/INTERSECT as carried between two
// non-join query terms.
type SetOperator int

const (
	SetOperatorUnion SetOperator = iota
	SetOperatorIntersect
	SetOperatorExcept
)

// SetOperationQueryExpression covers <query term> {UNION|INTERSECT|EXCEPT}
// [ALL] <query term>, the left-folded binary form of a non-join query
// expression.
type SetOperationQueryExpression struct {
	SpanVal  token.Span
	Operator SetOperator
	All      bool
	Left     QueryExpression
	Right    QueryExpression
}

func (s *SetOperationQueryExpression) Span() token.Span  { return s.SpanVal }
func (*SetOperationQueryExpression) queryExpressionNode() {}

// SubqueryExpression wraps a parenthesized query expression used where a
// non_join_query_primary's SUBEXPRESSION alternative is required.
type SubqueryExpression struct {
	SpanVal token.Span
	Query   QueryExpression
}

func (s *SubqueryExpression) Span() token.Span  { return s.SpanVal }
func (*SubqueryExpression) queryExpressionNode() {}

// JoinType identifies the kind of join a JoinedTable represents.
type JoinType int

const (
	JoinInner JoinType = iota
	JoinLeft
	JoinRight
	JoinFull
	JoinCross
	JoinNatural
	JoinUnion
)

// JoinSpecification is either an ON condition or a USING column list, the
// two ways a non-CROSS/non-NATURAL join may qualify its match condition.
type JoinSpecification struct {
	Condition    SearchCondition
	NamedColumns []*Identifier
}

// JoinedTable covers a table_reference [INNER|LEFT|RIGHT|FULL|CROSS|
// NATURAL] JOIN table_reference [ON ... | USING (...)].
type JoinedTable struct {
	SpanVal token.Span
	Type    JoinType
	Left    TableReference
	Right   TableReference
	Spec    *JoinSpecification
}

func (j *JoinedTable) Span() token.Span  { return j.SpanVal }
func (*JoinedTable) queryExpressionNode() {}

// TableReference is implemented by every node that can appear in a FROM
// clause: a base Table, a DerivedTable, or a JoinedTable chain.
type TableReference interface {
	Node
	tableReferenceNode()
}

// Table is a base table reference by name, with an optional correlation
// alias.
type Table struct {
	SpanVal token.Span
	Name    *Identifier
	Alias   *Identifier
}

func (t *Table) Span() token.Span   { return t.SpanVal }
func (*Table) tableReferenceNode()   {}

// DerivedTable is a subquery used as a table reference, required to carry
// a correlation alias per SQL-92.
type DerivedTable struct {
	SpanVal token.Span
	Query   QueryExpression
	Alias   *Identifier
}

func (d *DerivedTable) Span() token.Span  { return d.SpanVal }
func (*DerivedTable) tableReferenceNode()  {}

// JoinedTableReference lets a JoinedTable itself be nested inside another
// table reference position (e.g. the left side of a further join).
type JoinedTableReference struct {
	Joined *JoinedTable
}

func (j *JoinedTableReference) Span() token.Span { return j.Joined.Span() }
func (*JoinedTableReference) tableReferenceNode() {}
