package ast

import "github.com/go-sqltoast/sqltoast/token"

// SearchCondition is implemented by every node usable as a WHERE/HAVING/
// ON condition: BooleanTerm (OR-folded) and BooleanFactor (a NOT-negated
// operand), bottoming out at a Predicate.
type SearchCondition interface {
	Node
	searchConditionNode()
}

// BooleanTerm is a left-folded OR: Left OR Right.
type BooleanTerm struct {
	SpanVal token.Span
	Left    SearchCondition
	Right   SearchCondition
}

func (b *BooleanTerm) Span() token.Span      { return b.SpanVal }
func (*BooleanTerm) searchConditionNode()     {}

// BooleanFactor is a leading NOT applied to its Operand: NOT <predicate>
// or NOT ( <search condition> ). The parser builds it only when NOT is
// present.
type BooleanFactor struct {
	SpanVal token.Span
	Negated bool
	Operand SearchCondition
}

func (b *BooleanFactor) Span() token.Span      { return b.SpanVal }
func (*BooleanFactor) searchConditionNode()     {}

// Predicate is implemented by every comparison-like leaf of a search
// condition.
type Predicate interface {
	SearchCondition
	predicateNode()
}

// ComparisonOp identifies a <comp op>.
type ComparisonOp int

const (
	CompEqual ComparisonOp = iota
	CompNotEqual
	CompLessThan
	CompGreaterThan
	CompLessOrEqual
	CompGreaterOrEqual
)

// ComparisonPredicate covers <row value constructor> <comp op> <row value constructor>.
type ComparisonPredicate struct {
	SpanVal token.Span
	Op      ComparisonOp
	Left    *RowValueConstructor
	Right   *RowValueConstructor
}

func (c *ComparisonPredicate) Span() token.Span      { return c.SpanVal }
func (*ComparisonPredicate) searchConditionNode()     {}
func (*ComparisonPredicate) predicateNode()           {}

// BetweenPredicate covers <rvc> [NOT] BETWEEN <rvc> AND <rvc>.
type BetweenPredicate struct {
	SpanVal token.Span
	Negated bool
	Operand *RowValueConstructor
	Low     *RowValueConstructor
	High    *RowValueConstructor
}

func (b *BetweenPredicate) Span() token.Span      { return b.SpanVal }
func (*BetweenPredicate) searchConditionNode()     {}
func (*BetweenPredicate) predicateNode()           {}

// LikePredicate covers <match value> [NOT] LIKE <pattern> [ESCAPE <char>].
type LikePredicate struct {
	SpanVal token.Span
	Negated bool
	Operand *RowValueConstructor
	Pattern *RowValueConstructor
	Escape  *RowValueConstructor
}

func (l *LikePredicate) Span() token.Span      { return l.SpanVal }
func (*LikePredicate) searchConditionNode()     {}
func (*LikePredicate) predicateNode()           {}

// NullPredicate covers <rvc> IS [NOT] NULL.
type NullPredicate struct {
	SpanVal token.Span
	Negated bool
	Operand *RowValueConstructor
}

func (n *NullPredicate) Span() token.Span      { return n.SpanVal }
func (*NullPredicate) searchConditionNode()     {}
func (*NullPredicate) predicateNode()           {}

// InPredicateValues is either a parenthesized value list or a subquery,
// the two forms the SQL-92 <in predicate value> can take.
type InPredicateValues struct {
	SpanVal  token.Span
	Values   []*RowValueConstructor
	Subquery QueryExpression
}

func (v *InPredicateValues) Span() token.Span { return v.SpanVal }

// InPredicate covers <rvc> [NOT] IN <in predicate value>.
type InPredicate struct {
	SpanVal token.Span
	Negated bool
	Operand *RowValueConstructor
	Values  *InPredicateValues
}

func (p *InPredicate) Span() token.Span      { return p.SpanVal }
func (*InPredicate) searchConditionNode()     {}
func (*InPredicate) predicateNode()           {}

// ExistsPredicate covers EXISTS ( <query expression> ).
type ExistsPredicate struct {
	SpanVal token.Span
	Query   QueryExpression
}

func (e *ExistsPredicate) Span() token.Span      { return e.SpanVal }
func (*ExistsPredicate) searchConditionNode()     {}
func (*ExistsPredicate) predicateNode()           {}
