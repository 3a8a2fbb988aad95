package ast

import "github.com/go-sqltoast/sqltoast/token"

// DefaultClauseKind distinguishes the keyword-valued forms of a DEFAULT
// clause from a literal/signed-numeric default.
type DefaultClauseKind int

const (
	DefaultNull DefaultClauseKind = iota
	DefaultUser
	DefaultCurrentUser
	DefaultSessionUser
	DefaultSystemUser
	DefaultCurrentDate
	DefaultCurrentTime
	DefaultCurrentTimestamp
	DefaultLiteral
)

// DefaultClause covers DEFAULT <default option>.
type DefaultClause struct {
	SpanVal   token.Span
	Kind      DefaultClauseKind
	Precision *int // CURRENT_TIME/CURRENT_TIMESTAMP(precision)
	Literal   *Literal
	Signed    *UnarySign
}

func (d *DefaultClause) Span() token.Span { return d.SpanVal }

// MatchType is FULL or PARTIAL in a <references specification>.
type MatchType int

const (
	MatchFull MatchType = iota
	MatchPartial
)

// ReferentialAction is one of the four referential actions a <referential
// triggered action> can name.
type ReferentialAction int

const (
	ActionCascade ReferentialAction = iota
	ActionSetNull
	ActionSetDefault
	ActionNoAction
)

// ReferencesSpecification covers REFERENCES <table> [(<cols>)] [MATCH
// <type>] [ON UPDATE <action>] [ON DELETE <action>].
type ReferencesSpecification struct {
	SpanVal      token.Span
	Table        *Identifier
	Columns      []*Identifier
	Match        *MatchType
	OnUpdate     *ReferentialAction
	OnDelete     *ReferentialAction
}

func (r *ReferencesSpecification) Span() token.Span { return r.SpanVal }

// Constraint is implemented by every table- and column-level constraint
// variant: unique, primary key, foreign key, not-null, and the
// accepted-then-rejected CHECK constraint.
type Constraint interface {
	Node
	constraintNode()
}

// UniqueConstraint covers [CONSTRAINT <name>] UNIQUE (<cols>), at table
// level, or the bare UNIQUE column constraint when Columns is nil.
type UniqueConstraint struct {
	SpanVal token.Span
	Name    *Identifier
	Columns []*Identifier
}

func (u *UniqueConstraint) Span() token.Span { return u.SpanVal }
func (*UniqueConstraint) constraintNode()     {}

// PrimaryKeyConstraint covers [CONSTRAINT <name>] PRIMARY KEY (<cols>), at
// table level, or the bare PRIMARY KEY column constraint when Columns is
// nil.
type PrimaryKeyConstraint struct {
	SpanVal token.Span
	Name    *Identifier
	Columns []*Identifier
}

func (p *PrimaryKeyConstraint) Span() token.Span { return p.SpanVal }
func (*PrimaryKeyConstraint) constraintNode()     {}

// ForeignKeyConstraint covers [CONSTRAINT <name>] FOREIGN KEY (<cols>)
// <references specification>, at table level, or the bare REFERENCES
// column constraint when Columns is nil.
type ForeignKeyConstraint struct {
	SpanVal    token.Span
	Name       *Identifier
	Columns    []*Identifier
	References *ReferencesSpecification
}

func (f *ForeignKeyConstraint) Span() token.Span { return f.SpanVal }
func (*ForeignKeyConstraint) constraintNode()     {}

// NotNullConstraint covers the column-level NOT NULL constraint.
type NotNullConstraint struct {
	SpanVal token.Span
	Name    *Identifier
}

func (n *NotNullConstraint) Span() token.Span { return n.SpanVal }
func (*NotNullConstraint) constraintNode()     {}

// CheckConstraint names the CHECK constraint shape. The parser never
// builds it: on a CHECK keyword it reports the precise syntax error
// "CHECK constraints are not supported." rather than a generic "expected
// constraint" message. See DESIGN.md for the rationale.
type CheckConstraint struct {
	SpanVal token.Span
	Name    *Identifier
}

func (c *CheckConstraint) Span() token.Span { return c.SpanVal }
func (*CheckConstraint) constraintNode()     {}

// ColumnDefinition covers <column name> <data type> [DEFAULT <clause>]
// [<constraint> ...] [COLLATE <identifier>].
type ColumnDefinition struct {
	SpanVal     token.Span
	Name        *Identifier
	Type        DataType
	Default     *DefaultClause
	Constraints []Constraint
	Collate     *Identifier
}

func (c *ColumnDefinition) Span() token.Span { return c.SpanVal }

// TableElement is implemented by ColumnDefinition and the table-level
// Constraint variants, the two things a CREATE TABLE element list may
// contain.
type TableElement interface {
	Node
}
