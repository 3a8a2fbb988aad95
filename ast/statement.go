package ast

import "github.com/go-sqltoast/sqltoast/token"

// Statement is implemented by every top-level SQL-92 statement variant.
type Statement interface {
	Node
	statementNode()
}

// TemporaryKind distinguishes GLOBAL/LOCAL TEMPORARY tables from
// permanent ones.
type TemporaryKind int

const (
	NotTemporary TemporaryKind = iota
	GlobalTemporary
	LocalTemporary
)

// CreateSchemaStatement covers CREATE SCHEMA <name> [AUTHORIZATION <user>].
type CreateSchemaStatement struct {
	SpanVal       token.Span
	Name          *Identifier
	Authorization *Identifier
}

func (s *CreateSchemaStatement) Span() token.Span { return s.SpanVal }
func (*CreateSchemaStatement) statementNode()       {}

// DropBehavior is CASCADE or RESTRICT, the trailing clause on DROP
// statements.
type DropBehavior int

const (
	DropCascade DropBehavior = iota
	DropRestrict
)

// DropSchemaStatement covers DROP SCHEMA <name> [CASCADE|RESTRICT].
type DropSchemaStatement struct {
	SpanVal  token.Span
	Name     *Identifier
	Behavior DropBehavior
}

func (s *DropSchemaStatement) Span() token.Span { return s.SpanVal }
func (*DropSchemaStatement) statementNode()       {}

// CreateTableStatement covers CREATE [{GLOBAL|LOCAL} TEMPORARY] TABLE
// <name> ( <element>, ... ).
type CreateTableStatement struct {
	SpanVal   token.Span
	Temporary TemporaryKind
	Name      *Identifier
	Elements  []TableElement
}

func (s *CreateTableStatement) Span() token.Span { return s.SpanVal }
func (*CreateTableStatement) statementNode()       {}

// DropTableStatement covers DROP TABLE <name> [CASCADE|RESTRICT].
type DropTableStatement struct {
	SpanVal  token.Span
	Name     *Identifier
	Behavior DropBehavior
}

func (s *DropTableStatement) Span() token.Span { return s.SpanVal }
func (*DropTableStatement) statementNode()       {}

// AlterTableActionKind identifies which form of ALTER TABLE action a
// single AlterTableAction carries.
type AlterTableActionKind int

const (
	AlterAddColumn AlterTableActionKind = iota
	AlterAddConstraint
	AlterDropColumn
	AlterDropConstraint
	AlterSetColumnDefault
	AlterDropColumnDefault
)

// AlterTableAction is one <alter table action> of an ALTER TABLE
// statement.
type AlterTableAction struct {
	Kind       AlterTableActionKind
	Column     *ColumnDefinition // AlterAddColumn
	Constraint Constraint        // AlterAddConstraint
	Name       *Identifier       // AlterDrop*/AlterSet*
	Behavior   *DropBehavior     // AlterDropColumn/AlterDropConstraint
	Default    *DefaultClause    // AlterSetColumnDefault
}

// AlterTableStatement covers ALTER TABLE <name> <action>.
type AlterTableStatement struct {
	SpanVal token.Span
	Name    *Identifier
	Action  AlterTableAction
}

func (s *AlterTableStatement) Span() token.Span { return s.SpanVal }
func (*AlterTableStatement) statementNode()       {}

// CheckOptionKind is CASCADED or LOCAL on a WITH ... CHECK OPTION clause,
// or absent when the view carries no check option.
type CheckOptionKind int

const (
	CheckOptionNone CheckOptionKind = iota
	CheckOptionCascaded
	CheckOptionLocal
)

// CreateViewStatement covers CREATE VIEW <name> [(<cols>)] AS <query
// expression> [WITH [CASCADED|LOCAL] CHECK OPTION].
//
// Neither spec.md nor the original C++ implementation specifies this
// production's shape (no create_view.cc exists upstream); this follows
// CreateTableStatement's structural pattern and SQL-92's published
// grammar. See DESIGN.md.
type CreateViewStatement struct {
	SpanVal     token.Span
	Name        *Identifier
	Columns     []*Identifier
	Query       QueryExpression
	CheckOption CheckOptionKind
}

func (s *CreateViewStatement) Span() token.Span { return s.SpanVal }
func (*CreateViewStatement) statementNode()       {}

// DropViewStatement covers DROP VIEW <name> [CASCADE|RESTRICT]. See
// DESIGN.md for the same grounding note as CreateViewStatement.
type DropViewStatement struct {
	SpanVal  token.Span
	Name     *Identifier
	Behavior DropBehavior
}

func (s *DropViewStatement) Span() token.Span { return s.SpanVal }
func (*DropViewStatement) statementNode()       {}

// SelectStatement covers a top-level <query expression> used as a
// statement.
type SelectStatement struct {
	SpanVal token.Span
	Query   QueryExpression
}

func (s *SelectStatement) Span() token.Span { return s.SpanVal }
func (*SelectStatement) statementNode()       {}

// InsertSource is implemented by InsertQuerySource (a query expression
// supplying the rows) and InsertDefaultValuesSource.
type InsertSource interface {
	insertSourceNode()
}

// InsertQuerySource wraps a query expression (including a bare VALUES
// list) as the source of an INSERT.
type InsertQuerySource struct {
	Query QueryExpression
}

func (*InsertQuerySource) insertSourceNode() {}

// InsertDefaultValuesSource covers INSERT INTO <name> DEFAULT VALUES.
type InsertDefaultValuesSource struct{}

func (*InsertDefaultValuesSource) insertSourceNode() {}

// InsertStatement covers INSERT INTO <name> [(<cols>)] <source>.
type InsertStatement struct {
	SpanVal token.Span
	Table   *Identifier
	Columns []*Identifier
	Source  InsertSource
}

func (s *InsertStatement) Span() token.Span { return s.SpanVal }
func (*InsertStatement) statementNode()       {}

// DeleteStatement covers DELETE FROM <name> [WHERE <search condition>].
type DeleteStatement struct {
	SpanVal token.Span
	Table   *Identifier
	Where   SearchCondition
}

func (s *DeleteStatement) Span() token.Span { return s.SpanVal }
func (*DeleteStatement) statementNode()       {}

// SetClauseValue is implemented by ValueExpression, NullValue, and
// DefaultValue: the three things an UPDATE SET clause may assign.
type SetClauseValue interface {
	Node
}

// SetClause is one <column name> = <value> item of an UPDATE's SET list.
type SetClause struct {
	Column *Identifier
	Value  SetClauseValue
}

// UpdateStatement covers UPDATE <name> SET <clause>, ... [WHERE <search
// condition>].
type UpdateStatement struct {
	SpanVal token.Span
	Table   *Identifier
	Set     []SetClause
	Where   SearchCondition
}

func (s *UpdateStatement) Span() token.Span { return s.SpanVal }
func (*UpdateStatement) statementNode()       {}

// CommitStatement covers COMMIT [WORK].
type CommitStatement struct {
	SpanVal token.Span
}

func (s *CommitStatement) Span() token.Span { return s.SpanVal }
func (*CommitStatement) statementNode()       {}

// RollbackStatement covers ROLLBACK [WORK].
type RollbackStatement struct {
	SpanVal token.Span
}

func (s *RollbackStatement) Span() token.Span { return s.SpanVal }
func (*RollbackStatement) statementNode()       {}

// GrantAction identifies one privilege named in a GRANT statement's
// privilege list.
type GrantAction int

const (
	GrantSelect GrantAction = iota
	GrantInsert
	GrantUpdate
	GrantDelete
	GrantReferences
	GrantAllPrivileges
)

// GrantStatement covers GRANT <privileges> ON [TABLE] <name> TO
// <grantees> [WITH GRANT OPTION].
//
// Neither spec.md nor the original C++ implementation specifies this
// production's shape (parse.h declares parse_grant but no grant.cc
// exists upstream); this follows SQL-92's published grammar directly.
// See DESIGN.md.
type GrantStatement struct {
	SpanVal     token.Span
	Privileges  []GrantAction
	Object      *Identifier
	PublicGrant bool
	Grantees    []*Identifier
	WithGrantOption bool
}

func (s *GrantStatement) Span() token.Span { return s.SpanVal }
func (*GrantStatement) statementNode()       {}
