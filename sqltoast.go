// Package sqltoast provides a lexer, recursive-descent parser, and AST
// for SQL-92 data definition and data manipulation statements.
//
// This package parses text into a tree of statements that can be
// inspected and walked in Go; it performs no semantic analysis and
// executes nothing.
//
// Example usage:
//
//	result := sqltoast.Parse("SELECT * FROM widgets WHERE id = 1;")
//	if result.Code != sqltoast.OK {
//	    // handle result.ErrorText
//	}
//	// work with result.Statements
package sqltoast

import (
	"github.com/go-sqltoast/sqltoast/ast"
	"github.com/go-sqltoast/sqltoast/lexer"
	"github.com/go-sqltoast/sqltoast/parser"
	"github.com/go-sqltoast/sqltoast/token"
)

// Parse parses src as a sequence of semicolon-separated SQL-92
// statements (the last may end at end of input) using default options.
func Parse(src string) Result {
	return ParseWithOptions(src, Options{})
}

// ParseWithOptions parses src under the given Options.
func ParseWithOptions(src string, opts Options) Result {
	return parser.Parse(src, opts)
}

// Tokenize returns every token scanned from src, including the
// terminal EOF token, or the first lexical error encountered.
func Tokenize(src string) ([]token.Token, error) {
	return lexer.Tokenize(src)
}

// Re-export the parser's result and option types for convenience so
// callers need only import this package.
type (
	Result  = parser.Result
	Options = parser.Options
	Code    = parser.Code
)

const (
	OK          = parser.OK
	InputError  = parser.InputError
	SyntaxError = parser.SyntaxError
)

// Re-export the core AST and token types.
type (
	Node       = ast.Node
	Program    = ast.Program
	Statement  = ast.Statement
	Identifier = ast.Identifier
	Token      = token.Token
	Symbol     = token.Symbol
	Span       = token.Span
)

// Statement types.
type (
	CreateSchemaStatement = ast.CreateSchemaStatement
	DropSchemaStatement   = ast.DropSchemaStatement
	CreateTableStatement  = ast.CreateTableStatement
	DropTableStatement    = ast.DropTableStatement
	AlterTableStatement   = ast.AlterTableStatement
	CreateViewStatement   = ast.CreateViewStatement
	DropViewStatement     = ast.DropViewStatement
	SelectStatement       = ast.SelectStatement
	InsertStatement       = ast.InsertStatement
	DeleteStatement       = ast.DeleteStatement
	UpdateStatement       = ast.UpdateStatement
	CommitStatement       = ast.CommitStatement
	RollbackStatement     = ast.RollbackStatement
	GrantStatement        = ast.GrantStatement
)

// Expression and predicate types.
type (
	ValueExpression = ast.ValueExpression
	SearchCondition = ast.SearchCondition
	Predicate       = ast.Predicate
	ColumnReference = ast.ColumnReference
	Literal         = ast.Literal
	QueryExpression = ast.QueryExpression
	TableReference  = ast.TableReference
)

// Visitor is implemented by callers of Walk. Visit is called once for
// every node in pre-order; if it returns nil, Walk does not descend into
// that node's children.
type Visitor interface {
	Visit(node ast.Node) Visitor
}

// Walk traverses an AST in depth-first pre-order, calling v.Visit on
// each node reachable from node. It understands every statement,
// expression, predicate, and query-expression node this package
// produces.
func Walk(v Visitor, node ast.Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *ast.Program:
		for _, stmt := range n.Statements {
			Walk(v, stmt)
		}

	case *ast.CreateTableStatement:
		for _, elem := range n.Elements {
			Walk(v, elem)
		}
	case *ast.AlterTableStatement:
		if n.Action.Column != nil {
			Walk(v, n.Action.Column)
		}
	case *ast.CreateViewStatement:
		Walk(v, n.Query)
	case *ast.SelectStatement:
		Walk(v, n.Query)
	case *ast.InsertStatement:
		if src, ok := n.Source.(*ast.InsertQuerySource); ok {
			Walk(v, src.Query)
		}
	case *ast.DeleteStatement:
		Walk(v, n.Where)
	case *ast.UpdateStatement:
		for _, set := range n.Set {
			if ve, ok := set.Value.(ast.ValueExpression); ok {
				Walk(v, ve)
			}
		}
		Walk(v, n.Where)

	case *ast.ColumnDefinition:
		Walk(v, n.Type)

	case *ast.QuerySpecification:
		for _, col := range n.Selected {
			Walk(v, col.Expression)
		}
		Walk(v, n.TableExpr)
	case *ast.TableExpression:
		for _, t := range n.ReferencedTables {
			Walk(v, t)
		}
		Walk(v, n.Where)
		for _, g := range n.GroupBy {
			Walk(v, g.Column)
		}
		Walk(v, n.Having)
	case *ast.TableValueConstructor:
		for _, row := range n.Rows {
			Walk(v, row)
		}
	case *ast.SetOperationQueryExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ast.SubqueryExpression:
		Walk(v, n.Query)
	case *ast.DerivedTable:
		Walk(v, n.Query)
	case *ast.JoinedTable:
		Walk(v, n.Left)
		Walk(v, n.Right)
		if n.Spec != nil {
			Walk(v, n.Spec.Condition)
		}
	case *ast.JoinedTableReference:
		Walk(v, n.Joined)

	case *ast.BooleanTerm:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ast.BooleanFactor:
		Walk(v, n.Operand)
	case *ast.ComparisonPredicate:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ast.BetweenPredicate:
		Walk(v, n.Operand)
		Walk(v, n.Low)
		Walk(v, n.High)
	case *ast.LikePredicate:
		Walk(v, n.Operand)
		Walk(v, n.Pattern)
		if n.Escape != nil {
			Walk(v, n.Escape)
		}
	case *ast.NullPredicate:
		Walk(v, n.Operand)
	case *ast.InPredicate:
		Walk(v, n.Operand)
		for _, val := range n.Values.Values {
			Walk(v, val)
		}
		Walk(v, n.Values.Subquery)
	case *ast.ExistsPredicate:
		Walk(v, n.Query)

	case *ast.RowValueConstructor:
		for _, el := range n.Elements {
			Walk(v, el)
		}
	case *ast.BinaryValueExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ast.UnarySign:
		Walk(v, n.Operand)
	case *ast.SetFunction:
		Walk(v, n.Argument)
	case *ast.CaseExpression:
		Walk(v, n.Operand)
		for _, w := range n.When {
			Walk(v, w.Condition)
			Walk(v, w.Result)
		}
		Walk(v, n.Else)
	}
}

// Inspector collects every node of an AST for repeated ad hoc querying.
type Inspector struct {
	nodes []ast.Node
}

type collector struct {
	insp *Inspector
}

func (c collector) Visit(node ast.Node) Visitor {
	if node == nil {
		return nil
	}
	c.insp.nodes = append(c.insp.nodes, node)
	return c
}

// NewInspector walks every statement in result once and returns an
// Inspector over every node they contain.
func NewInspector(result Result) *Inspector {
	insp := &Inspector{}
	program := &ast.Program{Statements: result.Statements}
	Walk(collector{insp}, program)
	return insp
}

// FindColumnReferences returns every column reference in the AST.
func (insp *Inspector) FindColumnReferences() []*ast.ColumnReference {
	var out []*ast.ColumnReference
	for _, node := range insp.nodes {
		if c, ok := node.(*ast.ColumnReference); ok {
			out = append(out, c)
		}
	}
	return out
}

// FindSelectStatements returns every top-level SELECT statement in the
// AST.
func (insp *Inspector) FindSelectStatements() []*ast.SelectStatement {
	var out []*ast.SelectStatement
	for _, node := range insp.nodes {
		if s, ok := node.(*ast.SelectStatement); ok {
			out = append(out, s)
		}
	}
	return out
}

// FindSetFunctions returns every set function (COUNT/AVG/MAX/MIN/SUM)
// call in the AST.
func (insp *Inspector) FindSetFunctions() []*ast.SetFunction {
	var out []*ast.SetFunction
	for _, node := range insp.nodes {
		if s, ok := node.(*ast.SetFunction); ok {
			out = append(out, s)
		}
	}
	return out
}
