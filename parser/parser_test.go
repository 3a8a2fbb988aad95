package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-sqltoast/sqltoast/ast"
)

func mustParse(t *testing.T, src string) []ast.Statement {
	t.Helper()
	result := Parse(src, Options{})
	require.Equal(t, OK, result.Code, result.ErrorText)
	return result.Statements
}

func TestParseCreateTable(t *testing.T) {
	stmts := mustParse(t, `CREATE TABLE widgets (
		id INTEGER NOT NULL PRIMARY KEY,
		name VARCHAR(40) DEFAULT 'unnamed',
		price NUMERIC(10,2),
		CONSTRAINT uq_name UNIQUE (name)
	);`)
	require.Len(t, stmts, 1)
	ct, ok := stmts[0].(*ast.CreateTableStatement)
	require.True(t, ok)
	assert.Equal(t, "widgets", ct.Name.Name)
	require.Len(t, ct.Elements, 4)

	id, ok := ct.Elements[0].(*ast.ColumnDefinition)
	require.True(t, ok)
	assert.Equal(t, "id", id.Name.Name)
	require.Len(t, id.Constraints, 2)
	_, isNotNull := id.Constraints[0].(*ast.NotNullConstraint)
	assert.True(t, isNotNull)
	_, isPK := id.Constraints[1].(*ast.PrimaryKeyConstraint)
	assert.True(t, isPK)

	name, ok := ct.Elements[1].(*ast.ColumnDefinition)
	require.True(t, ok)
	require.NotNil(t, name.Default)
	assert.Equal(t, ast.DefaultLiteral, name.Default.Kind)

	_, isTableConstraint := ct.Elements[3].(*ast.UniqueConstraint)
	assert.True(t, isTableConstraint)
}

func TestParseCreateTableWithForeignKey(t *testing.T) {
	stmts := mustParse(t, `CREATE TABLE orders (
		id INTEGER,
		customer_id INTEGER REFERENCES customers (id) ON DELETE CASCADE
	);`)
	ct := stmts[0].(*ast.CreateTableStatement)
	col := ct.Elements[1].(*ast.ColumnDefinition)
	require.Len(t, col.Constraints, 1)
	fk, ok := col.Constraints[0].(*ast.ForeignKeyConstraint)
	require.True(t, ok)
	assert.Equal(t, "customers", fk.References.Table.Name)
	require.NotNil(t, fk.References.OnDelete)
	assert.Equal(t, ast.ActionCascade, *fk.References.OnDelete)
}

func TestParseDropTableWithCascade(t *testing.T) {
	stmts := mustParse(t, "DROP TABLE widgets CASCADE;")
	dt := stmts[0].(*ast.DropTableStatement)
	assert.Equal(t, "widgets", dt.Name.Name)
	assert.Equal(t, ast.DropCascade, dt.Behavior)
}

func TestParseDropTableDefaultsToCascade(t *testing.T) {
	stmts := mustParse(t, "DROP TABLE widgets;")
	dt := stmts[0].(*ast.DropTableStatement)
	assert.Equal(t, ast.DropCascade, dt.Behavior)
}

func TestParseEmptyInputIsInputError(t *testing.T) {
	result := Parse("", Options{})
	assert.Equal(t, InputError, result.Code)
	assert.Empty(t, result.Statements)
}

func TestParseWhitespaceOnlyInputIsInputError(t *testing.T) {
	result := Parse("   \n\t  ", Options{})
	assert.Equal(t, InputError, result.Code)
}

func TestParseLoneSemicolonIsOKWithNoStatements(t *testing.T) {
	result := Parse(";", Options{})
	require.Equal(t, OK, result.Code)
	assert.Empty(t, result.Statements)

	result = Parse(";;", Options{})
	require.Equal(t, OK, result.Code)
	assert.Empty(t, result.Statements)
}

func TestParseStatementWithoutTrailingSemicolonSucceeds(t *testing.T) {
	stmts := mustParse(t, "SELECT 1 FROM widgets")
	require.Len(t, stmts, 1)
	_, ok := stmts[0].(*ast.SelectStatement)
	assert.True(t, ok)
}

func TestParseSkipsStandaloneSemicolonsBetweenStatements(t *testing.T) {
	stmts := mustParse(t, ";;COMMIT;;ROLLBACK;;")
	require.Len(t, stmts, 2)
	_, isCommit := stmts[0].(*ast.CommitStatement)
	assert.True(t, isCommit)
	_, isRollback := stmts[1].(*ast.RollbackStatement)
	assert.True(t, isRollback)
}

func TestParseAlterTableAddColumn(t *testing.T) {
	stmts := mustParse(t, "ALTER TABLE widgets ADD COLUMN weight FLOAT;")
	at := stmts[0].(*ast.AlterTableStatement)
	assert.Equal(t, ast.AlterAddColumn, at.Action.Kind)
	require.NotNil(t, at.Action.Column)
	assert.Equal(t, "weight", at.Action.Column.Name.Name)
}

func TestParseCreateSchema(t *testing.T) {
	stmts := mustParse(t, "CREATE SCHEMA accounting AUTHORIZATION alice;")
	cs := stmts[0].(*ast.CreateSchemaStatement)
	assert.Equal(t, "accounting", cs.Name.Name)
	assert.Equal(t, "alice", cs.Authorization.Name)
}

func TestParseSimpleSelect(t *testing.T) {
	stmts := mustParse(t, "SELECT id, name FROM widgets WHERE price > 10 AND name = 'bolt';")
	sel := stmts[0].(*ast.SelectStatement)
	spec := sel.Query.(*ast.QuerySpecification)
	require.Len(t, spec.Selected, 2)
	require.NotNil(t, spec.TableExpr.Where)
}

func TestParseSelectStarWithAlias(t *testing.T) {
	stmts := mustParse(t, "SELECT * FROM widgets w;")
	sel := stmts[0].(*ast.SelectStatement)
	spec := sel.Query.(*ast.QuerySpecification)
	require.Len(t, spec.Selected, 1)
	assert.True(t, spec.Selected[0].Star)
	table := spec.TableExpr.ReferencedTables[0].(*ast.Table)
	assert.Equal(t, "w", table.Alias.Name)
}

func TestParseSelectWithInnerJoin(t *testing.T) {
	stmts := mustParse(t, `SELECT o.id, c.name FROM orders o
		INNER JOIN customers c ON o.customer_id = c.id
		WHERE c.name = 'acme';`)
	sel := stmts[0].(*ast.SelectStatement)
	spec := sel.Query.(*ast.QuerySpecification)
	joined, ok := spec.TableExpr.ReferencedTables[0].(*ast.JoinedTableReference)
	require.True(t, ok)
	assert.Equal(t, ast.JoinInner, joined.Joined.Type)
	require.NotNil(t, joined.Joined.Spec)
	require.NotNil(t, joined.Joined.Spec.Condition)
}

func TestParseSelectWithLeftOuterJoinAndGroupBy(t *testing.T) {
	stmts := mustParse(t, `SELECT d.name, COUNT(*) FROM departments d
		LEFT OUTER JOIN employees e ON d.id = e.department_id
		GROUP BY d.name
		HAVING COUNT(*) > 1;`)
	sel := stmts[0].(*ast.SelectStatement)
	spec := sel.Query.(*ast.QuerySpecification)
	joined := spec.TableExpr.ReferencedTables[0].(*ast.JoinedTableReference)
	assert.Equal(t, ast.JoinLeft, joined.Joined.Type)
	require.Len(t, spec.TableExpr.GroupBy, 1)
	require.NotNil(t, spec.TableExpr.Having)
}

func TestParseSelectWithSubqueryInWhere(t *testing.T) {
	stmts := mustParse(t, `SELECT id FROM orders WHERE customer_id IN (SELECT id FROM customers WHERE active = 1);`)
	sel := stmts[0].(*ast.SelectStatement)
	spec := sel.Query.(*ast.QuerySpecification)
	pred := spec.TableExpr.Where.(*ast.InPredicate)
	require.NotNil(t, pred.Values.Subquery)
}

func TestParseSelectWithUnion(t *testing.T) {
	stmts := mustParse(t, "SELECT id FROM a UNION ALL SELECT id FROM b;")
	sel := stmts[0].(*ast.SelectStatement)
	setOp, ok := sel.Query.(*ast.SetOperationQueryExpression)
	require.True(t, ok)
	assert.Equal(t, ast.SetOperatorUnion, setOp.Operator)
	assert.True(t, setOp.All)
}

func TestParseBetweenAndLikePredicates(t *testing.T) {
	stmts := mustParse(t, "SELECT id FROM widgets WHERE price BETWEEN 1 AND 10 AND name LIKE 'a%' ESCAPE '\\';")
	sel := stmts[0].(*ast.SelectStatement)
	spec := sel.Query.(*ast.QuerySpecification)
	and := spec.TableExpr.Where.(*ast.BooleanTerm)
	_, isBetween := and.Left.(*ast.BetweenPredicate)
	assert.True(t, isBetween)
	like, ok := and.Right.(*ast.LikePredicate)
	require.True(t, ok)
	require.NotNil(t, like.Escape)
}

func TestParseLessOrEqualAndGreaterOrEqual(t *testing.T) {
	stmts := mustParse(t, "SELECT id FROM widgets WHERE price <= 10 AND price >= 1;")
	sel := stmts[0].(*ast.SelectStatement)
	spec := sel.Query.(*ast.QuerySpecification)
	and := spec.TableExpr.Where.(*ast.BooleanTerm)
	le := and.Left.(*ast.ComparisonPredicate)
	assert.Equal(t, ast.CompLessOrEqual, le.Op)
	ge := and.Right.(*ast.ComparisonPredicate)
	assert.Equal(t, ast.CompGreaterOrEqual, ge.Op)
}

func TestParseNotAndParenthesizedSearchCondition(t *testing.T) {
	stmts := mustParse(t, "SELECT id FROM widgets WHERE NOT (price = 1 OR price = 2);")
	sel := stmts[0].(*ast.SelectStatement)
	spec := sel.Query.(*ast.QuerySpecification)
	factor, ok := spec.TableExpr.Where.(*ast.BooleanFactor)
	require.True(t, ok)
	assert.True(t, factor.Negated)
	_, isOr := factor.Operand.(*ast.BooleanTerm)
	assert.True(t, isOr)
}

func TestParseCaseExpression(t *testing.T) {
	stmts := mustParse(t, `SELECT CASE WHEN price > 100 THEN 'expensive' ELSE 'cheap' END FROM widgets;`)
	sel := stmts[0].(*ast.SelectStatement)
	spec := sel.Query.(*ast.QuerySpecification)
	caseExpr, ok := spec.Selected[0].Expression.(*ast.CaseExpression)
	require.True(t, ok)
	require.Len(t, caseExpr.When, 1)
	require.NotNil(t, caseExpr.Else)
}

func TestParseInsertWithValues(t *testing.T) {
	stmts := mustParse(t, "INSERT INTO widgets (id, name) VALUES (1, 'bolt');")
	ins := stmts[0].(*ast.InsertStatement)
	assert.Equal(t, "widgets", ins.Table.Name)
	require.Len(t, ins.Columns, 2)
	src, ok := ins.Source.(*ast.InsertQuerySource)
	require.True(t, ok)
	tvc, ok := src.Query.(*ast.TableValueConstructor)
	require.True(t, ok)
	require.Len(t, tvc.Rows, 1)
}

func TestParseInsertDefaultValues(t *testing.T) {
	stmts := mustParse(t, "INSERT INTO widgets DEFAULT VALUES;")
	ins := stmts[0].(*ast.InsertStatement)
	_, ok := ins.Source.(*ast.InsertDefaultValuesSource)
	assert.True(t, ok)
}

func TestParseDeleteWithWhere(t *testing.T) {
	stmts := mustParse(t, "DELETE FROM widgets WHERE id = 1;")
	del := stmts[0].(*ast.DeleteStatement)
	assert.Equal(t, "widgets", del.Table.Name)
	require.NotNil(t, del.Where)
}

func TestParseUpdateSetsMultipleColumns(t *testing.T) {
	stmts := mustParse(t, "UPDATE widgets SET price = 9, name = DEFAULT WHERE id = 1;")
	upd := stmts[0].(*ast.UpdateStatement)
	require.Len(t, upd.Set, 2)
	_, isDefault := upd.Set[1].Value.(*ast.DefaultValue)
	assert.True(t, isDefault)
}

func TestParseCommitAndRollback(t *testing.T) {
	stmts := mustParse(t, "COMMIT WORK; ROLLBACK;")
	require.Len(t, stmts, 2)
	_, isCommit := stmts[0].(*ast.CommitStatement)
	assert.True(t, isCommit)
	_, isRollback := stmts[1].(*ast.RollbackStatement)
	assert.True(t, isRollback)
}

func TestParseGrantToPublicWithGrantOption(t *testing.T) {
	stmts := mustParse(t, "GRANT SELECT, UPDATE ON widgets TO PUBLIC WITH GRANT OPTION;")
	grant := stmts[0].(*ast.GrantStatement)
	require.Len(t, grant.Privileges, 2)
	assert.True(t, grant.PublicGrant)
	assert.True(t, grant.WithGrantOption)
}

func TestParseGrantAllPrivilegesToNamedGrantees(t *testing.T) {
	stmts := mustParse(t, "GRANT ALL PRIVILEGES ON TABLE widgets TO alice, bob;")
	grant := stmts[0].(*ast.GrantStatement)
	require.Len(t, grant.Privileges, 1)
	assert.Equal(t, ast.GrantAllPrivileges, grant.Privileges[0])
	require.Len(t, grant.Grantees, 2)
}

func TestParseCreateAndDropView(t *testing.T) {
	stmts := mustParse(t, `CREATE VIEW cheap_widgets AS SELECT id, name FROM widgets WHERE price < 5 WITH LOCAL CHECK OPTION;
		DROP VIEW cheap_widgets RESTRICT;`)
	require.Len(t, stmts, 2)
	view := stmts[0].(*ast.CreateViewStatement)
	assert.Equal(t, "cheap_widgets", view.Name.Name)
	assert.Equal(t, ast.CheckOptionLocal, view.CheckOption)
	drop := stmts[1].(*ast.DropViewStatement)
	assert.Equal(t, ast.DropRestrict, drop.Behavior)
}

func TestParseDisableStatementConstructionSkipsAllocation(t *testing.T) {
	result := Parse("CREATE TABLE widgets (id INTEGER);", Options{DisableStatementConstruction: true})
	require.Equal(t, OK, result.Code)
	require.Len(t, result.Statements, 1)
	ct := result.Statements[0].(*ast.CreateTableStatement)
	col := ct.Elements[0].(*ast.ColumnDefinition)
	assert.Nil(t, col.Type)
}

func TestParseSyntaxErrorReportsCaretPosition(t *testing.T) {
	result := Parse("SELECT FROM widgets;", Options{})
	require.Equal(t, SyntaxError, result.Code)
	assert.Contains(t, result.ErrorText, "SELECT FROM widgets;")
	assert.Contains(t, result.ErrorText, "^")
}

func TestParseCheckConstraintIsRejected(t *testing.T) {
	result := Parse("CREATE TABLE widgets (price INTEGER CHECK (price > 0));", Options{})
	require.Equal(t, SyntaxError, result.Code)
	assert.Contains(t, result.ErrorText, "CHECK constraints are not supported")
}

func TestParseDeepestErrorWinsAcrossBacktracking(t *testing.T) {
	result := Parse("SELECT id FROM widgets WHERE id = ;", Options{})
	require.Equal(t, SyntaxError, result.Code)
	assert.Contains(t, result.ErrorText, "Expected value expression")
}
