package parser

import (
	"github.com/go-sqltoast/sqltoast/ast"
	"github.com/go-sqltoast/sqltoast/token"
)

// parseStatement dispatches on the leading keyword of a single SQL
// statement, per the "every statement begins with a keyword and ends
// with a semicolon" discipline this grammar follows throughout.
func (ctx *Context) parseStatement() (ast.Statement, bool) {
	switch {
	case ctx.has(token.CREATE):
		return ctx.parseCreate()
	case ctx.has(token.DROP):
		return ctx.parseDrop()
	case ctx.has(token.ALTER):
		return ctx.parseAlterTable()
	case ctx.has(token.SELECT):
		return ctx.parseSelectStatement()
	case ctx.has(token.INSERT):
		return ctx.parseInsert()
	case ctx.has(token.DELETE):
		return ctx.parseDelete()
	case ctx.has(token.UPDATE):
		return ctx.parseUpdate()
	case ctx.has(token.COMMIT):
		return ctx.parseCommit()
	case ctx.has(token.ROLLBACK):
		return ctx.parseRollback()
	case ctx.has(token.GRANT):
		return ctx.parseGrant()
	}
	ctx.syntaxErrorf("SQL statements begin with a keyword and end with a semicolon, but found %s.", ctx.cur.Symbol)
	return nil, false
}

func (ctx *Context) parseCreate() (ast.Statement, bool) {
	switch {
	case ctx.hasSequence(token.CREATE, token.SCHEMA):
		return ctx.parseCreateSchema()
	case ctx.hasSequence(token.CREATE, token.TABLE):
		return ctx.parseCreateTable()
	case ctx.hasSequence(token.CREATE, token.GLOBAL), ctx.hasSequence(token.CREATE, token.LOCAL):
		return ctx.parseCreateTable()
	case ctx.hasSequence(token.CREATE, token.VIEW):
		return ctx.parseCreateView()
	}
	if !ctx.advance2() {
		return nil, false
	}
	ctx.syntaxErrorf("Failed to recognize any valid SQL statement.")
	return nil, false
}

func (ctx *Context) parseDrop() (ast.Statement, bool) {
	switch {
	case ctx.hasSequence(token.DROP, token.SCHEMA):
		return ctx.parseDropSchema()
	case ctx.hasSequence(token.DROP, token.TABLE):
		return ctx.parseDropTable()
	case ctx.hasSequence(token.DROP, token.VIEW):
		return ctx.parseDropView()
	}
	if !ctx.advance2() {
		return nil, false
	}
	ctx.syntaxErrorf("Failed to recognize any valid SQL statement.")
	return nil, false
}

func (ctx *Context) parseDropBehavior() ast.DropBehavior {
	if ctx.has(token.CASCADE) {
		ctx.advance2()
		return ast.DropCascade
	}
	if ctx.has(token.RESTRICT) {
		ctx.advance2()
		return ast.DropRestrict
	}
	return ast.DropCascade
}

// parseCreateSchema covers CREATE SCHEMA <name> [AUTHORIZATION <user>].
func (ctx *Context) parseCreateSchema() (ast.Statement, bool) {
	start := ctx.cur.Span
	if !ctx.expectSequence(token.CREATE, token.SCHEMA) {
		return nil, false
	}
	var name, auth *ast.Identifier
	if !ctx.has(token.AUTHORIZATION) {
		n, ok := ctx.parseIdentifier()
		if !ok {
			return nil, false
		}
		name = n
	}
	if ctx.has(token.AUTHORIZATION) {
		if !ctx.advance2() {
			return nil, false
		}
		a, ok := ctx.parseIdentifier()
		if !ok {
			return nil, false
		}
		auth = a
	}
	if name == nil && auth == nil {
		ctx.syntaxErrorf("Expected schema name or AUTHORIZATION but found %s.", ctx.cur.Symbol)
		return nil, false
	}
	return &ast.CreateSchemaStatement{SpanVal: spanTo(start, ctx.cur.Span), Name: name, Authorization: auth}, true
}

// parseDropSchema covers DROP SCHEMA <name> [CASCADE|RESTRICT].
func (ctx *Context) parseDropSchema() (ast.Statement, bool) {
	start := ctx.cur.Span
	if !ctx.expectSequence(token.DROP, token.SCHEMA) {
		return nil, false
	}
	name, ok := ctx.parseIdentifier()
	if !ok {
		return nil, false
	}
	behavior := ctx.parseDropBehavior()
	return &ast.DropSchemaStatement{SpanVal: spanTo(start, ctx.cur.Span), Name: name, Behavior: behavior}, true
}

// parseCreateTable covers CREATE [{GLOBAL|LOCAL} TEMPORARY] TABLE <name>
// ( <element>, ... ).
func (ctx *Context) parseCreateTable() (ast.Statement, bool) {
	start := ctx.cur.Span
	if !ctx.advance2() { // consume CREATE
		return nil, false
	}
	temp := ast.NotTemporary
	if ctx.hasAny(token.GLOBAL, token.LOCAL) {
		if ctx.has(token.GLOBAL) {
			temp = ast.GlobalTemporary
		} else {
			temp = ast.LocalTemporary
		}
		if !ctx.advance2() {
			return nil, false
		}
		if !ctx.expect(token.TEMPORARY) {
			return nil, false
		}
	}
	if !ctx.expect(token.TABLE) {
		return nil, false
	}
	name, ok := ctx.parseIdentifier()
	if !ok {
		return nil, false
	}
	if !ctx.expect(token.LPAREN) {
		return nil, false
	}
	var elements []ast.TableElement
	for {
		if ctx.hasAny(token.UNIQUE, token.PRIMARY, token.FOREIGN, token.CHECK, token.CONSTRAINT) {
			c, ok := ctx.parseTableConstraint()
			if !ok {
				return nil, false
			}
			elements = append(elements, c)
		} else {
			col, ok := ctx.parseColumnDefinition()
			if !ok {
				return nil, false
			}
			elements = append(elements, col)
		}
		if !ctx.has(token.COMMA) {
			break
		}
		if !ctx.advance2() {
			return nil, false
		}
	}
	if !ctx.expect(token.RPAREN) {
		return nil, false
	}
	return &ast.CreateTableStatement{SpanVal: spanTo(start, ctx.cur.Span), Temporary: temp, Name: name, Elements: elements}, true
}

// parseDropTable covers DROP TABLE <name> [CASCADE|RESTRICT].
func (ctx *Context) parseDropTable() (ast.Statement, bool) {
	start := ctx.cur.Span
	if !ctx.expectSequence(token.DROP, token.TABLE) {
		return nil, false
	}
	name, ok := ctx.parseIdentifier()
	if !ok {
		return nil, false
	}
	behavior := ctx.parseDropBehavior()
	return &ast.DropTableStatement{SpanVal: spanTo(start, ctx.cur.Span), Name: name, Behavior: behavior}, true
}

// parseAlterTable covers ALTER TABLE <name> <action>, one of ADD
// [COLUMN] <col def>, ADD <table constraint>, DROP COLUMN <name>
// [CASCADE|RESTRICT], DROP CONSTRAINT <name> [CASCADE|RESTRICT], ALTER COLUMN <name> SET
// DEFAULT <clause>, and ALTER COLUMN <name> DROP DEFAULT.
func (ctx *Context) parseAlterTable() (ast.Statement, bool) {
	start := ctx.cur.Span
	if !ctx.expectSequence(token.ALTER, token.TABLE) {
		return nil, false
	}
	name, ok := ctx.parseIdentifier()
	if !ok {
		return nil, false
	}
	var action ast.AlterTableAction
	switch {
	case ctx.has(token.ADD):
		if !ctx.advance2() {
			return nil, false
		}
		if ctx.has(token.COLUMN) {
			if !ctx.advance2() {
				return nil, false
			}
		}
		if ctx.hasAny(token.UNIQUE, token.PRIMARY, token.FOREIGN, token.CHECK, token.CONSTRAINT) {
			c, ok := ctx.parseTableConstraint()
			if !ok {
				return nil, false
			}
			action = ast.AlterTableAction{Kind: ast.AlterAddConstraint, Constraint: c}
		} else {
			col, ok := ctx.parseColumnDefinition()
			if !ok {
				return nil, false
			}
			action = ast.AlterTableAction{Kind: ast.AlterAddColumn, Column: col}
		}
	case ctx.hasSequence(token.DROP, token.COLUMN):
		if !ctx.expectSequence(token.DROP, token.COLUMN) {
			return nil, false
		}
		id, ok := ctx.parseIdentifier()
		if !ok {
			return nil, false
		}
		behavior := ctx.parseDropBehavior()
		action = ast.AlterTableAction{Kind: ast.AlterDropColumn, Name: id, Behavior: &behavior}
	case ctx.hasSequence(token.DROP, token.CONSTRAINT):
		if !ctx.expectSequence(token.DROP, token.CONSTRAINT) {
			return nil, false
		}
		id, ok := ctx.parseIdentifier()
		if !ok {
			return nil, false
		}
		behavior := ctx.parseDropBehavior()
		action = ast.AlterTableAction{Kind: ast.AlterDropConstraint, Name: id, Behavior: &behavior}
	case ctx.hasSequence(token.ALTER, token.COLUMN):
		if !ctx.expectSequence(token.ALTER, token.COLUMN) {
			return nil, false
		}
		id, ok := ctx.parseIdentifier()
		if !ok {
			return nil, false
		}
		if ctx.hasSequence(token.SET, token.DEFAULT) {
			if !ctx.expectSequence(token.SET) {
				return nil, false
			}
			def, ok := ctx.parseDefaultClause()
			if !ok {
				return nil, false
			}
			action = ast.AlterTableAction{Kind: ast.AlterSetColumnDefault, Name: id, Default: def}
		} else if ctx.hasSequence(token.DROP, token.DEFAULT) {
			if !ctx.expectSequence(token.DROP, token.DEFAULT) {
				return nil, false
			}
			action = ast.AlterTableAction{Kind: ast.AlterDropColumnDefault, Name: id}
		} else {
			ctx.syntaxErrorf("Expected SET DEFAULT or DROP DEFAULT but found %s.", ctx.cur.Symbol)
			return nil, false
		}
	default:
		ctx.syntaxErrorf("Expected ADD, DROP, or ALTER after table name but found %s.", ctx.cur.Symbol)
		return nil, false
	}
	return &ast.AlterTableStatement{SpanVal: spanTo(start, ctx.cur.Span), Name: name, Action: action}, true
}

// parseCreateView covers CREATE VIEW <name> [(<cols>)] AS <query
// expression> [WITH [CASCADED|LOCAL] CHECK OPTION]. Reconstructed from
// SQL-92's published grammar; see DESIGN.md.
func (ctx *Context) parseCreateView() (ast.Statement, bool) {
	start := ctx.cur.Span
	if !ctx.expectSequence(token.CREATE, token.VIEW) {
		return nil, false
	}
	name, ok := ctx.parseIdentifier()
	if !ok {
		return nil, false
	}
	var cols []*ast.Identifier
	if ctx.has(token.LPAREN) {
		c, ok := ctx.parseIdentifierList()
		if !ok {
			return nil, false
		}
		cols = c
	}
	if !ctx.expect(token.AS) {
		return nil, false
	}
	query, ok := ctx.parseQueryExpression()
	if !ok {
		return nil, false
	}
	checkOption := ast.CheckOptionNone
	if ctx.has(token.WITH) {
		if !ctx.advance2() {
			return nil, false
		}
		if ctx.hasAny(token.CASCADED, token.LOCAL) {
			if ctx.has(token.CASCADED) {
				checkOption = ast.CheckOptionCascaded
			} else {
				checkOption = ast.CheckOptionLocal
			}
			if !ctx.advance2() {
				return nil, false
			}
		} else {
			checkOption = ast.CheckOptionCascaded
		}
		if !ctx.expect(token.CHECK) {
			return nil, false
		}
		if !ctx.expect(token.OPTION) {
			return nil, false
		}
	}
	return &ast.CreateViewStatement{SpanVal: spanTo(start, ctx.cur.Span), Name: name, Columns: cols, Query: query, CheckOption: checkOption}, true
}

// parseDropView covers DROP VIEW <name> [CASCADE|RESTRICT]. See
// DESIGN.md for the same grounding note as CREATE VIEW.
func (ctx *Context) parseDropView() (ast.Statement, bool) {
	start := ctx.cur.Span
	if !ctx.expectSequence(token.DROP, token.VIEW) {
		return nil, false
	}
	name, ok := ctx.parseIdentifier()
	if !ok {
		return nil, false
	}
	behavior := ctx.parseDropBehavior()
	return &ast.DropViewStatement{SpanVal: spanTo(start, ctx.cur.Span), Name: name, Behavior: behavior}, true
}

// parseSelectStatement parses a top-level query expression as a
// standalone statement.
func (ctx *Context) parseSelectStatement() (ast.Statement, bool) {
	start := ctx.cur.Span
	q, ok := ctx.parseQueryExpression()
	if !ok {
		return nil, false
	}
	return &ast.SelectStatement{SpanVal: spanTo(start, ctx.cur.Span), Query: q}, true
}

// parseInsert covers INSERT INTO <name> [(<cols>)] <source>, where
// <source> is DEFAULT VALUES or a query expression (including a bare
// VALUES list).
func (ctx *Context) parseInsert() (ast.Statement, bool) {
	start := ctx.cur.Span
	if !ctx.expectSequence(token.INSERT, token.INTO) {
		return nil, false
	}
	table, ok := ctx.parseIdentifier()
	if !ok {
		return nil, false
	}
	var cols []*ast.Identifier
	if ctx.has(token.LPAREN) {
		c, ok := ctx.parseIdentifierList()
		if !ok {
			return nil, false
		}
		cols = c
	}
	var source ast.InsertSource
	if ctx.hasSequence(token.DEFAULT, token.VALUES) {
		if !ctx.expectSequence(token.DEFAULT, token.VALUES) {
			return nil, false
		}
		source = &ast.InsertDefaultValuesSource{}
	} else {
		q, ok := ctx.parseQueryExpression()
		if !ok {
			return nil, false
		}
		source = &ast.InsertQuerySource{Query: q}
	}
	return &ast.InsertStatement{SpanVal: spanTo(start, ctx.cur.Span), Table: table, Columns: cols, Source: source}, true
}

// parseDelete covers DELETE FROM <name> [WHERE <search condition>].
func (ctx *Context) parseDelete() (ast.Statement, bool) {
	start := ctx.cur.Span
	if !ctx.expectSequence(token.DELETE, token.FROM) {
		return nil, false
	}
	table, ok := ctx.parseIdentifier()
	if !ok {
		return nil, false
	}
	var where ast.SearchCondition
	if ctx.has(token.WHERE) {
		if !ctx.advance2() {
			return nil, false
		}
		w, ok := ctx.parseSearchCondition()
		if !ok {
			return nil, false
		}
		where = w
	}
	return &ast.DeleteStatement{SpanVal: spanTo(start, ctx.cur.Span), Table: table, Where: where}, true
}

// parseUpdate covers UPDATE <name> SET <clause>, ... [WHERE <search
// condition>].
func (ctx *Context) parseUpdate() (ast.Statement, bool) {
	start := ctx.cur.Span
	if !ctx.advance2() { // consume UPDATE
		return nil, false
	}
	table, ok := ctx.parseIdentifier()
	if !ok {
		return nil, false
	}
	if !ctx.expect(token.SET) {
		return nil, false
	}
	var sets []ast.SetClause
	for {
		col, ok := ctx.parseIdentifier()
		if !ok {
			return nil, false
		}
		if !ctx.expect(token.EQUAL) {
			return nil, false
		}
		var value ast.SetClauseValue
		switch {
		case ctx.has(token.NULL):
			v := ctx.cur.Span
			if !ctx.advance2() {
				return nil, false
			}
			value = &ast.NullValue{SpanVal: v}
		case ctx.has(token.DEFAULT):
			v := ctx.cur.Span
			if !ctx.advance2() {
				return nil, false
			}
			value = &ast.DefaultValue{SpanVal: v}
		default:
			ve, ok := ctx.parseValueExpression()
			if !ok {
				return nil, false
			}
			value = ve
		}
		sets = append(sets, ast.SetClause{Column: col, Value: value})
		if !ctx.has(token.COMMA) {
			break
		}
		if !ctx.advance2() {
			return nil, false
		}
	}
	var where ast.SearchCondition
	if ctx.has(token.WHERE) {
		if !ctx.advance2() {
			return nil, false
		}
		w, ok := ctx.parseSearchCondition()
		if !ok {
			return nil, false
		}
		where = w
	}
	return &ast.UpdateStatement{SpanVal: spanTo(start, ctx.cur.Span), Table: table, Set: sets, Where: where}, true
}

// parseCommit covers COMMIT [WORK].
func (ctx *Context) parseCommit() (ast.Statement, bool) {
	start := ctx.cur.Span
	if !ctx.advance2() {
		return nil, false
	}
	if ctx.has(token.WORK) {
		if !ctx.advance2() {
			return nil, false
		}
	}
	return &ast.CommitStatement{SpanVal: spanTo(start, ctx.cur.Span)}, true
}

// parseRollback covers ROLLBACK [WORK].
func (ctx *Context) parseRollback() (ast.Statement, bool) {
	start := ctx.cur.Span
	if !ctx.advance2() {
		return nil, false
	}
	if ctx.has(token.WORK) {
		if !ctx.advance2() {
			return nil, false
		}
	}
	return &ast.RollbackStatement{SpanVal: spanTo(start, ctx.cur.Span)}, true
}

// parseGrant covers GRANT <privileges> ON [TABLE] <name> TO <grantees>
// [WITH GRANT OPTION]. Reconstructed from SQL-92's published grammar; see
// DESIGN.md.
func (ctx *Context) parseGrant() (ast.Statement, bool) {
	start := ctx.cur.Span
	if !ctx.advance2() { // consume GRANT
		return nil, false
	}
	var privileges []ast.GrantAction
	if ctx.hasSequence(token.ALL, token.PRIVILEGES) {
		if !ctx.expectSequence(token.ALL, token.PRIVILEGES) {
			return nil, false
		}
		privileges = []ast.GrantAction{ast.GrantAllPrivileges}
	} else {
		for {
			action, ok := ctx.parseGrantAction()
			if !ok {
				return nil, false
			}
			privileges = append(privileges, action)
			if !ctx.has(token.COMMA) {
				break
			}
			if !ctx.advance2() {
				return nil, false
			}
		}
	}
	if !ctx.expect(token.ON) {
		return nil, false
	}
	if ctx.has(token.TABLE) {
		if !ctx.advance2() {
			return nil, false
		}
	}
	object, ok := ctx.parseIdentifier()
	if !ok {
		return nil, false
	}
	if !ctx.expect(token.TO) {
		return nil, false
	}
	public := false
	var grantees []*ast.Identifier
	if ctx.has(token.PUBLIC) {
		public = true
		if !ctx.advance2() {
			return nil, false
		}
	} else {
		for {
			id, ok := ctx.parseIdentifier()
			if !ok {
				return nil, false
			}
			grantees = append(grantees, id)
			if !ctx.has(token.COMMA) {
				break
			}
			if !ctx.advance2() {
				return nil, false
			}
		}
	}
	withGrantOption := false
	if ctx.hasSequence(token.WITH, token.GRANT) {
		if !ctx.expectSequence(token.WITH, token.GRANT) {
			return nil, false
		}
		if !ctx.expect(token.OPTION) {
			return nil, false
		}
		withGrantOption = true
	}
	return &ast.GrantStatement{
		SpanVal:         spanTo(start, ctx.cur.Span),
		Privileges:      privileges,
		Object:          object,
		PublicGrant:     public,
		Grantees:        grantees,
		WithGrantOption: withGrantOption,
	}, true
}

func (ctx *Context) parseGrantAction() (ast.GrantAction, bool) {
	switch {
	case ctx.has(token.SELECT):
		ctx.advance2()
		return ast.GrantSelect, true
	case ctx.has(token.INSERT):
		ctx.advance2()
		return ast.GrantInsert, true
	case ctx.has(token.UPDATE):
		ctx.advance2()
		return ast.GrantUpdate, true
	case ctx.has(token.DELETE):
		ctx.advance2()
		return ast.GrantDelete, true
	case ctx.has(token.REFERENCES):
		ctx.advance2()
		return ast.GrantReferences, true
	}
	ctx.syntaxErrorf("Expected privilege name but found %s.", ctx.cur.Symbol)
	return 0, false
}
