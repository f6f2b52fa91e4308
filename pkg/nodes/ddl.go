package nodes

import (
	"github.com/pseudomuto/pgfmt/pkg/emitter"
	"github.com/pseudomuto/pgfmt/pkg/parser"
	"github.com/pseudomuto/pgfmt/pkg/token"
)

func emitCreateTableStmt(e *emitter.Emitter, n *parser.CreateTableStmt) {
	e.GroupStart(emitter.CreateTableStmt)
	createHeader(e, n.Persistence, token.TABLE)
	ifNotExists(e, n.IfNotExists)
	e.Space()
	qualifiedName(e, n.Name)
	e.Space()

	e.GroupStart(emitter.TableElements)
	if len(n.Elements) == 0 {
		punct(e, token.LParen)
		punct(e, token.RParen)
	} else {
		parens(e, func() {
			commaList(e, n.Elements, func(el *parser.TableElement) { emitTableElement(e, el) })
		})
	}
	e.GroupEnd()

	if len(n.Inherits) > 0 {
		e.Space()
		kw(e, token.INHERITS)
		e.Space()
		e.GroupStart(emitter.ColumnList)
		parens(e, func() { nameList(e, n.Inherits) })
		e.GroupEnd()
	}

	if n.Tablespace != nil {
		e.Space()
		kw(e, token.TABLESPACE)
		e.Space()
		ident(e, *n.Tablespace)
	}

	semicolon(e, true)
	e.GroupEnd()
}

// createHeader emits CREATE [TEMPORARY | UNLOGGED] <object>.
func createHeader(e *emitter.Emitter, persistence parser.Word, object token.Keyword) {
	kw(e, token.CREATE)
	if persistence != "" {
		e.Space()
		word(e, persistence)
	}
	e.Space()
	kw(e, object)
}

func emitTableElement(e *emitter.Emitter, n *parser.TableElement) {
	switch {
	case n.Constraint != nil:
		emitTableConstraint(e, n.Constraint)
	case n.Like != nil:
		e.GroupStart(emitter.Constraint)
		kw(e, token.LIKE)
		e.Space()
		qualifiedName(e, n.Like)
		e.GroupEnd()
	case n.Column != nil:
		emitColumnDef(e, n.Column)
	}
}

func emitColumnDef(e *emitter.Emitter, n *parser.ColumnDef) {
	e.GroupStart(emitter.ColumnDef)
	ident(e, n.Name)
	e.Space()
	emitTypeName(e, n.Type)

	if n.Collate != nil {
		e.Space()
		kw(e, token.COLLATE)
		e.Space()
		qualifiedName(e, n.Collate)
	}

	for _, c := range n.Constraints {
		e.Space()
		emitColumnConstraint(e, c)
	}
	e.GroupEnd()
}

func constraintName(e *emitter.Emitter, name *parser.Identifier) {
	if name != nil {
		kw(e, token.CONSTRAINT)
		e.Space()
		ident(e, *name)
		e.Space()
	}
}

func emitColumnConstraint(e *emitter.Emitter, n *parser.ColumnConstraint) {
	e.GroupStart(emitter.Constraint)
	constraintName(e, n.Name)

	switch {
	case n.NotNull:
		kw(e, token.NOT, token.NULL)
	case n.Null:
		kw(e, token.NULL)
	case n.Check != nil:
		emitCheck(e, n.Check)
	case n.Default != nil:
		kw(e, token.DEFAULT)
		e.Space()
		emitOpExpr(e, n.Default)
	case n.Generated != nil:
		kw(e, token.GENERATED)
		e.Space()
		word(e, n.Generated.When)
		e.Space()
		kw(e, token.AS)
		e.Space()
		if n.Generated.Identity {
			kw(e, token.IDENTITY)
		} else {
			parens(e, func() { emitExpr(e, n.Generated.Expr) })
			e.Space()
			kw(e, token.STORED)
		}
	case n.Unique:
		kw(e, token.UNIQUE)
	case n.PrimaryKey:
		kw(e, token.PRIMARY, token.KEY)
	case n.References != nil:
		emitReferences(e, n.References)
	}
	e.GroupEnd()
}

func emitCheck(e *emitter.Emitter, x *parser.Expr) {
	kw(e, token.CHECK)
	e.Space()
	parens(e, func() { emitExpr(e, x) })
}

func emitReferences(e *emitter.Emitter, n *parser.References) {
	kw(e, token.REFERENCES)
	e.Space()
	qualifiedName(e, n.Table)
	if len(n.Columns) > 0 {
		e.Space()
		identList(e, n.Columns)
	}

	for _, a := range n.Actions {
		e.Space()
		kw(e, token.ON)
		e.Space()
		word(e, a.Event)
		e.Space()
		word(e, a.Action)
	}
}

func emitTableConstraint(e *emitter.Emitter, n *parser.TableConstraint) {
	e.GroupStart(emitter.Constraint)
	constraintName(e, n.Name)

	switch {
	case len(n.PrimaryKey) > 0:
		kw(e, token.PRIMARY, token.KEY)
		e.Space()
		identList(e, n.PrimaryKey)
	case len(n.Unique) > 0:
		kw(e, token.UNIQUE)
		e.Space()
		identList(e, n.Unique)
	case n.Check != nil:
		emitCheck(e, n.Check)
	case n.ForeignKey != nil:
		kw(e, token.FOREIGN, token.KEY)
		e.Space()
		identList(e, n.ForeignKey.Columns)
		e.Space()
		emitReferences(e, n.ForeignKey.Ref)
	}
	e.GroupEnd()
}

// withData emits the trailing WITH [NO] DATA of CREATE TABLE AS and materialized views.
func withData(e *emitter.Emitter, data parser.Word) {
	if data == "" {
		return
	}

	e.Line(emitter.SoftOrSpace)
	kw(e, token.WITH)
	e.Space()
	word(e, data)
}

func emitCreateTableAsStmt(e *emitter.Emitter, n *parser.CreateTableAsStmt) {
	e.GroupStart(emitter.CreateTableAsStmt)
	createHeader(e, n.Persistence, token.TABLE)
	ifNotExists(e, n.IfNotExists)
	e.Space()
	qualifiedName(e, n.Name)
	if len(n.Columns) > 0 {
		e.Space()
		identList(e, n.Columns)
	}
	e.Space()
	kw(e, token.AS)
	e.Line(emitter.SoftOrSpace)
	emitSelectStmt(e, nil, n.Query, false)
	withData(e, n.Data)
	semicolon(e, true)
	e.GroupEnd()
}

func emitCreateMatViewStmt(e *emitter.Emitter, n *parser.CreateMatViewStmt) {
	e.GroupStart(emitter.CreateTableAsStmt)
	kw(e, token.CREATE, token.MATERIALIZED, token.VIEW)
	ifNotExists(e, n.IfNotExists)
	e.Space()
	qualifiedName(e, n.Name)
	if len(n.Columns) > 0 {
		e.Space()
		identList(e, n.Columns)
	}
	if n.Tablespace != nil {
		e.Space()
		kw(e, token.TABLESPACE)
		e.Space()
		ident(e, *n.Tablespace)
	}
	e.Space()
	kw(e, token.AS)
	e.Line(emitter.SoftOrSpace)
	emitSelectStmt(e, nil, n.Query, false)
	withData(e, n.Data)
	semicolon(e, true)
	e.GroupEnd()
}

func emitCreateViewStmt(e *emitter.Emitter, n *parser.CreateViewStmt) {
	e.GroupStart(emitter.ViewStmt)
	kw(e, token.CREATE)
	if n.OrReplace {
		e.Space()
		kw(e, token.OR, token.REPLACE)
	}
	if n.Temp != "" {
		e.Space()
		word(e, n.Temp)
	}
	if n.Recursive {
		e.Space()
		kw(e, token.RECURSIVE)
	}
	e.Space()
	kw(e, token.VIEW)
	e.Space()
	qualifiedName(e, n.Name)
	if len(n.Columns) > 0 {
		e.Space()
		identList(e, n.Columns)
	}
	e.Space()
	kw(e, token.AS)
	e.Line(emitter.SoftOrSpace)
	emitSelectStmt(e, nil, n.Query, false)

	if n.Check != "" {
		e.Line(emitter.SoftOrSpace)
		kw(e, token.WITH)
		e.Space()
		word(e, n.Check)
	}

	semicolon(e, true)
	e.GroupEnd()
}

func emitCreateIndexStmt(e *emitter.Emitter, n *parser.CreateIndexStmt) {
	e.GroupStart(emitter.IndexStmt)
	kw(e, token.CREATE)
	if n.Unique {
		e.Space()
		kw(e, token.UNIQUE)
	}
	e.Space()
	kw(e, token.INDEX)
	if n.Concurrently {
		e.Space()
		kw(e, token.CONCURRENTLY)
	}
	ifNotExists(e, n.IfNotExists)
	if n.Name != nil {
		e.Space()
		ident(e, *n.Name)
	}

	e.Line(emitter.SoftOrSpace)
	e.GroupStart(emitter.RangeVar)
	kw(e, token.ON)
	e.Space()
	if n.Only {
		kw(e, token.ONLY)
		e.Space()
	}
	qualifiedName(e, n.Table)
	if n.Method != nil {
		e.Space()
		kw(e, token.USING)
		e.Space()
		ident(e, *n.Method)
	}
	e.Space()
	parens(e, func() {
		commaList(e, n.Elems, func(el *parser.IndexElem) { emitIndexElem(e, el) })
	})
	e.GroupEnd()

	if len(n.Include) > 0 {
		e.Line(emitter.SoftOrSpace)
		kw(e, token.INCLUDE)
		e.Space()
		identList(e, n.Include)
	}

	if n.Where != nil {
		e.Line(emitter.SoftOrSpace)
		emitWhereClause(e, n.Where)
	}

	semicolon(e, true)
	e.GroupEnd()
}

func emitIndexElem(e *emitter.Emitter, n *parser.IndexElem) {
	e.GroupStart(emitter.IndexElem)
	switch {
	case n.Paren != nil:
		parens(e, func() { emitExpr(e, n.Paren) })
	case n.Func != nil:
		emitFuncCall(e, n.Func)
	case n.Column != nil:
		ident(e, *n.Column)
	}

	if n.Collate != nil {
		e.Space()
		kw(e, token.COLLATE)
		e.Space()
		qualifiedName(e, n.Collate)
	}
	if n.Dir != "" {
		e.Space()
		word(e, n.Dir)
	}
	if n.Nulls != "" {
		e.Space()
		kw(e, token.NULLS)
		e.Space()
		word(e, n.Nulls)
	}
	e.GroupEnd()
}

func emitCreateSchemaStmt(e *emitter.Emitter, n *parser.CreateSchemaStmt) {
	e.GroupStart(emitter.CreateSchemaStmt)
	kw(e, token.CREATE, token.SCHEMA)
	ifNotExists(e, n.IfNotExists)
	e.Space()

	if n.Authorization != nil {
		kw(e, token.AUTHORIZATION)
		e.Space()
		ident(e, *n.Authorization)
	} else if n.Name != nil {
		ident(e, *n.Name)
		if n.Owner != nil {
			e.Space()
			kw(e, token.AUTHORIZATION)
			e.Space()
			ident(e, *n.Owner)
		}
	}

	semicolon(e, true)
	e.GroupEnd()
}

func emitCreateTablespaceStmt(e *emitter.Emitter, n *parser.CreateTablespaceStmt) {
	e.GroupStart(emitter.CreateTablespaceStmt)
	kw(e, token.CREATE, token.TABLESPACE)
	e.Space()
	ident(e, n.Name)
	if n.Owner != nil {
		e.Space()
		kw(e, token.OWNER)
		e.Space()
		ident(e, *n.Owner)
	}
	e.Space()
	kw(e, token.LOCATION)
	e.Space()
	stringLiteral(e, n.Location)
	semicolon(e, true)
	e.GroupEnd()
}
