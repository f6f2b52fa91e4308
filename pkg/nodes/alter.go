package nodes

import (
	"github.com/pseudomuto/pgfmt/pkg/emitter"
	"github.com/pseudomuto/pgfmt/pkg/parser"
	"github.com/pseudomuto/pgfmt/pkg/token"
)

// emitAlterTableStmt puts every action on its own indented line once the statement breaks.
//
//	ALTER TABLE users
//	  ADD COLUMN age INT,
//	  DROP CONSTRAINT users_old_check;
func emitAlterTableStmt(e *emitter.Emitter, n *parser.AlterTableStmt) {
	e.GroupStart(emitter.AlterTableStmt)
	kw(e, token.ALTER, token.TABLE)
	ifExists(e, n.IfExists)
	e.Space()
	if n.Only {
		kw(e, token.ONLY)
		e.Space()
	}
	qualifiedName(e, n.Name)

	e.IndentStart()
	e.Line(emitter.SoftOrSpace)
	commaList(e, n.Cmds, func(c *parser.AlterTableCmd) { emitAlterTableCmd(e, c) })
	e.IndentEnd()

	semicolon(e, true)
	e.GroupEnd()
}

func emitAlterTableCmd(e *emitter.Emitter, n *parser.AlterTableCmd) {
	e.GroupStart(emitter.AlterTableCmd)
	switch {
	case n.AddConstraint != nil:
		kw(e, token.ADD)
		e.Space()
		emitTableConstraint(e, n.AddConstraint)
	case n.AddColumn != nil:
		kw(e, token.ADD, token.COLUMN)
		ifNotExists(e, n.AddColumn.IfNotExists)
		e.Space()
		emitColumnDef(e, n.AddColumn.Def)
	case n.DropConstraint != nil:
		kw(e, token.DROP, token.CONSTRAINT)
		ifExists(e, n.DropConstraint.IfExists)
		e.Space()
		ident(e, n.DropConstraint.Name)
		behavior(e, n.DropConstraint.Behavior)
	case n.DropColumn != nil:
		kw(e, token.DROP, token.COLUMN)
		ifExists(e, n.DropColumn.IfExists)
		e.Space()
		ident(e, n.DropColumn.Name)
		behavior(e, n.DropColumn.Behavior)
	case n.AlterColumn != nil:
		emitAlterColumn(e, n.AlterColumn)
	}
	e.GroupEnd()
}

func emitAlterColumn(e *emitter.Emitter, n *parser.AlterColumn) {
	kw(e, token.ALTER, token.COLUMN)
	e.Space()
	ident(e, n.Name)
	e.Space()

	switch {
	case n.Type != nil:
		kw(e, token.TYPE)
		e.Space()
		emitTypeName(e, n.Type)
		if n.Using != nil {
			e.Space()
			kw(e, token.USING)
			e.Space()
			emitExpr(e, n.Using)
		}
	case n.SetDefault != nil:
		kw(e, token.SET, token.DEFAULT)
		e.Space()
		emitOpExpr(e, n.SetDefault)
	case n.DropDefault:
		kw(e, token.DROP, token.DEFAULT)
	case n.SetNotNull:
		kw(e, token.SET, token.NOT, token.NULL)
	case n.DropNotNull:
		kw(e, token.DROP, token.NOT, token.NULL)
	}
}

func behavior(e *emitter.Emitter, w parser.Word) {
	if w != "" {
		e.Space()
		word(e, w)
	}
}

func emitRenameStmt(e *emitter.Emitter, n *parser.RenameStmt) {
	e.GroupStart(emitter.RenameStmt)
	kw(e, token.ALTER)
	e.Space()
	word(e, n.Object)
	ifExists(e, n.IfExists)
	e.Space()
	qualifiedName(e, n.Name)

	e.IndentStart()
	e.Line(emitter.SoftOrSpace)
	kw(e, token.RENAME)
	switch {
	case n.Constraint != nil:
		e.Space()
		kw(e, token.CONSTRAINT)
		e.Space()
		ident(e, *n.Constraint)
	case n.Column != nil:
		e.Space()
		kw(e, token.COLUMN)
		e.Space()
		ident(e, *n.Column)
	}
	e.Space()
	kw(e, token.TO)
	e.Space()
	ident(e, n.To)
	e.IndentEnd()

	semicolon(e, true)
	e.GroupEnd()
}

func emitAlterOwnerStmt(e *emitter.Emitter, n *parser.AlterOwnerStmt) {
	e.GroupStart(emitter.AlterOwnerStmt)
	kw(e, token.ALTER)
	e.Space()
	word(e, n.Object)
	e.Space()
	qualifiedName(e, n.Name)
	e.IndentStart()
	e.Line(emitter.SoftOrSpace)
	kw(e, token.OWNER, token.TO)
	e.Space()
	ident(e, n.Owner)
	e.IndentEnd()
	semicolon(e, true)
	e.GroupEnd()
}

func emitAlterObjectSchemaStmt(e *emitter.Emitter, n *parser.AlterObjectSchemaStmt) {
	e.GroupStart(emitter.AlterObjectSchemaStmt)
	kw(e, token.ALTER)
	e.Space()
	word(e, n.Object)
	ifExists(e, n.IfExists)
	e.Space()
	qualifiedName(e, n.Name)
	e.IndentStart()
	e.Line(emitter.SoftOrSpace)
	kw(e, token.SET, token.SCHEMA)
	e.Space()
	ident(e, n.Schema)
	e.IndentEnd()
	semicolon(e, true)
	e.GroupEnd()
}

func emitAlterEnumStmt(e *emitter.Emitter, n *parser.AlterEnumStmt) {
	e.GroupStart(emitter.AlterEnumStmt)
	kw(e, token.ALTER, token.TYPE)
	e.Space()
	qualifiedName(e, n.Name)
	e.IndentStart()
	e.Line(emitter.SoftOrSpace)

	switch {
	case n.Add != nil:
		kw(e, token.ADD, token.VALUE)
		ifNotExists(e, n.Add.IfNotExists)
		e.Space()
		stringLiteral(e, n.Add.Value)
		if n.Add.Neighbor != nil {
			e.Space()
			word(e, n.Add.Where)
			e.Space()
			stringLiteral(e, *n.Add.Neighbor)
		}
	case n.Rename != nil:
		kw(e, token.RENAME, token.VALUE)
		e.Space()
		stringLiteral(e, n.Rename.From)
		e.Space()
		kw(e, token.TO)
		e.Space()
		stringLiteral(e, n.Rename.To)
	}

	e.IndentEnd()
	semicolon(e, true)
	e.GroupEnd()
}
