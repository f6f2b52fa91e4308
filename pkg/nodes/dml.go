package nodes

import (
	"github.com/pseudomuto/pgfmt/pkg/emitter"
	"github.com/pseudomuto/pgfmt/pkg/parser"
	"github.com/pseudomuto/pgfmt/pkg/token"
)

func emitInsertStmt(e *emitter.Emitter, with *parser.WithClause, n *parser.InsertStmt, terminate bool) {
	e.GroupStart(emitter.InsertStmt)
	if with != nil {
		emitWithClause(e, with)
		e.Line(emitter.SoftOrSpace)
	}

	kw(e, token.INSERT, token.INTO)
	e.Space()
	qualifiedName(e, n.Table)
	alias(e, n.Alias)
	if len(n.Columns) > 0 {
		e.Space()
		identList(e, n.Columns)
	}

	if n.Source != nil {
		e.Line(emitter.SoftOrSpace)
		e.GroupStart(emitter.InsertSource)
		if n.Source.Default {
			kw(e, token.DEFAULT, token.VALUES)
		} else {
			emitSelectStmt(e, nil, n.Source.Select, false)
		}
		e.GroupEnd()
	}

	if n.OnConflict != nil {
		e.Line(emitter.SoftOrSpace)
		emitOnConflict(e, n.OnConflict)
	}

	emitReturning(e, n.Returning)
	semicolon(e, terminate)
	e.GroupEnd()
}

func emitOnConflict(e *emitter.Emitter, n *parser.OnConflictClause) {
	e.GroupStart(emitter.OnConflictClause)
	kw(e, token.ON, token.CONFLICT)

	if t := n.Target; t != nil {
		e.Space()
		if t.Constraint != nil {
			kw(e, token.ON, token.CONSTRAINT)
			e.Space()
			ident(e, *t.Constraint)
		} else {
			e.GroupStart(emitter.ColumnList)
			parens(e, func() {
				commaList(e, t.Columns, func(x *parser.Expr) { emitExpr(e, x) })
			})
			e.GroupEnd()
			if t.Where != nil {
				e.Space()
				kw(e, token.WHERE)
				e.Space()
				emitExpr(e, t.Where)
			}
		}
	}

	e.Space()
	kw(e, token.DO)
	e.Space()

	if n.Nothing || n.Update == nil {
		kw(e, token.NOTHING)
		e.GroupEnd()
		return
	}

	kw(e, token.UPDATE)
	e.IndentStart()
	e.Line(emitter.SoftOrSpace)
	emitSetClause(e, n.Update.Sets)
	if n.Update.Where != nil {
		e.Line(emitter.SoftOrSpace)
		emitWhereClause(e, n.Update.Where)
	}
	e.IndentEnd()
	e.GroupEnd()
}

func emitSetClause(e *emitter.Emitter, items []*parser.SetItem) {
	clause(e, emitter.SetClause, func() {
		commaList(e, items, func(s *parser.SetItem) { emitSetItem(e, s) })
	}, token.SET)
}

func emitSetItem(e *emitter.Emitter, n *parser.SetItem) {
	e.GroupStart(emitter.ResTarget)
	if n.Column != nil {
		ident(e, n.Column.Name)
		for _, s := range n.Column.Subs {
			emitSubscript(e, s)
		}
		e.Space()
		e.Token(token.Raw("="))
		e.Space()
		emitExpr(e, n.Value)
	} else {
		identList(e, n.Columns)
		e.Space()
		e.Token(token.Raw("="))
		e.Space()
		emitExpr(e, n.Source)
	}
	e.GroupEnd()
}

func emitReturning(e *emitter.Emitter, targets []*parser.Target) {
	if len(targets) == 0 {
		return
	}

	e.Line(emitter.SoftOrSpace)
	clause(e, emitter.ReturningClause, func() {
		commaList(e, targets, func(t *parser.Target) { emitTarget(e, t) })
	}, token.RETURNING)
}

func alias(e *emitter.Emitter, a *parser.Identifier) {
	if a == nil {
		return
	}

	e.Space()
	kw(e, token.AS)
	e.Space()
	ident(e, *a)
}

func emitUpdateStmt(e *emitter.Emitter, with *parser.WithClause, n *parser.UpdateStmt, terminate bool) {
	e.GroupStart(emitter.UpdateStmt)
	if with != nil {
		emitWithClause(e, with)
		e.Line(emitter.SoftOrSpace)
	}

	kw(e, token.UPDATE)
	e.Space()
	if n.Only {
		kw(e, token.ONLY)
		e.Space()
	}
	qualifiedName(e, n.Table)
	alias(e, n.Alias)

	e.Line(emitter.SoftOrSpace)
	emitSetClause(e, n.Sets)

	if len(n.From) > 0 {
		e.Line(emitter.SoftOrSpace)
		emitFromClause(e, token.FROM, n.From)
	}

	if n.Where != nil {
		e.Line(emitter.SoftOrSpace)
		emitWhereClause(e, n.Where)
	}

	emitReturning(e, n.Returning)
	semicolon(e, terminate)
	e.GroupEnd()
}

func emitDeleteStmt(e *emitter.Emitter, with *parser.WithClause, n *parser.DeleteStmt, terminate bool) {
	e.GroupStart(emitter.DeleteStmt)
	if with != nil {
		emitWithClause(e, with)
		e.Line(emitter.SoftOrSpace)
	}

	kw(e, token.DELETE, token.FROM)
	e.Space()
	if n.Only {
		kw(e, token.ONLY)
		e.Space()
	}
	qualifiedName(e, n.Table)
	alias(e, n.Alias)

	if len(n.Using) > 0 {
		e.Line(emitter.SoftOrSpace)
		emitFromClause(e, token.USING, n.Using)
	}

	if n.Where != nil {
		e.Line(emitter.SoftOrSpace)
		emitWhereClause(e, n.Where)
	}

	emitReturning(e, n.Returning)
	semicolon(e, terminate)
	e.GroupEnd()
}
