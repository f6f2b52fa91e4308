package nodes

import (
	"github.com/pseudomuto/pgfmt/pkg/emitter"
	"github.com/pseudomuto/pgfmt/pkg/parser"
	"github.com/pseudomuto/pgfmt/pkg/token"
)

// emitSelectStmt lowers a query. with is the statement level WITH clause, which only top
// level queries have; nested queries carry their own in n.With.
func emitSelectStmt(e *emitter.Emitter, with *parser.WithClause, n *parser.SelectStmt, terminate bool) {
	e.GroupStart(emitter.SelectStmt)

	for _, w := range []*parser.WithClause{with, n.With} {
		if w != nil {
			emitWithClause(e, w)
			e.Line(emitter.SoftOrSpace)
		}
	}

	emitSimpleSelect(e, n.Left)

	for _, op := range n.SetOps {
		e.Line(emitter.SoftOrSpace)
		e.GroupStart(emitter.SetOperation)
		word(e, op.Op)
		if op.Quant != "" {
			e.Space()
			word(e, op.Quant)
		}
		e.GroupEnd()
		e.Line(emitter.SoftOrSpace)
		emitSimpleSelect(e, op.Right)
	}

	if len(n.OrderBy) > 0 {
		e.Line(emitter.SoftOrSpace)
		clause(e, emitter.SortClause, func() {
			commaList(e, n.OrderBy, func(s *parser.SortBy) { emitSortBy(e, s) })
		}, token.ORDER, token.BY)
	}

	if n.Limit != nil {
		e.Line(emitter.SoftOrSpace)
		e.GroupStart(emitter.LimitClause)
		kw(e, token.LIMIT)
		e.Space()
		if n.Limit.All {
			kw(e, token.ALL)
		} else {
			emitExpr(e, n.Limit.Count)
		}
		e.GroupEnd()
	}

	if n.Offset != nil {
		e.Line(emitter.SoftOrSpace)
		e.GroupStart(emitter.OffsetClause)
		kw(e, token.OFFSET)
		e.Space()
		emitExpr(e, n.Offset.Count)
		if n.Offset.Rows != "" {
			e.Space()
			word(e, n.Offset.Rows)
		}
		e.GroupEnd()
	}

	for _, l := range n.Locking {
		e.Line(emitter.SoftOrSpace)
		emitLockingClause(e, l)
	}

	semicolon(e, terminate)
	e.GroupEnd()
}

func emitSimpleSelect(e *emitter.Emitter, n *parser.SimpleSelect) {
	switch {
	case n == nil:
	case n.Values != nil:
		emitValuesClause(e, n.Values)
	case n.Select != nil:
		emitSelectCore(e, n.Select)
	case n.Paren != nil:
		emitSubquery(e, n.Paren)
	}
}

// emitSubquery emits a parenthesised query. The parentheses belong to a ParenExpr group so
// a short subquery stays on one line even when the surrounding clause breaks.
func emitSubquery(e *emitter.Emitter, n *parser.SelectStmt) {
	e.GroupStart(emitter.ParenExpr)
	parens(e, func() { emitSelectStmt(e, nil, n, false) })
	e.GroupEnd()
}

func emitSelectCore(e *emitter.Emitter, n *parser.SelectCore) {
	e.GroupStart(emitter.TargetList)
	kw(e, token.SELECT)
	if n.Distinct != nil {
		e.Space()
		emitDistinctClause(e, n.Distinct)
	}
	if len(n.Targets) > 0 {
		e.IndentStart()
		e.Line(emitter.SoftOrSpace)
		commaList(e, n.Targets, func(t *parser.Target) { emitTarget(e, t) })
		e.IndentEnd()
	}
	e.GroupEnd()

	if n.Into != nil {
		e.Line(emitter.SoftOrSpace)
		emitIntoClause(e, n.Into)
	}

	if len(n.From) > 0 {
		e.Line(emitter.SoftOrSpace)
		emitFromClause(e, token.FROM, n.From)
	}

	if n.Where != nil {
		e.Line(emitter.SoftOrSpace)
		emitWhereClause(e, n.Where)
	}

	if len(n.GroupBy) > 0 {
		e.Line(emitter.SoftOrSpace)
		clause(e, emitter.GroupClause, func() {
			commaList(e, n.GroupBy, func(x *parser.Expr) { emitExpr(e, x) })
		}, token.GROUP, token.BY)
	}

	if n.Having != nil {
		e.Line(emitter.SoftOrSpace)
		clause(e, emitter.HavingClause, func() { emitExpr(e, n.Having) }, token.HAVING)
	}

	if len(n.Windows) > 0 {
		e.Line(emitter.SoftOrSpace)
		clause(e, emitter.WindowClause, func() {
			commaList(e, n.Windows, func(w *parser.NamedWindow) {
				e.GroupStart(emitter.WindowDef)
				ident(e, w.Name)
				e.Space()
				kw(e, token.AS)
				e.Space()
				emitWindowDef(e, w.Def)
				e.GroupEnd()
			})
		}, token.WINDOW)
	}
}

func emitDistinctClause(e *emitter.Emitter, n *parser.DistinctClause) {
	e.GroupStart(emitter.DistinctClause)
	if n.All {
		kw(e, token.ALL)
	} else {
		kw(e, token.DISTINCT)
		if len(n.On) > 0 {
			e.Space()
			kw(e, token.ON)
			e.Space()
			parens(e, func() {
				commaList(e, n.On, func(x *parser.Expr) { emitExpr(e, x) })
			})
		}
	}
	e.GroupEnd()
}

// emitTarget emits one entry of a target list. Aliases are always introduced with AS.
func emitTarget(e *emitter.Emitter, n *parser.Target) {
	e.GroupStart(emitter.ResTarget)
	if n.Star {
		e.Token(token.Raw("*"))
	} else {
		emitExpr(e, n.Expr)
	}

	if n.Alias != nil {
		e.Space()
		kw(e, token.AS)
		e.Space()
		ident(e, *n.Alias)
	}
	e.GroupEnd()
}

func emitIntoClause(e *emitter.Emitter, n *parser.IntoClause) {
	e.GroupStart(emitter.IntoClause)
	kw(e, token.INTO)
	if n.Persistence != "" {
		e.Space()
		word(e, n.Persistence)
	}
	if n.Table {
		e.Space()
		kw(e, token.TABLE)
	}
	e.Space()
	qualifiedName(e, n.Name)
	e.GroupEnd()
}

// emitFromClause is shared by SELECT ... FROM, UPDATE ... FROM and DELETE ... USING.
func emitFromClause(e *emitter.Emitter, k token.Keyword, items []*parser.FromItem) {
	kind := emitter.FromClause
	if k == token.USING {
		kind = emitter.UsingClause
	}

	clause(e, kind, func() {
		commaList(e, items, func(f *parser.FromItem) { emitFromItem(e, f) })
	}, k)
}

func emitWhereClause(e *emitter.Emitter, where *parser.Expr) {
	clause(e, emitter.WhereClause, func() { emitExpr(e, where) }, token.WHERE)
}

func emitFromItem(e *emitter.Emitter, n *parser.FromItem) {
	if len(n.Joins) == 0 {
		emitTableRef(e, n.Source)
		return
	}

	e.GroupStart(emitter.JoinExpr)
	emitTableRef(e, n.Source)
	for _, j := range n.Joins {
		e.Line(emitter.SoftOrSpace)
		emitJoin(e, j)
	}
	e.GroupEnd()
}

// emitJoin emits one join of a join chain. The join type is always spelled out, so a plain
// JOIN comes out as INNER JOIN and LEFT OUTER JOIN as LEFT JOIN.
func emitJoin(e *emitter.Emitter, n *parser.Join) {
	e.GroupStart(emitter.JoinQual)
	if n.Natural {
		kw(e, token.NATURAL)
		e.Space()
	}

	switch n.Type {
	case "LEFT":
		kw(e, token.LEFT)
	case "RIGHT":
		kw(e, token.RIGHT)
	case "FULL":
		kw(e, token.FULL)
	case "CROSS":
		kw(e, token.CROSS)
	default:
		kw(e, token.INNER)
	}

	e.Space()
	kw(e, token.JOIN)
	e.Space()
	emitTableRef(e, n.Right)

	switch {
	case n.On != nil:
		e.IndentStart()
		e.Line(emitter.SoftOrSpace)
		kw(e, token.ON)
		e.Space()
		emitExpr(e, n.On)
		e.IndentEnd()
	case len(n.Using) > 0:
		e.Space()
		kw(e, token.USING)
		e.Space()
		identList(e, n.Using)
	}
	e.GroupEnd()
}

func emitTableRef(e *emitter.Emitter, n *parser.TableRef) {
	if n == nil {
		return
	}

	kind := emitter.RangeVar
	switch {
	case n.Subquery != nil, n.Nested != nil:
		kind = emitter.RangeSubselect
	case n.Func != nil:
		kind = emitter.RangeFunction
	}

	e.GroupStart(kind)
	if n.Lateral {
		kw(e, token.LATERAL)
		e.Space()
	}

	switch {
	case n.Subquery != nil:
		emitSubquery(e, n.Subquery)
	case n.Nested != nil:
		parens(e, func() { emitFromItem(e, n.Nested) })
	case n.Func != nil:
		emitFuncCall(e, n.Func)
	case n.Table != nil:
		if n.Table.Only {
			kw(e, token.ONLY)
			e.Space()
		}
		qualifiedName(e, n.Table.Name)
	}

	if n.Alias != nil {
		e.Space()
		kw(e, token.AS)
		e.Space()
		ident(e, n.Alias.Name)
		if len(n.Alias.Columns) > 0 {
			e.Space()
			identList(e, n.Alias.Columns)
		}
	}
	e.GroupEnd()
}

func emitLockingClause(e *emitter.Emitter, n *parser.LockingClause) {
	e.GroupStart(emitter.LockingClause)
	kw(e, token.FOR)
	e.Space()
	word(e, n.Strength)
	if len(n.Of) > 0 {
		e.Space()
		kw(e, token.OF)
		e.Space()
		nameList(e, n.Of)
	}
	if n.Wait != "" {
		e.Space()
		word(e, n.Wait)
	}
	e.GroupEnd()
}

func emitValuesClause(e *emitter.Emitter, n *parser.ValuesClause) {
	clause(e, emitter.ValuesLists, func() {
		commaList(e, n.Rows, func(row *parser.ValuesRow) {
			e.GroupStart(emitter.RowExpr)
			parens(e, func() {
				commaList(e, row.Exprs, func(x *parser.Expr) { emitExpr(e, x) })
			})
			e.GroupEnd()
		})
	}, token.VALUES)
}

func emitWithClause(e *emitter.Emitter, n *parser.WithClause) {
	e.GroupStart(emitter.WithClause)
	kw(e, token.WITH)
	if n.Recursive {
		e.Space()
		kw(e, token.RECURSIVE)
	}
	e.IndentStart()
	e.Line(emitter.SoftOrSpace)
	commaList(e, n.CTEs, func(c *parser.CTE) { emitCTE(e, c) })
	e.IndentEnd()
	e.GroupEnd()
}

func emitCTE(e *emitter.Emitter, n *parser.CTE) {
	e.GroupStart(emitter.CommonTableExpr)
	ident(e, n.Name)
	if len(n.Columns) > 0 {
		e.Space()
		identList(e, n.Columns)
	}
	e.Space()
	kw(e, token.AS)
	if n.Materialized != "" {
		e.Space()
		word(e, n.Materialized)
	}
	e.Space()
	parens(e, func() { emitPreparableStmt(e, n.Query) })
	e.GroupEnd()
}

func emitPreparableStmt(e *emitter.Emitter, n *parser.PreparableStmt) {
	switch {
	case n == nil:
	case n.Select != nil:
		emitSelectStmt(e, nil, n.Select, false)
	case n.Insert != nil:
		emitInsertStmt(e, nil, n.Insert, false)
	case n.Update != nil:
		emitUpdateStmt(e, nil, n.Update, false)
	case n.Delete != nil:
		emitDeleteStmt(e, nil, n.Delete, false)
	}
}

func emitSortBy(e *emitter.Emitter, n *parser.SortBy) {
	e.GroupStart(emitter.SortBy)
	emitExpr(e, n.Expr)
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
