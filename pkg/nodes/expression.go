package nodes

import (
	"strings"

	"github.com/pseudomuto/pgfmt/pkg/emitter"
	"github.com/pseudomuto/pgfmt/pkg/parser"
	"github.com/pseudomuto/pgfmt/pkg/token"
)

// emitExpr lowers a value expression. Every precedence level that only wraps a single
// operand is transparent: groups are only opened for the operators actually present.
func emitExpr(e *emitter.Emitter, n *parser.Expr) {
	if n == nil {
		return
	}

	if len(n.Rest) == 0 {
		emitAndExpr(e, n.Left)
		return
	}

	e.GroupStart(emitter.BoolExpr)
	emitAndExpr(e, n.Left)
	for _, r := range n.Rest {
		e.Line(emitter.SoftOrSpace)
		kw(e, token.OR)
		e.Space()
		emitAndExpr(e, r)
	}
	e.GroupEnd()
}

func emitAndExpr(e *emitter.Emitter, n *parser.AndExpr) {
	if len(n.Rest) == 0 {
		emitNotExpr(e, n.Left)
		return
	}

	e.GroupStart(emitter.BoolExpr)
	emitNotExpr(e, n.Left)
	for _, r := range n.Rest {
		e.Line(emitter.SoftOrSpace)
		kw(e, token.AND)
		e.Space()
		emitNotExpr(e, r)
	}
	e.GroupEnd()
}

func emitNotExpr(e *emitter.Emitter, n *parser.NotExpr) {
	if n.Not != nil {
		e.GroupStart(emitter.NotExpr)
		kw(e, token.NOT)
		e.Space()
		emitNotExpr(e, n.Not)
		e.GroupEnd()
		return
	}

	emitIsExpr(e, n.Is)
}

func emitIsExpr(e *emitter.Emitter, n *parser.IsExpr) {
	if len(n.Tests) == 0 {
		emitCompExpr(e, n.Left)
		return
	}

	kind := emitter.BooleanTest
	if n.Tests[0].Null {
		kind = emitter.NullTest
	}

	e.GroupStart(kind)
	emitCompExpr(e, n.Left)
	for _, t := range n.Tests {
		e.Space()
		kw(e, token.IS)
		if t.Not {
			e.Space()
			kw(e, token.NOT)
		}
		e.Space()

		switch {
		case t.Null:
			kw(e, token.NULL)
		case t.True:
			kw(e, token.TRUE)
		case t.False:
			kw(e, token.FALSE)
		case t.Unknown:
			kw(e, token.UNKNOWN)
		case t.DistinctFrom != nil:
			kw(e, token.DISTINCT, token.FROM)
			e.Space()
			emitCompExpr(e, t.DistinctFrom)
		}
	}
	e.GroupEnd()
}

func emitCompExpr(e *emitter.Emitter, n *parser.CompExpr) {
	if n.Right == nil && n.Quant == nil {
		emitPredExpr(e, n.Left)
		return
	}

	e.GroupStart(emitter.AExpr)
	emitPredExpr(e, n.Left)
	e.Space()
	e.Token(token.Raw(string(n.Op)))
	e.IndentStart()
	e.Line(emitter.SoftOrSpace)

	if q := n.Quant; q != nil {
		e.GroupStart(emitter.SubLink)
		word(e, q.Kind)
		parens(e, func() {
			if q.Sub != nil {
				emitSelectStmt(e, nil, q.Sub, false)
			} else {
				emitExpr(e, q.Expr)
			}
		})
		e.GroupEnd()
	} else {
		emitPredExpr(e, n.Right)
	}

	e.IndentEnd()
	e.GroupEnd()
}

func emitPredExpr(e *emitter.Emitter, n *parser.PredExpr) {
	r := n.Rest
	if r == nil {
		emitOpExpr(e, n.Left)
		return
	}

	not := func() {
		if r.Not {
			kw(e, token.NOT)
			e.Space()
		}
	}

	switch {
	case r.Between != nil:
		e.GroupStart(emitter.BetweenExpr)
		emitOpExpr(e, n.Left)
		e.Space()
		not()
		kw(e, token.BETWEEN)
		if r.Between.Symmetric {
			e.Space()
			kw(e, token.SYMMETRIC)
		}
		e.Space()
		emitOpExpr(e, r.Between.Low)
		e.Space()
		kw(e, token.AND)
		e.Space()
		emitOpExpr(e, r.Between.High)
		e.GroupEnd()

	case r.In != nil:
		e.GroupStart(emitter.InExpr)
		emitOpExpr(e, n.Left)
		e.Space()
		not()
		kw(e, token.IN)
		e.Space()
		parens(e, func() {
			if r.In.Sub != nil {
				emitSelectStmt(e, nil, r.In.Sub, false)
			} else {
				commaList(e, r.In.List, func(x *parser.Expr) { emitExpr(e, x) })
			}
		})
		e.GroupEnd()

	case r.Like != nil:
		e.GroupStart(emitter.LikeExpr)
		emitOpExpr(e, n.Left)
		e.Space()
		not()
		word(e, r.Like.Op)
		e.Space()
		emitOpExpr(e, r.Like.Pattern)
		if r.Like.Escape != nil {
			e.Space()
			kw(e, token.ESCAPE)
			e.Space()
			emitOpExpr(e, r.Like.Escape)
		}
		e.GroupEnd()

	default:
		emitOpExpr(e, n.Left)
	}
}

// binary emits a left-associative operator chain of n operators. Continuation lines are
// indented one level and start with the right operand, the operator staying at the end of the
// previous line.
func binary(e *emitter.Emitter, n int, left func(), op func(int) string, right func(int)) {
	e.GroupStart(emitter.AExpr)
	left()
	e.IndentStart()
	for i := range n {
		e.Space()
		e.Token(token.Raw(op(i)))
		e.Line(emitter.SoftOrSpace)
		right(i)
	}
	e.IndentEnd()
	e.GroupEnd()
}

func emitOpExpr(e *emitter.Emitter, n *parser.OpExpr) {
	if n == nil {
		return
	}

	if len(n.Rest) == 0 {
		emitAddExpr(e, n.Left)
		return
	}

	binary(e, len(n.Rest),
		func() { emitAddExpr(e, n.Left) },
		func(i int) string { return n.Rest[i].Op },
		func(i int) { emitAddExpr(e, n.Rest[i].Right) },
	)
}

func emitAddExpr(e *emitter.Emitter, n *parser.AddExpr) {
	if len(n.Rest) == 0 {
		emitMulExpr(e, n.Left)
		return
	}

	binary(e, len(n.Rest),
		func() { emitMulExpr(e, n.Left) },
		func(i int) string { return n.Rest[i].Op },
		func(i int) { emitMulExpr(e, n.Rest[i].Right) },
	)
}

func emitMulExpr(e *emitter.Emitter, n *parser.MulExpr) {
	if len(n.Rest) == 0 {
		emitExpExpr(e, n.Left)
		return
	}

	binary(e, len(n.Rest),
		func() { emitExpExpr(e, n.Left) },
		func(i int) string { return n.Rest[i].Op },
		func(i int) { emitExpExpr(e, n.Rest[i].Right) },
	)
}

func emitExpExpr(e *emitter.Emitter, n *parser.ExpExpr) {
	if len(n.Rest) == 0 {
		emitUnaryExpr(e, n.Left)
		return
	}

	binary(e, len(n.Rest),
		func() { emitUnaryExpr(e, n.Left) },
		func(int) string { return "^" },
		func(i int) { emitUnaryExpr(e, n.Rest[i]) },
	)
}

// emitUnaryExpr keeps a space between consecutive sign operators: -(-1) written as --1 would
// read back as a comment.
func emitUnaryExpr(e *emitter.Emitter, n *parser.UnaryExpr) {
	for i, op := range n.Ops {
		if i > 0 {
			e.Space()
		}
		e.Token(token.Raw(op))
	}

	emitPostfixExpr(e, n.Operand)
}

func emitPostfixExpr(e *emitter.Emitter, n *parser.PostfixExpr) {
	if len(n.Ops) == 0 {
		emitPrimary(e, n.Primary)
		return
	}

	kind := emitter.Indirection
	for _, op := range n.Ops {
		if op.Cast != nil {
			kind = emitter.TypeCast
			break
		}
	}

	e.GroupStart(kind)
	emitPrimary(e, n.Primary)
	for _, op := range n.Ops {
		switch {
		case op.Cast != nil:
			e.Token(token.Raw("::"))
			emitTypeName(e, op.Cast)
		case op.Subscript != nil:
			emitSubscript(e, op.Subscript)
		case op.Collate != nil:
			e.Space()
			kw(e, token.COLLATE)
			e.Space()
			qualifiedName(e, op.Collate)
		}
	}
	e.GroupEnd()
}

func emitSubscript(e *emitter.Emitter, n *parser.Subscript) {
	punct(e, token.LBracket)
	emitExpr(e, n.Lower)
	if n.Slice {
		e.Token(token.Raw(":"))
	}
	emitExpr(e, n.Upper)
	punct(e, token.RBracket)
}

func emitPrimary(e *emitter.Emitter, n *parser.Primary) {
	switch {
	case n == nil:
	case n.Exists != nil:
		e.GroupStart(emitter.SubLink)
		kw(e, token.EXISTS)
		e.Space()
		parens(e, func() { emitSelectStmt(e, nil, n.Exists.Sub, false) })
		e.GroupEnd()
	case n.Paren != nil:
		emitParenExpr(e, n.Paren)
	case n.Literal != nil:
		emitLiteral(e, n.Literal)
	case n.Param != nil:
		e.GroupStart(emitter.ParamRef)
		e.Token(token.Raw(*n.Param))
		e.GroupEnd()
	case n.Default:
		kw(e, token.DEFAULT)
	case n.Interval != nil:
		e.GroupStart(emitter.IntervalExpr)
		kw(e, token.INTERVAL)
		e.Space()
		stringLiteral(e, n.Interval.Value)
		e.GroupEnd()
	case n.Cast != nil:
		e.GroupStart(emitter.TypeCast)
		kw(e, token.CAST)
		parens(e, func() {
			emitExpr(e, n.Cast.Expr)
			e.Space()
			kw(e, token.AS)
			e.Space()
			emitTypeName(e, n.Cast.Type)
		})
		e.GroupEnd()
	case n.Case != nil:
		emitCaseExpr(e, n.Case)
	case n.Array != nil:
		e.GroupStart(emitter.ArrayExpr)
		kw(e, token.ARRAY)
		if n.Array.Sub != nil {
			parens(e, func() { emitSelectStmt(e, nil, n.Array.Sub, false) })
		} else {
			emitArrayLit(e, n.Array.Lit)
		}
		e.GroupEnd()
	case n.Row != nil:
		e.GroupStart(emitter.RowExpr)
		kw(e, token.ROW)
		emitArgs(e, n.Row.Args)
		e.GroupEnd()
	case n.Extract != nil:
		e.GroupStart(emitter.ExtractExpr)
		kw(e, token.EXTRACT)
		parens(e, func() {
			field := string(n.Extract.Field)
			if token.NeedsQuoting(field) {
				e.Token(token.QuotedIdent(field))
			} else {
				e.Token(token.Raw(strings.ToUpper(field)))
			}
			e.Space()
			kw(e, token.FROM)
			e.Space()
			emitExpr(e, n.Extract.From)
		})
		e.GroupEnd()
	case n.Func != nil:
		emitFuncCall(e, n.Func)
	case n.Column != nil:
		e.GroupStart(emitter.ColumnRef)
		qualifiedName(e, n.Column.Name)
		if n.Column.Star {
			punct(e, token.Dot)
			e.Token(token.Raw("*"))
		}
		e.GroupEnd()
	}
}

func emitParenExpr(e *emitter.Emitter, n *parser.ParenExpr) {
	if n.Sub != nil {
		e.GroupStart(emitter.SubLink)
		parens(e, func() { emitSelectStmt(e, nil, n.Sub, false) })
		e.GroupEnd()
		return
	}

	e.GroupStart(emitter.ParenExpr)
	parens(e, func() {
		commaList(e, n.Exprs, func(x *parser.Expr) { emitExpr(e, x) })
	})
	e.GroupEnd()
}

func emitLiteral(e *emitter.Emitter, n *parser.Literal) {
	e.GroupStart(emitter.AConst)
	switch {
	case n.Number != nil:
		e.Token(token.Raw(*n.Number))
	case n.String != nil:
		stringLiteral(e, *n.String)
	case n.Dollar != nil:
		e.Token(token.Raw(*n.Dollar))
	case n.True:
		kw(e, token.TRUE)
	case n.False:
		kw(e, token.FALSE)
	case n.Null:
		kw(e, token.NULL)
	}
	e.GroupEnd()
}

func emitCaseExpr(e *emitter.Emitter, n *parser.CaseExpr) {
	e.GroupStart(emitter.CaseExpr)
	kw(e, token.CASE)
	if n.Arg != nil {
		e.Space()
		emitExpr(e, n.Arg)
	}

	e.IndentStart()
	for _, w := range n.Whens {
		e.Line(emitter.SoftOrSpace)
		e.GroupStart(emitter.CaseWhen)
		kw(e, token.WHEN)
		e.Space()
		emitExpr(e, w.Cond)
		e.IndentStart()
		e.Line(emitter.SoftOrSpace)
		kw(e, token.THEN)
		e.Space()
		emitExpr(e, w.Result)
		e.IndentEnd()
		e.GroupEnd()
	}

	if n.Else != nil {
		e.Line(emitter.SoftOrSpace)
		e.GroupStart(emitter.CaseElse)
		kw(e, token.ELSE)
		e.IndentStart()
		e.Line(emitter.SoftOrSpace)
		emitExpr(e, n.Else)
		e.IndentEnd()
		e.GroupEnd()
	}
	e.IndentEnd()

	e.Line(emitter.SoftOrSpace)
	kw(e, token.END)
	e.GroupEnd()
}

func emitArrayLit(e *emitter.Emitter, n *parser.ArrayLit) {
	punct(e, token.LBracket)
	if len(n.Elems) > 0 {
		e.IndentStart()
		e.Line(emitter.Soft)
		commaList(e, n.Elems, func(el *parser.ArrayElem) {
			if el.Nested != nil {
				e.GroupStart(emitter.ArrayExpr)
				emitArrayLit(e, el.Nested)
				e.GroupEnd()
			} else {
				emitExpr(e, el.Expr)
			}
		})
		e.IndentEnd()
		e.Line(emitter.Soft)
	}
	punct(e, token.RBracket)
}

// emitArgs emits a parenthesised argument list; an empty list renders as ().
func emitArgs(e *emitter.Emitter, args []*parser.Expr) {
	if len(args) == 0 {
		punct(e, token.LParen)
		punct(e, token.RParen)
		return
	}

	parens(e, func() {
		commaList(e, args, func(x *parser.Expr) { emitExpr(e, x) })
	})
}

func emitFuncCall(e *emitter.Emitter, n *parser.FuncCall) {
	e.GroupStart(emitter.FuncCall)
	qualifiedName(e, n.Name)

	switch {
	case n.Star:
		punct(e, token.LParen)
		e.Token(token.Raw("*"))
		punct(e, token.RParen)
	case !n.Distinct && len(n.OrderBy) == 0:
		emitArgs(e, n.Args)
	default:
		parens(e, func() {
			if n.Distinct {
				kw(e, token.DISTINCT)
				e.Space()
			}
			commaList(e, n.Args, func(x *parser.Expr) { emitExpr(e, x) })
			if len(n.OrderBy) > 0 {
				e.Space()
				kw(e, token.ORDER, token.BY)
				e.Space()
				commaList(e, n.OrderBy, func(s *parser.SortBy) { emitSortBy(e, s) })
			}
		})
	}

	if n.Filter != nil {
		e.Space()
		e.GroupStart(emitter.FilterClause)
		kw(e, token.FILTER)
		e.Space()
		parens(e, func() {
			kw(e, token.WHERE)
			e.Space()
			emitExpr(e, n.Filter)
		})
		e.GroupEnd()
	}

	if n.Over != nil {
		e.Space()
		e.GroupStart(emitter.OverClause)
		kw(e, token.OVER)
		e.Space()
		if n.Over.Name != nil {
			ident(e, *n.Over.Name)
		} else {
			emitWindowDef(e, n.Over.Def)
		}
		e.GroupEnd()
	}

	e.GroupEnd()
}

// emitWindowDef emits a parenthesised window specification. A nil or empty definition is ().
func emitWindowDef(e *emitter.Emitter, n *parser.WindowDef) {
	if n == nil || (len(n.PartitionBy) == 0 && len(n.OrderBy) == 0 && n.Frame == nil) {
		punct(e, token.LParen)
		punct(e, token.RParen)
		return
	}

	e.GroupStart(emitter.WindowDef)
	parens(e, func() {
		first := true
		part := func() {
			if !first {
				e.Line(emitter.SoftOrSpace)
			}
			first = false
		}

		if len(n.PartitionBy) > 0 {
			part()
			kw(e, token.PARTITION, token.BY)
			e.Space()
			commaList(e, n.PartitionBy, func(x *parser.Expr) { emitExpr(e, x) })
		}

		if len(n.OrderBy) > 0 {
			part()
			kw(e, token.ORDER, token.BY)
			e.Space()
			commaList(e, n.OrderBy, func(s *parser.SortBy) { emitSortBy(e, s) })
		}

		if n.Frame != nil {
			part()
			emitFrameClause(e, n.Frame)
		}
	})
	e.GroupEnd()
}

func emitFrameClause(e *emitter.Emitter, n *parser.FrameClause) {
	e.GroupStart(emitter.FrameClause)
	word(e, n.Mode)
	e.Space()
	if n.Between {
		kw(e, token.BETWEEN)
		e.Space()
	}
	emitFrameBound(e, n.Start)
	if n.End != nil {
		e.Space()
		kw(e, token.AND)
		e.Space()
		emitFrameBound(e, n.End)
	}
	e.GroupEnd()
}

func emitFrameBound(e *emitter.Emitter, n *parser.FrameBound) {
	switch {
	case n.CurrentRow:
		kw(e, token.CURRENT, token.ROW)
		return
	case n.Unbounded:
		kw(e, token.UNBOUNDED)
	default:
		emitExpr(e, n.Offset)
	}

	e.Space()
	word(e, n.Direction)
}
