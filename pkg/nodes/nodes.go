package nodes

import (
	"github.com/pseudomuto/pgfmt/pkg/emitter"
	"github.com/pseudomuto/pgfmt/pkg/parser"
	"github.com/pseudomuto/pgfmt/pkg/token"
)

// Emit lowers a single statement into a fresh event stream.
//
// Example:
//
//	sql, _ := parser.ParseString("SELECT id FROM users;")
//	events := nodes.Emit(sql.Statements[0])
//	out, err := renderer.RenderString(events, renderer.DefaultConfig())
func Emit(stmt *parser.Statement) []emitter.Event {
	e := emitter.New()
	EmitStatement(e, stmt)
	return e.Events()
}

// EmitStatement appends the events for stmt to e. The statement is wrapped in exactly one
// group, tagged with the statement kind, which ends with the terminating semicolon. A
// statement with no recognized body emits nothing.
func EmitStatement(e *emitter.Emitter, stmt *parser.Statement) {
	if stmt == nil {
		return
	}

	switch {
	case stmt.Select != nil:
		emitSelectStmt(e, stmt.With, stmt.Select, true)
	case stmt.Insert != nil:
		emitInsertStmt(e, stmt.With, stmt.Insert, true)
	case stmt.Update != nil:
		emitUpdateStmt(e, stmt.With, stmt.Update, true)
	case stmt.Delete != nil:
		emitDeleteStmt(e, stmt.With, stmt.Delete, true)
	case stmt.CreateTable != nil:
		emitCreateTableStmt(e, stmt.CreateTable)
	case stmt.CreateTableAs != nil:
		emitCreateTableAsStmt(e, stmt.CreateTableAs)
	case stmt.CreateMatView != nil:
		emitCreateMatViewStmt(e, stmt.CreateMatView)
	case stmt.CreateView != nil:
		emitCreateViewStmt(e, stmt.CreateView)
	case stmt.CreateIndex != nil:
		emitCreateIndexStmt(e, stmt.CreateIndex)
	case stmt.CreateSchema != nil:
		emitCreateSchemaStmt(e, stmt.CreateSchema)
	case stmt.CreateTablespace != nil:
		emitCreateTablespaceStmt(e, stmt.CreateTablespace)
	case stmt.AlterEnum != nil:
		emitAlterEnumStmt(e, stmt.AlterEnum)
	case stmt.Rename != nil:
		emitRenameStmt(e, stmt.Rename)
	case stmt.AlterOwner != nil:
		emitAlterOwnerStmt(e, stmt.AlterOwner)
	case stmt.AlterObjectSchema != nil:
		emitAlterObjectSchemaStmt(e, stmt.AlterObjectSchema)
	case stmt.AlterTable != nil:
		emitAlterTableStmt(e, stmt.AlterTable)
	case stmt.Drop != nil:
		emitDropStmt(e, stmt.Drop)
	case stmt.Truncate != nil:
		emitTruncateStmt(e, stmt.Truncate)
	case stmt.Comment != nil:
		emitCommentStmt(e, stmt.Comment)
	case stmt.Load != nil:
		emitLoadStmt(e, stmt.Load)
	case stmt.Do != nil:
		emitDoStmt(e, stmt.Do)
	}
}

func kw(e *emitter.Emitter, kws ...token.Keyword) {
	for i, k := range kws {
		if i > 0 {
			e.Space()
		}
		e.Token(token.Kw(k))
	}
}

// word emits a captured keyword sequence. Words missing from the keyword table still render
// upper case, as raw text.
func word(e *emitter.Emitter, w parser.Word) {
	for i, part := range w.Words() {
		if i > 0 {
			e.Space()
		}

		if k, ok := token.LookupKeyword(part); ok {
			e.Token(token.Kw(k))
		} else {
			e.Token(token.Raw(part))
		}
	}
}

func punct(e *emitter.Emitter, p token.Punct) {
	e.Token(token.P(p))
}

func ident(e *emitter.Emitter, id parser.Identifier) {
	e.Token(token.IdentMaybeQuoted(string(id)))
}

func qualifiedName(e *emitter.Emitter, q *parser.QualifiedName) {
	if q == nil {
		return
	}

	for i, part := range q.Parts {
		if i > 0 {
			punct(e, token.Dot)
		}
		ident(e, part)
	}
}

func stringLiteral(e *emitter.Emitter, s parser.StringLiteral) {
	e.Token(token.String(string(s)))
}

// commaList emits items separated by a comma and a SoftOrSpace line, so a broken parent puts
// every item on its own line.
func commaList[T any](e *emitter.Emitter, items []T, fn func(T)) {
	for i, item := range items {
		if i > 0 {
			punct(e, token.Comma)
			e.Line(emitter.SoftOrSpace)
		}
		fn(item)
	}
}

// parens wraps body in parentheses. The lines just inside the parentheses are Soft, so the
// flat rendering is (a, b) and the broken one puts the contents on their own, indented lines.
func parens(e *emitter.Emitter, body func()) {
	punct(e, token.LParen)
	e.IndentStart()
	e.Line(emitter.Soft)
	body()
	e.IndentEnd()
	e.Line(emitter.Soft)
	punct(e, token.RParen)
}

// clause emits a keyword-led clause as its own group: the keywords, then the body on an
// indented line of its own when the clause does not fit.
//
//	WHERE a = 1        (flat)
//
//	WHERE              (broken)
//	  a = 1
//	  AND b = 2
func clause(e *emitter.Emitter, kind emitter.GroupKind, body func(), kws ...token.Keyword) {
	e.GroupStart(kind)
	kw(e, kws...)
	e.IndentStart()
	e.Line(emitter.SoftOrSpace)
	body()
	e.IndentEnd()
	e.GroupEnd()
}

func identList(e *emitter.Emitter, ids []parser.Identifier) {
	e.GroupStart(emitter.ColumnList)
	parens(e, func() {
		commaList(e, ids, func(id parser.Identifier) { ident(e, id) })
	})
	e.GroupEnd()
}

func nameList(e *emitter.Emitter, names []*parser.QualifiedName) {
	commaList(e, names, func(q *parser.QualifiedName) { qualifiedName(e, q) })
}

func ifExists(e *emitter.Emitter, set bool) {
	if set {
		e.Space()
		kw(e, token.IF, token.EXISTS)
	}
}

func ifNotExists(e *emitter.Emitter, set bool) {
	if set {
		e.Space()
		kw(e, token.IF, token.NOT, token.EXISTS)
	}
}

func semicolon(e *emitter.Emitter, terminate bool) {
	if terminate {
		punct(e, token.Semicolon)
	}
}
