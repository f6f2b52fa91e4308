package nodes

import (
	"github.com/pseudomuto/pgfmt/pkg/emitter"
	"github.com/pseudomuto/pgfmt/pkg/parser"
	"github.com/pseudomuto/pgfmt/pkg/token"
)

func emitDropStmt(e *emitter.Emitter, n *parser.DropStmt) {
	e.GroupStart(emitter.DropStmt)
	kw(e, token.DROP)
	e.Space()
	word(e, n.Object)
	if n.Concurrently {
		e.Space()
		kw(e, token.CONCURRENTLY)
	}
	ifExists(e, n.IfExists)
	e.IndentStart()
	e.Line(emitter.SoftOrSpace)
	nameList(e, n.Names)
	e.IndentEnd()
	behavior(e, n.Behavior)
	semicolon(e, true)
	e.GroupEnd()
}

func emitTruncateStmt(e *emitter.Emitter, n *parser.TruncateStmt) {
	e.GroupStart(emitter.TruncateStmt)
	kw(e, token.TRUNCATE)
	if n.Table {
		e.Space()
		kw(e, token.TABLE)
	}
	if n.Only {
		e.Space()
		kw(e, token.ONLY)
	}
	e.IndentStart()
	e.Line(emitter.SoftOrSpace)
	nameList(e, n.Names)
	e.IndentEnd()
	if n.Identity != "" {
		e.Space()
		word(e, n.Identity)
		e.Space()
		kw(e, token.IDENTITY)
	}
	behavior(e, n.Behavior)
	semicolon(e, true)
	e.GroupEnd()
}

func emitCommentStmt(e *emitter.Emitter, n *parser.CommentStmt) {
	e.GroupStart(emitter.CommentStmt)
	kw(e, token.COMMENT, token.ON)
	e.Space()
	word(e, n.Object)
	e.Space()
	qualifiedName(e, n.Name)
	e.Space()
	kw(e, token.IS)
	e.IndentStart()
	e.Line(emitter.SoftOrSpace)
	if n.Text != nil {
		stringLiteral(e, *n.Text)
	} else {
		kw(e, token.NULL)
	}
	e.IndentEnd()
	semicolon(e, true)
	e.GroupEnd()
}

func emitLoadStmt(e *emitter.Emitter, n *parser.LoadStmt) {
	e.GroupStart(emitter.LoadStmt)
	kw(e, token.LOAD)
	e.Space()
	stringLiteral(e, n.File)
	semicolon(e, true)
	e.GroupEnd()
}

// emitDoStmt keeps the LANGUAGE clause on whichever side of the body it was written. Dollar
// quoted bodies are emitted verbatim, newlines included.
func emitDoStmt(e *emitter.Emitter, n *parser.DoStmt) {
	e.GroupStart(emitter.DoStmt)
	kw(e, token.DO)
	language(e, n.Language)

	e.Space()
	if n.Dollar != nil {
		e.Token(token.Raw(*n.Dollar))
	} else if n.String != nil {
		stringLiteral(e, *n.String)
	}

	language(e, n.LanguageAfter)
	semicolon(e, true)
	e.GroupEnd()
}

func language(e *emitter.Emitter, lang *parser.Identifier) {
	if lang != nil {
		e.Space()
		kw(e, token.LANGUAGE)
		e.Space()
		ident(e, *lang)
	}
}
