// Package emitter provides the document builder used to describe formatted SQL.
//
// Lowering code calls the Emitter's primitives in grammar order and the Emitter records them
// as a linear stream of events. The stream encodes a tree: GroupStart/GroupEnd and
// IndentStart/IndentEnd nest like matched parentheses.
//
//	e := emitter.New()
//	e.GroupStart(emitter.SelectStmt)
//	e.Token(token.Kw(token.SELECT))
//	e.IndentStart()
//	e.Line(emitter.SoftOrSpace)
//	e.Token(token.Raw("1"))
//	e.IndentEnd()
//	e.Token(token.P(token.Semicolon))
//	e.GroupEnd()
//
// Nothing here decides layout. A group is the unit the renderer lays out either on one line
// (flat) or with every one of its lines broken, so lowering code can be written without any
// knowledge of the line width.
package emitter
