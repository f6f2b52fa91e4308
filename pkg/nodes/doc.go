// Package nodes lowers parsed statements into layout events.
//
// Every parser node has an emit function that walks its children in source order and records
// tokens, spaces, lines and groups on an emitter.Emitter. The functions only describe where a
// line may break and what belongs together; the renderer decides which breaks are taken.
//
// A few spellings are normalized along the way so the output of one run parses back into the
// same tree:
//
//   - keywords are upper case, unquoted identifiers lower case
//   - aliases are always introduced with AS
//   - joins are spelled INNER, LEFT, RIGHT, FULL or CROSS JOIN
//   - built-in type names use a single canonical spelling (int4 -> INT)
//
// Usage:
//
//	sql, _ := parser.ParseString("select id from users")
//	for _, stmt := range sql.Statements {
//	    out, _ := renderer.RenderString(nodes.Emit(stmt), renderer.DefaultConfig())
//	    fmt.Println(out)
//	}
package nodes
