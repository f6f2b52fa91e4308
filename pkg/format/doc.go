// Package format turns parsed PostgreSQL statements into consistently laid out SQL.
//
// Each statement is lowered to layout events by the nodes package and rendered by the
// renderer package against a line width. Statements are independent of each other, so a
// Formatter works on them concurrently and writes the results in input order, separated by a
// blank line.
//
// Key features:
//   - Upper case keywords and minimally quoted identifiers
//   - Clauses on their own lines only when a statement does not fit the line width
//   - Lists broken one item per line, indented under their keyword
//   - Normalized built-in type names (int4 -> INT, pg_catalog.bool -> BOOLEAN)
//   - Optional verification that the output parses back into the same tree
//
// Usage:
//
//	// Object-oriented API with default options
//	formatter := format.New(format.Defaults)
//
//	// Object-oriented API with custom options
//	formatter := format.New(format.Options{
//		MaxLineLength: 100,
//		IndentSize:    2,
//		IndentStyle:   renderer.Spaces,
//		Verify:        true,
//	})
//
//	var buf bytes.Buffer
//	err := formatter.Format(&buf, statements...)
//
//	// Functional API
//	err := format.Format(&buf, format.Defaults, statements...)
//
//	// Straight from SQL text
//	out, err := format.FormatString(format.Defaults, "select * from users where id = 1")
package format
