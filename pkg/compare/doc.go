// Package compare decides whether two parse trees describe the same SQL.
//
// It is the oracle behind round-trip checking: formatted output is parsed again and compared
// with the tree it was produced from. The comparison is structural, done with go-cmp, and
// tolerates exactly the rewrites the formatter is allowed to make:
//
//   - source positions are ignored
//   - built-in type names compare by their normalized spelling (int4 == INTEGER == pg_catalog.int4)
//   - nil and empty lists are equal
//
// Every other spelling the formatter normalizes (keyword case, optional AS, OUTER in joins,
// != for <>) is already folded away by the parser.
//
// Example:
//
//	before, _ := parser.ParseString(src)
//	after, _ := parser.ParseString(formatted)
//	if ok, diff := compare.Statements(before.Statements, after.Statements); !ok {
//	    log.Fatalf("formatting changed the meaning:\n%s", diff)
//	}
package compare
