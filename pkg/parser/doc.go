// Package parser provides a participle-based parser for a PostgreSQL statement subset.
//
// This package implements the parser with github.com/alecthomas/participle/v2. It turns SQL
// text into a typed tree that the formatter lowers into layout events. The grammar covers the
// statements people actually keep in migration and query files:
//
//   - Queries: SELECT with WITH [RECURSIVE], joins, subqueries, set operations, windows,
//     ORDER BY / LIMIT / OFFSET and row locking, plus standalone VALUES lists
//   - Data modification: INSERT (with ON CONFLICT and RETURNING), UPDATE and DELETE
//   - DDL: CREATE TABLE / TABLE AS / VIEW / MATERIALIZED VIEW / INDEX / SCHEMA / TABLESPACE,
//     ALTER TABLE, ALTER ... RENAME / OWNER TO / SET SCHEMA, ALTER TYPE ... VALUE, DROP,
//     TRUNCATE and COMMENT ON
//   - Utility: LOAD and DO blocks
//
// Unquoted identifiers are folded to lower case when parsed, the same way PostgreSQL folds
// them, and quoted identifiers keep their exact spelling. Parentheses written in expressions
// are preserved as ParenExpr nodes.
//
// Basic usage:
//
//	sql, err := parser.ParseString(`
//	    SELECT id, name FROM users WHERE active;
//	    UPDATE users SET active = false WHERE last_seen < now() - INTERVAL '1 year';
//	`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Parse from file
//	sql, err = parser.ParseFile("queries.sql")
//
// Parse errors carry the line and column of the offending token.
package parser
