package parser_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/pseudomuto/pgfmt/pkg/parser"
	"github.com/stretchr/testify/require"
)

// postfix walks the precedence chain of a single-term expression down to its postfix node.
func postfix(t *testing.T, e *Expr) *PostfixExpr {
	t.Helper()

	require.NotNil(t, e)
	require.Empty(t, e.Rest)
	require.Empty(t, e.Left.Rest)
	is := e.Left.Left.Is
	require.NotNil(t, is)
	require.Nil(t, is.Left.Right)
	op := is.Left.Left.Left
	require.Empty(t, op.Rest)
	require.Empty(t, op.Left.Rest)
	require.Empty(t, op.Left.Left.Rest)
	require.Empty(t, op.Left.Left.Left.Rest)

	return op.Left.Left.Left.Left.Operand
}

func parseOne(t *testing.T, sql string) *Statement {
	t.Helper()

	parsed, err := ParseString(sql)
	require.NoError(t, err)
	require.Len(t, parsed.Statements, 1)
	return parsed.Statements[0]
}

func TestParse(t *testing.T) {
	sql := `SELECT id, name FROM users WHERE active;
DELETE FROM sessions WHERE expires_at < now();`

	result, err := Parse(strings.NewReader(sql))
	require.NoError(t, err)
	require.Len(t, result.Statements, 2)

	require.NotNil(t, result.Statements[0].Select)
	require.NotNil(t, result.Statements[1].Delete)
	require.Equal(t, "sessions", result.Statements[1].Delete.Table.String())
	require.Equal(t, 2, result.Statements[1].Pos.Line)
}

func TestParseStringSeparators(t *testing.T) {
	result, err := ParseString(";; SELECT 1;; SELECT 2;")
	require.NoError(t, err)
	require.Len(t, result.Statements, 2)

	result, err = ParseString("  -- only a comment\n")
	require.NoError(t, err)
	require.Empty(t, result.Statements)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{name: "dangling from", sql: "SELECT FROM WHERE"},
		{name: "reserved identifier", sql: "SELECT select FROM t"},
		{name: "unterminated string", sql: "SELECT 'abc"},
		{name: "missing semicolon", sql: "SELECT 1 SELECT 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.sql)
			require.Error(t, err)
			require.ErrorContains(t, err, "failed to parse SQL")
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "queries.sql")
	require.NoError(t, os.WriteFile(path, []byte("SELECT 1;\nSELECT 2;\n"), 0o600))

	result, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, result.Statements, 2)

	_, err = ParseFile(filepath.Join(dir, "missing.sql"))
	require.ErrorContains(t, err, "failed to open")
}

func TestIdentifierFolding(t *testing.T) {
	stmt := parseOne(t, `SELECT "MixedCase", MixedCase AS "Label" FROM Public.Users`)
	core := stmt.Select.Left.Select
	require.Len(t, core.Targets, 2)

	first := postfix(t, core.Targets[0].Expr).Primary.Column
	require.Equal(t, "MixedCase", first.Name.String())

	second := postfix(t, core.Targets[1].Expr).Primary.Column
	require.Equal(t, "mixedcase", second.Name.String())
	require.Equal(t, Identifier("Label"), *core.Targets[1].Alias)

	require.Equal(t, "public.users", core.From[0].Source.Table.Name.String())
}

func TestStringLiterals(t *testing.T) {
	stmt := parseOne(t, `SELECT 'it''s'`)
	lit := postfix(t, stmt.Select.Left.Select.Targets[0].Expr).Primary.Literal
	require.NotNil(t, lit.String)
	require.Equal(t, StringLiteral("it's"), *lit.String)
}

func TestJoins(t *testing.T) {
	stmt := parseOne(t, "SELECT * FROM a LEFT OUTER JOIN b USING (id) NATURAL JOIN c CROSS JOIN d")
	from := stmt.Select.Left.Select.From
	require.Len(t, from, 1)
	require.Len(t, from[0].Joins, 3)

	require.Equal(t, JoinType("LEFT"), from[0].Joins[0].Type)
	require.Equal(t, []Identifier{"id"}, from[0].Joins[0].Using)

	require.True(t, from[0].Joins[1].Natural)
	require.Equal(t, JoinType("INNER"), from[0].Joins[1].Type)

	require.Equal(t, JoinType("CROSS"), from[0].Joins[2].Type)
}

func TestComparisonOperators(t *testing.T) {
	stmt := parseOne(t, "SELECT * FROM t WHERE a != 1")
	cmp := stmt.Select.Left.Select.Where.Left.Left.Is.Left
	require.Equal(t, CompOp("<>"), cmp.Op)
	require.NotNil(t, cmp.Right)
}

func TestTypeNames(t *testing.T) {
	stmt := parseOne(t, "SELECT a::double precision, b::varchar(10)[], c::timestamp with time zone, d::pg_catalog.int4")
	targets := stmt.Select.Left.Select.Targets
	require.Len(t, targets, 4)

	cast := func(i int) *TypeName {
		ops := postfix(t, targets[i].Expr).Ops
		require.Len(t, ops, 1)
		require.NotNil(t, ops[0].Cast)
		return ops[0].Cast
	}

	require.True(t, cast(0).Double)
	require.Equal(t, "double precision", cast(0).BaseName())

	require.Equal(t, "varchar", cast(1).BaseName())
	require.Equal(t, []string{"10"}, cast(1).Mods)
	require.Len(t, cast(1).Array, 1)

	require.Equal(t, Word("WITH"), cast(2).TimeZone)

	require.Equal(t, "int4", cast(3).BaseName())
	require.Equal(t, "pg_catalog", cast(3).Schema())
}

func TestWithClause(t *testing.T) {
	stmt := parseOne(t, "WITH moved AS (DELETE FROM a RETURNING *) INSERT INTO b SELECT * FROM moved")
	require.NotNil(t, stmt.With)
	require.Len(t, stmt.With.CTEs, 1)
	require.NotNil(t, stmt.With.CTEs[0].Query.Delete)
	require.NotNil(t, stmt.Insert)
}

func TestCreateTable(t *testing.T) {
	stmt := parseOne(t, `CREATE TEMP TABLE IF NOT EXISTS accounts (
		id bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		owner_id int NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		balance numeric(12, 2) DEFAULT 0 CHECK (balance >= 0),
		CONSTRAINT accounts_owner_key UNIQUE (owner_id)
	)`)

	ct := stmt.CreateTable
	require.NotNil(t, ct)
	require.Equal(t, Word("TEMPORARY"), ct.Persistence)
	require.True(t, ct.IfNotExists)
	require.Len(t, ct.Elements, 4)

	id := ct.Elements[0].Column
	require.Equal(t, Identifier("id"), id.Name)
	require.Len(t, id.Constraints, 2)
	require.Equal(t, Word("ALWAYS"), id.Constraints[0].Generated.When)
	require.True(t, id.Constraints[1].PrimaryKey)

	owner := ct.Elements[1].Column
	require.True(t, owner.Constraints[0].NotNull)
	require.Equal(t, "users", owner.Constraints[1].References.Table.String())
	require.Equal(t, Word("CASCADE"), owner.Constraints[1].References.Actions[0].Action)

	balance := ct.Elements[2].Column
	require.Equal(t, []string{"12", "2"}, balance.Type.Mods)
	require.NotNil(t, balance.Constraints[0].Default)
	require.NotNil(t, balance.Constraints[1].Check)

	con := ct.Elements[3].Constraint
	require.Equal(t, Identifier("accounts_owner_key"), *con.Name)
	require.Equal(t, []Identifier{"owner_id"}, con.Unique)
}

func TestStatementDispatch(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		is   func(*Statement) bool
	}{
		{"create table as", "CREATE TABLE t2 (a, b) AS SELECT 1, 2 WITH NO DATA", func(s *Statement) bool { return s.CreateTableAs != nil }},
		{"materialized view", "CREATE MATERIALIZED VIEW mv AS SELECT 1 WITH DATA", func(s *Statement) bool { return s.CreateMatView != nil }},
		{"view", "CREATE OR REPLACE VIEW v AS SELECT 1", func(s *Statement) bool { return s.CreateView != nil }},
		{"index", "CREATE UNIQUE INDEX ON t (lower(email))", func(s *Statement) bool { return s.CreateIndex != nil }},
		{"schema", "CREATE SCHEMA AUTHORIZATION joe", func(s *Statement) bool { return s.CreateSchema != nil && s.CreateSchema.Authorization != nil }},
		{"tablespace", "CREATE TABLESPACE fast LOCATION '/ssd'", func(s *Statement) bool { return s.CreateTablespace != nil }},
		{"alter enum", "ALTER TYPE mood ADD VALUE 'meh' AFTER 'ok'", func(s *Statement) bool { return s.AlterEnum != nil }},
		{"rename column", "ALTER TABLE users RENAME COLUMN a TO b", func(s *Statement) bool { return s.Rename != nil && s.Rename.Column != nil }},
		{"rename table", "ALTER TABLE users RENAME TO people", func(s *Statement) bool { return s.Rename != nil && s.Rename.Column == nil }},
		{"owner", "ALTER TABLE users OWNER TO bob", func(s *Statement) bool { return s.AlterOwner != nil }},
		{"set schema", "ALTER TABLE users SET SCHEMA archive", func(s *Statement) bool { return s.AlterObjectSchema != nil }},
		{"alter table", "ALTER TABLE users ADD COLUMN age int, DROP COLUMN name", func(s *Statement) bool { return s.AlterTable != nil && len(s.AlterTable.Cmds) == 2 }},
		{"drop", "DROP TABLE IF EXISTS a, b CASCADE", func(s *Statement) bool { return s.Drop != nil && len(s.Drop.Names) == 2 }},
		{"truncate", "TRUNCATE TABLE a RESTART IDENTITY", func(s *Statement) bool { return s.Truncate != nil }},
		{"comment", "COMMENT ON TABLE a IS NULL", func(s *Statement) bool { return s.Comment != nil && s.Comment.Null }},
		{"load", "LOAD 'auto_explain'", func(s *Statement) bool { return s.Load != nil }},
		{"do", "DO $$BEGIN NULL; END$$ LANGUAGE plpgsql", func(s *Statement) bool { return s.Do != nil && s.Do.LanguageAfter != nil }},
		{"update", "UPDATE t SET (a, b) = (1, 2) WHERE id = 1", func(s *Statement) bool { return s.Update != nil }},
		{"values", "VALUES (1, 'a'), (2, 'b')", func(s *Statement) bool { return s.Select != nil && s.Select.Left.Values != nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := parseOne(t, tt.sql)
			require.True(t, tt.is(stmt))
		})
	}
}

func TestFuncCalls(t *testing.T) {
	call := func(sql string) *FuncCall {
		t.Helper()

		targets := parseOne(t, "SELECT "+sql).Select.Left.Select.Targets
		require.Len(t, targets, 1)
		fn := postfix(t, targets[0].Expr).Primary.Func
		require.NotNil(t, fn)
		return fn
	}

	t.Run("no arguments", func(t *testing.T) {
		fn := call("now()")
		require.Equal(t, "now", fn.Name.String())
		require.False(t, fn.Star)
		require.False(t, fn.Distinct)
		require.Empty(t, fn.Args)
		require.Empty(t, fn.OrderBy)
	})

	t.Run("star", func(t *testing.T) {
		fn := call("count(*)")
		require.True(t, fn.Star)
		require.Empty(t, fn.Args)
	})

	t.Run("arguments", func(t *testing.T) {
		fn := call("coalesce(a, b, 0)")
		require.Len(t, fn.Args, 3)
	})

	t.Run("distinct with order by", func(t *testing.T) {
		fn := call("string_agg(DISTINCT a, ',' ORDER BY b DESC)")
		require.True(t, fn.Distinct)
		require.Len(t, fn.Args, 2)
		require.Len(t, fn.OrderBy, 1)
		require.Equal(t, Word("DESC"), fn.OrderBy[0].Dir)
	})

	t.Run("filter and over", func(t *testing.T) {
		fn := call("count(*) FILTER (WHERE a > 1) OVER ()")
		require.NotNil(t, fn.Filter)
		require.NotNil(t, fn.Over)
		require.True(t, fn.Over.Paren)
	})

	for _, sql := range []string{
		"UPDATE t SET updated_at = now() WHERE id = 1",
		"CREATE TABLE t AS SELECT gen_random_uuid() AS id",
		"CREATE TABLE t (created_at timestamptz DEFAULT now())",
	} {
		t.Run(sql, func(t *testing.T) {
			parseOne(t, sql)
		})
	}
}
