package format_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/pgfmt/pkg/format"
	"github.com/pseudomuto/pgfmt/pkg/parser"
	"github.com/pseudomuto/pgfmt/pkg/renderer"
	"github.com/stretchr/testify/require"
)

// narrow are the options the layout scenarios are described with.
var narrow = Options{MaxLineLength: 60, IndentSize: 2, IndentStyle: renderer.Spaces}

func formatWith(t *testing.T, opts Options, sql string) string {
	t.Helper()

	out, err := FormatString(opts, sql)
	require.NoError(t, err)
	return out
}

func TestFormatScenarios(t *testing.T) {
	t.Run("fits on one line", func(t *testing.T) {
		require.Equal(t, "SELECT 1;", formatWith(t, narrow, "SELECT 1;"))
	})

	t.Run("long target list breaks one column per line", func(t *testing.T) {
		opts := narrow
		opts.MaxLineLength = 20

		got := formatWith(t, opts,
			"SELECT column_one, column_two, column_three, column_four, column_five FROM t;")
		require.Equal(t, strings.Join([]string{
			"SELECT",
			"  column_one,",
			"  column_two,",
			"  column_three,",
			"  column_four,",
			"  column_five",
			"FROM t;",
		}, "\n"), got)
	})

	t.Run("short delete stays flat", func(t *testing.T) {
		require.Equal(t, "DELETE FROM t WHERE a = 1;", formatWith(t, narrow, "DELETE FROM t WHERE a = 1;"))
	})

	t.Run("catalog qualified builtin types", func(t *testing.T) {
		require.Equal(t, "SELECT x::INT;", formatWith(t, narrow, "SELECT x::pg_catalog.int4;"))
		require.Equal(t, "CREATE TABLE t (a INT);", formatWith(t, narrow, "CREATE TABLE t (a pg_catalog.int4);"))
	})

	t.Run("identifier quoting", func(t *testing.T) {
		require.Equal(t, `SELECT * FROM "MyTable";`, formatWith(t, narrow, `SELECT * FROM "MyTable";`))
		require.Equal(t, "SELECT * FROM mytable;", formatWith(t, narrow, "SELECT * FROM mytable;"))
	})
}

func TestFormatGroupsAreAtomic(t *testing.T) {
	tests := []struct {
		name  string
		width int
		sql   string
		want  []string
	}{
		{
			name:  "broken list keeps short calls intact",
			width: 60,
			sql:   "SELECT coalesce(first_name, last_name) AS v, other_long_column_name FROM t;",
			want: []string{
				"SELECT",
				"  coalesce(first_name, last_name) AS v,",
				"  other_long_column_name",
				"FROM t;",
			},
		},
		{
			name:  "conflict target stays flat",
			width: 30,
			sql:   "INSERT INTO t (a) VALUES (1) ON CONFLICT (alpha) DO UPDATE SET beta = excluded.beta;",
			want: []string{
				"INSERT INTO t (a)",
				"VALUES (1)",
				"ON CONFLICT (alpha) DO UPDATE",
				"  SET beta = excluded.beta;",
			},
		},
		{
			name:  "broken chain keeps the in list intact",
			width: 20,
			sql:   "SELECT a FROM t WHERE x IN (1, 2) AND f(y) > 10;",
			want: []string{
				"SELECT a",
				"FROM t",
				"WHERE",
				"  x IN (1, 2)",
				"  AND f(y) > 10;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := narrow
			opts.MaxLineLength = tt.width
			require.Equal(t, strings.Join(tt.want, "\n"), formatWith(t, opts, tt.sql))
		})
	}
}

func TestFormatterOptions(t *testing.T) {
	sql := "SELECT id, name FROM users WHERE id = 1 AND name = 'bob';"

	t.Run("custom indent", func(t *testing.T) {
		got := formatWith(t, Options{MaxLineLength: 25, IndentSize: 4}, sql)
		require.Equal(t, strings.Join([]string{
			"SELECT id, name",
			"FROM users",
			"WHERE",
			"    id = 1",
			"    AND name = 'bob';",
		}, "\n"), got)
	})

	t.Run("tabs", func(t *testing.T) {
		got := formatWith(t, Options{MaxLineLength: 25, IndentSize: 4, IndentStyle: renderer.Tabs}, sql)
		require.Equal(t, strings.Join([]string{
			"SELECT id, name",
			"FROM users",
			"WHERE",
			"\tid = 1",
			"\tAND name = 'bob';",
		}, "\n"), got)
	})

	t.Run("wide", func(t *testing.T) {
		require.Equal(t, sql, formatWith(t, Defaults, sql))
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := FormatString(Options{}, sql)
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid render config")
	})
}

func TestFormatterFormat(t *testing.T) {
	sql, err := parser.ParseString("select 1; select 2; select 3")
	require.NoError(t, err)

	for _, jobs := range []int{0, 1, 2, 8} {
		opts := Defaults
		opts.Parallelism = jobs

		var buf bytes.Buffer
		require.NoError(t, New(opts).Format(&buf, sql.Statements...))
		require.Equal(t, "SELECT 1;\n\nSELECT 2;\n\nSELECT 3;", buf.String())
	}
}

func TestFormatterFormatContextCanceled(t *testing.T) {
	sql, err := parser.ParseString("select 1; select 2")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err = New(Defaults).FormatContext(ctx, &buf, sql.Statements...)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, buf.Len())
}

func TestFormatterStatement(t *testing.T) {
	f := New(Defaults)
	require.Equal(t, Defaults, f.Options())

	out, err := f.Statement(&parser.Statement{})
	require.NoError(t, err)
	require.Empty(t, out)

	sql, err := parser.ParseString("update t set a = 1")
	require.NoError(t, err)

	out, err = f.Statement(sql.Statements[0])
	require.NoError(t, err)
	require.Equal(t, "UPDATE t SET a = 1;", out)
	require.NotEmpty(t, f.Events(sql.Statements[0]))
}

func TestFormatVerify(t *testing.T) {
	opts := Defaults
	opts.Verify = true

	sql, err := parser.ParseString("select a from t where b between 1 and 2")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, opts, sql.Statements...))
	require.Equal(t, "SELECT a FROM t WHERE b BETWEEN 1 AND 2;", buf.String())
}

func TestErrNotEquivalent(t *testing.T) {
	wrapped := errors.Wrap(ErrNotEquivalent, "statement 1")
	require.ErrorIs(t, wrapped, ErrNotEquivalent)
	require.Equal(t, ErrNotEquivalent, errors.Cause(wrapped))
}

func TestFormatEmpty(t *testing.T) {
	out, err := FormatString(Defaults, "  -- nothing here\n")
	require.NoError(t, err)
	require.Empty(t, out)

	var buf bytes.Buffer
	require.NoError(t, FormatSQL(&buf, Defaults, nil))
	require.Zero(t, buf.Len())
}

func TestFormatParseError(t *testing.T) {
	_, err := FormatString(Defaults, "SELEC 1")
	require.Error(t, err)
}
