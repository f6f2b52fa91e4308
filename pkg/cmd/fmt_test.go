package cmd

import (
	"strings"
	"testing"

	"github.com/pseudomuto/pgfmt/pkg/cmd/testutil"
	"github.com/pseudomuto/pgfmt/pkg/consts"
	"github.com/pseudomuto/pgfmt/pkg/format"
	"github.com/stretchr/testify/require"
)

const (
	unformattedSQL = "select id,name from users where id=1;select 2"
	formattedSQL   = "SELECT id, name FROM users WHERE id = 1;\n\nSELECT 2;\n"
)

func TestFmtCommand_RequiresPath(t *testing.T) {
	_, err := testutil.RunCommand(t, fmtCmd(testSettings()))
	testutil.RequireError(t, err, "exactly one path argument is required")
}

func TestFmtCommand_SingleFile(t *testing.T) {
	sqlFile := testutil.NewSQLDir(t).Write("test.sql", unformattedSQL)

	out, err := testutil.RunCommand(t, fmtCmd(testSettings()), sqlFile)
	require.NoError(t, err)
	require.Equal(t, formattedSQL, out)

	// stdout mode never touches the file
	testutil.RequireFileContent(t, sqlFile, unformattedSQL)
}

func TestFmtCommand_Width(t *testing.T) {
	s := testSettings()
	s.Config.Format.MaxLineLength = 25
	s.Config.Format.IndentSize = 2
	s.Formatter = format.New(s.Config.Options())

	sqlFile := testutil.NewSQLDir(t).Write("test.sql", "SELECT id, name FROM users WHERE id = 1 AND name = 'bob'")

	out, err := testutil.RunCommand(t, fmtCmd(s), sqlFile)
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"SELECT id, name",
		"FROM users",
		"WHERE",
		"  id = 1",
		"  AND name = 'bob';",
		"",
	}, "\n"), out)
}

func TestFmtCommand_SingleFileWriteBack(t *testing.T) {
	sqlFile := testutil.NewSQLDir(t).Write("test.sql", unformattedSQL)

	out, err := testutil.RunCommand(t, fmtCmd(testSettings()), "-w", sqlFile)
	require.NoError(t, err)
	require.Empty(t, out)

	testutil.RequireFileContent(t, sqlFile, formattedSQL)
	testutil.RequireFilePermissions(t, sqlFile, consts.ModeFile)

	// formatting is idempotent, so the file now passes --check
	out, err = testutil.RunCommand(t, fmtCmd(testSettings()), "--check", sqlFile)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestFmtCommand_Directory(t *testing.T) {
	dir := testutil.NewSQLDir(t).WithFiles(map[string]string{
		"schema1.sql":     "create table db1 (id int)",
		"schema2.sql":     "create table db2 (id int)",
		"gen/schema3.sql": "create table db3 (id int)",
	})

	s := testSettings()
	s.Config.Exclude = []string{"gen/*"}

	out, err := testutil.RunCommand(t, fmtCmd(s), dir.Dir)
	require.NoError(t, err)
	require.Equal(t, "CREATE TABLE db1 (id INT);\nCREATE TABLE db2 (id INT);\n", out)
}

func TestFmtCommand_DirectoryWriteBack(t *testing.T) {
	dir := testutil.NewSQLDir(t).WithFiles(map[string]string{
		"schema1.sql": "create table db1 (id int)",
		"schema2.sql": "CREATE TABLE db2 (id INT);\n",
	})

	out, err := testutil.RunCommand(t, fmtCmd(testSettings()), "-w", "-l", dir.Dir)
	require.NoError(t, err)
	require.Equal(t, dir.Path("schema1.sql")+"\n", out)

	testutil.RequireFileContent(t, dir.Path("schema1.sql"), "CREATE TABLE db1 (id INT);\n")
	testutil.RequireFileContent(t, dir.Path("schema2.sql"), "CREATE TABLE db2 (id INT);\n")
}

func TestFmtCommand_Check(t *testing.T) {
	dir := testutil.NewSQLDir(t).WithFiles(map[string]string{
		"bad.sql":  "select 1",
		"good.sql": "SELECT 1;\n",
	})

	out, err := testutil.RunCommand(t, fmtCmd(testSettings()), "--check", dir.Dir)
	testutil.RequireError(t, err, "1 file(s) not formatted")
	require.Equal(t, dir.Path("bad.sql")+"\n", out)

	testutil.RequireFileContent(t, dir.Path("bad.sql"), "select 1")
}

func TestFmtCommand_Diff(t *testing.T) {
	sqlFile := testutil.NewSQLDir(t).Write("test.sql", "select 1\n")

	out, err := testutil.RunCommand(t, fmtCmd(testSettings()), "-d", "--color", "never", sqlFile)
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"--- " + sqlFile + ".orig",
		"+++ " + sqlFile,
		"@@ -1 +1 @@",
		"-select 1",
		"+SELECT 1;",
		"",
	}, "\n"), out)

	out, err = testutil.RunCommand(t, fmtCmd(testSettings()), "-d", "--color", "always", sqlFile)
	require.NoError(t, err)
	require.Contains(t, out, "\x1b[")
	require.Contains(t, out, "SELECT 1;")

	_, err = testutil.RunCommand(t, fmtCmd(testSettings()), "-d", "--color", "sometimes", sqlFile)
	testutil.RequireError(t, err, "invalid color mode")
}

func TestFmtCommand_Stdin(t *testing.T) {
	out, err := testutil.RunCommandWithInput(t, fmtCmd(testSettings()), strings.NewReader(unformattedSQL), "-")
	require.NoError(t, err)
	require.Equal(t, formattedSQL, out)

	_, err = testutil.RunCommandWithInput(t, fmtCmd(testSettings()), strings.NewReader(unformattedSQL), "-w", "-")
	testutil.RequireError(t, err, "cannot use -w with standard input")
}

func TestFmtCommand_Errors(t *testing.T) {
	dir := testutil.NewSQLDir(t)

	t.Run("parse error", func(t *testing.T) {
		_, err := testutil.RunCommand(t, fmtCmd(testSettings()), dir.Write("bad.sql", "SELEC 1"))
		testutil.RequireError(t, err, "failed to parse SQL in file")
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := testutil.RunCommand(t, fmtCmd(testSettings()), dir.Path("missing.sql"))
		testutil.RequireError(t, err, "failed to access path")
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := testutil.RunCommand(t, fmtCmd(testSettings()), t.TempDir())
		testutil.RequireError(t, err, "no SQL files found in directory")
	})
}

func TestUseColor(t *testing.T) {
	var buf strings.Builder

	tests := []struct {
		mode string
		want bool
		err  bool
	}{
		{"always", true, false},
		{"ALWAYS", true, false},
		{"never", false, false},
		{"auto", false, false},
		{"", false, false},
		{"rainbow", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			got, err := useColor(tt.mode, &buf)
			if tt.err {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
