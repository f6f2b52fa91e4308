package cmd

import (
	"strings"
	"testing"

	"github.com/pseudomuto/pgfmt/pkg/cmd/testutil"
	"github.com/stretchr/testify/require"
)

func TestEventsCommand(t *testing.T) {
	sqlFile := testutil.NewSQLDir(t).Write("test.sql", "select 1; select 1")

	dump := strings.Join([]string{
		"GroupStart SelectStmt",
		"  GroupStart TargetList",
		`    Token Keyword "SELECT"`,
		"    IndentStart",
		"    Line SoftOrSpace",
		"    GroupStart ResTarget",
		"      GroupStart AConst",
		`        Token Raw "1"`,
		"      GroupEnd",
		"    GroupEnd",
		"    IndentEnd",
		"  GroupEnd",
		`  Token Punct ";"`,
		"GroupEnd",
		"",
	}, "\n")

	out, err := testutil.RunCommand(t, events(testSettings()), sqlFile)
	require.NoError(t, err)
	require.Equal(t, dump+"\n"+dump, out)
}

func TestEventsCommand_Errors(t *testing.T) {
	_, err := testutil.RunCommand(t, events(testSettings()))
	testutil.RequireError(t, err, "exactly one path argument is required")

	sqlFile := testutil.NewSQLDir(t).Write("bad.sql", "SELEC 1")
	_, err = testutil.RunCommand(t, events(testSettings()), sqlFile)
	testutil.RequireError(t, err, "failed to parse SQL in file")
}
