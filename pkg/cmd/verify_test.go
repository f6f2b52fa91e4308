package cmd

import (
	"os"
	"testing"

	"github.com/pseudomuto/pgfmt/pkg/cmd/testutil"
	"github.com/stretchr/testify/require"
)

func TestVerifyCommand_Errors(t *testing.T) {
	sqlFile := testutil.NewSQLDir(t).Write("test.sql", "select 1")

	tests := []struct {
		name string
		args []string
		err  string
	}{
		{"no path", []string{"--dsn", "postgres://localhost/db"}, "exactly one path argument is required"},
		{"no dsn", []string{sqlFile}, "dsn"},
		{"missing path", []string{"--dsn", "postgres://localhost/db", sqlFile + ".missing"}, "failed to access path"},
		{"invalid dsn", []string{"--dsn", "not a valid dsn", sqlFile}, "failed to connect to postgres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PGFMT_DSN", "")
			require.NoError(t, os.Unsetenv("PGFMT_DSN"))

			_, err := testutil.RunCommand(t, verifyCmd(testSettings()), tt.args...)
			testutil.RequireError(t, err, tt.err)
		})
	}
}
