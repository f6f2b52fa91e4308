package verify_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/pgfmt/pkg/verify"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	dsnOnce sync.Once
	dsn     string
	dsnErr  error
)

// postgresDSN starts a single postgres container shared by every test in the package.
func postgresDSN(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	dsnOnce.Do(func() {
		ctx := context.Background()

		var container *postgres.PostgresContainer
		container, dsnErr = postgres.Run(ctx,
			"docker.io/postgres:16-alpine",
			postgres.WithDatabase("pgfmt_test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second),
			),
		)
		if dsnErr != nil {
			return
		}

		dsn, dsnErr = container.ConnectionString(ctx, "sslmode=disable")
	})

	require.NoError(t, dsnErr)
	return dsn
}

func connect(t *testing.T) *Verifier {
	t.Helper()

	ctx := context.Background()
	v, err := Connect(ctx, postgresDSN(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = v.Close(ctx) })

	return v
}

func TestConnectInvalidDSN(t *testing.T) {
	v, err := Connect(context.Background(), "not a valid dsn")
	require.Error(t, err)
	require.Nil(t, v)
	require.Contains(t, err.Error(), "failed to connect to postgres")
}

func TestCheck(t *testing.T) {
	v := connect(t)

	tests := []struct {
		name   string
		sql    string
		syntax bool
	}{
		{"select", "SELECT 1;", false},
		{"unknown table", "SELECT id FROM missing_table WHERE id = 1;", false},
		{"ddl", "CREATE TABLE t (id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY);", false},
		{"parameter", "SELECT $1;", false},
		{"misspelled keyword", "SELEC 1;", true},
		{"dangling operator", "SELECT 1 +;", true},
		{"missing paren", "SELECT count(* FROM t;", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Check(context.Background(), tt.sql)
			if !tt.syntax {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			require.True(t, errors.Is(err, ErrSyntax))
		})
	}
}

func TestCheckAll(t *testing.T) {
	v := connect(t)

	results, err := v.CheckAll(context.Background(), []string{
		"SELECT 1;",
		"SELECT FROM WHERE;",
		"UPDATE t SET a = 1;",
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.Equal(t, 1, results[1].Index)
	require.NoError(t, results[0].Err)
	require.ErrorIs(t, results[1].Err, ErrSyntax)
	require.NoError(t, results[2].Err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err = v.CheckAll(ctx, []string{"SELECT 1;"})
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, results)
}
