package verify

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// syntaxError is the SQLSTATE PostgreSQL reports for text its parser rejects.
const syntaxError = "42601"

// ErrSyntax is returned by Check when the server could not parse a statement.
var ErrSyntax = errors.New("syntax error")

type (
	// Verifier checks statements against a single server connection. It is not safe for
	// concurrent use.
	Verifier struct {
		conn *pgx.Conn
	}

	// Result is the outcome of checking one statement.
	Result struct {
		// Index is the position of the statement in the CheckAll input.
		Index int
		// SQL is the checked statement.
		SQL string
		// Err is nil when the server accepted the syntax.
		Err error
	}
)

// Connect opens a connection to the server at dsn.
func Connect(ctx context.Context, dsn string) (*Verifier, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to postgres")
	}

	return &Verifier{conn: conn}, nil
}

// Check parses sql on the server without executing it. A trailing semicolon is allowed.
func (v *Verifier) Check(ctx context.Context, sql string) error {
	sql = strings.TrimSuffix(strings.TrimSpace(sql), ";")

	_, err := v.conn.PgConn().Prepare(ctx, "", sql, nil)
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return errors.Wrap(err, "failed to send statement")
	}

	if pgErr.Code == syntaxError {
		return errors.Wrapf(ErrSyntax, "%s at position %d", pgErr.Message, pgErr.Position)
	}

	return nil
}

// CheckAll checks every statement in order. Checking stops early only when ctx is done or
// the connection fails; syntax errors are recorded in the results.
func (v *Verifier) CheckAll(ctx context.Context, stmts []string) ([]Result, error) {
	results := make([]Result, 0, len(stmts))
	for i, sql := range stmts {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		err := v.Check(ctx, sql)
		if err != nil && !errors.Is(err, ErrSyntax) {
			return results, err
		}

		results = append(results, Result{Index: i, SQL: sql, Err: err})
	}

	return results, nil
}

// Close closes the server connection.
func (v *Verifier) Close(ctx context.Context) error {
	return v.conn.Close(ctx)
}
