package format

import (
	"context"
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/pgfmt/pkg/compare"
	"github.com/pseudomuto/pgfmt/pkg/emitter"
	"github.com/pseudomuto/pgfmt/pkg/nodes"
	"github.com/pseudomuto/pgfmt/pkg/parser"
	"github.com/pseudomuto/pgfmt/pkg/renderer"
	"golang.org/x/sync/errgroup"
)

type (
	// Options controls formatting behavior.
	Options struct {
		// MaxLineLength is the column budget a group has to fit in to stay on one line.
		MaxLineLength int
		// IndentSize is the number of columns per indent level.
		IndentSize int
		// IndentStyle selects spaces or tabs for indentation.
		IndentStyle renderer.IndentStyle
		// Verify re-parses every formatted statement and fails with ErrNotEquivalent when the
		// result differs from the input.
		Verify bool
		// Parallelism bounds the number of statements formatted concurrently. Zero or less
		// means GOMAXPROCS.
		Parallelism int
	}

	// Formatter formats parsed statements with a fixed set of options. It holds no mutable
	// state and is safe for concurrent use.
	Formatter struct {
		opts Options
	}
)

// ErrNotEquivalent is returned when verification finds that formatted output does not parse
// back into the statement it was produced from.
var ErrNotEquivalent = errors.New("formatted statement is not equivalent to its input")

// Defaults are the standard formatting options: 80 columns and four space indentation.
var Defaults = Options{
	MaxLineLength: 80,
	IndentSize:    4,
	IndentStyle:   renderer.Spaces,
}

// RenderConfig returns the renderer configuration for these options.
func (o Options) RenderConfig() renderer.RenderConfig {
	return renderer.RenderConfig{
		MaxLineLength: o.MaxLineLength,
		IndentSize:    o.IndentSize,
		IndentStyle:   o.IndentStyle,
	}
}

// New returns a Formatter using opts.
func New(opts Options) *Formatter {
	return &Formatter{opts: opts}
}

// Options returns the options the formatter was created with.
func (f *Formatter) Options() Options {
	return f.opts
}

// Events returns the layout events for stmt without rendering them.
func (f *Formatter) Events(stmt *parser.Statement) []emitter.Event {
	return nodes.Emit(stmt)
}

// Statement formats a single statement. The result has no trailing newline and is empty for
// an empty statement.
func (f *Formatter) Statement(stmt *parser.Statement) (string, error) {
	events := nodes.Emit(stmt)
	if len(events) == 0 {
		return "", nil
	}

	out, err := renderer.RenderString(events, f.opts.RenderConfig())
	if err != nil {
		return "", err
	}

	if f.opts.Verify {
		if err := verify(stmt, out); err != nil {
			return "", err
		}
	}

	return out, nil
}

// Format writes the formatted statements to w, separated by a blank line.
func (f *Formatter) Format(w io.Writer, stmts ...*parser.Statement) error {
	return f.FormatContext(context.Background(), w, stmts...)
}

// FormatContext formats stmts concurrently and writes them to w in input order. Nothing is
// written when any statement fails.
func (f *Formatter) FormatContext(ctx context.Context, w io.Writer, stmts ...*parser.Statement) error {
	if len(stmts) == 0 {
		return nil
	}

	jobs := f.opts.Parallelism
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]string, len(stmts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(stmts)))

	for i, stmt := range stmts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			out, err := f.Statement(stmt)
			if err != nil {
				return errors.Wrapf(err, "failed to format statement %d", i+1)
			}

			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	formatted := make([]string, 0, len(results))
	for _, r := range results {
		if r != "" {
			formatted = append(formatted, r)
		}
	}

	_, err := io.WriteString(w, strings.Join(formatted, "\n\n"))
	return errors.Wrap(err, "failed to write formatted SQL")
}

// verify parses out and compares it with the statement it was rendered from.
func verify(stmt *parser.Statement, out string) error {
	parsed, err := parser.ParseString(out)
	if err != nil {
		return errors.Wrapf(ErrNotEquivalent, "output does not parse: %v\n%s", err, out)
	}

	if len(parsed.Statements) != 1 {
		return errors.Wrapf(ErrNotEquivalent, "output has %d statements\n%s", len(parsed.Statements), out)
	}

	if ok, diff := compare.Statement(stmt, parsed.Statements[0]); !ok {
		return errors.Wrapf(ErrNotEquivalent, "statement changed (-input +output):\n%s", diff)
	}

	return nil
}

// Format writes stmts to w using opts.
func Format(w io.Writer, opts Options, stmts ...*parser.Statement) error {
	return New(opts).Format(w, stmts...)
}

// FormatSQL writes every statement of sql to w using opts.
func FormatSQL(w io.Writer, opts Options, sql *parser.SQL) error {
	if sql == nil {
		return nil
	}
	return Format(w, opts, sql.Statements...)
}

// FormatString parses and formats sql.
//
// Example:
//
//	out, err := format.FormatString(format.Defaults, "select id from users where id=1")
//	// out == "SELECT id FROM users WHERE id = 1;"
func FormatString(opts Options, sql string) (string, error) {
	parsed, err := parser.ParseString(sql)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := FormatSQL(&sb, opts, parsed); err != nil {
		return "", err
	}
	return sb.String(), nil
}
