package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/pseudomuto/pgfmt/pkg/consts"
	"github.com/pseudomuto/pgfmt/pkg/format"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

type fmtOptions struct {
	write bool
	list  bool
	diff  bool
	check bool
	color bool
}

// quiet reports whether formatted SQL should not be written to the output.
func (o fmtOptions) quiet() bool {
	return o.write || o.list || o.diff || o.check
}

var (
	diffHeaderColor = color.New(color.Bold)
	diffHunkColor   = color.New(color.FgCyan)
	diffAddColor    = color.New(color.FgGreen)
	diffDelColor    = color.New(color.FgRed)
)

// fmtCmd creates a CLI command for formatting SQL files, working the way gofmt does.
//
// Path handling:
//   - File paths: Format the specified SQL file
//   - Directory paths: Recursively find and format all .sql files not excluded by the config
//   - "-": Format standard input
//
// Flags:
//   - -w: Write formatted results back to source files instead of stdout
//   - -l: List files whose formatting differs
//   - -d: Print a unified diff of the changes
//   - --check: List unformatted files and fail when there are any
//
// Examples:
//
//	# Format single file to stdout
//	pgfmt fmt schema.sql
//
//	# Format all SQL files in a directory tree in-place
//	pgfmt fmt -w db/
//
//	# Fail in CI when files are not formatted
//	pgfmt fmt --check db/
func fmtCmd(s *Settings) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "List files whose formatting differs",
			},
			&cli.BoolFlag{
				Name:    "diff",
				Aliases: []string{"d"},
				Usage:   "Display diffs instead of rewriting files",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Exit with an error when any file is not formatted",
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "Colorize diffs (auto, always or never)",
				Value: "auto",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path, err := requirePath(cmd)
			if err != nil {
				return err
			}

			colored, err := useColor(cmd.String("color"), cmd.Writer)
			if err != nil {
				return err
			}

			opts := fmtOptions{
				write: cmd.Bool("write"),
				list:  cmd.Bool("list"),
				diff:  cmd.Bool("diff"),
				check: cmd.Bool("check"),
				color: colored,
			}

			if path == stdinPath {
				if opts.write {
					return errors.New("cannot use -w with standard input")
				}
				_, err := formatFile(ctx, cmd, s.Formatter, path, opts)
				return err
			}

			files, err := sqlFiles(path, s.Config)
			if err != nil {
				return err
			}

			unformatted := 0
			for _, file := range files {
				changed, err := formatFile(ctx, cmd, s.Formatter, file, opts)
				if err != nil {
					return errors.Wrapf(err, "failed to format file: %s", file)
				}

				if changed {
					unformatted++
				}
			}

			if opts.check && unformatted > 0 {
				return errors.Errorf("%d file(s) not formatted", unformatted)
			}

			return nil
		},
	}
}

// formatFile formats a single SQL file and handles the output according to opts. It reports
// whether the formatted content differs from the file.
func formatFile(ctx context.Context, cmd *cli.Command, f *format.Formatter, path string, opts fmtOptions) (bool, error) {
	content, sql, err := readSQL(cmd, path)
	if err != nil {
		return false, err
	}

	var buf strings.Builder
	if err := f.FormatContext(ctx, &buf, sql.Statements...); err != nil {
		return false, errors.Wrapf(err, "failed to format SQL in file: %s", path)
	}

	formatted := buf.String()
	if formatted != "" {
		formatted += "\n"
	}

	changed := formatted != content
	w := cmd.Writer

	if changed && (opts.list || opts.check) {
		if _, err := fmt.Fprintln(w, path); err != nil {
			return false, errors.Wrap(err, "failed to write file name to output")
		}
	}

	if changed && opts.diff {
		if err := writeDiff(w, path, content, formatted, opts.color); err != nil {
			return false, err
		}
	}

	if changed && opts.write {
		if err := os.WriteFile(path, []byte(formatted), consts.ModeFile); err != nil {
			return false, errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}
	}

	if !opts.quiet() {
		if _, err := fmt.Fprint(w, formatted); err != nil {
			return false, errors.Wrap(err, "failed to write formatted content to output")
		}
	}

	return changed, nil
}

// writeDiff writes a unified diff between the original and formatted content of path.
func writeDiff(w io.Writer, path, before, after string, colored bool) error {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(before),
		B:        splitLines(after),
		FromFile: path + ".orig",
		ToFile:   path,
		Context:  3,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to diff file: %s", path)
	}

	if !colored {
		_, err = io.WriteString(w, diff)
		return errors.Wrap(err, "failed to write diff to output")
	}

	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}

		c := diffColor(line)
		if c == nil {
			_, err = io.WriteString(w, line)
		} else {
			_, err = c.Fprintln(w, strings.TrimSuffix(line, "\n"))
		}
		if err != nil {
			return errors.Wrap(err, "failed to write diff to output")
		}
	}

	return nil
}

// splitLines splits s into newline terminated lines without the empty line difflib.SplitLines
// adds after a final newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return difflib.SplitLines(strings.TrimSuffix(s, "\n"))
}

func diffColor(line string) *color.Color {
	var c *color.Color
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		c = diffHeaderColor
	case strings.HasPrefix(line, "@@"):
		c = diffHunkColor
	case strings.HasPrefix(line, "+"):
		c = diffAddColor
	case strings.HasPrefix(line, "-"):
		c = diffDelColor
	default:
		return nil
	}

	// The output may not be the process's stdout, so color's own terminal detection does not
	// apply.
	c.EnableColor()
	return c
}

// useColor resolves the --color flag for output written to w.
func useColor(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(mode) {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		return isTerminal(w), nil
	default:
		return false, errors.Errorf("invalid color mode %q (expected auto, always or never)", mode)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
