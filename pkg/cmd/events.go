package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/pgfmt/pkg/emitter"
	"github.com/urfave/cli/v3"
)

// events creates a command that prints the layout events of every statement in a file, one
// event per line with groups indented. It is meant for debugging layout decisions.
func events(s *Settings) *cli.Command {
	return &cli.Command{
		Name:      "events",
		Usage:     "Print the layout events of each statement",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path, err := requirePath(cmd)
			if err != nil {
				return err
			}

			_, sql, err := readSQL(cmd, path)
			if err != nil {
				return err
			}

			for i, stmt := range sql.Statements {
				if i > 0 {
					if _, err := fmt.Fprintln(cmd.Writer); err != nil {
						return errors.Wrap(err, "failed to write to output")
					}
				}

				if err := emitter.Dump(cmd.Writer, s.Formatter.Events(stmt)); err != nil {
					return errors.Wrapf(err, "failed to dump statement %d", i+1)
				}
			}

			return nil
		},
	}
}
