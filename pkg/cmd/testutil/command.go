package testutil

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/urfave/cli/v3"
)

// RunCommand runs command as a standalone app with args and returns everything it wrote.
func RunCommand(t *testing.T, command *cli.Command, args ...string) (string, error) {
	t.Helper()
	return RunCommandWithInput(t, command, nil, args...)
}

// RunCommandWithInput is RunCommand with stdin read from input.
func RunCommandWithInput(t *testing.T, command *cli.Command, input io.Reader, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
		Reader: input,
		Writer: &buf,
	}

	// Prepend app name to args
	err := app.Run(context.Background(), append([]string{"test"}, args...))
	return buf.String(), err
}
