package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/pgfmt/pkg/config"
	"github.com/pseudomuto/pgfmt/pkg/format"
	"github.com/pseudomuto/pgfmt/pkg/renderer"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Settings   *Settings
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}

	// Settings is the configuration shared by all commands. It starts out as the config found
	// in the working directory and is replaced by the root command once the global flags have
	// been parsed.
	Settings struct {
		Config    *config.Config
		Formatter *format.Formatter
	}
)

func newSettings(cfg *config.Config, f *format.Formatter) *Settings {
	return &Settings{Config: cfg, Formatter: f}
}

// Run creates the pgfmt CLI application and executes it when the fx application starts.
//
// Global Flags:
//   - --config, -c: config file to use instead of ./pgfmt.yaml or ./pgfmt.toml
//   - --width: maximum line length
//   - --indent: columns per indent level
//   - --tabs: indent with tabs
//
// The flags override the matching values of the config file. Failures are logged and the
// process exits with status 1.
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := newApp(p.Settings, p.Version.Version, p.Commands)

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

func newApp(s *Settings, version string, commands []*cli.Command) *cli.Command {
	return &cli.Command{
		Name:  "pgfmt",
		Usage: "A formatter for PostgreSQL SQL",
		Description: `pgfmt parses PostgreSQL statements and prints them back with upper case
keywords, normalized spelling and line breaks chosen to fit a maximum width.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the pgfmt config file",
				Sources: cli.EnvVars("PGFMT_CONFIG"),
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "maximum line length",
			},
			&cli.IntFlag{
				Name:  "indent",
				Usage: "columns per indent level",
			},
			&cli.BoolFlag{
				Name:  "tabs",
				Usage: "indent with tabs instead of spaces",
			},
		},
		Before:   s.configure,
		Commands: commands,
	}
}

// configure loads the config file named by --config and applies the layout flags on top.
func (s *Settings) configure(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg := config.Default()
	if s.Config != nil {
		cfg = s.Config
	}

	if cmd.IsSet("config") {
		loaded, err := config.LoadConfigFile(cmd.String("config"))
		if err != nil {
			return ctx, err
		}
		cfg = loaded
	}

	// Copy so flag overrides never leak into the shared config.
	c := *cfg
	if cmd.IsSet("width") {
		c.Format.MaxLineLength = cmd.Int("width")
	}
	if cmd.IsSet("indent") {
		c.Format.IndentSize = cmd.Int("indent")
	}
	if cmd.Bool("tabs") {
		c.Format.IndentStyle = renderer.Tabs
	}

	if err := c.Validate(); err != nil {
		return ctx, errors.Wrap(err, "invalid formatting options")
	}

	s.Config = &c
	s.Formatter = format.New(c.Options())
	return ctx, nil
}
