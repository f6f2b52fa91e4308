// Package cmd provides the CLI commands for pgfmt.
//
// Commands are constructed by fx and collected through the "commands" value group; Run wires
// them into a urfave/cli application that executes when the fx application starts.
//
// # Available Commands
//
//   - fmt: Format SQL files or directories (-w, -l, -d, --check)
//   - events: Print the layout events of each statement
//   - verify: Have a live PostgreSQL server parse the formatted statements
//
// # Global Options
//
//   - --config, -c: Config file (env PGFMT_CONFIG); defaults to ./pgfmt.yaml or ./pgfmt.toml
//   - --width: Maximum line length
//   - --indent: Columns per indent level
//   - --tabs: Indent with tabs
//
// # Example Usage
//
//	pgfmt fmt schema.sql                        # Print formatted SQL
//	pgfmt --width 100 fmt -w db/                # Rewrite a directory at 100 columns
//	pgfmt fmt -d db/                            # Show what would change
//	pgfmt events query.sql                      # Debug layout decisions
//	pgfmt verify --dsn postgres://localhost db/ # Syntax-check against a server
package cmd
