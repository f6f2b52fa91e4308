package consts

import "os"

const (
	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the YAML configuration file looked up in the working directory
	ConfigFile = "pgfmt.yaml"

	// TOMLConfigFile is the TOML alternative to ConfigFile
	TOMLConfigFile = "pgfmt.toml"

	// DefaultMaxLineLength is the line width used when none is configured
	DefaultMaxLineLength = 80

	// DefaultIndentSize is the number of columns per indent level when none is configured
	DefaultIndentSize = 4

	// SQLExt is the extension of the files the fmt and verify commands pick up in directories
	SQLExt = ".sql"
)
