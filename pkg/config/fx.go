package config

import (
	"github.com/pseudomuto/pgfmt/pkg/format"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Loads pgfmt.yaml (or pgfmt.toml) from the working directory. The defaults are used when
	// neither exists so formatting works without any setup.
	func() (*Config, error) {
		path := Find(".")
		if path == "" {
			return Default(), nil
		}

		return LoadConfigFile(path)
	},
	func(c *Config) *format.Formatter {
		return format.New(c.Options())
	},
))
