package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/pseudomuto/pgfmt/pkg/consts"
	"github.com/pseudomuto/pgfmt/pkg/format"
	"github.com/pseudomuto/pgfmt/pkg/renderer"
	"gopkg.in/yaml.v3"
)

type (
	// Format holds the layout settings.
	Format struct {
		// MaxLineLength is the column budget statements are laid out against
		MaxLineLength int `yaml:"max_line_length,omitempty" toml:"max_line_length"`

		// IndentSize is the number of columns per indent level
		IndentSize int `yaml:"indent_size,omitempty" toml:"indent_size"`

		// IndentStyle is either "spaces" or "tabs"
		IndentStyle renderer.IndentStyle `yaml:"indent_style,omitempty" toml:"indent_style"`

		// Verify checks that every formatted statement parses back into the same tree
		Verify bool `yaml:"verify,omitempty" toml:"verify"`

		// Parallelism bounds how many statements are formatted at once (0 = GOMAXPROCS)
		Parallelism int `yaml:"parallelism,omitempty" toml:"parallelism"`
	}

	// Config represents a pgfmt configuration file.
	Config struct {
		// Format contains the layout settings
		Format Format `yaml:"format" toml:"format"`

		// Exclude lists glob patterns, matched against slash separated paths, of files the
		// fmt and verify commands skip when walking directories
		Exclude []string `yaml:"exclude,omitempty" toml:"exclude"`
	}
)

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig parses a YAML configuration from r, fills in defaults and validates the result.
//
// Example:
//
//	cfg, err := config.LoadConfig(strings.NewReader(`
//	format:
//	  max_line_length: 100
//	  indent_style: tabs
//	`))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Println(cfg.Format.MaxLineLength) // 100
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return finish(&cfg)
}

// LoadTOML is LoadConfig for TOML input.
func LoadTOML(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return finish(&cfg)
}

// LoadConfigFile loads the configuration at path, choosing the decoder by file extension:
// .toml files are read as TOML and everything else as YAML.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("pgfmt.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return LoadTOML(f)
	}
	return LoadConfig(f)
}

// Find returns the configuration file in dir, preferring YAML over TOML. It returns an empty
// string when neither exists.
func Find(dir string) string {
	for _, name := range []string{consts.ConfigFile, consts.TOMLConfigFile} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// Options returns the formatter options described by the configuration.
func (c *Config) Options() format.Options {
	return format.Options{
		MaxLineLength: c.Format.MaxLineLength,
		IndentSize:    c.Format.IndentSize,
		IndentStyle:   c.Format.IndentStyle,
		Verify:        c.Format.Verify,
		Parallelism:   c.Format.Parallelism,
	}
}

// Excluded reports whether path matches one of the Exclude patterns.
func (c *Config) Excluded(path string) bool {
	path = filepath.ToSlash(path)
	for _, pattern := range c.Exclude {
		if ok, _ := filepath.Match(pattern, path); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(path)); ok {
			return true
		}
	}

	return false
}

// Validate checks that the configuration can be formatted with.
func (c *Config) Validate() error {
	if err := c.Options().RenderConfig().Validate(); err != nil {
		return err
	}

	if c.Format.Parallelism < 0 {
		return errors.Errorf("parallelism must not be negative, got %d", c.Format.Parallelism)
	}

	for _, pattern := range c.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return errors.Wrapf(err, "invalid exclude pattern %q", pattern)
		}
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Format.MaxLineLength == 0 {
		c.Format.MaxLineLength = consts.DefaultMaxLineLength
	}
	if c.Format.IndentSize == 0 {
		c.Format.IndentSize = consts.DefaultIndentSize
	}
}

func finish(cfg *Config) (*Config, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}
