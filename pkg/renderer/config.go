package renderer

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type (
	// IndentStyle selects the character used for indentation.
	IndentStyle uint8

	// RenderConfig controls the layout decisions of a Renderer.
	RenderConfig struct {
		// MaxLineLength is the column budget used when deciding whether a group fits flat.
		MaxLineLength int
		// IndentSize is the number of columns per indent level. With Tabs each level is a
		// single tab which counts as IndentSize columns.
		IndentSize  int
		IndentStyle IndentStyle
	}
)

const (
	Spaces IndentStyle = iota
	Tabs
)

// DefaultConfig returns the configuration used by the round-trip tests: 60 columns, two
// space indentation.
func DefaultConfig() RenderConfig {
	return RenderConfig{
		MaxLineLength: 60,
		IndentSize:    2,
		IndentStyle:   Spaces,
	}
}

// Validate checks that the configuration can be rendered with.
func (c RenderConfig) Validate() error {
	if c.MaxLineLength <= 0 {
		return errors.Errorf("max line length must be positive, got %d", c.MaxLineLength)
	}

	if c.IndentSize <= 0 {
		return errors.Errorf("indent size must be positive, got %d", c.IndentSize)
	}

	if c.IndentStyle != Spaces && c.IndentStyle != Tabs {
		return errors.Errorf("unknown indent style %d", c.IndentStyle)
	}

	return nil
}

func (s IndentStyle) String() string {
	switch s {
	case Spaces:
		return "spaces"
	case Tabs:
		return "tabs"
	default:
		return fmt.Sprintf("IndentStyle(%d)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s IndentStyle) MarshalText() ([]byte, error) {
	if s != Spaces && s != Tabs {
		return nil, errors.Errorf("unknown indent style %d", s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting "spaces" or "tabs" in any case.
// Both the YAML and TOML config decoders go through it.
func (s *IndentStyle) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "spaces", "space":
		*s = Spaces
	case "tabs", "tab":
		*s = Tabs
	default:
		return errors.Errorf("invalid indent style %q (expected spaces or tabs)", text)
	}
	return nil
}
