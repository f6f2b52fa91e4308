package renderer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/pseudomuto/pgfmt/pkg/emitter"
	. "github.com/pseudomuto/pgfmt/pkg/renderer"
	"github.com/pseudomuto/pgfmt/pkg/token"
	"github.com/stretchr/testify/require"
)

// build is a tiny DSL for event streams:
//
//	"{" group start, "}" group end, ">" indent start, "<" indent end,
//	"_" space, "~" SoftOrSpace line, "^" Soft line, anything else is a raw token.
func build(parts ...string) []emitter.Event {
	e := emitter.New()
	for _, p := range parts {
		switch p {
		case "{":
			e.GroupStart(emitter.ParenExpr)
		case "}":
			e.GroupEnd()
		case ">":
			e.IndentStart()
		case "<":
			e.IndentEnd()
		case "_":
			e.Space()
		case "~":
			e.Line(emitter.SoftOrSpace)
		case "^":
			e.Line(emitter.Soft)
		default:
			e.Token(token.Raw(p))
		}
	}
	return e.Events()
}

func render(t *testing.T, events []emitter.Event, width int) string {
	t.Helper()
	out, err := RenderString(events, RenderConfig{MaxLineLength: width, IndentSize: 2})
	require.NoError(t, err)
	return out
}

func TestRenderFlat(t *testing.T) {
	events := build("{", "SELECT", ">", "~", "1", "<", ";", "}")
	require.Equal(t, "SELECT 1;", render(t, events, 60))
	require.Equal(t, "SELECT 1;", render(t, events, 9))
}

func TestRenderBroken(t *testing.T) {
	events := build("{", "SELECT", ">", "~", "aaaaaaaa", ",", "~", "bbbbbbbb", "<", "}")
	require.Equal(t, "SELECT\n  aaaaaaaa,\n  bbbbbbbb", render(t, events, 10))
}

func TestRenderGroupIsAtomic(t *testing.T) {
	// the first two items would fit on the first line, but a group never partially breaks
	events := build("{", "a", "~", "b", "~", "cccccccccc", "}")
	require.Equal(t, "a\nb\ncccccccccc", render(t, events, 10))
}

func TestRenderNestedGroupsDecideIndependently(t *testing.T) {
	events := build(
		"{", "SELECT", ">", "~",
		"{", "f", "(", ">", "^", "aaaa", ",", "~", "bbbb", "<", "^", ")", "}",
		",", "~", "cccccccccccc", "<", "}",
	)

	require.Equal(t, "SELECT f(aaaa, bbbb), cccccccccccc", render(t, events, 40))
	require.Equal(t, "SELECT\n  f(aaaa, bbbb),\n  cccccccccccc", render(t, events, 20))
	require.Equal(t, "SELECT\n  f(\n    aaaa,\n    bbbb\n  ),\n  cccccccccccc", render(t, events, 12))
}

func TestRenderSoftLines(t *testing.T) {
	events := build("{", "f", "(", ">", "^", "a", ",", "~", "b", "<", "^", ")", "}")
	require.Equal(t, "f(a, b)", render(t, events, 7))
	require.Equal(t, "f(\n  a,\n  b\n)", render(t, events, 6))
}

func TestRenderNoTrailingWhitespace(t *testing.T) {
	events := build("{", "a", "_", "~", "_", "b", "_", "~", "}", "_")
	out := render(t, events, 1)
	require.Equal(t, "a\n b\n", out)

	for _, line := range strings.Split(out, "\n") {
		require.Equal(t, strings.TrimRight(line, " \t"), line)
	}
}

func TestRenderIndentedBlankLine(t *testing.T) {
	events := build("{", "a", ">", "~", "~", "b", "<", "}")
	require.Equal(t, "a\n\n  b", render(t, events, 1))
}

func TestRenderLinesOutsideGroupsBreak(t *testing.T) {
	require.Equal(t, "a\nb", render(t, build("a", "~", "b"), 60))
}

func TestRenderMultilineTokenNeverFitsFlat(t *testing.T) {
	events := build("{", "DO", "~", "$$x\ny$$", ";", "}")
	require.Equal(t, "DO\n$$x\ny$$;", render(t, events, 80))
	require.Equal(t, -1, FlatWidth(events))
}

func TestRenderUsesDisplayWidth(t *testing.T) {
	events := build("{", "a", "~", "日本語", "}")
	require.Equal(t, 8, FlatWidth(events))
	require.Equal(t, "a 日本語", render(t, events, 8))
	require.Equal(t, "a\n日本語", render(t, events, 7))
}

func TestRenderOverlongTokenIsNotTruncated(t *testing.T) {
	events := build("{", "SELECT", ">", "~", "a_very_long_identifier", "<", "}")
	require.Equal(t, "SELECT\n  a_very_long_identifier", render(t, events, 10))
}

func TestRenderTabs(t *testing.T) {
	cfg := RenderConfig{MaxLineLength: 12, IndentSize: 4, IndentStyle: Tabs}
	events := build(
		"{", "SELECT", ">", "~",
		"{", "aa", "~", "bbbb", "}", ",", "~",
		"{", "aaaa", "~", "bbbb", "}", "<", "}",
	)

	// each tab counts as four columns: "aa bbbb," fits in 12, "aaaa bbbb" does not
	out, err := RenderString(events, cfg)
	require.NoError(t, err)
	require.Equal(t, "SELECT\n\taa bbbb,\n\taaaa\n\tbbbb", out)
}

func TestRenderCountsTextUpToNextBreak(t *testing.T) {
	events := build("{", "{", "aaaa", "~", "bbbb", "}", ";", "}")
	require.Equal(t, "aaaa bbbb;", render(t, events, 10))
	require.Equal(t, "aaaa\nbbbb;", render(t, events, 9))

	// a break right after the group ends the measurement
	events = build("{", "{", "aaaa", "~", "bbbb", "}", "~", "cc", "}")
	require.Equal(t, "aaaa bbbb\ncc", render(t, events, 9))

	// a group opened on the same line is part of that text up to its first line
	events = build("{", "{", "aaaa", "~", "bbbb", "}", "{", "cc", "~", "dd", "}", "~", "ee", "}")
	require.Equal(t, "aaaa\nbbbbcc dd\nee", render(t, events, 10))
	require.Equal(t, "aaaa bbbbcc dd ee", render(t, events, 17))
}

func TestRenderOverlongLinesAreSingleRuns(t *testing.T) {
	// only the unbreakable run may exceed the width
	events := build("{", "{", "a", "~", "b", "}", "{", "cccccccccccc", "~", "d", "}", "}")
	require.Equal(t, "a\nbcccccccccccc\nd", render(t, events, 6))
}

func TestFlatWidth(t *testing.T) {
	require.Equal(t, 9, FlatWidth(build("{", "SELECT", ">", "~", "1", "<", ";", "}")))
	require.Equal(t, 7, FlatWidth(build("f", "(", "^", "a", ",", "~", "b", "^", ")")))
	require.Equal(t, 0, FlatWidth(nil))
}

func TestRenderContractViolations(t *testing.T) {
	tests := []struct {
		name     string
		events   []emitter.Event
		expected string
	}{
		{
			name:     "group end without start",
			events:   build("}"),
			expected: "malformed event stream at event 0: GroupEnd without a matching GroupStart",
		},
		{
			name:     "unterminated group",
			events:   build("a", "{", "b"),
			expected: "malformed event stream at event 1: GroupStart without a matching GroupEnd",
		},
		{
			name:     "unterminated nested group",
			events:   build("{", "{", "a", "}"),
			expected: "malformed event stream at event 0: GroupStart without a matching GroupEnd",
		},
		{
			name:     "indent end without start",
			events:   build("a", "<"),
			expected: "malformed event stream at event 1: IndentEnd without a matching IndentStart",
		},
		{
			name:     "indent crosses group end",
			events:   build("{", ">", "}"),
			expected: "malformed event stream at event 2: indent region crosses the end of its group",
		},
		{
			name:     "indent crosses group start",
			events:   build(">", "{", "<", "}"),
			expected: "malformed event stream at event 2: indent region crosses the start of its group",
		},
		{
			name:     "unterminated indent",
			events:   build(">", "a"),
			expected: "malformed event stream at event 2: 1 indent region(s) never closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.PanicsWithError(t, tt.expected, func() {
				_, _ = RenderString(tt.events, DefaultConfig())
			})
		})
	}
}

func TestRenderWriteError(t *testing.T) {
	err := New(failingWriter{}, DefaultConfig()).Render(build("{", "SELECT", "}"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to write output")
	require.Contains(t, err.Error(), "disk full")
}

func TestRenderInvalidConfig(t *testing.T) {
	_, err := RenderString(build("a"), RenderConfig{MaxLineLength: 0, IndentSize: 2})
	require.EqualError(t, err, "invalid render config: max line length must be positive, got 0")

	_, err = RenderString(build("a"), RenderConfig{MaxLineLength: 10, IndentSize: -1})
	require.EqualError(t, err, "invalid render config: indent size must be positive, got -1")
}

func TestRenderIsDeterministic(t *testing.T) {
	events := build(
		"{", "SELECT", ">", "~",
		"{", "f", "(", ">", "^", "aaaa", ",", "~", "bbbb", "<", "^", ")", "}",
		",", "~", "cccccccccccc", "<", "}",
	)

	r := New(&strings.Builder{}, DefaultConfig())
	first := render(t, events, 20)
	for range 5 {
		require.NoError(t, r.Render(events))
		require.Equal(t, first, render(t, events, 20))
	}
}

func TestIndentStyleText(t *testing.T) {
	var s IndentStyle
	require.NoError(t, s.UnmarshalText([]byte("Tabs")))
	require.Equal(t, Tabs, s)
	require.NoError(t, s.UnmarshalText([]byte("spaces")))
	require.Equal(t, Spaces, s)
	require.Error(t, s.UnmarshalText([]byte("wat")))

	text, err := Tabs.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "tabs", string(text))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }
