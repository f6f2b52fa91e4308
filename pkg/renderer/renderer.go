package renderer

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/pseudomuto/pgfmt/pkg/emitter"
)

type (
	// ContractViolation is the panic value used when the event stream is malformed. It always
	// indicates a bug in the code that produced the events, never a property of the SQL.
	ContractViolation struct {
		Index  int
		Reason string
	}

	// Renderer lays out event streams and writes the result to its sink.
	Renderer struct {
		cfg RenderConfig
		out *bufio.Writer

		// column is the display column the next token would start at, pending whitespace
		// included.
		column int
		// pendingIndent and pendingSpaces hold whitespace that has been accounted for in
		// column but not written yet. It's dropped when a newline follows, so lines never
		// end in whitespace.
		pendingIndent int
		pendingSpaces int

		groups  []frame
		indents []int
	}

	frame struct {
		flat    bool
		indents int
	}
)

const unfit = math.MaxInt

func (c *ContractViolation) Error() string {
	return fmt.Sprintf("malformed event stream at event %d: %s", c.Index, c.Reason)
}

// New returns a Renderer that writes to w.
func New(w io.Writer, cfg RenderConfig) *Renderer {
	return &Renderer{cfg: cfg, out: bufio.NewWriter(w)}
}

// RenderString renders events into a string.
func RenderString(events []emitter.Event, cfg RenderConfig) (string, error) {
	var sb strings.Builder
	if err := New(&sb, cfg).Render(events); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// FlatWidth returns the width events would occupy on a single line, or -1 when they can't be
// put on one line because a token spans several lines.
func FlatWidth(events []emitter.Event) int {
	width := 0
	for _, ev := range events {
		w := eventWidth(ev)
		if w == unfit {
			return -1
		}
		width += w
	}
	return width
}

// Render lays out a complete document starting at column zero.
//
// Each group is measured when it's reached: if everything up to its matching GroupEnd, plus
// whatever text follows it before the next Line event, fits in the remaining width the whole
// group is rendered flat. Otherwise every Line directly inside it becomes a newline at the current
// indentation while nested groups make their own decision. Groups inside a flat group are flat
// too. Lines outside of any group always break.
//
// Write errors are returned. A malformed stream panics with a *ContractViolation.
func (r *Renderer) Render(events []emitter.Event) error {
	if err := r.cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid render config")
	}

	r.reset()

	for i, ev := range events {
		var err error

		switch ev.Kind {
		case emitter.GroupStart:
			r.startGroup(events, i)
		case emitter.GroupEnd:
			r.endGroup(i)
		case emitter.TokenEvent:
			err = r.writeToken(ev.Token.Text())
		case emitter.Space:
			r.pendingSpaces++
			r.column++
		case emitter.Line:
			if r.flat() {
				text := ev.Line.FlatText()
				r.pendingSpaces += len(text)
				r.column += len(text)
			} else {
				err = r.newline()
			}
		case emitter.IndentStart:
			r.indents = append(r.indents, len(r.groups))
		case emitter.IndentEnd:
			r.endIndent(i)
		default:
			violation(i, "unknown event kind %s", ev.Kind)
		}

		if err != nil {
			return err
		}
	}

	if len(r.groups) > 0 {
		violation(len(events), "%d group(s) never closed", len(r.groups))
	}

	if len(r.indents) > 0 {
		violation(len(events), "%d indent region(s) never closed", len(r.indents))
	}

	return errors.Wrap(r.out.Flush(), "failed to write output")
}

func (r *Renderer) reset() {
	r.column = 0
	r.pendingIndent = 0
	r.pendingSpaces = 0
	r.groups = r.groups[:0]
	r.indents = r.indents[:0]
}

func (r *Renderer) flat() bool {
	return len(r.groups) > 0 && r.groups[len(r.groups)-1].flat
}

func (r *Renderer) startGroup(events []emitter.Event, i int) {
	flat := r.flat()
	if !flat {
		flat = r.fits(events, i+1)
	}

	r.groups = append(r.groups, frame{flat: flat, indents: len(r.indents)})
}

func (r *Renderer) endGroup(i int) {
	if len(r.groups) == 0 {
		violation(i, "GroupEnd without a matching GroupStart")
	}

	top := r.groups[len(r.groups)-1]
	if len(r.indents) != top.indents {
		violation(i, "indent region crosses the end of its group")
	}

	r.groups = r.groups[:len(r.groups)-1]
}

func (r *Renderer) endIndent(i int) {
	if len(r.indents) == 0 {
		violation(i, "IndentEnd without a matching IndentStart")
	}

	if r.indents[len(r.indents)-1] != len(r.groups) {
		violation(i, "indent region crosses the start of its group")
	}

	r.indents = r.indents[:len(r.indents)-1]
}

// fits measures the group whose contents start at events[start], stopping as soon as the
// running width no longer fits on the current line. Text that follows the group up to the next
// Line at any depth has to fit as well, including the opening text of any groups after it,
// since none of that can move to another line.
func (r *Renderer) fits(events []emitter.Event, start int) bool {
	budget := r.cfg.MaxLineLength - r.column
	if budget < 0 {
		return false
	}

	width, depth, closed := 0, 1, false
	for i := start; i < len(events); i++ {
		ev := events[i]

		switch ev.Kind {
		case emitter.GroupStart:
			depth++
		case emitter.GroupEnd:
			depth--
			if depth == 0 {
				closed = true
			}
		case emitter.IndentStart, emitter.IndentEnd:
		case emitter.Line:
			if closed {
				return true
			}
			fallthrough
		default:
			w := eventWidth(ev)
			if w == unfit || width+w > budget {
				return false
			}
			width += w
		}
	}

	if !closed {
		violation(start-1, "GroupStart without a matching GroupEnd")
	}
	return true
}

func (r *Renderer) writeToken(text string) error {
	if text == "" {
		return nil
	}

	if err := r.flushWhitespace(); err != nil {
		return err
	}

	if _, err := r.out.WriteString(text); err != nil {
		return errors.Wrap(err, "failed to write output")
	}

	if nl := strings.LastIndexByte(text, '\n'); nl >= 0 {
		r.column = runewidth.StringWidth(text[nl+1:])
	} else {
		r.column += runewidth.StringWidth(text)
	}

	return nil
}

func (r *Renderer) newline() error {
	r.pendingIndent = len(r.indents)
	r.pendingSpaces = 0
	r.column = r.pendingIndent * r.cfg.IndentSize

	if err := r.out.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	return nil
}

func (r *Renderer) flushWhitespace() error {
	var ws string
	if r.pendingIndent > 0 {
		if r.cfg.IndentStyle == Tabs {
			ws = strings.Repeat("\t", r.pendingIndent)
		} else {
			ws = strings.Repeat(" ", r.pendingIndent*r.cfg.IndentSize)
		}
	}
	ws += strings.Repeat(" ", r.pendingSpaces)

	r.pendingIndent = 0
	r.pendingSpaces = 0

	if ws == "" {
		return nil
	}

	if _, err := r.out.WriteString(ws); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	return nil
}

func eventWidth(ev emitter.Event) int {
	switch ev.Kind {
	case emitter.TokenEvent:
		text := ev.Token.Text()
		if strings.ContainsRune(text, '\n') {
			return unfit
		}
		return runewidth.StringWidth(text)
	case emitter.Space:
		return 1
	case emitter.Line:
		return len(ev.Line.FlatText())
	default:
		return 0
	}
}

func violation(index int, format string, args ...any) {
	panic(&ContractViolation{Index: index, Reason: fmt.Sprintf(format, args...)})
}
