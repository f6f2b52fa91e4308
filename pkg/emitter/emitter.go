package emitter

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/pgfmt/pkg/token"
)

// Emitter records a document as a flat event stream. It never inspects what it has already
// recorded and makes no layout decisions; balancing GroupStart/GroupEnd and
// IndentStart/IndentEnd is up to the caller and is checked by the renderer.
type Emitter struct {
	events []Event
}

// New returns an empty Emitter.
func New() *Emitter {
	return &Emitter{events: make([]Event, 0, 64)}
}

// GroupStart opens a group tagged with kind.
func (e *Emitter) GroupStart(kind GroupKind) {
	e.events = append(e.events, Event{Kind: GroupStart, Group: kind})
}

// GroupEnd closes the innermost open group.
func (e *Emitter) GroupEnd() {
	e.events = append(e.events, Event{Kind: GroupEnd})
}

// Token appends a terminal.
func (e *Emitter) Token(tok token.Token) {
	e.events = append(e.events, Event{Kind: TokenEvent, Token: tok})
}

// Space appends a space that renders regardless of layout.
func (e *Emitter) Space() {
	e.events = append(e.events, Event{Kind: Space})
}

// Line appends a break point whose rendering depends on the enclosing group's layout.
func (e *Emitter) Line(kind LineType) {
	e.events = append(e.events, Event{Kind: Line, Line: kind})
}

// IndentStart makes breaks up to the matching IndentEnd render one level deeper.
func (e *Emitter) IndentStart() {
	e.events = append(e.events, Event{Kind: IndentStart})
}

// IndentEnd closes the innermost indent region.
func (e *Emitter) IndentEnd() {
	e.events = append(e.events, Event{Kind: IndentEnd})
}

// Events returns the recorded stream. The slice is shared with the Emitter.
func (e *Emitter) Events() []Event { return e.events }

// Len returns the number of recorded events.
func (e *Emitter) Len() int { return len(e.events) }

// Dump writes events to w, one per line, indented by group depth.
//
//	GroupStart SelectStmt
//	  Token Keyword "SELECT"
//	  Space
//	  Token Raw "1"
//	  Token Punct ";"
//	GroupEnd
func Dump(w io.Writer, events []Event) error {
	depth := 0
	for _, ev := range events {
		if ev.Kind == GroupEnd && depth > 0 {
			depth--
		}

		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), ev); err != nil {
			return errors.Wrap(err, "failed to write event dump")
		}

		if ev.Kind == GroupStart {
			depth++
		}
	}

	return nil
}
