package emitter

import (
	"fmt"

	"github.com/pseudomuto/pgfmt/pkg/token"
)

type (
	// EventKind identifies the type of an Event.
	EventKind uint8

	// LineType determines how a Line event renders when its enclosing group is flat. Broken
	// lines always render as a newline followed by the current indentation.
	LineType uint8

	// Event is one element of the document stream. Only the field matching Kind is meaningful:
	// Token for TokenEvent, Group for GroupStart and Line for Line.
	Event struct {
		Kind  EventKind
		Token token.Token
		Group GroupKind
		Line  LineType
	}
)

const (
	TokenEvent EventKind = iota
	GroupStart
	GroupEnd
	Space
	Line
	IndentStart
	IndentEnd
)

const (
	// SoftOrSpace renders as a single space when flat.
	SoftOrSpace LineType = iota
	// Soft renders as nothing when flat. Used right inside brackets so that a flat list
	// reads f(a, b) rather than f( a, b ).
	Soft
)

var eventKindNames = [...]string{
	TokenEvent:  "Token",
	GroupStart:  "GroupStart",
	GroupEnd:    "GroupEnd",
	Space:       "Space",
	Line:        "Line",
	IndentStart: "IndentStart",
	IndentEnd:   "IndentEnd",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

func (l LineType) String() string {
	switch l {
	case SoftOrSpace:
		return "SoftOrSpace"
	case Soft:
		return "Soft"
	default:
		return fmt.Sprintf("LineType(%d)", l)
	}
}

// FlatText is the text a line of this type renders as inside a flat group.
func (l LineType) FlatText() string {
	if l == SoftOrSpace {
		return " "
	}
	return ""
}

func (e Event) String() string {
	switch e.Kind {
	case TokenEvent:
		return fmt.Sprintf("Token %s %q", e.Token.Kind(), e.Token.Text())
	case GroupStart:
		return "GroupStart " + e.Group.String()
	case Line:
		return "Line " + e.Line.String()
	default:
		return e.Kind.String()
	}
}
