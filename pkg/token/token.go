package token

import "fmt"

type (
	// Kind classifies a Token.
	Kind uint8

	// Punct is one of the punctuation characters the formatter emits.
	Punct uint8

	// Token is a terminal of the formatted output. A Token is immutable once constructed and
	// its Text is exactly what ends up in the rendered SQL.
	Token struct {
		kind Kind
		text string
	}
)

const (
	KindKeyword Kind = iota
	KindIdent
	KindPunct
	KindLiteral
	KindRaw
)

const (
	LParen Punct = iota
	RParen
	LBracket
	RBracket
	Comma
	Dot
	Semicolon
)

var (
	kindNames  = [...]string{"Keyword", "Ident", "Punct", "Literal", "Raw"}
	punctChars = [...]string{"(", ")", "[", "]", ",", ".", ";"}
)

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

func (p Punct) String() string {
	if int(p) < len(punctChars) {
		return punctChars[p]
	}
	return fmt.Sprintf("Punct(%d)", p)
}

// Kw returns the keyword token for k.
func Kw(k Keyword) Token {
	return Token{kind: KindKeyword, text: k.String()}
}

// Ident returns an identifier token rendered verbatim. Callers are responsible for having
// already decided that name does not need quoting.
func Ident(name string) Token {
	return Token{kind: KindIdent, text: name}
}

// IdentMaybeQuoted returns an identifier token, quoting name only when NeedsQuoting says so.
//
// Examples:
//   - "mytable" -> mytable
//   - "MyTable" -> "MyTable"
//   - "select" -> "select"
//   - "1abc" -> "1abc"
func IdentMaybeQuoted(name string) Token {
	if NeedsQuoting(name) {
		return QuotedIdent(name)
	}
	return Ident(name)
}

// QuotedIdent returns an identifier token that is always double-quoted.
func QuotedIdent(name string) Token {
	return Token{kind: KindIdent, text: QuoteIdent(name)}
}

// String returns a string literal token for content.
func String(content string) Token {
	return Token{kind: KindLiteral, text: QuoteString(content)}
}

// Raw returns a token rendered verbatim. It's used for numbers, operators, parameters and
// anything else whose text is already in its final form.
func Raw(text string) Token {
	return Token{kind: KindRaw, text: text}
}

// P returns the token for the punctuation character p.
func P(p Punct) Token {
	return Token{kind: KindPunct, text: p.String()}
}

// Kind returns the kind of the token.
func (t Token) Kind() Kind { return t.kind }

// Text returns the exact rendering of the token.
func (t Token) Text() string { return t.text }

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.kind, t.text)
}
