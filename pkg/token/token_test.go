package token_test

import (
	"testing"

	. "github.com/pseudomuto/pgfmt/pkg/token"
	"github.com/stretchr/testify/require"
)

func TestNeedsQuoting(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "lower case identifier", input: "mytable", expected: false},
		{name: "underscores and digits", input: "user_2fa", expected: false},
		{name: "mixed case", input: "MyTable", expected: true},
		{name: "empty", input: "", expected: true},
		{name: "leading digit", input: "1abc", expected: true},
		{name: "dash", input: "my-table", expected: true},
		{name: "space", input: "my table", expected: true},
		{name: "non ascii letter", input: "café", expected: true},
		{name: "reserved word", input: "select", expected: true},
		{name: "reserved word upper case", input: "FROM", expected: true},
		{name: "quote only word", input: "index", expected: true},
		{name: "unreserved keyword", input: "action", expected: false},
		{name: "type name", input: "int4", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, NeedsQuoting(tt.input))
		})
	}
}

func TestQuoting(t *testing.T) {
	require.Equal(t, `"MyTable"`, QuoteIdent("MyTable"))
	require.Equal(t, `"a""b"`, QuoteIdent(`a"b`))
	require.Equal(t, `""`, QuoteIdent(""))
	require.Equal(t, `'it''s'`, QuoteString("it's"))
	require.Equal(t, `''`, QuoteString(""))
	require.Equal(t, `'a"b'`, QuoteString(`a"b`))
}

func TestTokenText(t *testing.T) {
	tests := []struct {
		name     string
		tok      Token
		kind     Kind
		expected string
	}{
		{name: "keyword", tok: Kw(SELECT), kind: KindKeyword, expected: "SELECT"},
		{name: "multi word keyword", tok: Kw(PRECISION), kind: KindKeyword, expected: "PRECISION"},
		{name: "plain ident", tok: Ident("users"), kind: KindIdent, expected: "users"},
		{name: "maybe quoted plain", tok: IdentMaybeQuoted("mytable"), kind: KindIdent, expected: "mytable"},
		{name: "maybe quoted mixed case", tok: IdentMaybeQuoted("MyTable"), kind: KindIdent, expected: `"MyTable"`},
		{name: "maybe quoted keyword", tok: IdentMaybeQuoted("order"), kind: KindIdent, expected: `"order"`},
		{name: "forced quoting", tok: QuotedIdent("id"), kind: KindIdent, expected: `"id"`},
		{name: "string literal", tok: String("O'Brien"), kind: KindLiteral, expected: `'O''Brien'`},
		{name: "raw", tok: Raw("3.14"), kind: KindRaw, expected: "3.14"},
		{name: "comma", tok: P(Comma), kind: KindPunct, expected: ","},
		{name: "semicolon", tok: P(Semicolon), kind: KindPunct, expected: ";"},
		{name: "brackets", tok: P(LBracket), kind: KindPunct, expected: "["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.tok.Text())
			require.Equal(t, tt.kind, tt.tok.Kind())
		})
	}
}

func TestKeywords(t *testing.T) {
	kw, ok := LookupKeyword("select")
	require.True(t, ok)
	require.Equal(t, SELECT, kw)
	require.Equal(t, "SELECT", kw.String())

	_, ok = LookupKeyword("nope")
	require.False(t, ok)

	words := ReservedWords()
	require.Contains(t, words, "SELECT")
	require.NotContains(t, words, "INDEX")

	// the returned slice is a copy
	words[0] = "mutated"
	require.NotEqual(t, "mutated", ReservedWords()[0])

	require.True(t, Reserved("Where"))
	require.True(t, Reserved("view"))
	require.False(t, Reserved("users"))
}

func TestPunctString(t *testing.T) {
	for p, expected := range map[Punct]string{
		LParen: "(", RParen: ")", LBracket: "[", RBracket: "]", Comma: ",", Dot: ".", Semicolon: ";",
	} {
		require.Equal(t, expected, p.String())
	}
}
