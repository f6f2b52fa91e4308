package parser

import (
	"strings"
)

type (
	// Identifier is a SQL identifier as PostgreSQL sees it: unquoted identifiers are folded to
	// lower case while quoted ones are unquoted and keep their case.
	Identifier string

	// StringLiteral is the content of a single-quoted string with quotes removed and doubled
	// quotes collapsed.
	StringLiteral string

	// Word is a keyword (or keyword sequence) captured from the input, normalized to upper
	// case with single spaces between words.
	Word string

	// JoinType is the normalized kind of a join: INNER, LEFT, RIGHT, FULL or CROSS.
	JoinType string

	// CompOp is a comparison operator. != is normalized to <>.
	CompOp string

	// QualifiedName is a dotted name such as schema.table.
	QualifiedName struct {
		Parts []Identifier `parser:"@(Ident | QuotedIdent) ('.' @(Ident | QuotedIdent))*"`
	}
)

// Capture implements participle.Capture.
func (i *Identifier) Capture(values []string) error {
	v := strings.Join(values, "")
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		*i = Identifier(strings.ReplaceAll(v[1:len(v)-1], `""`, `"`))
		return nil
	}

	*i = Identifier(strings.ToLower(v))
	return nil
}

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	v := strings.Join(values, "")
	if len(v) >= 2 && v[0] == '\'' && v[len(v)-1] == '\'' {
		v = v[1 : len(v)-1]
	}

	*s = StringLiteral(strings.ReplaceAll(v, "''", "'"))
	return nil
}

// Capture implements participle.Capture.
func (w *Word) Capture(values []string) error {
	words := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToUpper(v)
		if v == "TEMP" {
			v = "TEMPORARY"
		}
		words = append(words, v)
	}

	*w = Word(strings.Join(words, " "))
	return nil
}

// Capture implements participle.Capture. It receives every word of the join operator, JOIN
// included, so a plain JOIN still produces a value.
func (j *JoinType) Capture(values []string) error {
	kind := "INNER"
	for _, v := range values {
		switch v = strings.ToUpper(v); v {
		case "LEFT", "RIGHT", "FULL", "CROSS":
			kind = v
		}
	}

	*j = JoinType(kind)
	return nil
}

// Capture implements participle.Capture.
func (c *CompOp) Capture(values []string) error {
	op := strings.Join(values, "")
	if op == "!=" {
		op = "<>"
	}

	*c = CompOp(op)
	return nil
}

// Words splits w into its individual keywords.
func (w Word) Words() []string {
	if w == "" {
		return nil
	}
	return strings.Split(string(w), " ")
}

// String returns the dotted form of the name without any quoting.
func (q *QualifiedName) String() string {
	if q == nil {
		return ""
	}

	parts := make([]string, len(q.Parts))
	for i, p := range q.Parts {
		parts[i] = string(p)
	}
	return strings.Join(parts, ".")
}
