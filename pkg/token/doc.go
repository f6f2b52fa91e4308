// Package token defines the terminals of formatted SQL output.
//
// A Token pairs a Kind with its exact output text. Keywords render in their canonical
// upper case spelling, identifiers are quoted only when required, string literals are
// single-quoted with embedded quotes doubled and punctuation renders as its literal
// character without any implicit spacing. Spacing is the job of whoever sequences tokens.
//
//	token.Kw(token.SELECT).Text()              // SELECT
//	token.IdentMaybeQuoted("mytable").Text()   // mytable
//	token.IdentMaybeQuoted("MyTable").Text()   // "MyTable"
//	token.String("it's").Text()                // 'it''s'
//	token.P(token.Comma).Text()                // ,
package token
