package token

import "strings"

// NeedsQuoting reports whether name has to be wrapped in double quotes to survive a round
// trip through the parser. That's the case when name is empty, starts with a digit, has any
// upper case letter (unquoted identifiers fold to lower case), contains anything other than
// ASCII letters, digits and underscores, or is spelled like a reserved word.
func NeedsQuoting(name string) bool {
	if name == "" {
		return true
	}

	if name[0] >= '0' && name[0] <= '9' {
		return true
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '_':
		default:
			return true
		}
	}

	return Reserved(name)
}

// QuoteIdent wraps name in double quotes, doubling any embedded double quote.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// QuoteString wraps s in single quotes, doubling any embedded single quote.
func QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
