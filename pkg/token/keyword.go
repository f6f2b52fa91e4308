package token

import "strings"

// Keyword identifies a SQL keyword. Keywords always render in upper case.
type Keyword uint16

const (
	kwInvalid Keyword = iota

	ACTION
	ADD
	AFTER
	ALL
	ALTER
	ALWAYS
	AND
	ANY
	ARRAY
	AS
	ASC
	AUTHORIZATION
	BEFORE
	BETWEEN
	BY
	CASCADE
	CASCADED
	CASE
	CAST
	CHECK
	COLLATE
	COLUMN
	COMMENT
	CONCURRENTLY
	CONFLICT
	CONSTRAINT
	CONTINUE
	CREATE
	CROSS
	CURRENT
	DATA
	DEFAULT
	DELETE
	DESC
	DISTINCT
	DO
	DROP
	ELSE
	END
	ESCAPE
	EXCEPT
	EXISTS
	EXTENSION
	EXTRACT
	FALSE
	FILTER
	FIRST
	FOLLOWING
	FOR
	FOREIGN
	FROM
	FULL
	GENERATED
	GROUP
	GROUPS
	HAVING
	IDENTITY
	IF
	ILIKE
	IN
	INCLUDE
	INDEX
	INHERITS
	INNER
	INSERT
	INTERSECT
	INTERVAL
	INTO
	IS
	JOIN
	KEY
	LANGUAGE
	LAST
	LATERAL
	LEFT
	LIKE
	LIMIT
	LOAD
	LOCAL
	LOCATION
	LOCKED
	MATERIALIZED
	NATURAL
	NO
	NOT
	NOTHING
	NOWAIT
	NULL
	NULLS
	OF
	OFFSET
	ON
	ONLY
	OPTION
	OR
	ORDER
	OUTER
	OVER
	OWNER
	PARTITION
	PRECEDING
	PRECISION
	PRIMARY
	RANGE
	RECURSIVE
	REFERENCES
	RENAME
	REPLACE
	RESTART
	RESTRICT
	RETURNING
	RIGHT
	ROW
	ROWS
	SCHEMA
	SELECT
	SEQUENCE
	SET
	SETOF
	SHARE
	SKIP
	SOME
	STORED
	SYMMETRIC
	TABLE
	TABLESPACE
	TEMPORARY
	THEN
	TIME
	TO
	TRUE
	TRUNCATE
	TYPE
	UNBOUNDED
	UNION
	UNIQUE
	UNKNOWN
	UNLOGGED
	UPDATE
	USING
	VALUE
	VALUES
	VIEW
	WHEN
	WHERE
	WINDOW
	WITH
	ZONE

	kwCount
)

var keywordNames = [...]string{
	kwInvalid:     "",
	ACTION:        "ACTION",
	ADD:           "ADD",
	AFTER:         "AFTER",
	ALL:           "ALL",
	ALTER:         "ALTER",
	ALWAYS:        "ALWAYS",
	AND:           "AND",
	ANY:           "ANY",
	ARRAY:         "ARRAY",
	AS:            "AS",
	ASC:           "ASC",
	AUTHORIZATION: "AUTHORIZATION",
	BEFORE:        "BEFORE",
	BETWEEN:       "BETWEEN",
	BY:            "BY",
	CASCADE:       "CASCADE",
	CASCADED:      "CASCADED",
	CASE:          "CASE",
	CAST:          "CAST",
	CHECK:         "CHECK",
	COLLATE:       "COLLATE",
	COLUMN:        "COLUMN",
	COMMENT:       "COMMENT",
	CONCURRENTLY:  "CONCURRENTLY",
	CONFLICT:      "CONFLICT",
	CONSTRAINT:    "CONSTRAINT",
	CONTINUE:      "CONTINUE",
	CREATE:        "CREATE",
	CROSS:         "CROSS",
	CURRENT:       "CURRENT",
	DATA:          "DATA",
	DEFAULT:       "DEFAULT",
	DELETE:        "DELETE",
	DESC:          "DESC",
	DISTINCT:      "DISTINCT",
	DO:            "DO",
	DROP:          "DROP",
	ELSE:          "ELSE",
	END:           "END",
	ESCAPE:        "ESCAPE",
	EXCEPT:        "EXCEPT",
	EXISTS:        "EXISTS",
	EXTENSION:     "EXTENSION",
	EXTRACT:       "EXTRACT",
	FALSE:         "FALSE",
	FILTER:        "FILTER",
	FIRST:         "FIRST",
	FOLLOWING:     "FOLLOWING",
	FOR:           "FOR",
	FOREIGN:       "FOREIGN",
	FROM:          "FROM",
	FULL:          "FULL",
	GENERATED:     "GENERATED",
	GROUP:         "GROUP",
	GROUPS:        "GROUPS",
	HAVING:        "HAVING",
	IDENTITY:      "IDENTITY",
	IF:            "IF",
	ILIKE:         "ILIKE",
	IN:            "IN",
	INCLUDE:       "INCLUDE",
	INDEX:         "INDEX",
	INHERITS:      "INHERITS",
	INNER:         "INNER",
	INSERT:        "INSERT",
	INTERSECT:     "INTERSECT",
	INTERVAL:      "INTERVAL",
	INTO:          "INTO",
	IS:            "IS",
	JOIN:          "JOIN",
	KEY:           "KEY",
	LANGUAGE:      "LANGUAGE",
	LAST:          "LAST",
	LATERAL:       "LATERAL",
	LEFT:          "LEFT",
	LIKE:          "LIKE",
	LIMIT:         "LIMIT",
	LOAD:          "LOAD",
	LOCAL:         "LOCAL",
	LOCATION:      "LOCATION",
	LOCKED:        "LOCKED",
	MATERIALIZED:  "MATERIALIZED",
	NATURAL:       "NATURAL",
	NO:            "NO",
	NOT:           "NOT",
	NOTHING:       "NOTHING",
	NOWAIT:        "NOWAIT",
	NULL:          "NULL",
	NULLS:         "NULLS",
	OF:            "OF",
	OFFSET:        "OFFSET",
	ON:            "ON",
	ONLY:          "ONLY",
	OPTION:        "OPTION",
	OR:            "OR",
	ORDER:         "ORDER",
	OUTER:         "OUTER",
	OVER:          "OVER",
	OWNER:         "OWNER",
	PARTITION:     "PARTITION",
	PRECEDING:     "PRECEDING",
	PRECISION:     "PRECISION",
	PRIMARY:       "PRIMARY",
	RANGE:         "RANGE",
	RECURSIVE:     "RECURSIVE",
	REFERENCES:    "REFERENCES",
	RENAME:        "RENAME",
	REPLACE:       "REPLACE",
	RESTART:       "RESTART",
	RESTRICT:      "RESTRICT",
	RETURNING:     "RETURNING",
	RIGHT:         "RIGHT",
	ROW:           "ROW",
	ROWS:          "ROWS",
	SCHEMA:        "SCHEMA",
	SELECT:        "SELECT",
	SEQUENCE:      "SEQUENCE",
	SET:           "SET",
	SETOF:         "SETOF",
	SHARE:         "SHARE",
	SKIP:          "SKIP",
	SOME:          "SOME",
	STORED:        "STORED",
	SYMMETRIC:     "SYMMETRIC",
	TABLE:         "TABLE",
	TABLESPACE:    "TABLESPACE",
	TEMPORARY:     "TEMPORARY",
	THEN:          "THEN",
	TIME:          "TIME",
	TO:            "TO",
	TRUE:          "TRUE",
	TRUNCATE:      "TRUNCATE",
	TYPE:          "TYPE",
	UNBOUNDED:     "UNBOUNDED",
	UNION:         "UNION",
	UNIQUE:        "UNIQUE",
	UNKNOWN:       "UNKNOWN",
	UNLOGGED:      "UNLOGGED",
	UPDATE:        "UPDATE",
	USING:         "USING",
	VALUE:         "VALUE",
	VALUES:        "VALUES",
	VIEW:          "VIEW",
	WHEN:          "WHEN",
	WHERE:         "WHERE",
	WINDOW:        "WINDOW",
	WITH:          "WITH",
	ZONE:          "ZONE",
}

// reservedWords are the words the lexer never treats as identifiers. An identifier
// spelled like one of them has to be quoted.
var reservedWords = []string{
	"ALL", "ALTER", "AND", "ANY", "ARRAY", "AS", "ASC", "BETWEEN", "BY", "CASE", "CAST",
	"CHECK", "COLLATE", "CONSTRAINT", "CREATE", "CROSS", "DEFAULT", "DELETE", "DESC",
	"DISTINCT", "DO", "DROP", "ELSE", "END", "EXCEPT", "EXISTS", "FALSE", "FETCH", "FOR",
	"FOREIGN", "FROM", "FULL", "GRANT", "GROUP", "HAVING", "ILIKE", "IN", "INNER", "INSERT",
	"INTERSECT", "INTO", "IS", "JOIN", "LATERAL", "LEFT", "LIKE", "LIMIT", "NATURAL", "NOT",
	"NULL", "OFFSET", "ON", "ONLY", "OR", "ORDER", "OUTER", "PRIMARY", "REFERENCES",
	"RETURNING", "REVOKE", "RIGHT", "SELECT", "SET", "SOME", "SYMMETRIC", "TABLE", "THEN",
	"TO", "TRUE", "UNION", "UNIQUE", "UPDATE", "USER", "USING", "VALUES", "WHEN", "WHERE",
	"WINDOW", "WITH",
}

// quoteOnlyWords are accepted as bare identifiers on input but are still quoted on
// output so the rendered SQL reads unambiguously.
var quoteOnlyWords = []string{
	"DATABASE", "INDEX", "OF", "ROLE", "SCHEMA", "VIEW",
}

var (
	keywordLookup map[string]Keyword
	quoteSet      map[string]bool
)

func init() {
	keywordLookup = make(map[string]Keyword, len(keywordNames))
	for kw := ACTION; kw < kwCount; kw++ {
		keywordLookup[keywordNames[kw]] = kw
	}

	quoteSet = make(map[string]bool, len(reservedWords)+len(quoteOnlyWords))
	for _, w := range reservedWords {
		quoteSet[strings.ToLower(w)] = true
	}
	for _, w := range quoteOnlyWords {
		quoteSet[strings.ToLower(w)] = true
	}
}

// String returns the canonical (upper case) spelling of the keyword.
func (k Keyword) String() string {
	if k < kwCount {
		return keywordNames[k]
	}
	return "UNKNOWN_KEYWORD"
}

// LookupKeyword finds the keyword spelled s, ignoring case.
func LookupKeyword(s string) (Keyword, bool) {
	kw, ok := keywordLookup[strings.ToUpper(s)]
	return kw, ok
}

// ReservedWords returns the reserved keyword list in upper case. The parser builds its
// keyword lexer rule from it, so anything listed here can only appear as an identifier
// when quoted.
func ReservedWords() []string {
	out := make([]string, len(reservedWords))
	copy(out, reservedWords)
	return out
}

// Reserved reports whether word, compared case-insensitively, must be quoted when used
// as an identifier.
func Reserved(word string) bool {
	return quoteSet[strings.ToLower(word)]
}
