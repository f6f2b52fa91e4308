package nodes

import (
	"strings"

	"github.com/pseudomuto/pgfmt/pkg/emitter"
	"github.com/pseudomuto/pgfmt/pkg/parser"
	"github.com/pseudomuto/pgfmt/pkg/token"
)

// builtinTypes maps the spellings of built-in types, internal names included, to the form
// they are written in.
var builtinTypes = map[string]string{
	"int2":             "SMALLINT",
	"smallint":         "SMALLINT",
	"int4":             "INT",
	"int":              "INT",
	"integer":          "INT",
	"int8":             "BIGINT",
	"bigint":           "BIGINT",
	"float4":           "REAL",
	"real":             "REAL",
	"float8":           "DOUBLE PRECISION",
	"double precision": "DOUBLE PRECISION",
	"bool":             "BOOLEAN",
	"boolean":          "BOOLEAN",
	"bpchar":           "CHAR",
	"char":             "CHAR",
	"character":        "CHAR",
	"varchar":          "VARCHAR",
	"text":             "TEXT",
	"date":             "DATE",
	"time":             "TIME",
	"timestamp":        "TIMESTAMP",
	"timestamptz":      "TIMESTAMPTZ",
	"interval":         "INTERVAL",
	"numeric":          "NUMERIC",
	"decimal":          "DECIMAL",
	"uuid":             "UUID",
	"json":             "JSON",
	"jsonb":            "JSONB",
	"bytea":            "BYTEA",
}

// BuiltinType returns the normalized spelling of t when it names a built-in type, either
// unqualified or qualified with pg_catalog.
//
//	pg_catalog.int4  -> INT, true
//	double precision -> DOUBLE PRECISION, true
//	public.int4      -> "", false
//	citext           -> "", false
func BuiltinType(t *parser.TypeName) (string, bool) {
	if t == nil {
		return "", false
	}

	if schema := t.Schema(); schema != "" {
		if schema != "pg_catalog" || len(t.Name.Parts) != 2 {
			return "", false
		}
	}

	name, ok := builtinTypes[t.BaseName()]
	return name, ok
}

func emitTypeName(e *emitter.Emitter, n *parser.TypeName) {
	if n == nil {
		return
	}

	e.GroupStart(emitter.TypeName)
	if n.Setof {
		kw(e, token.SETOF)
		e.Space()
	}

	if name, ok := BuiltinType(n); ok {
		for i, part := range strings.Fields(name) {
			if i > 0 {
				e.Space()
			}
			e.Token(token.Raw(part))
		}
	} else {
		qualifiedName(e, n.Name)
	}

	if len(n.Mods) > 0 {
		punct(e, token.LParen)
		for i, m := range n.Mods {
			if i > 0 {
				punct(e, token.Comma)
				e.Space()
			}
			e.Token(token.Raw(m))
		}
		punct(e, token.RParen)
	}

	if n.TimeZone != "" {
		e.Space()
		word(e, n.TimeZone)
		e.Space()
		kw(e, token.TIME, token.ZONE)
	}

	for _, b := range n.Array {
		punct(e, token.LBracket)
		if b.Size != nil {
			e.Token(token.Raw(*b.Size))
		}
		punct(e, token.RBracket)
	}
	e.GroupEnd()
}
