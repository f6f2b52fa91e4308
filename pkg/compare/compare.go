package compare

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pseudomuto/pgfmt/pkg/nodes"
	"github.com/pseudomuto/pgfmt/pkg/parser"
)

// typeKey is the comparable form of a type name. Built-in types compare by their normalized
// spelling so int4, integer and pg_catalog.int4 are all the same type.
type typeKey struct {
	Setof    bool
	Builtin  string
	Name     []parser.Identifier
	Mods     []string
	TimeZone parser.Word
	Array    []*parser.ArrayBound
}

// Options returns the go-cmp options used to compare parse trees. Source positions are
// ignored, empty and nil slices are equal and type names are compared by canonical form.
func Options() []cmp.Option {
	return []cmp.Option{
		cmpopts.IgnoreTypes(lexer.Position{}),
		cmpopts.EquateEmpty(),
		cmp.Transformer("CanonicalType", canonicalType),
	}
}

// Statement compares a single pair of statements and returns the difference, which is empty
// when they are equivalent.
//
// Example:
//
//	before, _ := parser.ParseString("select x::int4 from t")
//	after, _ := parser.ParseString("SELECT x::INT FROM t;")
//	ok, _ := compare.Statement(before.Statements[0], after.Statements[0]) // true
func Statement(a, b *parser.Statement) (bool, string) {
	diff := cmp.Diff(a, b, Options()...)
	return diff == "", diff
}

// Statements compares two statement lists position by position. The diff names the index of
// every statement that differs.
func Statements(a, b []*parser.Statement) (bool, string) {
	if len(a) != len(b) {
		return false, fmt.Sprintf("statement count differs: %d != %d", len(a), len(b))
	}

	var sb strings.Builder
	for i := range a {
		if ok, diff := Statement(a[i], b[i]); !ok {
			fmt.Fprintf(&sb, "statement %d:\n%s", i+1, diff)
		}
	}

	return sb.Len() == 0, sb.String()
}

func canonicalType(t *parser.TypeName) typeKey {
	if t == nil {
		return typeKey{}
	}

	key := typeKey{
		Setof:    t.Setof,
		Mods:     t.Mods,
		TimeZone: t.TimeZone,
		Array:    t.Array,
	}

	if name, ok := nodes.BuiltinType(t); ok {
		key.Builtin = name
	} else if t.Name != nil {
		key.Name = t.Name.Parts
	}

	return key
}
