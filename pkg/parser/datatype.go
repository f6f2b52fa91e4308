package parser

type (
	// TypeName is a (possibly qualified) type reference as used in casts and column
	// definitions. DOUBLE PRECISION and CHARACTER VARYING are multi-word names and get their
	// own flags; everything else is a plain name with optional modifiers.
	TypeName struct {
		Setof    bool           `parser:"@'SETOF'?"`
		Double   bool           `parser:"( @('DOUBLE' 'PRECISION')"`
		Varying  bool           `parser:"| @(('CHARACTER' | 'CHAR') 'VARYING')"`
		Name     *QualifiedName `parser:"| @@ )"`
		Mods     []string       `parser:"('(' @Number (',' @Number)* ')')?"`
		TimeZone Word           `parser:"(@('WITH' | 'WITHOUT') 'TIME' 'ZONE')?"`
		Array    []*ArrayBound  `parser:"@@*"`
	}

	// ArrayBound is one [] or [n] suffix of an array type.
	ArrayBound struct {
		Size  *string `parser:"'[' @Number?"`
		Close bool    `parser:"@']'"`
	}
)

// BaseName returns the unqualified, lower-case name of the type: "double precision" and
// "varchar" for the multi-word forms.
func (t *TypeName) BaseName() string {
	switch {
	case t == nil:
		return ""
	case t.Double:
		return "double precision"
	case t.Varying:
		return "varchar"
	case t.Name == nil || len(t.Name.Parts) == 0:
		return ""
	default:
		return string(t.Name.Parts[len(t.Name.Parts)-1])
	}
}

// Schema returns the schema qualifier of the type, if any.
func (t *TypeName) Schema() string {
	if t == nil || t.Name == nil || len(t.Name.Parts) < 2 {
		return ""
	}
	return string(t.Name.Parts[len(t.Name.Parts)-2])
}
