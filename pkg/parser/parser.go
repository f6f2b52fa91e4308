package parser

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/pseudomuto/pgfmt/pkg/token"
)

var (
	// postgresLexer tokenizes the supported PostgreSQL subset. Rule order matters: the first
	// rule that matches at the current position wins.
	postgresLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `--[^\r\n]*`},
		{Name: "MultilineComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
		{Name: "DollarString", Pattern: `\$\$(?s:.*?)\$\$`},
		{Name: "String", Pattern: `'(?:[^']|'')*'`},
		{Name: "QuotedIdent", Pattern: `"(?:[^"]|"")+"`},
		{Name: "Param", Pattern: `\$\d+`},
		{Name: "Number", Pattern: `(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?`},
		{Name: "Keyword", Pattern: `(?i)(?:` + strings.Join(token.ReservedWords(), "|") + `)\b`},
		{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_$]*`},
		{Name: "Operator", Pattern: `::|->>|->|#>>|#>|@>|<@|<<|>>|<>|!=|<=|>=|\|\||!~~\*|!~~|~~\*|~~|!~\*|!~|~\*|[-+*/%<>=^~&|#]`},
		{Name: "Punct", Pattern: `[(),.;:\[\]]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	// parser is the participle parser instance for PostgreSQL statements. The large lookahead
	// lets alternatives that share a long prefix (a parenthesised subquery versus a
	// parenthesised expression, say) backtrack instead of failing.
	parser = participle.MustBuild[SQL](
		participle.Lexer(postgresLexer),
		participle.CaseInsensitive("Keyword", "Ident"),
		participle.Elide("Comment", "MultilineComment", "Whitespace"),
		participle.UseLookahead(128),
	)
)

type (
	// SQL is a parsed script: a list of statements separated by semicolons.
	SQL struct {
		Statements []*Statement `parser:"';'* (@@ (';'+ @@)* ';'*)?"`
	}

	// Statement is the closed set of statements the formatter understands. Exactly one of the
	// statement fields is set. A leading WITH clause is kept on the statement itself so that
	// it can precede SELECT, INSERT, UPDATE and DELETE alike.
	Statement struct {
		Pos lexer.Position

		With              *WithClause           `parser:"@@?"`
		Select            *SelectStmt           `parser:"( @@"`
		Insert            *InsertStmt           `parser:"| @@"`
		Update            *UpdateStmt           `parser:"| @@"`
		Delete            *DeleteStmt           `parser:"| @@"`
		CreateTable       *CreateTableStmt      `parser:"| @@"`
		CreateTableAs     *CreateTableAsStmt    `parser:"| @@"`
		CreateMatView     *CreateMatViewStmt    `parser:"| @@"`
		CreateView        *CreateViewStmt       `parser:"| @@"`
		CreateIndex       *CreateIndexStmt      `parser:"| @@"`
		CreateSchema      *CreateSchemaStmt     `parser:"| @@"`
		CreateTablespace  *CreateTablespaceStmt `parser:"| @@"`
		AlterEnum         *AlterEnumStmt        `parser:"| @@"`
		Rename            *RenameStmt           `parser:"| @@"`
		AlterOwner        *AlterOwnerStmt       `parser:"| @@"`
		AlterObjectSchema *AlterObjectSchemaStmt `parser:"| @@"`
		AlterTable        *AlterTableStmt       `parser:"| @@"`
		Drop              *DropStmt             `parser:"| @@"`
		Truncate          *TruncateStmt         `parser:"| @@"`
		Comment           *CommentStmt          `parser:"| @@"`
		Load              *LoadStmt             `parser:"| @@"`
		Do                *DoStmt               `parser:"| @@ )"`
	}
)

// Parse parses PostgreSQL statements from an io.Reader.
//
// Example usage:
//
//	f, err := os.Open("queries.sql")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer f.Close()
//
//	sql, err := parser.Parse(f)
//	if err != nil {
//		log.Fatalf("Parse error: %v", err)
//	}
//
//	for _, stmt := range sql.Statements {
//		if stmt.Select != nil {
//			fmt.Println("found a query")
//		}
//	}
//
// Returns an error, carrying the line and column of the offending token, if the input is not
// valid SQL for the supported grammar.
func Parse(reader io.Reader) (*SQL, error) {
	sql, err := parser.Parse("", reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse SQL")
	}

	return sql, nil
}

// ParseString parses PostgreSQL statements from a string.
//
//	sql, err := parser.ParseString(`
//		SELECT id, name FROM users WHERE active;
//		DELETE FROM sessions WHERE expires_at < now();
//	`)
func ParseString(sql string) (*SQL, error) {
	return Parse(strings.NewReader(sql))
}

// ParseFile parses the statements in the file at path.
func ParseFile(path string) (*SQL, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()

	sql, err := parser.Parse(path, f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	return sql, nil
}
