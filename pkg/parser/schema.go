package parser

type (
	// CreateIndexStmt represents CREATE [UNIQUE] INDEX.
	//
	//	CREATE UNIQUE INDEX CONCURRENTLY IF NOT EXISTS users_email_idx
	//	ON users USING btree (lower(email), created_at DESC NULLS LAST)
	//	INCLUDE (id) WHERE deleted_at IS NULL;
	CreateIndexStmt struct {
		Unique       bool           `parser:"'CREATE' @'UNIQUE'? 'INDEX'"`
		Concurrently bool           `parser:"@'CONCURRENTLY'?"`
		IfNotExists  bool           `parser:"@('IF' 'NOT' 'EXISTS')?"`
		Name         *Identifier    `parser:"@(Ident | QuotedIdent)?"`
		Only         bool           `parser:"'ON' @'ONLY'?"`
		Table        *QualifiedName `parser:"@@"`
		Method       *Identifier    `parser:"('USING' @(Ident | QuotedIdent))?"`
		Elems        []*IndexElem   `parser:"'(' @@ (',' @@)* ')'"`
		Include      []Identifier   `parser:"('INCLUDE' '(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')')?"`
		Where        *Expr          `parser:"('WHERE' @@)?"`
	}

	// IndexElem is a column, a function call or a parenthesised expression being indexed.
	IndexElem struct {
		Paren   *Expr          `parser:"( '(' @@ ')'"`
		Func    *FuncCall      `parser:"| @@"`
		Column  *Identifier    `parser:"| @(Ident | QuotedIdent) )"`
		Collate *QualifiedName `parser:"('COLLATE' @@)?"`
		Dir     Word           `parser:"@('ASC' | 'DESC')?"`
		Nulls   Word           `parser:"('NULLS' @('FIRST' | 'LAST'))?"`
	}

	// CreateSchemaStmt represents CREATE SCHEMA. Either the schema is named, optionally with an
	// owner, or only AUTHORIZATION is given and the schema takes the role's name.
	CreateSchemaStmt struct {
		IfNotExists   bool        `parser:"'CREATE' 'SCHEMA' @('IF' 'NOT' 'EXISTS')?"`
		Authorization *Identifier `parser:"( 'AUTHORIZATION' @(Ident | QuotedIdent)"`
		Name          *Identifier `parser:"| @(Ident | QuotedIdent)"`
		Owner         *Identifier `parser:"  ('AUTHORIZATION' @(Ident | QuotedIdent))? )"`
	}

	CreateTablespaceStmt struct {
		Name     Identifier    `parser:"'CREATE' 'TABLESPACE' @(Ident | QuotedIdent)"`
		Owner    *Identifier   `parser:"('OWNER' @(Ident | QuotedIdent))?"`
		Location StringLiteral `parser:"'LOCATION' @String"`
	}
)
