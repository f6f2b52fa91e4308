package parser

type (
	// CreateTableStmt represents CREATE TABLE with column definitions and table constraints.
	//
	//	CREATE UNLOGGED TABLE IF NOT EXISTS audit.events (
	//	    id bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	//	    payload jsonb NOT NULL DEFAULT '{}',
	//	    CONSTRAINT events_payload_check CHECK (payload <> 'null')
	//	) INHERITS (audit.base) TABLESPACE fast;
	CreateTableStmt struct {
		Persistence Word             `parser:"'CREATE' @('TEMPORARY' | 'TEMP' | 'UNLOGGED')?"`
		IfNotExists bool             `parser:"'TABLE' @('IF' 'NOT' 'EXISTS')?"`
		Name        *QualifiedName   `parser:"@@"`
		Elements    []*TableElement  `parser:"'(' (@@ (',' @@)*)? ')'"`
		Inherits    []*QualifiedName `parser:"('INHERITS' '(' @@ (',' @@)* ')')?"`
		Tablespace  *Identifier      `parser:"('TABLESPACE' @(Ident | QuotedIdent))?"`
	}

	TableElement struct {
		Constraint *TableConstraint `parser:"@@"`
		Like       *QualifiedName   `parser:"| 'LIKE' @@"`
		Column     *ColumnDef       `parser:"| @@"`
	}

	ColumnDef struct {
		Name        Identifier          `parser:"@(Ident | QuotedIdent)"`
		Type        *TypeName           `parser:"@@"`
		Collate     *QualifiedName      `parser:"('COLLATE' @@)?"`
		Constraints []*ColumnConstraint `parser:"@@*"`
	}

	// ColumnConstraint is a single constraint attached to a column definition.
	ColumnConstraint struct {
		Name       *Identifier `parser:"('CONSTRAINT' @(Ident | QuotedIdent))?"`
		NotNull    bool        `parser:"( @('NOT' 'NULL')"`
		Null       bool        `parser:"| @'NULL'"`
		Check      *Expr       `parser:"| 'CHECK' '(' @@ ')'"`
		Default    *OpExpr     `parser:"| 'DEFAULT' @@"`
		Generated  *Generated  `parser:"| @@"`
		Unique     bool        `parser:"| @'UNIQUE'"`
		PrimaryKey bool        `parser:"| @('PRIMARY' 'KEY')"`
		References *References `parser:"| @@ )"`
	}

	// Generated is GENERATED { ALWAYS | BY DEFAULT } AS IDENTITY or
	// GENERATED ALWAYS AS (expr) STORED.
	Generated struct {
		When     Word  `parser:"'GENERATED' @('ALWAYS' | 'BY' 'DEFAULT') 'AS'"`
		Identity bool  `parser:"( @'IDENTITY'"`
		Expr     *Expr `parser:"| '(' @@ ')' 'STORED' )"`
	}

	References struct {
		Table   *QualifiedName `parser:"'REFERENCES' @@"`
		Columns []Identifier   `parser:"('(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')')?"`
		Actions []*RefAction   `parser:"@@*"`
	}

	// RefAction is ON DELETE / ON UPDATE followed by the referential action.
	RefAction struct {
		Event  Word `parser:"'ON' @('DELETE' | 'UPDATE')"`
		Action Word `parser:"@('CASCADE' | 'RESTRICT' | 'NO' 'ACTION' | 'SET' 'NULL' | 'SET' 'DEFAULT')"`
	}

	TableConstraint struct {
		Name       *Identifier  `parser:"('CONSTRAINT' @(Ident | QuotedIdent))?"`
		PrimaryKey []Identifier `parser:"( 'PRIMARY' 'KEY' '(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')'"`
		Unique     []Identifier `parser:"| 'UNIQUE' '(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')'"`
		Check      *Expr        `parser:"| 'CHECK' '(' @@ ')'"`
		ForeignKey *ForeignKey  `parser:"| @@ )"`
	}

	ForeignKey struct {
		Columns []Identifier `parser:"'FOREIGN' 'KEY' '(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')'"`
		Ref     *References  `parser:"@@"`
	}

	// CreateTableAsStmt represents CREATE TABLE ... AS query [WITH [NO] DATA].
	CreateTableAsStmt struct {
		Persistence Word           `parser:"'CREATE' @('TEMPORARY' | 'TEMP' | 'UNLOGGED')?"`
		IfNotExists bool           `parser:"'TABLE' @('IF' 'NOT' 'EXISTS')?"`
		Name        *QualifiedName `parser:"@@"`
		Columns     []Identifier   `parser:"('(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')')?"`
		Query       *SelectStmt    `parser:"'AS' @@"`
		Data        Word           `parser:"('WITH' @('NO'? 'DATA'))?"`
	}
)
