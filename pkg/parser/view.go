package parser

type (
	// CreateViewStmt represents CREATE [OR REPLACE] [TEMPORARY] [RECURSIVE] VIEW.
	//
	//	CREATE OR REPLACE VIEW active_users (id, name) AS
	//	SELECT id, name FROM users WHERE active
	//	WITH LOCAL CHECK OPTION;
	CreateViewStmt struct {
		OrReplace bool           `parser:"'CREATE' @('OR' 'REPLACE')?"`
		Temp      Word           `parser:"@('TEMPORARY' | 'TEMP')?"`
		Recursive bool           `parser:"@'RECURSIVE'?"`
		Name      *QualifiedName `parser:"'VIEW' @@"`
		Columns   []Identifier   `parser:"('(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')')?"`
		Query     *SelectStmt    `parser:"'AS' @@"`
		Check     Word           `parser:"('WITH' @(('LOCAL' | 'CASCADED')? 'CHECK' 'OPTION'))?"`
	}

	// CreateMatViewStmt represents CREATE MATERIALIZED VIEW ... AS query [WITH [NO] DATA].
	CreateMatViewStmt struct {
		IfNotExists bool           `parser:"'CREATE' 'MATERIALIZED' 'VIEW' @('IF' 'NOT' 'EXISTS')?"`
		Name        *QualifiedName `parser:"@@"`
		Columns     []Identifier   `parser:"('(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')')?"`
		Tablespace  *Identifier    `parser:"('TABLESPACE' @(Ident | QuotedIdent))?"`
		Query       *SelectStmt    `parser:"'AS' @@"`
		Data        Word           `parser:"('WITH' @('NO'? 'DATA'))?"`
	}
)
