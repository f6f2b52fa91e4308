package parser

type (
	// DropStmt represents DROP <object> [CONCURRENTLY] [IF EXISTS] names [CASCADE | RESTRICT].
	DropStmt struct {
		Object       Word             `parser:"'DROP' @('TABLE' | 'INDEX' | 'VIEW' | 'MATERIALIZED' 'VIEW' | 'SCHEMA' | 'SEQUENCE' | 'TYPE' | 'TABLESPACE' | 'EXTENSION')"`
		Concurrently bool             `parser:"@'CONCURRENTLY'?"`
		IfExists     bool             `parser:"@('IF' 'EXISTS')?"`
		Names        []*QualifiedName `parser:"@@ (',' @@)*"`
		Behavior     Word             `parser:"@('CASCADE' | 'RESTRICT')?"`
	}

	// TruncateStmt represents TRUNCATE [TABLE] [ONLY] names [RESTART | CONTINUE IDENTITY]
	// [CASCADE | RESTRICT].
	TruncateStmt struct {
		Table    bool             `parser:"'TRUNCATE' @'TABLE'?"`
		Only     bool             `parser:"@'ONLY'?"`
		Names    []*QualifiedName `parser:"@@ (',' @@)*"`
		Identity Word             `parser:"(@('RESTART' | 'CONTINUE') 'IDENTITY')?"`
		Behavior Word             `parser:"@('CASCADE' | 'RESTRICT')?"`
	}

	// CommentStmt represents COMMENT ON <object> name IS 'text' | NULL.
	CommentStmt struct {
		Object Word           `parser:"'COMMENT' 'ON' @('TABLE' | 'COLUMN' | 'INDEX' | 'VIEW' | 'MATERIALIZED' 'VIEW' | 'SCHEMA' | 'SEQUENCE' | 'TYPE' | 'TABLESPACE')"`
		Name   *QualifiedName `parser:"@@"`
		Text   *StringLiteral `parser:"'IS' ( @String"`
		Null   bool           `parser:"| @'NULL' )"`
	}

	LoadStmt struct {
		File StringLiteral `parser:"'LOAD' @String"`
	}

	// DoStmt represents an anonymous code block. The LANGUAGE clause may come before or after
	// the body.
	DoStmt struct {
		Language      *Identifier    `parser:"'DO' ('LANGUAGE' @(Ident | QuotedIdent))?"`
		Dollar        *string        `parser:"( @DollarString"`
		String        *StringLiteral `parser:"| @String )"`
		LanguageAfter *Identifier    `parser:"('LANGUAGE' @(Ident | QuotedIdent))?"`
	}
)
