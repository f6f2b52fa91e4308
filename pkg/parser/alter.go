package parser

type (
	// AlterTableStmt represents ALTER TABLE with one or more comma separated actions.
	//
	//	ALTER TABLE IF EXISTS users
	//	    ADD COLUMN IF NOT EXISTS age int,
	//	    ALTER COLUMN name SET NOT NULL,
	//	    DROP CONSTRAINT users_old_check;
	AlterTableStmt struct {
		IfExists bool             `parser:"'ALTER' 'TABLE' @('IF' 'EXISTS')?"`
		Only     bool             `parser:"@'ONLY'?"`
		Name     *QualifiedName   `parser:"@@"`
		Cmds     []*AlterTableCmd `parser:"@@ (',' @@)*"`
	}

	AlterTableCmd struct {
		AddConstraint  *TableConstraint `parser:"'ADD' @@"`
		AddColumn      *AddColumn       `parser:"| @@"`
		DropConstraint *DropConstraint  `parser:"| @@"`
		DropColumn     *DropColumn      `parser:"| @@"`
		AlterColumn    *AlterColumn     `parser:"| @@"`
	}

	AddColumn struct {
		IfNotExists bool       `parser:"'ADD' 'COLUMN'? @('IF' 'NOT' 'EXISTS')?"`
		Def         *ColumnDef `parser:"@@"`
	}

	DropConstraint struct {
		IfExists bool       `parser:"'DROP' 'CONSTRAINT' @('IF' 'EXISTS')?"`
		Name     Identifier `parser:"@(Ident | QuotedIdent)"`
		Behavior Word       `parser:"@('CASCADE' | 'RESTRICT')?"`
	}

	DropColumn struct {
		IfExists bool       `parser:"'DROP' 'COLUMN'? @('IF' 'EXISTS')?"`
		Name     Identifier `parser:"@(Ident | QuotedIdent)"`
		Behavior Word       `parser:"@('CASCADE' | 'RESTRICT')?"`
	}

	// AlterColumn is ALTER [COLUMN] name followed by exactly one column action.
	AlterColumn struct {
		Name        Identifier `parser:"'ALTER' 'COLUMN'? @(Ident | QuotedIdent)"`
		Type        *TypeName  `parser:"( ('SET' 'DATA')? 'TYPE' @@"`
		Using       *Expr      `parser:"  ('USING' @@)?"`
		SetDefault  *OpExpr    `parser:"| 'SET' 'DEFAULT' @@"`
		DropDefault bool       `parser:"| @('DROP' 'DEFAULT')"`
		SetNotNull  bool       `parser:"| @('SET' 'NOT' 'NULL')"`
		DropNotNull bool       `parser:"| @('DROP' 'NOT' 'NULL') )"`
	}

	// RenameStmt covers ALTER <object> ... RENAME [COLUMN col | CONSTRAINT con] TO name.
	RenameStmt struct {
		Object     Word           `parser:"'ALTER' @('TABLE' | 'INDEX' | 'VIEW' | 'MATERIALIZED' 'VIEW' | 'SCHEMA' | 'SEQUENCE' | 'TYPE')"`
		IfExists   bool           `parser:"@('IF' 'EXISTS')?"`
		Name       *QualifiedName `parser:"@@"`
		Constraint *Identifier    `parser:"'RENAME' ( 'CONSTRAINT' @(Ident | QuotedIdent)"`
		Column     *Identifier    `parser:"| 'COLUMN'? @(Ident | QuotedIdent) )?"`
		To         Identifier     `parser:"'TO' @(Ident | QuotedIdent)"`
	}

	// AlterOwnerStmt is ALTER <object> name OWNER TO role.
	AlterOwnerStmt struct {
		Object Word           `parser:"'ALTER' @('TABLE' | 'VIEW' | 'MATERIALIZED' 'VIEW' | 'SCHEMA' | 'SEQUENCE' | 'TYPE' | 'TABLESPACE')"`
		Name   *QualifiedName `parser:"@@"`
		Owner  Identifier     `parser:"'OWNER' 'TO' @(Ident | QuotedIdent)"`
	}

	// AlterObjectSchemaStmt is ALTER <object> [IF EXISTS] name SET SCHEMA schema.
	AlterObjectSchemaStmt struct {
		Object   Word           `parser:"'ALTER' @('TABLE' | 'VIEW' | 'MATERIALIZED' 'VIEW' | 'SEQUENCE' | 'TYPE')"`
		IfExists bool           `parser:"@('IF' 'EXISTS')?"`
		Name     *QualifiedName `parser:"@@"`
		Schema   Identifier     `parser:"'SET' 'SCHEMA' @(Ident | QuotedIdent)"`
	}

	// AlterEnumStmt adds or renames a value of an enum type.
	AlterEnumStmt struct {
		Name   *QualifiedName `parser:"'ALTER' 'TYPE' @@"`
		Add    *EnumAdd       `parser:"( @@"`
		Rename *EnumRename    `parser:"| @@ )"`
	}

	EnumAdd struct {
		IfNotExists bool           `parser:"'ADD' 'VALUE' @('IF' 'NOT' 'EXISTS')?"`
		Value       StringLiteral  `parser:"@String"`
		Where       Word           `parser:"( @('BEFORE' | 'AFTER')"`
		Neighbor    *StringLiteral `parser:"  @String )?"`
	}

	EnumRename struct {
		From StringLiteral `parser:"'RENAME' 'VALUE' @String"`
		To   StringLiteral `parser:"'TO' @String"`
	}
)
