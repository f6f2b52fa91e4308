package parser

type (
	// InsertStmt represents INSERT INTO ... [DEFAULT] VALUES / SELECT with optional ON CONFLICT
	// and RETURNING clauses.
	//
	//	INSERT INTO users AS u (id, name) VALUES (1, 'a')
	//	ON CONFLICT (id) DO UPDATE SET name = excluded.name
	//	RETURNING id;
	InsertStmt struct {
		Table      *QualifiedName    `parser:"'INSERT' 'INTO' @@"`
		Alias      *Identifier       `parser:"('AS' @(Ident | QuotedIdent))?"`
		Columns    []Identifier      `parser:"('(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')')?"`
		Source     *InsertSource     `parser:"@@"`
		OnConflict *OnConflictClause `parser:"@@?"`
		Returning  []*Target         `parser:"('RETURNING' @@ (',' @@)*)?"`
	}

	InsertSource struct {
		Default bool        `parser:"@('DEFAULT' 'VALUES')"`
		Select  *SelectStmt `parser:"| @@"`
	}

	OnConflictClause struct {
		Target  *ConflictTarget `parser:"'ON' 'CONFLICT' @@?"`
		Nothing bool            `parser:"'DO' ( @'NOTHING'"`
		Update  *ConflictUpdate `parser:"| @@ )"`
	}

	// ConflictTarget is either ON CONSTRAINT name or a parenthesised list of index
	// expressions with an optional predicate.
	ConflictTarget struct {
		Constraint *Identifier `parser:"'ON' 'CONSTRAINT' @(Ident | QuotedIdent)"`
		Columns    []*Expr     `parser:"| ( '(' @@ (',' @@)* ')'"`
		Where      *Expr       `parser:"    ('WHERE' @@)? )"`
	}

	ConflictUpdate struct {
		Sets  []*SetItem `parser:"'UPDATE' 'SET' @@ (',' @@)*"`
		Where *Expr      `parser:"('WHERE' @@)?"`
	}

	// SetItem is one assignment of an UPDATE or ON CONFLICT DO UPDATE SET list: either
	// col = expr or (a, b) = source.
	SetItem struct {
		Columns []Identifier `parser:"( '(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')'"`
		Source  *Expr        `parser:"  '=' @@"`
		Column  *SetTarget   `parser:"| @@"`
		Value   *Expr        `parser:"  '=' @@ )"`
	}

	// SetTarget is the assigned column, with optional subscripts (arr[1] = 0).
	SetTarget struct {
		Name Identifier   `parser:"@(Ident | QuotedIdent)"`
		Subs []*Subscript `parser:"@@*"`
	}

	UpdateStmt struct {
		Only      bool           `parser:"'UPDATE' @'ONLY'?"`
		Table     *QualifiedName `parser:"@@"`
		Alias     *Identifier    `parser:"( 'AS' @(Ident | QuotedIdent) | @(Ident | QuotedIdent) )?"`
		Sets      []*SetItem     `parser:"'SET' @@ (',' @@)*"`
		From      []*FromItem    `parser:"('FROM' @@ (',' @@)*)?"`
		Where     *Expr          `parser:"('WHERE' @@)?"`
		Returning []*Target      `parser:"('RETURNING' @@ (',' @@)*)?"`
	}

	DeleteStmt struct {
		Only      bool           `parser:"'DELETE' 'FROM' @'ONLY'?"`
		Table     *QualifiedName `parser:"@@"`
		Alias     *Identifier    `parser:"( 'AS' @(Ident | QuotedIdent) | @(Ident | QuotedIdent) )?"`
		Using     []*FromItem    `parser:"('USING' @@ (',' @@)*)?"`
		Where     *Expr          `parser:"('WHERE' @@)?"`
		Returning []*Target      `parser:"('RETURNING' @@ (',' @@)*)?"`
	}
)
