package parser

import "github.com/alecthomas/participle/v2/lexer"

type (
	// SelectStmt is a complete query: an optional WITH clause, one or more simple selects
	// combined with set operations, and the trailing ORDER BY / LIMIT / OFFSET / locking
	// clauses that apply to the whole result.
	SelectStmt struct {
		Pos lexer.Position

		With    *WithClause     `parser:"@@?"`
		Left    *SimpleSelect   `parser:"@@"`
		SetOps  []*SetOp        `parser:"@@*"`
		OrderBy []*SortBy       `parser:"('ORDER' 'BY' @@ (',' @@)*)?"`
		Limit   *LimitClause    `parser:"@@?"`
		Offset  *OffsetClause   `parser:"@@?"`
		Locking []*LockingClause `parser:"@@*"`
	}

	// SimpleSelect is a single SELECT, a VALUES list or a parenthesised query.
	SimpleSelect struct {
		Values *ValuesClause `parser:"@@"`
		Select *SelectCore   `parser:"| @@"`
		Paren  *SelectStmt   `parser:"| '(' @@ ')'"`
	}

	SetOp struct {
		Op    Word          `parser:"@('UNION' | 'INTERSECT' | 'EXCEPT')"`
		Quant Word          `parser:"@('ALL' | 'DISTINCT')?"`
		Right *SimpleSelect `parser:"@@"`
	}

	SelectCore struct {
		Distinct *DistinctClause `parser:"'SELECT' @@?"`
		Targets  []*Target       `parser:"(@@ (',' @@)*)?"`
		Into     *IntoClause     `parser:"@@?"`
		From     []*FromItem     `parser:"('FROM' @@ (',' @@)*)?"`
		Where    *Expr           `parser:"('WHERE' @@)?"`
		GroupBy  []*Expr         `parser:"('GROUP' 'BY' @@ (',' @@)*)?"`
		Having   *Expr           `parser:"('HAVING' @@)?"`
		Windows  []*NamedWindow  `parser:"('WINDOW' @@ (',' @@)*)?"`
	}

	// DistinctClause is ALL, DISTINCT or DISTINCT ON (...).
	DistinctClause struct {
		All      bool    `parser:"@'ALL'"`
		Distinct bool    `parser:"| ( @'DISTINCT'"`
		On       []*Expr `parser:"    ('ON' '(' @@ (',' @@)* ')')? )"`
	}

	// Target is one entry of a target list (SELECT or RETURNING).
	Target struct {
		Star  bool        `parser:"@'*'"`
		Expr  *Expr       `parser:"| @@"`
		Alias *Identifier `parser:"  ( 'AS' @(Ident | QuotedIdent | Keyword) | @(Ident | QuotedIdent) )?"`
	}

	IntoClause struct {
		Persistence Word           `parser:"'INTO' @('TEMPORARY' | 'TEMP' | 'UNLOGGED')?"`
		Table       bool           `parser:"@'TABLE'?"`
		Name        *QualifiedName `parser:"@@"`
	}

	// FromItem is a table reference followed by any number of joins.
	FromItem struct {
		Source *TableRef `parser:"@@"`
		Joins  []*Join   `parser:"@@*"`
	}

	Join struct {
		Natural bool        `parser:"@'NATURAL'?"`
		Type    JoinType    `parser:"@( 'CROSS' 'JOIN' | ('LEFT' | 'RIGHT' | 'FULL') 'OUTER'? 'JOIN' | 'INNER'? 'JOIN' )"`
		Right   *TableRef   `parser:"@@"`
		On      *Expr       `parser:"( 'ON' @@"`
		Using   []Identifier `parser:"| 'USING' '(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')' )?"`
	}

	// TableRef is a relation in FROM: a table, a function call, a subquery or a
	// parenthesised join, with an optional alias.
	TableRef struct {
		Lateral  bool        `parser:"@'LATERAL'?"`
		Subquery *SelectStmt `parser:"( '(' @@ ')'"`
		Nested   *FromItem   `parser:"| '(' @@ ')'"`
		Func     *FuncCall   `parser:"| @@"`
		Table    *RangeVar   `parser:"| @@ )"`
		Alias    *Alias      `parser:"@@?"`
	}

	RangeVar struct {
		Only bool           `parser:"@'ONLY'?"`
		Name *QualifiedName `parser:"@@"`
	}

	Alias struct {
		Name    Identifier   `parser:"( 'AS' @(Ident | QuotedIdent | Keyword) | @(Ident | QuotedIdent) )"`
		Columns []Identifier `parser:"('(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')')?"`
	}

	NamedWindow struct {
		Name Identifier `parser:"@(Ident | QuotedIdent) 'AS' '('"`
		Def  *WindowDef `parser:"@@? ')'"`
	}

	LimitClause struct {
		All   bool  `parser:"'LIMIT' ( @'ALL'"`
		Count *Expr `parser:"| @@ )"`
	}

	OffsetClause struct {
		Count *Expr `parser:"'OFFSET' @@"`
		Rows  Word  `parser:"@('ROWS' | 'ROW')?"`
	}

	LockingClause struct {
		Strength Word             `parser:"'FOR' @('UPDATE' | 'NO' 'KEY' 'UPDATE' | 'SHARE' | 'KEY' 'SHARE')"`
		Of       []*QualifiedName `parser:"('OF' @@ (',' @@)*)?"`
		Wait     Word             `parser:"@('NOWAIT' | 'SKIP' 'LOCKED')?"`
	}

	ValuesClause struct {
		Rows []*ValuesRow `parser:"'VALUES' @@ (',' @@)*"`
	}

	ValuesRow struct {
		Exprs []*Expr `parser:"'(' @@ (',' @@)* ')'"`
	}

	WithClause struct {
		Recursive bool   `parser:"'WITH' @'RECURSIVE'?"`
		CTEs      []*CTE `parser:"@@ (',' @@)*"`
	}

	// CTE is one common table expression. The body may be any preparable statement, which is
	// what makes data-modifying CTEs possible.
	CTE struct {
		Name         Identifier     `parser:"@(Ident | QuotedIdent)"`
		Columns      []Identifier   `parser:"('(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')')?"`
		Materialized Word           `parser:"'AS' @('NOT'? 'MATERIALIZED')?"`
		Query        *PreparableStmt `parser:"'(' @@ ')'"`
	}

	PreparableStmt struct {
		Select *SelectStmt `parser:"@@"`
		Insert *InsertStmt `parser:"| @@"`
		Update *UpdateStmt `parser:"| @@"`
		Delete *DeleteStmt `parser:"| @@"`
	}
)
