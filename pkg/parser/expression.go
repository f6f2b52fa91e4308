package parser

import "github.com/alecthomas/participle/v2/lexer"

type (
	// Expr is any value expression. Precedence levels follow PostgreSQL (lowest to highest):
	//  1. OR
	//  2. AND
	//  3. NOT
	//  4. IS [NOT] NULL / TRUE / FALSE / UNKNOWN / DISTINCT FROM
	//  5. Comparison (=, <>, <, >, <=, >=), optionally quantified with ANY / SOME / ALL
	//  6. [NOT] BETWEEN, [NOT] IN, [NOT] LIKE / ILIKE
	//  7. Any other operator (||, ->, ->>, @>, ~, ...)
	//  8. Addition / subtraction
	//  9. Multiplication / division / modulo
	//  10. Exponentiation (^)
	//  11. Unary + / -
	//  12. Postfix: ::type casts, [subscripts], COLLATE
	//  13. Primary (literals, column references, function calls, parentheses, ...)
	//
	// Parentheses are kept as ParenExpr nodes, so a tree never needs extra parentheses to be
	// written back out faithfully.
	Expr struct {
		Pos lexer.Position

		Left *AndExpr   `parser:"@@"`
		Rest []*AndExpr `parser:"('OR' @@)*"`
	}

	AndExpr struct {
		Left *NotExpr   `parser:"@@"`
		Rest []*NotExpr `parser:"('AND' @@)*"`
	}

	NotExpr struct {
		Not *NotExpr `parser:"'NOT' @@"`
		Is  *IsExpr  `parser:"| @@"`
	}

	IsExpr struct {
		Left  *CompExpr `parser:"@@"`
		Tests []*IsTest `parser:"@@*"`
	}

	IsTest struct {
		Not          bool      `parser:"'IS' @'NOT'?"`
		Null         bool      `parser:"( @'NULL'"`
		True         bool      `parser:"| @'TRUE'"`
		False        bool      `parser:"| @'FALSE'"`
		Unknown      bool      `parser:"| @'UNKNOWN'"`
		DistinctFrom *CompExpr `parser:"| 'DISTINCT' 'FROM' @@ )"`
	}

	CompExpr struct {
		Left  *PredExpr `parser:"@@"`
		Op    CompOp    `parser:"( @('<>' | '!=' | '<=' | '>=' | '=' | '<' | '>')"`
		Quant *Quantified `parser:"  ( @@"`
		Right *PredExpr `parser:"  | @@ ) )?"`
	}

	// Quantified is the right hand side of `x op ANY (...)`.
	Quantified struct {
		Kind Word        `parser:"@('ANY' | 'SOME' | 'ALL') '('"`
		Sub  *SelectStmt `parser:"( @@"`
		Expr *Expr       `parser:"| @@ ) ')'"`
	}

	PredExpr struct {
		Left *OpExpr   `parser:"@@"`
		Rest *PredRest `parser:"@@?"`
	}

	PredRest struct {
		Not     bool         `parser:"@'NOT'?"`
		Between *BetweenRest `parser:"( @@"`
		In      *InRest      `parser:"| @@"`
		Like    *LikeRest    `parser:"| @@ )"`
	}

	BetweenRest struct {
		Symmetric bool    `parser:"'BETWEEN' @'SYMMETRIC'?"`
		Low       *OpExpr `parser:"@@"`
		High      *OpExpr `parser:"'AND' @@"`
	}

	InRest struct {
		Sub  *SelectStmt `parser:"'IN' '(' ( @@"`
		List []*Expr     `parser:"| @@ (',' @@)* ) ')'"`
	}

	LikeRest struct {
		Op      Word    `parser:"@('LIKE' | 'ILIKE')"`
		Pattern *OpExpr `parser:"@@"`
		Escape  *OpExpr `parser:"('ESCAPE' @@)?"`
	}

	OpExpr struct {
		Left *AddExpr `parser:"@@"`
		Rest []*OpRest `parser:"@@*"`
	}

	OpRest struct {
		Op    string   `parser:"@('||' | '->>' | '->' | '#>>' | '#>' | '@>' | '<@' | '<<' | '>>' | '!~~*' | '!~~' | '~~*' | '~~' | '!~*' | '!~' | '~*' | '~' | '&' | '|' | '#')"`
		Right *AddExpr `parser:"@@"`
	}

	AddExpr struct {
		Left *MulExpr  `parser:"@@"`
		Rest []*AddRest `parser:"@@*"`
	}

	AddRest struct {
		Op    string   `parser:"@('+' | '-')"`
		Right *MulExpr `parser:"@@"`
	}

	MulExpr struct {
		Left *ExpExpr  `parser:"@@"`
		Rest []*MulRest `parser:"@@*"`
	}

	MulRest struct {
		Op    string   `parser:"@('*' | '/' | '%')"`
		Right *ExpExpr `parser:"@@"`
	}

	ExpExpr struct {
		Left *UnaryExpr   `parser:"@@"`
		Rest []*UnaryExpr `parser:"('^' @@)*"`
	}

	UnaryExpr struct {
		Ops     []string     `parser:"@('-' | '+')*"`
		Operand *PostfixExpr `parser:"@@"`
	}

	PostfixExpr struct {
		Primary *Primary     `parser:"@@"`
		Ops     []*PostfixOp `parser:"@@*"`
	}

	PostfixOp struct {
		Cast      *TypeName      `parser:"'::' @@"`
		Subscript *Subscript     `parser:"| @@"`
		Collate   *QualifiedName `parser:"| 'COLLATE' @@"`
	}

	// Subscript is an array subscript or slice: a[1], a[1:2], a[:2].
	Subscript struct {
		Lower *Expr `parser:"'[' @@?"`
		Slice bool  `parser:"@':'?"`
		Upper *Expr `parser:"@@? ']'"`
	}

	// Primary is the highest precedence expression. Alternatives sharing a prefix are ordered
	// so that the longer form is tried first.
	Primary struct {
		Exists   *ExistsExpr   `parser:"@@"`
		Paren    *ParenExpr    `parser:"| @@"`
		Literal  *Literal      `parser:"| @@"`
		Param    *string       `parser:"| @Param"`
		Default  bool          `parser:"| @'DEFAULT'"`
		Interval *IntervalExpr `parser:"| @@"`
		Cast     *CastExpr     `parser:"| @@"`
		Case     *CaseExpr     `parser:"| @@"`
		Array    *ArrayExpr    `parser:"| @@"`
		Row      *RowExpr      `parser:"| @@"`
		Extract  *ExtractExpr  `parser:"| @@"`
		Func     *FuncCall     `parser:"| @@"`
		Column   *ColumnRef    `parser:"| @@"`
	}

	// ParenExpr is a parenthesised scalar subquery, expression, or row constructor when it
	// holds more than one expression.
	ParenExpr struct {
		Sub   *SelectStmt `parser:"'(' ( @@"`
		Exprs []*Expr     `parser:"| @@ (',' @@)* ) ')'"`
	}

	ExistsExpr struct {
		Sub *SelectStmt `parser:"'EXISTS' '(' @@ ')'"`
	}

	Literal struct {
		Number *string        `parser:"@Number"`
		String *StringLiteral `parser:"| @String"`
		Dollar *string        `parser:"| @DollarString"`
		True   bool           `parser:"| @'TRUE'"`
		False  bool           `parser:"| @'FALSE'"`
		Null   bool           `parser:"| @'NULL'"`
	}

	IntervalExpr struct {
		Value StringLiteral `parser:"'INTERVAL' @String"`
	}

	CastExpr struct {
		Expr *Expr     `parser:"'CAST' '(' @@"`
		Type *TypeName `parser:"'AS' @@ ')'"`
	}

	CaseExpr struct {
		Arg   *Expr       `parser:"'CASE' @@?"`
		Whens []*CaseWhen `parser:"@@+"`
		Else  *Expr       `parser:"('ELSE' @@)? 'END'"`
	}

	CaseWhen struct {
		Cond   *Expr `parser:"'WHEN' @@"`
		Result *Expr `parser:"'THEN' @@"`
	}

	ArrayExpr struct {
		Sub *SelectStmt `parser:"'ARRAY' ( '(' @@ ')'"`
		Lit *ArrayLit   `parser:"| @@ )"`
	}

	ArrayLit struct {
		Open  bool         `parser:"@'['"`
		Elems []*ArrayElem `parser:"(@@ (',' @@)*)? ']'"`
	}

	ArrayElem struct {
		Nested *ArrayLit `parser:"@@"`
		Expr   *Expr     `parser:"| @@"`
	}

	RowExpr struct {
		Open bool    `parser:"'ROW' @'('"`
		Args []*Expr `parser:"(@@ (',' @@)*)? ')'"`
	}

	ExtractExpr struct {
		Field Identifier `parser:"'EXTRACT' '(' @(Ident | QuotedIdent)"`
		From  *Expr      `parser:"'FROM' @@ ')'"`
	}

	FuncCall struct {
		Name     *QualifiedName `parser:"@@ '('"`
		Star     bool           `parser:"( @'*'"`
		Distinct bool           `parser:"| @'DISTINCT'?"`
		Args     []*Expr        `parser:"  @@ (',' @@)*"`
		OrderBy  []*SortBy      `parser:"  ('ORDER' 'BY' @@ (',' @@)*)? )? ')'"`
		Filter   *Expr          `parser:"('FILTER' '(' 'WHERE' @@ ')')?"`
		Over     *OverClause    `parser:"('OVER' @@)?"`
	}

	// OverClause references a named window or defines one inline.
	OverClause struct {
		Name  *Identifier `parser:"@(Ident | QuotedIdent)"`
		Paren bool        `parser:"| ( @'('"`
		Def   *WindowDef  `parser:"  @@? ')' )"`
	}

	WindowDef struct {
		PartitionBy []*Expr      `parser:"('PARTITION' 'BY' @@ (',' @@)*)?"`
		OrderBy     []*SortBy    `parser:"('ORDER' 'BY' @@ (',' @@)*)?"`
		Frame       *FrameClause `parser:"@@?"`
	}

	FrameClause struct {
		Mode    Word        `parser:"@('ROWS' | 'RANGE' | 'GROUPS')"`
		Between bool        `parser:"@'BETWEEN'?"`
		Start   *FrameBound `parser:"@@"`
		End     *FrameBound `parser:"('AND' @@)?"`
	}

	FrameBound struct {
		CurrentRow bool  `parser:"@('CURRENT' 'ROW')"`
		Unbounded  bool  `parser:"| ( @'UNBOUNDED'"`
		Offset     *Expr `parser:"    | @@ )"`
		Direction  Word  `parser:"  @('PRECEDING' | 'FOLLOWING')"`
	}

	SortBy struct {
		Expr  *Expr `parser:"@@"`
		Dir   Word  `parser:"@('ASC' | 'DESC')?"`
		Nulls Word  `parser:"('NULLS' @('FIRST' | 'LAST'))?"`
	}

	// ColumnRef is a possibly qualified column reference, optionally ending in .* (t.*).
	ColumnRef struct {
		Name *QualifiedName `parser:"@@"`
		Star bool           `parser:"('.' @'*')?"`
	}
)
