package emitter

import "fmt"

// GroupKind tags a group with the construct that opened it. The renderer never looks at it;
// it only shows up in event dumps and tests.
type GroupKind uint8

const (
	GroupUnknown GroupKind = iota

	// statements
	SelectStmt
	InsertStmt
	UpdateStmt
	DeleteStmt
	CreateTableStmt
	CreateTableAsStmt
	ViewStmt
	IndexStmt
	CreateSchemaStmt
	CreateTablespaceStmt
	AlterTableStmt
	RenameStmt
	AlterOwnerStmt
	AlterObjectSchemaStmt
	AlterEnumStmt
	DropStmt
	TruncateStmt
	CommentStmt
	LoadStmt
	DoStmt

	// clauses
	WithClause
	CommonTableExpr
	DistinctClause
	TargetList
	ResTarget
	IntoClause
	FromClause
	RangeVar
	RangeSubselect
	RangeFunction
	JoinExpr
	JoinQual
	WhereClause
	GroupClause
	HavingClause
	WindowClause
	WindowDef
	SortClause
	SortBy
	LimitClause
	OffsetClause
	LockingClause
	SetOperation
	ValuesLists
	ColumnList
	InsertSource
	OnConflictClause
	ReturningClause
	SetClause
	UsingClause
	TableElements
	ColumnDef
	Constraint
	IndexElem
	AlterTableCmd
	DefinitionList

	// expressions
	BoolExpr
	NotExpr
	AExpr
	NullTest
	BooleanTest
	InExpr
	BetweenExpr
	LikeExpr
	SubLink
	FuncCall
	FilterClause
	OverClause
	FrameClause
	TypeCast
	TypeName
	CaseExpr
	CaseWhen
	CaseElse
	ArrayExpr
	RowExpr
	ColumnRef
	ParamRef
	AConst
	Indirection
	ExtractExpr
	IntervalExpr
	ParenExpr

	groupKindCount
)

var groupKindNames = [...]string{
	GroupUnknown:          "Unknown",
	SelectStmt:            "SelectStmt",
	InsertStmt:            "InsertStmt",
	UpdateStmt:            "UpdateStmt",
	DeleteStmt:            "DeleteStmt",
	CreateTableStmt:       "CreateTableStmt",
	CreateTableAsStmt:     "CreateTableAsStmt",
	ViewStmt:              "ViewStmt",
	IndexStmt:             "IndexStmt",
	CreateSchemaStmt:      "CreateSchemaStmt",
	CreateTablespaceStmt:  "CreateTablespaceStmt",
	AlterTableStmt:        "AlterTableStmt",
	RenameStmt:            "RenameStmt",
	AlterOwnerStmt:        "AlterOwnerStmt",
	AlterObjectSchemaStmt: "AlterObjectSchemaStmt",
	AlterEnumStmt:         "AlterEnumStmt",
	DropStmt:              "DropStmt",
	TruncateStmt:          "TruncateStmt",
	CommentStmt:           "CommentStmt",
	LoadStmt:              "LoadStmt",
	DoStmt:                "DoStmt",
	WithClause:            "WithClause",
	CommonTableExpr:       "CommonTableExpr",
	DistinctClause:        "DistinctClause",
	TargetList:            "TargetList",
	ResTarget:             "ResTarget",
	IntoClause:            "IntoClause",
	FromClause:            "FromClause",
	RangeVar:              "RangeVar",
	RangeSubselect:        "RangeSubselect",
	RangeFunction:         "RangeFunction",
	JoinExpr:              "JoinExpr",
	JoinQual:              "JoinQual",
	WhereClause:           "WhereClause",
	GroupClause:           "GroupClause",
	HavingClause:          "HavingClause",
	WindowClause:          "WindowClause",
	WindowDef:             "WindowDef",
	SortClause:            "SortClause",
	SortBy:                "SortBy",
	LimitClause:           "LimitClause",
	OffsetClause:          "OffsetClause",
	LockingClause:         "LockingClause",
	SetOperation:          "SetOperation",
	ValuesLists:           "ValuesLists",
	ColumnList:            "ColumnList",
	InsertSource:          "InsertSource",
	OnConflictClause:      "OnConflictClause",
	ReturningClause:       "ReturningClause",
	SetClause:             "SetClause",
	UsingClause:           "UsingClause",
	TableElements:         "TableElements",
	ColumnDef:             "ColumnDef",
	Constraint:            "Constraint",
	IndexElem:             "IndexElem",
	AlterTableCmd:         "AlterTableCmd",
	DefinitionList:        "DefinitionList",
	BoolExpr:              "BoolExpr",
	NotExpr:               "NotExpr",
	AExpr:                 "AExpr",
	NullTest:              "NullTest",
	BooleanTest:           "BooleanTest",
	InExpr:                "InExpr",
	BetweenExpr:           "BetweenExpr",
	LikeExpr:              "LikeExpr",
	SubLink:               "SubLink",
	FuncCall:              "FuncCall",
	FilterClause:          "FilterClause",
	OverClause:            "OverClause",
	FrameClause:           "FrameClause",
	TypeCast:              "TypeCast",
	TypeName:              "TypeName",
	CaseExpr:              "CaseExpr",
	CaseWhen:              "CaseWhen",
	CaseElse:              "CaseElse",
	ArrayExpr:             "ArrayExpr",
	RowExpr:               "RowExpr",
	ColumnRef:             "ColumnRef",
	ParamRef:              "ParamRef",
	AConst:                "AConst",
	Indirection:           "Indirection",
	ExtractExpr:           "ExtractExpr",
	IntervalExpr:          "IntervalExpr",
	ParenExpr:             "ParenExpr",
}

func (g GroupKind) String() string {
	if g < groupKindCount {
		return groupKindNames[g]
	}
	return fmt.Sprintf("GroupKind(%d)", g)
}
