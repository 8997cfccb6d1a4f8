package schema

import (
	"slices"

	"github.com/syssam/logicaldelete/dialect/sql"
)

// Target is the generated construct an operation belongs to.
type Target uint8

const (
	// TargetMapper operations are mapper methods executing a statement.
	TargetMapper Target = iota
	// TargetCriteria operations are builder methods of the criteria
	// construct contributing a condition.
	TargetCriteria
)

func (t Target) String() string {
	if t == TargetCriteria {
		return "criteria"
	}
	return "mapper"
}

// Return is the declared result of a mapper method.
type Return uint8

const (
	// ReturnRowCount is the number of affected rows.
	ReturnRowCount Return = iota
	// ReturnEntity is a single row; absence is reported as not found.
	ReturnEntity
	// ReturnList is all matching rows.
	ReturnList
	// ReturnCount is the value of a count(*) select.
	ReturnCount
	// ReturnSelf is the criteria construct itself, for chaining.
	ReturnSelf
)

var returnNames = [...]string{
	ReturnRowCount: "rowCount",
	ReturnEntity:   "entity",
	ReturnList:     "list",
	ReturnCount:    "count",
	ReturnSelf:     "self",
}

func (r Return) String() string {
	if int(r) < len(returnNames) {
		return returnNames[r]
	}
	return "unknown"
}

// ParamKind tells how a method parameter is supplied.
type ParamKind uint8

const (
	// ParamColumn is a single column value bound by name.
	ParamColumn ParamKind = iota
	// ParamRecord is a full row; every column is bound by name.
	ParamRecord
	// ParamExample is the criteria construct of by-example statements.
	ParamExample
)

// Param is a method parameter.
type Param struct {
	Name string    `msgpack:"name" json:"name"`
	Kind ParamKind `msgpack:"kind" json:"kind"`
}

// Method is the exposed signature of an operation.
type Method struct {
	Name    string  `msgpack:"name" json:"name"`
	Params  []Param `msgpack:"params,omitempty" json:"params,omitempty"`
	Returns Return  `msgpack:"returns" json:"returns"`
}

// Equal reports whether two signatures are identical.
func (m Method) Equal(o Method) bool {
	return m.Name == o.Name && m.Returns == o.Returns && slices.Equal(m.Params, o.Params)
}

// Operation is a generated unit of functionality: a mapper method with its
// statement, or a criteria method with its condition.
type Operation struct {
	ID     string `msgpack:"id" json:"id"`
	Target Target `msgpack:"target" json:"target"`
	Method Method `msgpack:"method" json:"method"`
	// Statement is set on mapper operations.
	Statement *sql.Statement `msgpack:"statement,omitempty" json:"statement,omitempty"`
	// Condition is set on criteria operations.
	Condition *sql.Cond `msgpack:"condition,omitempty" json:"condition,omitempty"`
}

// Clone returns a deep copy of op.
func (op *Operation) Clone() *Operation {
	c := *op
	c.Method.Params = slices.Clone(op.Method.Params)
	c.Statement = op.Statement.Clone()
	if op.Condition != nil {
		cond := *op.Condition
		c.Condition = &cond
	}
	return &c
}

// Equal reports whether two operations are indistinguishable.
func (op *Operation) Equal(o *Operation) bool {
	if op == nil || o == nil {
		return op == o
	}
	if op.ID != o.ID || op.Target != o.Target || !op.Method.Equal(o.Method) || !op.Statement.Equal(o.Statement) {
		return false
	}
	if op.Condition == nil || o.Condition == nil {
		return op.Condition == o.Condition
	}
	return *op.Condition == *o.Condition
}

// Constant is a generated named constant.
type Constant struct {
	Name string `msgpack:"name" json:"name"`
	// Literal is the SQL literal text of the value.
	Literal string `msgpack:"literal" json:"literal"`
	// Raw is the configured value.
	Raw string `msgpack:"raw" json:"raw"`
}
