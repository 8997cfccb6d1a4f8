package gen

import (
	"github.com/syssam/logicaldelete/dialect/sql"
	"github.com/syssam/logicaldelete/schema"
)

// Operation ids of the standard CRUD set.
const (
	OpInsert             = "insert"
	OpSelectByPrimaryKey = "selectByPrimaryKey"
	OpSelectByExample    = "selectByExample"
	OpCountByExample     = "countByExample"
	OpUpdateByPrimaryKey = "updateByPrimaryKey"
	OpDeleteByPrimaryKey = "deleteByPrimaryKey"
	OpDeleteByExample    = "deleteByExample"
)

// Operation ids added by synthesis.
const (
	OpSelectNotDeletedByPrimaryKey = "selectNotDeletedByPrimaryKey"
	OpSelectNotDeletedByExample    = "selectNotDeletedByExample"
	OpRestoreByPrimaryKey          = "restoreByPrimaryKey"
	OpAndDeleted                   = "andDeleted"
	OpAndNotDeleted                = "andNotDeleted"
)

// ExampleParam is the name of the example parameter of by-example methods.
const ExampleParam = "example"

// RecordParam is the name of the row parameter of insert and update methods.
const RecordParam = "record"

// StandardOperations returns the plain CRUD operation set of t, with
// physical deletes. Tables without a primary key get no by-primary-key
// operations.
func StandardOperations(t *schema.Table) []*schema.Operation {
	var (
		columns = t.ColumnNames()
		pk      = t.PrimaryKeyColumns()
		ops     []*schema.Operation
	)
	set := make([]sql.Assignment, 0, len(columns))
	for _, c := range columns {
		set = append(set, sql.Assignment{Column: c, Value: sql.Param(c)})
	}
	ops = append(ops, mapperOp(OpInsert, []schema.Param{{Name: RecordParam, Kind: schema.ParamRecord}}, schema.ReturnRowCount,
		&sql.Statement{Kind: sql.KindInsert, Table: t.Name, Set: set},
	))
	if len(pk) > 0 {
		ops = append(ops, mapperOp(OpSelectByPrimaryKey, pkParams(pk), schema.ReturnEntity,
			&sql.Statement{Kind: sql.KindSelect, Table: t.Name, Columns: columns, Where: pkWhere(pk)},
		))
	}
	exampleParams := []schema.Param{{Name: ExampleParam, Kind: schema.ParamExample}}
	ops = append(ops,
		mapperOp(OpSelectByExample, exampleParams, schema.ReturnList,
			&sql.Statement{Kind: sql.KindSelect, Table: t.Name, Columns: columns, ByExample: true},
		),
		mapperOp(OpCountByExample, exampleParams, schema.ReturnCount,
			&sql.Statement{Kind: sql.KindSelect, Table: t.Name, Count: true, ByExample: true},
		),
	)
	if len(pk) > 0 {
		var update []sql.Assignment
		for _, c := range columns {
			if !t.IsPrimaryKey(c) {
				update = append(update, sql.Assignment{Column: c, Value: sql.Param(c)})
			}
		}
		if len(update) > 0 {
			ops = append(ops, mapperOp(OpUpdateByPrimaryKey, []schema.Param{{Name: RecordParam, Kind: schema.ParamRecord}}, schema.ReturnRowCount,
				&sql.Statement{Kind: sql.KindUpdate, Table: t.Name, Set: update, Where: pkWhere(pk)},
			))
		}
		ops = append(ops, mapperOp(OpDeleteByPrimaryKey, pkParams(pk), schema.ReturnRowCount,
			&sql.Statement{Kind: sql.KindDelete, Table: t.Name, Where: pkWhere(pk)},
		))
	}
	ops = append(ops, mapperOp(OpDeleteByExample, exampleParams, schema.ReturnRowCount,
		&sql.Statement{Kind: sql.KindDelete, Table: t.Name, ByExample: true},
	))
	return ops
}

// AddStandardOperations adds the standard operations t does not have yet.
func AddStandardOperations(t *schema.Table) {
	for _, op := range StandardOperations(t) {
		if _, ok := t.Operation(op.ID); !ok {
			t.AddOperation(op)
		}
	}
}

func mapperOp(id string, params []schema.Param, ret schema.Return, stmt *sql.Statement) *schema.Operation {
	return &schema.Operation{
		ID:        id,
		Target:    schema.TargetMapper,
		Method:    schema.Method{Name: MethodName(id), Params: params, Returns: ret},
		Statement: stmt,
	}
}

func pkParams(pk []*schema.Column) []schema.Param {
	ps := make([]schema.Param, len(pk))
	for i, c := range pk {
		ps[i] = schema.Param{Name: c.Name, Kind: schema.ParamColumn}
	}
	return ps
}

func pkWhere(pk []*schema.Column) []sql.Cond {
	cs := make([]sql.Cond, len(pk))
	for i, c := range pk {
		cs[i] = sql.EQ(c.Name, sql.Param(c.Name))
	}
	return cs
}
