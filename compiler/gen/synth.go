package gen

import (
	"fmt"

	"github.com/syssam/logicaldelete/dialect/sql"
	"github.com/syssam/logicaldelete/schema"
)

// SynthOptions tunes synthesis.
type SynthOptions struct {
	// Restore adds restoreByPrimaryKey.
	Restore bool
}

// Synthesize rewrites and extends the operation set of t for a valid
// effective configuration:
//
//   - deleteByPrimaryKey and deleteByExample become updates setting the
//     delete column to the delete literal; their methods are unchanged
//   - selectNotDeletedByPrimaryKey and selectNotDeletedByExample are added
//     next to the untouched selects, filtering out deleted rows
//   - the criteria methods andDeleted and andNotDeleted are added
//   - the delete and un-delete constants are added
//
// Every step derives its result from the standard operations and the
// configuration only, so running it again yields the same operation set.
func Synthesize(t *schema.Table, ec *EffectiveConfig, opts SynthOptions) error {
	if !ec.Valid() {
		return fmt.Errorf("%w: table %s is %s", ErrInvalidConfig, t.Name, ec.statusString())
	}
	col := ec.Column.Name
	markDeleted := []sql.Assignment{{Column: col, Value: sql.Lit(ec.DeleteLiteral)}}
	notDeleted := sql.NEQ(col, sql.Lit(ec.DeletedCriteria))

	for _, id := range []string{OpDeleteByPrimaryKey, OpDeleteByExample} {
		op, ok := t.Operation(id)
		if !ok || op.Statement == nil {
			continue
		}
		rewritten := op.Clone()
		rewritten.Statement.Kind = sql.KindUpdate
		rewritten.Statement.Set = markDeleted
		t.AddOperation(rewritten)
	}

	for _, v := range []struct{ base, id string }{
		{OpSelectByPrimaryKey, OpSelectNotDeletedByPrimaryKey},
		{OpSelectByExample, OpSelectNotDeletedByExample},
	} {
		base, ok := t.Operation(v.base)
		if !ok || base.Statement == nil {
			continue
		}
		op := base.Clone()
		op.ID = v.id
		op.Method.Name = MethodName(v.id)
		op.Statement.Where = append(op.Statement.Where, notDeleted)
		t.AddOperation(op)
	}

	if opts.Restore && t.HasPrimaryKey() {
		pk := t.PrimaryKeyColumns()
		t.AddOperation(mapperOp(OpRestoreByPrimaryKey, pkParams(pk), schema.ReturnRowCount, &sql.Statement{
			Kind:  sql.KindUpdate,
			Table: t.Name,
			Set:   []sql.Assignment{{Column: col, Value: sql.Lit(ec.UnDeleteLiteral)}},
			Where: pkWhere(pk),
		}))
	}

	for _, v := range []struct{ id, lit string }{
		{OpAndDeleted, ec.DeletedCriteria},
		{OpAndNotDeleted, ec.NotDeletedCriteria},
	} {
		cond := sql.EQ(col, sql.Lit(v.lit))
		t.AddOperation(&schema.Operation{
			ID:        v.id,
			Target:    schema.TargetCriteria,
			Method:    schema.Method{Name: MethodName(v.id), Returns: schema.ReturnSelf},
			Condition: &cond,
		})
	}

	t.AddConstant(&schema.Constant{
		Name:    ConstName(t.Name, pick(ec.Config.DeletedConstName, "", DefaultDeletedConstName)),
		Literal: ec.DeleteLiteral,
		Raw:     ec.Config.DeleteValue,
	})
	t.AddConstant(&schema.Constant{
		Name:    ConstName(t.Name, pick(ec.Config.NotDeletedConstName, "", DefaultNotDeletedConstName)),
		Literal: ec.UnDeleteLiteral,
		Raw:     ec.Config.UnDeleteValue,
	})
	return nil
}

func (ec *EffectiveConfig) statusString() string {
	if ec == nil {
		return "unresolved"
	}
	return ec.Status.String()
}
