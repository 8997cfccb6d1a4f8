package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/logicaldelete/schema"
)

func opIDs(ops []*schema.Operation) []string {
	ids := make([]string, len(ops))
	for i, op := range ops {
		ids[i] = op.ID
	}
	return ids
}

func TestStandardOperations(t *testing.T) {
	t.Run("WithPrimaryKey", func(t *testing.T) {
		ops := StandardOperations(tbTable())
		assert.Equal(t, []string{
			OpInsert, OpSelectByPrimaryKey, OpSelectByExample, OpCountByExample,
			OpUpdateByPrimaryKey, OpDeleteByPrimaryKey, OpDeleteByExample,
		}, opIDs(ops))

		byID := map[string]*schema.Operation{}
		for _, op := range ops {
			byID[op.ID] = op
		}
		assert.Equal(t, "insert into tb (id, del_flag, ts_1, ts_2, ts_3, ts_4) values (:id, :del_flag, :ts_1, :ts_2, :ts_3, :ts_4)", byID[OpInsert].Statement.String())
		assert.Equal(t, "delete from tb where id = :id", byID[OpDeleteByPrimaryKey].Statement.String())
		assert.Equal(t, schema.ReturnEntity, byID[OpSelectByPrimaryKey].Method.Returns)
		assert.Equal(t, []schema.Param{{Name: "id", Kind: schema.ParamColumn}}, byID[OpDeleteByPrimaryKey].Method.Params)
		assert.Equal(t, "DeleteByExample", byID[OpDeleteByExample].Method.Name)
	})

	t.Run("WithoutPrimaryKey", func(t *testing.T) {
		ops := StandardOperations(schema.NewTable("log", schema.NewColumn("msg", "text")))
		assert.Equal(t, []string{OpInsert, OpSelectByExample, OpCountByExample, OpDeleteByExample}, opIDs(ops))
	})

	t.Run("OnlyPrimaryKeyColumns", func(t *testing.T) {
		ops := StandardOperations(schema.NewTable("tag", schema.NewColumn("id", "int")).SetPrimaryKey("id"))
		assert.NotContains(t, opIDs(ops), OpUpdateByPrimaryKey)
	})
}

func TestAddStandardOperations(t *testing.T) {
	tb := tbTable()
	custom := &schema.Operation{ID: OpSelectByExample, Method: schema.Method{Name: "Custom"}}
	tb.AddOperation(custom)
	AddStandardOperations(tb)
	op, ok := tb.Operation(OpSelectByExample)
	require.True(t, ok)
	assert.Same(t, custom, op)
	assert.Len(t, tb.Operations, 7)
}
