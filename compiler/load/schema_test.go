package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/logicaldelete/schema"
	"github.com/syssam/logicaldelete/schema/field"
)

const schemaYAML = `
tables:
  - name: tb
    primaryKey: [id]
    columns:
      - {name: id, type: bigint}
      - {name: del_flag, type: tinyint(1)}
      - {name: ts_1, type: varchar(20), nullable: true}
      - {name: ts_2, type: blob}
`

func TestUnmarshalSchema(t *testing.T) {
	tables, err := UnmarshalSchema([]byte(schemaYAML))
	require.NoError(t, err)
	require.Len(t, tables, 1)
	tb := tables[0]
	assert.Equal(t, "tb", tb.Name)
	assert.Equal(t, []string{"id"}, tb.PrimaryKey)
	assert.Equal(t, []string{"id", "del_flag", "ts_1", "ts_2"}, tb.ColumnNames())

	c, ok := tb.Column("ts_1")
	require.True(t, ok)
	assert.True(t, c.Nullable)
	assert.Equal(t, field.String, c.Category)
	c, _ = tb.Column("ts_2")
	assert.Equal(t, field.Unsupported, c.Category)

	t.Run("Errors", func(t *testing.T) {
		for name, in := range map[string]string{
			"NoTableName":  "tables:\n  - columns: [{name: id, type: int}]\n",
			"NoColumnName": "tables:\n  - name: tb\n    columns: [{type: int}]\n",
			"BadPrimary":   "tables:\n  - name: tb\n    primaryKey: [uid]\n    columns: [{name: id, type: int}]\n",
			"Malformed":    "tables: {\n",
		} {
			t.Run(name, func(t *testing.T) {
				_, err := UnmarshalSchema([]byte(in))
				assert.Error(t, err)
			})
		}
	})
}

func TestMarshalSchema(t *testing.T) {
	tb := schema.NewTable("tb", schema.NewColumn("id", "int"), schema.NewColumn("del_flag", "int")).SetPrimaryKey("id")
	b, err := MarshalSchema([]*schema.Table{tb})
	require.NoError(t, err)
	assert.Contains(t, string(b), "primaryKey: [id]")

	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, b, 0o644))
	tables, err := ReadSchema(path)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, tb.ColumnNames(), tables[0].ColumnNames())
	assert.Equal(t, tb.PrimaryKey, tables[0].PrimaryKey)
}
