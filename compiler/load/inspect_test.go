package load

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/syssam/logicaldelete/dialect/sql"
	"github.com/syssam/logicaldelete/schema/field"
)

func sqliteFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.db")
	drv, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer drv.Close()
	for _, stmt := range []string{
		"create table tb (id integer primary key, del_flag integer not null default 0, ts_1 varchar(20), ts_2 blob)",
		"create table audit (msg text)",
	} {
		_, err := drv.DB().Exec(stmt)
		require.NoError(t, err)
	}
	return path
}

func TestInspect(t *testing.T) {
	ctx := context.Background()
	path := sqliteFile(t)
	drv, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer drv.Close()

	tables, err := Inspect(ctx, drv)
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, "audit", tables[0].Name)
	assert.False(t, tables[0].HasPrimaryKey())

	tb := tables[1]
	assert.Equal(t, "tb", tb.Name)
	assert.Equal(t, []string{"id"}, tb.PrimaryKey)
	assert.Equal(t, []string{"id", "del_flag", "ts_1", "ts_2"}, tb.ColumnNames())
	for name, want := range map[string]field.Category{
		"id":       field.Numeric,
		"del_flag": field.Numeric,
		"ts_1":     field.String,
		"ts_2":     field.Unsupported,
	} {
		c, ok := tb.Column(name)
		require.True(t, ok, name)
		assert.Equal(t, want, c.Category, name)
	}
	c, _ := tb.Column("ts_1")
	assert.True(t, c.Nullable)

	t.Run("Names", func(t *testing.T) {
		tables, err := Inspect(ctx, drv, "tb")
		require.NoError(t, err)
		require.Len(t, tables, 1)
		assert.Equal(t, "tb", tables[0].Name)
	})
}

func TestConfig_LoadTables(t *testing.T) {
	ctx := context.Background()
	t.Run("DSN", func(t *testing.T) {
		c := &Config{Dialect: "sqlite", DSN: sqliteFile(t), Only: true, Tables: []TableConfig{{Name: "tb"}}}
		tables, err := c.LoadTables(ctx)
		require.NoError(t, err)
		require.Len(t, tables, 1)
		assert.Equal(t, "tb", tables[0].Name)
	})

	t.Run("SchemaFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "schema.yaml")
		require.NoError(t, os.WriteFile(path, []byte(schemaYAML), 0o644))
		tables, err := (&Config{Schema: path}).LoadTables(ctx)
		require.NoError(t, err)
		require.Len(t, tables, 1)

		_, err = (&Config{Schema: path, Only: true, Tables: []TableConfig{{Name: "missing"}}}).LoadTables(ctx)
		assert.ErrorContains(t, err, `table "missing" not found`)
	})

	t.Run("NoSource", func(t *testing.T) {
		_, err := (&Config{}).LoadTables(ctx)
		assert.Error(t, err)
	})
}
