package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/logicaldelete/compiler/gen"
	"github.com/syssam/logicaldelete/dialect"
	"github.com/syssam/logicaldelete/schema"
)

// mockHelper implements gen.GeneratorHelper for emitter tests.
type mockHelper struct {
	pkg      string
	dialect  string
	features map[string]bool
}

func newMockHelper() *mockHelper {
	return &mockHelper{pkg: "mapper", dialect: dialect.SQLite, features: map[string]bool{}}
}

func (m *mockHelper) NewFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment(gen.DefaultHeader)
	return f
}
func (m *mockHelper) Pkg() string                     { return m.pkg }
func (m *mockHelper) Dialect() string                 { return m.dialect }
func (m *mockHelper) SQLPkg() string                  { return "github.com/syssam/logicaldelete/dialect/sql" }
func (m *mockHelper) SessionPkg() string              { return "github.com/syssam/logicaldelete/session" }
func (m *mockHelper) FeatureEnabled(name string) bool { return m.features[name] }

// Ensure mockHelper implements gen.GeneratorHelper.
var _ gen.GeneratorHelper = (*mockHelper)(nil)

// createTestTable returns the tb table with its standard operations.
func createTestTable() *schema.Table {
	t := schema.NewTable("tb",
		schema.NewColumn("id", "bigint"),
		schema.NewColumn("del_flag", "tinyint"),
		schema.NewColumn("ts_1", "varchar(32)"),
		schema.NewColumn("ts_2", "blob"),
		schema.NewColumn("ts_3", "datetime"),
	).SetPrimaryKey("id")
	t.Columns[2].Nullable = true
	gen.AddStandardOperations(t)
	return t
}

// synthesize runs validation and synthesis of t with del_flag 1/0.
func synthesize(t *schema.Table, ld gen.LogicalDelete) *gen.EffectiveConfig {
	cfg := gen.MustNewConfig(gen.WithLogicalDelete(ld))
	ec := cfg.Validate(t)
	if ec.Valid() {
		if err := gen.Synthesize(t, ec, gen.SynthOptions{Restore: true}); err != nil {
			panic(err)
		}
	}
	return ec
}

var delFlag = gen.LogicalDelete{Column: "del_flag", DeleteValue: "1", UnDeleteValue: "0"}
