package sql

import (
	"context"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/logicaldelete/compiler/gen"
	"github.com/syssam/logicaldelete/schema"
)

// Generate is a convenience function running a generator with the mapper
// emitter over the given tables.
//
// Example:
//
//	res, err := sql.Generate(ctx, cfg, tables)
func Generate(ctx context.Context, cfg *gen.Config, tables []*schema.Table) (*gen.Result, error) {
	generator := gen.NewGenerator(cfg)
	generator.WithEmitter(NewDialect(generator))
	return generator.Generate(ctx, tables)
}

// Dialect implements gen.Emitter for SQL mappers.
type Dialect struct {
	helper gen.GeneratorHelper
}

// NewDialect creates a new SQL mapper emitter.
func NewDialect(helper gen.GeneratorHelper) *Dialect {
	return &Dialect{helper: helper}
}

// Name returns the emitter name.
func (d *Dialect) Name() string { return "sql" }

// FileName returns the generated file name of t.
func (d *Dialect) FileName(t *schema.Table) string {
	return strings.ToLower(t.Name) + "_mapper.go"
}

// GenTable generates the mapper file of t.
func (d *Dialect) GenTable(t *schema.Table, ec *gen.EffectiveConfig) *jen.File {
	return genMapperFile(d.helper, t, ec)
}

var _ gen.Emitter = (*Dialect)(nil)
