package sql

import (
	"strconv"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/logicaldelete/compiler/gen"
	"github.com/syssam/logicaldelete/schema"
	"github.com/syssam/logicaldelete/schema/field"
)

// genMapperFile generates the mapper file ({table}_mapper.go).
func genMapperFile(h gen.GeneratorHelper, t *schema.Table, ec *gen.EffectiveConfig) *jen.File {
	f := h.NewFile(h.Pkg())
	n := tableNames(t)

	genConstants(f, t, ec)
	genRecord(f, t, n)
	genStatements(h, f, t, n)
	genMapper(h, f, t, n)
	genExample(h, f, t, n)
	return f
}

// genConstants generates the delete and un-delete value constants.
func genConstants(f *jen.File, t *schema.Table, ec *gen.EffectiveConfig) {
	if len(t.Constants) == 0 || ec == nil || !ec.Valid() {
		return
	}
	f.Const().DefsFunc(func(g *jen.Group) {
		for _, c := range t.Constants {
			g.Commentf("%s is the %s value of %s.%s.", c.Name, c.Literal, t.Name, ec.Column.Name)
			g.Id(c.Name).Op("=").Add(constValue(ec.Category, c))
		}
	})
}

// constValue returns the Go constant expression of a delete value.
func constValue(cat field.Category, c *schema.Constant) jen.Code {
	switch cat {
	case field.Numeric:
		if n, err := strconv.ParseInt(c.Literal, 10, 64); err == nil {
			return jen.Lit(int(n))
		}
		if v, err := strconv.ParseFloat(c.Literal, 64); err == nil {
			return jen.Lit(v)
		}
		return jen.Lit(c.Literal)
	case field.Boolean:
		return jen.Lit(c.Literal == "true")
	default:
		return jen.Lit(c.Raw)
	}
}

// genRecord generates the record struct and its parameter map.
func genRecord(f *jen.File, t *schema.Table, n names) {
	f.Commentf("%s holds the column values of a %s row.", n.Record, t.Name)
	f.Type().Id(n.Record).StructFunc(func(g *jen.Group) {
		for _, c := range t.Columns {
			g.Id(gen.Pascal(c.Name)).Add(fieldType(c)).Tag(map[string]string{"json": c.Name})
		}
	})

	f.Comment("values returns the named statement parameters of the record.")
	f.Func().Params(jen.Id("r").Op("*").Id(n.Record)).Id("values").Params().Map(jen.String()).Any().Block(
		jen.Return(jen.Map(jen.String()).Any().Values(jen.DictFunc(func(d jen.Dict) {
			for _, c := range t.Columns {
				d[jen.Lit(c.Name)] = jen.Id("r").Dot(gen.Pascal(c.Name))
			}
		}))),
	)
}

// genStatements generates the statement templates keyed by operation id.
func genStatements(h gen.GeneratorHelper, f *jen.File, t *schema.Table, n names) {
	f.Commentf("%s holds the statement templates of %s keyed by operation id.", n.Statements, t.Name)
	f.Var().Id(n.Statements).Op("=").Map(jen.String()).Op("*").Qual(h.SQLPkg(), "Statement").Values(jen.DictFunc(func(d jen.Dict) {
		for _, op := range t.OperationsOf(schema.TargetMapper) {
			if op.Statement != nil {
				d[jen.Lit(op.ID)] = statementValues(h, op.Statement)
			}
		}
	}))
}
