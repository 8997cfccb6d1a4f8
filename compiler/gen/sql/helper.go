package sql

import (
	"go/token"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/logicaldelete/compiler/gen"
	dsql "github.com/syssam/logicaldelete/dialect/sql"
	"github.com/syssam/logicaldelete/schema"
)

// names holds the generated identifiers of a table.
type names struct {
	Record     string
	Mapper     string
	Example    string
	Criteria   string
	Statements string
}

func tableNames(t *schema.Table) names {
	p := gen.Pascal(t.Name)
	return names{
		Record:     p + "Record",
		Mapper:     p + "Mapper",
		Example:    p + "Example",
		Criteria:   p + "Criteria",
		Statements: gen.Camel(t.Name) + "Statements",
	}
}

// baseType returns the Go type of values of c.
func baseType(c *schema.Column) jen.Code {
	switch t := c.GoType(); t {
	case "time.Time":
		return jen.Qual("time", "Time")
	case "[]byte":
		return jen.Index().Byte()
	case "any":
		return jen.Any()
	default:
		return jen.Id(t)
	}
}

// fieldType returns the record field type of c. Nullable scalar columns
// are pointers.
func fieldType(c *schema.Column) jen.Code {
	if c.Nullable {
		switch c.GoType() {
		case "[]byte", "any":
		default:
			return jen.Op("*").Add(baseType(c))
		}
	}
	return baseType(c)
}

// paramName returns a method parameter name for a column.
func paramName(column string) string {
	n := gen.Camel(column)
	switch {
	case n == "":
		return "v"
	case token.IsKeyword(n), n == "ctx", n == "m":
		return n + "Value"
	}
	return n
}

var kindNames = map[dsql.Kind]string{
	dsql.KindSelect: "KindSelect",
	dsql.KindInsert: "KindInsert",
	dsql.KindUpdate: "KindUpdate",
	dsql.KindDelete: "KindDelete",
}

// statementValues returns the composite literal body of s.
func statementValues(h gen.GeneratorHelper, s *dsql.Statement) jen.Code {
	pkg := h.SQLPkg()
	d := jen.Dict{
		jen.Id("Kind"):  jen.Qual(pkg, kindNames[s.Kind]),
		jen.Id("Table"): jen.Lit(s.Table),
	}
	if len(s.Columns) > 0 {
		d[jen.Id("Columns")] = jen.Index().String().ValuesFunc(func(g *jen.Group) {
			for _, c := range s.Columns {
				g.Lit(c)
			}
		})
	}
	if len(s.Set) > 0 {
		d[jen.Id("Set")] = jen.Index().Qual(pkg, "Assignment").ValuesFunc(func(g *jen.Group) {
			for _, a := range s.Set {
				g.Values(jen.Dict{
					jen.Id("Column"): jen.Lit(a.Column),
					jen.Id("Value"):  valueLit(pkg, a.Value),
				})
			}
		})
	}
	if len(s.Where) > 0 {
		d[jen.Id("Where")] = jen.Index().Qual(pkg, "Cond").ValuesFunc(func(g *jen.Group) {
			for _, c := range s.Where {
				g.Values(condDict(pkg, c))
			}
		})
	}
	if s.ByExample {
		d[jen.Id("ByExample")] = jen.True()
	}
	if s.Count {
		d[jen.Id("Count")] = jen.True()
	}
	return jen.Values(d)
}

func condDict(pkg string, c dsql.Cond) jen.Dict {
	return jen.Dict{
		jen.Id("Column"): jen.Lit(c.Column),
		jen.Id("Op"):     jen.Lit(c.Op),
		jen.Id("Value"):  valueLit(pkg, c.Value),
	}
}

func valueLit(pkg string, v dsql.Value) jen.Code {
	if v.IsParam() {
		return jen.Qual(pkg, "Param").Call(jen.Lit(v.Param))
	}
	return jen.Qual(pkg, "Lit").Call(jen.Lit(v.Literal))
}
