package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/logicaldelete/compiler/gen"
	"github.com/syssam/logicaldelete/schema"
)

// genExample generates the example and criteria types of a table.
func genExample(h gen.GeneratorHelper, f *jen.File, t *schema.Table, n names) {
	pkg := h.SQLPkg()

	f.Commentf("%s builds the dynamic where clause of %s by-example methods.", n.Example, t.Name)
	f.Type().Id(n.Example).Struct(jen.Op("*").Qual(pkg, "Example"))

	f.Commentf("New%s returns an empty example.", n.Example)
	f.Func().Id("New" + n.Example).Params().Op("*").Id(n.Example).Block(
		jen.Return(jen.Op("&").Id(n.Example).Values(jen.Dict{
			jen.Id("Example"): jen.Qual(pkg, "NewExample").Call(),
		})),
	)

	f.Comment("CreateCriteria returns a new criteria group, attached when the example has none.")
	f.Func().Params(jen.Id("e").Op("*").Id(n.Example)).Id("CreateCriteria").Params().Op("*").Id(n.Criteria).Block(
		jen.Return(jen.Op("&").Id(n.Criteria).Values(jen.Dict{
			jen.Id("Criteria"): jen.Id("e").Dot("Example").Dot("CreateCriteria").Call(),
		})),
	)

	f.Comment("Or attaches and returns a new criteria group, ORed with the others.")
	f.Func().Params(jen.Id("e").Op("*").Id(n.Example)).Id("Or").Params().Op("*").Id(n.Criteria).Block(
		jen.Return(jen.Op("&").Id(n.Criteria).Values(jen.Dict{
			jen.Id("Criteria"): jen.Id("e").Dot("Example").Dot("Or").Call(),
		})),
	)

	f.Func().Params(jen.Id("e").Op("*").Id(n.Example)).Id("sqlExample").Params().Op("*").Qual(pkg, "Example").Block(
		jen.If(jen.Id("e").Op("==").Nil()).Block(jen.Return(jen.Nil())),
		jen.Return(jen.Id("e").Dot("Example")),
	)

	f.Commentf("%s is a group of ANDed conditions of %s.", n.Criteria, t.Name)
	f.Type().Id(n.Criteria).Struct(jen.Op("*").Qual(pkg, "Criteria"))

	for _, c := range t.Columns {
		genColumnCriteria(pkg, f, n, c)
	}
	for _, op := range t.OperationsOf(schema.TargetCriteria) {
		if op.Condition == nil {
			continue
		}
		f.Commentf("%s adds the condition %s.", op.Method.Name, op.Condition)
		f.Func().Params(jen.Id("c").Op("*").Id(n.Criteria)).Id(op.Method.Name).Params().Op("*").Id(n.Criteria).Block(
			jen.Id("c").Dot("AndCondition").Call(jen.Qual(pkg, "Cond").Values(condDict(pkg, *op.Condition))),
			jen.Return(jen.Id("c")),
		)
	}
}

// genColumnCriteria generates the And<Column>... methods of a column.
func genColumnCriteria(pkg string, f *jen.File, n names, c *schema.Column) {
	col := gen.Pascal(c.Name)
	recv := jen.Id("c").Op("*").Id(n.Criteria)
	where := func(method string, params []jen.Code, pred jen.Code) {
		f.Func().Params(recv).Id("And"+col+method).Params(params...).Op("*").Id(n.Criteria).Block(
			jen.Id("c").Dot("Where").Call(pred),
			jen.Return(jen.Id("c")),
		)
	}
	v := func() []jen.Code { return []jen.Code{jen.Id("v").Add(baseType(c))} }

	f.Commentf("And%sEqualTo adds the condition %s = v.", col, c.Name)
	where("EqualTo", v(), jen.Qual(pkg, "FieldEQ").Call(jen.Lit(c.Name), jen.Id("v")))
	where("NotEqualTo", v(), jen.Qual(pkg, "FieldNEQ").Call(jen.Lit(c.Name), jen.Id("v")))
	where("In", []jen.Code{jen.Id("vs").Op("...").Add(baseType(c))},
		jen.Qual(pkg, "FieldIn").Call(jen.Lit(c.Name), jen.Id("vs").Op("...")))
	where("IsNull", nil, jen.Qual(pkg, "FieldIsNull").Call(jen.Lit(c.Name)))
	where("IsNotNull", nil, jen.Qual(pkg, "FieldNotNull").Call(jen.Lit(c.Name)))
	switch c.GoType() {
	case "int64", "float64", "time.Time":
		where("GreaterThan", v(), jen.Qual(pkg, "FieldGT").Call(jen.Lit(c.Name), jen.Id("v")))
		where("LessThan", v(), jen.Qual(pkg, "FieldLT").Call(jen.Lit(c.Name), jen.Id("v")))
	case "string":
		where("Like", []jen.Code{jen.Id("pattern").String()},
			jen.Qual(pkg, "FieldLike").Call(jen.Lit(c.Name), jen.Id("pattern")))
	}
}
