package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/logicaldelete/compiler/gen"
	"github.com/syssam/logicaldelete/schema"
)

// genMapper generates the mapper struct and one method per mapper
// operation.
func genMapper(h gen.GeneratorHelper, f *jen.File, t *schema.Table, n names) {
	f.Commentf("%s runs the statements of table %s.", n.Mapper, t.Name)
	f.Type().Id(n.Mapper).Struct(
		jen.Id("session").Op("*").Qual(h.SessionPkg(), "Session"),
	)

	f.Commentf("New%s returns a mapper running on the given session.", n.Mapper)
	f.Func().Id("New" + n.Mapper).Params(
		jen.Id("s").Op("*").Qual(h.SessionPkg(), "Session"),
	).Op("*").Id(n.Mapper).Block(
		jen.Return(jen.Op("&").Id(n.Mapper).Values(jen.Dict{jen.Id("session"): jen.Id("s")})),
	)

	for _, op := range t.OperationsOf(schema.TargetMapper) {
		if op.Statement != nil {
			genMapperMethod(h, f, t, n, op)
		}
	}
}

// sessionCall maps return kinds to the session method and Go result type.
func sessionCall(h gen.GeneratorHelper, r schema.Return) (string, jen.Code) {
	switch r {
	case schema.ReturnEntity:
		return "SelectOne", jen.Qual(h.SessionPkg(), "Row")
	case schema.ReturnList:
		return "SelectList", jen.Index().Qual(h.SessionPkg(), "Row")
	case schema.ReturnCount:
		return "Count", jen.Int64()
	default:
		return "Exec", jen.Int64()
	}
}

var methodDocs = map[schema.Return]string{
	schema.ReturnRowCount: "%s runs %s and returns the number of affected rows.",
	schema.ReturnEntity:   "%s runs %s and returns the matching row.",
	schema.ReturnList:     "%s runs %s and returns the matching rows.",
	schema.ReturnCount:    "%s runs %s and returns the number of matching rows.",
}

func genMapperMethod(h gen.GeneratorHelper, f *jen.File, t *schema.Table, n names, op *schema.Operation) {
	call, result := sessionCall(h, op.Method.Returns)
	params := []jen.Code{jen.Id("ctx").Qual("context", "Context")}
	args := jen.Dict{}
	values := jen.Dict{}
	for _, p := range op.Method.Params {
		switch p.Kind {
		case schema.ParamRecord:
			params = append(params, jen.Id(p.Name).Op("*").Id(n.Record))
			args[jen.Id("Values")] = jen.Id(p.Name).Dot("values").Call()
		case schema.ParamExample:
			params = append(params, jen.Id(p.Name).Op("*").Id(n.Example))
			args[jen.Id("Example")] = jen.Id(p.Name).Dot("sqlExample").Call()
		default:
			name := paramName(p.Name)
			var typ jen.Code = jen.Any()
			if c, ok := t.Column(p.Name); ok {
				typ = baseType(c)
			}
			params = append(params, jen.Id(name).Add(typ))
			values[jen.Lit(p.Name)] = jen.Id(name)
		}
	}
	if len(values) > 0 {
		args[jen.Id("Values")] = jen.Map(jen.String()).Any().Values(values)
	}

	if doc, ok := methodDocs[op.Method.Returns]; ok {
		f.Commentf(doc, op.Method.Name, op.Statement)
	}
	f.Func().Params(jen.Id("m").Op("*").Id(n.Mapper)).Id(op.Method.Name).Params(params...).Params(result, jen.Error()).Block(
		jen.Return(jen.Id("m").Dot("session").Dot(call).Call(
			jen.Id("ctx"),
			jen.Lit(op.ID),
			jen.Id(n.Statements).Index(jen.Lit(op.ID)),
			jen.Qual(h.SQLPkg(), "Args").Values(args),
		)),
	)
}
