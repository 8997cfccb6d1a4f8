// Package schema defines the table model exchanged between schema
// introspection, the logical-delete engine and code emission.
//
// A Table carries its introspected Columns and the ordered set of generated
// Operations. Each Operation pairs a method signature with the statement
// template it executes:
//
//	t := schema.NewTable("tb",
//	    schema.NewColumn("id", "bigint"),
//	    schema.NewColumn("del_flag", "smallint"),
//	).SetPrimaryKey("id")
//
//	c, ok := t.Column("DEL_FLAG") // case-insensitive
//
// Operations are keyed by id. AddOperation replaces an operation with the
// same id in place and appends new ones, so repeated synthesis runs produce
// the same operation set.
package schema
