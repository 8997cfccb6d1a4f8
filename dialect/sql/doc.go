// Package sql provides the SQL content rules of the logical-delete engine.
//
// # Literals
//
// FormatLiteral writes a configured raw value as an SQL literal for a column
// of the given type category. Literals are embedded into static statement
// text, never bound as parameters:
//
//	sql.FormatLiteral(field.Numeric, "1")   // 1
//	sql.FormatLiteral(field.String, "it's") // 'it''s'
//	sql.FormatLiteral(field.Boolean, "1")   // true
//
// CriteriaLiteral is the variant used inside criteria conditions; it writes
// booleans as 1/0 for dialects that store them as integers.
//
// # Statements
//
// A Statement is a small, dialect-neutral template of one generated
// operation. Conditions and assignments carry either a named parameter or a
// literal:
//
//	s := &sql.Statement{
//	    Kind:  sql.KindUpdate,
//	    Table: "tb",
//	    Set:   []sql.Assignment{{Column: "del_flag", Value: sql.Lit("1")}},
//	    Where: []sql.Cond{sql.EQ("id", sql.Param("id"))},
//	}
//	query, args, err := s.Render(dialect.SQLite, sql.Args{Values: map[string]any{"id": 2}})
//	// update tb set del_flag = 1 where id = ?  [2]
//
// # Examples
//
// An Example is the criteria construct of by-example operations: a list of
// criteria groups that are ORed together, each holding ANDed conditions:
//
//	ex := sql.NewExample()
//	ex.CreateCriteria().Where(sql.Field[int64]("id").EQ(1))
//	// WHERE ( id = ? )
//
// # Drivers
//
// Driver wraps database/sql for executing rendered statements, and
// StatsDriver adds statement counting and slow statement logging.
package sql
