// Package sql generates the Go mapper of each processed table.
//
// Usage:
//
//	import (
//	    "github.com/syssam/logicaldelete/compiler/gen"
//	    "github.com/syssam/logicaldelete/compiler/gen/sql"
//	)
//
//	generator := gen.NewGenerator(cfg)
//	generator.WithEmitter(sql.NewDialect(generator))
//	generator.Generate(ctx, tables)
//
// Generated code structure:
//
//	{output}/
//	└── {table}_mapper.go
//	    ├── constants         # <Table>IsDeleted, <Table>NotDeleted
//	    ├── <Table>Record     # column values of insert and update
//	    ├── <Table>Mapper     # one method per mapper operation
//	    ├── <Table>Example    # dynamic where clause of by-example methods
//	    └── <Table>Criteria   # per-column and logical-delete conditions
package sql
