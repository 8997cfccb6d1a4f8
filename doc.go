// Package logicaldelete holds the runtime errors shared by the generated
// mappers and the session executor.
//
// The generator lives in compiler/gen, the statement model and SQL content
// rules in dialect/sql, and the executor in session.
package logicaldelete
