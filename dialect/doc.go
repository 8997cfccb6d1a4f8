// Package dialect provides the database dialect abstraction used by the
// logical-delete engine.
//
// The engine itself never talks to a database. Dialects matter for two
// things only: how bound parameters are spelled in rendered statements,
// and how boolean literals are compared inside criteria conditions.
//
// # Supported Dialects
//
//   - Postgres: PostgreSQL database
//   - MySQL: MySQL/MariaDB database
//   - SQLite: SQLite database
//
// # Dialect Constants
//
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//	dialect.SQLite   = "sqlite"
//
// # Driver Interface
//
// The Driver interface is implemented by dialect/sql.Driver and is what the
// session package executes synthesized statements against:
//
//	type Driver interface {
//	    ExecQuerier
//	    Tx(ctx context.Context) (Tx, error)
//	    Close() error
//	    Dialect() string
//	}
//
// # Sub-packages
//
//   - dialect/sql: literal formatting, statement templates, the example
//     (criteria) predicate tree and the database/sql driver wrapper
package dialect
