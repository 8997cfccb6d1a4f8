package dialect

import (
	"context"
	"strconv"
	"strings"
)

// Dialect names.
const (
	MySQL    = "mysql"
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// ExecQuerier wraps the two database operations.
type ExecQuerier interface {
	// Exec executes a query that does not return records. For example, in SQL, INSERT or UPDATE.
	// It scans the result into the pointer v. For SQL drivers, it is dialect/sql.Result.
	Exec(ctx context.Context, query string, args, v any) error
	// Query executes a query that returns rows, typically a SELECT in SQL.
	// It scans the result into the pointer v. For SQL drivers, it is *dialect/sql.Rows.
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the interface that wraps all necessary operations for executing
// synthesized statements.
type Driver interface {
	ExecQuerier
	// Tx starts and returns a new transaction.
	Tx(context.Context) (Tx, error)
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the dialect name of the driver.
	Dialect() string
}

// Tx wraps the Exec and Query operations in transaction.
type Tx interface {
	ExecQuerier
	Commit() error
	Rollback() error
}

// Normalize maps a database/sql driver name to its dialect name.
// Unknown names are returned lower-cased.
func Normalize(name string) string {
	switch n := strings.ToLower(name); {
	case strings.HasPrefix(n, "sqlite"):
		return SQLite
	case n == "pgx" || strings.HasPrefix(n, "postgres"):
		return Postgres
	case strings.HasPrefix(n, MySQL):
		return MySQL
	default:
		return n
	}
}

// Placeholder returns the bind marker for the n-th (1-based) argument.
func Placeholder(d string, n int) string {
	if Normalize(d) == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// BoolAsInt reports whether boolean values are compared as 1/0 in the
// given dialect. MySQL stores BOOL as TINYINT(1) and BIT, SQLite stores
// booleans as integers.
func BoolAsInt(d string) bool {
	switch Normalize(d) {
	case MySQL, SQLite:
		return true
	default:
		return false
	}
}
