package logicaldelete

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for runtime operations.
var (
	// ErrNotFound is returned when a single-row read matches no row.
	ErrNotFound = errors.New("logicaldelete: row not found")

	// ErrNotSingular is returned when a single-row read matches more than one row.
	ErrNotSingular = errors.New("logicaldelete: row not singular")

	// ErrUnknownOperation is returned when an operation id is not part of
	// the table's operation set.
	ErrUnknownOperation = errors.New("logicaldelete: unknown operation")
)

// NotFoundError represents an absent row.
type NotFoundError struct {
	table string
	key   any // Optional: the primary key that was searched for
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	if e.key != nil {
		return fmt.Sprintf("logicaldelete: %s not found (key=%v)", e.table, e.key)
	}
	return fmt.Sprintf("logicaldelete: %s not found", e.table)
}

// Is reports whether the target error matches NotFoundError.
func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

// Table returns the table name.
func (e *NotFoundError) Table() string { return e.table }

// Key returns the searched primary key, if available.
func (e *NotFoundError) Key() any { return e.key }

// NewNotFoundError returns a new NotFoundError for the given table.
func NewNotFoundError(table string, key any) *NotFoundError {
	return &NotFoundError{table: table, key: key}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrNotFound)
}

// NotSingularError represents a single-row read that returned several rows.
type NotSingularError struct {
	table string
	count int
}

// Error returns the error string.
func (e *NotSingularError) Error() string {
	return fmt.Sprintf("logicaldelete: %s not singular (got %d rows, expected 1)", e.table, e.count)
}

// Is reports whether the target error matches NotSingularError.
func (e *NotSingularError) Is(err error) bool {
	return err == ErrNotSingular
}

// Count returns the number of rows read.
func (e *NotSingularError) Count() int { return e.count }

// NewNotSingularError returns a new NotSingularError.
func NewNotSingularError(table string, count int) *NotSingularError {
	return &NotSingularError{table: table, count: count}
}

// IsNotSingular returns true if the error is a NotSingularError.
func IsNotSingular(err error) bool {
	if err == nil {
		return false
	}
	var e *NotSingularError
	return errors.As(err, &e) || errors.Is(err, ErrNotSingular)
}

// ConstraintError represents a database constraint violation.
type ConstraintError struct {
	msg  string
	wrap error
}

// Error returns the error string.
func (e ConstraintError) Error() string {
	return fmt.Sprintf("logicaldelete: constraint failed: %s", e.msg)
}

// Unwrap returns the underlying error.
func (e ConstraintError) Unwrap() error {
	return e.wrap
}

// NewConstraintError returns a new ConstraintError with the given message.
func NewConstraintError(msg string, wrap error) error {
	return ConstraintError{msg: msg, wrap: wrap}
}

// IsConstraintError returns true if the error is a ConstraintError.
func IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	var e ConstraintError
	return errors.As(err, &e)
}

// constraintMarkers are the driver message fragments of constraint failures.
var constraintMarkers = []string{
	"constraint failed",              // sqlite
	"violates",                       // postgres: unique, foreign key, not-null, check
	"duplicate entry",                // mysql
	"cannot be null",                 // mysql
	"a foreign key constraint fails", // mysql
}

// AsConstraintError wraps err in a ConstraintError when its message is a
// known constraint failure. Other errors are returned unchanged.
func AsConstraintError(err error) error {
	if err == nil || IsConstraintError(err) {
		return err
	}
	msg := strings.ToLower(err.Error())
	for _, m := range constraintMarkers {
		if strings.Contains(msg, m) {
			return NewConstraintError(err.Error(), err)
		}
	}
	return err
}

// OperationError wraps an execution error with the operation context.
type OperationError struct {
	Table string // Table the operation belongs to
	Op    string // Operation id, e.g. "deleteByPrimaryKey"
	Err   error  // Underlying error
}

// Error returns the error string.
func (e *OperationError) Error() string {
	return fmt.Sprintf("logicaldelete: %s.%s: %v", e.Table, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewOperationError returns a new OperationError.
func NewOperationError(table, op string, err error) *OperationError {
	return &OperationError{Table: table, Op: op, Err: err}
}

// IsOperationError returns true if the error is an OperationError.
func IsOperationError(err error) bool {
	if err == nil {
		return false
	}
	var e *OperationError
	return errors.As(err, &e)
}
