// Package session executes synthesized statements against a database.
//
// Generated mappers delegate to a Session; it can also run the operations
// of a schema.Table directly:
//
//	drv, err := sql.Open("sqlite", "file:app.db")
//	if err != nil {
//		return err
//	}
//	s := session.New(drv)
//	n, err := s.InvokeByID(ctx, table, "deleteByPrimaryKey", sql.Args{
//		Values: map[string]any{"id": 2},
//	})
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/syssam/logicaldelete"
	"github.com/syssam/logicaldelete/dialect"
	"github.com/syssam/logicaldelete/dialect/sql"
	"github.com/syssam/logicaldelete/schema"
)

// Row is a result row keyed by column name.
type Row map[string]any

// Session runs statements on a driver or an open transaction.
type Session struct {
	drv     dialect.Driver
	conn    dialect.ExecQuerier
	dialect string
	logger  *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger of the session. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a session over drv.
func New(drv dialect.Driver, opts ...Option) *Session {
	s := &Session{drv: drv, conn: drv, dialect: drv.Dialect(), logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dialect returns the dialect statements are rendered in.
func (s *Session) Dialect() string { return s.dialect }

// Exec runs a row-count statement and returns the number of affected rows.
func (s *Session) Exec(ctx context.Context, id string, stmt *sql.Statement, args sql.Args) (int64, error) {
	query, argv, err := s.render(ctx, id, stmt, args)
	if err != nil {
		return 0, err
	}
	var res sql.Result
	if err := s.conn.Exec(ctx, query, argv, &res); err != nil {
		return 0, s.wrap(stmt, id, logicaldelete.AsConstraintError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, s.wrap(stmt, id, err)
	}
	return n, nil
}

// SelectList runs a select statement and returns all rows.
func (s *Session) SelectList(ctx context.Context, id string, stmt *sql.Statement, args sql.Args) ([]Row, error) {
	query, argv, err := s.render(ctx, id, stmt, args)
	if err != nil {
		return nil, err
	}
	var rows sql.Rows
	if err := s.conn.Query(ctx, query, argv, &rows); err != nil {
		return nil, s.wrap(stmt, id, err)
	}
	defer rows.Close()
	list, err := scanRows(rows)
	if err != nil {
		return nil, s.wrap(stmt, id, err)
	}
	return list, nil
}

// SelectOne runs a select statement expected to match at most one row.
// It returns a *logicaldelete.NotFoundError when nothing matches and a
// *logicaldelete.NotSingularError when more than one row does.
func (s *Session) SelectOne(ctx context.Context, id string, stmt *sql.Statement, args sql.Args) (Row, error) {
	list, err := s.SelectList(ctx, id, stmt, args)
	if err != nil {
		return nil, err
	}
	switch len(list) {
	case 1:
		return list[0], nil
	case 0:
		return nil, s.wrap(stmt, id, logicaldelete.NewNotFoundError(stmt.Table, key(args)))
	default:
		return nil, s.wrap(stmt, id, logicaldelete.NewNotSingularError(stmt.Table, len(list)))
	}
}

// Count runs a count statement.
func (s *Session) Count(ctx context.Context, id string, stmt *sql.Statement, args sql.Args) (int64, error) {
	query, argv, err := s.render(ctx, id, stmt, args)
	if err != nil {
		return 0, err
	}
	var rows sql.Rows
	if err := s.conn.Query(ctx, query, argv, &rows); err != nil {
		return 0, s.wrap(stmt, id, err)
	}
	defer rows.Close()
	var n int64
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, s.wrap(stmt, id, err)
		}
		return 0, s.wrap(stmt, id, fmt.Errorf("count returned no rows"))
	}
	if err := rows.Scan(&n); err != nil {
		return 0, s.wrap(stmt, id, err)
	}
	return n, nil
}

// Invoke runs a mapper operation, dispatching on its return kind:
// row-count and count operations return int64, entity operations return
// Row and list operations return []Row.
func (s *Session) Invoke(ctx context.Context, op *schema.Operation, args sql.Args) (any, error) {
	if op == nil {
		return nil, logicaldelete.ErrUnknownOperation
	}
	if op.Target != schema.TargetMapper || op.Statement == nil {
		return nil, logicaldelete.NewOperationError("", op.ID, logicaldelete.ErrUnknownOperation)
	}
	switch op.Method.Returns {
	case schema.ReturnRowCount:
		return s.Exec(ctx, op.ID, op.Statement, args)
	case schema.ReturnEntity:
		return s.SelectOne(ctx, op.ID, op.Statement, args)
	case schema.ReturnList:
		return s.SelectList(ctx, op.ID, op.Statement, args)
	case schema.ReturnCount:
		return s.Count(ctx, op.ID, op.Statement, args)
	default:
		return nil, logicaldelete.NewOperationError(op.Statement.Table, op.ID, logicaldelete.ErrUnknownOperation)
	}
}

// InvokeByID runs the operation of t with the given id.
func (s *Session) InvokeByID(ctx context.Context, t *schema.Table, id string, args sql.Args) (any, error) {
	op, ok := t.Operation(id)
	if !ok {
		return nil, logicaldelete.NewOperationError(t.Name, id, logicaldelete.ErrUnknownOperation)
	}
	return s.Invoke(ctx, op, args)
}

// WithTx runs fn in a transaction. The transaction is rolled back when fn
// returns an error or panics, and committed otherwise.
func (s *Session) WithTx(ctx context.Context, fn func(*Session) error) error {
	tx, err := s.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("logicaldelete: starting a transaction: %w", err)
	}
	txs := &Session{drv: s.drv, conn: tx, dialect: s.dialect, logger: s.logger}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(txs); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("logicaldelete: committing transaction: %w", err)
	}
	return nil
}

func (s *Session) render(ctx context.Context, id string, stmt *sql.Statement, args sql.Args) (string, []any, error) {
	if stmt == nil {
		return "", nil, logicaldelete.ErrUnknownOperation
	}
	query, argv, err := stmt.Render(s.dialect, args)
	if err != nil {
		return "", nil, s.wrap(stmt, id, err)
	}
	s.logger.DebugContext(ctx, "invoke", "table", stmt.Table, "op", id, "query", query)
	return query, argv, nil
}

func (s *Session) wrap(stmt *sql.Statement, id string, err error) error {
	return logicaldelete.NewOperationError(stmt.Table, id, err)
}

// key returns the value of a single-parameter lookup, or nil.
func key(args sql.Args) any {
	if len(args.Values) != 1 {
		return nil
	}
	for _, v := range args.Values {
		return v
	}
	return nil
}

func scanRows(rows sql.Rows) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var list []Row
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		row := make(Row, len(columns))
		for i, c := range columns {
			row[c] = values[i]
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
