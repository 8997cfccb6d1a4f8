package sql

import (
	"bytes"
	"context"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/syssam/logicaldelete/dialect"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriver_Dialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, dialect.SQLite, OpenDB("sqlite3", db).Dialect())
	assert.Equal(t, dialect.Postgres, OpenDB("pgx", db).Dialect())
	assert.Equal(t, dialect.MySQL, OpenDB("mysql", db).Dialect())
}

func TestDriver_Exec(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	drv := OpenDB(dialect.SQLite, db)

	t.Run("Result", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("update tb set del_flag = 1 where id = ?")).
			WithArgs(2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		var res Result
		require.NoError(t, drv.Exec(context.Background(), "update tb set del_flag = 1 where id = ?", []any{2}, &res))
		n, err := res.RowsAffected()
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("NilResult", func(t *testing.T) {
		mock.ExpectExec("delete from tb").WillReturnResult(sqlmock.NewResult(0, 3))
		require.NoError(t, drv.Exec(context.Background(), "delete from tb", []any{}, nil))
	})

	t.Run("InvalidArgs", func(t *testing.T) {
		err := drv.Exec(context.Background(), "delete from tb", 1, nil)
		assert.ErrorContains(t, err, "expect []any for args")
	})

	t.Run("InvalidResult", func(t *testing.T) {
		err := drv.Exec(context.Background(), "delete from tb", []any{}, new(int))
		assert.ErrorContains(t, err, "expect *sql.Result")
	})
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDriver_Query(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	drv := OpenDB(dialect.SQLite, db)

	mock.ExpectQuery(regexp.QuoteMeta("select id, del_flag from tb where id = ?")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "del_flag"}).AddRow(3, 0))
	rows := &Rows{}
	require.NoError(t, drv.Query(context.Background(), "select id, del_flag from tb where id = ?", []any{3}, rows))
	cols, err := rows.Columns()
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "del_flag"}, cols)
	require.True(t, rows.Next())
	var id, flag int
	require.NoError(t, rows.Scan(&id, &flag))
	assert.Equal(t, 3, id)
	assert.Equal(t, 0, flag)
	require.NoError(t, rows.Close())

	err = drv.Query(context.Background(), "select 1", []any{}, new(int))
	assert.ErrorContains(t, err, "expect *sql.Rows")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDriver_Tx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	drv := OpenDB(dialect.Postgres, db)

	mock.ExpectBegin()
	mock.ExpectExec("update tb").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	tx, err := drv.Tx(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Exec(context.Background(), "update tb set del_flag = 1", []any{}, nil))
	require.NoError(t, tx.Commit())

	mock.ExpectBegin()
	mock.ExpectRollback()
	tx, err = drv.Tx(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())

	t.Run("QueryInTx", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("select id from tb where del_flag <> 1")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectCommit()
		tx, err := drv.Tx(context.Background())
		require.NoError(t, err)
		var rows Rows
		require.NoError(t, tx.Query(context.Background(), "select id from tb where del_flag <> 1", []any{}, &rows))
		require.NoError(t, rows.Close())
		require.NoError(t, tx.Commit())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStatsDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	drv := NewStatsDriver(OpenDB(dialect.SQLite, db), WithLogger(logger), WithSlowThreshold(time.Hour))

	mock.ExpectExec("update tb").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("select id from tb").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec("update tb").WillReturnError(assert.AnError)
	mock.ExpectBegin()
	mock.ExpectExec("update tb").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	require.NoError(t, drv.Exec(ctx, "update tb set del_flag = 1", []any{}, nil))
	rows := &Rows{}
	require.NoError(t, drv.Query(ctx, "select id from tb", []any{}, rows))
	require.NoError(t, rows.Close())
	require.Error(t, drv.Exec(ctx, "update tb set del_flag = 1", []any{}, nil))
	tx, err := drv.Tx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Exec(ctx, "update tb set del_flag = 1", []any{}, nil))
	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())

	s := drv.QueryStats().Snapshot()
	assert.Equal(t, int64(1), s.Queries)
	assert.Equal(t, int64(3), s.Execs)
	assert.Equal(t, int64(1), s.Errors)
	assert.Equal(t, int64(0), s.Slow)
	assert.Contains(t, s.String(), "queries=1 execs=3")
	assert.Contains(t, buf.String(), "update tb set del_flag = 1")

	drv = NewStatsDriver(OpenDB(dialect.SQLite, db), WithLogger(logger), WithSlowThreshold(-1))
	mock.ExpectExec("update tb").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, drv.Exec(ctx, "update tb set del_flag = 1", []any{}, nil))
	assert.Equal(t, int64(1), drv.QueryStats().Snapshot().Slow)
	assert.Contains(t, buf.String(), "slow statement")
}
