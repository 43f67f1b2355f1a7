package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

// fakeRunner calls fn directly and records how many transactions were opened.
type fakeRunner struct {
	calls int
}

func (f *fakeRunner) RunInTx(ctx context.Context, _ *sql.TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error {
	f.calls++
	return fn(ctx, bun.Tx{})
}

func recordWaits(waits *[]time.Duration) RetryOption {
	return func(c *retryConfig) {
		c.wait = func(_ context.Context, d time.Duration) error {
			*waits = append(*waits, d)
			return nil
		}
	}
}

func TestWithTransactionRetry_SucceedsOnThirdAttempt(t *testing.T) {
	runner := &fakeRunner{}
	var waits []time.Duration
	attempts := 0

	out, err := WithTransactionRetry(context.Background(), runner, func(ctx context.Context, tx bun.Tx) (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("serialization failure")
		}
		return "done", nil
	}, recordWaits(&waits))

	require.NoError(t, err)
	assert.Equal(t, "done", out)
	assert.Equal(t, 3, runner.calls)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, waits)
}

func TestWithTransactionRetry_ReturnsLastError(t *testing.T) {
	runner := &fakeRunner{}
	var waits []time.Duration
	attempts := 0
	errs := []error{errors.New("e1"), errors.New("e2"), errors.New("e3"), errors.New("e4")}

	_, err := WithTransactionRetry(context.Background(), runner, func(ctx context.Context, tx bun.Tx) (int, error) {
		e := errs[attempts]
		attempts++
		return 0, e
	}, WithMaxRetries(3), WithRetryDelay(10*time.Millisecond), recordWaits(&waits))

	assert.Same(t, errs[3], err)
	assert.Equal(t, 4, runner.calls)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 30 * time.Millisecond}, waits)
}

func TestWithTransactionRetry_ZeroRetries(t *testing.T) {
	runner := &fakeRunner{}
	boom := errors.New("boom")

	_, err := WithTransactionRetry(context.Background(), runner, func(ctx context.Context, tx bun.Tx) (int, error) {
		return 0, boom
	}, WithMaxRetries(0))

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, runner.calls)
}

func TestWithTransactionRetry_StopsWhenContextDone(t *testing.T) {
	runner := &fakeRunner{}
	ctx, cancel := context.WithCancel(context.Background())

	_, err := WithTransactionRetry(ctx, runner, func(ctx context.Context, tx bun.Tx) (int, error) {
		cancel()
		return 0, errors.New("fail")
	}, WithRetryDelay(time.Hour))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, runner.calls)
}

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	db, err := Connect(context.Background(), Config{Driver: "sqlite", SQLitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Disconnect(db) })

	_, err = db.ExecContext(context.Background(), `CREATE TABLE notes (id INTEGER PRIMARY KEY AUTOINCREMENT, body TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func countNotes(t *testing.T, db *bun.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRowContext(context.Background(), `SELECT count(*) FROM notes`).Scan(&n))
	return n
}

func insertNote(body string) TxFunc[int64] {
	return func(ctx context.Context, tx bun.Tx) (int64, error) {
		res, err := tx.ExecContext(ctx, `INSERT INTO notes (body) VALUES (?)`, body)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	}
}

func TestExecuteInTransaction_ReturnsResultsInOrder(t *testing.T) {
	db := newTestDB(t)

	ids, err := ExecuteInTransaction(context.Background(), db, insertNote("a"), insertNote("b"), insertNote("c"))

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)
	assert.Equal(t, 3, countNotes(t, db))
}

func TestExecuteInTransaction_RollsBackEverything(t *testing.T) {
	db := newTestDB(t)
	boom := errors.New("boom")
	third := false

	ids, err := ExecuteInTransaction(context.Background(), db,
		insertNote("a"),
		func(ctx context.Context, tx bun.Tx) (int64, error) { return 0, boom },
		func(ctx context.Context, tx bun.Tx) (int64, error) {
			third = true
			return insertNote("c")(ctx, tx)
		},
	)

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, ids)
	assert.False(t, third)
	assert.Equal(t, 0, countNotes(t, db))
}

func TestWithTransaction_Commits(t *testing.T) {
	db := newTestDB(t)

	id, err := WithTransaction(context.Background(), db, insertNote("x"))

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, 1, countNotes(t, db))
}

type migrateNote struct {
	bun.BaseModel `bun:"table:migrate_notes"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Body string `bun:"body,notnull"`
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, db, (*migrateNote)(nil)))
	require.NoError(t, Migrate(ctx, db, (*migrateNote)(nil)))

	_, err := db.NewInsert().Model(&migrateNote{Body: "hi"}).Exec(ctx)
	require.NoError(t, err)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(sql.ErrNoRows))
	assert.True(t, IsNoRows(errors.Join(errors.New("wrap"), sql.ErrNoRows)))
	assert.False(t, IsNoRows(nil))
	assert.False(t, IsNoRows(errors.New("other")))
}
