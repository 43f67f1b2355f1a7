package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/uptrace/bun"
)

const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 100 * time.Millisecond
)

// TxRunner is a store able to run a function inside a transaction.
// *bun.DB, bun.Tx and bun.IDB all satisfy it.
type TxRunner interface {
	RunInTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error
}

// TxFunc is a unit of work bound to one transaction.
type TxFunc[R any] func(ctx context.Context, tx bun.Tx) (R, error)

// WithTransaction runs fn in a single transaction on db. Commit and rollback are
// left to the store: a returned error rolls back, a nil error commits.
func WithTransaction[R any](ctx context.Context, db TxRunner, fn TxFunc[R]) (R, error) {
	var out R
	err := db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		r, err := fn(ctx, tx)
		if err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		var zero R
		return zero, err
	}
	return out, nil
}

// ExecuteInTransaction runs ops sequentially on the same transaction and returns
// their results in input order. The first failure rolls back all of them and
// no partial results are returned.
func ExecuteInTransaction[R any](ctx context.Context, db TxRunner, ops ...TxFunc[R]) ([]R, error) {
	return WithTransaction(ctx, db, func(ctx context.Context, tx bun.Tx) ([]R, error) {
		results := make([]R, 0, len(ops))
		for _, op := range ops {
			r, err := op(ctx, tx)
			if err != nil {
				return nil, err
			}
			results = append(results, r)
		}
		return results, nil
	})
}

type retryConfig struct {
	maxRetries int
	retryDelay time.Duration
	wait       func(ctx context.Context, d time.Duration) error
}

// RetryOption customizes WithTransactionRetry.
type RetryOption func(*retryConfig)

// WithMaxRetries sets how many times a failed attempt is retried. Negative values mean zero.
func WithMaxRetries(n int) RetryOption {
	return func(c *retryConfig) {
		if n < 0 {
			n = 0
		}
		c.maxRetries = n
	}
}

// WithRetryDelay sets the base delay; the wait before retry N is delay*N.
func WithRetryDelay(d time.Duration) RetryOption {
	return func(c *retryConfig) {
		if d < 0 {
			d = 0
		}
		c.retryDelay = d
	}
}

// WithTransactionRetry runs fn in a fresh transaction up to maxRetries+1 times.
// Every error is retried; the last one is returned unchanged.
// Backoff waits stop early with ctx.Err() when ctx is done.
func WithTransactionRetry[R any](ctx context.Context, db TxRunner, fn TxFunc[R], opts ...RetryOption) (R, error) {
	cfg := retryConfig{
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
		wait:       sleep,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		zero    R
		lastErr error
	)
	for attempt := 0; attempt <= cfg.maxRetries; attempt++ {
		if attempt > 0 {
			if err := cfg.wait(ctx, cfg.retryDelay*time.Duration(attempt)); err != nil {
				return zero, err
			}
		}

		out, err := WithTransaction(ctx, db, fn)
		if err == nil {
			return out, nil
		}
		lastErr = err
	}

	return zero, lastErr
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
