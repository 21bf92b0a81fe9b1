// Package dbctx carries a request-scoped database handle (a pooled
// connection or a transaction) through context.Context.
package dbctx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

// Querier is the subset shared by *sqlx.DB, *sqlx.Conn and *sqlx.Tx.
type Querier interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowxContext(ctx context.Context, query string, args ...any) *sqlx.Row
}

var (
	_ Querier = (*sqlx.DB)(nil)
	_ Querier = (*sqlx.Conn)(nil)
	_ Querier = (*sqlx.Tx)(nil)
)

type contextKey struct{}

var querierKey = contextKey{}

// With stores q in the context.
func With(ctx context.Context, q Querier) context.Context {
	return context.WithValue(ctx, querierKey, q)
}

// From returns the request-scoped handle, or fallback when none is set.
func From(ctx context.Context, fallback Querier) Querier {
	if q, ok := ctx.Value(querierKey).(Querier); ok && q != nil {
		return q
	}
	return fallback
}

// Tx returns the transaction stored in the context, or nil.
func Tx(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(querierKey).(*sqlx.Tx)
	return tx
}

type hooksKey struct{}

type commitHooks struct {
	mu  sync.Mutex
	fns []func(ctx context.Context)
}

// WithCommitHooks returns a context collecting AfterCommit callbacks and a
// function that runs them in registration order. The owner of the
// transaction calls run only after a successful commit.
func WithCommitHooks(ctx context.Context) (context.Context, func(ctx context.Context)) {
	hooks := &commitHooks{}
	run := func(ctx context.Context) {
		hooks.mu.Lock()
		fns := hooks.fns
		hooks.fns = nil
		hooks.mu.Unlock()
		for _, fn := range fns {
			fn(ctx)
		}
	}
	return context.WithValue(ctx, hooksKey{}, hooks), run
}

// AfterCommit schedules fn to run once the request's transaction commits.
// Without a collecting context fn runs immediately.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	hooks, ok := ctx.Value(hooksKey{}).(*commitHooks)
	if !ok {
		fn(ctx)
		return
	}
	hooks.mu.Lock()
	hooks.fns = append(hooks.fns, fn)
	hooks.mu.Unlock()
}

const uniqueViolationCode = "23505"

// ErrUniqueViolation is returned when an insert or update hits a unique constraint.
var ErrUniqueViolation = errors.New("unique constraint violated")

// MapError translates driver errors the services care about.
func MapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s", ErrUniqueViolation, pgErr.ConstraintName)
	}
	return err
}
