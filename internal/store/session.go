package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Session is the part of a pooled connection that store callers may use.
// It is valid only inside the WithSession callback that handed it out.
type Session interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Conn interface {
	Session
	Release()
}

type Acquirer interface {
	Acquire(ctx context.Context) (Conn, error)
}

type poolAcquirer struct {
	pool *pgxpool.Pool
}

func (a poolAcquirer) Acquire(ctx context.Context) (Conn, error) {
	conn, err := a.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Provider hands out one session per call, drawn from a shared pool.
type Provider struct {
	acquirer Acquirer
}

func NewProvider(pool *pgxpool.Pool) *Provider {
	return &Provider{acquirer: poolAcquirer{pool: pool}}
}

func NewProviderWithAcquirer(acquirer Acquirer) *Provider {
	return &Provider{acquirer: acquirer}
}

// WithSession checks out a connection, runs fn with it and returns the
// connection to the pool once fn is done, whether fn returned an error,
// panicked or gave up on a cancelled context.
func (p *Provider) WithSession(ctx context.Context, fn func(ctx context.Context, s Session) error) error {
	conn, err := p.acquirer.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire session: %w", err)
	}
	defer conn.Release()

	return fn(ctx, conn)
}
