package store_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"obsapp/internal/store"
)

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error {
	return r.scan(dest...)
}

// memoryDB keeps the messages table in memory and understands the three
// statements the initializer issues.
type memoryDB struct {
	mu          sync.Mutex
	tableExists bool
	messages    []string
	creates     int

	execErr  error
	queryErr error
	copyErr  error
}

func (db *memoryDB) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.execErr != nil {
		return pgconn.CommandTag{}, db.execErr
	}
	db.creates++
	db.tableExists = true
	return pgconn.NewCommandTag("CREATE TABLE"), nil
}

func (db *memoryDB) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return fakeRow{scan: func(dest ...any) error {
		db.mu.Lock()
		defer db.mu.Unlock()

		if db.queryErr != nil {
			return db.queryErr
		}
		if !db.tableExists {
			return errors.New(`relation "messages" does not exist`)
		}
		*dest[0].(*bool) = len(db.messages) > 0
		return nil
	}}
}

func (db *memoryDB) CopyFrom(_ context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.copyErr != nil {
		return 0, db.copyErr
	}
	if table.Sanitize() != `"messages"` || len(columns) != 1 || columns[0] != "text" {
		return 0, errors.New("unexpected copy target")
	}

	var n int64
	for src.Next() {
		values, err := src.Values()
		if err != nil {
			return 0, err
		}
		db.messages = append(db.messages, values[0].(string))
		n++
	}
	return n, src.Err()
}

type fakeConn struct {
	id       int
	released atomic.Bool
	row      pgx.Row
}

func (c *fakeConn) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return c.row
}

func (c *fakeConn) Release() {
	c.released.Store(true)
}

type fakeAcquirer struct {
	mu          sync.Mutex
	conns       []*fakeConn
	outstanding atomic.Int64
	maxInFlight atomic.Int64
	err         error
}

func (a *fakeAcquirer) Acquire(ctx context.Context) (store.Conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if a.err != nil {
		return nil, a.err
	}

	a.mu.Lock()
	conn := &fakeConn{id: len(a.conns)}
	a.conns = append(a.conns, conn)
	a.mu.Unlock()

	n := a.outstanding.Add(1)
	for {
		cur := a.maxInFlight.Load()
		if n <= cur || a.maxInFlight.CompareAndSwap(cur, n) {
			break
		}
	}
	return &trackedConn{fakeConn: conn, acquirer: a}, nil
}

func (a *fakeAcquirer) allReleased() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, c := range a.conns {
		if !c.released.Load() {
			return false
		}
	}
	return true
}

func (a *fakeAcquirer) acquired() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.conns)
}

type trackedConn struct {
	*fakeConn
	acquirer *fakeAcquirer
}

func (c *trackedConn) Release() {
	if !c.fakeConn.released.Swap(true) {
		c.acquirer.outstanding.Add(-1)
	}
}
