package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	createMessagesTable = `CREATE TABLE IF NOT EXISTS messages (
	id   SERIAL PRIMARY KEY,
	text TEXT NOT NULL
)`
	messagesExist = `SELECT EXISTS (SELECT 1 FROM messages)`
)

// DB is satisfied by *pgxpool.Pool.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

type Initializer struct {
	db        DB
	seedCount int
	logger    *slog.Logger
}

func NewInitializer(db DB, seedCount int, logger *slog.Logger) *Initializer {
	return &Initializer{
		db:        db,
		seedCount: max(0, seedCount),
		logger:    logger,
	}
}

// EnsureReady creates the messages table if needed and seeds it when empty.
// It returns the number of rows inserted, which is zero on every run after
// the first against the same database.
func (i *Initializer) EnsureReady(ctx context.Context) (int64, error) {
	if _, err := i.db.Exec(ctx, createMessagesTable); err != nil {
		return 0, fmt.Errorf("failed to create messages table: %w", err)
	}

	var exists bool
	if err := i.db.QueryRow(ctx, messagesExist).Scan(&exists); err != nil {
		return 0, fmt.Errorf("failed to check messages: %w", err)
	}
	if exists {
		i.logger.Info("messages already present, skipping seed")
		return 0, nil
	}

	i.logger.Info("database is empty, seeding messages", slog.Int("count", i.seedCount))

	rows := make([][]any, i.seedCount)
	for n := range i.seedCount {
		rows[n] = []any{SeedText(n + 1)}
	}

	inserted, err := i.db.CopyFrom(ctx,
		pgx.Identifier{"messages"},
		[]string{"text"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to seed messages: %w", err)
	}

	i.logger.Info("messages seeded", slog.Int64("inserted", inserted))
	return inserted, nil
}

func SeedText(n int) string {
	return fmt.Sprintf("This is test message number %d for API testing", n)
}
