package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"obsapp/internal/domain"
	"obsapp/internal/store"
)

var ErrNotFound = errors.New("message not found")

const findMessageByID = `SELECT id, text FROM messages WHERE id = $1 LIMIT 1`

type MessageRepository struct{}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

// FindByID reads the message through the caller's session. Every call goes to
// the store.
func (r *MessageRepository) FindByID(ctx context.Context, s store.Session, id int64) (*domain.Message, error) {
	var msg domain.Message
	err := s.QueryRow(ctx, findMessageByID, id).Scan(&msg.ID, &msg.Text)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find message: %w", err)
	}
	return &msg, nil
}
