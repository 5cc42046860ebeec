package service

import (
	"context"
	"errors"
	"fmt"

	"obsapp/internal/domain"
	"obsapp/internal/repository"
	"obsapp/internal/store"
)

var ErrMessageNotFound = errors.New("message is not found")

type MessageService struct {
	sessions Sessions
	repo     MessageFinder
}

func NewMessageService(sessions Sessions, repo MessageFinder) *MessageService {
	return &MessageService{
		sessions: sessions,
		repo:     repo,
	}
}

// GetMessage looks the message up inside a session scoped to this call.
func (s *MessageService) GetMessage(ctx context.Context, id int64) (*domain.Message, error) {
	var msg *domain.Message
	err := s.sessions.WithSession(ctx, func(ctx context.Context, sess store.Session) error {
		var err error
		msg, err = s.repo.FindByID(ctx, sess, id)
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return msg, nil
}
