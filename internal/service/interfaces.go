package service

//go:generate go tool mockery

import (
	"context"

	"obsapp/internal/domain"
	"obsapp/internal/store"
)

type Sessions interface {
	WithSession(ctx context.Context, fn func(ctx context.Context, s store.Session) error) error
}

type MessageFinder interface {
	FindByID(ctx context.Context, s store.Session, id int64) (*domain.Message, error)
}
