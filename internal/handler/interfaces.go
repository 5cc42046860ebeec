package handler

//go:generate go tool mockery

import (
	"context"
	"io"

	"obsapp/internal/domain"
)

type MessageService interface {
	GetMessage(ctx context.Context, id int64) (*domain.Message, error)
}

type Processor interface {
	Process(ctx context.Context, data string) (string, error)
}

type PayloadValidator interface {
	ValidateData(data *string) error
}

type MetricsRenderer interface {
	Render(w io.Writer) error
	ContentType() string
}
