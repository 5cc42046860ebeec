package service

import (
	"context"
	"time"
)

// Processor stands in for a slow computation. Each call waits on its own
// timer, so concurrent requests are never serialised behind one another.
type Processor struct {
	delay time.Duration
}

func NewProcessor(delay time.Duration) *Processor {
	return &Processor{delay: delay}
}

func (p *Processor) Process(ctx context.Context, data string) (string, error) {
	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
		return data, nil
	}
}
