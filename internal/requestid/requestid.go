package requestid

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sqids/sqids-go"
)

const minLength = 10

// Generator hands out short, URL-safe request ids. Each id encodes the
// generator's start time and a per-process sequence number, so ids from one
// process never repeat.
type Generator struct {
	sqids *sqids.Sqids
	epoch uint64
	seq   atomic.Uint64
}

func New() (*Generator, error) {
	return NewWithEpoch(uint64(time.Now().UnixNano()))
}

// NewWithEpoch makes ids reproducible for a fixed epoch.
func NewWithEpoch(epoch uint64) (*Generator, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: minLength,
	})
	if err != nil {
		return nil, err
	}
	return &Generator{sqids: s, epoch: epoch}, nil
}

func (g *Generator) Generate() (string, error) {
	n := g.seq.Add(1)
	id, err := g.sqids.Encode([]uint64{g.epoch, n})
	if err != nil {
		return "", fmt.Errorf("failed to encode request id: %w", err)
	}
	return id, nil
}

// Next matches echo's RequestIDConfig.Generator. Encoding only fails on the
// blocklist retry limit, in which case the raw sequence numbers are used.
func (g *Generator) Next() string {
	id, err := g.Generate()
	if err != nil {
		return fmt.Sprintf("%d-%d", g.epoch, g.seq.Load())
	}
	return id
}

// Decode returns the epoch and sequence number carried by id.
func (g *Generator) Decode(id string) (epoch, seq uint64, ok bool) {
	numbers := g.sqids.Decode(id)
	if len(numbers) != 2 {
		return 0, 0, false
	}
	return numbers[0], numbers[1], true
}
