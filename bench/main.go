package main

import (
	"context"
	"fmt"
	"os"

	"bench/internal/attack"
	"bench/internal/config"
	"bench/internal/discover"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var ids []int64
	if cfg.BenchType == "message" || cfg.BenchType == "mixed" {
		ids, err = discover.MessageIDs(context.Background(), cfg.BaseURL, cfg.ProbeCount, cfg.RateLimitBypass, cfg.InsecureSkipVerify, cfg.ProbeTimeout)
		if err != nil {
			return fmt.Errorf("discovery failed: %w", err)
		}
	}

	return attack.Run(&attack.Config{
		BaseURL:            cfg.BaseURL,
		MessageIDs:         ids,
		Rate:               cfg.Rate,
		Duration:           cfg.Duration,
		ProcessRatio:       cfg.ProcessRatio,
		HealthRatio:        cfg.HealthRatio,
		Type:               cfg.BenchType,
		RateLimitBypass:    cfg.RateLimitBypass,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Connections:        cfg.Connections,
		MaxWorkers:         cfg.MaxWorkers,
	})
}
