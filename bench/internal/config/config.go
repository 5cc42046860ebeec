package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	BaseURL            string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	Rate               int           `env:"RATE" envDefault:"200"`
	Duration           time.Duration `env:"DURATION" envDefault:"30s"`
	BenchType          string        `env:"BENCH_TYPE" envDefault:"mixed"`
	ProcessRatio       float64       `env:"PROCESS_RATIO" envDefault:"0.2"`
	HealthRatio        float64       `env:"HEALTH_RATIO" envDefault:"0.1"`
	ProbeCount         int           `env:"MESSAGE_PROBE_COUNT" envDefault:"15"`
	ProbeTimeout       time.Duration `env:"PROBE_TIMEOUT" envDefault:"10s"`
	RateLimitBypass    string        `env:"RATE_LIMIT_BYPASS_SECRET"`
	InsecureSkipVerify bool          `env:"INSECURE_SKIP_VERIFY" envDefault:"false"`
	Connections        int           `env:"CONNECTIONS" envDefault:"10000"`
	MaxWorkers         uint64        `env:"MAX_WORKERS" envDefault:"0"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
