package attack

import (
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

type Config struct {
	BaseURL            string
	MessageIDs         []int64
	Rate               int
	Duration           time.Duration
	ProcessRatio       float64
	HealthRatio        float64
	Type               string
	RateLimitBypass    string
	InsecureSkipVerify bool
	Connections        int
	MaxWorkers         uint64
}

var errNoMessages = errors.New("no messages found to attack")

func Targeter(cfg *Config) (vegeta.Targeter, error) {
	switch cfg.Type {
	case "process":
		return ProcessTargeter(cfg.BaseURL, cfg.RateLimitBypass), nil
	case "health":
		return HealthTargeter(cfg.BaseURL, cfg.RateLimitBypass), nil
	case "message":
		if len(cfg.MessageIDs) == 0 {
			return nil, fmt.Errorf("message attack: %w", errNoMessages)
		}
		return MessageTargeter(cfg.BaseURL, cfg.MessageIDs, cfg.RateLimitBypass), nil
	case "mixed":
		if len(cfg.MessageIDs) == 0 {
			return nil, fmt.Errorf("mixed attack: %w", errNoMessages)
		}
		return MixedTargeter(cfg.BaseURL, cfg.MessageIDs, cfg.ProcessRatio, cfg.HealthRatio, cfg.RateLimitBypass), nil
	default:
		return nil, fmt.Errorf("unknown attack type: %s", cfg.Type)
	}
}

func Run(cfg *Config) error {
	targeter, err := Targeter(cfg)
	if err != nil {
		return err
	}

	opts := []func(*vegeta.Attacker){
		vegeta.Redirects(-1),
		vegeta.KeepAlive(true),
		vegeta.Connections(cfg.Connections),
		vegeta.Timeout(5 * time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
		vegeta.TLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}),
	}
	if cfg.MaxWorkers > 0 {
		opts = append(opts, vegeta.MaxWorkers(cfg.MaxWorkers))
	}
	attacker := vegeta.NewAttacker(opts...)

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	fmt.Printf("Starting %s attack: rate=%d/s duration=%s\n", cfg.Type, cfg.Rate, cfg.Duration)

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, cfg.Type) {
		metrics.Add(res)
	}
	metrics.Close()

	reporter := vegeta.NewTextReporter(&metrics)
	return reporter.Report(os.Stdout)
}
