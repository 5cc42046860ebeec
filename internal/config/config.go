package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	App        AppConfig
	Metrics    MetricsConfig
	RateLimit  RateLimitConfig
	Pprof      PprofConfig
	TLS        TLSConfig
	Log        LogConfig
	Validation ValidationConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
}

type DatabaseConfig struct {
	// URL takes precedence over the discrete POSTGRES_* fields when set.
	URL            string        `env:"DATABASE_URL"`
	Host           string        `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port           int           `env:"POSTGRES_PORT" envDefault:"5432"`
	User           string        `env:"POSTGRES_USER" envDefault:"postgres"`
	Password       string        `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName         string        `env:"POSTGRES_DB" envDefault:"obsapp"`
	SSLMode        string        `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns       int32         `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	MinConns       int32         `env:"POSTGRES_MIN_CONNS" envDefault:"0"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" envDefault:"5s"`
}

// DSN returns the connection string handed to pgxpool.
func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

type AppConfig struct {
	ProcessDelay  time.Duration `env:"PROCESS_DELAY" envDefault:"500ms"`
	SeedCount     int           `env:"SEED_COUNT" envDefault:"15"`
	MaxDataLength int           `env:"MAX_DATA_LENGTH" envDefault:"500"`
}

type MetricsConfig struct {
	Path              string    `env:"METRICS_PATH" envDefault:"/metrics"`
	Namespace         string    `env:"METRICS_NAMESPACE"`
	Buckets           []float64 `env:"METRICS_BUCKETS" envSeparator:"," envDefault:"0.005,0.01,0.025,0.05,0.1,0.25,0.5,0.75,1,2.5,5,10"`
	RuntimeCollectors bool      `env:"METRICS_RUNTIME_COLLECTORS" envDefault:"true"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"100"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"200"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET"`
}

type TLSConfig struct {
	Enabled  bool   `env:"TLS_ENABLED" envDefault:"false"`
	Port     int    `env:"TLS_PORT" envDefault:"8443"`
	CertFile string `env:"TLS_CERT_FILE"`
	KeyFile  string `env:"TLS_KEY_FILE"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type ValidationConfig struct {
	MaxRequestBodySize string `env:"MAX_REQUEST_BODY_SIZE" envDefault:"64K"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
