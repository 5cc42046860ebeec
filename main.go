package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"

	"obsapp/internal/config"
	"obsapp/internal/handler"
	"obsapp/internal/metrics"
	custommiddleware "obsapp/internal/middleware"
	"obsapp/internal/repository"
	"obsapp/internal/requestid"
	"obsapp/internal/service"
	"obsapp/internal/store"
	"obsapp/internal/validation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err = newLogger(&cfg.Log, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	pool, err := store.NewPool(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	// The store must be ready before the first request is accepted.
	seeded, err := store.NewInitializer(pool, cfg.App.SeedCount, logger).EnsureReady(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	logger.Info("store ready", slog.Int64("seeded", seeded))

	registry, err := metrics.NewRegistry(metrics.Options{
		Namespace:         cfg.Metrics.Namespace,
		Buckets:           cfg.Metrics.Buckets,
		RuntimeCollectors: cfg.Metrics.RuntimeCollectors,
	})
	if err != nil {
		return fmt.Errorf("failed to create metrics registry: %w", err)
	}
	if err := registry.RegisterPool(poolStats(pool)); err != nil {
		return err
	}

	ids, err := requestid.New()
	if err != nil {
		return fmt.Errorf("failed to create request id generator: %w", err)
	}

	messageService := service.NewMessageService(store.NewProvider(pool), repository.NewMessageRepository())
	processor := service.NewProcessor(cfg.App.ProcessDelay)
	payloadValidator := validation.NewPayloadValidator(cfg.App.MaxDataLength)

	h := handler.New(messageService, processor, payloadValidator, registry, cfg.Metrics.Path, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: ids.Next}))
	e.Use(custommiddleware.Metrics(registry, logger, cfg.Metrics.Path))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, logger, cfg.Metrics.Path))

	h.Register(e)

	if cfg.Pprof.Enabled {
		custommiddleware.RegisterPprof(e, cfg.Pprof.Secret)
		logger.Info("pprof endpoints enabled", slog.String("path", custommiddleware.PprofPrefix+"/*"))
	}

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.Int("max_connections", cfg.Server.MaxConnections),
		slog.String("metrics_path", cfg.Metrics.Path))

	httpListener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		httpListener = netutil.LimitListener(httpListener, cfg.Server.MaxConnections)
	}

	httpServer := newServer(e)

	go func() {
		if err := httpServer.Serve(httpListener); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", slog.String("error", err.Error()))
		}
	}()

	var httpsServer *http.Server
	if cfg.TLS.Enabled {
		httpsAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.TLS.Port)
		logger.Info("starting HTTPS server",
			slog.String("addr", httpsAddr),
			slog.Int("max_connections", cfg.Server.MaxConnections))

		httpsListener, err := net.Listen("tcp", httpsAddr)
		if err != nil {
			return fmt.Errorf("failed to create HTTPS listener: %w", err)
		}
		if cfg.Server.MaxConnections > 0 {
			httpsListener = netutil.LimitListener(httpsListener, cfg.Server.MaxConnections)
		}

		cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		if err != nil {
			return fmt.Errorf("failed to load TLS certificate: %w", err)
		}

		tlsListener := tls.NewListener(httpsListener, &tls.Config{
			MinVersion:       tls.VersionTLS13,
			Certificates:     []tls.Certificate{cert},
			CurvePreferences: []tls.CurveID{tls.X25519},
		})

		httpsServer = newServer(e)

		go func() {
			if err := httpsServer.Serve(tlsListener); err != nil && err != http.ErrServerClosed {
				logger.Error("https server error", slog.String("error", err.Error()))
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down servers")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	if httpsServer != nil {
		if err := httpsServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("https server shutdown failed: %w", err)
		}
	}

	return nil
}

func newServer(h http.Handler) *http.Server {
	return &http.Server{
		Handler:        h,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}
}

func newLogger(cfg *config.LogConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(cfg.Format) {
	case "json", "":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
}

func poolStats(pool *pgxpool.Pool) metrics.PoolStatFunc {
	return func() metrics.PoolStat {
		s := pool.Stat()
		return metrics.PoolStat{
			Acquired:          s.AcquiredConns(),
			Idle:              s.IdleConns(),
			Total:             s.TotalConns(),
			Max:               s.MaxConns(),
			AcquireCount:      s.AcquireCount(),
			EmptyAcquireCount: s.EmptyAcquireCount(),
			AcquireDuration:   s.AcquireDuration(),
		}
	}
}
