package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"obsapp/internal/config"
	"obsapp/internal/domain"
)

const (
	retryAfterHeader = "1"
	bypassHeader     = "X-Rate-Limit-Bypass"
)

var (
	rateLimitExceededResp  = domain.ErrorResponse{Detail: "Rate limit exceeded"}
	rateLimiterInternalErr = domain.ErrorResponse{Detail: "Internal server error"}
)

// RateLimit throttles clients per IP. Routes listed in exempt (route
// templates, e.g. the metrics route) are never throttled.
func RateLimit(cfg *config.RateLimitConfig, logger *slog.Logger, exempt ...string) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RPS),
			Burst:     cfg.Burst,
			ExpiresIn: time.Duration(cfg.ExpireMinutes) * time.Minute,
		},
	)

	skip := make(map[string]struct{}, len(exempt))
	for _, route := range exempt {
		skip[RouteTemplate(route)] = struct{}{}
	}

	secret := []byte(cfg.BypassSecret)
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		Skipper: func(c echo.Context) bool {
			if _, ok := skip[RouteTemplate(c.Path())]; ok {
				return true
			}
			if cfg.BypassSecret == "" {
				return false
			}
			provided := c.Request().Header.Get(bypassHeader)
			return subtle.ConstantTimeCompare([]byte(provided), secret) == 1
		},
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Warn("rate limit exceeded",
				slog.String("ip", identifier),
				slog.String("route", RouteTemplate(c.Path())),
			)
			c.Response().Header().Set("Retry-After", retryAfterHeader)
			return c.JSON(http.StatusTooManyRequests, rateLimitExceededResp)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.Error("rate limiter error", slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError, rateLimiterInternalErr)
		},
	})
}
