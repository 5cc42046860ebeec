package middleware

//go:generate go tool mockery

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	// UnmatchedRoute labels requests that did not resolve to a registered
	// route, so arbitrary URLs cannot create new series.
	UnmatchedRoute = "unmatched"

	// StatusClientClosedRequest is recorded when the client went away before
	// the handler finished.
	StatusClientClosedRequest = 499
)

type Observer interface {
	Observe(method, route string, status int, duration time.Duration)
}

// Metrics measures every request and reports it to observer together with a
// structured log record. Requests whose route template is listed in excluded
// are neither measured nor logged; pass the metrics route here so scrapes do
// not show up in the series they read.
//
// The middleware only observes: the handler's error is returned unchanged and
// the response is never touched.
func Metrics(observer Observer, logger *slog.Logger, excluded ...string) echo.MiddlewareFunc {
	skip := make(map[string]struct{}, len(excluded))
	for _, route := range excluded {
		skip[RouteTemplate(route)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			start := time.Now()
			completed := false

			defer func() {
				route := resolveRoute(c, err)
				if _, ok := skip[route]; ok {
					return
				}

				duration := time.Since(start)
				status := resolveStatus(c, err, completed)

				observer.Observe(c.Request().Method, route, status, duration)
				logRequest(logger, c, route, status, duration, err)
			}()

			err = next(c)
			completed = true
			return err
		}
	}
}

// RouteTemplate rewrites echo's route syntax into the {param} form used as
// the metric key: /message/:id becomes /message/{id}.
func RouteTemplate(path string) string {
	if !strings.ContainsAny(path, ":*") {
		return path
	}

	segments := strings.Split(path, "/")
	for i, s := range segments {
		switch {
		case strings.HasPrefix(s, ":"):
			segments[i] = "{" + s[1:] + "}"
		case s == "*":
			segments[i] = "{*}"
		}
	}
	return strings.Join(segments, "/")
}

func resolveRoute(c echo.Context, err error) string {
	path := c.Path()
	if path == "" || errors.Is(err, echo.ErrNotFound) || errors.Is(err, echo.ErrMethodNotAllowed) {
		return UnmatchedRoute
	}
	return RouteTemplate(path)
}

func resolveStatus(c echo.Context, err error, completed bool) int {
	if !completed {
		// The handler panicked and nothing recovered it below us.
		return http.StatusInternalServerError
	}

	resp := c.Response()
	if err == nil || resp.Committed {
		return resp.Status
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	if errors.Is(err, context.Canceled) {
		return StatusClientClosedRequest
	}
	return http.StatusInternalServerError
}

func logRequest(logger *slog.Logger, c echo.Context, route string, status int, duration time.Duration, err error) {
	req := c.Request()

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", route),
		slog.String("path", req.URL.Path),
		slog.Int("status", status),
		slog.Float64("duration_ms", float64(duration.Microseconds())/1000.0),
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	level := slog.LevelInfo
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	logger.LogAttrs(context.Background(), level, "http request", attrs...)
}
