package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"obsapp/internal/metrics"
	"obsapp/internal/middleware"
	"obsapp/internal/middleware/mocks"
)

type observation struct {
	Method   string
	Route    string
	Status   int
	Duration time.Duration
}

func expectObservation(t *testing.T, rec *mocks.MockObserver) *observation {
	t.Helper()
	var captured observation
	rec.EXPECT().Observe(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(method, route string, status int, duration time.Duration) {
			captured = observation{Method: method, Route: route, Status: status, Duration: duration}
		}).Return().Once()
	return &captured
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func logRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)
	return resp
}

func TestMetrics_SuccessfulRequest(t *testing.T) {
	rec := mocks.NewMockObserver(t)
	captured := expectObservation(t, rec)
	logger, logs := bufferLogger()

	e := echo.New()
	e.Use(middleware.Metrics(rec, logger, "/metrics"))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	resp := serve(e, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, resp.Body.String())

	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "/health", captured.Route)
	assert.Equal(t, http.StatusOK, captured.Status)
	assert.GreaterOrEqual(t, captured.Duration, time.Duration(0))

	records := logRecords(t, logs)
	require.Len(t, records, 1)
	assert.Equal(t, "http request", records[0]["msg"])
	assert.Equal(t, "INFO", records[0]["level"])
	assert.Equal(t, "GET", records[0]["method"])
	assert.Equal(t, "/health", records[0]["route"])
	assert.Equal(t, float64(http.StatusOK), records[0]["status"])
	assert.Contains(t, records[0], "duration_ms")
}

func TestMetrics_PathParameterUsesTemplate(t *testing.T) {
	rec := mocks.NewMockObserver(t)
	captured := expectObservation(t, rec)

	e := echo.New()
	e.Use(middleware.Metrics(rec, discardLogger()))
	e.GET("/message/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Param("id"))
	})

	serve(e, http.MethodGet, "/message/42")

	// Path should be the template, not the actual value
	assert.Equal(t, "/message/{id}", captured.Route)
}

func TestMetrics_HandlerErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		handler    echo.HandlerFunc
		wantStatus int
	}{
		{
			name: "json not found body",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusNotFound, map[string]string{"detail": "Message is not found"})
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "http error",
			handler: func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusUnprocessableEntity, "bad payload")
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "plain error",
			handler: func(c echo.Context) error {
				return errors.New("something went wrong")
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "client went away",
			handler: func(c echo.Context) error {
				return context.Canceled
			},
			wantStatus: middleware.StatusClientClosedRequest,
		},
		{
			name: "error after response committed",
			handler: func(c echo.Context) error {
				if err := c.NoContent(http.StatusAccepted); err != nil {
					return err
				}
				return errors.New("late failure")
			},
			wantStatus: http.StatusAccepted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := mocks.NewMockObserver(t)
			captured := expectObservation(t, rec)

			e := echo.New()
			e.Use(middleware.Metrics(rec, discardLogger()))
			e.GET("/test", tt.handler)

			serve(e, http.MethodGet, "/test")

			assert.Equal(t, tt.wantStatus, captured.Status)
			assert.Equal(t, "/test", captured.Route)
		})
	}
}

func TestMetrics_ReturnsHandlerErrorUnchanged(t *testing.T) {
	rec := mocks.NewMockObserver(t)
	expectObservation(t, rec)

	handlerErr := errors.New("db down")
	h := middleware.Metrics(rec, discardLogger())(func(c echo.Context) error {
		return handlerErr
	})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/message/1", nil), httptest.NewRecorder())
	c.SetPath("/message/:id")

	err := h(c)
	assert.Same(t, handlerErr, err)
}

func TestMetrics_ExcludesMetricsRoute(t *testing.T) {
	rec := mocks.NewMockObserver(t) // no expectations: any Observe call fails the test
	logger, logs := bufferLogger()

	e := echo.New()
	e.Use(middleware.Metrics(rec, logger, "/metrics"))
	e.GET("/metrics", func(c echo.Context) error {
		return c.String(http.StatusOK, "# metrics")
	})

	for range 5 {
		resp := serve(e, http.MethodGet, "/metrics")
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "# metrics", resp.Body.String())
	}

	assert.Empty(t, logs.String())
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	rec := mocks.NewMockObserver(t)
	captured := expectObservation(t, rec)

	e := echo.New()
	e.Use(middleware.Metrics(rec, discardLogger()))
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	resp := serve(e, http.MethodGet, "/does/not/exist/12345")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, middleware.UnmatchedRoute, captured.Route)
	assert.Equal(t, http.StatusNotFound, captured.Status)
}

func TestMetrics_MethodNotAllowed(t *testing.T) {
	rec := mocks.NewMockObserver(t)
	captured := expectObservation(t, rec)

	e := echo.New()
	e.Use(middleware.Metrics(rec, discardLogger()))
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	resp := serve(e, http.MethodDelete, "/health")

	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
	assert.Equal(t, middleware.UnmatchedRoute, captured.Route)
	assert.Equal(t, http.StatusMethodNotAllowed, captured.Status)
}

func TestMetrics_RecordsPanicWithoutRecover(t *testing.T) {
	rec := mocks.NewMockObserver(t)
	captured := expectObservation(t, rec)

	e := echo.New()
	e.Use(middleware.Metrics(rec, discardLogger()))
	e.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})

	assert.PanicsWithValue(t, "boom", func() {
		serve(e, http.MethodGet, "/panic")
	})
	assert.Equal(t, http.StatusInternalServerError, captured.Status)
	assert.Equal(t, "/panic", captured.Route)
}

func TestMetrics_RecordsPanicRecoveredBelow(t *testing.T) {
	rec := mocks.NewMockObserver(t)
	captured := expectObservation(t, rec)
	logger, logs := bufferLogger()

	e := echo.New()
	e.Use(middleware.Metrics(rec, logger))
	e.Use(echomw.Recover())
	e.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})

	resp := serve(e, http.MethodGet, "/panic")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, http.StatusInternalServerError, captured.Status)

	records := logRecords(t, logs)
	require.Len(t, records, 1)
	assert.Equal(t, "ERROR", records[0]["level"])
}

func TestMetrics_LogsRequestID(t *testing.T) {
	rec := mocks.NewMockObserver(t)
	expectObservation(t, rec)
	logger, logs := bufferLogger()

	e := echo.New()
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: func() string { return "req-1" },
	}))
	e.Use(middleware.Metrics(rec, logger))
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	resp := serve(e, http.MethodGet, "/health")

	assert.Equal(t, "req-1", resp.Header().Get(echo.HeaderXRequestID))
	records := logRecords(t, logs)
	require.Len(t, records, 1)
	assert.Equal(t, "req-1", records[0]["request_id"])
}

func TestMetrics_LogsHandlerError(t *testing.T) {
	rec := mocks.NewMockObserver(t)
	expectObservation(t, rec)
	logger, logs := bufferLogger()

	e := echo.New()
	e.Use(middleware.Metrics(rec, logger))
	e.GET("/fail", func(c echo.Context) error { return errors.New("store unavailable") })

	serve(e, http.MethodGet, "/fail")

	records := logRecords(t, logs)
	require.Len(t, records, 1)
	assert.Equal(t, "ERROR", records[0]["level"])
	assert.Equal(t, "store unavailable", records[0]["error"])
	assert.Equal(t, float64(http.StatusInternalServerError), records[0]["status"])
}

func TestMetrics_DifferentMethods(t *testing.T) {
	methods := []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}

	for _, method := range methods {
		t.Run(method, func(t *testing.T) {
			rec := mocks.NewMockObserver(t)
			captured := expectObservation(t, rec)

			e := echo.New()
			e.Use(middleware.Metrics(rec, discardLogger()))
			e.Add(method, "/test", func(c echo.Context) error {
				return c.String(http.StatusOK, "ok")
			})

			serve(e, method, "/test")

			require.NotZero(t, captured.Method)
			assert.Equal(t, method, captured.Method)
		})
	}
}

func TestMetrics_WithRegistryCountsEveryRequest(t *testing.T) {
	reg, err := metrics.NewRegistry(metrics.Options{})
	require.NoError(t, err)

	e := echo.New()
	e.Use(middleware.Metrics(reg, discardLogger(), "/metrics"))
	e.GET("/message/:id", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/metrics", func(c echo.Context) error {
		var buf bytes.Buffer
		if err := reg.Render(&buf); err != nil {
			return err
		}
		return c.Blob(http.StatusOK, reg.ContentType(), buf.Bytes())
	})

	const n = 25
	for i := range n {
		serve(e, http.MethodGet, "/message/"+string(rune('a'+i)))
		serve(e, http.MethodGet, "/metrics")
	}

	resp := serve(e, http.MethodGet, "/metrics")
	body := resp.Body.String()

	assert.Contains(t, body, `http_requests_total{method="GET",route="/message/{id}"} 25`)
	assert.Contains(t, body, `http_request_duration_seconds_count{method="GET",route="/message/{id}"} 25`)
	assert.NotContains(t, body, `route="/metrics"`)
	assert.NotContains(t, body, `route="/message/a"`)
}

func TestRouteTemplate(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/health", "/health"},
		{"/message/:id", "/message/{id}"},
		{"/users/:user/posts/:post", "/users/{user}/posts/{post}"},
		{"/static/*", "/static/{*}"},
		{"/", "/"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, middleware.RouteTemplate(tt.path))
		})
	}
}
