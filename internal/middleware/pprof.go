package middleware

import (
	"crypto/subtle"
	"net/http"
	"net/http/pprof"

	"github.com/labstack/echo/v4"

	"obsapp/internal/domain"
)

const (
	pprofAuthHeader = "X-Pprof-Secret"
	PprofPrefix     = "/debug/pprof"
)

var errPprofUnauthorized = domain.ErrorResponse{Detail: "Unauthorized"}

// PprofAuth guards the profiling routes with a shared secret. An empty secret
// leaves them open.
func PprofAuth(secret string) echo.MiddlewareFunc {
	secretBytes := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" {
				return next(c)
			}
			provided := c.Request().Header.Get(pprofAuthHeader)
			if subtle.ConstantTimeCompare([]byte(provided), secretBytes) != 1 {
				return c.JSON(http.StatusUnauthorized, errPprofUnauthorized)
			}
			return next(c)
		}
	}
}

// RegisterPprof mounts the runtime profiles under /debug/pprof behind
// PprofAuth.
func RegisterPprof(e *echo.Echo, secret string) {
	g := e.Group(PprofPrefix, PprofAuth(secret))

	g.GET("/", echo.WrapHandler(http.HandlerFunc(pprof.Index)))
	g.GET("/cmdline", echo.WrapHandler(http.HandlerFunc(pprof.Cmdline)))
	g.GET("/profile", echo.WrapHandler(http.HandlerFunc(pprof.Profile)))
	g.GET("/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	g.POST("/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	g.GET("/trace", echo.WrapHandler(http.HandlerFunc(pprof.Trace)))
	for _, profile := range []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} {
		g.GET("/"+profile, echo.WrapHandler(pprof.Handler(profile)))
	}
}
