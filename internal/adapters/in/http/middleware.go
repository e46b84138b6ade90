package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/cors"
)

// RequestRecorder receives one observation per served request.
type RequestRecorder interface {
	HTTPRequest(method, route, status string, latencyMS float64)
}

// Metrics records method, route template, status and latency of every request.
// Errors are rendered here so the recorded status is the one sent.
func Metrics(rec RequestRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			rec.HTTPRequest(
				c.Request().Method,
				route,
				strconv.Itoa(c.Response().Status),
				float64(time.Since(start).Microseconds())/1000,
			)
			return nil
		}
	}
}

// CORS answers preflight requests and sets the CORS headers for allowedOrigins.
func CORS(allowedOrigins []string) echo.MiddlewareFunc {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	})
	return echo.WrapMiddleware(c.Handler)
}
