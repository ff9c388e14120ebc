package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/smart-voice-assistant/internal/infrastructure/metrics"
)

// unmatchedRoute labels requests that hit no registered route
const unmatchedRoute = "unmatched"

// EchoMetrics records a request count and duration per route template
func EchoMetrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}
			status := strconv.Itoa(c.Response().Status)
			m.ObserveRequest(c.Request().Method, route, status, time.Since(start))

			return nil
		}
	}
}
