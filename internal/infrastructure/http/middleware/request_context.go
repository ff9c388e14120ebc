package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/smart-voice-assistant/pkg/reqcontext"
)

// RequestContext copies the X-Request-ID set by echo's RequestID middleware
// into the request context so services can log it
func RequestContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			req := c.Request()
			c.SetRequest(req.WithContext(reqcontext.Begin(req.Context(), id)))
			return next(c)
		}
	}
}
