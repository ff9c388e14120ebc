package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/smart-voice-assistant/pkg/reqcontext"
)

func TestRequestContext(t *testing.T) {
	e := echo.New()
	e.Use(echomw.RequestID())
	e.Use(RequestContext())

	var seen string
	e.GET("/", func(c echo.Context) error {
		seen, _ = reqcontext.RequestID(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), seen)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "client-supplied")
	e.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "client-supplied", seen)
}
