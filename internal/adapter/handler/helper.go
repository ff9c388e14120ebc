package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/smart-voice-assistant/errors"
	"github.com/johnquangdev/smart-voice-assistant/internal/adapter/dto/assistant"
)

// getRequestID tries to read X-Request-ID from the request or the response
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// HandleSuccess writes data with status 200 and logs the response
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, data)
}

// HandleError centralizes error handling and logging. Every error body is
// {"status":"error","message":...}; server errors also carry the error code
// and the underlying cause.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(err)

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Stringer("app_code", appErr.Code),
			zap.Error(err),
		}
		if appErr.IsClientError() {
			logger.Warn("http.response.error", fields...)
		} else {
			logger.Error("http.response.error", fields...)
		}
	}

	body := assistant.ErrorResponse{
		Status:  assistant.StatusError,
		Message: appErr.Message,
	}
	if !appErr.IsClientError() {
		body.Code = appErr.Code
		if appErr.Raw != nil {
			body.Info = appErr.Raw.Error()
		}
	}

	return c.JSON(appErr.HTTPCode, body)
}

// toAppError maps any error onto the project error type
func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var httpErr *echo.HTTPError
	if stdErrors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		appErr = errors.ErrInvalidArgument(http.StatusText(httpErr.Code))
		appErr.HTTPCode = httpErr.Code
		if httpErr.Code == http.StatusNotFound {
			appErr.Code = errors.ErrorCode_NOT_FOUND
		}
		appErr.Raw = err
		return appErr
	}

	return errors.ErrInternal(err)
}

// ErrorHandler renders errors that escape handlers, such as unknown routes,
// in the same envelope as handled errors
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if herr := HandleError(logger, c, err); herr != nil && logger != nil {
			logger.Error("failed to write error response", zap.Error(herr))
		}
	}
}
