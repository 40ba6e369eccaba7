package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"cinelog/internal/delivery/http/response"
	domainerrors "cinelog/internal/domain/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Every failure
// converts to a status code plus a `{message}` body at this boundary;
// nothing is retried and nothing is fatal to the process.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Domain errors carry their own status code and message.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Message(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	// Echo's own errors (404, 405, body too large, ...)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Message(c, httpErr.Code, http.StatusText(httpErr.Code))

		return
	}

	// Anything else is an internal failure; the error text goes out with a 500.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Message(c, http.StatusInternalServerError, err.Error())
}
