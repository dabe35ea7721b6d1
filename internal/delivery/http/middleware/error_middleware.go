package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"nestly/internal/delivery/http/response"
	domainerrors "nestly/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware translates errors escaping the handlers into the wire
// format. Store and runtime failures all collapse into a 500 with a generic
// message; the original error is logged server-side only.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Domain errors carry their own status code and message.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(err, c)
		}
		_ = response.Message(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	// Echo's own errors (404 route misses, malformed bodies from the binder).
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Message(c, httpErr.Code, fmt.Sprint(httpErr.Message))

		return
	}

	// Everything else is an unexpected failure: log it, answer generically.
	m.logError(err, c)
	_ = response.Message(c, http.StatusInternalServerError, "Internal server error")
}

func (m *ErrorMiddleware) logError(err error, c echo.Context) {
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
