package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	domainerrors "tutortrack/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
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

// errorResponse mirrors the response envelope without importing the
// response package (which would cycle through the handlers).
type errorResponse struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *errorInfo `json:"error,omitempty"`
}

type errorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Handlers
// render their own AppError responses; this is the safety net for
// errors that escape them.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = c.JSON(appErr.HTTPCode(), errorResponse{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &errorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, errorResponse{
			Success: false,
			Code:    httpErr.Code,
			Message: fmt.Sprintf("%v", httpErr.Message),
			Error: &errorInfo{
				Code:    "HTTP_ERROR",
				Details: fmt.Sprintf("%v", httpErr.Message),
			},
		})

		return
	}

	// Unhandled errors are logged server-side and surface as a generic 500.
	m.logger.Error("unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = c.JSON(http.StatusInternalServerError, errorResponse{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: "internal server error",
		Error: &errorInfo{
			Code:    "INTERNAL_ERROR",
			Details: "internal server error",
		},
	})
}
