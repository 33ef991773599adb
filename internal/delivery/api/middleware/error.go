package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"kinconnect/internal/delivery/api/response"
	deliverycontext "kinconnect/internal/delivery/context"
	domainerrors "kinconnect/internal/domain/errors"
	"kinconnect/internal/errors"

	"github.com/labstack/echo/v4"
)

// proxyPrefixes are routes answering with plain, unenveloped bodies.
var proxyPrefixes = []string{"/api/remove-background", "/api/printify/", "/api/stripe/", "/webhooks/"}

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

func isProxyPath(path string) bool {
	for _, prefix := range proxyPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	plain := isProxyPath(c.Request().URL.Path)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c).Error("Request failed",
				slog.Any("error", err),
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
			)
		}
		if plain {
			_ = response.HandlePlainError(c, appErr)

			return
		}
		_ = response.HandleAppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		if plain {
			_ = response.Plain(c, httpErr.Code, response.PlainError{Error: message})

			return
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// Log the cause but never expose it to the client.
	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	if plain {
		_ = response.Plain(c, http.StatusInternalServerError, response.PlainError{Error: "Internal server error"})

		return
	}
	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}
