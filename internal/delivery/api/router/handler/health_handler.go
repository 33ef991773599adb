package handler

import (
	"net/http"

	"kinconnect/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck answers load balancer health checks.
func HealthCheck(c echo.Context) error {
	return response.Plain(c, http.StatusOK, map[string]bool{"ok": true})
}
