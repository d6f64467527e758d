package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Health writes a health check response.
func Health(c echo.Context, service string) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:  "ok",
		Service: service,
	})
}
