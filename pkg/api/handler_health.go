package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/tarsy-bot/tarsy/pkg/database"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Database *database.HealthStatus `json:"database"`
}

// healthHandler handles GET /health. Unreachable database means 503.
func (s *Server) healthHandler(c *echo.Context) error {
	dbHealth, err := database.Health(c.Request().Context(), s.db.DB())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, &HealthResponse{
			Status:   "unhealthy",
			Database: dbHealth,
		})
	}
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:   "healthy",
		Database: dbHealth,
	})
}
