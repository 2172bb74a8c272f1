package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/tarsy-bot/tarsy/pkg/services"
)

// mapServiceError translates service-layer failures into HTTP errors.
// Anything unrecognized is logged and hidden behind a 500.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	case errors.Is(err, services.ErrAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	default:
		slog.Error("Unexpected service error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
