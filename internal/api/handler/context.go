package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rbacdash/rbac-api/internal/api/middleware"
	"github.com/rbacdash/rbac-api/internal/core/domain"
)

// ctxUser extracts the identity injected by the Authenticate middleware.
// Its presence proves the middleware ran; a missing identity on a protected
// route is a wiring bug surfaced as 401 rather than a panic.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
