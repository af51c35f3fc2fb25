package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rbacdash/rbac-api/internal/core/ports"
)

type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// ListAll returns the full activity trail, newest first.
//
// @Summary      List all activity logs
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /activity [get]
func (h *ActivityHandler) ListAll(c echo.Context) error {
	entries, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Activity logs fetched successfully", entries)
}

// ListMine returns the caller's own activity entries, newest first.
//
// @Summary      List own activity logs
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  map[string]any
// @Router       /activity/me [get]
func (h *ActivityHandler) ListMine(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	entries, err := h.service.ListByUser(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Activity logs fetched successfully", entries)
}
