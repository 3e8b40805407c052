package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/listkeep/todo-system/internal/core/ports"
)

// ActivityHandler serves the audit trail view.
type ActivityHandler struct {
	activity ports.ActivityService
}

func NewActivityHandler(activity ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// Logs handles GET /logs: every entry in insertion order.
func (h *ActivityHandler) Logs(c echo.Context) error {
	userID, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	entries, err := h.activity.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activityLogResponse{Message: "activity log", Logs: entries})
}
