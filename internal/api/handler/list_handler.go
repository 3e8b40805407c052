package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/listkeep/todo-system/internal/core/ports"
)

// ListHandler owns the dashboard and all list-level routes.
type ListHandler struct {
	lists ports.ListService
}

func NewListHandler(lists ports.ListService) *ListHandler {
	return &ListHandler{lists: lists}
}

// Dashboard handles GET /: the caller's lists with their tasks.
func (h *ListHandler) Dashboard(c echo.Context) error {
	userID, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	lists, err := h.lists.Dashboard(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{Lists: lists})
}

// CreateForm handles GET /create_list.
func (h *ListHandler) CreateForm(c echo.Context) error {
	if _, err := ctxPrincipal(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, formResponse{Mode: "create_list", Message: "enter a title"})
}

// Create handles POST /create_list and redirects to the dashboard.
func (h *ListHandler) Create(c echo.Context) error {
	userID, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.lists.Create(c.Request().Context(), userID, req.Title); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// View handles GET /list/:list_id.
func (h *ListHandler) View(c echo.Context) error {
	userID, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	listID, err := pathID(c, "list_id")
	if err != nil {
		return err
	}

	detail, err := h.lists.Get(c.Request().Context(), userID, listID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listDetailResponse{List: detail.List, Owner: detail.OwnerUsername})
}

// Delete handles GET /list/:list_id/delete. A second delete of the same id
// yields 404, not an error page.
func (h *ListHandler) Delete(c echo.Context) error {
	userID, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	listID, err := pathID(c, "list_id")
	if err != nil {
		return err
	}

	if err := h.lists.Delete(c.Request().Context(), userID, listID); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
