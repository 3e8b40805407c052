package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/listkeep/todo-system/internal/core/ports"
)

const dueDateLayout = "2006-01-02"

// TaskHandler owns the task-level routes. Every success redirects back to
// the task's list.
type TaskHandler struct {
	tasks ports.TaskService
}

func NewTaskHandler(tasks ports.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// Add handles POST /list/:list_id/task/add.
func (h *TaskHandler) Add(c echo.Context) error {
	userID, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	listID, err := pathID(c, "list_id")
	if err != nil {
		return err
	}

	var req addTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		d, err := time.Parse(dueDateLayout, req.DueDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid due_date")
		}
		dueDate = &d
	}

	if _, err := h.tasks.Add(c.Request().Context(), userID, listID, req.Content, dueDate); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, listPath(listID))
}

// Toggle handles POST /task/:task_id/toggle.
func (h *TaskHandler) Toggle(c echo.Context) error {
	userID, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	taskID, err := pathID(c, "task_id")
	if err != nil {
		return err
	}

	task, err := h.tasks.Toggle(c.Request().Context(), userID, taskID)
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, listPath(task.ListID))
}

// Delete handles GET /task/:task_id/delete.
func (h *TaskHandler) Delete(c echo.Context) error {
	userID, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	taskID, err := pathID(c, "task_id")
	if err != nil {
		return err
	}

	listID, err := h.tasks.Delete(c.Request().Context(), userID, taskID)
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, listPath(listID))
}

func listPath(listID int64) string {
	return fmt.Sprintf("/list/%d", listID)
}
