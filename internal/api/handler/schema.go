package handler

import (
	"github.com/listkeep/todo-system/internal/core/domain"
)

// formResponse describes an auth form for clients that render it themselves.
type formResponse struct {
	Mode    string `json:"mode"`
	Message string `json:"message"`
}

// --- Request types ---
// Tagged for both form posts (browser flows) and JSON bodies (API clients).

type registerRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
	Email    string `form:"email"    json:"email"    validate:"omitempty,email"`
	Password string `form:"password" json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

type createListRequest struct {
	Title string `form:"title" json:"title" validate:"required"`
}

type addTaskRequest struct {
	Content string `form:"content"  json:"content" validate:"required"`
	DueDate string `form:"due_date" json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

// --- Response types ---

type dashboardResponse struct {
	Lists []*domain.TodoList `json:"lists"`
}

type listDetailResponse struct {
	List  *domain.TodoList `json:"list"`
	Owner string           `json:"owner"`
}

type activityLogResponse struct {
	Message string                  `json:"message"`
	Logs    []*domain.ActivityEntry `json:"logs"`
}
