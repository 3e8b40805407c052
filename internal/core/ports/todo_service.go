package ports

import (
	"context"
	"time"

	"github.com/listkeep/todo-system/internal/core/domain"
)

// ListDetail is the result of viewing a single list: the list with its tasks
// plus the owner's display name.
type ListDetail struct {
	List          *domain.TodoList
	OwnerUsername string
}

// ListService orchestrates list operations. Every method taking a callerID
// enforces ownership: non-owners get domain.ErrForbidden.
type ListService interface {
	// Dashboard returns the caller's lists, tasks included, in id order.
	Dashboard(ctx context.Context, ownerID int64) ([]*domain.TodoList, error)
	Create(ctx context.Context, ownerID int64, title string) (*domain.TodoList, error)
	Get(ctx context.Context, callerID, listID int64) (*ListDetail, error)
	// Delete removes the list and cascades to its tasks. Deleting an already
	// deleted list yields domain.ErrListNotFound.
	Delete(ctx context.Context, callerID, listID int64) error
}

// TaskService orchestrates task operations. Ownership is checked against the
// parent list on every call.
type TaskService interface {
	Add(ctx context.Context, callerID, listID int64, content string, dueDate *time.Time) (*domain.Task, error)
	Toggle(ctx context.Context, callerID, taskID int64) (*domain.Task, error)
	// Delete removes the task and returns its former list id for redirects.
	Delete(ctx context.Context, callerID, taskID int64) (int64, error)
}

// ActivityService exposes the audit trail view.
type ActivityService interface {
	List(ctx context.Context, callerID int64) ([]*domain.ActivityEntry, error)
}
