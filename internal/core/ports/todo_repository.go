package ports

import (
	"context"

	"github.com/listkeep/todo-system/internal/core/domain"
)

// ListRepository defines persistence operations for todo lists.
// Every read returns lists with their Tasks slice populated.
type ListRepository interface {
	// ListsForOwner returns the owner's lists in insertion (id) order.
	ListsForOwner(ctx context.Context, ownerID int64) ([]*domain.TodoList, error)
	GetByID(ctx context.Context, id int64) (*domain.TodoList, error)
	Create(ctx context.Context, list *domain.TodoList) (*domain.TodoList, error)
	// Delete removes the list and all of its tasks in a single transaction.
	// A missing id yields domain.ErrListNotFound.
	Delete(ctx context.Context, id int64) error
}

// TaskRepository defines persistence operations for individual tasks.
type TaskRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	// Create inserts a task under an existing list; the caller is expected to
	// have verified the list exists.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// Toggle flips is_completed and returns the updated task.
	Toggle(ctx context.Context, id int64) (*domain.Task, error)
	// Delete removes the task and returns the id of the list it belonged to.
	Delete(ctx context.Context, id int64) (int64, error)
}
