package ports

import (
	"context"

	"github.com/listkeep/todo-system/internal/core/domain"
)

// ActivityRepository persists the append-only audit trail.
type ActivityRepository interface {
	Append(ctx context.Context, entry *domain.ActivityEntry) error
	// List returns every entry in insertion order.
	List(ctx context.Context) ([]*domain.ActivityEntry, error)
}

// ActivityRecorder is the fire-and-forget facade services use to log actions.
// Implementations swallow persistence failures: recording never fails or
// rolls back the operation that triggered it.
type ActivityRecorder interface {
	Record(ctx context.Context, userID int64, action string, targetListID *int64)
}
