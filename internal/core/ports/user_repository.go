package ports

import (
	"context"

	"github.com/listkeep/todo-system/internal/core/domain"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create inserts a new user. A username collision surfaces as
	// domain.ErrUserExists via the store's uniqueness constraint.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
