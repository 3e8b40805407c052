package ports

import (
	"context"

	"github.com/listkeep/todo-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
	// Logout records the audit entry; tearing down the session itself is the
	// transport layer's job.
	Logout(ctx context.Context, userID int64)
}
