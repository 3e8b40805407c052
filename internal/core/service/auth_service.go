package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/listkeep/todo-system/internal/api/metrics"
	"github.com/listkeep/todo-system/internal/core/domain"
	"github.com/listkeep/todo-system/internal/core/ports"
)

// AuthService implements registration, login and logout bookkeeping.
type AuthService struct {
	users    ports.UserRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, activity ports.ActivityRecorder, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, activity: activity, log: log}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.activity.Record(ctx, created.ID, "Registered", nil)
	s.log.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same error as a bad password: login must not reveal which
			// usernames exist.
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.activity.Record(ctx, user.ID, "Logged in", nil)
	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user logged in")
	return user, nil
}

// Logout only records the audit entry. The HTTP layer owns cookie and session
// teardown.
func (s *AuthService) Logout(ctx context.Context, userID int64) {
	s.activity.Record(ctx, userID, "Logged out", nil)
	s.log.Info().Int64("user_id", userID).Msg("user logged out")
}
