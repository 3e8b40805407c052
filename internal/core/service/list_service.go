package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/listkeep/todo-system/internal/api/metrics"
	"github.com/listkeep/todo-system/internal/core/domain"
	"github.com/listkeep/todo-system/internal/core/ports"
)

// ListService enforces ownership over todo lists and drives the cascade
// delete. Activity recording is best-effort and happens after the primary
// mutation succeeds.
type ListService struct {
	lists    ports.ListRepository
	users    ports.UserRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewListService(lists ports.ListRepository, users ports.UserRepository, activity ports.ActivityRecorder, log zerolog.Logger) *ListService {
	return &ListService{lists: lists, users: users, activity: activity, log: log}
}

func (s *ListService) Dashboard(ctx context.Context, ownerID int64) ([]*domain.TodoList, error) {
	lists, err := s.lists.ListsForOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	return lists, nil
}

func (s *ListService) Create(ctx context.Context, ownerID int64, title string) (*domain.TodoList, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrInvalidInput
	}

	list := &domain.TodoList{
		Title:     title,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
		Tasks:     []domain.Task{},
	}

	created, err := s.lists.Create(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}

	metrics.ListsCreatedTotal.Inc()
	s.activity.Record(ctx, ownerID, fmt.Sprintf("Created list '%s'", created.Title), &created.ID)
	s.log.Info().Int64("list_id", created.ID).Int64("owner_id", ownerID).Msg("list created")
	return created, nil
}

func (s *ListService) Get(ctx context.Context, callerID, listID int64) (*ports.ListDetail, error) {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list.OwnerID != callerID {
		return nil, domain.ErrForbidden
	}

	detail := &ports.ListDetail{List: list}
	owner, err := s.users.GetByID(ctx, list.OwnerID)
	if err == nil {
		detail.OwnerUsername = owner.Username
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("get list owner: %w", err)
	}

	s.activity.Record(ctx, callerID, fmt.Sprintf("Viewed list %d", listID), &listID)
	return detail, nil
}

func (s *ListService) Delete(ctx context.Context, callerID, listID int64) error {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return err
	}
	if list.OwnerID != callerID {
		return domain.ErrForbidden
	}

	if err := s.lists.Delete(ctx, listID); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}

	metrics.ListsDeletedTotal.Inc()
	s.activity.Record(ctx, callerID, fmt.Sprintf("Deleted list %d", listID), &listID)
	s.log.Info().Int64("list_id", listID).Int64("owner_id", callerID).Int("tasks", len(list.Tasks)).Msg("list deleted")
	return nil
}
