package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/listkeep/todo-system/internal/api/metrics"
	"github.com/listkeep/todo-system/internal/core/domain"
	"github.com/listkeep/todo-system/internal/core/ports"
)

// TaskService mutates tasks. Ownership is always resolved through the parent
// list before any mutation.
type TaskService struct {
	tasks    ports.TaskRepository
	lists    ports.ListRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, lists ports.ListRepository, activity ports.ActivityRecorder, log zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, lists: lists, activity: activity, log: log}
}

func (s *TaskService) Add(ctx context.Context, callerID, listID int64, content string, dueDate *time.Time) (*domain.Task, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrInvalidInput
	}

	if err := s.checkListOwner(ctx, callerID, listID); err != nil {
		return nil, err
	}

	task := &domain.Task{
		ListID:    listID,
		Content:   content,
		DueDate:   dueDate,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}

	metrics.TasksCreatedTotal.Inc()
	s.activity.Record(ctx, callerID, fmt.Sprintf("Added task to list %d", listID), &listID)
	s.log.Info().Int64("task_id", created.ID).Int64("list_id", listID).Msg("task added")
	return created, nil
}

func (s *TaskService) Toggle(ctx context.Context, callerID, taskID int64) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.checkListOwner(ctx, callerID, task.ListID); err != nil {
		return nil, err
	}

	toggled, err := s.tasks.Toggle(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("toggle task: %w", err)
	}

	metrics.TasksToggledTotal.Inc()
	s.log.Info().Int64("task_id", taskID).Bool("is_completed", toggled.IsCompleted).Msg("task toggled")
	return toggled, nil
}

func (s *TaskService) Delete(ctx context.Context, callerID, taskID int64) (int64, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return 0, err
	}
	if err := s.checkListOwner(ctx, callerID, task.ListID); err != nil {
		return 0, err
	}

	listID, err := s.tasks.Delete(ctx, taskID)
	if err != nil {
		return 0, fmt.Errorf("delete task: %w", err)
	}

	s.log.Info().Int64("task_id", taskID).Int64("list_id", listID).Msg("task deleted")
	return listID, nil
}

// checkListOwner maps a missing list to ErrListNotFound and a foreign list to
// ErrForbidden.
func (s *TaskService) checkListOwner(ctx context.Context, callerID, listID int64) error {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return err
	}
	if list.OwnerID != callerID {
		return domain.ErrForbidden
	}
	return nil
}
