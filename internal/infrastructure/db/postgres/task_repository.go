package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/listkeep/todo-system/internal/core/domain"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO tasks (list_id, content, due_date, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, is_completed, created_at`,
		task.ListID, task.Content, task.DueDate, task.CreatedAt,
	).Scan(&task.ID, &task.IsCompleted, &task.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return task, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	var t domain.Task
	err := r.pool.QueryRow(ctx,
		`SELECT id, list_id, content, due_date, is_completed, created_at
		 FROM tasks
		 WHERE id = $1`, id,
	).Scan(&t.ID, &t.ListID, &t.Content, &t.DueDate, &t.IsCompleted, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &t, nil
}

// Toggle flips is_completed in a single statement so concurrent toggles
// cannot lose updates.
func (r *TaskRepository) Toggle(ctx context.Context, id int64) (*domain.Task, error) {
	var t domain.Task
	err := r.pool.QueryRow(ctx,
		`UPDATE tasks
		 SET is_completed = NOT is_completed
		 WHERE id = $1
		 RETURNING id, list_id, content, due_date, is_completed, created_at`, id,
	).Scan(&t.ID, &t.ListID, &t.Content, &t.DueDate, &t.IsCompleted, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("toggle task: %w", err)
	}
	return &t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var listID int64
	err := r.pool.QueryRow(ctx,
		`DELETE FROM tasks WHERE id = $1 RETURNING list_id`, id,
	).Scan(&listID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrTaskNotFound
		}
		return 0, fmt.Errorf("delete task: %w", err)
	}
	return listID, nil
}
