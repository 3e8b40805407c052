package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/listkeep/todo-system/internal/core/domain"
)

type ListRepository struct {
	pool *pgxpool.Pool
}

func NewListRepository(pool *pgxpool.Pool) *ListRepository {
	return &ListRepository{pool: pool}
}

func (r *ListRepository) Create(ctx context.Context, list *domain.TodoList) (*domain.TodoList, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO todo_lists (title, owner_id, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		list.Title, list.OwnerID, list.CreatedAt,
	).Scan(&list.ID, &list.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert list: %w", err)
	}
	if list.Tasks == nil {
		list.Tasks = []domain.Task{}
	}
	return list, nil
}

func (r *ListRepository) GetByID(ctx context.Context, id int64) (*domain.TodoList, error) {
	var l domain.TodoList
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, owner_id, created_at
		 FROM todo_lists
		 WHERE id = $1`, id,
	).Scan(&l.ID, &l.Title, &l.OwnerID, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListNotFound
		}
		return nil, fmt.Errorf("find list: %w", err)
	}

	tasks, err := r.tasksForList(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	l.Tasks = tasks
	return &l, nil
}

func (r *ListRepository) ListsForOwner(ctx context.Context, ownerID int64) ([]*domain.TodoList, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, owner_id, created_at
		 FROM todo_lists
		 WHERE owner_id = $1
		 ORDER BY id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}
	defer rows.Close()

	lists := []*domain.TodoList{}
	for rows.Next() {
		var l domain.TodoList
		if err := rows.Scan(&l.ID, &l.Title, &l.OwnerID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		lists = append(lists, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}

	for _, l := range lists {
		tasks, err := r.tasksForList(ctx, l.ID)
		if err != nil {
			return nil, err
		}
		l.Tasks = tasks
	}
	return lists, nil
}

// Delete removes the list and every task under it. Both deletes run in one
// transaction: either the list and its tasks are all gone, or none are.
func (r *ListRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete list: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM tasks WHERE list_id = $1`, id); err != nil {
		return fmt.Errorf("delete list tasks: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM todo_lists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListNotFound
	}

	return tx.Commit(ctx)
}

func (r *ListRepository) tasksForList(ctx context.Context, listID int64) ([]domain.Task, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, list_id, content, due_date, is_completed, created_at
		 FROM tasks
		 WHERE list_id = $1
		 ORDER BY id`, listID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.ListID, &t.Content, &t.DueDate, &t.IsCompleted, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
