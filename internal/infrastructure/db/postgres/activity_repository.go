package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/listkeep/todo-system/internal/core/domain"
)

// ActivityRepository is insert-and-read-only: the activity_log table has no
// update or delete path in the application.
type ActivityRepository struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

func (r *ActivityRepository) Append(ctx context.Context, entry *domain.ActivityEntry) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO activity_log (user_id, action, target_list_id, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		entry.UserID, entry.Action, entry.TargetListID, entry.Timestamp,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("insert activity entry: %w", err)
	}
	return nil
}

func (r *ActivityRepository) List(ctx context.Context) ([]*domain.ActivityEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, action, target_list_id, created_at
		 FROM activity_log
		 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	entries := []*domain.ActivityEntry{}
	for rows.Next() {
		var e domain.ActivityEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.TargetListID, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan activity entry: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
