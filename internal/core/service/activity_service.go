package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/listkeep/todo-system/internal/api/metrics"
	"github.com/listkeep/todo-system/internal/core/domain"
	"github.com/listkeep/todo-system/internal/core/ports"
)

// ActivityRecorder is the single writer to the audit trail. A failed append
// is logged and counted but never propagated: the action that triggered it
// already succeeded and must stay that way.
type ActivityRecorder struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

func NewActivityRecorder(repo ports.ActivityRepository, log zerolog.Logger) *ActivityRecorder {
	return &ActivityRecorder{repo: repo, log: log}
}

func (r *ActivityRecorder) Record(ctx context.Context, userID int64, action string, targetListID *int64) {
	start := time.Now()
	entry := &domain.ActivityEntry{
		UserID:       userID,
		Action:       action,
		TargetListID: targetListID,
		Timestamp:    start.UTC(),
	}

	if err := r.repo.Append(ctx, entry); err != nil {
		metrics.ActivityAppendFailuresTotal.Inc()
		r.log.Warn().Err(err).Int64("user_id", userID).Str("action", action).Msg("failed to append activity entry")
		return
	}
	metrics.ActivityAppendDuration.Observe(time.Since(start).Seconds())
}

// ActivityService serves the audit trail view. Reading the log is itself a
// logged action.
type ActivityService struct {
	repo     ports.ActivityRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewActivityService(repo ports.ActivityRepository, activity ports.ActivityRecorder, log zerolog.Logger) *ActivityService {
	return &ActivityService{repo: repo, activity: activity, log: log}
}

func (s *ActivityService) List(ctx context.Context, callerID int64) ([]*domain.ActivityEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	s.activity.Record(ctx, callerID, "check activity_logs", nil)
	return entries, nil
}
