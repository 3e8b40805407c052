package domain

import "time"

// ActivityEntry is one row of the append-only audit trail. Entries are never
// mutated or deleted; TargetListID is informational and may outlive the list
// it points at.
type ActivityEntry struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Action       string    `json:"action"`
	TargetListID *int64    `json:"target_list_id,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
