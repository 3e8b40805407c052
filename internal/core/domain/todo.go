package domain

import (
	"errors"
	"time"
)

var ErrInvalidInput = errors.New("invalid input")
var ErrListNotFound = errors.New("list not found")
var ErrTaskNotFound = errors.New("task not found")
var ErrForbidden = errors.New("access forbidden")

// TodoList is owned by exactly one user. Tasks is always present: the data
// layer populates it on every read, never attached after the fact.
type TodoList struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	Tasks     []Task    `json:"tasks"`
}

// Task belongs to exactly one list and is removed with it.
type Task struct {
	ID          int64      `json:"id"`
	ListID      int64      `json:"list_id"`
	Content     string     `json:"content"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	IsCompleted bool       `json:"is_completed"`
	CreatedAt   time.Time  `json:"created_at"`
}
