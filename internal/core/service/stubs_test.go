package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/listkeep/todo-system/internal/core/domain"
)

// In-memory repositories shared by the service tests. They mirror the
// relational store's observable behaviour: id-ordered reads, uniqueness on
// username, cascade on list delete.

type memUsers struct {
	seq   int64
	users map[int64]*domain.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[int64]*domain.User)}
}

func (m *memUsers) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range m.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	m.seq++
	clone := *user
	clone.ID = m.seq
	m.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type memTasks struct {
	seq   int64
	tasks map[int64]*domain.Task
}

func newMemTasks() *memTasks {
	return &memTasks{tasks: make(map[int64]*domain.Task)}
}

func (m *memTasks) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	m.seq++
	clone := *task
	clone.ID = m.seq
	m.tasks[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (m *memTasks) GetByID(_ context.Context, id int64) (*domain.Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	clone := *t
	return &clone, nil
}

func (m *memTasks) Toggle(_ context.Context, id int64) (*domain.Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	t.IsCompleted = !t.IsCompleted
	clone := *t
	return &clone, nil
}

func (m *memTasks) Delete(_ context.Context, id int64) (int64, error) {
	t, ok := m.tasks[id]
	if !ok {
		return 0, domain.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return t.ListID, nil
}

func (m *memTasks) forList(listID int64) []domain.Task {
	out := []domain.Task{}
	for _, t := range m.tasks {
		if t.ListID == listID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type memLists struct {
	seq   int64
	lists map[int64]*domain.TodoList
	tasks *memTasks
}

func newMemLists(tasks *memTasks) *memLists {
	return &memLists{lists: make(map[int64]*domain.TodoList), tasks: tasks}
}

func (m *memLists) Create(_ context.Context, list *domain.TodoList) (*domain.TodoList, error) {
	m.seq++
	clone := *list
	clone.ID = m.seq
	m.lists[clone.ID] = &clone
	out := clone
	out.Tasks = []domain.Task{}
	return &out, nil
}

func (m *memLists) GetByID(_ context.Context, id int64) (*domain.TodoList, error) {
	l, ok := m.lists[id]
	if !ok {
		return nil, domain.ErrListNotFound
	}
	clone := *l
	clone.Tasks = m.tasks.forList(id)
	return &clone, nil
}

func (m *memLists) ListsForOwner(_ context.Context, ownerID int64) ([]*domain.TodoList, error) {
	out := []*domain.TodoList{}
	for _, l := range m.lists {
		if l.OwnerID == ownerID {
			clone := *l
			clone.Tasks = m.tasks.forList(l.ID)
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memLists) Delete(_ context.Context, id int64) error {
	if _, ok := m.lists[id]; !ok {
		return domain.ErrListNotFound
	}
	for taskID, t := range m.tasks.tasks {
		if t.ListID == id {
			delete(m.tasks.tasks, taskID)
		}
	}
	delete(m.lists, id)
	return nil
}

type memActivity struct {
	seq     int64
	entries []*domain.ActivityEntry
	fail    error
}

func newMemActivity() *memActivity {
	return &memActivity{}
}

func (m *memActivity) Append(_ context.Context, entry *domain.ActivityEntry) error {
	if m.fail != nil {
		return m.fail
	}
	m.seq++
	clone := *entry
	clone.ID = m.seq
	if clone.Timestamp.IsZero() {
		clone.Timestamp = time.Now().UTC()
	}
	m.entries = append(m.entries, &clone)
	return nil
}

func (m *memActivity) List(_ context.Context) ([]*domain.ActivityEntry, error) {
	out := make([]*domain.ActivityEntry, 0, len(m.entries))
	for _, e := range m.entries {
		clone := *e
		out = append(out, &clone)
	}
	return out, nil
}

func (m *memActivity) lastAction() string {
	if len(m.entries) == 0 {
		return ""
	}
	return m.entries[len(m.entries)-1].Action
}

var errStoreDown = errors.New("store unavailable")
