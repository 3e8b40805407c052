package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/listkeep/todo-system/internal/api/middleware"
	"github.com/listkeep/todo-system/internal/core/domain"
	"github.com/listkeep/todo-system/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, email, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (*domain.User, error)
	logoutFn   func(ctx context.Context, userID int64)
}

func (s *stubAuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(ctx context.Context, userID int64) {
	if s.logoutFn != nil {
		s.logoutFn(ctx, userID)
	}
}

type stubListService struct {
	dashboardFn func(ctx context.Context, ownerID int64) ([]*domain.TodoList, error)
	createFn    func(ctx context.Context, ownerID int64, title string) (*domain.TodoList, error)
	getFn       func(ctx context.Context, callerID, listID int64) (*ports.ListDetail, error)
	deleteFn    func(ctx context.Context, callerID, listID int64) error
}

func (s *stubListService) Dashboard(ctx context.Context, ownerID int64) ([]*domain.TodoList, error) {
	return s.dashboardFn(ctx, ownerID)
}

func (s *stubListService) Create(ctx context.Context, ownerID int64, title string) (*domain.TodoList, error) {
	return s.createFn(ctx, ownerID, title)
}

func (s *stubListService) Get(ctx context.Context, callerID, listID int64) (*ports.ListDetail, error) {
	return s.getFn(ctx, callerID, listID)
}

func (s *stubListService) Delete(ctx context.Context, callerID, listID int64) error {
	return s.deleteFn(ctx, callerID, listID)
}

type stubTaskService struct {
	addFn    func(ctx context.Context, callerID, listID int64, content string, dueDate *time.Time) (*domain.Task, error)
	toggleFn func(ctx context.Context, callerID, taskID int64) (*domain.Task, error)
	deleteFn func(ctx context.Context, callerID, taskID int64) (int64, error)
}

func (s *stubTaskService) Add(ctx context.Context, callerID, listID int64, content string, dueDate *time.Time) (*domain.Task, error) {
	return s.addFn(ctx, callerID, listID, content, dueDate)
}

func (s *stubTaskService) Toggle(ctx context.Context, callerID, taskID int64) (*domain.Task, error) {
	return s.toggleFn(ctx, callerID, taskID)
}

func (s *stubTaskService) Delete(ctx context.Context, callerID, taskID int64) (int64, error) {
	return s.deleteFn(ctx, callerID, taskID)
}

type stubActivityService struct {
	listFn func(ctx context.Context, callerID int64) ([]*domain.ActivityEntry, error)
}

func (s *stubActivityService) List(ctx context.Context, callerID int64) ([]*domain.ActivityEntry, error) {
	return s.listFn(ctx, callerID)
}

type stubSessionStore struct {
	seq      int
	sessions map[string]int64
	deleted  []string
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]int64)}
}

func (s *stubSessionStore) Create(_ context.Context, userID int64) (string, error) {
	s.seq++
	sid := fmt.Sprintf("sid-%d", s.seq)
	s.sessions[sid] = userID
	return sid, nil
}

func (s *stubSessionStore) GetUserID(_ context.Context, sid string) (int64, error) {
	userID, ok := s.sessions[sid]
	if !ok {
		return 0, domain.ErrNoSession
	}
	return userID, nil
}

func (s *stubSessionStore) Delete(_ context.Context, sid string) error {
	delete(s.sessions, sid)
	s.deleted = append(s.deleted, sid)
	return nil
}

// newFormContext builds an echo context for a form POST with the validator
// installed, mimicking what the router wires up.
func newFormContext(t *testing.T, method, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// asPrincipal marks the context as authenticated, as the Session middleware
// would have.
func asPrincipal(c echo.Context, userID int64, sid string) {
	c.Set(middleware.ContextUserID, userID)
	if sid != "" {
		c.Set(middleware.ContextSessionID, sid)
	}
}
