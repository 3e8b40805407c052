package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/listkeep/todo-system/internal/api/middleware"
	"github.com/listkeep/todo-system/internal/core/ports"
)

// AuthHandler owns the register, login, and logout routes plus the session
// cookie lifecycle.
type AuthHandler struct {
	auth       ports.AuthService
	sessions   ports.SessionStore
	secret     string
	sessionTTL time.Duration
}

func NewAuthHandler(auth ports.AuthService, sessions ports.SessionStore, secret string, sessionTTL time.Duration) *AuthHandler {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthHandler{auth: auth, sessions: sessions, secret: secret, sessionTTL: sessionTTL}
}

// RegisterForm handles GET /register.
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return c.JSON(http.StatusOK, formResponse{Mode: "register", Message: "enter username, email and password"})
}

// Register handles POST /register: creates the account and redirects to the
// login page. No session is started; the new user signs in explicitly.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.auth.Register(c.Request().Context(), req.Username, req.Email, req.Password); err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/login")
}

// LoginForm handles GET /login.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, formResponse{Mode: "login", Message: "enter username and password"})
}

// Login handles POST /login: verifies credentials, opens a session, sets the
// signed cookie, and redirects to the dashboard. No session state is created
// on failure.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	sid, err := h.sessions.Create(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	token, err := middleware.IssueToken(h.secret, sid, user.ID, h.sessionTTL)
	if err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie(token, int(h.sessionTTL.Seconds())))
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout handles GET /logout: records the action while the principal is still
// known, revokes the session, expires the cookie, and redirects to login.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	h.auth.Logout(c.Request().Context(), userID)

	if sid, ok := c.Get(middleware.ContextSessionID).(string); ok && sid != "" {
		if err := h.sessions.Delete(c.Request().Context(), sid); err != nil {
			return err
		}
	}

	c.SetCookie(h.sessionCookie("", -1))
	return c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
