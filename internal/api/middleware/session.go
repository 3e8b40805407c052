package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/listkeep/todo-system/internal/core/ports"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "todo_session"

// LoginPath is where anonymous callers are sent.
const LoginPath = "/login"

// Context keys set by Session for downstream handlers.
const (
	ContextUserID    = "user_id"
	ContextSessionID = "session_id"
)

// IssueToken signs an HS256 token binding the session id to the user.
// The cookie is opaque to the client; the server verifies the signature
// before ever touching the session store.
func IssueToken(secret, sid string, userID int64, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"uid": userID,
		"exp": time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Session validates the session cookie and injects the authenticated user id
// and session id into context. Anonymous callers are redirected to the login
// route; no protected route bypasses this check.
func Session(secret string, sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return redirectToLogin(c)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !tkn.Valid {
				return redirectToLogin(c)
			}

			sid, _ := claims["sid"].(string)
			if sid == "" {
				return redirectToLogin(c)
			}

			// The token only proves the cookie was issued by us; the session
			// store decides whether it is still alive (logout revokes it).
			userID, err := sessions.GetUserID(c.Request().Context(), sid)
			if err != nil {
				return redirectToLogin(c)
			}

			c.Set(ContextUserID, userID)
			c.Set(ContextSessionID, sid)
			return next(c)
		}
	}
}

func redirectToLogin(c echo.Context) error {
	return c.Redirect(http.StatusFound, LoginPath+"?message=please+log+in+first")
}
