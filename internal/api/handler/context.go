package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/listkeep/todo-system/internal/api/middleware"
)

// ctxPrincipal extracts the authenticated user id injected by the Session
// middleware. Its absence means the route was wired without the middleware,
// which is a routing bug; fail closed with 401.
func ctxPrincipal(c echo.Context) (int64, error) {
	userID, ok := c.Get(middleware.ContextUserID).(int64)
	if !ok || userID == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return userID, nil
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
