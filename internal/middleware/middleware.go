package middleware

import (
	"net/http"

	"kapda-dekho/internal/api"
	"kapda-dekho/internal/session"

	"github.com/labstack/echo/v4"
)

const ContextUserIDKey = "user_id"

// RequireSession 在 handler 執行前解析 session
// 無有效 session 時直接回 401，不觸及資料庫
func RequireSession(sm *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := sm.UserID(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
			}
			c.Set(ContextUserIDKey, userID)
			return next(c)
		}
	}
}
