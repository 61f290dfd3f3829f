// File: internal/handler/auth/me.go
package auth

import (
	"errors"
	"net/http"

	"kapda-dekho/internal/api"
	"kapda-dekho/internal/database"
	"kapda-dekho/internal/middleware"
	"kapda-dekho/internal/session"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// MeHandler 取得當前使用者資訊
// @Summary     Get current user
// @Description 取得 session 對應的使用者；使用者已不存在時清除 session 並回 401
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.AuthResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /me [get]
func MeHandler(db database.DB, sm *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := c.Get(middleware.ContextUserIDKey).(int)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		}

		user, err := getUserByID(c.Request().Context(), db, userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// session 指向已刪除的帳號，順手清掉
				sm.Destroy(c)
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		return c.JSON(http.StatusOK, api.AuthResponse{User: api.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		}})
	}
}
