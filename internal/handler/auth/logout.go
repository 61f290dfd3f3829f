// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"kapda-dekho/internal/api"
	"kapda-dekho/internal/session"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 清除 session（冪等，未登入時也回成功）
// @Summary     Log out
// @Description 撤銷 session 並清除 cookie，未登入時也回傳成功
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.LogoutResponse
// @Router      /logout [post]
func LogoutHandler(sm *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		sm.Destroy(c)
		return c.JSON(http.StatusOK, api.LogoutResponse{OK: true})
	}
}
