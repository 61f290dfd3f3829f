// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"strings"

	"kapda-dekho/internal/api"
	"kapda-dekho/internal/database"
	"kapda-dekho/internal/session"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並建立 session
// @Summary     Log in
// @Description 以 Email 與 Password 驗證，成功後建立 session
// @Description 查無帳號與密碼錯誤回傳相同訊息，避免帳號列舉
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "登入資料"
// @Success     200 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB, sm *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Email and password are required"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Email and password are required"})
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		password := strings.TrimSpace(req.Password)
		if email == "" || password == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Email and password are required"})
		}

		user, err := getUserByEmail(c.Request().Context(), db, email)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid credentials"})
		}

		if err := comparePassword(user.PasswordHash, password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid credentials"})
		}

		if err := sm.Establish(c, user.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to establish session"})
		}

		return c.JSON(http.StatusOK, api.AuthResponse{User: api.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		}})
	}
}
