// File: internal/handler/auth/signup.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"kapda-dekho/internal/api"
	"kapda-dekho/internal/database"
	"kapda-dekho/internal/model"
	"kapda-dekho/internal/service"
	"kapda-dekho/internal/session"
	"kapda-dekho/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	hashPassword    = service.HashPassword
	comparePassword = service.ComparePassword
	createUser      = store.CreateUser
	getUserByEmail  = store.GetUserByEmail
	getUserByID     = store.GetUserByID
)

// SignupHandler 註冊新帳號並建立 session
// @Summary     Sign up
// @Description 建立新帳號（Email 會自動轉小寫），成功後直接建立 session
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.SignupRequest true "註冊資料"
// @Success     200 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /signup [post]
func SignupHandler(db database.DB, sm *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "All fields are required"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "All fields are required"})
		}

		name := strings.TrimSpace(req.Name)
		email := strings.ToLower(strings.TrimSpace(req.Email))
		password := strings.TrimSpace(req.Password)
		if name == "" || email == "" || password == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "All fields are required"})
		}

		// Email 唯一性檢查先於插入
		if _, err := getUserByEmail(c.Request().Context(), db, email); err == nil {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Email already registered"})
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		hash, err := hashPassword(password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         name,
			Email:        email,
			PasswordHash: hash,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
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
