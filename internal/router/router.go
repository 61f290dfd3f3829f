// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"kapda-dekho/internal/database"
	"kapda-dekho/internal/event"
	"kapda-dekho/internal/handler"
	"kapda-dekho/internal/handler/auth"
	"kapda-dekho/internal/handler/orders"
	"kapda-dekho/internal/middleware"
	"kapda-dekho/internal/session"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, sm *session.Manager, rec *event.Recorder) {
	api := e.Group("/api")

	// 健康檢查（免登入）
	api.GET("/health", handler.HealthHandler())

	// 帳號與 session
	api.POST("/signup", auth.SignupHandler(db, sm))
	api.POST("/login", auth.LoginHandler(db, sm))
	api.POST("/logout", auth.LogoutHandler(sm))
	api.GET("/me", auth.MeHandler(db, sm), middleware.RequireSession(sm))

	// 訂單（需登入）
	api.GET("/orders", orders.ListOrdersHandler(db), middleware.RequireSession(sm))
	api.POST("/orders", orders.CreateOrderHandler(db, rec), middleware.RequireSession(sm))
}
