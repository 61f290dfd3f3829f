// File: cmd/service/main.go
// @title        Kapda Dekho API
// @version      1.0
// @description  這是 Kapda Dekho 服飾商店的後端 API 文件
// @host         localhost:8080
// @BasePath     /api
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"kapda-dekho/internal/cache"
	"kapda-dekho/internal/database"
	"kapda-dekho/internal/event"
	"kapda-dekho/internal/router"
	"kapda-dekho/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "kapda-dekho/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// sessionTTL session 有效期間，cookie 與伺服器端儲存共用
const sessionTTL = 7 * 24 * time.Hour

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.databaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	cch, err := newRedisClient(cfg.redisAddr, cfg.redisPassword, cfg.redisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer cch.Close()

	if err := runMigrationsFn(cfg.databaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	var store session.Store
	switch cfg.sessionBackend {
	case "cookie":
		store = session.NewSignedCookieStore([]byte(cfg.sessionSecret), sessionTTL)
	default:
		store = session.NewRedisStore(cch, sessionTTL)
	}
	sm := session.NewManager(store, sessionTTL, cfg.secureCookies)

	rec := event.NewRecorder(cch, cfg.workerCount)
	defer rec.Stop()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	// cookie 需跨來源攜帶，AllowCredentials 必須開啟
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.corsOrigin},
		AllowCredentials: true,
	}))

	router.Setup(e, db, sm, rec)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, cfg.listenAddr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
