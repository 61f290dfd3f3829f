// File: internal/handler/health.go
package handler

import (
	"net/http"

	"kapda-dekho/internal/api"

	"github.com/labstack/echo/v4"
)

// HealthHandler 健康檢查
// @Summary     Health Check
// @Description 回傳服務存活狀態
// @Tags        health
// @Produce     json
// @Success     200 {object} api.HealthResponse
// @Router      /health [get]
func HealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.HealthResponse{Status: "ok"})
	}
}
