// File: internal/handler/orders/create.go
package orders

import (
	"net/http"
	"strings"

	"kapda-dekho/internal/api"
	"kapda-dekho/internal/database"
	"kapda-dekho/internal/event"
	"kapda-dekho/internal/middleware"
	"kapda-dekho/internal/model"

	"github.com/labstack/echo/v4"
)

// CreateOrderHandler 建立訂單與訂單項目
// @Summary     Create order
// @Description 建立一筆狀態為 Placed 的訂單；缺 name 或 price 的項目靜默略過
// @Description 訂單列與項目插入不在同一交易內，中途失敗可能留下無項目的訂單
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       body body api.CreateOrderRequest true "訂單項目"
// @Success     200 {object} api.CreateOrderResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /orders [post]
func CreateOrderHandler(db database.DB, rec *event.Recorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := c.Get(middleware.ContextUserIDKey).(int)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		}

		var req api.CreateOrderRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "No items to order"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "No items to order"})
		}

		order, err := createOrder(c.Request().Context(), db, userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		for _, it := range req.Items {
			name := strings.TrimSpace(it.Name)
			price := strings.TrimSpace(it.Price)
			if name == "" || price == "" {
				continue
			}
			qty := it.Qty
			if qty == 0 {
				qty = 1
			}
			err := createOrderItem(c.Request().Context(), db, &model.OrderItem{
				OrderID:     order.ID,
				ProductName: name,
				Price:       price,
				Qty:         qty,
				ImageURL:    it.Img,
			})
			if err != nil {
				// 訂單列已寫入且不回滾，保留既有的非原子行為
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
			}
		}

		rec.OrderPlaced(order.ID)
		return c.JSON(http.StatusOK, api.CreateOrderResponse{OrderID: order.ID})
	}
}
