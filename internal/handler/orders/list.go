// File: internal/handler/orders/list.go
package orders

import (
	"net/http"
	"time"

	"kapda-dekho/internal/api"
	"kapda-dekho/internal/database"
	"kapda-dekho/internal/middleware"
	"kapda-dekho/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createOrder      = store.CreateOrder
	createOrderItem  = store.CreateOrderItem
	listOrdersByUser = store.ListOrdersByUser
	listOrderItems   = store.ListOrderItems
)

// ListOrdersHandler 取得當前使用者的所有訂單，由新到舊
// @Summary     List orders
// @Description 回傳使用者全部訂單與訂單項目，依建立時間由新到舊排序
// @Tags        orders
// @Produce     json
// @Success     200 {object} api.OrdersResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /orders [get]
func ListOrdersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := c.Get(middleware.ContextUserIDKey).(int)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		}

		orders, err := listOrdersByUser(c.Request().Context(), db, userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		resp := api.OrdersResponse{Orders: make([]api.OrderResponse, 0, len(orders))}
		for _, o := range orders {
			items, err := listOrderItems(c.Request().Context(), db, o.ID)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
			}
			itemResp := make([]api.OrderItemResponse, 0, len(items))
			for _, it := range items {
				itemResp = append(itemResp, api.OrderItemResponse{
					Name:  it.ProductName,
					Price: it.Price,
					Qty:   it.Qty,
					Img:   it.ImageURL,
				})
			}
			resp.Orders = append(resp.Orders, api.OrderResponse{
				ID:        o.ID,
				Status:    o.Status,
				CreatedAt: o.CreatedAt.Format(time.RFC3339),
				Items:     itemResp,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
