package api

// swagger:model api.OrderItemResponse
type OrderItemResponse struct {
	Name  string  `json:"name" example:"Shirt"`
	Price string  `json:"price" example:"19.99"`
	Qty   int     `json:"qty" example:"2"`
	Img   *string `json:"img"`
}

// OrderResponse created_at 以 RFC3339 字串輸出
// swagger:model api.OrderResponse
type OrderResponse struct {
	ID        int                 `json:"id" example:"42"`
	Status    string              `json:"status" example:"Placed"`
	CreatedAt string              `json:"created_at" example:"2025-05-01T15:04:05Z"`
	Items     []OrderItemResponse `json:"items"`
}

// swagger:model api.OrdersResponse
type OrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// swagger:model api.CreateOrderResponse
type CreateOrderResponse struct {
	OrderID int `json:"order_id" example:"42"`
}
