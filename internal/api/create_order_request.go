package api

// OrderItemRequest 單筆商品描述，缺 name 或 price 的項目會被靜默略過
// swagger:model api.OrderItemRequest
type OrderItemRequest struct {
	Name  string  `json:"name" example:"Shirt"`
	Price string  `json:"price" example:"19.99"`
	Qty   int     `json:"qty" example:"2"`
	Img   *string `json:"img"`
}

// swagger:model api.CreateOrderRequest
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1"`
}
