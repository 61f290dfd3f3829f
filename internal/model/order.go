// File: internal/model/order.go
package model

import "time"

type Order struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// OrderStatusPlaced 訂單建立時的固定初始狀態
const OrderStatusPlaced = "Placed"

type OrderItem struct {
	ID          int     `db:"id" json:"id"`
	OrderID     int     `db:"order_id" json:"order_id"`
	ProductName string  `db:"product_name" json:"product_name"`
	Price       string  `db:"price" json:"price"`
	Qty         int     `db:"qty" json:"qty"`
	ImageURL    *string `db:"image_url" json:"image_url"`
}
