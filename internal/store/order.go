package store

import (
	"context"
	"fmt"

	"kapda-dekho/internal/database"
	"kapda-dekho/internal/model"
)

func CreateOrder(ctx context.Context, db database.DB, userID int) (*model.Order, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO orders (user_id, status)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		userID,
		model.OrderStatusPlaced,
	)
	o := &model.Order{UserID: userID, Status: model.OrderStatusPlaced}
	if err := row.Scan(&o.ID, &o.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateOrder: %w", err)
	}
	return o, nil
}

func CreateOrderItem(ctx context.Context, db database.DB, item *model.OrderItem) error {
	_, err := db.Exec(ctx,
		`INSERT INTO order_items (order_id, product_name, price, qty, image_url)
		 VALUES ($1, $2, $3, $4, $5)`,
		item.OrderID,
		item.ProductName,
		item.Price,
		item.Qty,
		item.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("CreateOrderItem: %w", err)
	}
	return nil
}

// ListOrdersByUser 取得使用者所有訂單，依建立時間由新到舊排序
func ListOrdersByUser(ctx context.Context, db database.DB, userID int) ([]model.Order, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, status, created_at
		 FROM orders WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListOrdersByUser: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListOrdersByUser: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListOrdersByUser: %w", err)
	}
	return orders, nil
}

func ListOrderItems(ctx context.Context, db database.DB, orderID int) ([]model.OrderItem, error) {
	rows, err := db.Query(ctx,
		`SELECT id, order_id, product_name, price, qty, image_url
		 FROM order_items WHERE order_id = $1
		 ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListOrderItems: %w", err)
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductName, &it.Price, &it.Qty, &it.ImageURL); err != nil {
			return nil, fmt.Errorf("ListOrderItems: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListOrderItems: %w", err)
	}
	return items, nil
}
