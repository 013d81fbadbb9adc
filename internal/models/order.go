package models

import "time"

// Order est immuable une fois créée : nom/adresse/pincode et total sont des
// instantanés pris au moment de l'achat.
type Order struct {
	OrderID   string      `json:"order_id"`
	UserID    *string     `json:"user_id,omitempty"`
	Name      string      `json:"name"`
	Address   string      `json:"address"`
	Pincode   string      `json:"pincode"`
	Total     int64       `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []OrderItem `json:"items,omitempty"`
}

// OrderItem fige le prix unitaire au moment de l'achat ; Product.Price peut
// changer ensuite sans toucher aux commandes historiques.
type OrderItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
}
