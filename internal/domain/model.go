package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	// Declared in the schema; no endpoint sets it yet.
	StatusCancelled OrderStatus = "cancelled"
)

type Restaurant struct {
	ID          int64  `json:"id"`
	Name        string `json:"restaurantName"`
	Address     string `json:"address"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

type MenuItem struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurantId"`
	Category     string    `json:"type"`
	Name         string    `json:"item"`
	Price        float64   `json:"price"`
	Image        string    `json:"pic,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Order struct {
	ID           int64       `json:"id"`
	Number       string      `json:"orderNumber"`
	RestaurantID int64       `json:"restaurantId"`
	TableNo      string      `json:"tableno"`
	Items        []OrderItem `json:"items"`
	Subtotal     float64     `json:"subtotal"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

type OrderItem struct {
	Name     string  `json:"item"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
