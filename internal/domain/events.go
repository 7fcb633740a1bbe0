package domain

import "time"

type OrderItemMsg struct {
	Name     string  `json:"item"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderPlacedMessage is published to the kitchen queue after an order
// is persisted.
type OrderPlacedMessage struct {
	OrderNumber  string         `json:"order_number"`
	RestaurantID int64          `json:"restaurant_id"`
	TableNo      string         `json:"tableno"`
	Items        []OrderItemMsg `json:"items"`
	Subtotal     float64        `json:"subtotal"`
	PlacedAt     time.Time      `json:"placed_at"`
}
