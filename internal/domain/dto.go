package domain

type OrderItemInput struct {
	Name     string  `json:"item"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type PlaceOrderRequest struct {
	RestaurantID int64            `json:"restaurantId"`
	TableNo      string           `json:"tableno"`
	Items        []OrderItemInput `json:"items"`
	// Optional; computed from the items when absent.
	Subtotal *float64 `json:"subtotal,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateItemRequest struct {
	RestaurantID int64   `json:"restaurantId"`
	Category     string  `json:"type"`
	Name         string  `json:"item"`
	Price        float64 `json:"price"`
	Image        string  `json:"pic,omitempty"`
}

type UpdateItemRequest struct {
	Category *string  `json:"type,omitempty"`
	Name     *string  `json:"item,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Image    *string  `json:"pic,omitempty"`
}

type CreateRestaurantRequest struct {
	Name        string `json:"restaurantName"`
	Address     string `json:"address"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

type UpdateRestaurantRequest struct {
	Name        *string `json:"restaurantName,omitempty"`
	Address     *string `json:"address,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
}
