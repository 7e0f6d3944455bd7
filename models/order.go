package models

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "placed"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
)

// Order is immutable once placed apart from status writes and a single
// feedback submission. Items and TotalAmount are snapshots from placement
// time; later menu or price changes never touch them. Timestamp is the
// placement time in Unix milliseconds.
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	RestaurantID    string      `json:"restaurant_id"`
	Items           []CartItem  `json:"items"`
	TotalAmount     float64     `json:"total_amount"`
	Status          OrderStatus `json:"status"`
	Timestamp       int64       `json:"timestamp"`
	DeliveryAddress string      `json:"delivery_address"`
	UserName        string      `json:"user_name,omitempty"`
	UserPhone       string      `json:"user_phone,omitempty"`
	Rating          int         `json:"rating,omitempty"`
	Feedback        string      `json:"feedback,omitempty"`
}
