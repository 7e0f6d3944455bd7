package models

type Restaurant struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Rating       float64 `json:"rating"`
	Category     string  `json:"category"`
	DeliveryTime string  `json:"delivery_time"`
	Description  string  `json:"description"`
}

// FoodType marks a menu entry as veg or non-veg
type FoodType string

const (
	FoodVeg    FoodType = "veg"
	FoodNonVeg FoodType = "non-veg"
)

type FoodItem struct {
	ID           string   `json:"id"`
	RestaurantID string   `json:"restaurant_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Image        string   `json:"image"`
	Type         FoodType `json:"type"`
	IsAvailable  bool     `json:"is_available"`
}

// CartItem is a food item plus a quantity. Orders carry copies of these, so
// a later price change on the menu never touches a placed order.
type CartItem struct {
	FoodItem
	Quantity int `json:"quantity"`
}
