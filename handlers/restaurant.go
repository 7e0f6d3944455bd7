package handlers

import (
	"net/http"

	"campus-eats-api/middleware"
	"campus-eats-api/models"
	"campus-eats-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ── Restaurant management ───────────────────────────────────────────────────

// GetMyRestaurant fetches the restaurant the caller is scoped to
func GetMyRestaurant(c *gin.Context) {
	restaurant, ok := catalog.FindRestaurant(middleware.GetRestaurantID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant,
		"menu":       catalog.MenuFor(restaurant.ID),
	})
}

type UpdateRestaurantRequest struct {
	Name         string  `json:"name" binding:"required"`
	Image        string  `json:"image"`
	Rating       float64 `json:"rating" binding:"min=0,max=5"`
	Category     string  `json:"category"`
	DeliveryTime string  `json:"delivery_time"`
	Description  string  `json:"description"`
}

// UpdateMyRestaurant replaces the caller's restaurant details
func UpdateMyRestaurant(c *gin.Context) {
	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant := models.Restaurant{
		ID:           middleware.GetRestaurantID(c),
		Name:         req.Name,
		Image:        req.Image,
		Rating:       req.Rating,
		Category:     req.Category,
		DeliveryTime: req.DeliveryTime,
		Description:  req.Description,
	}
	if err := catalog.UpdateRestaurant(restaurant); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}

// ── Menu management ─────────────────────────────────────────────────────────

type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Image       string  `json:"image"`
	Type        string  `json:"type" binding:"required,oneof=veg non-veg"`
	IsAvailable *bool   `json:"is_available"`
}

func (req MenuItemRequest) foodItem(id, restaurantID string) models.FoodItem {
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	return models.FoodItem{
		ID:           id,
		RestaurantID: restaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Image:        req.Image,
		Type:         models.FoodType(req.Type),
		IsAvailable:  available,
	}
}

// AddMenuItem adds an item to the caller's restaurant menu
func AddMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := catalog.AddFoodItem(req.foodItem("", middleware.GetRestaurantID(c)))
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// UpdateMenuItem replaces a menu item owned by the caller's restaurant
func UpdateMenuItem(c *gin.Context) {
	existing, ok := catalog.FindFoodItem(c.Param("itemId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if existing.RestaurantID != middleware.GetRestaurantID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this menu item"})
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := req.foodItem(existing.ID, existing.RestaurantID)
	if err := catalog.UpdateFoodItem(item); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem removes a menu item owned by the caller's restaurant
func DeleteMenuItem(c *gin.Context) {
	existing, ok := catalog.FindFoodItem(c.Param("itemId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if existing.RestaurantID != middleware.GetRestaurantID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this menu item"})
		return
	}

	catalog.DeleteFoodItem(existing.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

type DescribeRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// DescribeMenuItem asks the generation service for a one-sentence menu
// description. Always answers 200; service failures yield a fallback text.
func DescribeMenuItem(c *gin.Context) {
	var req DescribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	description := describer.FoodDescription(c.Request.Context(), req.Name, req.Category)
	c.JSON(http.StatusOK, gin.H{"description": description})
}

// ── Order management ────────────────────────────────────────────────────────

// GetRestaurantOrders returns the caller restaurant's orders with a status
// summary
func GetRestaurantOrders(c *gin.Context) {
	orders := catalog.OrdersForRestaurant(middleware.GetRestaurantID(c))

	if status := c.Query("status"); status != "" {
		var matched []models.Order
		for _, o := range orders {
			if o.Status == models.OrderStatus(status) {
				matched = append(matched, o)
			}
		}
		orders = matched
	}

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus writes a new status on one of the restaurant's orders.
// Any known status is accepted, in any direction; the lifecycle is advisory.
func UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !statemachine.IsKnown(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status: " + string(req.Status)})
		return
	}

	order, ok := catalog.FindOrder(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.RestaurantID != middleware.GetRestaurantID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order belongs to another restaurant"})
		return
	}

	if err := catalog.UpdateOrderStatus(order.ID, req.Status); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": order.Status,
		"new_status":      req.Status,
	})
}
