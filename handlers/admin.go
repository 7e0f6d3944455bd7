package handlers

import (
	"net/http"

	"campus-eats-api/models"
	"campus-eats-api/statemachine"

	"github.com/gin-gonic/gin"
)

// AdminGetAllUsers returns seeded and registered users — super admin only
func AdminGetAllUsers(c *gin.Context) {
	users := identity.AllUsers()

	if role := c.Query("role"); role != "" {
		var matched []models.User
		for _, u := range users {
			if u.Role == models.UserRole(role) {
				matched = append(matched, u)
			}
		}
		users = matched
	}

	views := make([]gin.H, 0, len(users))
	for _, u := range users {
		views = append(views, userView(u))
	}
	c.JSON(http.StatusOK, gin.H{"count": len(views), "users": views})
}

// AdminGetAllOrders returns every order with a dashboard summary
func AdminGetAllOrders(c *gin.Context) {
	orders := catalog.Orders()

	if status := c.Query("status"); status != "" {
		var matched []models.Order
		for _, o := range orders {
			if o.Status == models.OrderStatus(status) {
				matched = append(matched, o)
			}
		}
		orders = matched
	}
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		var matched []models.Order
		for _, o := range orders {
			if o.RestaurantID == restaurantID {
				matched = append(matched, o)
			}
		}
		orders = matched
	}

	summary := map[string]int{}
	var totalRevenue float64
	for _, o := range orders {
		summary[string(o.Status)]++
		if o.Status == models.StatusDelivered {
			totalRevenue += o.TotalAmount
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"total_revenue": totalRevenue,
		"count":         len(orders),
		"orders":        orders,
	})
}

// AdminForceOrderStatus lets the super admin set any order to any status
func AdminForceOrderStatus(c *gin.Context) {
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
	catalog.UpdateOrderStatus(order.ID, req.Status)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated by admin",
		"order_id":        order.ID,
		"previous_status": order.Status,
		"new_status":      req.Status,
	})
}

// ── Restaurant management (platform-wide) ───────────────────────────────────

type CreateRestaurantRequest struct {
	Name         string  `json:"name" binding:"required"`
	Image        string  `json:"image"`
	Rating       float64 `json:"rating" binding:"min=0,max=5"`
	Category     string  `json:"category"`
	DeliveryTime string  `json:"delivery_time"`
	Description  string  `json:"description"`
}

// AdminCreateRestaurant adds a restaurant. Quick-adds without a rating get
// the 4.0 default.
func AdminCreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating := req.Rating
	if rating == 0 {
		rating = 4.0
	}
	restaurant := catalog.AddRestaurant(models.Restaurant{
		Name:         req.Name,
		Image:        req.Image,
		Rating:       rating,
		Category:     req.Category,
		DeliveryTime: req.DeliveryTime,
		Description:  req.Description,
	})
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant created", "restaurant": restaurant})
}

// AdminUpdateRestaurant replaces a restaurant by id
func AdminUpdateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant := models.Restaurant{
		ID:           c.Param("id"),
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

// AdminDeleteRestaurant removes a restaurant and cascades to its menu
// items. Historical orders are left untouched.
func AdminDeleteRestaurant(c *gin.Context) {
	if _, ok := catalog.FindRestaurant(c.Param("id")); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	catalog.DeleteRestaurant(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant and its menu deleted"})
}

// ── Menu management (platform-wide) ─────────────────────────────────────────

// AdminAddMenuItem adds a menu item to any restaurant
func AdminAddMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := catalog.AddFoodItem(req.foodItem("", c.Param("id")))
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// AdminUpdateMenuItem replaces any menu item
func AdminUpdateMenuItem(c *gin.Context) {
	existing, ok := catalog.FindFoodItem(c.Param("itemId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
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

// AdminDeleteMenuItem removes any menu item
func AdminDeleteMenuItem(c *gin.Context) {
	if _, ok := catalog.FindFoodItem(c.Param("itemId")); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	catalog.DeleteFoodItem(c.Param("itemId"))
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
