package handlers

import (
	"net/http"
	"strings"

	"campus-eats-api/models"
	"campus-eats-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns all restaurants (public)
func ListRestaurants(c *gin.Context) {
	restaurants := catalog.Restaurants()

	if search := c.Query("search"); search != "" {
		var matched []models.Restaurant
		for _, r := range restaurants {
			if containsFold(r.Name, search) || containsFold(r.Category, search) {
				matched = append(matched, r)
			}
		}
		restaurants = matched
	}

	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant
func GetRestaurant(c *gin.Context) {
	restaurant, ok := catalog.FindRestaurant(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetMenu returns the menu for a specific restaurant (public)
func GetMenu(c *gin.Context) {
	restaurant, ok := catalog.FindRestaurant(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	items := catalog.MenuFor(restaurant.ID)

	if foodType := c.Query("type"); foodType != "" {
		var matched []models.FoodItem
		for _, item := range items {
			if item.Type == models.FoodType(foodType) {
				matched = append(matched, item)
			}
		}
		items = matched
	}
	if c.Query("available") == "true" {
		var matched []models.FoodItem
		for _, item := range items {
			if item.IsAvailable {
				matched = append(matched, item)
			}
		}
		items = matched
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"count":      len(items),
		"menu":       items,
	})
}

// GetLifecycleInfo returns the expected order lifecycle for clients
func GetLifecycleInfo(c *gin.Context) {
	var transitions []gin.H
	for _, status := range statemachine.Lifecycle() {
		if next, ok := statemachine.NextStatus(status); ok {
			transitions = append(transitions, gin.H{"from": status, "to": next})
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"lifecycle":      statemachine.Lifecycle(),
		"transitions":    transitions,
		"terminal_state": models.StatusDelivered,
		"enforced":       false,
		"description":    "Campus food order lifecycle. Transitions are advisory; status writes are not validated.",
	})
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
