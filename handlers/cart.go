package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCart returns the active cart and its running total
func GetCart(c *gin.Context) {
	items := catalog.Cart()
	var total float64
	for _, entry := range items {
		total += entry.Price * float64(entry.Quantity)
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(items),
		"items": items,
		"total": total,
	})
}

type AddToCartRequest struct {
	FoodItemID string `json:"food_item_id" binding:"required"`
}

// AddToCart adds one unit of a menu item to the cart. Repeat adds bump the
// existing entry's quantity instead of creating a second entry.
func AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, ok := catalog.FindFoodItem(req.FoodItemID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	catalog.AddToCart(item)
	c.JSON(http.StatusOK, gin.H{"message": "Added to cart", "cart": catalog.Cart()})
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartQuantity sets an entry's quantity exactly; zero or below removes it
func UpdateCartQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	catalog.UpdateCartQuantity(c.Param("itemId"), req.Quantity)
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "cart": catalog.Cart()})
}

// RemoveFromCart drops an entry from the cart
func RemoveFromCart(c *gin.Context) {
	catalog.RemoveFromCart(c.Param("itemId"))
	c.JSON(http.StatusOK, gin.H{"message": "Removed from cart", "cart": catalog.Cart()})
}

// ClearCart empties the cart
func ClearCart(c *gin.Context) {
	catalog.ClearCart()
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
