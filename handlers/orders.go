package handlers

import (
	"errors"
	"net/http"

	"campus-eats-api/middleware"
	"campus-eats-api/store"

	"github.com/gin-gonic/gin"
)

type CheckoutRequest struct {
	// DeliveryAddress defaults to the caller's hostel room when omitted.
	DeliveryAddress string `json:"delivery_address"`
}

// Checkout places the cart as orders, one per restaurant represented in it
func Checkout(c *gin.Context) {
	user, ok := identity.Find(middleware.GetUserID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// Body is optional; a missing address falls back to the hostel room.
	var req CheckoutRequest
	_ = c.ShouldBindJSON(&req)
	address := req.DeliveryAddress
	if address == "" {
		address = user.HostelRoom
	}

	placed, err := catalog.PlaceOrder(user.ID, store.DeliveryDetails{
		Address: address,
		Name:    user.Name,
		Phone:   user.Phone,
	})
	if errors.Is(err, store.ErrEmptyCart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"count":   len(placed),
		"orders":  placed,
	})
}

// GetMyOrders returns all orders for the logged-in user, newest first
func GetMyOrders(c *gin.Context) {
	orders := catalog.OrdersForUser(middleware.GetUserID(c))
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order belonging to the caller
func GetOrderDetail(c *gin.Context) {
	order, ok := catalog.FindOrder(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type FeedbackRequest struct {
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Feedback string `json:"feedback"`
}

// SubmitFeedback sets rating and feedback on one of the caller's orders
func SubmitFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, ok := catalog.FindOrder(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	if err := catalog.SubmitFeedback(order.ID, req.Rating, req.Feedback); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback submitted", "order_id": order.ID})
}
