package routes

import (
	"campus-eats-api/handlers"
	"campus-eats-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Restaurants & menus (no auth needed)
		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/:id", handlers.GetRestaurant)
		public.GET("/restaurants/:id/menu", handlers.GetMenu)

		// Order lifecycle info (docs/Postman)
		public.GET("/lifecycle", handlers.GetLifecycleInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.POST("/auth/logout", handlers.Logout)

		// Cart
		auth.GET("/cart", handlers.GetCart)
		auth.POST("/cart/items", handlers.AddToCart)
		auth.PUT("/cart/items/:itemId", handlers.UpdateCartQuantity)
		auth.DELETE("/cart/items/:itemId", handlers.RemoveFromCart)
		auth.DELETE("/cart", handlers.ClearCart)

		// Orders
		auth.POST("/orders", handlers.Checkout)
		auth.GET("/orders", handlers.GetMyOrders)
		auth.GET("/orders/:id", handlers.GetOrderDetail)
		auth.POST("/orders/:id/feedback", handlers.SubmitFeedback)
	}

	// ── Restaurant admin routes ────────────────────────────────────
	restaurant := r.Group("/api/restaurant")
	restaurant.Use(middleware.AuthRequired(), middleware.RestaurantAdminRequired())
	{
		restaurant.GET("/", handlers.GetMyRestaurant)
		restaurant.PUT("/", handlers.UpdateMyRestaurant)

		// Menu management
		restaurant.POST("/menu", handlers.AddMenuItem)
		restaurant.PUT("/menu/:itemId", handlers.UpdateMenuItem)
		restaurant.DELETE("/menu/:itemId", handlers.DeleteMenuItem)
		restaurant.POST("/menu/describe", handlers.DescribeMenuItem)

		// Order management
		restaurant.GET("/orders", handlers.GetRestaurantOrders)
		restaurant.PUT("/orders/:id/status", handlers.UpdateOrderStatus)
	}

	// ── Super admin routes ─────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.SuperAdminRequired())
	{
		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.PUT("/orders/:id/status", handlers.AdminForceOrderStatus)

		admin.POST("/restaurants", handlers.AdminCreateRestaurant)
		admin.PUT("/restaurants/:id", handlers.AdminUpdateRestaurant)
		admin.DELETE("/restaurants/:id", handlers.AdminDeleteRestaurant)

		admin.POST("/restaurants/:id/menu", handlers.AdminAddMenuItem)
		admin.PUT("/menu/:itemId", handlers.AdminUpdateMenuItem)
		admin.DELETE("/menu/:itemId", handlers.AdminDeleteMenuItem)
	}
}
