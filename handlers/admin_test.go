package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAdminQuickAddRestaurantDefaultsRating(t *testing.T) {
	r := setupRouter(t)
	super := login(t, r, "admin@foodie.com", "admin")

	w := doJSON(t, r, http.MethodPost, "/api/admin/restaurants", super, gin.H{
		"name":     "Midnight Momos",
		"category": "Tibetan",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	restaurant := decode(t, w)["restaurant"].(map[string]any)
	assert.Equal(t, 4.0, restaurant["rating"], "quick-add assigns the 4.0 default")
	assert.NotEmpty(t, restaurant["id"])

	w = doJSON(t, r, http.MethodGet, "/api/restaurants", "", nil)
	assert.EqualValues(t, 4, decode(t, w)["count"])
}

func TestAdminDeleteRestaurantCascades(t *testing.T) {
	r := setupRouter(t)
	super := login(t, r, "admin@foodie.com", "admin")
	student := login(t, r, "john@student.com", "user")

	// Place an order against r1 first; it must survive the delete.
	addToCart(t, r, student, "f1")
	w := doJSON(t, r, http.MethodPost, "/api/orders", student, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/admin/restaurants/r1", super, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/restaurants/r1", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, http.MethodGet, "/api/restaurants/r1/menu", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/orders", student, nil)
	body := decode(t, w)
	assert.EqualValues(t, 1, body["count"], "historical orders outlive the restaurant")
	order := body["orders"].([]any)[0].(map[string]any)
	assert.Equal(t, "r1", order["restaurant_id"])
}

func TestAdminOrdersSummaryAndRevenue(t *testing.T) {
	r := setupRouter(t)
	super := login(t, r, "admin@foodie.com", "admin")
	student := login(t, r, "john@student.com", "user")

	addToCart(t, r, student, "f1") // 180, r1
	addToCart(t, r, student, "f3") // 120, r2
	w := doJSON(t, r, http.MethodPost, "/api/orders", student, nil)
	orders := decode(t, w)["orders"].([]any)
	assert.Len(t, orders, 2)

	// Only delivered orders count as revenue.
	firstID := orders[0].(map[string]any)["id"].(string)
	w = doJSON(t, r, http.MethodPut, "/api/admin/orders/"+firstID+"/status", super, gin.H{"status": "delivered"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/orders", super, nil)
	body := decode(t, w)
	assert.EqualValues(t, 2, body["count"])

	firstTotal := orders[0].(map[string]any)["total_amount"].(float64)
	assert.Equal(t, firstTotal, body["total_revenue"])

	summary := body["order_summary"].(map[string]any)
	assert.EqualValues(t, 1, summary["delivered"])
	assert.EqualValues(t, 1, summary["placed"])

	// Filtered by restaurant.
	w = doJSON(t, r, http.MethodGet, "/api/admin/orders?restaurant_id=r2", super, nil)
	assert.EqualValues(t, 1, decode(t, w)["count"])
}

func TestAdminUserListIncludesRegistrations(t *testing.T) {
	r := setupRouter(t)
	super := login(t, r, "admin@foodie.com", "admin")

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Priya",
		"email":    "priya@student.com",
		"password": "secret",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/users", super, nil)
	body := decode(t, w)
	assert.EqualValues(t, 4, body["count"])

	users := body["users"].([]any)
	assert.Equal(t, "admin1", users[0].(map[string]any)["id"], "seeded users come first")
	assert.Equal(t, "Priya", users[3].(map[string]any)["name"])

	w = doJSON(t, r, http.MethodGet, "/api/admin/users?role=admin", super, nil)
	assert.EqualValues(t, 2, decode(t, w)["count"])
}

func TestAdminMenuManagement(t *testing.T) {
	r := setupRouter(t)
	super := login(t, r, "admin@foodie.com", "admin")

	w := doJSON(t, r, http.MethodPost, "/api/admin/restaurants/r3/menu", super, gin.H{
		"name":  "Quinoa Bowl",
		"price": 150,
		"type":  "veg",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	item := decode(t, w)["item"].(map[string]any)
	assert.Equal(t, "r3", item["restaurant_id"])
	assert.Equal(t, true, item["is_available"], "availability defaults to true")

	w = doJSON(t, r, http.MethodGet, "/api/restaurants/r3/menu", "", nil)
	assert.EqualValues(t, 1, decode(t, w)["count"])
}
