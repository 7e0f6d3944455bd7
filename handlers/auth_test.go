package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLogin(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":        "Priya",
		"email":       "priya@student.com",
		"password":    "secret",
		"phone":       "5550001111",
		"hostel_room": "Block C - 204",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.NotEmpty(t, body["token"], "registration auto-logs the user in")

	token := login(t, r, "priya@student.com", "secret")

	w = doJSON(t, r, http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	user := decode(t, w)["user"].(map[string]any)
	assert.Equal(t, "Priya", user["name"])
	assert.Equal(t, "student", user["role"])
	assert.Equal(t, "Block C - 204", user["hostel_room"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "john@student.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "nobody@student.com",
		"password": "user",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decode(t, w)["error"])
}

func TestRegisterValidatesInput(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "priya@student.com",
		"password": "secret",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Priya",
		"email":    "not-an-email",
		"password": "secret",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/cart", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleGuards(t *testing.T) {
	r := setupRouter(t)

	student := login(t, r, "john@student.com", "user")
	owner := login(t, r, "owner@spice.com", "spice")
	super := login(t, r, "admin@foodie.com", "admin")

	// Students reach neither admin surface.
	w := doJSON(t, r, http.MethodGet, "/api/admin/users", student, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doJSON(t, r, http.MethodGet, "/api/restaurant/orders", student, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// A restaurant-scoped admin is not a super admin.
	w = doJSON(t, r, http.MethodGet, "/api/admin/users", owner, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// And the super admin is not scoped to any restaurant.
	w = doJSON(t, r, http.MethodGet, "/api/restaurant/orders", super, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/users", super, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, decode(t, w)["count"])
}
