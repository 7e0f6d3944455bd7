package middleware

import (
	"net/http"
	"strings"
	"time"

	"campus-eats-api/config"
	"campus-eats-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID       string          `json:"user_id"`
	Email        string          `json:"email"`
	Role         models.UserRole `json:"role"`
	RestaurantID string          `json:"restaurant_id,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a given user
func GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		RestaurantID: user.RestaurantID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// AuthRequired validates the JWT and injects claims into context. The token
// is trusted as-is; credentials are not re-checked against the user list.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", string(claims.Role))
		c.Set("restaurantID", claims.RestaurantID)
		c.Next()
	}
}

// CallerIdentity rebuilds the tagged identity from the injected claims.
func CallerIdentity(c *gin.Context) models.Identity {
	u := models.User{
		Role:         GetRole(c),
		RestaurantID: c.GetString("restaurantID"),
	}
	return u.Identity()
}

// SuperAdminRequired allows only platform-wide admins through.
func SuperAdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CallerIdentity(c).(models.SuperAdmin); !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Super admin only"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RestaurantAdminRequired allows only admins scoped to a restaurant through
// and records which restaurant they own.
func RestaurantAdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := CallerIdentity(c).(models.RestaurantAdmin)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Restaurant admin only"})
			c.Abort()
			return
		}
		c.Set("restaurantID", ident.RestaurantID)
		c.Next()
	}
}

// GetUserID extracts caller user ID from context
func GetUserID(c *gin.Context) string {
	return c.GetString("userID")
}

// GetRole extracts caller role from context
func GetRole(c *gin.Context) models.UserRole {
	return models.UserRole(c.GetString("role"))
}

// GetRestaurantID extracts the caller's owned restaurant id, if any
func GetRestaurantID(c *gin.Context) string {
	return c.GetString("restaurantID")
}
