package models

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

type User struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	HostelRoom string   `json:"hostel_room"`
	Role       UserRole `json:"role"`
	// Plaintext on purpose: credentials are compared byte-for-byte against
	// the seeded and registered lists; hashing is out of scope here.
	Password string `json:"password,omitempty"`
	// RestaurantID is set only for admins scoped to one restaurant.
	// An admin without one has platform-wide authority.
	RestaurantID string `json:"restaurant_id,omitempty"`
}
