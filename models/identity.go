package models

// Identity is the tagged form of a user's capability. Handlers switch on it
// instead of re-deriving `role == admin && restaurant_id != ""` combinations.
type Identity interface {
	isIdentity()
}

// Student can browse, fill a cart, place orders and rate delivered ones.
type Student struct{}

// RestaurantAdmin manages exactly one restaurant's menu and orders.
type RestaurantAdmin struct {
	RestaurantID string
}

// SuperAdmin has platform-wide authority over restaurants, users and orders.
type SuperAdmin struct{}

func (Student) isIdentity()         {}
func (RestaurantAdmin) isIdentity() {}
func (SuperAdmin) isIdentity()      {}

// Identity classifies the user into one of the three capability variants.
func (u User) Identity() Identity {
	if u.Role == RoleAdmin {
		if u.RestaurantID != "" {
			return RestaurantAdmin{RestaurantID: u.RestaurantID}
		}
		return SuperAdmin{}
	}
	return Student{}
}
