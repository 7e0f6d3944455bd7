// Package seed holds the compiled-in defaults used when a stored record is
// absent on startup.
package seed

import "campus-eats-api/models"

func Users() []models.User {
	return []models.User{
		{
			ID:         "admin1",
			Name:       "Super Admin",
			Email:      "admin@foodie.com",
			Phone:      "1234567890",
			HostelRoom: "Office",
			Role:       models.RoleAdmin,
			Password:   "admin",
		},
		{
			ID:           "rest_admin1",
			Name:         "Spice Owner",
			Email:        "owner@spice.com",
			Phone:        "1112223333",
			HostelRoom:   "Spice Garden Office",
			Role:         models.RoleAdmin,
			Password:     "spice",
			RestaurantID: "r1",
		},
		{
			ID:         "student1",
			Name:       "John Doe",
			Email:      "john@student.com",
			Phone:      "9876543210",
			HostelRoom: "Block A - 101",
			Role:       models.RoleStudent,
			Password:   "user",
		},
	}
}

func Restaurants() []models.Restaurant {
	return []models.Restaurant{
		{
			ID:           "r1",
			Name:         "Spice Garden",
			Image:        "https://picsum.photos/800/600?random=1",
			Rating:       4.5,
			Category:     "North Indian",
			DeliveryTime: "30-40 min",
			Description:  "Authentic North Indian curries and breads.",
		},
		{
			ID:           "r2",
			Name:         "Burger Point",
			Image:        "https://picsum.photos/800/600?random=2",
			Rating:       4.2,
			Category:     "Fast Food",
			DeliveryTime: "20-30 min",
			Description:  "Juicy burgers and crispy fries.",
		},
		{
			ID:           "r3",
			Name:         "Green Leaf",
			Image:        "https://picsum.photos/800/600?random=3",
			Rating:       4.8,
			Category:     "Healthy / Veg",
			DeliveryTime: "35-45 min",
			Description:  "Fresh salads and pure veg delights.",
		},
	}
}

func Menu() []models.FoodItem {
	return []models.FoodItem{
		{
			ID:           "f1",
			RestaurantID: "r1",
			Name:         "Paneer Butter Masala",
			Description:  "Rich creamy tomato gravy with cottage cheese cubes.",
			Price:        180,
			Image:        "https://picsum.photos/200/200?random=10",
			Type:         models.FoodVeg,
			IsAvailable:  true,
		},
		{
			ID:           "f2",
			RestaurantID: "r1",
			Name:         "Chicken Biryani",
			Description:  "Aromatic basmati rice cooked with tender chicken pieces.",
			Price:        220,
			Image:        "https://picsum.photos/200/200?random=11",
			Type:         models.FoodNonVeg,
			IsAvailable:  true,
		},
		{
			ID:           "f3",
			RestaurantID: "r2",
			Name:         "Classic Cheese Burger",
			Description:  "Grilled patty with melted cheese and fresh veggies.",
			Price:        120,
			Image:        "https://picsum.photos/200/200?random=12",
			Type:         models.FoodNonVeg,
			IsAvailable:  true,
		},
		{
			ID:           "f4",
			RestaurantID: "r2",
			Name:         "Veggie Supreme",
			Description:  "Loaded with vegetable patty and special sauces.",
			Price:        100,
			Image:        "https://picsum.photos/200/200?random=13",
			Type:         models.FoodVeg,
			IsAvailable:  true,
		},
	}
}
