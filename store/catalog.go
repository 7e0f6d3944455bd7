package store

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"campus-eats-api/models"
	"campus-eats-api/storage"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrEmptyCart = errors.New("cart is empty")
)

// Catalog owns restaurants, menu items, the active cart and all orders.
// Restaurants, menu and orders are mirrored to storage after every change;
// the cart is session state and lives only in memory.
type Catalog struct {
	mu          sync.Mutex
	records     storage.Records
	restaurants []models.Restaurant
	menu        []models.FoodItem
	cart        []models.CartItem
	orders      []models.Order
}

// NewCatalog loads each record from the port, falling back to the supplied
// defaults for any record that was never saved.
func NewCatalog(records storage.Records, restaurants []models.Restaurant, menu []models.FoodItem) *Catalog {
	c := &Catalog{records: records, restaurants: restaurants, menu: menu}

	var storedRestaurants []models.Restaurant
	if err := records.Load(storage.KeyRestaurants, &storedRestaurants); err == nil {
		c.restaurants = storedRestaurants
	}
	var storedMenu []models.FoodItem
	if err := records.Load(storage.KeyMenu, &storedMenu); err == nil {
		c.menu = storedMenu
	}
	var storedOrders []models.Order
	if err := records.Load(storage.KeyOrders, &storedOrders); err == nil {
		c.orders = storedOrders
	}
	return c
}

// ── Restaurants ─────────────────────────────────────────────────────────────

func (c *Catalog) Restaurants() []models.Restaurant {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Restaurant(nil), c.restaurants...)
}

func (c *Catalog) FindRestaurant(id string) (models.Restaurant, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.restaurants {
		if r.ID == id {
			return r, true
		}
	}
	return models.Restaurant{}, false
}

// AddRestaurant appends a restaurant, assigning a timestamp id when none is
// given.
func (c *Catalog) AddRestaurant(r models.Restaurant) models.Restaurant {
	c.mu.Lock()
	defer c.mu.Unlock()

	if r.ID == "" {
		r.ID = "rest-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	c.restaurants = append(c.restaurants, r)
	c.persist(storage.KeyRestaurants, c.restaurants)
	return r
}

// UpdateRestaurant replaces the restaurant with the same id in place.
func (c *Catalog) UpdateRestaurant(r models.Restaurant) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.restaurants {
		if c.restaurants[i].ID == r.ID {
			c.restaurants[i] = r
			c.persist(storage.KeyRestaurants, c.restaurants)
			return nil
		}
	}
	return ErrNotFound
}

// DeleteRestaurant removes the restaurant and every menu item that
// references it. Historical orders keep their snapshots untouched.
func (c *Catalog) DeleteRestaurant(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.restaurants[:0]
	for _, r := range c.restaurants {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	c.restaurants = kept

	keptMenu := c.menu[:0]
	for _, item := range c.menu {
		if item.RestaurantID != id {
			keptMenu = append(keptMenu, item)
		}
	}
	c.menu = keptMenu

	c.persist(storage.KeyRestaurants, c.restaurants)
	c.persist(storage.KeyMenu, c.menu)
}

// ── Menu ────────────────────────────────────────────────────────────────────

func (c *Catalog) MenuItems() []models.FoodItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.FoodItem(nil), c.menu...)
}

// MenuFor returns the items belonging to one restaurant, in menu order.
func (c *Catalog) MenuFor(restaurantID string) []models.FoodItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	var items []models.FoodItem
	for _, item := range c.menu {
		if item.RestaurantID == restaurantID {
			items = append(items, item)
		}
	}
	return items
}

func (c *Catalog) FindFoodItem(id string) (models.FoodItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.menu {
		if item.ID == id {
			return item, true
		}
	}
	return models.FoodItem{}, false
}

// AddFoodItem appends a menu item. No check that the restaurant exists; the
// reference is trusted exactly as given.
func (c *Catalog) AddFoodItem(item models.FoodItem) models.FoodItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	if item.ID == "" {
		item.ID = "food-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	c.menu = append(c.menu, item)
	c.persist(storage.KeyMenu, c.menu)
	return item
}

func (c *Catalog) UpdateFoodItem(item models.FoodItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.menu {
		if c.menu[i].ID == item.ID {
			c.menu[i] = item
			c.persist(storage.KeyMenu, c.menu)
			return nil
		}
	}
	return ErrNotFound
}

func (c *Catalog) DeleteFoodItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.menu[:0]
	for _, item := range c.menu {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	c.menu = kept
	c.persist(storage.KeyMenu, c.menu)
}

// ── Cart ────────────────────────────────────────────────────────────────────

func (c *Catalog) Cart() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.CartItem(nil), c.cart...)
}

// AddToCart inserts the item with quantity 1, or bumps the quantity when an
// entry with the same id already exists. At most one entry per item id.
func (c *Catalog) AddToCart(item models.FoodItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.cart {
		if c.cart[i].ID == item.ID {
			c.cart[i].Quantity++
			return
		}
	}
	c.cart = append(c.cart, models.CartItem{FoodItem: item, Quantity: 1})
}

// UpdateCartQuantity sets the quantity exactly. Zero or below removes the
// entry instead of keeping a non-positive value.
func (c *Catalog) UpdateCartQuantity(itemID string, qty int) {
	if qty <= 0 {
		c.RemoveFromCart(itemID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.cart {
		if c.cart[i].ID == itemID {
			c.cart[i].Quantity = qty
			return
		}
	}
}

func (c *Catalog) RemoveFromCart(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.cart[:0]
	for _, entry := range c.cart {
		if entry.ID != itemID {
			kept = append(kept, entry)
		}
	}
	c.cart = kept
}

func (c *Catalog) ClearCart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart = nil
}

// ── Orders ──────────────────────────────────────────────────────────────────

// DeliveryDetails is the caller-supplied stamp copied onto each order.
type DeliveryDetails struct {
	Address string
	Name    string
	Phone   string
}

// PlaceOrder turns the cart into one order per restaurant represented in it.
// Each order carries only that restaurant's items, a total computed from
// exactly those items, and status "placed". New orders are prepended to the
// history, newest first, and the cart is cleared. An empty cart is a no-op.
func (c *Catalog) PlaceOrder(userID string, details DeliveryDetails) ([]models.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.cart) == 0 {
		return nil, ErrEmptyCart
	}

	// Partition by restaurant, keeping cart order within each group and
	// grouping restaurants by first appearance.
	groups := make(map[string][]models.CartItem)
	var restaurantIDs []string
	for _, entry := range c.cart {
		if _, ok := groups[entry.RestaurantID]; !ok {
			restaurantIDs = append(restaurantIDs, entry.RestaurantID)
		}
		groups[entry.RestaurantID] = append(groups[entry.RestaurantID], entry)
	}

	now := time.Now().UnixMilli()
	placed := make([]models.Order, 0, len(restaurantIDs))
	for _, restID := range restaurantIDs {
		items := groups[restID]
		var total float64
		for _, entry := range items {
			total += entry.Price * float64(entry.Quantity)
		}
		placed = append(placed, models.Order{
			// The restaurant suffix keeps ids unique even when a
			// multi-restaurant checkout lands on one millisecond.
			ID:              fmt.Sprintf("ord-%d-%s", now, restID),
			UserID:          userID,
			RestaurantID:    restID,
			Items:           items,
			TotalAmount:     total,
			Status:          models.StatusPlaced,
			Timestamp:       now,
			DeliveryAddress: details.Address,
			UserName:        details.Name,
			UserPhone:       details.Phone,
		})
	}

	c.orders = append(placed, c.orders...)
	c.cart = nil
	c.persist(storage.KeyOrders, c.orders)
	return placed, nil
}

func (c *Catalog) Orders() []models.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Order(nil), c.orders...)
}

func (c *Catalog) FindOrder(id string) (models.Order, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, o := range c.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

func (c *Catalog) OrdersForUser(userID string) []models.Order {
	c.mu.Lock()
	defer c.mu.Unlock()

	var orders []models.Order
	for _, o := range c.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders
}

func (c *Catalog) OrdersForRestaurant(restaurantID string) []models.Order {
	c.mu.Lock()
	defer c.mu.Unlock()

	var orders []models.Order
	for _, o := range c.orders {
		if o.RestaurantID == restaurantID {
			orders = append(orders, o)
		}
	}
	return orders
}

// UpdateOrderStatus overwrites the status unconditionally. Legality of the
// transition is the caller's concern; see the statemachine package.
func (c *Catalog) UpdateOrderStatus(orderID string, status models.OrderStatus) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.orders {
		if c.orders[i].ID == orderID {
			c.orders[i].Status = status
			c.persist(storage.KeyOrders, c.orders)
			return nil
		}
	}
	return ErrNotFound
}

// SubmitFeedback sets rating and feedback on the order, unconditionally.
func (c *Catalog) SubmitFeedback(orderID string, rating int, feedback string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.orders {
		if c.orders[i].ID == orderID {
			c.orders[i].Rating = rating
			c.orders[i].Feedback = feedback
			c.persist(storage.KeyOrders, c.orders)
			return nil
		}
	}
	return ErrNotFound
}

func (c *Catalog) persist(key string, value any) {
	if err := c.records.Save(key, value); err != nil {
		log.Printf("catalog: saving %s: %v", key, err)
	}
}
