// Package storage is the persistence boundary for the stores: five named
// records, each a JSON snapshot of one in-memory collection, replaced
// wholesale on every save. Drivers differ only in where the bytes live.
package storage

import "errors"

// Record keys. One key per concern; the cart is deliberately not persisted.
const (
	KeySession     = "foodie_user"
	KeyLocalUsers  = "foodie_local_users"
	KeyOrders      = "foodie_orders"
	KeyRestaurants = "foodie_restaurants"
	KeyMenu        = "foodie_menu"
)

// ErrNoRecord is returned by Load when the key has never been saved.
// Callers fall back to their compiled-in defaults.
var ErrNoRecord = errors.New("storage: no such record")

// Records is the port the stores write through after each mutation.
type Records interface {
	// Load unmarshals the record stored under key into dest.
	Load(key string, dest any) error
	// Save replaces the record under key with the JSON encoding of value.
	Save(key string, value any) error
	// Delete removes the record under key. Deleting an absent key is not
	// an error.
	Delete(key string) error
}
