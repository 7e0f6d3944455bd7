package handlers

import (
	"campus-eats-api/services"
	"campus-eats-api/store"
)

var (
	identity  *store.Identity
	catalog   *store.Catalog
	describer *services.Describer
)

// Use wires the stores and service clients the handlers operate on. Tests
// swap in memory-backed instances the same way.
func Use(id *store.Identity, cat *store.Catalog, d *services.Describer) {
	identity = id
	catalog = cat
	describer = d
}
