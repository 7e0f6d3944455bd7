// Package statemachine describes the expected order lifecycle:
//
//	placed → confirmed → preparing → out_for_delivery → delivered
//
// It is advisory. The catalog store accepts any status write, forward or
// backward; whether to enforce the lifecycle is an open product decision,
// so this package only tells clients what the normal flow looks like.
package statemachine

import "campus-eats-api/models"

// lifecycle is the linear order of states, first to terminal.
var lifecycle = []models.OrderStatus{
	models.StatusPlaced,
	models.StatusConfirmed,
	models.StatusPreparing,
	models.StatusOutForDelivery,
	models.StatusDelivered,
}

// Lifecycle returns the full linear flow for documentation endpoints.
func Lifecycle() []models.OrderStatus {
	return append([]models.OrderStatus(nil), lifecycle...)
}

// IsKnown reports whether status is one of the defined lifecycle states.
func IsKnown(status models.OrderStatus) bool {
	for _, s := range lifecycle {
		if s == status {
			return true
		}
	}
	return false
}

// NextStatus returns the state that normally follows status. The second
// return is false for the terminal state and for unknown values.
func NextStatus(status models.OrderStatus) (models.OrderStatus, bool) {
	for i, s := range lifecycle {
		if s == status && i+1 < len(lifecycle) {
			return lifecycle[i+1], true
		}
	}
	return "", false
}

// ValidTransitionsFrom returns the expected next states from a given state.
// In a linear lifecycle that is at most one.
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	if next, ok := NextStatus(status); ok {
		return []models.OrderStatus{next}
	}
	return nil
}

// IsTerminal reports whether no further transition is meaningful.
func IsTerminal(status models.OrderStatus) bool {
	return status == models.StatusDelivered
}
