package statemachine

import (
	"testing"

	"campus-eats-api/models"

	"github.com/stretchr/testify/assert"
)

func TestLifecycleIsLinear(t *testing.T) {
	want := []models.OrderStatus{
		models.StatusPlaced,
		models.StatusConfirmed,
		models.StatusPreparing,
		models.StatusOutForDelivery,
		models.StatusDelivered,
	}
	assert.Equal(t, want, Lifecycle())

	for i := 0; i < len(want)-1; i++ {
		next, ok := NextStatus(want[i])
		assert.True(t, ok)
		assert.Equal(t, want[i+1], next)
		assert.Equal(t, []models.OrderStatus{want[i+1]}, ValidTransitionsFrom(want[i]))
	}
}

func TestDeliveredIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(models.StatusDelivered))
	assert.False(t, IsTerminal(models.StatusPlaced))

	_, ok := NextStatus(models.StatusDelivered)
	assert.False(t, ok)
	assert.Nil(t, ValidTransitionsFrom(models.StatusDelivered))
}

func TestIsKnown(t *testing.T) {
	for _, s := range Lifecycle() {
		assert.True(t, IsKnown(s))
	}
	assert.False(t, IsKnown("cancelled"))
	assert.False(t, IsKnown(""))
}
