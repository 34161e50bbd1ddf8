package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_IsValid(t *testing.T) {
	valid := []OrderStatus{
		StatusPending, StatusConfirmed, StatusPreparing,
		StatusReady, StatusCompleted, StatusCancelled,
	}
	for _, status := range valid {
		assert.True(t, status.IsValid(), "expected %q to be valid", status)
	}

	assert.False(t, OrderStatus("").IsValid())
	assert.False(t, OrderStatus("shipped").IsValid())
	assert.False(t, OrderStatus("Pending").IsValid(), "statuses are case-sensitive")
}
