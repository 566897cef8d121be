package store

import (
	"testing"

	"github.com/ozguragaoglu95/pastayapp-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder_SeedsHistory(t *testing.T) {
	orders := NewOrderStore()

	order := orders.Create(models.Order{UserID: "u1", VendorID: "v1", TotalPrice: 1500, Commission: 150})

	assert.NotEmpty(t, order.ID)
	assert.NotEmpty(t, order.OrderRef)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, models.OrderStatusConfirmed, order.StatusHistory[0].Status)
}

func TestCreateOrder_PrependsNewestFirst(t *testing.T) {
	orders := NewOrderStore()

	first := orders.Create(models.Order{UserID: "u1", VendorID: "v1"})
	second := orders.Create(models.Order{UserID: "u1", VendorID: "v1"})

	list := orders.ListByUser("u1")
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestUpdateStatus_HistoryAppendOnlyAndMonotonic(t *testing.T) {
	orders := NewOrderStore()
	order := orders.Create(models.Order{UserID: "u1", VendorID: "v1"})

	steps := []models.OrderStatus{
		models.OrderStatusPreparing,
		models.OrderStatusReady,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCompleted,
	}
	for _, s := range steps {
		require.NoError(t, orders.UpdateStatus(order.ID, s))
	}

	got, err := orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, got.Status)
	require.Len(t, got.StatusHistory, 1+len(steps))
	for i := 1; i < len(got.StatusHistory); i++ {
		assert.False(t, got.StatusHistory[i].Timestamp.Before(got.StatusHistory[i-1].Timestamp))
	}
}

func TestUpdateStatus_RejectsIllegalTransition(t *testing.T) {
	orders := NewOrderStore()
	order := orders.Create(models.Order{UserID: "u1", VendorID: "v1"})

	// confirmed -> delivered skips preparing/ready.
	err := orders.UpdateStatus(order.ID, models.OrderStatusDelivered)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, _ := orders.Get(order.ID)
	assert.Equal(t, models.OrderStatusConfirmed, got.Status)
	assert.Len(t, got.StatusHistory, 1)
}

func TestUpdateStatus_TerminalStatesFrozen(t *testing.T) {
	orders := NewOrderStore()
	order := orders.Create(models.Order{UserID: "u1", VendorID: "v1"})

	require.NoError(t, orders.UpdateStatus(order.ID, models.OrderStatusCancelled))
	assert.ErrorIs(t, orders.UpdateStatus(order.ID, models.OrderStatusPreparing), ErrInvalidTransition)
}

func TestGetOrder_ByIDOrRefAndAbsence(t *testing.T) {
	orders := NewOrderStore()
	order := orders.Create(models.Order{UserID: "u1", VendorID: "v1"})

	byID, err := orders.Get(order.ID)
	require.NoError(t, err)
	byRef, err := orders.Get(order.OrderRef)
	require.NoError(t, err)
	assert.Equal(t, byID.ID, byRef.ID)

	_, err = orders.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMapOrderStatus_RejectsUnknownVocabulary(t *testing.T) {
	for _, bad := range []string{"pending", "ready_to_ship", "in_progress", ""} {
		_, err := models.MapOrderStatus(bad)
		assert.Error(t, err, "status %q should be rejected", bad)
	}

	status, err := models.MapOrderStatus("Preparing")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPreparing, status)
}
