package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// ==================== CompleteDelivery Transaction Tests ====================

func TestCompleteDeliveryCreditsCampAndReleasesVehicle(t *testing.T) {
	q := newMemQuerier()
	seedCamp(q, 1)
	seedCamp(q, 2)
	seedWarehouse(q, 1)
	seedVehicle(q, 1, 1, 1000, "in_transit")

	eta := fixedETA()
	first := seedRequest(q, 10, 1, 1, [4]int64{200, 150, 100, 50}, "general", "in_transit")
	assignVehicle(q, first.ID, 1)
	second := seedRequest(q, 11, 1, 1, [4]int64{100, 100, 50, 50}, "general", "in_transit")
	assignVehicle(q, second.ID, 1)
	for _, id := range []int64{10, 11} {
		request := q.requests[id]
		request.Eta = eta
		q.requests[id] = request
	}

	// Same vehicle, different camp: not part of this confirmation
	other := seedRequest(q, 12, 2, 1, [4]int64{30, 0, 0, 0}, "general", "in_transit")
	assignVehicle(q, other.ID, 1)

	var result CompleteDeliveryTxResult
	err := completeDelivery(context.Background(), q, CompleteDeliveryTxParams{
		VehicleID: 1,
		CampID:    1,
		RequestID: 10,
	}, &result)
	require.NoError(t, err)

	require.Len(t, result.CompletedRequests, 2)
	for _, completed := range result.CompletedRequests {
		require.Equal(t, "completed", completed.Status)
		require.Equal(t, eta, completed.Eta)
	}
	require.Equal(t, "completed", q.requests[10].Status)
	require.Equal(t, "completed", q.requests[11].Status)
	require.Equal(t, "in_transit", q.requests[12].Status)

	// Camp stock credited with the whole batch
	camp := q.camps[1]
	require.Equal(t, int64(300), camp.FoodStock)
	require.Equal(t, int64(250), camp.WaterStock)
	require.Equal(t, int64(150), camp.EssentialsStock)
	require.Equal(t, int64(100), camp.ClothesStock)
	require.Equal(t, camp, result.Camp)

	require.Equal(t, "available", q.vehicles[1].Status)
	require.Equal(t, "available", result.Vehicle.Status)
}

func TestCompleteDeliveryFailsClosedOnPendingRequest(t *testing.T) {
	q := newMemQuerier()
	seedCamp(q, 1)
	seedWarehouse(q, 1)
	seedVehicle(q, 1, 1, 1000, "in_transit")
	seedRequest(q, 10, 1, 1, [4]int64{100, 50, 0, 0}, "general", "pending")
	assignVehicle(q, 10, 1)

	var result CompleteDeliveryTxResult
	err := completeDelivery(context.Background(), q, CompleteDeliveryTxParams{
		VehicleID: 1,
		CampID:    1,
		RequestID: 10,
	}, &result)
	require.ErrorIs(t, err, ErrRequestNotInTransit)

	// Nothing moved
	require.Equal(t, "pending", q.requests[10].Status)
	require.Equal(t, "in_transit", q.vehicles[1].Status)
	require.Equal(t, int64(0), q.camps[1].FoodStock)
}

func TestCompleteDeliveryWrongVehicle(t *testing.T) {
	q := newMemQuerier()
	seedCamp(q, 1)
	seedWarehouse(q, 1)
	seedVehicle(q, 1, 1, 1000, "in_transit")
	seedVehicle(q, 2, 1, 1000, "in_transit")
	seedRequest(q, 10, 1, 1, [4]int64{100, 0, 0, 0}, "general", "in_transit")
	assignVehicle(q, 10, 2)

	var result CompleteDeliveryTxResult
	err := completeDelivery(context.Background(), q, CompleteDeliveryTxParams{
		VehicleID: 1,
		CampID:    1,
		RequestID: 10,
	}, &result)
	require.ErrorIs(t, err, ErrRequestNotInTransit)
	require.Equal(t, "in_transit", q.requests[10].Status)
	require.Equal(t, "in_transit", q.vehicles[1].Status)
}

func TestCompleteDeliveryWrongCamp(t *testing.T) {
	q := newMemQuerier()
	seedCamp(q, 1)
	seedCamp(q, 2)
	seedWarehouse(q, 1)
	seedVehicle(q, 1, 1, 1000, "in_transit")
	seedRequest(q, 10, 2, 1, [4]int64{100, 0, 0, 0}, "general", "in_transit")
	assignVehicle(q, 10, 1)

	var result CompleteDeliveryTxResult
	err := completeDelivery(context.Background(), q, CompleteDeliveryTxParams{
		VehicleID: 1,
		CampID:    1,
		RequestID: 10,
	}, &result)
	require.ErrorIs(t, err, ErrRequestNotInTransit)
	require.Equal(t, int64(0), q.camps[2].FoodStock)
}
