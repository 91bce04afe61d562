package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// ==================== Complete delivery transaction ====================

var ErrRequestNotInTransit = errors.New("request is not in transit")

// CompleteDeliveryTxParams contains the input parameters for confirming a delivery.
// RequestID names one request of the batch; the whole batch for the vehicle and
// camp pair is completed together.
type CompleteDeliveryTxParams struct {
	VehicleID int64
	CampID    int64
	RequestID int64
}

// CompleteDeliveryTxResult contains the result of the complete delivery transaction
type CompleteDeliveryTxResult struct {
	CompletedRequests []ResourceRequest
	Vehicle           Vehicle
	Camp              Camp
}

// CompleteDeliveryTx confirms arrival of a dispatched batch in one transaction:
// 1. Lock vehicle row with FOR UPDATE
// 2. Check the named request is in transit on this vehicle for this camp
// 3. Complete every in-transit request for the vehicle and camp
// 4. Credit the camp's stock with the delivered quantities
// 5. Release the vehicle back to available
func (store *SQLStore) CompleteDeliveryTx(ctx context.Context, arg CompleteDeliveryTxParams) (CompleteDeliveryTxResult, error) {
	var result CompleteDeliveryTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		return completeDelivery(ctx, q, arg, &result)
	})

	return result, err
}

func completeDelivery(ctx context.Context, q Querier, arg CompleteDeliveryTxParams, result *CompleteDeliveryTxResult) error {
	var err error

	// 1. Lock the vehicle row
	result.Vehicle, err = q.GetVehicleForUpdate(ctx, arg.VehicleID)
	if err != nil {
		return fmt.Errorf("get vehicle for update: %w", err)
	}

	// 2. Fail closed unless the named request is in transit on this vehicle
	request, err := q.GetResourceRequest(ctx, arg.RequestID)
	if err != nil {
		return fmt.Errorf("get resource request: %w", err)
	}
	if request.Status != "in_transit" ||
		!request.VehicleID.Valid || request.VehicleID.Int64 != arg.VehicleID ||
		request.CampID != arg.CampID {
		return ErrRequestNotInTransit
	}

	batch, err := q.ListInTransitRequestsByVehicleAndCamp(ctx, ListInTransitRequestsByVehicleAndCampParams{
		VehicleID: pgtype.Int8{Int64: arg.VehicleID, Valid: true},
		CampID:    arg.CampID,
	})
	if err != nil {
		return fmt.Errorf("list in-transit requests: %w", err)
	}

	// 3 & 4. Complete the batch and credit the camp per request
	for _, inTransit := range batch {
		completed, err := q.UpdateRequestStatus(ctx, UpdateRequestStatusParams{
			ID:     inTransit.ID,
			Status: "completed",
			Eta:    inTransit.Eta,
		})
		if err != nil {
			return fmt.Errorf("update request %d status: %w", inTransit.ID, err)
		}

		result.Camp, err = q.CreditCampStock(ctx, CreditCampStockParams{
			ID:              arg.CampID,
			FoodStock:       inTransit.FoodQuantity,
			WaterStock:      inTransit.WaterQuantity,
			EssentialsStock: inTransit.EssentialsQuantity,
			ClothesStock:    inTransit.ClothesQuantity,
		})
		if err != nil {
			return fmt.Errorf("credit camp stock for request %d: %w", inTransit.ID, err)
		}

		result.CompletedRequests = append(result.CompletedRequests, completed)
	}

	// 5. The vehicle goes back to the pool
	result.Vehicle, err = q.UpdateVehicleStatus(ctx, UpdateVehicleStatusParams{
		ID:     arg.VehicleID,
		Status: "available",
	})
	if err != nil {
		return fmt.Errorf("update vehicle status: %w", err)
	}

	return nil
}
