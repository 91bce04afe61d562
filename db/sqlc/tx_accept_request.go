package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// ==================== Accept request transaction ====================

// DispatchThreshold is the fraction of vehicle capacity at which all
// pending requests on the vehicle are dispatched.
const DispatchThreshold = 0.9

var (
	ErrRequestNotPending      = errors.New("request is not pending")
	ErrRequestAlreadyAssigned = errors.New("request is assigned to another vehicle")
	ErrVehicleNotAvailable    = errors.New("vehicle is not available")
	ErrWarehouseMismatch      = errors.New("vehicle belongs to a different warehouse")
)

// AcceptRequestTxParams contains the input parameters for accepting a request
type AcceptRequestTxParams struct {
	RequestID int64
	VehicleID int64
	// ComputeETA is called once when the assignment triggers a dispatch.
	// The returned arrival time is shared by every request in the batch.
	ComputeETA func(warehouse Warehouse, camp Camp) pgtype.Timestamptz
}

// AcceptRequestTxResult contains the result of the accept request transaction
type AcceptRequestTxResult struct {
	Request    ResourceRequest
	Vehicle    Vehicle
	TotalLoad  int64
	Dispatched bool
	ETA        pgtype.Timestamptz
	Batch      []ResourceRequest
}

// AcceptRequestTx assigns a pending request to a vehicle and, when the
// vehicle reaches the dispatch threshold or the request is an emergency,
// dispatches every pending request on the vehicle in one transaction:
//  1. Lock vehicle row with FOR UPDATE
//  2. Check request is pending and belongs to the vehicle's warehouse
//  3. Assign the request to the vehicle
//  4. Sum the vehicle's pending load
//  5. If emergency or load >= threshold, mark the batch in transit with a
//     shared ETA, consume warehouse stock per request, and set the vehicle
//     to in_transit
func (store *SQLStore) AcceptRequestTx(ctx context.Context, arg AcceptRequestTxParams) (AcceptRequestTxResult, error) {
	var result AcceptRequestTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		return acceptRequest(ctx, q, arg, &result)
	})

	return result, err
}

func acceptRequest(ctx context.Context, q Querier, arg AcceptRequestTxParams, result *AcceptRequestTxResult) error {
	var err error

	// 1. Lock the vehicle row so concurrent accepts see a consistent load
	result.Vehicle, err = q.GetVehicleForUpdate(ctx, arg.VehicleID)
	if err != nil {
		return fmt.Errorf("get vehicle for update: %w", err)
	}
	if result.Vehicle.Status != "available" {
		return ErrVehicleNotAvailable
	}

	// 2. Re-read the request inside the transaction
	request, err := q.GetResourceRequest(ctx, arg.RequestID)
	if err != nil {
		return fmt.Errorf("get resource request: %w", err)
	}
	if request.Status != "pending" {
		return ErrRequestNotPending
	}
	// Re-assigning to the same vehicle is a no-op re-evaluation of the batch
	if request.VehicleID.Valid && request.VehicleID.Int64 != arg.VehicleID {
		return ErrRequestAlreadyAssigned
	}
	if !request.WarehouseID.Valid || request.WarehouseID.Int64 != result.Vehicle.WarehouseID {
		return ErrWarehouseMismatch
	}

	// 3. Assign the request to the vehicle
	result.Request, err = q.AssignRequestVehicle(ctx, AssignRequestVehicleParams{
		ID:        arg.RequestID,
		VehicleID: pgtype.Int8{Int64: arg.VehicleID, Valid: true},
	})
	if err != nil {
		return fmt.Errorf("assign request vehicle: %w", err)
	}

	// 4. Total pending load now includes the request just assigned
	result.TotalLoad, err = q.SumPendingLoadByVehicle(ctx, pgtype.Int8{Int64: arg.VehicleID, Valid: true})
	if err != nil {
		return fmt.Errorf("sum pending load: %w", err)
	}

	emergency := request.Priority == "emergency"
	if !emergency && float64(result.TotalLoad) < DispatchThreshold*result.Vehicle.Capacity {
		// Below threshold, the vehicle keeps accepting requests
		return nil
	}

	// 5. Dispatch the whole batch
	camp, err := q.GetCamp(ctx, request.CampID)
	if err != nil {
		return fmt.Errorf("get camp: %w", err)
	}
	warehouse, err := q.GetWarehouse(ctx, result.Vehicle.WarehouseID)
	if err != nil {
		return fmt.Errorf("get warehouse: %w", err)
	}

	// One ETA from the triggering request's route, shared by the batch
	result.ETA = arg.ComputeETA(warehouse, camp)

	batch, err := q.ListPendingRequestsByVehicle(ctx, pgtype.Int8{Int64: arg.VehicleID, Valid: true})
	if err != nil {
		return fmt.Errorf("list pending requests: %w", err)
	}

	for _, pending := range batch {
		updated, err := q.UpdateRequestStatus(ctx, UpdateRequestStatusParams{
			ID:     pending.ID,
			Status: "in_transit",
			Eta:    result.ETA,
		})
		if err != nil {
			return fmt.Errorf("update request %d status: %w", pending.ID, err)
		}

		_, err = q.ConsumeWarehouseStock(ctx, ConsumeWarehouseStockParams{
			ID:                 pending.WarehouseID.Int64,
			FoodQuantity:       pending.FoodQuantity,
			WaterQuantity:      pending.WaterQuantity,
			EssentialsQuantity: pending.EssentialsQuantity,
			ClothesQuantity:    pending.ClothesQuantity,
		})
		if err != nil {
			return fmt.Errorf("consume warehouse stock for request %d: %w", pending.ID, err)
		}

		result.Batch = append(result.Batch, updated)
		if updated.ID == result.Request.ID {
			result.Request = updated
		}
	}

	result.Vehicle, err = q.UpdateVehicleStatus(ctx, UpdateVehicleStatusParams{
		ID:     arg.VehicleID,
		Status: "in_transit",
	})
	if err != nil {
		return fmt.Errorf("update vehicle status: %w", err)
	}

	result.Dispatched = true
	return nil
}
