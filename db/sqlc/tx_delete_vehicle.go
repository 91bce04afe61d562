package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// ==================== Delete vehicle transaction ====================

var ErrVehicleHasActiveDeliveries = errors.New("vehicle has in-transit deliveries")

// DeleteVehicleTxParams contains the input parameters for deleting a vehicle
type DeleteVehicleTxParams struct {
	VehicleID int64
}

// DeleteVehicleTxResult contains the result of the delete vehicle transaction
type DeleteVehicleTxResult struct {
	Vehicle         Vehicle
	ReleasedPending bool
}

// DeleteVehicleTx removes a vehicle from the fleet in one transaction:
// 1. Lock vehicle row with FOR UPDATE
// 2. Refuse while the vehicle still has in-transit deliveries
// 3. Release its pending requests back to the unassigned pool
// 4. Delete the vehicle
func (store *SQLStore) DeleteVehicleTx(ctx context.Context, arg DeleteVehicleTxParams) (DeleteVehicleTxResult, error) {
	var result DeleteVehicleTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		return deleteVehicleTx(ctx, q, arg, &result)
	})

	return result, err
}

func deleteVehicleTx(ctx context.Context, q Querier, arg DeleteVehicleTxParams, result *DeleteVehicleTxResult) error {
	var err error

	// 1. Lock the vehicle row
	result.Vehicle, err = q.GetVehicleForUpdate(ctx, arg.VehicleID)
	if err != nil {
		return fmt.Errorf("get vehicle for update: %w", err)
	}

	// 2. In-transit deliveries must be confirmed first
	inTransit, err := q.CountRequestsByVehicleAndStatus(ctx, CountRequestsByVehicleAndStatusParams{
		VehicleID: pgtype.Int8{Int64: arg.VehicleID, Valid: true},
		Status:    "in_transit",
	})
	if err != nil {
		return fmt.Errorf("count in-transit requests: %w", err)
	}
	if inTransit > 0 {
		return ErrVehicleHasActiveDeliveries
	}

	// 3. Pending requests go back to the warehouse pool
	err = q.ClearVehicleFromPendingRequests(ctx, pgtype.Int8{Int64: arg.VehicleID, Valid: true})
	if err != nil {
		return fmt.Errorf("clear pending requests: %w", err)
	}
	result.ReleasedPending = true

	// 4. Delete the vehicle
	err = q.DeleteVehicle(ctx, arg.VehicleID)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}

	return nil
}
