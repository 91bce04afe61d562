package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// ==================== Reject request transaction ====================

var ErrRequestNotRejectable = errors.New("request is neither pending nor in transit")

// RejectRequestTxParams contains the input parameters for rejecting a request.
// NewWarehouseID is the pre-selected reroute target; leave it invalid when no
// other operational warehouse exists.
type RejectRequestTxParams struct {
	RequestID      int64
	NewWarehouseID pgtype.Int8
}

// RejectRequestTxResult contains the result of the reject request transaction
type RejectRequestTxResult struct {
	RejectedRequest ResourceRequest
	NewRequest      *ResourceRequest
}

// RejectRequestTx marks a pending request as rejected and, when a reroute
// target is given, opens a replacement request at the new warehouse:
// 1. Check the request is pending or in transit
// 2. Mark it rejected (terminal)
// 3. Create a replacement with the same camp, quantities and priority
func (store *SQLStore) RejectRequestTx(ctx context.Context, arg RejectRequestTxParams) (RejectRequestTxResult, error) {
	var result RejectRequestTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		return rejectRequest(ctx, q, arg, &result)
	})

	return result, err
}

func rejectRequest(ctx context.Context, q Querier, arg RejectRequestTxParams, result *RejectRequestTxResult) error {
	// 1. Only pending and in-transit requests can be rejected
	request, err := q.GetResourceRequest(ctx, arg.RequestID)
	if err != nil {
		return fmt.Errorf("get resource request: %w", err)
	}
	if request.Status != "pending" && request.Status != "in_transit" {
		return ErrRequestNotRejectable
	}

	// 2. Rejection is terminal for this request
	result.RejectedRequest, err = q.UpdateRequestStatus(ctx, UpdateRequestStatusParams{
		ID:     arg.RequestID,
		Status: "rejected",
	})
	if err != nil {
		return fmt.Errorf("update request status: %w", err)
	}

	// 3. Reroute by opening a fresh request at the new warehouse
	if arg.NewWarehouseID.Valid {
		newRequest, err := q.CreateResourceRequest(ctx, CreateResourceRequestParams{
			CampID:             request.CampID,
			WarehouseID:        arg.NewWarehouseID,
			FoodQuantity:       request.FoodQuantity,
			WaterQuantity:      request.WaterQuantity,
			EssentialsQuantity: request.EssentialsQuantity,
			ClothesQuantity:    request.ClothesQuantity,
			Priority:           request.Priority,
		})
		if err != nil {
			return fmt.Errorf("create replacement request: %w", err)
		}
		result.NewRequest = &newRequest
	}

	return nil
}
