package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/reliefworks/reliefnet/algorithm"
	db "github.com/reliefworks/reliefnet/db/sqlc"
	"github.com/reliefworks/reliefnet/util"
	"github.com/reliefworks/reliefnet/worker"
	"github.com/rs/zerolog/log"
)

// sendCampNotification enqueues a notification task for the camp feed.
// Enqueue failures are logged, not surfaced: the dispatch itself already
// committed and must not fail over a notification.
func (server *Server) sendCampNotification(ctx context.Context, campID int64, notificationType, message string, data map[string]any) {
	if server.taskDistributor == nil {
		return
	}
	err := server.taskDistributor.DistributeTaskSendNotification(
		ctx,
		&worker.SendNotificationPayload{
			CampID:  campID,
			Type:    notificationType,
			Message: message,
			Data:    data,
		},
		asynq.Queue(worker.QueueDefault),
	)
	if err != nil {
		log.Error().Err(err).
			Int64("camp_id", campID).
			Str("type", notificationType).
			Msg("cannot enqueue notification task")
	}
}

// ==================== Accept request ====================

type acceptRequestRequest struct {
	VehicleID int64 `json:"vehicle_id" binding:"required,min=1"`
}

// acceptRequest assigns a pending request to one of the warehouse's vehicles
// and dispatches the vehicle's batch when the load threshold is reached or
// the request is an emergency.
// POST /v1/requests/:id/accept
func (server *Server) acceptRequest(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.WarehouseManagerRole)
	if !ok {
		return
	}

	var uri requestURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req acceptRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	warehouse, err := server.store.GetWarehouseByManager(ctx, pgtype.Int8{Int64: user.ID, Valid: true})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusForbidden, errorResponse(errors.New("no warehouse is managed by this user")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	request, err := server.store.GetResourceRequest(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if !request.WarehouseID.Valid || request.WarehouseID.Int64 != warehouse.ID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("request is routed to another warehouse")))
		return
	}

	result, err := server.store.AcceptRequestTx(ctx, db.AcceptRequestTxParams{
		RequestID: uri.ID,
		VehicleID: req.VehicleID,
		ComputeETA: func(warehouse db.Warehouse, camp db.Camp) pgtype.Timestamptz {
			route := server.routingClient.RoadDistanceDuration(ctx,
				algorithm.Location{Lat: warehouse.Lat, Lng: warehouse.Lng},
				algorithm.Location{Lat: camp.Lat, Lng: camp.Lng},
			)
			if route.DurationSeconds == nil {
				// Routing degraded to great-circle distance: no arrival estimate
				return pgtype.Timestamptz{}
			}
			eta := time.Now().Add(time.Duration(*route.DurationSeconds * float64(time.Second)))
			return pgtype.Timestamptz{Time: eta, Valid: true}
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			ctx.JSON(http.StatusNotFound, errorResponse(err))
		case errors.Is(err, db.ErrRequestNotPending),
			errors.Is(err, db.ErrRequestAlreadyAssigned),
			errors.Is(err, db.ErrVehicleNotAvailable),
			errors.Is(err, db.ErrWarehouseMismatch):
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	if result.Dispatched {
		trigger := "threshold"
		if result.Request.Priority == "emergency" {
			trigger = "emergency"
		}
		dispatchesTotal.WithLabelValues(trigger).Inc()

		// One notification per camp served by the dispatched batch
		notified := map[int64]bool{}
		for _, dispatched := range result.Batch {
			if notified[dispatched.CampID] {
				continue
			}
			notified[dispatched.CampID] = true
			server.sendCampNotification(ctx, dispatched.CampID,
				worker.NotificationVehicleDispatch,
				fmt.Sprintf("Vehicle %s has been dispatched with your supplies. ETA: %s",
					result.Vehicle.DisplayID, etaText(result.ETA)),
				map[string]any{
					"vehicle_id": result.Vehicle.ID,
					"request_id": dispatched.ID,
				},
			)
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"request":    result.Request,
		"vehicle":    result.Vehicle,
		"dispatched": result.Dispatched,
		"total_load": result.TotalLoad,
		"batch_size": len(result.Batch),
		"eta_text":   etaText(result.ETA),
	})
}

// ==================== Reject request ====================

// rejectRequest marks a request rejected and reroutes it to the next-nearest
// operational warehouse when one exists.
// POST /v1/requests/:id/reject
func (server *Server) rejectRequest(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.WarehouseManagerRole)
	if !ok {
		return
	}

	var uri requestURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	warehouse, err := server.store.GetWarehouseByManager(ctx, pgtype.Int8{Int64: user.ID, Valid: true})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusForbidden, errorResponse(errors.New("no warehouse is managed by this user")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	request, err := server.store.GetResourceRequest(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if !request.WarehouseID.Valid || request.WarehouseID.Int64 != warehouse.ID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("request is routed to another warehouse")))
		return
	}

	camp, err := server.store.GetCamp(ctx, request.CampID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	// Reroute target is chosen by distance only; capacity is not rechecked
	reroute, found, err := server.selectRerouteWarehouse(ctx, camp, warehouse.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	params := db.RejectRequestTxParams{RequestID: uri.ID}
	if found {
		params.NewWarehouseID = pgtype.Int8{Int64: reroute.ID, Valid: true}
	}

	result, err := server.store.RejectRequestTx(ctx, params)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			ctx.JSON(http.StatusNotFound, errorResponse(err))
		case errors.Is(err, db.ErrRequestNotRejectable):
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	if result.NewRequest != nil {
		server.sendCampNotification(ctx, camp.ID,
			worker.NotificationRequestRejectedAndForwarded,
			fmt.Sprintf("Your request was rejected by %s and forwarded to %s.", warehouse.Name, reroute.Name),
			map[string]any{
				"rejected_request_id": result.RejectedRequest.ID,
				"new_request_id":      result.NewRequest.ID,
			},
		)
	} else {
		server.sendCampNotification(ctx, camp.ID,
			worker.NotificationRequestRejected,
			fmt.Sprintf("Your request was rejected by %s and no other warehouse is operational.", warehouse.Name),
			map[string]any{
				"rejected_request_id": result.RejectedRequest.ID,
			},
		)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"rejected_request": result.RejectedRequest,
		"new_request":      result.NewRequest,
	})
}

// ==================== Available vehicles ====================

type availableVehicleResponse struct {
	Vehicle            db.Vehicle `json:"vehicle"`
	CurrentLoad        int64      `json:"current_load"`
	AvailableCapacity  float64    `json:"available_capacity"`
	WillReach90Percent bool       `json:"will_reach_90_percent"`
}

// listAvailableVehiclesForRequest reports which of the warehouse's idle
// vehicles could take the request without exceeding capacity. Read-only.
// GET /v1/requests/:id/vehicles
func (server *Server) listAvailableVehiclesForRequest(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.WarehouseManagerRole)
	if !ok {
		return
	}

	var uri requestURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	warehouse, err := server.store.GetWarehouseByManager(ctx, pgtype.Int8{Int64: user.ID, Valid: true})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusForbidden, errorResponse(errors.New("no warehouse is managed by this user")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	request, err := server.store.GetResourceRequest(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if !request.WarehouseID.Valid || request.WarehouseID.Int64 != warehouse.ID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("request is routed to another warehouse")))
		return
	}
	if request.Status != "pending" {
		ctx.JSON(http.StatusBadRequest, errorResponse(db.ErrRequestNotPending))
		return
	}

	requestLoad := request.FoodQuantity + request.WaterQuantity + request.EssentialsQuantity + request.ClothesQuantity

	vehicles, err := server.store.ListAvailableVehiclesByWarehouse(ctx, warehouse.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	candidates := make([]availableVehicleResponse, 0, len(vehicles))
	for _, vehicle := range vehicles {
		load, err := server.store.SumPendingLoadByVehicle(ctx, pgtype.Int8{Int64: vehicle.ID, Valid: true})
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
		totalLoad := float64(load + requestLoad)
		if totalLoad > vehicle.Capacity {
			continue
		}
		candidates = append(candidates, availableVehicleResponse{
			Vehicle:            vehicle,
			CurrentLoad:        load,
			AvailableCapacity:  vehicle.Capacity - float64(load),
			WillReach90Percent: totalLoad >= db.DispatchThreshold*vehicle.Capacity,
		})
	}

	ctx.JSON(http.StatusOK, candidates)
}
