package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/reliefworks/reliefnet/db/sqlc"
	"github.com/reliefworks/reliefnet/util"
	"github.com/reliefworks/reliefnet/worker"
)

type inboundDelivery struct {
	Request          db.ResourceRequest `json:"request"`
	VehicleDisplayID string             `json:"vehicle_display_id"`
	ETAText          string             `json:"eta_text"`
}

// listCampDeliveries shows the camp's inbound deliveries: every in-transit
// request with its carrying vehicle and a formatted arrival estimate.
// GET /v1/deliveries
func (server *Server) listCampDeliveries(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.CampManagerRole)
	if !ok {
		return
	}

	camp, ok := server.managedCamp(ctx, user.ID)
	if !ok {
		return
	}

	inTransit, err := server.store.ListRequestsByCampAndStatus(ctx, db.ListRequestsByCampAndStatusParams{
		CampID: camp.ID,
		Status: "in_transit",
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	// Vehicles repeat across a batch; resolve each display id once
	displayIDs := map[int64]string{}
	deliveries := make([]inboundDelivery, 0, len(inTransit))
	for _, request := range inTransit {
		var displayID string
		if request.VehicleID.Valid {
			cached, ok := displayIDs[request.VehicleID.Int64]
			if !ok {
				vehicle, err := server.store.GetVehicle(ctx, request.VehicleID.Int64)
				if err != nil {
					ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
					return
				}
				cached = vehicle.DisplayID
				displayIDs[request.VehicleID.Int64] = cached
			}
			displayID = cached
		}
		deliveries = append(deliveries, inboundDelivery{
			Request:          request,
			VehicleDisplayID: displayID,
			ETAText:          etaText(request.Eta),
		})
	}

	ctx.JSON(http.StatusOK, deliveries)
}

type confirmDeliveryRequest struct {
	VehicleDisplayID string `json:"vehicle_display_id" binding:"required"`
	RequestID        int64  `json:"request_id" binding:"required,min=1"`
}

// confirmDelivery is the camp-side receipt confirmation: every in-transit
// request carried by the named vehicle for this camp is completed and the
// delivered quantities are credited to camp stock.
// POST /v1/deliveries/confirm
func (server *Server) completeDelivery(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.CampManagerRole)
	if !ok {
		return
	}

	var req confirmDeliveryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	camp, err := server.store.GetCampByManager(ctx, pgtype.Int8{Int64: user.ID, Valid: true})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusForbidden, errorResponse(errors.New("no camp is managed by this user")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	vehicle, err := server.store.GetVehicleByDisplayID(ctx, req.VehicleDisplayID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("vehicle not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	result, err := server.store.CompleteDeliveryTx(ctx, db.CompleteDeliveryTxParams{
		VehicleID: vehicle.ID,
		CampID:    camp.ID,
		RequestID: req.RequestID,
	})
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			ctx.JSON(http.StatusNotFound, errorResponse(err))
		case errors.Is(err, db.ErrRequestNotInTransit):
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	deliveriesCompletedTotal.Inc()

	server.sendCampNotification(ctx, camp.ID,
		worker.NotificationDeliveryCompleted,
		fmt.Sprintf("Vehicle %s delivered %d request(s) to your camp.", vehicle.DisplayID, len(result.CompletedRequests)),
		map[string]any{
			"vehicle_id":      vehicle.ID,
			"completed_count": len(result.CompletedRequests),
		},
	)

	ctx.JSON(http.StatusOK, gin.H{
		"completed_requests": result.CompletedRequests,
		"completed_count":    len(result.CompletedRequests),
		"vehicle":            result.Vehicle,
		"camp":               result.Camp,
	})
}
