package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/reliefworks/reliefnet/algorithm"
	db "github.com/reliefworks/reliefnet/db/sqlc"
	"github.com/reliefworks/reliefnet/util"
)

// ==================== Submit request ====================

type submitResourceRequestRequest struct {
	FoodQuantity       int64  `json:"food_quantity" binding:"min=0"`
	WaterQuantity      int64  `json:"water_quantity" binding:"min=0"`
	EssentialsQuantity int64  `json:"essentials_quantity" binding:"min=0"`
	ClothesQuantity    int64  `json:"clothes_quantity" binding:"min=0"`
	Priority           string `json:"priority" binding:"omitempty,priority"`
}

// submitResourceRequest files a camp's supply request against the nearest
// operational warehouse able to fulfil it.
// POST /v1/requests
func (server *Server) submitResourceRequest(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.CampManagerRole)
	if !ok {
		return
	}

	var req submitResourceRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if req.Priority == "" {
		req.Priority = "general"
	}

	bundle := resourceBundle{
		Food:       req.FoodQuantity,
		Water:      req.WaterQuantity,
		Essentials: req.EssentialsQuantity,
		Clothes:    req.ClothesQuantity,
	}
	if bundle.allZero() {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("request must ask for at least one resource")))
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

	warehouse, found, err := server.selectWarehouse(ctx, camp, bundle)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if !found {
		// Retryable outcome, not an error: the caller may resubmit later
		ctx.JSON(http.StatusOK, gin.H{
			"success": false,
			"reason":  "no fulfillable warehouse",
		})
		return
	}

	request, err := server.store.CreateResourceRequest(ctx, db.CreateResourceRequestParams{
		CampID:             camp.ID,
		WarehouseID:        pgtype.Int8{Int64: warehouse.ID, Valid: true},
		FoodQuantity:       bundle.Food,
		WaterQuantity:      bundle.Water,
		EssentialsQuantity: bundle.Essentials,
		ClothesQuantity:    bundle.Clothes,
		Priority:           req.Priority,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	requestsSubmittedTotal.WithLabelValues(request.Priority).Inc()

	ctx.JSON(http.StatusOK, gin.H{
		"success":   true,
		"request":   request,
		"warehouse": warehouse.Name,
	})
}

// ==================== Camp request views ====================

type listCampRequestsRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=pending in_transit completed rejected"`
}

// listCampRequests lists the camp's requests, newest first
// GET /v1/requests
func (server *Server) listCampRequests(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.CampManagerRole)
	if !ok {
		return
	}

	var req listCampRequestsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
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

	var requests []db.ResourceRequest
	if req.Status != "" {
		requests, err = server.store.ListRequestsByCampAndStatus(ctx, db.ListRequestsByCampAndStatusParams{
			CampID: camp.ID,
			Status: req.Status,
		})
	} else {
		requests, err = server.store.ListRequestsByCamp(ctx, camp.ID)
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, requests)
}

type requestURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type requestStatusResponse struct {
	Request db.ResourceRequest `json:"request"`
	ETAText string             `json:"eta_text"`
}

// etaText renders the time remaining until the stamped arrival. A missing
// or elapsed ETA degrades to the pending placeholder.
func etaText(eta pgtype.Timestamptz) string {
	if !eta.Valid {
		return algorithm.FormatETA(0)
	}
	return algorithm.FormatETA(time.Until(eta.Time).Seconds())
}

// getRequestStatus returns one request with its human-readable ETA
// GET /v1/requests/:id/status
func (server *Server) getRequestStatus(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.CampManagerRole)
	if !ok {
		return
	}

	var uri requestURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
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

	request, err := server.store.GetResourceRequest(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if request.CampID != camp.ID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("request belongs to another camp")))
		return
	}

	ctx.JSON(http.StatusOK, requestStatusResponse{
		Request: request,
		ETAText: etaText(request.Eta),
	})
}

// ==================== Warehouse work queue ====================

type waitingVehicle struct {
	Vehicle     db.Vehicle `json:"vehicle"`
	CurrentLoad int64      `json:"current_load"`
	NeedsMore   bool       `json:"needs_more"`
}

type warehouseWorkQueueResponse struct {
	PendingRequests []db.ResourceRequest `json:"pending_requests"`
	WaitingVehicles []waitingVehicle     `json:"waiting_vehicles"`
}

// getWarehouseWorkQueue lists the warehouse's unassigned pending requests
// together with its idle vehicles and their batched load.
// GET /v1/warehouse/requests
func (server *Server) getWarehouseWorkQueue(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.WarehouseManagerRole)
	if !ok {
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

	pending, err := server.store.ListUnassignedRequestsByWarehouse(ctx, pgtype.Int8{Int64: warehouse.ID, Valid: true})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	vehicles, err := server.store.ListAvailableVehiclesByWarehouse(ctx, warehouse.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	waiting := make([]waitingVehicle, 0, len(vehicles))
	for _, vehicle := range vehicles {
		load, err := server.store.SumPendingLoadByVehicle(ctx, pgtype.Int8{Int64: vehicle.ID, Valid: true})
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
		waiting = append(waiting, waitingVehicle{
			Vehicle:     vehicle,
			CurrentLoad: load,
			NeedsMore:   float64(load) < db.DispatchThreshold*vehicle.Capacity,
		})
	}

	ctx.JSON(http.StatusOK, warehouseWorkQueueResponse{
		PendingRequests: pending,
		WaitingVehicles: waiting,
	})
}
