package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/reliefworks/reliefnet/db/sqlc"
	"github.com/reliefworks/reliefnet/util"
)

// vehicleOwnedByManager loads the user's warehouse and the vehicle, verifying
// the vehicle belongs to that warehouse.
func (server *Server) vehicleOwnedByManager(ctx *gin.Context, userID, vehicleID int64) (db.Vehicle, bool) {
	warehouse, err := server.store.GetWarehouseByManager(ctx, pgtype.Int8{Int64: userID, Valid: true})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusForbidden, errorResponse(errors.New("no warehouse is managed by this user")))
			return db.Vehicle{}, false
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return db.Vehicle{}, false
	}

	vehicle, err := server.store.GetVehicle(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return db.Vehicle{}, false
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return db.Vehicle{}, false
	}
	if vehicle.WarehouseID != warehouse.ID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("vehicle belongs to another warehouse")))
		return db.Vehicle{}, false
	}
	return vehicle, true
}

// listVehicles returns the warehouse's fleet with each vehicle's pending load.
// GET /v1/vehicles
func (server *Server) listVehicles(ctx *gin.Context) {
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

	vehicles, err := server.store.ListVehiclesByWarehouse(ctx, warehouse.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	type vehicleWithLoad struct {
		Vehicle     db.Vehicle `json:"vehicle"`
		CurrentLoad int64      `json:"current_load"`
	}
	fleet := make([]vehicleWithLoad, 0, len(vehicles))
	for _, vehicle := range vehicles {
		load, err := server.store.SumPendingLoadByVehicle(ctx, pgtype.Int8{Int64: vehicle.ID, Valid: true})
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
		fleet = append(fleet, vehicleWithLoad{Vehicle: vehicle, CurrentLoad: load})
	}

	ctx.JSON(http.StatusOK, fleet)
}

type createVehicleRequest struct {
	DisplayID string  `json:"display_id" binding:"required"`
	Capacity  float64 `json:"capacity" binding:"required,gt=0"`
}

// createVehicle registers a vehicle under the manager's warehouse.
// POST /v1/vehicles
func (server *Server) createVehicle(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.WarehouseManagerRole)
	if !ok {
		return
	}

	var req createVehicleRequest
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

	vehicle, err := server.store.CreateVehicle(ctx, db.CreateVehicleParams{
		DisplayID:   req.DisplayID,
		Capacity:    req.Capacity,
		WarehouseID: warehouse.ID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("vehicle display id already in use")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, vehicle)
}

type vehicleURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type updateVehicleRequest struct {
	DisplayID *string  `json:"display_id"`
	Capacity  *float64 `json:"capacity" binding:"omitempty,gt=0"`
	Status    *string  `json:"status" binding:"omitempty,oneof=available in_transit"`
}

// updateVehicle patches the vehicle's display id, capacity or status.
// PATCH /v1/vehicles/:id
func (server *Server) updateVehicle(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.WarehouseManagerRole)
	if !ok {
		return
	}

	var uri vehicleURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req updateVehicleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if _, ok := server.vehicleOwnedByManager(ctx, user.ID, uri.ID); !ok {
		return
	}

	params := db.UpdateVehicleParams{ID: uri.ID}
	if req.DisplayID != nil {
		params.DisplayID = pgtype.Text{String: *req.DisplayID, Valid: true}
	}
	if req.Capacity != nil {
		params.Capacity = pgtype.Float8{Float64: *req.Capacity, Valid: true}
	}
	if req.Status != nil {
		params.Status = pgtype.Text{String: *req.Status, Valid: true}
	}

	vehicle, err := server.store.UpdateVehicle(ctx, params)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("vehicle display id already in use")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, vehicle)
}

// deleteVehicle removes a vehicle from the fleet. Refused while the vehicle
// has in-transit deliveries; assigned-but-undispatched requests are released
// back to the unassigned pool.
// DELETE /v1/vehicles/:id
func (server *Server) deleteVehicle(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.WarehouseManagerRole)
	if !ok {
		return
	}

	var uri vehicleURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if _, ok := server.vehicleOwnedByManager(ctx, user.ID, uri.ID); !ok {
		return
	}

	result, err := server.store.DeleteVehicleTx(ctx, db.DeleteVehicleTxParams{VehicleID: uri.ID})
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			ctx.JSON(http.StatusNotFound, errorResponse(err))
		case errors.Is(err, db.ErrVehicleHasActiveDeliveries):
			ctx.JSON(http.StatusConflict, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"deleted_vehicle":  result.Vehicle,
		"released_pending": result.ReleasedPending,
	})
}
