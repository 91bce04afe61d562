package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/reliefworks/reliefnet/db/sqlc"
	"github.com/reliefworks/reliefnet/util"
)

// managedWarehouse resolves the warehouse owned by the authenticated manager.
func (server *Server) managedWarehouse(ctx *gin.Context, userID int64) (db.Warehouse, bool) {
	warehouse, err := server.store.GetWarehouseByManager(ctx, pgtype.Int8{Int64: userID, Valid: true})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusForbidden, errorResponse(errors.New("no warehouse is managed by this user")))
			return db.Warehouse{}, false
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return db.Warehouse{}, false
	}
	return warehouse, true
}

// getWarehouse returns the manager's warehouse record.
// GET /v1/warehouse
func (server *Server) getWarehouse(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.WarehouseManagerRole)
	if !ok {
		return
	}
	warehouse, ok := server.managedWarehouse(ctx, user.ID)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, warehouse)
}

type updateWarehouseCapacityRequest struct {
	FoodCapacity       int64 `json:"food_capacity" binding:"min=0"`
	WaterCapacity      int64 `json:"water_capacity" binding:"min=0"`
	EssentialsCapacity int64 `json:"essentials_capacity" binding:"min=0"`
	ClothesCapacity    int64 `json:"clothes_capacity" binding:"min=0"`
}

// updateWarehouseCapacity replaces the storage ceilings. A ceiling cannot be
// set below the stock currently available for that resource.
// PATCH /v1/warehouse/capacity
func (server *Server) updateWarehouseCapacity(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.WarehouseManagerRole)
	if !ok {
		return
	}

	var req updateWarehouseCapacityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	warehouse, ok := server.managedWarehouse(ctx, user.ID)
	if !ok {
		return
	}

	if req.FoodCapacity < warehouse.FoodAvailable ||
		req.WaterCapacity < warehouse.WaterAvailable ||
		req.EssentialsCapacity < warehouse.EssentialsAvailable ||
		req.ClothesCapacity < warehouse.ClothesAvailable {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("capacity cannot be set below current available stock")))
		return
	}

	updated, err := server.store.UpdateWarehouseCapacity(ctx, db.UpdateWarehouseCapacityParams{
		ID:                 warehouse.ID,
		FoodCapacity:       req.FoodCapacity,
		WaterCapacity:      req.WaterCapacity,
		EssentialsCapacity: req.EssentialsCapacity,
		ClothesCapacity:    req.ClothesCapacity,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

type updateWarehouseAvailableRequest struct {
	FoodAvailable       int64 `json:"food_available" binding:"min=0"`
	WaterAvailable      int64 `json:"water_available" binding:"min=0"`
	EssentialsAvailable int64 `json:"essentials_available" binding:"min=0"`
	ClothesAvailable    int64 `json:"clothes_available" binding:"min=0"`
}

// updateWarehouseAvailable replaces the available stock levels. Each level is
// bounded by the resource's capacity.
// PATCH /v1/warehouse/available
func (server *Server) updateWarehouseAvailable(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.WarehouseManagerRole)
	if !ok {
		return
	}

	var req updateWarehouseAvailableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	warehouse, ok := server.managedWarehouse(ctx, user.ID)
	if !ok {
		return
	}

	if req.FoodAvailable > warehouse.FoodCapacity ||
		req.WaterAvailable > warehouse.WaterCapacity ||
		req.EssentialsAvailable > warehouse.EssentialsCapacity ||
		req.ClothesAvailable > warehouse.ClothesCapacity {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("available stock cannot exceed capacity")))
		return
	}

	updated, err := server.store.UpdateWarehouseAvailable(ctx, db.UpdateWarehouseAvailableParams{
		ID:                  warehouse.ID,
		FoodAvailable:       req.FoodAvailable,
		WaterAvailable:      req.WaterAvailable,
		EssentialsAvailable: req.EssentialsAvailable,
		ClothesAvailable:    req.ClothesAvailable,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

type updateWarehouseUsedRequest struct {
	FoodUsed       int64 `json:"food_used" binding:"min=0"`
	WaterUsed      int64 `json:"water_used" binding:"min=0"`
	EssentialsUsed int64 `json:"essentials_used" binding:"min=0"`
	ClothesUsed    int64 `json:"clothes_used" binding:"min=0"`
}

// updateWarehouseUsed replaces the dispatched-so-far counters, for manual
// reconciliation after an audit.
// PATCH /v1/warehouse/used
func (server *Server) updateWarehouseUsed(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.WarehouseManagerRole)
	if !ok {
		return
	}

	var req updateWarehouseUsedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	warehouse, ok := server.managedWarehouse(ctx, user.ID)
	if !ok {
		return
	}

	updated, err := server.store.UpdateWarehouseUsed(ctx, db.UpdateWarehouseUsedParams{
		ID:             warehouse.ID,
		FoodUsed:       req.FoodUsed,
		WaterUsed:      req.WaterUsed,
		EssentialsUsed: req.EssentialsUsed,
		ClothesUsed:    req.ClothesUsed,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

type updateWarehouseStatusRequest struct {
	Status string `json:"status" binding:"required,warehouse_status"`
}

// updateWarehouseStatus changes the warehouse's operational status. A closed
// or maintenance warehouse stops receiving new requests at selection time.
// PATCH /v1/warehouse/status
func (server *Server) updateWarehouseStatus(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.WarehouseManagerRole)
	if !ok {
		return
	}

	var req updateWarehouseStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	warehouse, ok := server.managedWarehouse(ctx, user.ID)
	if !ok {
		return
	}

	updated, err := server.store.UpdateWarehouseStatus(ctx, db.UpdateWarehouseStatusParams{
		ID:     warehouse.ID,
		Status: req.Status,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

type createWarehouseRequest struct {
	Name                string  `json:"name" binding:"required"`
	Location            string  `json:"location" binding:"required"`
	Lat                 float64 `json:"lat" binding:"required,min=-90,max=90"`
	Lng                 float64 `json:"lng" binding:"required,min=-180,max=180"`
	FoodCapacity        int64   `json:"food_capacity" binding:"min=0"`
	WaterCapacity       int64   `json:"water_capacity" binding:"min=0"`
	EssentialsCapacity  int64   `json:"essentials_capacity" binding:"min=0"`
	ClothesCapacity     int64   `json:"clothes_capacity" binding:"min=0"`
	FoodAvailable       int64   `json:"food_available" binding:"min=0"`
	WaterAvailable      int64   `json:"water_available" binding:"min=0"`
	EssentialsAvailable int64   `json:"essentials_available" binding:"min=0"`
	ClothesAvailable    int64   `json:"clothes_available" binding:"min=0"`
	ManagerID           *int64  `json:"manager_id"`
}

// createWarehouse provisions a warehouse. Admin only.
// POST /v1/warehouses
func (server *Server) createWarehouse(ctx *gin.Context) {
	if _, ok := server.authorizedUser(ctx, util.AdminRole); !ok {
		return
	}

	var req createWarehouseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if req.FoodAvailable > req.FoodCapacity ||
		req.WaterAvailable > req.WaterCapacity ||
		req.EssentialsAvailable > req.EssentialsCapacity ||
		req.ClothesAvailable > req.ClothesCapacity {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("available stock cannot exceed capacity")))
		return
	}

	params := db.CreateWarehouseParams{
		Name:                req.Name,
		Location:            req.Location,
		Lat:                 req.Lat,
		Lng:                 req.Lng,
		FoodCapacity:        req.FoodCapacity,
		WaterCapacity:       req.WaterCapacity,
		EssentialsCapacity:  req.EssentialsCapacity,
		ClothesCapacity:     req.ClothesCapacity,
		FoodAvailable:       req.FoodAvailable,
		WaterAvailable:      req.WaterAvailable,
		EssentialsAvailable: req.EssentialsAvailable,
		ClothesAvailable:    req.ClothesAvailable,
	}
	if req.ManagerID != nil {
		params.ManagerID = pgtype.Int8{Int64: *req.ManagerID, Valid: true}
	}

	warehouse, err := server.store.CreateWarehouse(ctx, params)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, warehouse)
}
