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

// managedCamp resolves the camp owned by the authenticated manager.
func (server *Server) managedCamp(ctx *gin.Context, userID int64) (db.Camp, bool) {
	camp, err := server.store.GetCampByManager(ctx, pgtype.Int8{Int64: userID, Valid: true})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusForbidden, errorResponse(errors.New("no camp is managed by this user")))
			return db.Camp{}, false
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return db.Camp{}, false
	}
	return camp, true
}

// getCamp returns the manager's camp record.
// GET /v1/camp
func (server *Server) getCamp(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.CampManagerRole)
	if !ok {
		return
	}
	camp, ok := server.managedCamp(ctx, user.ID)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, camp)
}

type updateCampStockRequest struct {
	FoodStock       int64 `json:"food_stock" binding:"min=0"`
	WaterStock      int64 `json:"water_stock" binding:"min=0"`
	EssentialsStock int64 `json:"essentials_stock" binding:"min=0"`
	ClothesStock    int64 `json:"clothes_stock" binding:"min=0"`
}

// updateCampStock replaces on-hand stock levels. Each level is bounded by the
// camp's storage capacity for that resource.
// PATCH /v1/camp/stock
func (server *Server) updateCampStock(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.CampManagerRole)
	if !ok {
		return
	}

	var req updateCampStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	camp, ok := server.managedCamp(ctx, user.ID)
	if !ok {
		return
	}

	if req.FoodStock > camp.FoodCapacity ||
		req.WaterStock > camp.WaterCapacity ||
		req.EssentialsStock > camp.EssentialsCapacity ||
		req.ClothesStock > camp.ClothesCapacity {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("stock cannot exceed camp capacity")))
		return
	}

	updated, err := server.store.UpdateCampStock(ctx, db.UpdateCampStockParams{
		ID:              camp.ID,
		FoodStock:       req.FoodStock,
		WaterStock:      req.WaterStock,
		EssentialsStock: req.EssentialsStock,
		ClothesStock:    req.ClothesStock,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

type updateCampUsedRequest struct {
	FoodUsed       int64 `json:"food_used" binding:"min=0"`
	WaterUsed      int64 `json:"water_used" binding:"min=0"`
	EssentialsUsed int64 `json:"essentials_used" binding:"min=0"`
	ClothesUsed    int64 `json:"clothes_used" binding:"min=0"`
}

// updateCampUsed replaces consumption counters, for daily distribution logs.
// PATCH /v1/camp/used
func (server *Server) updateCampUsed(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.CampManagerRole)
	if !ok {
		return
	}

	var req updateCampUsedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	camp, ok := server.managedCamp(ctx, user.ID)
	if !ok {
		return
	}

	updated, err := server.store.UpdateCampUsed(ctx, db.UpdateCampUsedParams{
		ID:             camp.ID,
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

type updateCampOccupancyRequest struct {
	CurrentOccupancy int64 `json:"current_occupancy" binding:"min=0"`
}

// updateCampOccupancy records the current headcount, bounded by the camp's
// shelter capacity.
// PATCH /v1/camp/occupancy
func (server *Server) updateCampOccupancy(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.CampManagerRole)
	if !ok {
		return
	}

	var req updateCampOccupancyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	camp, ok := server.managedCamp(ctx, user.ID)
	if !ok {
		return
	}

	if req.CurrentOccupancy > camp.Capacity {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("occupancy cannot exceed camp capacity")))
		return
	}

	updated, err := server.store.UpdateCampOccupancy(ctx, db.UpdateCampOccupancyParams{
		ID:               camp.ID,
		CurrentOccupancy: req.CurrentOccupancy,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

type createCampRequest struct {
	Name               string  `json:"name" binding:"required"`
	Location           string  `json:"location" binding:"required"`
	Lat                float64 `json:"lat" binding:"required,min=-90,max=90"`
	Lng                float64 `json:"lng" binding:"required,min=-180,max=180"`
	Capacity           int64   `json:"capacity" binding:"required,min=1"`
	FoodCapacity       int64   `json:"food_capacity" binding:"min=0"`
	WaterCapacity      int64   `json:"water_capacity" binding:"min=0"`
	EssentialsCapacity int64   `json:"essentials_capacity" binding:"min=0"`
	ClothesCapacity    int64   `json:"clothes_capacity" binding:"min=0"`
	ManagerID          *int64  `json:"manager_id"`
}

// createCamp provisions a relief camp. Admin only.
// POST /v1/camps
func (server *Server) createCamp(ctx *gin.Context) {
	if _, ok := server.authorizedUser(ctx, util.AdminRole); !ok {
		return
	}

	var req createCampRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	params := db.CreateCampParams{
		Name:               req.Name,
		Location:           req.Location,
		Lat:                req.Lat,
		Lng:                req.Lng,
		Capacity:           req.Capacity,
		FoodCapacity:       req.FoodCapacity,
		WaterCapacity:      req.WaterCapacity,
		EssentialsCapacity: req.EssentialsCapacity,
		ClothesCapacity:    req.ClothesCapacity,
	}
	if req.ManagerID != nil {
		params.ManagerID = pgtype.Int8{Int64: *req.ManagerID, Valid: true}
	}

	camp, err := server.store.CreateCamp(ctx, params)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, camp)
}
