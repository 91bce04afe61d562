package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	db "github.com/reliefworks/reliefnet/db/sqlc"
	"github.com/reliefworks/reliefnet/routing"
	"github.com/reliefworks/reliefnet/token"
	"github.com/reliefworks/reliefnet/util"
	"github.com/reliefworks/reliefnet/worker"
	"github.com/rs/zerolog/log"
)

// MessageResponse is the generic message envelope
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server serves HTTP requests for the relief dispatch service.
type Server struct {
	config          util.Config
	store           db.Store
	tokenMaker      token.Maker
	routingClient   routing.Client
	taskDistributor worker.TaskDistributor
	router          *gin.Engine
}

// NewServer creates a new HTTP server and sets up routing.
func NewServer(config util.Config, store db.Store, routingClient routing.Client, taskDistributor worker.TaskDistributor) (*Server, error) {
	tokenMaker, err := token.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	if routingClient == nil {
		routingClient = routing.NewOSRMClient(config.RoutingBaseURL, config.RoutingTimeout)
	}

	server := &Server{
		config:          config,
		store:           store,
		tokenMaker:      tokenMaker,
		routingClient:   routingClient,
		taskDistributor: taskDistributor,
	}

	server.setupRouter()
	return server, nil
}

// GetRouter returns the gin router for serving
func (server *Server) GetRouter() *gin.Engine {
	return server.router
}

func (server *Server) setupRouter() {
	if server.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	registerCustomValidators()

	router.Use(RequestTracingMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(PrometheusMiddleware())

	rateLimiter := NewRateLimiter(DefaultRateLimiterConfig())
	router.Use(rateLimiter.Middleware())

	router.Use(TimeoutMiddleware(30 * time.Second))

	router.GET("/metrics", MetricsHandler())
	router.GET("/health", server.healthCheck)
	router.GET("/ready", server.readinessCheck)

	v1 := router.Group("/v1")

	authGroup := v1.Group("")
	authGroup.Use(authMiddleware(server.tokenMaker))

	// Camp manager: requests and deliveries
	authGroup.POST("/requests", server.submitResourceRequest)
	authGroup.GET("/requests", server.listCampRequests)
	authGroup.GET("/requests/:id/status", server.getRequestStatus)
	authGroup.GET("/deliveries", server.listCampDeliveries)
	authGroup.POST("/deliveries/confirm", server.completeDelivery)

	// Camp manager: camp administration
	authGroup.GET("/camp", server.getCamp)
	authGroup.PATCH("/camp/stock", server.updateCampStock)
	authGroup.PATCH("/camp/used", server.updateCampUsed)
	authGroup.PATCH("/camp/occupancy", server.updateCampOccupancy)
	authGroup.GET("/notifications", server.listNotifications)

	// Warehouse manager: dispatch
	authGroup.GET("/warehouse", server.getWarehouse)
	authGroup.GET("/warehouse/requests", server.getWarehouseWorkQueue)
	authGroup.POST("/requests/:id/accept", server.acceptRequest)
	authGroup.POST("/requests/:id/reject", server.rejectRequest)
	authGroup.GET("/requests/:id/vehicles", server.listAvailableVehiclesForRequest)

	// Warehouse manager: stock administration
	authGroup.PATCH("/warehouse/capacity", server.updateWarehouseCapacity)
	authGroup.PATCH("/warehouse/available", server.updateWarehouseAvailable)
	authGroup.PATCH("/warehouse/used", server.updateWarehouseUsed)
	authGroup.PATCH("/warehouse/status", server.updateWarehouseStatus)

	// Warehouse manager: fleet
	authGroup.GET("/vehicles", server.listVehicles)
	authGroup.POST("/vehicles", server.createVehicle)
	authGroup.PATCH("/vehicles/:id", server.updateVehicle)
	authGroup.DELETE("/vehicles/:id", server.deleteVehicle)

	// Admin: record management
	authGroup.POST("/users", server.createUser)
	authGroup.POST("/camps", server.createCamp)
	authGroup.POST("/warehouses", server.createWarehouse)

	server.router = router
}

// healthCheck reports basic liveness
// GET /health
func (server *Server) healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "reliefnet-api",
	})
}

// readinessCheck reports readiness of dependencies
// GET /ready
func (server *Server) readinessCheck(ctx *gin.Context) {
	if err := server.store.Ping(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "database connection failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"service":  "reliefnet-api",
		"database": "connected",
	})
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// internalError logs the actual error and returns a safe generic message.
// Use this for 5xx errors to prevent leaking internal implementation details.
func internalError(ctx *gin.Context, err error) gin.H {
	// Attach to gin context so RequestLoggingMiddleware can include it
	_ = ctx.Error(err)

	evt := log.Error().
		Err(err).
		Str("request_id", GetRequestID(ctx)).
		Str("path", ctx.Request.URL.Path).
		Str("method", ctx.Request.Method)

	// If it's a Postgres error, log structured fields for faster debugging
	if pgErr, ok := err.(*pgconn.PgError); ok {
		evt = evt.
			Str("sqlstate", pgErr.Code).
			Str("pg_message", pgErr.Message).
			Str("pg_detail", pgErr.Detail).
			Str("pg_constraint", pgErr.ConstraintName)
	}

	evt.Msg("internal error")

	return gin.H{"error": "internal server error"}
}
