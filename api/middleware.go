package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	db "github.com/reliefworks/reliefnet/db/sqlc"
	"github.com/reliefworks/reliefnet/token"
	"github.com/reliefworks/reliefnet/util"
)

const (
	authorizationHeaderKey  = "authorization"
	authorizationTypeBearer = "bearer"
	authorizationPayloadKey = "authorization_payload"
)

// authMiddleware creates a gin middleware for authorization
func authMiddleware(tokenMaker token.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var accessToken string
		authorizationHeader := ctx.GetHeader(authorizationHeaderKey)

		if len(authorizationHeader) != 0 {
			fields := strings.Fields(authorizationHeader)
			if len(fields) >= 2 && strings.ToLower(fields[0]) == authorizationTypeBearer {
				accessToken = fields[1]
			}
		}

		if len(accessToken) == 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(errors.New("access token is not provided")))
			return
		}

		payload, err := tokenMaker.VerifyToken(accessToken, token.TokenTypeAccessToken)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		ctx.Set(authorizationPayloadKey, payload)
		ctx.Next()
	}
}

// authorizedUser resolves the authenticated user and enforces one of the
// allowed roles. It writes the error response itself and reports success
// through the bool.
func (server *Server) authorizedUser(ctx *gin.Context, allowedRoles ...string) (db.User, bool) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	user, err := server.store.GetUser(ctx, authPayload.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusUnauthorized, errorResponse(errors.New("user not found")))
			return db.User{}, false
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return db.User{}, false
	}

	if !user.IsActive {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("user is deactivated")))
		return db.User{}, false
	}

	if !util.HasRole(user.Role, allowedRoles...) {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("operation not permitted for this role")))
		return db.User{}, false
	}

	return user, true
}

// TimeoutMiddleware injects a deadline into the request context so downstream
// work (DB, routing provider) can be cancelled.
//
// Do not call ctx.Next() from a goroutine here: gin's Context and
// ResponseWriter are not safe for concurrent writes.
func TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{"error": "request timeout"})
		}
	}
}
