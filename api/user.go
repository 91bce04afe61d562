package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	db "github.com/reliefworks/reliefnet/db/sqlc"
	"github.com/reliefworks/reliefnet/util"
)

type createUserRequest struct {
	Username string `json:"username" binding:"required,alphanum,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required,role"`
}

// createUser registers an operator account. Admin only.
// POST /v1/users
func (server *Server) createUser(ctx *gin.Context) {
	if _, ok := server.authorizedUser(ctx, util.AdminRole); !ok {
		return
	}

	var req createUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	user, err := server.store.CreateUser(ctx, db.CreateUserParams{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("username or email already in use")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, user)
}
