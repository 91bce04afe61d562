package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	db "github.com/reliefworks/reliefnet/db/sqlc"
	"github.com/reliefworks/reliefnet/util"
)

type listNotificationsQuery struct {
	Limit int32 `form:"limit" binding:"omitempty,min=1,max=200"`
}

// listNotifications returns the camp's notification feed, newest first.
// GET /v1/notifications
func (server *Server) listNotifications(ctx *gin.Context) {
	user, ok := server.authorizedUser(ctx, util.CampManagerRole)
	if !ok {
		return
	}

	var query listNotificationsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if query.Limit == 0 {
		query.Limit = 50
	}

	camp, ok := server.managedCamp(ctx, user.ID)
	if !ok {
		return
	}

	notifications, err := server.store.ListNotificationsByCamp(ctx, db.ListNotificationsByCampParams{
		CampID: camp.ID,
		Limit:  query.Limit,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, notifications)
}
