package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/katatrina/dentcare-BE/internal/notification"
)

//	@Summary		List Merged Notifications
//	@Description	Returns the merged notification stream for the authenticated portal user, newest first, with per-item read state
//	@Tags			notifications
//	@Produce		json
//	@Success		200	{array}	notification.ListedNotification
//	@Router			/notifications [get]
func (server *Server) listUserNotifications(ctx *gin.Context) {
	center, release := server.notificationService.Attach(ctx, authenticatedUserID(ctx))
	defer release()

	ctx.JSON(http.StatusOK, center.List())
}

func (server *Server) getBadgeCounts(ctx *gin.Context) {
	center, release := server.notificationService.Attach(ctx, authenticatedUserID(ctx))
	defer release()

	ctx.JSON(http.StatusOK, notification.NewBadgePayload(center.Badges()))
}

// handleBellClick toggles the notification panel and reports its new state.
func (server *Server) handleBellClick(ctx *gin.Context) {
	center, release := server.notificationService.Attach(ctx, authenticatedUserID(ctx))
	defer release()

	ctx.JSON(http.StatusOK, gin.H{"open": center.ToggleBell()})
}

func (server *Server) closePanel(ctx *gin.Context) {
	center, release := server.notificationService.Attach(ctx, authenticatedUserID(ctx))
	defer release()

	center.ClosePanel()
	ctx.JSON(http.StatusOK, gin.H{"open": false})
}

//	@Summary		Click Notification
//	@Description	Resolves a click on a panel entry: unread entries are marked read first, then the client navigates using the returned reference
//	@Tags			notifications
//	@Produce		json
//	@Param			id	path		string	true	"Namespaced notification ID, e.g. apt_h7Jq..."
//	@Success		200	{object}	notification.ClickResult
//	@Failure		404	{object}	map[string]string
//	@Router			/notifications/{id}/click [post]
func (server *Server) clickNotification(ctx *gin.Context) {
	center, release := server.notificationService.Attach(ctx, authenticatedUserID(ctx))
	defer release()

	result, err := center.Click(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, notification.ErrUnknownNotification) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (server *Server) markNotificationRead(ctx *gin.Context) {
	center, release := server.notificationService.Attach(ctx, authenticatedUserID(ctx))
	defer release()

	if err := center.MarkRead(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, notification.ErrUnknownNotification) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
}

// markAllNotificationsRead acknowledges exactly the entries visible right
// now; notifications arriving afterwards stay unread.
func (server *Server) markAllNotificationsRead(ctx *gin.Context) {
	center, release := server.notificationService.Attach(ctx, authenticatedUserID(ctx))
	defer release()

	if err := center.MarkAllRead(ctx); err != nil {
		if errors.Is(err, notification.ErrNothingUnread) {
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "all notifications marked as read"})
}
