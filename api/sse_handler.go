package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/katatrina/dentcare-BE/internal/event"
	"github.com/katatrina/dentcare-BE/internal/notification"
)

// @Summary		Stream portal events via Server-Sent Events
// @Description	Establishes an SSE connection pushing badge_updated, notification_received and notification_read events for the authenticated user
// @Tags			notifications
// @Produce		text/event-stream
// @Success		200	{string}	string	"Event stream. Data will be sent as SSE events with format: 'event: {eventType}\ndata: {jsonData}'"
// @Router			/notifications/stream [get]
func (server *Server) streamUserEvents(c *gin.Context) {
	userID := authenticatedUserID(c)

	// Holding the attachment for the whole stream keeps this user's center
	// (merged list, read markers, panel state) alive between REST calls.
	center, release := server.notificationService.Attach(c, userID)
	defer release()

	topic := event.UserTopic(userID)

	// Thiết lập header SSE
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Status(http.StatusOK)

	// Tạo channel cho client
	clientChan := make(chan event.Event)
	server.eventSender.Register(topic, clientChan)
	defer server.eventSender.Unregister(topic, clientChan)

	// Gửi trạng thái hiện tại ngay khi kết nối, cùng payload shape với các
	// badge_updated broadcast sau đó
	initial, _ := json.Marshal(notification.NewBadgePayload(center.Badges()))
	fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event.TypeBadgeUpdated, initial)
	c.Writer.Flush()

	// Gửi sự kiện tới client
	for {
		select {
		case ev, ok := <-clientChan:
			if !ok {
				return
			}
			data, _ := json.Marshal(ev.Data)
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", ev.Type, data)
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}
