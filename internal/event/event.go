package event

import "fmt"

// Event is one message pushed to connected portal clients.
type Event struct {
	Topic string      // e.g. "user:abc123"
	Type  string      // badge_updated, notification_received, notification_read
	Data  interface{} // payload, JSON-encoded by the SSE handler
}

const (
	TypeBadgeUpdated         = "badge_updated"
	TypeNotificationReceived = "notification_received"
	TypeNotificationRead     = "notification_read"
)

// UserTopic is the per-user topic badge and notification events go to.
func UserTopic(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}

// EventSender fans events out to registered client channels.
type EventSender interface {
	Register(topic string, client chan Event)
	Unregister(topic string, client chan Event)
	Broadcast(event Event)
}
