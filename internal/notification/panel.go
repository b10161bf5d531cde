package notification

import (
	"context"
	"errors"
)

// ErrNothingUnread is returned when mark-all is requested with no unread
// notifications; the action is only offered while unread > 0.
var ErrNothingUnread = errors.New("no unread notifications")

// ErrUnknownNotification is returned when a clicked id is not in the
// merged list anymore (its source document was deleted or resolved).
var ErrUnknownNotification = errors.New("notification not in merged list")

// ClickResult tells the caller where an item click navigates to.
type ClickResult struct {
	SourceID  string `json:"source_id"`
	Kind      Kind   `json:"kind"`
	WasUnread bool   `json:"was_unread"`
}

// Panel is the notification panel state machine: closed → open on bell
// click, back to closed on outside click, item click-through, "view all"
// or explicit close. Not safe for concurrent use; the owning center
// serializes access.
type Panel struct {
	open bool
}

func (p *Panel) IsOpen() bool {
	return p.open
}

// HandleBellClick toggles the panel and reports the new state.
func (p *Panel) HandleBellClick() bool {
	p.open = !p.open
	return p.open
}

// HandleOutsideClick closes the panel; a no-op when already closed.
func (p *Panel) HandleOutsideClick() {
	p.open = false
}

// HandleViewAll closes the panel on navigation to the full list.
func (p *Panel) HandleViewAll() {
	p.open = false
}

func (p *Panel) Close() {
	p.open = false
}

// ClickItem resolves a click on a merged entry: an unread item is marked
// read first, an already-read item navigates without touching read state.
// The panel closes on click-through either way.
func (p *Panel) ClickItem(ctx context.Context, n Notification, markers *ReadMarkers) ClickResult {
	wasUnread := !markers.Has(n.ID)
	if wasUnread {
		markers.MarkRead(ctx, n.ID)
	}

	p.open = false

	return ClickResult{
		SourceID:  n.SourceID,
		Kind:      n.Kind,
		WasUnread: wasUnread,
	}
}
