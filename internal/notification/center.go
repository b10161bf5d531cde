package notification

import (
	"context"

	"github.com/katatrina/dentcare-BE/internal/event"
)

// BadgePayload is the badge_updated event payload. The display string is
// capped for presentation; the integers are the real values.
type BadgePayload struct {
	Counts
	NotificationsDisplay string `json:"notifications_display"`
}

// NewBadgePayload pairs the counts with their capped display string, so
// every producer of badge state emits the same shape.
func NewBadgePayload(counts Counts) BadgePayload {
	return BadgePayload{
		Counts:               counts,
		NotificationsDisplay: FormatBadge(counts.Notifications, DisplayCeiling),
	}
}

// Center is the per-user notification session: the merged list, the
// read-marker set and the panel state machine, all owned by a single
// goroutine. Snapshot updates and commands arrive as closures over the
// actions channel, which is what makes the order-independence and
// idempotence assumptions of the merger hold on a multi-threaded runtime.
type Center struct {
	userID string
	remote RemoteStore
	local  LocalCache
	sender event.EventSender

	merger  *Merger
	markers *ReadMarkers
	panel   Panel
	live    LiveCounts
	liveSeq uint64

	lastCounts Counts
	published  bool

	actions chan func()
	done    chan struct{}
}

func newCenter(userID string, remote RemoteStore, local LocalCache, sender event.EventSender) *Center {
	c := &Center{
		userID:  userID,
		remote:  remote,
		local:   local,
		sender:  sender,
		merger:  NewMerger(),
		markers: NewReadMarkers(remote, local, userID),
		actions: make(chan func(), 64),
		done:    make(chan struct{}),
	}

	go c.run()
	return c
}

func (c *Center) run() {
	for {
		select {
		case fn := <-c.actions:
			fn()
		case <-c.done:
			return
		}
	}
}

// do enqueues a fire-and-forget action.
func (c *Center) do(fn func()) {
	select {
	case c.actions <- fn:
	case <-c.done:
	}
}

// call runs an action and waits for it to complete.
func (c *Center) call(fn func()) {
	finished := make(chan struct{})
	c.do(func() {
		fn()
		close(finished)
	})
	select {
	case <-finished:
	case <-c.done:
	}
}

// start kicks off read-marker reconciliation. The IO half runs off the
// owning goroutine; the result is applied as an action so unread counts
// stay gated at 0 until then.
func (c *Center) start(ctx context.Context) {
	go func() {
		ids := Resolve(ctx, c.remote, c.local, c.userID)
		c.do(func() {
			c.markers.Complete(ctx, ids)
			c.publish(ctx)
		})
	}()
}

func (c *Center) stop() {
	close(c.done)
}

// publish recomputes badges and broadcasts them when they changed.
func (c *Center) publish(ctx context.Context) {
	counts := ComputeCounts(c.live, c.merger.List(), c.markers)
	if c.published && counts == c.lastCounts {
		return
	}
	c.lastCounts = counts
	c.published = true

	c.sender.Broadcast(event.Event{
		Topic: event.UserTopic(c.userID),
		Type:  event.TypeBadgeUpdated,
		Data:  NewBadgePayload(counts),
	})
}

// ApplySnapshot replaces one source's contribution to the merged list.
func (c *Center) ApplySnapshot(ctx context.Context, source string, items []Notification) {
	c.do(func() {
		previous := make(map[string]struct{}, c.merger.Len())
		for _, id := range c.merger.IDs() {
			previous[id] = struct{}{}
		}

		c.merger.Apply(source, items)

		var added []Notification
		for _, n := range items {
			if _, ok := previous[n.ID]; !ok {
				added = append(added, n)
			}
		}
		if len(added) > 0 {
			c.sender.Broadcast(event.Event{
				Topic: event.UserTopic(c.userID),
				Type:  event.TypeNotificationReceived,
				Data:  added,
			})
		}

		c.publish(ctx)
	})
}

// SetLiveCounts replaces the raw live-count snapshot sizes. Concurrent
// listener callbacks can deliver out of order; the sequence number keeps a
// stale copy from overwriting a newer one.
func (c *Center) SetLiveCounts(ctx context.Context, seq uint64, live LiveCounts) {
	c.do(func() {
		if seq < c.liveSeq {
			return
		}
		c.liveSeq = seq
		c.live = live
		c.publish(ctx)
	})
}

// Badges returns the current per-category badge counts.
func (c *Center) Badges() Counts {
	var counts Counts
	c.call(func() {
		counts = ComputeCounts(c.live, c.merger.List(), c.markers)
	})
	return counts
}

// List returns the merged notification list together with per-item read
// state.
func (c *Center) List() []ListedNotification {
	var out []ListedNotification
	c.call(func() {
		merged := c.merger.List()
		out = make([]ListedNotification, len(merged))
		for i, n := range merged {
			out[i] = ListedNotification{
				Notification: n,
				Read:         c.markers.Reconciled() && c.markers.Has(n.ID),
			}
		}
	})
	return out
}

// ListedNotification is a merged entry annotated with the user's read state.
type ListedNotification struct {
	Notification
	Read bool `json:"read"`
}

// ToggleBell flips the panel and reports whether it is now open.
func (c *Center) ToggleBell() bool {
	var open bool
	c.call(func() {
		open = c.panel.HandleBellClick()
	})
	return open
}

// ClosePanel closes the panel (outside click, view-all, explicit close).
func (c *Center) ClosePanel() {
	c.call(func() {
		c.panel.HandleOutsideClick()
	})
}

// PanelOpen reports the current panel state.
func (c *Center) PanelOpen() bool {
	var open bool
	c.call(func() {
		open = c.panel.IsOpen()
	})
	return open
}

// Click resolves a click on a merged entry: unread items are marked read
// before navigation, read items navigate untouched.
func (c *Center) Click(ctx context.Context, id string) (ClickResult, error) {
	var (
		result ClickResult
		err    error
	)
	c.call(func() {
		n, ok := c.merger.Get(id)
		if !ok {
			err = ErrUnknownNotification
			return
		}

		result = c.panel.ClickItem(ctx, n, c.markers)
		if result.WasUnread {
			c.broadcastRead([]string{id})
			c.publish(ctx)
		}
	})
	return result, err
}

// MarkRead acknowledges a single notification.
func (c *Center) MarkRead(ctx context.Context, id string) error {
	var err error
	c.call(func() {
		if _, ok := c.merger.Get(id); !ok {
			err = ErrUnknownNotification
			return
		}
		if c.markers.Has(id) {
			return
		}
		c.markers.MarkRead(ctx, id)
		c.broadcastRead([]string{id})
		c.publish(ctx)
	})
	return err
}

// MarkAllRead acknowledges exactly the notifications visible right now.
// Only valid while something is unread.
func (c *Center) MarkAllRead(ctx context.Context) error {
	var err error
	c.call(func() {
		counts := ComputeCounts(c.live, c.merger.List(), c.markers)
		if counts.Notifications == 0 {
			err = ErrNothingUnread
			return
		}

		visible := c.merger.IDs()
		c.markers.MarkAll(ctx, visible)
		c.broadcastRead(visible)
		c.publish(ctx)
	})
	return err
}

func (c *Center) broadcastRead(ids []string) {
	c.sender.Broadcast(event.Event{
		Topic: event.UserTopic(c.userID),
		Type:  event.TypeNotificationRead,
		Data:  ids,
	})
}
