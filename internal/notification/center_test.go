package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/katatrina/dentcare-BE/internal/event"
)

type stubRemote struct {
	ids     []string
	loadErr error
}

func (r *stubRemote) Load(ctx context.Context, userID string) ([]string, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.ids, nil
}

func (r *stubRemote) Save(ctx context.Context, userID string, ids []string) error { return nil }

type stubCache struct{}

func (stubCache) Load(ctx context.Context, userID string) ([]string, bool) { return nil, false }
func (stubCache) Save(ctx context.Context, userID string, ids []string)    {}

type recordingSender struct {
	mu     sync.Mutex
	events []event.Event
}

func (s *recordingSender) Register(topic string, client chan event.Event)   {}
func (s *recordingSender) Unregister(topic string, client chan event.Event) {}

func (s *recordingSender) Broadcast(ev event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordingSender) byType(eventType string) []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []event.Event
	for _, ev := range s.events {
		if ev.Type == eventType {
			out = append(out, ev)
		}
	}
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func testNotification(source, docID string, ts time.Time) Notification {
	return Notification{
		ID:        NamespacedID(source, docID),
		SourceID:  docID,
		Source:    source,
		Kind:      KindAppointmentPending,
		Timestamp: ts,
	}
}

func TestCenter_UnreadGatedUntilReconciled(t *testing.T) {
	sender := &recordingSender{}
	c := newCenter("user1", &stubRemote{}, stubCache{}, sender)
	defer c.stop()

	now := time.Now()
	c.ApplySnapshot(context.Background(), SourceGeneric, []Notification{
		testNotification(SourceGeneric, "n1", now),
		testNotification(SourceGeneric, "n2", now),
	})

	if got := c.Badges().Notifications; got != 0 {
		t.Fatalf("unread must be 0 before reconciliation, got %d", got)
	}
	if err := c.MarkAllRead(context.Background()); !errors.Is(err, ErrNothingUnread) {
		t.Fatalf("mark-all before reconciliation should report nothing unread, got %v", err)
	}
}

func TestCenter_StartReconcilesAndPublishes(t *testing.T) {
	sender := &recordingSender{}
	c := newCenter("user1", &stubRemote{ids: []string{"ntf_n1"}}, stubCache{}, sender)
	defer c.stop()

	now := time.Now()
	c.ApplySnapshot(context.Background(), SourceGeneric, []Notification{
		testNotification(SourceGeneric, "n1", now),
		testNotification(SourceGeneric, "n2", now),
	})

	c.start(context.Background())

	waitFor(t, func() bool { return c.Badges().Notifications == 1 })

	if len(sender.byType(event.TypeBadgeUpdated)) == 0 {
		t.Fatal("reconciliation must publish a badge update")
	}
}

func TestCenter_ApplySnapshotBroadcastsNewEntries(t *testing.T) {
	sender := &recordingSender{}
	c := newCenter("user1", &stubRemote{}, stubCache{}, sender)
	defer c.stop()

	now := time.Now()
	c.ApplySnapshot(context.Background(), SourceAppointments, []Notification{
		testNotification(SourceAppointments, "a1", now),
	})

	waitFor(t, func() bool { return len(sender.byType(event.TypeNotificationReceived)) == 1 })

	// Reapplying the identical snapshot adds nothing.
	c.ApplySnapshot(context.Background(), SourceAppointments, []Notification{
		testNotification(SourceAppointments, "a1", now),
	})
	c.call(func() {})

	if got := len(sender.byType(event.TypeNotificationReceived)); got != 1 {
		t.Fatalf("unchanged snapshot must not rebroadcast, got %d received events", got)
	}
}

func TestCenter_ClickUnknownNotification(t *testing.T) {
	sender := &recordingSender{}
	c := newCenter("user1", &stubRemote{}, stubCache{}, sender)
	defer c.stop()

	if _, err := c.Click(context.Background(), "apt_missing"); !errors.Is(err, ErrUnknownNotification) {
		t.Fatalf("expected ErrUnknownNotification, got %v", err)
	}
}

func TestCenter_ClickMarksReadAndClosesPanel(t *testing.T) {
	sender := &recordingSender{}
	c := newCenter("user1", &stubRemote{}, stubCache{}, sender)
	defer c.stop()

	now := time.Now()
	c.ApplySnapshot(context.Background(), SourceAppointments, []Notification{
		testNotification(SourceAppointments, "a1", now),
	})
	c.start(context.Background())
	waitFor(t, func() bool { return c.Badges().Notifications == 1 })

	c.ToggleBell()
	result, err := c.Click(context.Background(), "apt_a1")
	if err != nil {
		t.Fatalf("click failed: %v", err)
	}
	if !result.WasUnread {
		t.Fatal("entry was unread before the click")
	}
	if c.PanelOpen() {
		t.Fatal("click-through must close the panel")
	}
	if got := c.Badges().Notifications; got != 0 {
		t.Fatalf("unread should drop to 0 after the click, got %d", got)
	}
	if len(sender.byType(event.TypeNotificationRead)) == 0 {
		t.Fatal("marking read must broadcast a read event")
	}
}

func TestCenter_MarkReadBeforeReconciliationSurvives(t *testing.T) {
	sender := &recordingSender{}
	c := newCenter("user1", &stubRemote{ids: []string{"apt_a1"}}, stubCache{}, sender)
	defer c.stop()

	now := time.Now()
	c.ApplySnapshot(context.Background(), SourceAppointments, []Notification{
		testNotification(SourceAppointments, "a1", now),
		testNotification(SourceAppointments, "a2", now),
	})

	// The click lands before the read-marker load has returned.
	if err := c.MarkRead(context.Background(), "apt_a2"); err != nil {
		t.Fatalf("mark-read failed: %v", err)
	}

	c.start(context.Background())
	waitFor(t, func() bool {
		for _, item := range c.List() {
			if item.ID == "apt_a1" {
				return item.Read
			}
		}
		return false
	})

	for _, item := range c.List() {
		if !item.Read {
			t.Fatalf("%s lost its read state across reconciliation", item.ID)
		}
	}
}

func TestCenter_StaleLiveCountsIgnored(t *testing.T) {
	sender := &recordingSender{}
	c := newCenter("user1", &stubRemote{}, stubCache{}, sender)
	defer c.stop()

	// Deliveries from concurrent snapshot callbacks can arrive out of order.
	c.SetLiveCounts(context.Background(), 2, LiveCounts{WalkInAttention: 1, OnlineAttention: 2})
	c.SetLiveCounts(context.Background(), 1, LiveCounts{WalkInAttention: 1})
	c.call(func() {})

	if got := c.Badges().Appointments; got != 3 {
		t.Fatalf("a stale live-count copy overwrote a newer one: appointments = %d", got)
	}
}

func TestCenter_MarkAllReadCoversVisibleOnly(t *testing.T) {
	sender := &recordingSender{}
	c := newCenter("user1", &stubRemote{}, stubCache{}, sender)
	defer c.stop()

	now := time.Now()
	c.ApplySnapshot(context.Background(), SourceGeneric, []Notification{
		testNotification(SourceGeneric, "n1", now),
		testNotification(SourceGeneric, "n2", now),
	})
	c.start(context.Background())
	waitFor(t, func() bool { return c.Badges().Notifications == 2 })

	if err := c.MarkAllRead(context.Background()); err != nil {
		t.Fatalf("mark-all failed: %v", err)
	}
	if got := c.Badges().Notifications; got != 0 {
		t.Fatalf("unread should be 0 after mark-all, got %d", got)
	}

	// A notification arriving afterwards is unread again.
	c.ApplySnapshot(context.Background(), SourceGeneric, []Notification{
		testNotification(SourceGeneric, "n1", now),
		testNotification(SourceGeneric, "n2", now),
		testNotification(SourceGeneric, "n3", now.Add(time.Minute)),
	})
	waitFor(t, func() bool { return c.Badges().Notifications == 1 })
}
