package notification_test

import (
	"testing"
	"time"

	"github.com/katatrina/dentcare-BE/internal/notification"
)

var mergerBase = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func makeNotification(source, docID string, offset time.Duration) notification.Notification {
	return notification.Notification{
		ID:        notification.NamespacedID(source, docID),
		SourceID:  docID,
		Source:    source,
		Kind:      notification.KindReminder,
		Timestamp: mergerBase.Add(offset),
	}
}

func TestApply_MergesSourcesNewestFirst(t *testing.T) {
	m := notification.NewMerger()

	m.Apply(notification.SourceAppointments, []notification.Notification{
		makeNotification(notification.SourceAppointments, "a1", 1*time.Minute),
		makeNotification(notification.SourceAppointments, "a2", 5*time.Minute),
	})
	m.Apply(notification.SourcePayments, []notification.Notification{
		makeNotification(notification.SourcePayments, "p1", 3*time.Minute),
	})

	got := m.List()
	if len(got) != 3 {
		t.Fatalf("expected 3 merged entries, got %d", len(got))
	}

	wantOrder := []string{"apt_a2", "pay_p1", "apt_a1"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestApply_ReplacesOnlyItsOwnSource(t *testing.T) {
	m := notification.NewMerger()

	m.Apply(notification.SourceAppointments, []notification.Notification{
		makeNotification(notification.SourceAppointments, "a1", time.Minute),
	})
	m.Apply(notification.SourcePayments, []notification.Notification{
		makeNotification(notification.SourcePayments, "p1", 2*time.Minute),
	})

	// New appointment snapshot without a1: a1 is gone, p1 survives.
	m.Apply(notification.SourceAppointments, []notification.Notification{
		makeNotification(notification.SourceAppointments, "a2", 3*time.Minute),
	})

	if _, ok := m.Get("apt_a1"); ok {
		t.Fatal("a1 should have been replaced by the new snapshot")
	}
	if _, ok := m.Get("pay_p1"); !ok {
		t.Fatal("p1 belongs to another source and must survive")
	}
	if _, ok := m.Get("apt_a2"); !ok {
		t.Fatal("a2 missing after snapshot")
	}
}

func TestApply_EmptySnapshotClearsSource(t *testing.T) {
	m := notification.NewMerger()

	m.Apply(notification.SourceAppointments, []notification.Notification{
		makeNotification(notification.SourceAppointments, "a1", time.Minute),
	})
	m.Apply(notification.SourcePayments, []notification.Notification{
		makeNotification(notification.SourcePayments, "p1", 2*time.Minute),
	})

	m.Apply(notification.SourceAppointments, nil)

	if m.Len() != 1 {
		t.Fatalf("expected only the payment entry, got %d entries", m.Len())
	}
	if _, ok := m.Get("pay_p1"); !ok {
		t.Fatal("clearing one source must not touch the others")
	}
}

func TestApply_IsIdempotent(t *testing.T) {
	m := notification.NewMerger()

	snapshot := []notification.Notification{
		makeNotification(notification.SourceAppointments, "a1", time.Minute),
		makeNotification(notification.SourceAppointments, "a2", 2*time.Minute),
	}

	m.Apply(notification.SourceAppointments, snapshot)
	first := m.List()

	m.Apply(notification.SourceAppointments, snapshot)
	second := m.List()

	if len(first) != len(second) {
		t.Fatalf("reapplying the same snapshot changed the length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("reapplying the same snapshot changed the order at %d", i)
		}
	}
}

func TestApply_DuplicateIDsKeepLastOccurrence(t *testing.T) {
	m := notification.NewMerger()

	older := makeNotification(notification.SourceGeneric, "n1", time.Minute)
	older.Message = "old"
	newer := makeNotification(notification.SourceGeneric, "n1", 2*time.Minute)
	newer.Message = "new"

	m.Apply(notification.SourceGeneric, []notification.Notification{older, newer})

	if m.Len() != 1 {
		t.Fatalf("expected 1 entry after dedup, got %d", m.Len())
	}
	got, _ := m.Get("ntf_n1")
	if got.Message != "new" {
		t.Fatalf("expected last occurrence to win, got message %q", got.Message)
	}
}

func TestApply_EqualTimestampsBreakTiesByID(t *testing.T) {
	m := notification.NewMerger()

	m.Apply(notification.SourceGeneric, []notification.Notification{
		makeNotification(notification.SourceGeneric, "b", time.Minute),
		makeNotification(notification.SourceGeneric, "a", time.Minute),
	})

	got := m.List()
	if got[0].ID != "ntf_a" || got[1].ID != "ntf_b" {
		t.Fatalf("equal timestamps must order by id, got %s, %s", got[0].ID, got[1].ID)
	}
}
