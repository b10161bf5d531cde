package notification_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/katatrina/dentcare-BE/internal/notification"
)

func reconciledMarkers(read ...string) *notification.ReadMarkers {
	markers := notification.NewReadMarkers(newFakeRemote(), &fakeCache{}, "user1")
	markers.Complete(context.Background(), read)
	return markers
}

func TestComputeCounts_PoliciesAreIndependent(t *testing.T) {
	live := notification.LiveCounts{WalkInAttention: 2, OnlineAttention: 3, Unpaid: 4}
	merged := []notification.Notification{
		makeNotification(notification.SourceGeneric, "n1", time.Minute),
		makeNotification(notification.SourceGeneric, "n2", 2*time.Minute),
	}

	counts := notification.ComputeCounts(live, merged, reconciledMarkers("ntf_n1"))

	if counts.Appointments != 5 {
		t.Fatalf("appointments must sum both intake channels, got %d", counts.Appointments)
	}
	if counts.Billing != 4 {
		t.Fatalf("billing must mirror the unpaid count, got %d", counts.Billing)
	}
	if counts.Notifications != 1 {
		t.Fatalf("notifications must count unread only, got %d", counts.Notifications)
	}
}

func TestComputeCounts_ReadStateDoesNotAffectLiveBadges(t *testing.T) {
	live := notification.LiveCounts{WalkInAttention: 1, OnlineAttention: 1, Unpaid: 2}
	merged := []notification.Notification{
		makeNotification(notification.SourceGeneric, "n1", time.Minute),
	}

	before := notification.ComputeCounts(live, merged, reconciledMarkers())
	after := notification.ComputeCounts(live, merged, reconciledMarkers("ntf_n1"))

	if before.Appointments != after.Appointments || before.Billing != after.Billing {
		t.Fatal("marking notifications read must not change appointment or billing badges")
	}
	if before.Notifications != 1 || after.Notifications != 0 {
		t.Fatalf("unread count wrong: before=%d after=%d", before.Notifications, after.Notifications)
	}
}

func TestComputeCounts_GatedUntilReconciled(t *testing.T) {
	merged := []notification.Notification{
		makeNotification(notification.SourceGeneric, "n1", time.Minute),
		makeNotification(notification.SourceGeneric, "n2", 2*time.Minute),
	}
	markers := notification.NewReadMarkers(newFakeRemote(), &fakeCache{}, "user1")

	counts := notification.ComputeCounts(notification.LiveCounts{Unpaid: 1}, merged, markers)

	if counts.Notifications != 0 {
		t.Fatalf("unread must report 0 before reconciliation, got %d", counts.Notifications)
	}
	if counts.Billing != 1 {
		t.Fatal("live badges are not subject to the reconciliation gate")
	}

	markers.Reconcile(context.Background())
	counts = notification.ComputeCounts(notification.LiveCounts{}, merged, markers)
	if counts.Notifications != 2 {
		t.Fatalf("after reconciliation both entries are unread, got %d", counts.Notifications)
	}
}

func TestNewBadgePayload_CarriesDisplayString(t *testing.T) {
	payload := notification.NewBadgePayload(notification.Counts{Appointments: 2, Notifications: 120})

	if payload.Notifications != 120 {
		t.Fatalf("the integer count must stay uncapped, got %d", payload.Notifications)
	}
	if payload.NotificationsDisplay != "99+" {
		t.Fatalf("the display string must be capped, got %q", payload.NotificationsDisplay)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(raw), `"notifications_display":"99+"`) {
		t.Fatalf("payload must carry the display field, got %s", raw)
	}
}

func TestFormatBadge_CapsDisplayOnly(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{99, "99"},
		{100, "99+"},
		{240, "99+"},
	}

	for _, tc := range cases {
		if got := notification.FormatBadge(tc.n, notification.DisplayCeiling); got != tc.want {
			t.Fatalf("FormatBadge(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
