package notification_test

import (
	"context"
	"testing"
	"time"

	"github.com/katatrina/dentcare-BE/internal/notification"
)

func TestPanel_BellClickToggles(t *testing.T) {
	var panel notification.Panel

	if panel.IsOpen() {
		t.Fatal("panel must start closed")
	}
	if open := panel.HandleBellClick(); !open {
		t.Fatal("first bell click must open the panel")
	}
	if open := panel.HandleBellClick(); open {
		t.Fatal("second bell click must close the panel")
	}
}

func TestPanel_OutsideClickClosesOnlyWhenOpen(t *testing.T) {
	var panel notification.Panel

	panel.HandleOutsideClick()
	if panel.IsOpen() {
		t.Fatal("outside click on a closed panel stays closed")
	}

	panel.HandleBellClick()
	panel.HandleOutsideClick()
	if panel.IsOpen() {
		t.Fatal("outside click must close an open panel")
	}
}

func TestPanel_ViewAllCloses(t *testing.T) {
	var panel notification.Panel
	panel.HandleBellClick()

	panel.HandleViewAll()
	if panel.IsOpen() {
		t.Fatal("view-all navigation must close the panel")
	}
}

func TestClickItem_UnreadMarksReadAndCloses(t *testing.T) {
	var panel notification.Panel
	panel.HandleBellClick()

	markers := reconciledMarkers()
	n := makeNotification(notification.SourceAppointments, "a1", time.Minute)

	result := panel.ClickItem(context.Background(), n, markers)

	if !result.WasUnread {
		t.Fatal("item was unread before the click")
	}
	if result.SourceID != "a1" || result.Kind != n.Kind {
		t.Fatalf("click result must carry the navigation reference, got %+v", result)
	}
	if !markers.Has(n.ID) {
		t.Fatal("clicking an unread item must mark it read")
	}
	if panel.IsOpen() {
		t.Fatal("click-through must close the panel")
	}
}

func TestClickItem_ReadItemLeavesMarkersUntouched(t *testing.T) {
	var panel notification.Panel
	panel.HandleBellClick()

	remote := newFakeRemote()
	markers := notification.NewReadMarkers(remote, &fakeCache{}, "user1")
	markers.Complete(context.Background(), []string{"apt_a1"})

	n := makeNotification(notification.SourceAppointments, "a1", time.Minute)
	result := panel.ClickItem(context.Background(), n, markers)

	if result.WasUnread {
		t.Fatal("item was already read")
	}
	select {
	case <-remote.savedCh:
		t.Fatal("clicking a read item must not write markers")
	case <-time.After(100 * time.Millisecond):
	}
	if panel.IsOpen() {
		t.Fatal("click-through must close the panel either way")
	}
}
