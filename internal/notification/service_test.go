package notification

import (
	"context"
	"testing"
	"time"
)

func TestService_AttachReplaysCurrentState(t *testing.T) {
	sender := &recordingSender{}
	svc := NewService(nil, &stubRemote{}, stubCache{}, sender, 50)

	now := time.Now()
	svc.applyUpdate(context.Background(), SourceAppointments, []Notification{
		testNotification(SourceAppointments, "a1", now),
	}, func(live *LiveCounts) {
		live.WalkInAttention = 1
	})

	center, release := svc.Attach(context.Background(), "user1")
	defer release()

	waitFor(t, func() bool {
		counts := center.Badges()
		return counts.Appointments == 1
	})

	list := center.List()
	if len(list) != 1 || list[0].ID != "apt_a1" {
		t.Fatalf("attached center must see the replayed snapshot, got %v", list)
	}
}

func TestService_AttachIsRefcounted(t *testing.T) {
	sender := &recordingSender{}
	svc := NewService(nil, &stubRemote{}, stubCache{}, sender, 50)

	first, releaseFirst := svc.Attach(context.Background(), "user1")
	second, releaseSecond := svc.Attach(context.Background(), "user1")

	if first != second {
		t.Fatal("sessions of the same user must share one center")
	}

	releaseFirst()
	releaseFirst() // double release must not decrement twice

	third, releaseThird := svc.Attach(context.Background(), "user1")
	if third != first {
		t.Fatal("center must stay alive while a session holds it")
	}
	releaseThird()
	releaseSecond()

	fourth, releaseFourth := svc.Attach(context.Background(), "user1")
	defer releaseFourth()
	if fourth == first {
		t.Fatal("after the last release a fresh center is expected")
	}
}

func TestService_FanOutReachesAttachedCenters(t *testing.T) {
	sender := &recordingSender{}
	svc := NewService(nil, &stubRemote{}, stubCache{}, sender, 50)

	center, release := svc.Attach(context.Background(), "user1")
	defer release()

	now := time.Now()
	svc.applyUpdate(context.Background(), SourcePayments, []Notification{
		testNotification(SourcePayments, "p1", now),
	}, nil)
	svc.applyUpdate(context.Background(), "", nil, func(live *LiveCounts) {
		live.Unpaid = 3
	})

	waitFor(t, func() bool {
		counts := center.Badges()
		return counts.Billing == 3 && len(center.List()) == 1
	})
}
