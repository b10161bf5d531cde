package notification_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/katatrina/dentcare-BE/internal/notification"
)

type fakeRemote struct {
	mu      sync.Mutex
	ids     []string
	loadErr error
	saveErr error
	saved   [][]string
	savedCh chan struct{}
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{savedCh: make(chan struct{}, 16)}
}

func (r *fakeRemote) Load(ctx context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.ids, nil
}

func (r *fakeRemote) Save(ctx context.Context, userID string, ids []string) error {
	r.mu.Lock()
	r.saved = append(r.saved, ids)
	err := r.saveErr
	r.mu.Unlock()
	r.savedCh <- struct{}{}
	return err
}

func (r *fakeRemote) lastSaved(t *testing.T) []string {
	t.Helper()
	select {
	case <-r.savedCh:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for remote save")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saved[len(r.saved)-1]
}

type fakeCache struct {
	mu  sync.Mutex
	ids []string
	ok  bool
}

func (c *fakeCache) Load(ctx context.Context, userID string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ids, c.ok
}

func (c *fakeCache) Save(ctx context.Context, userID string, ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids = ids
	c.ok = true
}

func TestResolve_RemotePresentMirrorsToCache(t *testing.T) {
	remote := newFakeRemote()
	remote.ids = []string{"apt_1", "pay_2"}
	cache := &fakeCache{}

	got := notification.Resolve(context.Background(), remote, cache, "user1")

	if len(got) != 2 {
		t.Fatalf("expected remote ids, got %v", got)
	}
	if !cache.ok || len(cache.ids) != 2 {
		t.Fatal("remote result was not mirrored to the local cache")
	}
}

func TestResolve_RemoteAbsentFallsBackToCache(t *testing.T) {
	remote := newFakeRemote()
	remote.loadErr = notification.ErrNoMarkers
	cache := &fakeCache{ids: []string{"apt_1"}, ok: true}

	got := notification.Resolve(context.Background(), remote, cache, "user1")

	if len(got) != 1 || got[0] != "apt_1" {
		t.Fatalf("expected cached ids on absent remote document, got %v", got)
	}
}

func TestResolve_RemoteFailureFallsBackToCache(t *testing.T) {
	remote := newFakeRemote()
	remote.loadErr = errors.New("deadline exceeded")
	cache := &fakeCache{ids: []string{"apt_1", "req_2"}, ok: true}

	got := notification.Resolve(context.Background(), remote, cache, "user1")

	if len(got) != 2 {
		t.Fatalf("remote failure must degrade to the cache, got %v", got)
	}
}

func TestReadMarkers_UnreconciledHasNothing(t *testing.T) {
	markers := notification.NewReadMarkers(newFakeRemote(), &fakeCache{}, "user1")

	if markers.Reconciled() {
		t.Fatal("markers must start unreconciled")
	}
	if markers.Has("apt_1") {
		t.Fatal("nothing should read as marked before reconciliation")
	}
}

func TestMarkRead_PersistsToRemoteAndCache(t *testing.T) {
	remote := newFakeRemote()
	cache := &fakeCache{}
	markers := notification.NewReadMarkers(remote, cache, "user1")
	markers.Complete(context.Background(), nil)

	markers.MarkRead(context.Background(), "apt_1")

	if !markers.Has("apt_1") {
		t.Fatal("MarkRead must take effect locally at once")
	}

	saved := remote.lastSaved(t)
	if len(saved) != 1 || saved[0] != "apt_1" {
		t.Fatalf("unexpected persisted set: %v", saved)
	}
}

func TestMarkRead_RemoteFailureKeepsLocalState(t *testing.T) {
	remote := newFakeRemote()
	remote.saveErr = errors.New("unavailable")
	cache := &fakeCache{}
	markers := notification.NewReadMarkers(remote, cache, "user1")
	markers.Complete(context.Background(), nil)

	markers.MarkRead(context.Background(), "apt_1")
	remote.lastSaved(t)

	// Optimistic: a failed remote write never rolls back the local mark.
	if !markers.Has("apt_1") {
		t.Fatal("failed persistence must not roll back the in-memory mark")
	}
	cache.mu.Lock()
	defer cache.mu.Unlock()
	if !cache.ok {
		t.Fatal("local cache must still be updated when the remote write fails")
	}
}

func TestMarkAll_CoversOnlyVisibleIDs(t *testing.T) {
	remote := newFakeRemote()
	markers := notification.NewReadMarkers(remote, &fakeCache{}, "user1")
	markers.Complete(context.Background(), []string{"apt_old"})

	markers.MarkAll(context.Background(), []string{"apt_1", "pay_2"})
	remote.lastSaved(t)

	for _, id := range []string{"apt_old", "apt_1", "pay_2"} {
		if !markers.Has(id) {
			t.Fatalf("%s should be marked read", id)
		}
	}
	if markers.Has("ntf_later") {
		t.Fatal("ids outside the visible set must stay unread")
	}
}

func TestMarkAll_NoNewIDsSkipsPersistence(t *testing.T) {
	remote := newFakeRemote()
	markers := notification.NewReadMarkers(remote, &fakeCache{}, "user1")
	markers.Complete(context.Background(), []string{"apt_1"})

	markers.MarkAll(context.Background(), []string{"apt_1"})

	select {
	case <-remote.savedCh:
		t.Fatal("marking already-read ids must not trigger a write")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestMarkRead_BeforeReconciliationDefersPersistence(t *testing.T) {
	remote := newFakeRemote()
	remote.ids = []string{"apt_a", "pay_b"}
	cache := &fakeCache{}
	markers := notification.NewReadMarkers(remote, cache, "user1")

	// A click lands before the remote load has returned.
	markers.MarkRead(context.Background(), "ntf_c")

	if !markers.Has("ntf_c") {
		t.Fatal("the mark must take effect locally at once")
	}
	select {
	case <-remote.savedCh:
		t.Fatal("nothing may be persisted before the first reconciliation")
	case <-time.After(100 * time.Millisecond):
	}

	markers.Complete(context.Background(),
		notification.Resolve(context.Background(), remote, cache, "user1"))

	saved := remote.lastSaved(t)
	want := map[string]bool{"apt_a": true, "pay_b": true, "ntf_c": true}
	if len(saved) != len(want) {
		t.Fatalf("resolved set and held mark must persist as a union, got %v", saved)
	}
	for _, id := range saved {
		if !want[id] {
			t.Fatalf("unexpected id %s in persisted set %v", id, saved)
		}
	}
	for id := range want {
		if !markers.Has(id) {
			t.Fatalf("%s must still read as marked after reconciliation", id)
		}
	}
}

func TestMarkAll_BeforeReconciliationDefersPersistence(t *testing.T) {
	remote := newFakeRemote()
	remote.ids = []string{"apt_a"}
	markers := notification.NewReadMarkers(remote, &fakeCache{}, "user1")

	markers.MarkAll(context.Background(), []string{"ntf_b", "ntf_c"})

	select {
	case <-remote.savedCh:
		t.Fatal("nothing may be persisted before the first reconciliation")
	case <-time.After(100 * time.Millisecond):
	}

	markers.Reconcile(context.Background())

	saved := remote.lastSaved(t)
	if len(saved) != 3 {
		t.Fatalf("expected the union of resolved and held ids, got %v", saved)
	}
}

func TestPersist_CapsAtMostRecentIDs(t *testing.T) {
	remote := newFakeRemote()
	markers := notification.NewReadMarkers(remote, &fakeCache{}, "user1")
	markers.Complete(context.Background(), nil)

	visible := make([]string, 600)
	for i := range visible {
		visible[i] = fmt.Sprintf("ntf_%04d", i)
	}
	markers.MarkAll(context.Background(), visible)

	saved := remote.lastSaved(t)
	if len(saved) != 500 {
		t.Fatalf("expected the persisted set capped at 500, got %d", len(saved))
	}
	if saved[0] != "ntf_0100" || saved[len(saved)-1] != "ntf_0599" {
		t.Fatalf("cap must keep the most recent ids, got %s..%s", saved[0], saved[len(saved)-1])
	}
}
