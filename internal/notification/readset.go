package notification

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// ErrNoMarkers is returned by a RemoteStore when the user has no read-marker
// document yet. This is distinct from a load failure: an absent document
// means "nothing marked read", a failed load means "unknown" and must fall
// back to the local cache.
var ErrNoMarkers = errors.New("no read markers for user")

// RemoteStore is the persisted per-user read-marker document.
type RemoteStore interface {
	Load(ctx context.Context, userID string) ([]string, error)
	Save(ctx context.Context, userID string, ids []string) error
}

// LocalCache mirrors the read-marker set for availability when the remote
// store is unreachable or slow.
type LocalCache interface {
	Load(ctx context.Context, userID string) ([]string, bool)
	Save(ctx context.Context, userID string, ids []string)
}

// maxPersistedMarkers caps the persisted read set at the most recent ids.
// Ids older than that have left every bounded snapshot, so their membership
// can no longer be observed; the cap bounds document growth.
const maxPersistedMarkers = 500

// ReadMarkers reconciles two sources of truth for "has this user seen
// notification X": the remote per-user document and the local cache.
// In-memory mutation is synchronous and owned by the center's goroutine;
// persistence runs asynchronously on a snapshot copy and is optimistic —
// a failed write is logged, never rolled back.
type ReadMarkers struct {
	remote RemoteStore
	local  LocalCache
	userID string

	ids        map[string]struct{}
	order      []string
	pending    []string
	reconciled bool
}

func NewReadMarkers(remote RemoteStore, local LocalCache, userID string) *ReadMarkers {
	return &ReadMarkers{
		remote: remote,
		local:  local,
		userID: userID,
		ids:    make(map[string]struct{}),
	}
}

// Resolve performs the IO half of reconciliation: remote when present,
// local cache when the remote document is absent or the load fails. It
// mutates nothing, so a center can run it off its owning goroutine and
// apply the result with Complete.
func Resolve(ctx context.Context, remote RemoteStore, local LocalCache, userID string) []string {
	ids, err := remote.Load(ctx, userID)
	switch {
	case err == nil:
		local.Save(ctx, userID, ids)
		return ids
	case errors.Is(err, ErrNoMarkers):
		cached, _ := local.Load(ctx, userID)
		return cached
	default:
		// Remote unreachable: degrade to the cache, never to "nothing read".
		log.Warn().Err(err).Str("userID", userID).Msg("read-marker load failed, using local cache")
		cached, _ := local.Load(ctx, userID)
		return cached
	}
}

// Complete adopts the resolved read set and lifts the gate on unread
// computation. Until this has run once, badges must report 0 unread,
// otherwise they would flash "all unread" before the read set arrives.
// Marks taken while unreconciled are re-applied on top of the resolved
// set and persisted now, as a union.
func (r *ReadMarkers) Complete(ctx context.Context, ids []string) {
	pending := r.pending
	r.pending = nil

	r.adopt(ids)
	r.reconciled = true

	added := false
	for _, id := range pending {
		if _, ok := r.ids[id]; ok {
			continue
		}
		r.ids[id] = struct{}{}
		r.order = append(r.order, id)
		added = true
	}
	if added {
		r.persist(ctx)
	}
}

// Reconcile is the synchronous form of Resolve + Complete.
func (r *ReadMarkers) Reconcile(ctx context.Context) {
	r.Complete(ctx, Resolve(ctx, r.remote, r.local, r.userID))
}

func (r *ReadMarkers) adopt(ids []string) {
	r.ids = make(map[string]struct{}, len(ids))
	r.order = r.order[:0]
	for _, id := range ids {
		if _, ok := r.ids[id]; ok {
			continue
		}
		r.ids[id] = struct{}{}
		r.order = append(r.order, id)
	}
}

// Reconciled reports whether the initial reconciliation has completed.
func (r *ReadMarkers) Reconciled() bool {
	return r.reconciled
}

// Has reports whether the user has acknowledged the given notification id.
func (r *ReadMarkers) Has(id string) bool {
	_, ok := r.ids[id]
	return ok
}

// MarkRead adds a single id to the read set and persists the updated set.
// Before reconciliation the mark is held in memory only: persisting at that
// point would overwrite the remote document with a set missing everything
// the user has already read. Complete folds held marks back in.
func (r *ReadMarkers) MarkRead(ctx context.Context, id string) {
	if _, ok := r.ids[id]; ok {
		return
	}
	r.ids[id] = struct{}{}
	r.order = append(r.order, id)

	if !r.reconciled {
		r.pending = append(r.pending, id)
		return
	}
	r.persist(ctx)
}

// MarkAll marks exactly the currently visible ids as read. Notifications
// arriving afterwards are unread again. Like MarkRead, marks taken before
// reconciliation are held until the resolved set arrives.
func (r *ReadMarkers) MarkAll(ctx context.Context, visible []string) {
	changed := false
	for _, id := range visible {
		if _, ok := r.ids[id]; ok {
			continue
		}
		r.ids[id] = struct{}{}
		r.order = append(r.order, id)
		if !r.reconciled {
			r.pending = append(r.pending, id)
		}
		changed = true
	}
	if changed && r.reconciled {
		r.persist(ctx)
	}
}

// persist writes the capped read set to the remote store and the local
// cache on a copy, off the owning goroutine.
func (r *ReadMarkers) persist(ctx context.Context) {
	if len(r.order) > maxPersistedMarkers {
		r.order = append(r.order[:0], r.order[len(r.order)-maxPersistedMarkers:]...)
		ids := make(map[string]struct{}, len(r.order))
		for _, id := range r.order {
			ids[id] = struct{}{}
		}
		r.ids = ids
	}

	snapshot := make([]string, len(r.order))
	copy(snapshot, r.order)

	// No cancellation on persistence: a slow write delays only the remote
	// "read" confirmation, nothing else.
	ctx = context.WithoutCancel(ctx)

	go func() {
		if err := r.remote.Save(ctx, r.userID, snapshot); err != nil {
			log.Error().Err(err).Str("userID", r.userID).Msg("failed to persist read markers")
		}
		r.local.Save(ctx, r.userID, snapshot)
	}()
}
