package notification

import (
	"context"
	"fmt"
	"sync"

	"cloud.google.com/go/firestore"
	"github.com/katatrina/dentcare-BE/internal/event"
	"github.com/katatrina/dentcare-BE/internal/firedb"
	"github.com/rs/zerolog/log"
)

// internal source keys for the subscriptions that only feed live counts.
const sourceUnpaid = "payUnpaid"

// Service owns the shared snapshot subscriptions (the watched collections
// are clinic-wide, one listener set per process) and fans every update out
// to per-user centers. Centers are created on demand and refcounted by the
// sessions attached to them, so no center outlives its last session.
type Service struct {
	store    *firedb.Store
	remote   RemoteStore
	local    LocalCache
	sender   event.EventSender
	pageSize int

	mu        sync.Mutex
	centers   map[string]*centerEntry
	snapshots map[string][]Notification
	live      LiveCounts
	liveSeq   uint64
	unsubs    []firedb.Unsubscribe
	started   bool
}

type centerEntry struct {
	center *Center
	refs   int
}

func NewService(store *firedb.Store, remote RemoteStore, local LocalCache, sender event.EventSender, pageSize int) *Service {
	return &Service{
		store:     store,
		remote:    remote,
		local:     local,
		sender:    sender,
		pageSize:  pageSize,
		centers:   make(map[string]*centerEntry),
		snapshots: make(map[string][]Notification),
	}
}

// Start acquires the snapshot subscriptions. Each callback delivers the
// full current result set of its query; a subscription error freezes that
// source's contribution at its last-known value instead of clearing it,
// since clearing would cause spurious badge decreases.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return fmt.Errorf("notification service already started")
	}
	s.started = true
	s.mu.Unlock()

	client := s.store.Client()

	subscribe := func(name string, query firestore.Query, onUpdate func(docs []*firestore.DocumentSnapshot)) {
		unsub := firedb.SubscribeQuery(ctx, query, onUpdate, func(err error) {
			log.Error().Err(err).Str("source", name).Msg("snapshot source failed; keeping last-known contribution")
		})
		s.mu.Lock()
		s.unsubs = append(s.unsubs, unsub)
		s.mu.Unlock()
	}

	subscribe(SourceAppointments, appointmentsQuery(client), func(docs []*firestore.DocumentSnapshot) {
		s.applyUpdate(ctx, SourceAppointments, appointmentsFromDocs(SourceAppointments, docs), func(live *LiveCounts) {
			live.WalkInAttention = len(docs)
		})
	})

	subscribe(SourceOnlineRequests, onlineRequestsQuery(client), func(docs []*firestore.DocumentSnapshot) {
		s.applyUpdate(ctx, SourceOnlineRequests, onlineRequestsFromDocs(docs), func(live *LiveCounts) {
			live.OnlineAttention = len(docs)
		})
	})

	subscribe(sourceUnpaid, unpaidPaymentsQuery(client), func(docs []*firestore.DocumentSnapshot) {
		s.applyUpdate(ctx, "", nil, func(live *LiveCounts) {
			live.Unpaid = len(docs)
		})
	})

	subscribe(SourcePayments, recentPaymentsQuery(client, s.pageSize), func(docs []*firestore.DocumentSnapshot) {
		s.applyUpdate(ctx, SourcePayments, paymentsFromDocs(docs), nil)
	})

	subscribe(SourceGeneric, genericQuery(client, s.pageSize), func(docs []*firestore.DocumentSnapshot) {
		s.applyUpdate(ctx, SourceGeneric, genericFromDocs(docs), nil)
	})

	log.Info().Msg("notification snapshot sources subscribed")
	return nil
}

// applyUpdate caches the converted snapshot, updates live counts and fans
// both out to every active center. The live counts carry a sequence number
// taken under the lock: fan-out happens outside it, so deliveries from
// concurrent callbacks can cross, and centers use the sequence to discard
// the stale copy.
func (s *Service) applyUpdate(ctx context.Context, source string, items []Notification, updateLive func(*LiveCounts)) {
	s.mu.Lock()
	if source != "" {
		s.snapshots[source] = items
	}
	if updateLive != nil {
		updateLive(&s.live)
		s.liveSeq++
	}
	live, seq := s.live, s.liveSeq
	centers := make([]*Center, 0, len(s.centers))
	for _, entry := range s.centers {
		centers = append(centers, entry.center)
	}
	s.mu.Unlock()

	for _, center := range centers {
		if source != "" {
			center.ApplySnapshot(ctx, source, items)
		}
		if updateLive != nil {
			center.SetLiveCounts(ctx, seq, live)
		}
	}
}

// Attach returns the center for a user, creating it when absent, and a
// release handle. The caller must release on every exit path; the center
// shuts down when its last session detaches.
func (s *Service) Attach(ctx context.Context, userID string) (*Center, func()) {
	s.mu.Lock()
	entry, ok := s.centers[userID]
	if !ok {
		center := newCenter(userID, s.remote, s.local, s.sender)

		// Replay the cached snapshots so a fresh center starts from the
		// current state instead of waiting for the next source change.
		for source, items := range s.snapshots {
			center.ApplySnapshot(ctx, source, items)
		}
		center.SetLiveCounts(ctx, s.liveSeq, s.live)
		center.start(ctx)

		entry = &centerEntry{center: center}
		s.centers[userID] = entry
	}
	entry.refs++
	s.mu.Unlock()

	var once sync.Once
	release := func() {
		once.Do(func() {
			s.mu.Lock()
			entry.refs--
			if entry.refs <= 0 {
				delete(s.centers, userID)
				entry.center.stop()
			}
			s.mu.Unlock()
		})
	}

	return entry.center, release
}

// Stop releases all subscriptions and shuts every center down.
func (s *Service) Stop() {
	s.mu.Lock()
	unsubs := s.unsubs
	s.unsubs = nil
	centers := s.centers
	s.centers = make(map[string]*centerEntry)
	s.started = false
	s.mu.Unlock()

	for _, unsub := range unsubs {
		unsub()
	}
	for _, entry := range centers {
		entry.center.stop()
	}
}
