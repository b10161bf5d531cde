package firedb

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrDocumentNotFound is returned when a requested document does not exist.
var ErrDocumentNotFound = errors.New("document not found")

// Store wraps the Firestore client and exposes the collections used by the
// application: appointments, onlineRequests, payments, patients, services,
// users, notifications and readMarkers.
type Store struct {
	client *firestore.Client
}

func NewStore(ctx context.Context, firebaseApp *firebase.App) (*Store, error) {
	client, err := firebaseApp.Firestore(ctx)
	if err != nil {
		return nil, err
	}

	return &Store{client: client}, nil
}

// Client exposes the underlying Firestore client for query construction.
func (s *Store) Client() *firestore.Client {
	return s.client
}

// Close releases the underlying Firestore client.
func (s *Store) Close() error {
	return s.client.Close()
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// Unsubscribe releases a live query subscription. Safe to call more than once.
type Unsubscribe func()

// SubscribeQuery attaches a snapshot listener to a query. onUpdate receives
// the full current result set on every change, never a diff. The listener
// stops when the returned Unsubscribe is called or the context is cancelled.
// A listener error is reported once through onError and freezes the
// subscription; the caller keeps whatever state it derived from the last
// successful snapshot.
func SubscribeQuery(
	ctx context.Context,
	query firestore.Query,
	onUpdate func(docs []*firestore.DocumentSnapshot),
	onError func(err error),
) Unsubscribe {
	ctx, cancel := context.WithCancel(ctx)

	go func() {
		it := query.Snapshots(ctx)
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err != nil {
				if status.Code(err) == codes.Canceled {
					return
				}
				log.Error().Err(err).Msg("snapshot listener failed")
				onError(err)
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				log.Error().Err(err).Msg("failed to read snapshot documents")
				onError(err)
				return
			}

			onUpdate(docs)
		}
	}()

	return Unsubscribe(cancel)
}
