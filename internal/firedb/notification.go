package firedb

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
)

const (
	notificationsCollection = "notifications"
	readMarkersCollection   = "readMarkers"
)

type CreateNotificationParams struct {
	Title         string
	Message       string
	Type          string
	ReferenceID   string
	RecipientRole string
}

func (s *Store) CreateNotification(ctx context.Context, arg CreateNotificationParams) error {
	_, _, err := s.client.Collection(notificationsCollection).Add(ctx, map[string]interface{}{
		"title":         arg.Title,
		"message":       arg.Message,
		"type":          arg.Type,
		"referenceID":   arg.ReferenceID,
		"recipientRole": arg.RecipientRole,
		"createdAt":     time.Now(),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create notification")
		return err
	}

	return nil
}

// GetReadMarkers loads the per-user read-marker document. Returns
// ErrDocumentNotFound when the user has never marked anything read.
func (s *Store) GetReadMarkers(ctx context.Context, userID string) ([]string, error) {
	doc, err := s.client.Collection(readMarkersCollection).Doc(userID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	var marker struct {
		ReadIDs []string `firestore:"readIDs"`
	}
	if err = doc.DataTo(&marker); err != nil {
		return nil, fmt.Errorf("failed to decode read markers for %s: %w", userID, err)
	}

	return marker.ReadIDs, nil
}

// SetReadMarkers persists the full read set for a user. The write uses merge
// semantics so unrelated fields of the per-user document are preserved.
func (s *Store) SetReadMarkers(ctx context.Context, userID string, ids []string) error {
	_, err := s.client.Collection(readMarkersCollection).Doc(userID).Set(ctx, map[string]interface{}{
		"readIDs":   ids,
		"updatedAt": time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to persist read markers: %w", err)
	}

	return nil
}
