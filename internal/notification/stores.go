package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/katatrina/dentcare-BE/internal/firedb"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// FirestoreMarkerStore persists read markers in the per-user readMarkers
// document, using merge writes so unrelated fields survive.
type FirestoreMarkerStore struct {
	store *firedb.Store
}

func NewFirestoreMarkerStore(store *firedb.Store) *FirestoreMarkerStore {
	return &FirestoreMarkerStore{store: store}
}

func (s *FirestoreMarkerStore) Load(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.store.GetReadMarkers(ctx, userID)
	if err != nil {
		if errors.Is(err, firedb.ErrDocumentNotFound) {
			return nil, ErrNoMarkers
		}
		return nil, err
	}
	return ids, nil
}

func (s *FirestoreMarkerStore) Save(ctx context.Context, userID string, ids []string) error {
	return s.store.SetReadMarkers(ctx, userID, ids)
}

const markerCacheTTL = 30 * 24 * time.Hour

// RedisMarkerCache is the local mirror of the read-marker set.
type RedisMarkerCache struct {
	client *redis.Client
}

func NewRedisMarkerCache(client *redis.Client) *RedisMarkerCache {
	return &RedisMarkerCache{client: client}
}

func markerCacheKey(userID string) string {
	return fmt.Sprintf("readmarkers:%s", userID)
}

func (c *RedisMarkerCache) Load(ctx context.Context, userID string) ([]string, bool) {
	raw, err := c.client.Get(ctx, markerCacheKey(userID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("userID", userID).Msg("failed to read marker cache")
		}
		return nil, false
	}

	var ids []string
	if err = json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Warn().Err(err).Str("userID", userID).Msg("corrupt marker cache entry")
		return nil, false
	}

	return ids, true
}

func (c *RedisMarkerCache) Save(ctx context.Context, userID string, ids []string) {
	raw, err := json.Marshal(ids)
	if err != nil {
		return
	}

	if err = c.client.Set(ctx, markerCacheKey(userID), raw, markerCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Str("userID", userID).Msg("failed to write marker cache")
	}
}
