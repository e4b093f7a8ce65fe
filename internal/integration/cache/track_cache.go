// Package cache provides read-through caches in front of the persistence layer.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/musicplayer/backend/internal/application/adapter"
	"github.com/musicplayer/backend/internal/domain/entity"
)

const (
	trackKeyPrefix = "track:"
	catalogKey     = "tracks:all"
)

// cachedTrack is the JSON form of a catalog track stored in redis.
type cachedTrack struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Artist string    `json:"artist"`
	URL    string    `json:"url"`
	Cover  string    `json:"cover"`
}

// trackCache implements adapter.TrackRepository on top of another TrackRepository.
// Redis failures are logged and served from the underlying repository.
type trackCache struct {
	next   adapter.TrackRepository
	client *redis.Client
	ttl    time.Duration
}

// NewTrackCache wraps next with a redis read-through cache.
func NewTrackCache(next adapter.TrackRepository, client *redis.Client, ttl time.Duration) adapter.TrackRepository {
	return &trackCache{
		next:   next,
		client: client,
		ttl:    ttl,
	}
}

// FindByID retrieves a track from redis, loading it from the store on a miss.
func (c *trackCache) FindByID(ctx context.Context, id uuid.UUID) (*entity.Track, error) {
	key := trackKeyPrefix + id.String()

	var cached cachedTrack
	if c.get(ctx, key, &cached) {
		return cached.toEntity(), nil
	}

	track, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.set(ctx, key, fromEntity(track))
	return track, nil
}

// List retrieves the catalog from redis, loading it from the store on a miss.
func (c *trackCache) List(ctx context.Context) ([]*entity.Track, error) {
	var cached []cachedTrack
	if c.get(ctx, catalogKey, &cached) {
		tracks := make([]*entity.Track, len(cached))
		for i := range cached {
			tracks[i] = cached[i].toEntity()
		}
		return tracks, nil
	}

	tracks, err := c.next.List(ctx)
	if err != nil {
		return nil, err
	}

	toCache := make([]cachedTrack, len(tracks))
	for i, track := range tracks {
		toCache[i] = fromEntity(track)
	}
	c.set(ctx, catalogKey, toCache)

	return tracks, nil
}

func (c *trackCache) get(ctx context.Context, key string, dest any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "Track cache read failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		slog.WarnContext(ctx, "Discarding undecodable track cache entry", "key", key, "error", err)
		return false
	}
	return true
}

func (c *trackCache) set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.WarnContext(ctx, "Failed to encode track cache entry", "key", key, "error", err)
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "Track cache write failed", "key", key, "error", err)
	}
}

// Flush removes every cached catalog entry. Catalog seeding calls it after writes.
func Flush(ctx context.Context, client *redis.Client) error {
	keys := []string{catalogKey}

	iter := client.Scan(ctx, 0, trackKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	return client.Del(ctx, keys...).Err()
}

func fromEntity(track *entity.Track) cachedTrack {
	return cachedTrack{
		ID:     track.ID,
		Title:  track.Title,
		Artist: track.Artist,
		URL:    track.URL,
		Cover:  track.Cover,
	}
}

func (t cachedTrack) toEntity() *entity.Track {
	return &entity.Track{
		ID:     t.ID,
		Title:  t.Title,
		Artist: t.Artist,
		URL:    t.URL,
		Cover:  t.Cover,
	}
}
