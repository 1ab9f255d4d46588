package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aishwaryaDel/tesa-ai-template/internal/events"
	"github.com/aishwaryaDel/tesa-ai-template/internal/usecases/domain"
)

const (
	recordKeyPrefix = "usecase:record:" // JSON snapshot of a record: usecase:record:{id}
	defaultTTL      = 5 * time.Minute
)

// UseCaseCache keeps TTL'd JSON snapshots of single records in Redis.
// Every failure degrades to a miss; the cache never fails a read path.
type UseCaseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a cache over an existing Redis client. A zero ttl falls back to
// the default.
func New(client *redis.Client, ttl time.Duration) *UseCaseCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &UseCaseCache{client: client, ttl: ttl}
}

// Get returns the cached record and whether it was present.
func (c *UseCaseCache) Get(ctx context.Context, id string) (*domain.UseCase, bool) {
	data, err := c.client.Get(ctx, recordKey(id)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("[cache] get failed id=%s err=%v", id, err)
		return nil, false
	}

	var uc domain.UseCase
	if err := json.Unmarshal([]byte(data), &uc); err != nil {
		log.Printf("[cache] decode failed id=%s err=%v", id, err)
		return nil, false
	}
	return &uc, true
}

// Set stores a snapshot of the record under its id.
func (c *UseCaseCache) Set(ctx context.Context, uc *domain.UseCase) {
	data, err := json.Marshal(uc)
	if err != nil {
		log.Printf("[cache] encode failed id=%s err=%v", uc.ID, err)
		return
	}
	if err := c.client.Set(ctx, recordKey(uc.ID), data, c.ttl).Err(); err != nil {
		log.Printf("[cache] set failed id=%s err=%v", uc.ID, err)
	}
}

// Invalidate drops the snapshot for an id.
func (c *UseCaseCache) Invalidate(ctx context.Context, id string) {
	if err := c.client.Del(ctx, recordKey(id)).Err(); err != nil {
		log.Printf("[cache] invalidate failed id=%s err=%v", id, err)
	}
}

// RegisterInvalidation subscribes the cache to record mutations so stale
// snapshots are dropped as soon as the change is announced.
func (c *UseCaseCache) RegisterInvalidation(bus *events.Bus) {
	drop := func(ctx context.Context, evt events.Event) error {
		id := recordID(evt.Data)
		if id == "" {
			return nil
		}
		return c.client.Del(ctx, recordKey(id)).Err()
	}

	bus.Subscribe(domain.EventUseCaseUpdated, drop)
	bus.Subscribe(domain.EventUseCaseDeleted, drop)
}

func recordKey(id string) string {
	return recordKeyPrefix + id
}

func recordID(data any) string {
	m, ok := data.(map[string]any)
	if !ok {
		return ""
	}
	id, _ := m["id"].(string)
	return id
}
