package slots

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/pkg/metrics"
)

const (
	keyPrefix = "slots:"
	ttl       = 60 * time.Second
	cacheName = "occupied_slots"
)

type Logger interface {
	Warn(format string, v ...interface{})
}

// Cache is a best-effort read-through cache of a venue's occupied slots.
// Redis failures are logged and treated as misses; callers never see them.
type Cache struct {
	client  *redis.Client
	logger  Logger
	metrics *metrics.Metrics
}

// New builds the cache. metrics may be nil when the metrics endpoint is
// disabled.
func New(client *redis.Client, logger Logger, m *metrics.Metrics) *Cache {
	return &Cache{client: client, logger: logger, metrics: m}
}

func key(venueID uuid.UUID) string {
	return keyPrefix + venueID.String()
}

// Get returns the cached slots for the venue and whether the lookup hit.
func (c *Cache) Get(ctx context.Context, venueID uuid.UUID) ([]domain.Slot, bool) {
	payload, err := c.client.Get(ctx, key(venueID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("[Cache.Get] redis get failed for venue %s: %v", venueID, err)
		}
		c.miss()
		return nil, false
	}

	var slots []domain.Slot
	if err := json.Unmarshal(payload, &slots); err != nil {
		c.logger.Warn("[Cache.Get] corrupt payload for venue %s: %v", venueID, err)
		c.miss()
		return nil, false
	}

	c.hit()
	return slots, true
}

// Set stores the slots under the venue key with the cache TTL.
func (c *Cache) Set(ctx context.Context, venueID uuid.UUID, slots []domain.Slot) {
	payload, err := json.Marshal(slots)
	if err != nil {
		c.logger.Warn("[Cache.Set] marshal failed for venue %s: %v", venueID, err)
		return
	}
	if err := c.client.Set(ctx, key(venueID), payload, ttl).Err(); err != nil {
		c.logger.Warn("[Cache.Set] redis set failed for venue %s: %v", venueID, err)
	}
}

// Invalidate drops the venue's cached slots.
func (c *Cache) Invalidate(ctx context.Context, venueID uuid.UUID) {
	if err := c.client.Del(ctx, key(venueID)).Err(); err != nil {
		c.logger.Warn("[Cache.Invalidate] redis del failed for venue %s: %v", venueID, err)
	}
}

func (c *Cache) hit() {
	if c.metrics != nil {
		c.metrics.CacheHit(cacheName)
	}
}

func (c *Cache) miss() {
	if c.metrics != nil {
		c.metrics.CacheMiss(cacheName)
	}
}
