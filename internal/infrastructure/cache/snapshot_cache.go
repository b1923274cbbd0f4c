package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/rgsalon/salonpos-api/internal/domain/entity"
)

// SnapshotCache keeps the last successfully read order list in Redis so the
// read path can fall back to it when the database is unavailable. Stale data
// is acceptable here; losing the POS screen during an outage is not.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

const ordersSnapshotKey = "salonpos:orders:snapshot"

func NewSnapshotCache(addr, password string, db int, ttl time.Duration) *SnapshotCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &SnapshotCache{client: client, ttl: ttl}
}

func (c *SnapshotCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *SnapshotCache) Close() error {
	return c.client.Close()
}

// StoreOrders overwrites the snapshot with the latest good read.
func (c *SnapshotCache) StoreOrders(ctx context.Context, orders []entity.Order) error {
	payload, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, ordersSnapshotKey, payload, c.ttl).Err()
}

// LoadOrders returns the cached snapshot. The second return value reports
// whether a snapshot was present.
func (c *SnapshotCache) LoadOrders(ctx context.Context) ([]entity.Order, bool, error) {
	val, err := c.client.Get(ctx, ordersSnapshotKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var orders []entity.Order
	if err := json.Unmarshal([]byte(val), &orders); err != nil {
		return nil, false, err
	}
	return orders, true, nil
}
