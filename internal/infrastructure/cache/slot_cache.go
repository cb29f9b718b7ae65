package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hospital-admin-api/internal/domain/entity"

	"github.com/redis/go-redis/v9"
)

const (
	slotKeyPrefix = "schedules:available:"
	slotCacheTTL  = time.Minute
)

// SlotCache is a read-through cache for available-slots queries, keyed by
// doctor and day. Entries are short-lived and invalidated on any schedule
// write so a stale hit can only persist for the TTL window.
type SlotCache struct {
	client *redis.Client
}

func NewSlotCache(client *redis.Client) *SlotCache {
	return &SlotCache{client: client}
}

func slotKey(doctorID int, day time.Time) string {
	return fmt.Sprintf("%s%d:%s", slotKeyPrefix, doctorID, day.Format("2006-01-02"))
}

// Get returns the cached slots and true on a hit, or nil and false otherwise.
func (c *SlotCache) Get(ctx context.Context, doctorID int, day time.Time) ([]entity.Schedule, bool, error) {
	raw, err := c.client.Get(ctx, slotKey(doctorID, day)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var schedules []entity.Schedule
	if err := json.Unmarshal(raw, &schedules); err != nil {
		return nil, false, err
	}
	return schedules, true, nil
}

func (c *SlotCache) Set(ctx context.Context, doctorID int, day time.Time, schedules []entity.Schedule) error {
	raw, err := json.Marshal(schedules)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, slotKey(doctorID, day), raw, slotCacheTTL).Err()
}

// Invalidate drops the cached entry for one doctor/day pair.
func (c *SlotCache) Invalidate(ctx context.Context, doctorID int, day time.Time) error {
	return c.client.Del(ctx, slotKey(doctorID, day)).Err()
}
