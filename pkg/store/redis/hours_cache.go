package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	taskTotalKeyPrefix  = "mytime:tracker:total:task:"
	monthTotalKeyPrefix = "mytime:tracker:total:month:"
)

// HoursCache caches total-hours answers. Entries expire after ttl and are
// dropped explicitly whenever a tracker of the same task or month changes.
type HoursCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewHoursCache creates a total-hours cache on top of client
func NewHoursCache(client *redis.Client, ttl time.Duration) *HoursCache {
	return &HoursCache{client: client, ttl: ttl}
}

func taskTotalKey(taskID int64) string {
	return taskTotalKeyPrefix + strconv.FormatInt(taskID, 10)
}

func monthTotalKey(year int, month time.Month) string {
	return fmt.Sprintf("%s%04d-%02d", monthTotalKeyPrefix, year, int(month))
}

// GetTaskTotal returns the cached total of a task; ok is false on a miss
func (c *HoursCache) GetTaskTotal(ctx context.Context, taskID int64) (int64, bool, error) {
	return c.get(ctx, taskTotalKey(taskID))
}

// SetTaskTotal stores the total of a task
func (c *HoursCache) SetTaskTotal(ctx context.Context, taskID int64, total int64) error {
	return c.client.Set(ctx, taskTotalKey(taskID), total, c.ttl).Err()
}

// GetMonthTotal returns the cached total of a calendar month; ok is false on a miss
func (c *HoursCache) GetMonthTotal(ctx context.Context, year int, month time.Month) (int64, bool, error) {
	return c.get(ctx, monthTotalKey(year, month))
}

// SetMonthTotal stores the total of a calendar month
func (c *HoursCache) SetMonthTotal(ctx context.Context, year int, month time.Month, total int64) error {
	return c.client.Set(ctx, monthTotalKey(year, month), total, c.ttl).Err()
}

// Invalidate drops the totals a tracker of taskID created in year/month contributes to
func (c *HoursCache) Invalidate(ctx context.Context, taskID int64, year int, month time.Month) error {
	return c.client.Del(ctx, taskTotalKey(taskID), monthTotalKey(year, month)).Err()
}

func (c *HoursCache) get(ctx context.Context, key string) (int64, bool, error) {
	total, err := c.client.Get(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return total, true, nil
}
