package holiday

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"workdate/models"
)

// Cache stores the most recently fetched holiday set. Get reports a miss
// once the entry's time-to-live has elapsed; Set replaces the entry
// wholesale.
type Cache interface {
	Get(ctx context.Context) (models.HolidaySet, bool)
	Set(ctx context.Context, set models.HolidaySet) error
}

const redisCacheKey = "holidays:catalog"

// RedisHolidayCache keeps the holiday set as a JSON blob under a single key,
// with expiry delegated to redis.
type RedisHolidayCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisHolidayCache(client *redis.Client, ttl time.Duration) Cache {
	return &RedisHolidayCache{client: client, ttl: ttl}
}

func (c *RedisHolidayCache) Get(ctx context.Context) (models.HolidaySet, bool) {
	val, err := c.client.Get(ctx, redisCacheKey).Result()
	if err != nil {
		return nil, false
	}
	return decodeHolidaySet([]byte(val))
}

func (c *RedisHolidayCache) Set(ctx context.Context, set models.HolidaySet) error {
	data, err := encodeHolidaySet(set)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, redisCacheKey, data, c.ttl).Err()
}

// encodeHolidaySet serializes the set as a sorted JSON array of dates.
func encodeHolidaySet(set models.HolidaySet) ([]byte, error) {
	return json.Marshal(set.Dates())
}

// decodeHolidaySet rebuilds a set from the stored blob. A corrupt payload is
// treated as a cache miss.
func decodeHolidaySet(data []byte) (models.HolidaySet, bool) {
	var dates []string
	if err := json.Unmarshal(data, &dates); err != nil {
		return nil, false
	}
	return models.NewHolidaySet(dates...), true
}
