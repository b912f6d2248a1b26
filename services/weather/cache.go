package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"voyago/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CachedSource wraps a Source with a redis TTL cache keyed by city and date.
// Only resolved snapshots are cached; a date beyond the forecast horizon is
// re-asked next time, since the horizon moves.
type CachedSource struct {
	Inner Source
	Cache *redis.Client
	TTL   time.Duration
}

func (c *CachedSource) Forecast(ctx context.Context, city string, date time.Time) (*models.WeatherSnapshot, error) {
	key := fmt.Sprintf("weather:%s:%s", strings.ToLower(city), date.Format("2006-01-02"))

	if data, err := c.Cache.Get(ctx, key).Result(); err == nil {
		var snap models.WeatherSnapshot
		if err := json.Unmarshal([]byte(data), &snap); err == nil {
			return &snap, nil
		}
	}

	snap, err := c.Inner.Forecast(ctx, city, date)
	if err != nil || snap == nil {
		return snap, err
	}

	if data, err := json.Marshal(snap); err == nil {
		if err := c.Cache.Set(ctx, key, data, c.TTL).Err(); err != nil {
			zap.L().Warn("failed to cache forecast", zap.String("key", key), zap.Error(err))
		}
	}
	return snap, nil
}
