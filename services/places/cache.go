package places

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

// CachedSource wraps a Source with a redis TTL cache keyed by city and vibe.
// Candidate generation is slow and expensive; repeated requests for the same
// trip shape should not pay it twice. This caches collaborator responses
// only, not built itineraries.
type CachedSource struct {
	Inner Source
	Cache *redis.Client
	TTL   time.Duration
}

func (c *CachedSource) Candidates(ctx context.Context, city, vibe string) ([]models.CandidatePlace, error) {
	key := fmt.Sprintf("places:%s:%s", strings.ToLower(city), strings.ToLower(vibe))

	if data, err := c.Cache.Get(ctx, key).Result(); err == nil {
		var candidates []models.CandidatePlace
		if err := json.Unmarshal([]byte(data), &candidates); err == nil {
			return candidates, nil
		}
		// Corrupt entry: fall through and refetch.
	}

	candidates, err := c.Inner.Candidates(ctx, city, vibe)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(candidates); err == nil {
		if err := c.Cache.Set(ctx, key, data, c.TTL).Err(); err != nil {
			zap.L().Warn("failed to cache candidates", zap.String("key", key), zap.Error(err))
		}
	}
	return candidates, nil
}
