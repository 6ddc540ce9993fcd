package platform

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"tablero/models"
	"tablero/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CachedScheduleSource is a read-through Redis cache in front of the RPC
// schedule lookup. Opening hours change rarely, so a short TTL is safe.
// Availability results are deliberately never cached.
type CachedScheduleSource struct {
	Client Client
	Redis  *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

func (s *CachedScheduleSource) GetDaySchedule(ctx context.Context, dayOfWeek int) ([]models.OpeningInterval, error) {
	key := utils.ScheduleCachePrefix + strconv.Itoa(dayOfWeek)

	if raw, err := s.Redis.Get(ctx, key).Result(); err == nil {
		var intervals []models.OpeningInterval
		if err := json.Unmarshal([]byte(raw), &intervals); err == nil {
			return intervals, nil
		}
		s.Logger.Warn("dropping corrupt schedule cache entry", zap.String("key", key))
	}

	intervals, err := s.Client.GetDaySchedule(ctx, dayOfWeek)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(intervals); err == nil {
		if err := s.Redis.Set(ctx, key, raw, s.TTL).Err(); err != nil {
			// Cache writes are best-effort; the lookup already succeeded.
			s.Logger.Warn("failed to cache schedule", zap.String("key", key), zap.Error(err))
		}
	}
	return intervals, nil
}
