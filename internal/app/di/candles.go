package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	candleadapters "levels_backend/internal/feature/candles/adapters"
	"levels_backend/internal/feature/candles/usecase"
	"levels_backend/internal/platform/cache"
)

// NewCandleRepository creates a CandleRepository implementation.
// If Redis is available, the MySQL repository is wrapped with a caching
// decorator whose entries expire at the next ingest run (8 AM JST).
// Otherwise, it falls back to plain MySQL.
func NewCandleRepository(rdb *redis.Client, db *gorm.DB) usecase.CandleRepository {
	repo := candleadapters.NewCandleRepository(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingCandleRepository(rdb, cache.TimeUntilNext8AM(), repo, "candles")
}
