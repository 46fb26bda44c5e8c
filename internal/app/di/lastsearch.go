package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/MeckMan2025/Meckman-Finance/internal/feature/lastsearch/adapters"
	"github.com/MeckMan2025/Meckman-Finance/internal/feature/lastsearch/usecase"
)

// NewLastSearchRepository creates a lastsearch Repository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to SQLite.
func NewLastSearchRepository(rdb *redis.Client, db *gorm.DB) (usecase.Repository, error) {
	if rdb != nil {
		return adapters.NewLastSearchRedis(rdb, "lastsearch"), nil
	}
	return adapters.NewLastSearchSQLite(db)
}
