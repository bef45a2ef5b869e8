package app

import (
	"os"
	"strings"

	redisclient "github.com/yungbote/clarity-backend/internal/clients/redis"
	"github.com/yungbote/clarity-backend/internal/pkg/logger"
)

type Clients struct {
	Cache *redisclient.Cache
}

// wireClients connects optional external clients. Redis is opt-in: without
// REDIS_ADDR the app runs with a nil cache and every lookup is a miss.
func wireClients(log *logger.Logger) Clients {
	var cache *redisclient.Cache
	if strings.TrimSpace(os.Getenv("REDIS_ADDR")) != "" {
		connected, err := redisclient.NewCacheFromEnv()
		if err != nil {
			log.Warn("redis cache unavailable, continuing without it", "error", err)
		} else {
			log.Info("redis cache connected")
			cache = connected
		}
	}
	return Clients{Cache: cache}
}
