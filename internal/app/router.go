package app

import (
	"github.com/gin-gonic/gin"

	internalhttp "github.com/yungbote/clarity-backend/internal/http"
	"github.com/yungbote/clarity-backend/internal/pkg/logger"
)

func wireRouter(log *logger.Logger, handlerset Handlers, middleware Middleware) *gin.Engine {
	log.Info("Wiring router...")
	return internalhttp.NewRouter(internalhttp.RouterConfig{
		Log:             log,
		AuthMiddleware:  middleware.Auth,
		AuthHandler:     handlerset.Auth,
		ProfileHandler:  handlerset.Profile,
		FeedHandler:     handlerset.Feed,
		FavoriteHandler: handlerset.Favorite,
		HistoryHandler:  handlerset.History,
		StreakHandler:   handlerset.Streak,
		ThemeHandler:    handlerset.Theme,
		ReminderHandler: handlerset.Reminder,
		DeviceHandler:   handlerset.Device,
		HealthHandler:   handlerset.Health,
	})
}
