package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/clarity-backend/internal/http/handlers"
	httpMW "github.com/yungbote/clarity-backend/internal/http/middleware"
	"github.com/yungbote/clarity-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthMiddleware *httpMW.AuthMiddleware

	AuthHandler     *httpH.AuthHandler
	ProfileHandler  *httpH.ProfileHandler
	FeedHandler     *httpH.FeedHandler
	FavoriteHandler *httpH.FavoriteHandler
	HistoryHandler  *httpH.HistoryHandler
	StreakHandler   *httpH.StreakHandler
	ThemeHandler    *httpH.ThemeHandler
	ReminderHandler *httpH.ReminderHandler
	DeviceHandler   *httpH.DeviceHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(otelgin.Middleware("clarity-backend"))
	r.Use(httpMW.CORS())
	r.Use(httpMW.RequestLogger(cfg.Log))

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		if cfg.AuthHandler != nil {
			protected.POST("/refresh", cfg.AuthHandler.Refresh)
			protected.POST("/logout", cfg.AuthHandler.Logout)
		}

		if cfg.ProfileHandler != nil {
			protected.GET("/me", cfg.ProfileHandler.GetMe)
			protected.POST("/profile", cfg.ProfileHandler.Onboard)
			protected.PATCH("/profile/focus-areas", cfg.ProfileHandler.UpdateFocusAreas)
		}

		if cfg.FeedHandler != nil {
			protected.GET("/feed", cfg.FeedHandler.GetFeed)
		}

		if cfg.FavoriteHandler != nil {
			protected.GET("/favorites", cfg.FavoriteHandler.List)
			protected.POST("/favorites/:quoteID", cfg.FavoriteHandler.Add)
			protected.DELETE("/favorites/:quoteID", cfg.FavoriteHandler.Remove)
		}

		if cfg.HistoryHandler != nil {
			protected.POST("/quotes/:quoteID/seen", cfg.HistoryHandler.MarkSeen)
			protected.GET("/history", cfg.HistoryHandler.List)
		}

		if cfg.StreakHandler != nil {
			protected.GET("/streak", cfg.StreakHandler.CheckIn)
			protected.GET("/streak/week", cfg.StreakHandler.Week)
			protected.GET("/streak/share-card", cfg.StreakHandler.ShareCard)
		}

		if cfg.ThemeHandler != nil {
			protected.GET("/themes", cfg.ThemeHandler.List)
			protected.GET("/themes/active", cfg.ThemeHandler.Active)
			protected.PATCH("/profile/theme", cfg.ThemeHandler.Select)
		}

		if cfg.ReminderHandler != nil {
			protected.PUT("/reminders", cfg.ReminderHandler.ScheduleDaily)
			protected.GET("/notifications", cfg.ReminderHandler.List)
			protected.POST("/alarm", cfg.ReminderHandler.SetAlarm)
			protected.POST("/alarm/snooze", cfg.ReminderHandler.Snooze)
		}

		if cfg.DeviceHandler != nil {
			protected.POST("/devices", cfg.DeviceHandler.Register)
		}
	}

	return r
}
