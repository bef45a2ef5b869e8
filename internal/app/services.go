package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/clarity-backend/internal/pkg/logger"
	"github.com/yungbote/clarity-backend/internal/services"
)

type Services struct {
	Auth      services.AuthService
	Profile   services.ProfileService
	Feed      services.FeedService
	Favorite  services.FavoriteService
	History   services.HistoryService
	Streak    services.StreakService
	Theme     services.ThemeService
	Reminder  services.ReminderService
	Device    services.DeviceService
	ShareCard services.ShareCardService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, clients Clients) (Services, error) {
	log.Info("Wiring services...")

	authService := services.NewAuthService(
		db, log,
		reposet.User,
		reposet.UserToken,
		cfg.JWTSecretKey,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)
	profileService := services.NewProfileService(db, log, reposet.Profile)
	feedService := services.NewFeedService(
		db, log,
		reposet.Profile,
		reposet.Quote,
		reposet.Favorite,
		reposet.QuoteHistory,
		clients.Cache,
	)
	favoriteService := services.NewFavoriteService(db, log, reposet.Favorite, clients.Cache)
	historyService := services.NewHistoryService(db, log, reposet.QuoteHistory, clients.Cache)
	streakService := services.NewStreakService(db, log, reposet.Profile)
	themeService := services.NewThemeService(db, log, reposet.Theme, reposet.Profile)
	reminderService := services.NewReminderService(
		db, log,
		reposet.Profile,
		reposet.Favorite,
		reposet.Device,
		reposet.ScheduledNotification,
	)
	deviceService := services.NewDeviceService(db, log, reposet.Device)

	// Share cards need a TTF on disk; without one the endpoint is simply off.
	shareCardService, err := services.NewShareCardService(db, log, reposet.Profile)
	if err != nil {
		log.Warn("share card service disabled", "error", err)
		shareCardService = nil
	}

	return Services{
		Auth:      authService,
		Profile:   profileService,
		Feed:      feedService,
		Favorite:  favoriteService,
		History:   historyService,
		Streak:    streakService,
		Theme:     themeService,
		Reminder:  reminderService,
		Device:    deviceService,
		ShareCard: shareCardService,
	}, nil
}
