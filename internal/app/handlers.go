package app

import (
	httpH "github.com/yungbote/clarity-backend/internal/http/handlers"
	"github.com/yungbote/clarity-backend/internal/pkg/logger"
)

type Handlers struct {
	Auth     *httpH.AuthHandler
	Profile  *httpH.ProfileHandler
	Feed     *httpH.FeedHandler
	Favorite *httpH.FavoriteHandler
	History  *httpH.HistoryHandler
	Streak   *httpH.StreakHandler
	Theme    *httpH.ThemeHandler
	Reminder *httpH.ReminderHandler
	Device   *httpH.DeviceHandler
	Health   *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:     httpH.NewAuthHandler(serviceset.Auth),
		Profile:  httpH.NewProfileHandler(serviceset.Profile),
		Feed:     httpH.NewFeedHandler(serviceset.Feed),
		Favorite: httpH.NewFavoriteHandler(serviceset.Favorite),
		History:  httpH.NewHistoryHandler(serviceset.History),
		Streak:   httpH.NewStreakHandler(serviceset.Streak, serviceset.ShareCard),
		Theme:    httpH.NewThemeHandler(serviceset.Theme),
		Reminder: httpH.NewReminderHandler(serviceset.Reminder),
		Device:   httpH.NewDeviceHandler(serviceset.Device),
		Health:   httpH.NewHealthHandler(),
	}
}
