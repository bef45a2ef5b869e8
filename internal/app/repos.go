package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/clarity-backend/internal/pkg/logger"
	"github.com/yungbote/clarity-backend/internal/repos"
)

type Repos struct {
	User                  repos.UserRepo
	UserToken             repos.UserTokenRepo
	Profile               repos.ProfileRepo
	Quote                 repos.QuoteRepo
	Favorite              repos.FavoriteRepo
	QuoteHistory          repos.QuoteHistoryRepo
	Theme                 repos.ThemeRepo
	Device                repos.DeviceRepo
	ScheduledNotification repos.ScheduledNotificationRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:                  repos.NewUserRepo(db, log),
		UserToken:             repos.NewUserTokenRepo(db, log),
		Profile:               repos.NewProfileRepo(db, log),
		Quote:                 repos.NewQuoteRepo(db, log),
		Favorite:              repos.NewFavoriteRepo(db, log),
		QuoteHistory:          repos.NewQuoteHistoryRepo(db, log),
		Theme:                 repos.NewThemeRepo(db, log),
		Device:                repos.NewDeviceRepo(db, log),
		ScheduledNotification: repos.NewScheduledNotificationRepo(db, log),
	}
}
