package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/clarity-backend/internal/repos"
	"github.com/yungbote/clarity-backend/internal/types"
)

type fakeProfileRepo struct {
	profile *types.Profile
	err     error

	updatedStreak         *int
	updatedLastActiveDate string
	updatedActivityLog    []string
	updatedFocusAreas     []string
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, tx *gorm.DB, profile *types.Profile) (*types.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.profile = profile
	return profile, nil
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Profile, error) {
	return f.profile, f.err
}

func (f *fakeProfileRepo) UpdateFocusAreas(ctx context.Context, tx *gorm.DB, userID uuid.UUID, focusAreas []string) error {
	f.updatedFocusAreas = focusAreas
	return f.err
}

func (f *fakeProfileRepo) UpdateTheme(ctx context.Context, tx *gorm.DB, userID uuid.UUID, themeID uuid.UUID) error {
	return f.err
}

func (f *fakeProfileRepo) UpdateStreak(ctx context.Context, tx *gorm.DB, userID uuid.UUID, streak int, lastActiveDate string, activityLog []string) error {
	f.updatedStreak = &streak
	f.updatedLastActiveDate = lastActiveDate
	f.updatedActivityLog = activityLog
	return f.err
}

func (f *fakeProfileRepo) UpdateNotificationSettings(ctx context.Context, tx *gorm.DB, userID uuid.UUID, timeOfDay string, freq int, start, end string) error {
	return f.err
}

func (f *fakeProfileRepo) ListWithRemindersConfigured(ctx context.Context, tx *gorm.DB) ([]*types.Profile, error) {
	if f.profile == nil {
		return nil, f.err
	}
	return []*types.Profile{f.profile}, f.err
}

type fakeQuoteRepo struct {
	candidates []*types.Quote
	err        error

	lastFilter *repos.CandidateFilter
}

func (f *fakeQuoteRepo) ListCandidates(ctx context.Context, tx *gorm.DB, filter repos.CandidateFilter) ([]*types.Quote, error) {
	f.lastFilter = &filter
	return f.candidates, f.err
}

func (f *fakeQuoteRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Quote, error) {
	return f.candidates, f.err
}

type fakeFavoriteRepo struct {
	quoteIDs  []uuid.UUID
	favorites []*types.Favorite
	idsErr    error
}

func (f *fakeFavoriteRepo) Create(ctx context.Context, tx *gorm.DB, favorite *types.Favorite) (*types.Favorite, error) {
	f.favorites = append(f.favorites, favorite)
	return favorite, nil
}

func (f *fakeFavoriteRepo) Exists(ctx context.Context, tx *gorm.DB, userID, quoteID uuid.UUID) (bool, error) {
	for _, favorite := range f.favorites {
		if favorite.QuoteID == quoteID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFavoriteRepo) DeleteByUserAndQuote(ctx context.Context, tx *gorm.DB, userID, quoteID uuid.UUID) (int64, error) {
	return 1, nil
}

func (f *fakeFavoriteRepo) ListQuoteIDsByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]uuid.UUID, error) {
	return f.quoteIDs, f.idsErr
}

func (f *fakeFavoriteRepo) ListWithQuotesByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Favorite, error) {
	return f.favorites, nil
}

type fakeHistoryRepo struct {
	quoteIDs []uuid.UUID
	idsErr   error
	upserted int
}

func (f *fakeHistoryRepo) Upsert(ctx context.Context, tx *gorm.DB, userID, quoteID uuid.UUID, seenAt time.Time) error {
	f.upserted++
	return nil
}

func (f *fakeHistoryRepo) ListQuoteIDsSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since time.Time) ([]uuid.UUID, error) {
	return f.quoteIDs, f.idsErr
}

func (f *fakeHistoryRepo) ListWithQuotesByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.QuoteHistory, error) {
	return nil, nil
}

type fakeDeviceRepo struct {
	enabled []*types.Device
}

func (f *fakeDeviceRepo) Upsert(ctx context.Context, tx *gorm.DB, device *types.Device) (*types.Device, error) {
	return device, nil
}

func (f *fakeDeviceRepo) ListEnabledByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Device, error) {
	return f.enabled, nil
}

type fakeScheduleRepo struct {
	replaced map[string][]*types.ScheduledNotification
}

func (f *fakeScheduleRepo) ReplaceForKind(ctx context.Context, tx *gorm.DB, userID uuid.UUID, kind string, rows []*types.ScheduledNotification) error {
	if f.replaced == nil {
		f.replaced = map[string][]*types.ScheduledNotification{}
	}
	f.replaced[kind] = rows
	return nil
}

func (f *fakeScheduleRepo) Create(ctx context.Context, tx *gorm.DB, row *types.ScheduledNotification) (*types.ScheduledNotification, error) {
	return row, nil
}

func (f *fakeScheduleRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ScheduledNotification, error) {
	var all []*types.ScheduledNotification
	for _, rows := range f.replaced {
		all = append(all, rows...)
	}
	return all, nil
}

func (f *fakeScheduleRepo) DeleteForKind(ctx context.Context, tx *gorm.DB, userID uuid.UUID, kind string) error {
	delete(f.replaced, kind)
	return nil
}
