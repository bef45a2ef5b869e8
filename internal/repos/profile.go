package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/clarity-backend/internal/pkg/logger"
	"github.com/yungbote/clarity-backend/internal/types"
)

type ProfileRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, profile *types.Profile) (*types.Profile, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Profile, error)
	UpdateFocusAreas(ctx context.Context, tx *gorm.DB, userID uuid.UUID, focusAreas []string) error
	UpdateTheme(ctx context.Context, tx *gorm.DB, userID uuid.UUID, themeID uuid.UUID) error
	UpdateStreak(ctx context.Context, tx *gorm.DB, userID uuid.UUID, streak int, lastActiveDate string, activityLog []string) error
	UpdateNotificationSettings(ctx context.Context, tx *gorm.DB, userID uuid.UUID, timeOfDay string, freq int, start, end string) error
	ListWithRemindersConfigured(ctx context.Context, tx *gorm.DB) ([]*types.Profile, error)
}

type profileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	return &profileRepo{db: db, log: baseLog.With("repo", "ProfileRepo")}
}

func (r *profileRepo) Upsert(ctx context.Context, tx *gorm.DB, profile *types.Profile) (*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if profile == nil || profile.UserID == uuid.Nil {
		return nil, nil
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	profile.UpdatedAt = time.Now().UTC()
	err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"full_name", "focus_areas", "struggles", "tone", "manifestation_belief",
				"selected_theme_id", "notification_time", "notification_freq",
				"notification_start", "notification_end", "updated_at",
			}),
		}).
		Create(profile).Error
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *profileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if userID == uuid.Nil {
		return nil, nil
	}
	var row types.Profile
	err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *profileRepo) UpdateFocusAreas(ctx context.Context, tx *gorm.DB, userID uuid.UUID, focusAreas []string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if userID == uuid.Nil {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Profile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"focus_areas": datatypes.NewJSONSlice(focusAreas),
			"updated_at":  time.Now().UTC(),
		}).Error
}

func (r *profileRepo) UpdateTheme(ctx context.Context, tx *gorm.DB, userID uuid.UUID, themeID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if userID == uuid.Nil || themeID == uuid.Nil {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Profile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"selected_theme_id": themeID,
			"updated_at":        time.Now().UTC(),
		}).Error
}

func (r *profileRepo) UpdateStreak(ctx context.Context, tx *gorm.DB, userID uuid.UUID, streak int, lastActiveDate string, activityLog []string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if userID == uuid.Nil {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Profile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"current_streak":   streak,
			"last_active_date": lastActiveDate,
			"activity_log":     datatypes.NewJSONSlice(activityLog),
			"updated_at":       time.Now().UTC(),
		}).Error
}

func (r *profileRepo) UpdateNotificationSettings(ctx context.Context, tx *gorm.DB, userID uuid.UUID, timeOfDay string, freq int, start, end string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if userID == uuid.Nil {
		return nil
	}
	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if timeOfDay != "" {
		updates["notification_time"] = timeOfDay
	}
	if freq > 0 {
		updates["notification_freq"] = freq
	}
	if start != "" {
		updates["notification_start"] = start
	}
	if end != "" {
		updates["notification_end"] = end
	}
	return transaction.WithContext(ctx).
		Model(&types.Profile{}).
		Where("user_id = ?", userID).
		Updates(updates).Error
}

func (r *profileRepo) ListWithRemindersConfigured(ctx context.Context, tx *gorm.DB) ([]*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Profile
	if err := transaction.WithContext(ctx).
		Where("notification_freq > 0").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
