package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/clarity-backend/internal/pkg/logger"
	"github.com/yungbote/clarity-backend/internal/types"
)

type ScheduledNotificationRepo interface {
	// ReplaceForKind swaps a user's schedule of one kind wholesale: the old
	// rows are deleted before the new batch is written, in one transaction.
	ReplaceForKind(ctx context.Context, tx *gorm.DB, userID uuid.UUID, kind string, rows []*types.ScheduledNotification) error
	Create(ctx context.Context, tx *gorm.DB, row *types.ScheduledNotification) (*types.ScheduledNotification, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ScheduledNotification, error)
	DeleteForKind(ctx context.Context, tx *gorm.DB, userID uuid.UUID, kind string) error
}

type scheduledNotificationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewScheduledNotificationRepo(db *gorm.DB, baseLog *logger.Logger) ScheduledNotificationRepo {
	return &scheduledNotificationRepo{db: db, log: baseLog.With("repo", "ScheduledNotificationRepo")}
}

func (r *scheduledNotificationRepo) ReplaceForKind(ctx context.Context, tx *gorm.DB, userID uuid.UUID, kind string, rows []*types.ScheduledNotification) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if userID == uuid.Nil || kind == "" {
		return nil
	}
	return transaction.WithContext(ctx).Transaction(func(inner *gorm.DB) error {
		if err := inner.
			Where("user_id = ? AND kind = ?", userID, kind).
			Delete(&types.ScheduledNotification{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		for _, row := range rows {
			if row.ID == uuid.Nil {
				row.ID = uuid.New()
			}
		}
		return inner.Create(&rows).Error
	})
}

func (r *scheduledNotificationRepo) Create(ctx context.Context, tx *gorm.DB, row *types.ScheduledNotification) (*types.ScheduledNotification, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if row == nil || row.UserID == uuid.Nil {
		return nil, nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if err := transaction.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *scheduledNotificationRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ScheduledNotification, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ScheduledNotification
	if userID == uuid.Nil {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("kind ASC, minute ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *scheduledNotificationRepo) DeleteForKind(ctx context.Context, tx *gorm.DB, userID uuid.UUID, kind string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if userID == uuid.Nil || kind == "" {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, kind).
		Delete(&types.ScheduledNotification{}).Error
}
