package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/clarity-backend/internal/pkg/logger"
	"github.com/yungbote/clarity-backend/internal/types"
)

type DeviceRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, device *types.Device) (*types.Device, error)
	ListEnabledByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Device, error)
}

type deviceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDeviceRepo(db *gorm.DB, baseLog *logger.Logger) DeviceRepo {
	return &deviceRepo{db: db, log: baseLog.With("repo", "DeviceRepo")}
}

func (r *deviceRepo) Upsert(ctx context.Context, tx *gorm.DB, device *types.Device) (*types.Device, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if device == nil || device.UserID == uuid.Nil || device.PushToken == "" {
		return nil, nil
	}
	if device.ID == uuid.Nil {
		device.ID = uuid.New()
	}
	device.UpdatedAt = time.Now().UTC()
	err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "push_token"}},
			DoUpdates: clause.AssignmentColumns([]string{"platform", "push_enabled", "updated_at"}),
		}).
		Create(device).Error
	if err != nil {
		return nil, err
	}
	return device, nil
}

func (r *deviceRepo) ListEnabledByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Device, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Device
	if userID == uuid.Nil {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND push_enabled = ?", userID, true).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
