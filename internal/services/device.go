package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/clarity-backend/internal/pkg/ctxutil"
	pkgerrors "github.com/yungbote/clarity-backend/internal/pkg/errors"
	"github.com/yungbote/clarity-backend/internal/pkg/logger"
	"github.com/yungbote/clarity-backend/internal/repos"
	"github.com/yungbote/clarity-backend/internal/types"
)

type DeviceService interface {
	// Register upserts a device push registration. PushEnabled false records
	// a permission denial so reminder mutations can refuse cleanly.
	Register(ctx context.Context, userID uuid.UUID, pushToken, platform string, pushEnabled bool) (*types.Device, error)
}

type deviceService struct {
	db         *gorm.DB
	log        *logger.Logger
	deviceRepo repos.DeviceRepo
}

func NewDeviceService(db *gorm.DB, baseLog *logger.Logger, deviceRepo repos.DeviceRepo) DeviceService {
	return &deviceService{
		db:         db,
		log:        baseLog.With("service", "DeviceService"),
		deviceRepo: deviceRepo,
	}
}

func (s *deviceService) Register(ctx context.Context, userID uuid.UUID, pushToken, platform string, pushEnabled bool) (*types.Device, error) {
	ctx = ctxutil.Default(ctx)
	if userID == uuid.Nil || pushToken == "" {
		return nil, pkgerrors.ErrInvalidArgument
	}
	device := &types.Device{
		UserID:      userID,
		PushToken:   pushToken,
		Platform:    platform,
		PushEnabled: pushEnabled,
	}
	saved, err := s.deviceRepo.Upsert(ctx, nil, device)
	if err != nil {
		return nil, err
	}
	s.log.Info("device registered", "user_id", userID.String(), "platform", platform, "push_enabled", pushEnabled)
	return saved, nil
}
