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

type ThemeService interface {
	List(ctx context.Context) ([]*types.Theme, error)
	// Active resolves the user's selected theme, falling back to the first
	// listed theme when none is selected or the selection no longer exists.
	Active(ctx context.Context, userID uuid.UUID) (*types.Theme, error)
	Select(ctx context.Context, userID, themeID uuid.UUID) error
}

type themeService struct {
	db          *gorm.DB
	log         *logger.Logger
	themeRepo   repos.ThemeRepo
	profileRepo repos.ProfileRepo
}

func NewThemeService(db *gorm.DB, baseLog *logger.Logger, themeRepo repos.ThemeRepo, profileRepo repos.ProfileRepo) ThemeService {
	return &themeService{
		db:          db,
		log:         baseLog.With("service", "ThemeService"),
		themeRepo:   themeRepo,
		profileRepo: profileRepo,
	}
}

func (s *themeService) List(ctx context.Context) ([]*types.Theme, error) {
	ctx = ctxutil.Default(ctx)
	return s.themeRepo.List(ctx, nil)
}

func (s *themeService) Active(ctx context.Context, userID uuid.UUID) (*types.Theme, error) {
	ctx = ctxutil.Default(ctx)
	profile, err := s.profileRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil && profile.SelectedThemeID != nil {
		themes, err := s.themeRepo.GetByIDs(ctx, nil, []uuid.UUID{*profile.SelectedThemeID})
		if err != nil {
			return nil, err
		}
		if len(themes) > 0 {
			return themes[0], nil
		}
	}
	themes, err := s.themeRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	if len(themes) == 0 {
		return nil, pkgerrors.ErrNotFound
	}
	return themes[0], nil
}

func (s *themeService) Select(ctx context.Context, userID, themeID uuid.UUID) error {
	ctx = ctxutil.Default(ctx)
	themes, err := s.themeRepo.GetByIDs(ctx, nil, []uuid.UUID{themeID})
	if err != nil {
		return err
	}
	if len(themes) == 0 {
		return pkgerrors.ErrNotFound
	}
	return s.profileRepo.UpdateTheme(ctx, nil, userID, themeID)
}
