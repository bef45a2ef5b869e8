package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redisclient "github.com/yungbote/clarity-backend/internal/clients/redis"
	"github.com/yungbote/clarity-backend/internal/pkg/ctxutil"
	"github.com/yungbote/clarity-backend/internal/pkg/logger"
	"github.com/yungbote/clarity-backend/internal/repos"
	"github.com/yungbote/clarity-backend/internal/types"
)

type FavoriteService interface {
	// Add saves a quote. Saving one that is already saved is a no-op.
	Add(ctx context.Context, userID, quoteID uuid.UUID) error
	// Remove unsaves a quote and reports whether anything was removed.
	Remove(ctx context.Context, userID, quoteID uuid.UUID) (bool, error)
	List(ctx context.Context, userID uuid.UUID) ([]*types.Favorite, error)
}

type favoriteService struct {
	db           *gorm.DB
	log          *logger.Logger
	favoriteRepo repos.FavoriteRepo
	cache        *redisclient.Cache
}

func NewFavoriteService(db *gorm.DB, baseLog *logger.Logger, favoriteRepo repos.FavoriteRepo, cache *redisclient.Cache) FavoriteService {
	return &favoriteService{
		db:           db,
		log:          baseLog.With("service", "FavoriteService"),
		favoriteRepo: favoriteRepo,
		cache:        cache,
	}
}

func (s *favoriteService) Add(ctx context.Context, userID, quoteID uuid.UUID) error {
	ctx = ctxutil.Default(ctx)
	exists, err := s.favoriteRepo.Exists(ctx, nil, userID, quoteID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if _, err := s.favoriteRepo.Create(ctx, nil, &types.Favorite{
		UserID:  userID,
		QuoteID: quoteID,
	}); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, exclusionCacheKey(userID))
	return nil
}

func (s *favoriteService) Remove(ctx context.Context, userID, quoteID uuid.UUID) (bool, error) {
	ctx = ctxutil.Default(ctx)
	removed, err := s.favoriteRepo.DeleteByUserAndQuote(ctx, nil, userID, quoteID)
	if err != nil {
		return false, err
	}
	if removed > 0 {
		s.cache.Invalidate(ctx, exclusionCacheKey(userID))
	}
	return removed > 0, nil
}

func (s *favoriteService) List(ctx context.Context, userID uuid.UUID) ([]*types.Favorite, error) {
	ctx = ctxutil.Default(ctx)
	return s.favoriteRepo.ListWithQuotesByUserID(ctx, nil, userID)
}
