package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/clarity-backend/internal/pkg/logger"
	"github.com/yungbote/clarity-backend/internal/types"
)

type FavoriteRepo interface {
	Create(ctx context.Context, tx *gorm.DB, favorite *types.Favorite) (*types.Favorite, error)
	Exists(ctx context.Context, tx *gorm.DB, userID, quoteID uuid.UUID) (bool, error)
	DeleteByUserAndQuote(ctx context.Context, tx *gorm.DB, userID, quoteID uuid.UUID) (int64, error)
	ListQuoteIDsByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]uuid.UUID, error)
	ListWithQuotesByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Favorite, error)
}

type favoriteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFavoriteRepo(db *gorm.DB, baseLog *logger.Logger) FavoriteRepo {
	return &favoriteRepo{db: db, log: baseLog.With("repo", "FavoriteRepo")}
}

func (r *favoriteRepo) Create(ctx context.Context, tx *gorm.DB, favorite *types.Favorite) (*types.Favorite, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if favorite == nil || favorite.UserID == uuid.Nil || favorite.QuoteID == uuid.Nil {
		return nil, nil
	}
	if favorite.ID == uuid.Nil {
		favorite.ID = uuid.New()
	}
	if err := transaction.WithContext(ctx).Create(favorite).Error; err != nil {
		return nil, err
	}
	return favorite, nil
}

func (r *favoriteRepo) Exists(ctx context.Context, tx *gorm.DB, userID, quoteID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Favorite{}).
		Where("user_id = ? AND quote_id = ?", userID, quoteID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *favoriteRepo) DeleteByUserAndQuote(ctx context.Context, tx *gorm.DB, userID, quoteID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	result := transaction.WithContext(ctx).
		Where("user_id = ? AND quote_id = ?", userID, quoteID).
		Delete(&types.Favorite{})
	return result.RowsAffected, result.Error
}

func (r *favoriteRepo) ListQuoteIDsByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]uuid.UUID, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var ids []uuid.UUID
	if userID == uuid.Nil {
		return ids, nil
	}
	if err := transaction.WithContext(ctx).
		Model(&types.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("quote_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *favoriteRepo) ListWithQuotesByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Favorite, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Favorite
	if userID == uuid.Nil {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Preload("Quote").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
