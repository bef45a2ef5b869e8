package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/clarity-backend/internal/pkg/logger"
	"github.com/yungbote/clarity-backend/internal/types"
)

// CandidateFilter describes the SQL-side portion of candidate selection.
// Category overlap is applied by the feed service on the fetched rows, so
// the same filter works on both the postgres and sqlite drivers.
type CandidateFilter struct {
	ExcludeIDs     []uuid.UUID
	AllowPremium   bool
	AllowSpiritual bool
}

type QuoteRepo interface {
	ListCandidates(ctx context.Context, tx *gorm.DB, filter CandidateFilter) ([]*types.Quote, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Quote, error)
}

type quoteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuoteRepo(db *gorm.DB, baseLog *logger.Logger) QuoteRepo {
	return &quoteRepo{db: db, log: baseLog.With("repo", "QuoteRepo")}
}

func (r *quoteRepo) ListCandidates(ctx context.Context, tx *gorm.DB, filter CandidateFilter) ([]*types.Quote, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	query := transaction.WithContext(ctx).Model(&types.Quote{})
	if len(filter.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", filter.ExcludeIDs)
	}
	if !filter.AllowPremium {
		query = query.Where("is_premium = ?", false)
	}
	if !filter.AllowSpiritual {
		query = query.Where("is_spiritual = ?", false)
	}
	var results []*types.Quote
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *quoteRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Quote, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Quote
	if len(ids) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
