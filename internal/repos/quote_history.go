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

type QuoteHistoryRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, userID, quoteID uuid.UUID, seenAt time.Time) error
	ListQuoteIDsSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since time.Time) ([]uuid.UUID, error)
	ListWithQuotesByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.QuoteHistory, error)
}

type quoteHistoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuoteHistoryRepo(db *gorm.DB, baseLog *logger.Logger) QuoteHistoryRepo {
	return &quoteHistoryRepo{db: db, log: baseLog.With("repo", "QuoteHistoryRepo")}
}

func (r *quoteHistoryRepo) Upsert(ctx context.Context, tx *gorm.DB, userID, quoteID uuid.UUID, seenAt time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if userID == uuid.Nil || quoteID == uuid.Nil {
		return nil
	}
	row := &types.QuoteHistory{
		ID:         uuid.New(),
		UserID:     userID,
		QuoteID:    quoteID,
		LastSeenAt: seenAt,
	}
	// On conflict, only the timestamp moves forward.
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "quote_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_seen_at"}),
		}).
		Create(row).Error
}

func (r *quoteHistoryRepo) ListQuoteIDsSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since time.Time) ([]uuid.UUID, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var ids []uuid.UUID
	if userID == uuid.Nil {
		return ids, nil
	}
	if err := transaction.WithContext(ctx).
		Model(&types.QuoteHistory{}).
		Where("user_id = ? AND last_seen_at > ?", userID, since).
		Pluck("quote_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *quoteHistoryRepo) ListWithQuotesByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.QuoteHistory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.QuoteHistory
	if userID == uuid.Nil {
		return results, nil
	}
	query := transaction.WithContext(ctx).
		Preload("Quote").
		Where("user_id = ?", userID).
		Order("last_seen_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
