package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redisclient "github.com/yungbote/clarity-backend/internal/clients/redis"
	"github.com/yungbote/clarity-backend/internal/pkg/ctxutil"
	"github.com/yungbote/clarity-backend/internal/pkg/logger"
	"github.com/yungbote/clarity-backend/internal/repos"
	"github.com/yungbote/clarity-backend/internal/types"
)

type HistoryService interface {
	// MarkSeen records that the user viewed a quote. Failures are logged and
	// swallowed: view tracking never breaks the reading experience.
	MarkSeen(ctx context.Context, userID, quoteID uuid.UUID)
	List(ctx context.Context, userID uuid.UUID, limit int) ([]*types.QuoteHistory, error)
}

type historyService struct {
	db          *gorm.DB
	log         *logger.Logger
	historyRepo repos.QuoteHistoryRepo
	cache       *redisclient.Cache
	now         func() time.Time
}

func NewHistoryService(db *gorm.DB, baseLog *logger.Logger, historyRepo repos.QuoteHistoryRepo, cache *redisclient.Cache) HistoryService {
	return &historyService{
		db:          db,
		log:         baseLog.With("service", "HistoryService"),
		historyRepo: historyRepo,
		cache:       cache,
		now:         time.Now,
	}
}

func (s *historyService) MarkSeen(ctx context.Context, userID, quoteID uuid.UUID) {
	ctx = ctxutil.Default(ctx)
	if err := s.historyRepo.Upsert(ctx, nil, userID, quoteID, s.now().UTC()); err != nil {
		s.log.Warn("mark seen failed", "user_id", userID.String(), "quote_id", quoteID.String(), "error", err)
		return
	}
	s.cache.Invalidate(ctx, exclusionCacheKey(userID))
}

func (s *historyService) List(ctx context.Context, userID uuid.UUID, limit int) ([]*types.QuoteHistory, error) {
	ctx = ctxutil.Default(ctx)
	return s.historyRepo.ListWithQuotesByUserID(ctx, nil, userID, limit)
}
