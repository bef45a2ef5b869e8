package services

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	redisclient "github.com/yungbote/clarity-backend/internal/clients/redis"
	"github.com/yungbote/clarity-backend/internal/pkg/ctxutil"
	pkgerrors "github.com/yungbote/clarity-backend/internal/pkg/errors"
	"github.com/yungbote/clarity-backend/internal/pkg/logger"
	"github.com/yungbote/clarity-backend/internal/repos"
	"github.com/yungbote/clarity-backend/internal/types"
)

const (
	// Quotes seen in this window are excluded from the feed so the pool
	// rotates before repeating.
	historyExclusionWindow = 30 * 24 * time.Hour

	defaultFeedLimit = 20

	exclusionCacheTTL = 10 * time.Minute

	// favoritesCategory short-circuits candidate selection entirely: the
	// user's saved quotes are the pool.
	favoritesCategory = "favorites"
)

type FeedService interface {
	GetFeed(ctx context.Context, userID uuid.UUID, category string, limit int) ([]*types.Quote, error)
}

type feedService struct {
	db           *gorm.DB
	log          *logger.Logger
	profileRepo  repos.ProfileRepo
	quoteRepo    repos.QuoteRepo
	favoriteRepo repos.FavoriteRepo
	historyRepo  repos.QuoteHistoryRepo
	cache        *redisclient.Cache
	now          func() time.Time
	newRand      func() *rand.Rand
}

func NewFeedService(
	db *gorm.DB,
	baseLog *logger.Logger,
	profileRepo repos.ProfileRepo,
	quoteRepo repos.QuoteRepo,
	favoriteRepo repos.FavoriteRepo,
	historyRepo repos.QuoteHistoryRepo,
	cache *redisclient.Cache,
) FeedService {
	return &feedService{
		db:           db,
		log:          baseLog.With("service", "FeedService"),
		profileRepo:  profileRepo,
		quoteRepo:    quoteRepo,
		favoriteRepo: favoriteRepo,
		historyRepo:  historyRepo,
		cache:        cache,
		now:          time.Now,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// GetFeed assembles a ranked quote feed for the user. A missing profile is
// fatal since gating and scoring both depend on it; everything downstream
// degrades gracefully. An exhausted candidate pool yields an empty feed,
// not an error.
func (s *feedService) GetFeed(ctx context.Context, userID uuid.UUID, category string, limit int) ([]*types.Quote, error) {
	ctx = ctxutil.Default(ctx)
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	category = strings.ToLower(strings.TrimSpace(category))

	profile, err := s.profileRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, pkgerrors.ErrNotFound
	}

	if category == favoritesCategory || containsFold(profile.FocusAreas, favoritesCategory) {
		return s.favoritesFeed(ctx, userID, limit)
	}

	excluded := s.buildExclusionSet(ctx, userID)

	filter := repos.CandidateFilter{
		ExcludeIDs:     excluded,
		AllowPremium:   profile.IsPremium,
		AllowSpiritual: strings.EqualFold(profile.ManifestationBelief, "Yes"),
	}
	candidates, err := s.quoteRepo.ListCandidates(ctx, nil, filter)
	if err != nil {
		return nil, err
	}

	// Focus areas constrain the pool; an empty list (or "General", which
	// normalizes to empty) means no constraint. The explicit category
	// param narrows further.
	if len(profile.FocusAreas) > 0 {
		candidates = filterByAnyCategory(candidates, profile.FocusAreas)
	}
	if category != "" && category != "all" {
		candidates = filterByCategory(candidates, category)
	}

	ranked := RankQuotes(candidates, profile, s.newRand())
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	quotes := make([]*types.Quote, 0, len(ranked))
	for _, item := range ranked {
		quotes = append(quotes, item.Quote)
	}
	return quotes, nil
}

// favoritesFeed serves the user's saved quotes as stored, skipping both
// candidate selection and ranking.
func (s *feedService) favoritesFeed(ctx context.Context, userID uuid.UUID, limit int) ([]*types.Quote, error) {
	favorites, err := s.favoriteRepo.ListWithQuotesByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	pool := make([]*types.Quote, 0, len(favorites))
	for _, favorite := range favorites {
		if favorite.Quote != nil {
			pool = append(pool, favorite.Quote)
		}
	}
	if len(pool) > limit {
		pool = pool[:limit]
	}
	return pool, nil
}

// buildExclusionSet unions the user's favorites with their recent history.
// Both fetches run in parallel and each is best-effort: a failed sub-fetch
// logs and contributes nothing rather than failing the feed.
func (s *feedService) buildExclusionSet(ctx context.Context, userID uuid.UUID) []uuid.UUID {
	cacheKey := exclusionCacheKey(userID)
	if cached, ok := s.cache.GetIDs(ctx, cacheKey); ok {
		return parseIDs(cached)
	}

	var (
		favoriteIDs []uuid.UUID
		historyIDs  []uuid.UUID
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		ids, err := s.favoriteRepo.ListQuoteIDsByUserID(groupCtx, nil, userID)
		if err != nil {
			s.log.Warn("exclusion set: favorites fetch failed", "user_id", userID.String(), "error", err)
			return nil
		}
		favoriteIDs = ids
		return nil
	})
	group.Go(func() error {
		since := s.now().Add(-historyExclusionWindow)
		ids, err := s.historyRepo.ListQuoteIDsSince(groupCtx, nil, userID, since)
		if err != nil {
			s.log.Warn("exclusion set: history fetch failed", "user_id", userID.String(), "error", err)
			return nil
		}
		historyIDs = ids
		return nil
	})
	_ = group.Wait()

	seen := make(map[uuid.UUID]struct{}, len(favoriteIDs)+len(historyIDs))
	merged := make([]uuid.UUID, 0, len(favoriteIDs)+len(historyIDs))
	for _, id := range append(favoriteIDs, historyIDs...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		merged = append(merged, id)
	}

	s.cache.SetIDs(ctx, cacheKey, formatIDs(merged), exclusionCacheTTL)
	return merged
}

// exclusionCacheKey is shared with the favorite and history services,
// which invalidate it on writes.
func exclusionCacheKey(userID uuid.UUID) string {
	return "feed:exclusions:" + userID.String()
}

func filterByCategory(candidates []*types.Quote, category string) []*types.Quote {
	filtered := make([]*types.Quote, 0, len(candidates))
	for _, quote := range candidates {
		for _, item := range quote.Categories {
			if strings.EqualFold(item, category) {
				filtered = append(filtered, quote)
				break
			}
		}
	}
	return filtered
}

// filterByAnyCategory keeps quotes sharing at least one category with the
// given list, case-insensitively.
func filterByAnyCategory(candidates []*types.Quote, categories []string) []*types.Quote {
	wanted := make(map[string]struct{}, len(categories))
	for _, item := range categories {
		wanted[strings.ToLower(item)] = struct{}{}
	}
	filtered := make([]*types.Quote, 0, len(candidates))
	for _, quote := range candidates {
		for _, item := range quote.Categories {
			if _, ok := wanted[strings.ToLower(item)]; ok {
				filtered = append(filtered, quote)
				break
			}
		}
	}
	return filtered
}

func containsFold(items []string, target string) bool {
	for _, item := range items {
		if strings.EqualFold(strings.TrimSpace(item), target) {
			return true
		}
	}
	return false
}

func parseIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, item := range raw {
		if id, err := uuid.Parse(item); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func formatIDs(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
