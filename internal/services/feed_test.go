package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	pkgerrors "github.com/yungbote/clarity-backend/internal/pkg/errors"
	"github.com/yungbote/clarity-backend/internal/pkg/logger"
	"github.com/yungbote/clarity-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func newTestFeedService(t *testing.T, profiles *fakeProfileRepo, quotes *fakeQuoteRepo, favorites *fakeFavoriteRepo, history *fakeHistoryRepo) *feedService {
	t.Helper()
	return &feedService{
		log:          testLogger(t).With("service", "FeedService"),
		profileRepo:  profiles,
		quoteRepo:    quotes,
		favoriteRepo: favorites,
		historyRepo:  history,
		now:          func() time.Time { return time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC) },
		newRand:      func() *rand.Rand { return rand.New(rand.NewSource(1)) },
	}
}

func TestGetFeedMissingProfileIsFatal(t *testing.T) {
	t.Parallel()
	svc := newTestFeedService(t, &fakeProfileRepo{}, &fakeQuoteRepo{}, &fakeFavoriteRepo{}, &fakeHistoryRepo{})

	_, err := svc.GetFeed(context.Background(), uuid.New(), "", 10)
	if !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetFeedGatesPremiumAndSpiritual(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name           string
		isPremium      bool
		belief         string
		wantPremium    bool
		wantSpiritual  bool
	}{
		{"free skeptic", false, "No", false, false},
		{"free believer", false, "Yes", false, true},
		{"premium skeptic", true, "Prefer not to say", true, false},
		{"premium believer", true, "yes", true, true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			quotes := &fakeQuoteRepo{}
			profiles := &fakeProfileRepo{profile: &types.Profile{
				UserID:              uuid.New(),
				IsPremium:           tc.isPremium,
				ManifestationBelief: tc.belief,
			}}
			svc := newTestFeedService(t, profiles, quotes, &fakeFavoriteRepo{}, &fakeHistoryRepo{})

			if _, err := svc.GetFeed(context.Background(), uuid.New(), "", 10); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if quotes.lastFilter == nil {
				t.Fatal("candidate query never ran")
			}
			if quotes.lastFilter.AllowPremium != tc.wantPremium {
				t.Fatalf("AllowPremium: got=%v want=%v", quotes.lastFilter.AllowPremium, tc.wantPremium)
			}
			if quotes.lastFilter.AllowSpiritual != tc.wantSpiritual {
				t.Fatalf("AllowSpiritual: got=%v want=%v", quotes.lastFilter.AllowSpiritual, tc.wantSpiritual)
			}
		})
	}
}

func TestGetFeedExclusionSetUnionsAndDedupes(t *testing.T) {
	t.Parallel()
	shared := uuid.New()
	favOnly := uuid.New()
	histOnly := uuid.New()

	quotes := &fakeQuoteRepo{}
	profiles := &fakeProfileRepo{profile: &types.Profile{UserID: uuid.New()}}
	favorites := &fakeFavoriteRepo{quoteIDs: []uuid.UUID{shared, favOnly}}
	history := &fakeHistoryRepo{quoteIDs: []uuid.UUID{shared, histOnly}}
	svc := newTestFeedService(t, profiles, quotes, favorites, history)

	if _, err := svc.GetFeed(context.Background(), uuid.New(), "", 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quotes.lastFilter == nil {
		t.Fatal("candidate query never ran")
	}
	if len(quotes.lastFilter.ExcludeIDs) != 3 {
		t.Fatalf("expected 3 deduped exclusions, got %v", quotes.lastFilter.ExcludeIDs)
	}
	want := map[uuid.UUID]bool{shared: true, favOnly: true, histOnly: true}
	for _, id := range quotes.lastFilter.ExcludeIDs {
		if !want[id] {
			t.Fatalf("unexpected exclusion id %s", id)
		}
	}
}

func TestGetFeedExclusionFetchFailureIsBestEffort(t *testing.T) {
	t.Parallel()
	histOnly := uuid.New()

	quotes := &fakeQuoteRepo{}
	profiles := &fakeProfileRepo{profile: &types.Profile{UserID: uuid.New()}}
	favorites := &fakeFavoriteRepo{idsErr: errors.New("favorites table is on fire")}
	history := &fakeHistoryRepo{quoteIDs: []uuid.UUID{histOnly}}
	svc := newTestFeedService(t, profiles, quotes, favorites, history)

	if _, err := svc.GetFeed(context.Background(), uuid.New(), "", 10); err != nil {
		t.Fatalf("feed should survive a failed sub-fetch: %v", err)
	}
	if len(quotes.lastFilter.ExcludeIDs) != 1 || quotes.lastFilter.ExcludeIDs[0] != histOnly {
		t.Fatalf("expected history-only exclusions, got %v", quotes.lastFilter.ExcludeIDs)
	}
}

func TestGetFeedCategoryFilter(t *testing.T) {
	t.Parallel()
	calm := &types.Quote{Content: "calm", Categories: datatypes.NewJSONSlice([]string{"Calm"})}
	focus := &types.Quote{Content: "focus", Categories: datatypes.NewJSONSlice([]string{"Focus"})}

	quotes := &fakeQuoteRepo{candidates: []*types.Quote{calm, focus}}
	profiles := &fakeProfileRepo{profile: &types.Profile{UserID: uuid.New()}}
	svc := newTestFeedService(t, profiles, quotes, &fakeFavoriteRepo{}, &fakeHistoryRepo{})

	got, err := svc.GetFeed(context.Background(), uuid.New(), "calm", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Content != "calm" {
		t.Fatalf("category filter failed: %v", got)
	}
}

func TestGetFeedNoCategoryKeepsEverything(t *testing.T) {
	t.Parallel()
	calm := &types.Quote{Content: "calm", Categories: datatypes.NewJSONSlice([]string{"Calm"})}
	focus := &types.Quote{Content: "focus", Categories: datatypes.NewJSONSlice([]string{"Focus"})}

	quotes := &fakeQuoteRepo{candidates: []*types.Quote{calm, focus}}
	profiles := &fakeProfileRepo{profile: &types.Profile{UserID: uuid.New()}}
	svc := newTestFeedService(t, profiles, quotes, &fakeFavoriteRepo{}, &fakeHistoryRepo{})

	got, err := svc.GetFeed(context.Background(), uuid.New(), "", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both quotes with no category filter, got %d", len(got))
	}
}

func TestGetFeedFocusAreasConstrainPool(t *testing.T) {
	t.Parallel()
	onFocus := &types.Quote{Content: "on-focus", Categories: datatypes.NewJSONSlice([]string{"Anxiety & Stress"})}
	offFocus := &types.Quote{Content: "off-focus", Categories: datatypes.NewJSONSlice([]string{"Career Growth"})}

	quotes := &fakeQuoteRepo{candidates: []*types.Quote{onFocus, offFocus}}
	profiles := &fakeProfileRepo{profile: &types.Profile{
		UserID:     uuid.New(),
		FocusAreas: datatypes.NewJSONSlice([]string{"Anxiety & Stress"}),
	}}
	svc := newTestFeedService(t, profiles, quotes, &fakeFavoriteRepo{}, &fakeHistoryRepo{})

	got, err := svc.GetFeed(context.Background(), uuid.New(), "", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Content != "on-focus" {
		t.Fatalf("focus areas did not constrain the pool: %v", got)
	}
}

func TestGetFeedFocusAreasMatchCaseInsensitively(t *testing.T) {
	t.Parallel()
	quote := &types.Quote{Content: "match", Categories: datatypes.NewJSONSlice([]string{"anxiety & stress"})}

	quotes := &fakeQuoteRepo{candidates: []*types.Quote{quote}}
	profiles := &fakeProfileRepo{profile: &types.Profile{
		UserID:     uuid.New(),
		FocusAreas: datatypes.NewJSONSlice([]string{"Anxiety & Stress"}),
	}}
	svc := newTestFeedService(t, profiles, quotes, &fakeFavoriteRepo{}, &fakeHistoryRepo{})

	got, err := svc.GetFeed(context.Background(), uuid.New(), "", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("case difference should not exclude a focus-area match: %v", got)
	}
}

func TestGetFeedCategoryParamNarrowsWithinFocusAreas(t *testing.T) {
	t.Parallel()
	calm := &types.Quote{Content: "calm", Categories: datatypes.NewJSONSlice([]string{"Calm"})}
	focus := &types.Quote{Content: "focus", Categories: datatypes.NewJSONSlice([]string{"Focus"})}
	career := &types.Quote{Content: "career", Categories: datatypes.NewJSONSlice([]string{"Career Growth"})}

	quotes := &fakeQuoteRepo{candidates: []*types.Quote{calm, focus, career}}
	profiles := &fakeProfileRepo{profile: &types.Profile{
		UserID:     uuid.New(),
		FocusAreas: datatypes.NewJSONSlice([]string{"Calm", "Focus"}),
	}}
	svc := newTestFeedService(t, profiles, quotes, &fakeFavoriteRepo{}, &fakeHistoryRepo{})

	got, err := svc.GetFeed(context.Background(), uuid.New(), "focus", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Content != "focus" {
		t.Fatalf("category param should narrow inside the focus areas: %v", got)
	}
}

func TestGetFeedFavoritesFocusAreaTriggersShortcut(t *testing.T) {
	t.Parallel()
	saved := &types.Quote{ID: uuid.New(), Content: "saved"}
	favorites := &fakeFavoriteRepo{favorites: []*types.Favorite{{QuoteID: saved.ID, Quote: saved}}}
	quotes := &fakeQuoteRepo{candidates: []*types.Quote{{Content: "unrelated"}}}
	profiles := &fakeProfileRepo{profile: &types.Profile{
		UserID:     uuid.New(),
		FocusAreas: datatypes.NewJSONSlice([]string{"favorites"}),
	}}
	svc := newTestFeedService(t, profiles, quotes, favorites, &fakeHistoryRepo{})

	got, err := svc.GetFeed(context.Background(), uuid.New(), "", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Content != "saved" {
		t.Fatalf("favorites focus area should serve saved quotes: %v", got)
	}
	if quotes.lastFilter != nil {
		t.Fatal("favorites shortcut should not run candidate selection")
	}
}

func TestGetFeedFavoritesKeepStoredOrder(t *testing.T) {
	t.Parallel()
	first := &types.Quote{ID: uuid.New(), Content: "first"}
	second := &types.Quote{ID: uuid.New(), Content: "second"}
	third := &types.Quote{ID: uuid.New(), Content: "third"}
	favorites := &fakeFavoriteRepo{favorites: []*types.Favorite{
		{QuoteID: first.ID, Quote: first},
		{QuoteID: second.ID, Quote: second},
		{QuoteID: third.ID, Quote: third},
	}}
	profiles := &fakeProfileRepo{profile: &types.Profile{UserID: uuid.New()}}
	svc := newTestFeedService(t, profiles, &fakeQuoteRepo{}, favorites, &fakeHistoryRepo{})

	got, err := svc.GetFeed(context.Background(), uuid.New(), "favorites", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("unexpected pool size: got=%d want=%d", len(got), len(want))
	}
	for i, content := range want {
		if got[i].Content != content {
			t.Fatalf("favorites reordered at %d: got=%q want=%q", i, got[i].Content, content)
		}
	}
}

func TestGetFeedFavoritesShortcut(t *testing.T) {
	t.Parallel()
	saved := &types.Quote{ID: uuid.New(), Content: "saved"}
	favorites := &fakeFavoriteRepo{favorites: []*types.Favorite{{QuoteID: saved.ID, Quote: saved}}}
	quotes := &fakeQuoteRepo{candidates: []*types.Quote{{Content: "unrelated"}}}
	profiles := &fakeProfileRepo{profile: &types.Profile{UserID: uuid.New()}}
	svc := newTestFeedService(t, profiles, quotes, favorites, &fakeHistoryRepo{})

	got, err := svc.GetFeed(context.Background(), uuid.New(), "Favorites", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Content != "saved" {
		t.Fatalf("favorites shortcut returned wrong pool: %v", got)
	}
	if quotes.lastFilter != nil {
		t.Fatal("favorites shortcut should not run candidate selection")
	}
}

func TestGetFeedExhaustedPoolYieldsEmptyFeed(t *testing.T) {
	t.Parallel()
	quotes := &fakeQuoteRepo{}
	profiles := &fakeProfileRepo{profile: &types.Profile{UserID: uuid.New()}}
	svc := newTestFeedService(t, profiles, quotes, &fakeFavoriteRepo{}, &fakeHistoryRepo{})

	got, err := svc.GetFeed(context.Background(), uuid.New(), "", 10)
	if err != nil {
		t.Fatalf("empty pool must not error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty feed, got %d quotes", len(got))
	}
}

func TestGetFeedRespectsLimit(t *testing.T) {
	t.Parallel()
	candidates := make([]*types.Quote, 30)
	for i := range candidates {
		candidates[i] = &types.Quote{ID: uuid.New()}
	}
	quotes := &fakeQuoteRepo{candidates: candidates}
	profiles := &fakeProfileRepo{profile: &types.Profile{UserID: uuid.New()}}
	svc := newTestFeedService(t, profiles, quotes, &fakeFavoriteRepo{}, &fakeHistoryRepo{})

	got, err := svc.GetFeed(context.Background(), uuid.New(), "", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("limit ignored: got=%d want=5", len(got))
	}
}
