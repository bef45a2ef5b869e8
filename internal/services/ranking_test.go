package services

import (
	"math/rand"
	"testing"

	"gorm.io/datatypes"

	"github.com/yungbote/clarity-backend/internal/types"
)

func testProfile() *types.Profile {
	return &types.Profile{
		Tone:       "gentle",
		Struggles:  datatypes.NewJSONSlice([]string{"anxiety", "sleep"}),
		FocusAreas: datatypes.NewJSONSlice([]string{"confidence", "gratitude"}),
	}
}

func TestBaseScoreComponents(t *testing.T) {
	t.Parallel()
	profile := testProfile()

	cases := []struct {
		name  string
		quote *types.Quote
		want  float64
	}{
		{
			name:  "no match",
			quote: &types.Quote{Vibe: "bold", Tags: datatypes.NewJSONSlice([]string{"focus"})},
			want:  0,
		},
		{
			name:  "tone match only",
			quote: &types.Quote{Vibe: "gentle"},
			want:  15,
		},
		{
			name:  "tone match is case insensitive",
			quote: &types.Quote{Vibe: "Gentle"},
			want:  15,
		},
		{
			name:  "struggle match only",
			quote: &types.Quote{Vibe: "bold", Tags: datatypes.NewJSONSlice([]string{"sleep"})},
			want:  15,
		},
		{
			name:  "single category overlap",
			quote: &types.Quote{Vibe: "bold", Categories: datatypes.NewJSONSlice([]string{"confidence"})},
			want:  10,
		},
		{
			name: "category overlap scales with count",
			quote: &types.Quote{
				Vibe:       "bold",
				Categories: datatypes.NewJSONSlice([]string{"confidence", "gratitude"}),
			},
			want: 20,
		},
		{
			name: "all components stack",
			quote: &types.Quote{
				Vibe:       "gentle",
				Tags:       datatypes.NewJSONSlice([]string{"anxiety"}),
				Categories: datatypes.NewJSONSlice([]string{"confidence", "gratitude"}),
			},
			want: 50,
		},
		{
			name: "multiple struggle matches still one bonus",
			quote: &types.Quote{
				Vibe: "bold",
				Tags: datatypes.NewJSONSlice([]string{"anxiety", "sleep"}),
			},
			want: 15,
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := BaseScore(tc.quote, profile); got != tc.want {
				t.Fatalf("unexpected score: got=%v want=%v", got, tc.want)
			}
		})
	}
}

func TestRankQuotesOrdersByScore(t *testing.T) {
	t.Parallel()
	profile := testProfile()

	strong := &types.Quote{
		Content:    "strong",
		Vibe:       "gentle",
		Tags:       datatypes.NewJSONSlice([]string{"anxiety"}),
		Categories: datatypes.NewJSONSlice([]string{"confidence"}),
	}
	weak := &types.Quote{Content: "weak", Vibe: "bold"}

	// The random component is bounded by [0,1), so a 40-point gap can
	// never invert the order regardless of seed.
	for seed := int64(0); seed < 20; seed++ {
		ranked := RankQuotes([]*types.Quote{weak, strong}, profile, rand.New(rand.NewSource(seed)))
		if len(ranked) != 2 {
			t.Fatalf("unexpected result length: got=%d want=2", len(ranked))
		}
		if ranked[0].Quote.Content != "strong" {
			t.Fatalf("seed %d: strong quote not ranked first", seed)
		}
	}
}

func TestRankQuotesTieBreakVaries(t *testing.T) {
	t.Parallel()
	profile := testProfile()
	a := &types.Quote{Content: "a"}
	b := &types.Quote{Content: "b"}

	firsts := map[string]bool{}
	for seed := int64(0); seed < 50; seed++ {
		ranked := RankQuotes([]*types.Quote{a, b}, profile, rand.New(rand.NewSource(seed)))
		firsts[ranked[0].Quote.Content] = true
	}
	if len(firsts) != 2 {
		t.Fatalf("equally scored quotes never rotated: %v", firsts)
	}
}

func TestRankQuotesEmptyInput(t *testing.T) {
	t.Parallel()
	ranked := RankQuotes(nil, testProfile(), rand.New(rand.NewSource(1)))
	if len(ranked) != 0 {
		t.Fatalf("expected empty ranking, got %d entries", len(ranked))
	}
}
