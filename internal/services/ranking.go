package services

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/yungbote/clarity-backend/internal/types"
)

const (
	toneMatchScore     = 15.0
	struggleMatchScore = 15.0
	categoryMatchScore = 10.0
)

// RankedQuote pairs a quote with its computed score so callers can inspect
// the ordering; the feed only serves the quotes themselves.
type RankedQuote struct {
	Quote *types.Quote
	Score float64
}

// BaseScore is the deterministic part of a quote's rank for a profile:
// tone match and struggle match are flat bonuses, category overlap scales
// with how many focus areas the quote hits.
func BaseScore(quote *types.Quote, profile *types.Profile) float64 {
	if quote == nil || profile == nil {
		return 0
	}
	score := 0.0
	if profile.Tone != "" && strings.EqualFold(quote.Vibe, profile.Tone) {
		score += toneMatchScore
	}
	if anyOverlapFold(quote.Tags, profile.Struggles) {
		score += struggleMatchScore
	}
	score += categoryMatchScore * float64(overlapCountFold(quote.Categories, profile.FocusAreas))
	return score
}

// RankQuotes orders candidates best-first. Each score carries a random
// component in [0,1) so equally-scored quotes rotate between requests
// instead of always surfacing in insertion order.
func RankQuotes(candidates []*types.Quote, profile *types.Profile, rng *rand.Rand) []RankedQuote {
	ranked := make([]RankedQuote, 0, len(candidates))
	for _, quote := range candidates {
		ranked = append(ranked, RankedQuote{
			Quote: quote,
			Score: BaseScore(quote, profile) + rng.Float64(),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

func anyOverlapFold(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(b))
	for _, item := range b {
		set[strings.ToLower(item)] = struct{}{}
	}
	for _, item := range a {
		if _, ok := set[strings.ToLower(item)]; ok {
			return true
		}
	}
	return false
}

func overlapCountFold(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(b))
	for _, item := range b {
		set[strings.ToLower(item)] = struct{}{}
	}
	count := 0
	for _, item := range a {
		if _, ok := set[strings.ToLower(item)]; ok {
			count++
		}
	}
	return count
}
