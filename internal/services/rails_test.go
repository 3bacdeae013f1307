package services

import (
	"fmt"
	"testing"

	"github.com/clowiiza1/pukkeconnect-backend/internal/config"
)

func rankedWithCategories(cats ...string) []ScoredCandidate {
	out := make([]ScoredCandidate, len(cats))
	for i, c := range cats {
		sc := ScoredCandidate{Candidate: Candidate{SocietyID: uint(i + 1), Name: fmt.Sprintf("S%d", i+1)}}
		if c != "" {
			cat := c
			sc.Category = &cat
		}
		out[i] = sc
	}
	return out
}

func names(items []ScoredCandidate) []string {
	out := make([]string, len(items))
	for i, c := range items {
		out[i] = c.Name
	}
	return out
}

func TestDiversify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cats        []string
		limit       int
		perCategory int
		want        []string
	}{
		{
			name: "cap holds when enough variety",
			cats: []string{"A", "A", "A", "B", "A", "C"}, limit: 3, perCategory: 1,
			want: []string{"S1", "S4", "S6"},
		},
		{
			name: "second pass fills in rank order",
			cats: []string{"A", "A", "A", "B", "A", "C"}, limit: 5, perCategory: 1,
			want: []string{"S1", "S4", "S6", "S2", "S3"},
		},
		{
			name: "per category two",
			cats: []string{"A", "A", "A", "A", "B", "B"}, limit: 6, perCategory: 2,
			want: []string{"S1", "S2", "S5", "S6", "S3", "S4"},
		},
		{
			name: "missing category shares one bucket",
			cats: []string{"", "", "", "X"}, limit: 3, perCategory: 2,
			want: []string{"S1", "S2", "S4"},
		},
		{
			name: "limit above total returns everything",
			cats: []string{"A", "A"}, limit: 10, perCategory: 1,
			want: []string{"S1", "S2"},
		},
		{
			name: "empty input",
			cats: nil, limit: 5, perCategory: 3,
			want: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := names(Diversify(rankedWithCategories(tt.cats...), tt.limit, tt.perCategory))
			if !equalStrings(got, tt.want) {
				t.Errorf("Diversify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiversifyFirstPassCap(t *testing.T) {
	t.Parallel()
	cats := []string{"A", "B", "A", "A", "B", "C", "A", "B", "B", "C"}
	for per := 1; per <= 3; per++ {
		for limit := 1; limit <= len(cats)+2; limit++ {
			got := Diversify(rankedWithCategories(cats...), limit, per)
			want := limit
			if want > len(cats) {
				want = len(cats)
			}
			if len(got) != want {
				t.Fatalf("per=%d limit=%d: len = %d, want %d", per, limit, len(got), want)
			}

			capacity := 0
			for _, n := range categoryCounts(cats) {
				if n > per {
					n = per
				}
				capacity += n
			}
			if limit > capacity {
				continue
			}
			for k, n := range categoryCountsOf(got) {
				if n > per {
					t.Errorf("per=%d limit=%d: category %s admitted %d times", per, limit, k, n)
				}
			}
		}
	}
}

func categoryCounts(cats []string) map[string]int {
	out := map[string]int{}
	for _, c := range cats {
		out[c]++
	}
	return out
}

func categoryCountsOf(items []ScoredCandidate) map[string]int {
	out := map[string]int{}
	for _, c := range items {
		out[categoryKey(c)]++
	}
	return out
}

func cardWithMatch(id uint, cat string, interestID uint, interest string, combined, freshness float64) ScoredCandidate {
	sc := ScoredCandidate{Candidate: Candidate{SocietyID: id, Name: fmt.Sprintf("S%d", id), Freshness: freshness}}
	if cat != "" {
		sc.Category = &cat
	}
	if interest != "" {
		sc.InterestMatches = []InterestMatch{{InterestID: interestID, Name: interest, Combined: combined}}
	}
	return sc
}

func TestComposeRails(t *testing.T) {
	t.Parallel()
	composer := NewRailComposer(config.DefaultRecommendConfig())

	ranked := []ScoredCandidate{
		cardWithMatch(1, "Tech", 1, "Coding", 30, 0),
		cardWithMatch(2, "Tech", 1, "Coding", 20, 5),
		cardWithMatch(3, "Tech", 1, "Coding", 20, 0),
		cardWithMatch(4, "Sport", 2, "Soccer", 25, 0),
		cardWithMatch(5, "Arts", 0, "", 0, 1),
	}
	ranked[0].CampusMatch = true
	ranked[1].FreshnessNorm = 1

	rails := composer.Compose(ranked, 4, NewSeededRandom("x"))
	if len(rails) != 3 {
		t.Fatalf("rails = %d (%+v), want 3", len(rails), rails)
	}

	top := rails[0]
	if top.Title != RailTopPicks {
		t.Errorf("rail 0 = %q, want %q", top.Title, RailTopPicks)
	}
	if want := []string{"S1", "S2", "S3", "S4"}; !equalStrings(names(top.Items), want) {
		t.Errorf("top picks = %v, want %v", names(top.Items), want)
	}
	if want := []string{"4 shared interests", "1 on your campus", "1 fresh this week"}; !equalStrings(top.Reasons, want) {
		t.Errorf("top reasons = %v, want %v", top.Reasons, want)
	}

	liked := rails[1]
	if liked.Title != "Because you liked Coding" || liked.ReasonTag != "Coding" {
		t.Errorf("rail 1 = %q / %q", liked.Title, liked.ReasonTag)
	}
	// secondary limit is max(ceil(4/2), 6) = 6, and only three societies match
	if want := []string{"S1", "S2", "S3"}; !equalStrings(names(liked.Items), want) {
		t.Errorf("because-you-liked = %v, want %v", names(liked.Items), want)
	}

	fresh := rails[2]
	if fresh.Title != RailFresh || fresh.ReasonTag != "fresh" {
		t.Errorf("rail 2 = %q / %q", fresh.Title, fresh.ReasonTag)
	}
	if want := []string{"S2", "S5"}; !equalStrings(names(fresh.Items), want) {
		t.Errorf("fresh = %v, want %v", names(fresh.Items), want)
	}
}

func TestComposeRailsPopularFallback(t *testing.T) {
	t.Parallel()
	composer := NewRailComposer(config.DefaultRecommendConfig())

	ranked := rankedWithCategories("A", "B", "C")
	ranked[0].Popularity = 1
	ranked[1].Popularity = 9
	ranked[2].Popularity = 9
	ranked[1].FinalScore = 2
	ranked[2].FinalScore = 3

	rails := composer.Compose(ranked, 20, NewSeededRandom("x"))
	if len(rails) != 2 {
		t.Fatalf("rails = %+v, want Top Picks and Popular", rails)
	}
	if rails[1].Title != RailPopular || rails[1].ReasonTag != "popular" {
		t.Errorf("rail 1 = %q / %q", rails[1].Title, rails[1].ReasonTag)
	}
	if want := []string{"S3", "S2", "S1"}; !equalStrings(names(rails[1].Items), want) {
		t.Errorf("popular = %v, want %v", names(rails[1].Items), want)
	}
}

func TestComposeRailsEmpty(t *testing.T) {
	t.Parallel()
	rails := NewRailComposer(config.DefaultRecommendConfig()).Compose(nil, 20, NewSeededRandom("x"))
	if rails == nil || len(rails) != 0 {
		t.Errorf("Compose(nil) = %#v, want empty non-nil slice", rails)
	}
}

func TestSecondaryLimit(t *testing.T) {
	t.Parallel()
	composer := NewRailComposer(config.DefaultRecommendConfig())
	tests := []struct{ limit, want int }{
		{1, 6}, {4, 6}, {11, 6}, {12, 6}, {13, 7}, {20, 10}, {50, 25},
	}
	for _, tt := range tests {
		if got := composer.secondaryLimit(tt.limit); got != tt.want {
			t.Errorf("secondaryLimit(%d) = %d, want %d", tt.limit, got, tt.want)
		}
	}
}

func TestBecauseYouLikedTieBreaks(t *testing.T) {
	t.Parallel()
	composer := NewRailComposer(config.DefaultRecommendConfig())

	// equal totals, Soccer has more matching societies
	ranked := []ScoredCandidate{
		cardWithMatch(1, "", 1, "Coding", 20, 0),
		cardWithMatch(2, "", 2, "Soccer", 10, 0),
		cardWithMatch(3, "", 2, "Soccer", 10, 0),
	}
	rail := composer.becauseYouLiked(ranked, 6, NewSeededRandom("x"))
	if rail == nil || rail.ReasonTag != "Soccer" {
		t.Fatalf("rail = %+v, want Soccer", rail)
	}

	// full tie is settled by the seeded draw and is repeatable
	tied := []ScoredCandidate{
		cardWithMatch(1, "", 1, "Coding", 10, 0),
		cardWithMatch(2, "", 2, "Soccer", 10, 0),
	}
	a := composer.becauseYouLiked(tied, 6, NewSeededRandom("same"))
	b := composer.becauseYouLiked(tied, 6, NewSeededRandom("same"))
	if a.ReasonTag != b.ReasonTag {
		t.Errorf("tie resolved to %s then %s with the same seed", a.ReasonTag, b.ReasonTag)
	}

	if composer.becauseYouLiked(rankedWithCategories("A"), 6, NewSeededRandom("x")) != nil {
		t.Error("rail built without any interest matches")
	}
}
