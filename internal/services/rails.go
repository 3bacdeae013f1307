package services

import (
	"fmt"
	"sort"

	"github.com/clowiiza1/pukkeconnect-backend/internal/config"
)

const (
	uncategorised = "uncategorised"

	RailTopPicks = "Top Picks for You"
	RailPopular  = "Popular right now"
	RailFresh    = "Fresh this week"

	freshNormThreshold = 0.3
)

type Rail struct {
	Title     string
	Items     []ScoredCandidate
	Reasons   []string
	ReasonTag string
}

func categoryKey(c ScoredCandidate) string {
	if c.Category == nil || *c.Category == "" {
		return uncategorised
	}
	return *c.Category
}

// Diversify walks ranked in order admitting at most perCategory items per
// category. If that leaves fewer than limit items, a second pass fills the
// remaining slots from the skipped candidates in rank order.
func Diversify(ranked []ScoredCandidate, limit, perCategory int) []ScoredCandidate {
	if limit <= 0 || len(ranked) == 0 {
		return []ScoredCandidate{}
	}
	picked := make([]bool, len(ranked))
	counts := make(map[string]int)
	out := make([]ScoredCandidate, 0, min(limit, len(ranked)))

	for i, c := range ranked {
		if len(out) == limit {
			break
		}
		key := categoryKey(c)
		if counts[key] >= perCategory {
			continue
		}
		counts[key]++
		picked[i] = true
		out = append(out, c)
	}

	for i, c := range ranked {
		if len(out) == limit {
			break
		}
		if !picked[i] {
			picked[i] = true
			out = append(out, c)
		}
	}
	return out
}

type RailComposer struct {
	cfg config.RecommendConfig
}

func NewRailComposer(cfg config.RecommendConfig) *RailComposer {
	return &RailComposer{cfg: cfg}
}

func (r *RailComposer) secondaryLimit(limit int) int {
	half := (limit + 1) / 2
	if half < r.cfg.SecondaryMinLimit {
		return r.cfg.SecondaryMinLimit
	}
	return half
}

// Compose builds the rails in fixed order and drops the empty ones.
func (r *RailComposer) Compose(ranked []ScoredCandidate, limit int, next func() float64) []Rail {
	rails := []Rail{}
	if len(ranked) == 0 {
		return rails
	}
	secondary := r.secondaryLimit(limit)

	top := Diversify(ranked, limit, r.cfg.TopPicksPerCategory)
	if len(top) > 0 {
		rails = append(rails, Rail{Title: RailTopPicks, Items: top, Reasons: topPickReasons(top)})
	}

	liked := r.becauseYouLiked(ranked, secondary, next)
	if liked != nil {
		rails = append(rails, *liked)
	} else if popular := popularRail(ranked, secondary); len(popular) > 0 {
		rails = append(rails, Rail{Title: RailPopular, Items: popular, ReasonTag: "popular"})
	}

	var fresh []ScoredCandidate
	for _, c := range ranked {
		if c.Freshness > 0 || c.FreshnessNorm >= freshNormThreshold {
			fresh = append(fresh, c)
		}
	}
	if items := Diversify(fresh, secondary, r.cfg.SecondaryPerCategory); len(items) > 0 {
		rails = append(rails, Rail{Title: RailFresh, Items: items, ReasonTag: "fresh"})
	}
	return rails
}

type interestTotal struct {
	id     uint
	name   string
	total  float64
	count  int
	jitter float64
}

func (r *RailComposer) becauseYouLiked(ranked []ScoredCandidate, limit int, next func() float64) *Rail {
	totals := make(map[uint]*interestTotal)
	for _, c := range ranked {
		for _, m := range c.InterestMatches {
			t, ok := totals[m.InterestID]
			if !ok {
				t = &interestTotal{id: m.InterestID, name: m.Name}
				totals[m.InterestID] = t
			}
			t.total += m.Combined
			t.count++
		}
	}
	if len(totals) == 0 {
		return nil
	}

	list := make([]*interestTotal, 0, len(totals))
	for _, t := range totals {
		list = append(list, t)
	}
	sort.Slice(list, func(a, b int) bool { return list[a].id < list[b].id })
	for _, t := range list {
		t.jitter = next()
	}
	sort.SliceStable(list, func(a, b int) bool {
		if list[a].total != list[b].total {
			return list[a].total > list[b].total
		}
		if list[a].count != list[b].count {
			return list[a].count > list[b].count
		}
		return list[a].jitter > list[b].jitter
	})
	best := list[0]

	var matching []ScoredCandidate
	for _, c := range ranked {
		for _, m := range c.InterestMatches {
			if m.InterestID == best.id {
				matching = append(matching, c)
				break
			}
		}
	}
	items := Diversify(matching, limit, r.cfg.SecondaryPerCategory)
	if len(items) == 0 {
		return nil
	}
	return &Rail{
		Title:     fmt.Sprintf("Because you liked %s", best.name),
		Items:     items,
		ReasonTag: best.name,
	}
}

func popularRail(ranked []ScoredCandidate, limit int) []ScoredCandidate {
	sorted := make([]ScoredCandidate, len(ranked))
	copy(sorted, ranked)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Popularity != sorted[b].Popularity {
			return sorted[a].Popularity > sorted[b].Popularity
		}
		if sorted[a].FinalScore != sorted[b].FinalScore {
			return sorted[a].FinalScore > sorted[b].FinalScore
		}
		return sorted[a].TieBreak > sorted[b].TieBreak
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func topPickReasons(picks []ScoredCandidate) []string {
	var matches, campus, fresh int
	for _, p := range picks {
		matches += len(p.InterestMatches)
		if p.CampusMatch {
			campus++
		}
		if p.FreshnessNorm >= pillThreshold {
			fresh++
		}
	}
	reasons := []string{}
	if matches > 0 {
		reasons = append(reasons, fmt.Sprintf("%d shared interests", matches))
	}
	if campus > 0 {
		reasons = append(reasons, fmt.Sprintf("%d on your campus", campus))
	}
	if fresh > 0 {
		reasons = append(reasons, fmt.Sprintf("%d fresh this week", fresh))
	}
	return reasons
}
