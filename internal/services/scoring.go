package services

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/clowiiza1/pukkeconnect-backend/internal/config"
)

// Candidate is a society with the raw signals gathered for one request.
type Candidate struct {
	SocietyID   uint
	Name        string
	Category    *string
	Campus      *string
	Description *string
	// BaseScore is the sum over shared interests of student weight times
	// society weight.
	BaseScore   float64
	Popularity  float64
	Freshness   float64
	NextEventAt *time.Time
	Dismissals  int
}

type InterestMatch struct {
	InterestID    uint
	Name          string
	StudentWeight float64
	SocietyWeight float64
	Combined      float64
}

type SocietyInterestEdge struct {
	InterestID uint
	Weight     float64
}

type ScoredCandidate struct {
	Candidate
	InterestMatches []InterestMatch
	CampusMatch     bool
	UpcomingSlot    string
	FinalScore      float64
	InterestNorm    float64
	PopularityNorm  float64
	FreshnessNorm   float64
	MatchScore      float64
	ReasonPills     []string
	InterestTags    []string
	TieBreak        float64
}

type ScoringInput struct {
	StudentInterests map[uint]InterestWeight
	StudentCampus    string
	Candidates       []Candidate
	// SocietyInterests maps society id to its interest edges.
	SocietyInterests map[uint][]SocietyInterestEdge
}

const (
	maxReasonPills  = 3
	maxInterestTags = 5
	pillThreshold   = 0.7
)

type ScoringService struct {
	cfg config.RecommendConfig
	loc *time.Location
}

func NewScoringService(cfg config.RecommendConfig, loc *time.Location) *ScoringService {
	if loc == nil {
		loc = time.UTC
	}
	return &ScoringService{cfg: cfg, loc: loc}
}

// Score enriches, scores and ranks the candidates. Ranking is by FinalScore
// descending, then by one draw from next per candidate, drawn in society id
// order.
func (s *ScoringService) Score(in ScoringInput, next func() float64) []ScoredCandidate {
	candidates := make([]Candidate, len(in.Candidates))
	copy(candidates, in.Candidates)
	sort.Slice(candidates, func(a, b int) bool {
		return candidates[a].SocietyID < candidates[b].SocietyID
	})

	scored := make([]ScoredCandidate, 0, len(candidates))
	var maxInterest, maxPop, maxFresh, maxFinal float64

	for _, c := range candidates {
		sc := ScoredCandidate{Candidate: c}
		sc.InterestMatches = matchInterests(in.StudentInterests, in.SocietyInterests[c.SocietyID])
		sc.CampusMatch = in.StudentCampus != "" && c.Campus != nil &&
			strings.EqualFold(strings.TrimSpace(*c.Campus), strings.TrimSpace(in.StudentCampus))
		if c.NextEventAt != nil {
			sc.UpcomingSlot = upcomingSlot(c.NextEventAt.In(s.loc))
		}
		sc.FinalScore = s.finalScore(sc)
		sc.TieBreak = next()

		maxInterest = math.Max(maxInterest, c.BaseScore)
		maxPop = math.Max(maxPop, c.Popularity)
		maxFresh = math.Max(maxFresh, c.Freshness)
		maxFinal = math.Max(maxFinal, sc.FinalScore)
		scored = append(scored, sc)
	}

	for i := range scored {
		sc := &scored[i]
		sc.InterestNorm = normalize(sc.BaseScore, maxInterest)
		sc.PopularityNorm = normalize(sc.Popularity, maxPop)
		sc.FreshnessNorm = normalize(sc.Freshness, maxFresh)
		sc.MatchScore = math.Round(normalize(sc.FinalScore, maxFinal)*1000) / 1000
		sc.ReasonPills = reasonPills(*sc)
		sc.InterestTags = interestTags(sc.InterestMatches)
	}

	sort.SliceStable(scored, func(a, b int) bool {
		if scored[a].FinalScore != scored[b].FinalScore {
			return scored[a].FinalScore > scored[b].FinalScore
		}
		return scored[a].TieBreak > scored[b].TieBreak
	})
	return scored
}

func (s *ScoringService) finalScore(sc ScoredCandidate) float64 {
	score := sc.BaseScore
	score += sc.Popularity * s.cfg.PopularityWeight
	score += sc.Freshness * s.cfg.FreshnessWeight
	if sc.CampusMatch {
		score += s.cfg.CampusBonus
	}
	for _, m := range sc.InterestMatches {
		score += m.Combined * s.cfg.InterestBonus
	}
	if sc.UpcomingSlot != "" {
		score += s.cfg.UpcomingBonus
	}
	score -= float64(sc.Dismissals) * s.cfg.DismissPenalty
	return math.Max(score, 0)
}

func matchInterests(student map[uint]InterestWeight, society []SocietyInterestEdge) []InterestMatch {
	matches := []InterestMatch{}
	for _, e := range society {
		st, ok := student[e.InterestID]
		if !ok {
			continue
		}
		matches = append(matches, InterestMatch{
			InterestID:    e.InterestID,
			Name:          st.Name,
			StudentWeight: st.Weight,
			SocietyWeight: e.Weight,
			Combined:      st.Weight * e.Weight,
		})
	}
	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].Combined != matches[b].Combined {
			return matches[a].Combined > matches[b].Combined
		}
		return matches[a].Name < matches[b].Name
	})
	return matches
}

func upcomingSlot(t time.Time) string {
	part := "evenings"
	switch h := t.Hour(); {
	case h < 12:
		part = "mornings"
	case h < 17:
		part = "afternoons"
	}
	return t.Weekday().String() + " " + part
}

func normalize(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return v / max
}

func reasonPills(sc ScoredCandidate) []string {
	var candidates []string
	for i, m := range sc.InterestMatches {
		if i == 2 {
			break
		}
		candidates = append(candidates, m.Name)
	}
	if sc.CampusMatch {
		candidates = append(candidates, "On your campus")
	}
	if sc.UpcomingSlot != "" {
		candidates = append(candidates, sc.UpcomingSlot)
	}
	if sc.FreshnessNorm >= pillThreshold {
		candidates = append(candidates, "Fresh this week")
	}
	if sc.PopularityNorm >= pillThreshold {
		candidates = append(candidates, "Popular pick")
	}

	pills := []string{}
	seen := make(map[string]bool)
	for _, p := range candidates {
		if len(pills) == maxReasonPills {
			break
		}
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		pills = append(pills, p)
	}
	return pills
}

func interestTags(matches []InterestMatch) []string {
	tags := []string{}
	for _, m := range matches {
		if len(tags) == maxInterestTags {
			break
		}
		tags = append(tags, m.Name)
	}
	return tags
}
