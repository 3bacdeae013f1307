package services

import (
	"context"
	"fmt"
	"time"

	"github.com/clowiiza1/pukkeconnect-backend/internal/config"
	"github.com/clowiiza1/pukkeconnect-backend/internal/metrics"

	"github.com/rs/zerolog"
)

type SocietySignal struct {
	Popularity float64
	Freshness  float64
}

// RecommendationStore supplies the signals the scorer reads. Every method is
// a bulk query so one request costs a fixed number of round trips.
type RecommendationStore interface {
	StudentInterests(ctx context.Context, studentID string) (map[uint]InterestWeight, error)
	// BaseMatches returns, per society, the sum of student weight times
	// society weight over shared interests.
	BaseMatches(ctx context.Context, studentID string) (map[uint]float64, error)
	CandidateSocieties(ctx context.Context, limit int) ([]Candidate, error)
	SocietyInterestEdges(ctx context.Context, societyIDs []uint) (map[uint][]SocietyInterestEdge, error)
	SocietySignals(ctx context.Context, societyIDs []uint) (map[uint]SocietySignal, error)
	NextEvents(ctx context.Context, societyIDs []uint, after time.Time) (map[uint]time.Time, error)
	DismissalCounts(ctx context.Context, studentID string) (map[uint]int, error)
}

type RecommendationRequest struct {
	StudentID string
	Campus    string
	// Limit of 0 means the configured default.
	Limit int
	// Seed of "" means "{StudentID}-default".
	Seed string
}

type RecommendationService struct {
	store    RecommendationStore
	scorer   *ScoringService
	composer *RailComposer
	cfg      config.RecommendConfig
	logger   zerolog.Logger
	now      func() time.Time
}

func NewRecommendationService(store RecommendationStore, cfg config.RecommendConfig, loc *time.Location, logger zerolog.Logger) *RecommendationService {
	return &RecommendationService{
		store:    store,
		scorer:   NewScoringService(cfg, loc),
		composer: NewRailComposer(cfg),
		cfg:      cfg,
		logger:   logger.With().Str("component", "recommend").Logger(),
		now:      time.Now,
	}
}

// Recommend scores every candidate society for the student and composes the
// rails. A student with no interest edges gets no rails at all.
func (s *RecommendationService) Recommend(ctx context.Context, req RecommendationRequest) ([]Rail, error) {
	start := time.Now()
	defer func() {
		metrics.RecommendationDuration.Observe(time.Since(start).Seconds())
	}()

	limit := req.Limit
	if limit == 0 {
		limit = s.cfg.DefaultLimit
	}
	if limit < 1 || limit > s.cfg.MaxLimit {
		return nil, validationErrorf(fmt.Sprintf("limit must be between 1 and %d", s.cfg.MaxLimit))
	}
	seed := req.Seed
	if seed == "" {
		seed = req.StudentID + "-default"
	}

	interests, err := s.store.StudentInterests(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("load student interests: %w", err)
	}
	if len(interests) == 0 {
		return []Rail{}, nil
	}
	base, err := s.store.BaseMatches(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("load base matches: %w", err)
	}
	if len(base) == 0 {
		return []Rail{}, nil
	}

	candidates, err := s.store.CandidateSocieties(ctx, s.cfg.MaxCandidates)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	if len(candidates) == 0 {
		return []Rail{}, nil
	}
	ids := make([]uint, len(candidates))
	for i, c := range candidates {
		ids[i] = c.SocietyID
	}

	edges, err := s.store.SocietyInterestEdges(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load society interests: %w", err)
	}
	signals, err := s.store.SocietySignals(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load society scores: %w", err)
	}
	events, err := s.store.NextEvents(ctx, ids, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("load upcoming events: %w", err)
	}
	dismissals, err := s.store.DismissalCounts(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("load dismissals: %w", err)
	}

	for i := range candidates {
		c := &candidates[i]
		c.BaseScore = base[c.SocietyID]
		sig := signals[c.SocietyID]
		c.Popularity = sig.Popularity
		c.Freshness = sig.Freshness
		if at, ok := events[c.SocietyID]; ok {
			at := at
			c.NextEventAt = &at
		}
		c.Dismissals = dismissals[c.SocietyID]
	}

	next := NewSeededRandom(seed)
	ranked := s.scorer.Score(ScoringInput{
		StudentInterests: interests,
		StudentCampus:    req.Campus,
		Candidates:       candidates,
		SocietyInterests: edges,
	}, next)
	rails := s.composer.Compose(ranked, limit, next)

	for _, r := range rails {
		metrics.RailItems.WithLabelValues(railLabel(r)).Observe(float64(len(r.Items)))
	}
	s.logger.Debug().
		Str("student_id", req.StudentID).
		Int("candidates", len(candidates)).
		Int("rails", len(rails)).
		Dur("took", time.Since(start)).
		Msg("recommendations composed")
	return rails, nil
}

func railLabel(r Rail) string {
	switch r.Title {
	case RailTopPicks:
		return "top_picks"
	case RailPopular:
		return "popular"
	case RailFresh:
		return "fresh"
	default:
		return "because_you_liked"
	}
}
