package services

import (
	"context"
	"strconv"
	"time"

	"github.com/clowiiza1/pukkeconnect-backend/internal/database"
	"github.com/clowiiza1/pukkeconnect-backend/internal/models"

	"gorm.io/gorm"
)

// GormRecommendationStore reads recommendation signals from the relational schema.
type GormRecommendationStore struct {
	db   *gorm.DB
	caps database.Capabilities
}

func NewGormRecommendationStore(db *gorm.DB, caps database.Capabilities) *GormRecommendationStore {
	return &GormRecommendationStore{db: db, caps: caps}
}

func (s *GormRecommendationStore) StudentInterests(ctx context.Context, studentID string) (map[uint]InterestWeight, error) {
	return interestGraph{s.db.WithContext(ctx)}.studentInterests(studentID)
}

func (s *GormRecommendationStore) BaseMatches(ctx context.Context, studentID string) (map[uint]float64, error) {
	var rows []struct {
		SocietyID uint
		Score     float64
	}
	err := s.db.WithContext(ctx).
		Table("society_interests AS si").
		Select("si.society_id AS society_id, SUM(st.weight * si.weight) AS score").
		Joins("JOIN student_interests AS st ON st.interest_id = si.interest_id").
		Where("st.student_id = ?", studentID).
		Group("si.society_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uint]float64, len(rows))
	for _, r := range rows {
		out[r.SocietyID] = r.Score
	}
	return out, nil
}

func (s *GormRecommendationStore) CandidateSocieties(ctx context.Context, limit int) ([]Candidate, error) {
	columns := []string{"id", "name", "description", "category"}
	if s.caps.SocietyCampus {
		columns = append(columns, "campus")
	}

	var societies []models.Society
	err := s.db.WithContext(ctx).
		Select(columns).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&societies).Error
	if err != nil {
		return nil, err
	}

	out := make([]Candidate, len(societies))
	for i, soc := range societies {
		out[i] = Candidate{
			SocietyID:   soc.ID,
			Name:        soc.Name,
			Category:    soc.Category,
			Campus:      soc.Campus,
			Description: soc.Description,
		}
	}
	return out, nil
}

func (s *GormRecommendationStore) SocietyInterestEdges(ctx context.Context, societyIDs []uint) (map[uint][]SocietyInterestEdge, error) {
	out := make(map[uint][]SocietyInterestEdge)
	if len(societyIDs) == 0 {
		return out, nil
	}
	var rows []models.SocietyInterest
	if err := s.db.WithContext(ctx).Where("society_id IN ?", societyIDs).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.SocietyID] = append(out[r.SocietyID], SocietyInterestEdge{InterestID: r.InterestID, Weight: r.Weight})
	}
	return out, nil
}

func (s *GormRecommendationStore) SocietySignals(ctx context.Context, societyIDs []uint) (map[uint]SocietySignal, error) {
	out := make(map[uint]SocietySignal)
	if len(societyIDs) == 0 {
		return out, nil
	}
	var rows []models.SocietyScore
	if err := s.db.WithContext(ctx).Where("society_id IN ?", societyIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.SocietyID] = SocietySignal{Popularity: r.PopularityScore, Freshness: r.FreshnessScore}
	}
	return out, nil
}

func (s *GormRecommendationStore) NextEvents(ctx context.Context, societyIDs []uint, after time.Time) (map[uint]time.Time, error) {
	out := make(map[uint]time.Time)
	if len(societyIDs) == 0 {
		return out, nil
	}
	var events []models.Event
	err := s.db.WithContext(ctx).
		Select("society_id", "starts_at").
		Where("society_id IN ? AND starts_at > ?", societyIDs, after).
		Order("starts_at ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		if _, ok := out[e.SocietyID]; !ok {
			out[e.SocietyID] = e.StartsAt
		}
	}
	return out, nil
}

func (s *GormRecommendationStore) DismissalCounts(ctx context.Context, studentID string) (map[uint]int, error) {
	var rows []struct {
		EntityID string
		N        int
	}
	err := s.db.WithContext(ctx).
		Model(&models.RecommendationEvent{}).
		Select("entity_id, COUNT(*) AS n").
		Where("student_id = ? AND event = ? AND entity_type = ?", studentID, models.RecommendationEventDismiss, "society").
		Group("entity_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uint]int, len(rows))
	for _, r := range rows {
		id, err := strconv.ParseUint(r.EntityID, 10, 64)
		if err != nil {
			continue
		}
		out[uint(id)] += r.N
	}
	return out, nil
}
