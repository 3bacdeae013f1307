package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/clowiiza1/pukkeconnect-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InterestWeight struct {
	Name   string
	Weight float64
}

// interestGraph runs edge operations on a handle that may be a transaction.
type interestGraph struct {
	db *gorm.DB
}

func (g interestGraph) requireStudent(studentID string) error {
	var n int64
	if err := g.db.Model(&models.User{}).Where("id = ?", studentID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("student %s: %w", studentID, ErrNotFound)
	}
	return nil
}

func (g interestGraph) requireInterests(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	var n int64
	if err := g.db.Model(&models.Interest{}).Where("id IN ?", ids).Count(&n).Error; err != nil {
		return err
	}
	if int(n) != len(ids) {
		return fmt.Errorf("unknown interest in %v: %w", ids, ErrInvalidReference)
	}
	return nil
}

func (g interestGraph) studentInterests(studentID string) (map[uint]InterestWeight, error) {
	var edges []models.StudentInterest
	if err := g.db.Preload("Interest").Where("student_id = ?", studentID).Find(&edges).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]InterestWeight, len(edges))
	for _, e := range edges {
		out[e.InterestID] = InterestWeight{Name: e.Interest.Name, Weight: e.Weight}
	}
	return out, nil
}

// upsert raises the edge weight to weight, creating the edge if needed. It
// never lowers an existing weight and does not touch the profile projection.
func (g interestGraph) upsert(studentID string, interestID uint, weight float64) error {
	if weight < 0 {
		weight = 0
	}
	edge := models.StudentInterest{StudentID: studentID, InterestID: interestID, Weight: weight}
	return g.db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_id"}, {Name: "interest_id"}},
		DoUpdates: clause.Set{{
			Column: clause.Column{Name: "weight"},
			Value:  gorm.Expr("CASE WHEN student_interests.weight < excluded.weight THEN excluded.weight ELSE student_interests.weight END"),
		}},
	}).Create(&edge).Error
}

// resync rewrites the profile's interest names from the current edges and
// returns the edges sorted by interest name.
func (g interestGraph) resync(studentID string) ([]models.StudentInterest, error) {
	var edges []models.StudentInterest
	if err := g.db.Preload("Interest").Where("student_id = ?", studentID).Find(&edges).Error; err != nil {
		return nil, err
	}
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Interest.Name < edges[j].Interest.Name
	})

	names := make([]string, 0, len(edges))
	for _, e := range edges {
		names = append(names, e.Interest.Name)
	}

	profile := models.StudentProfile{
		StudentID: studentID,
		Interests: names,
		UpdatedAt: time.Now().UTC(),
	}
	err := g.db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"interests", "updated_at"}),
	}).Create(&profile).Error
	if err != nil {
		return nil, fmt.Errorf("write profile interests: %w", err)
	}
	return edges, nil
}

type InterestService struct {
	db *gorm.DB
}

func NewInterestService(db *gorm.DB) *InterestService {
	return &InterestService{db: db}
}

func (s *InterestService) ListInterests(ctx context.Context) ([]models.Interest, error) {
	var interests []models.Interest
	err := s.db.WithContext(ctx).Order("name ASC").Find(&interests).Error
	return interests, err
}

func (s *InterestService) CreateInterest(ctx context.Context, name string, parentID *uint) (*models.Interest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationErrorf("Interest name is required")
	}
	db := s.db.WithContext(ctx)
	if parentID != nil {
		if err := (interestGraph{db}).requireInterests([]uint{*parentID}); err != nil {
			return nil, err
		}
	}

	interest := models.Interest{Name: name, ParentID: parentID}
	if err := db.Omit(clause.Associations).Create(&interest).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("interest %q already exists: %w", name, ErrConflict)
		}
		return nil, err
	}
	return &interest, nil
}

// GetStudentInterests returns the student's edges keyed by interest id.
func (s *InterestService) GetStudentInterests(ctx context.Context, studentID string) (map[uint]InterestWeight, error) {
	g := interestGraph{s.db.WithContext(ctx)}
	if err := g.requireStudent(studentID); err != nil {
		return nil, err
	}
	return g.studentInterests(studentID)
}

// ListStudentInterests returns the student's edges ordered by interest name.
func (s *InterestService) ListStudentInterests(ctx context.Context, studentID string) ([]models.StudentInterest, error) {
	db := s.db.WithContext(ctx)
	if err := (interestGraph{db}).requireStudent(studentID); err != nil {
		return nil, err
	}
	var edges []models.StudentInterest
	if err := db.Preload("Interest").Where("student_id = ?", studentID).Find(&edges).Error; err != nil {
		return nil, err
	}
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Interest.Name < edges[j].Interest.Name
	})
	return edges, nil
}

// UpsertStudentInterest applies a max-merge to one edge. Callers batch these
// and call ResyncProfileInterests afterwards.
func (s *InterestService) UpsertStudentInterest(ctx context.Context, studentID string, interestID uint, weight float64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		g := interestGraph{tx}
		if err := g.requireStudent(studentID); err != nil {
			return err
		}
		if err := g.requireInterests([]uint{interestID}); err != nil {
			return err
		}
		return g.upsert(studentID, interestID, weight)
	})
}

func (s *InterestService) ResyncProfileInterests(ctx context.Context, studentID string) ([]models.StudentInterest, error) {
	var edges []models.StudentInterest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		g := interestGraph{tx}
		if err := g.requireStudent(studentID); err != nil {
			return err
		}
		var err error
		edges, err = g.resync(studentID)
		return err
	})
	return edges, err
}

// ReplaceStudentInterests makes the student's edge set equal to interestIDs.
// Surviving edges keep their weight, new ones start at zero.
func (s *InterestService) ReplaceStudentInterests(ctx context.Context, studentID string, interestIDs []uint) ([]models.StudentInterest, error) {
	ids := uniqueIDs(interestIDs)

	var edges []models.StudentInterest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		g := interestGraph{tx}
		if err := g.requireStudent(studentID); err != nil {
			return err
		}
		if err := g.requireInterests(ids); err != nil {
			return err
		}

		del := tx.Where("student_id = ?", studentID)
		if len(ids) > 0 {
			del = del.Where("interest_id NOT IN ?", ids)
		}
		if err := del.Delete(&models.StudentInterest{}).Error; err != nil {
			return err
		}

		for _, id := range ids {
			edge := models.StudentInterest{StudentID: studentID, InterestID: id}
			err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error
			if err != nil {
				return err
			}
		}

		var err error
		edges, err = g.resync(studentID)
		return err
	})
	return edges, err
}

func (s *InterestService) RemoveStudentInterest(ctx context.Context, studentID string, interestID uint) ([]models.StudentInterest, error) {
	var edges []models.StudentInterest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		g := interestGraph{tx}
		if err := g.requireStudent(studentID); err != nil {
			return err
		}
		res := tx.Where("student_id = ? AND interest_id = ?", studentID, interestID).Delete(&models.StudentInterest{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("interest %d on student %s: %w", interestID, studentID, ErrNotFound)
		}
		var err error
		edges, err = g.resync(studentID)
		return err
	})
	return edges, err
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
