package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/clowiiza1/pukkeconnect-backend/internal/metrics"
	"github.com/clowiiza1/pukkeconnect-backend/internal/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AnswerInput is one raw answer as submitted by the student.
type AnswerInput struct {
	QuestionID uint
	OptionIDs  []uint
	FreeText   *string
}

type NormalizedAnswer struct {
	QuestionID uint
	Kind       string
	OptionIDs  []uint
	FreeText   string
}

type NormalizedSubmission struct {
	Answers []NormalizedAnswer
	// SelectedOptionIDs is every selected option across the submission,
	// deduplicated, in first-seen order.
	SelectedOptionIDs []uint
}

// NormalizeAnswers checks raw answers against the quiz structure. It does no
// I/O and returns a *ValidationError for any structural problem.
func NormalizeAnswers(questions []models.QuizQuestion, raw []AnswerInput) (*NormalizedSubmission, error) {
	byID := make(map[uint]*models.QuizQuestion, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	out := &NormalizedSubmission{
		Answers:           make([]NormalizedAnswer, 0, len(raw)),
		SelectedOptionIDs: []uint{},
	}
	selected := make(map[uint]bool)
	answered := make(map[uint]bool, len(raw))

	for _, a := range raw {
		q, ok := byID[a.QuestionID]
		if !ok {
			return nil, validationErrorf(fmt.Sprintf("Unknown question %d", a.QuestionID))
		}
		if answered[q.ID] {
			return nil, validationErrorf(fmt.Sprintf("Question %d answered more than once", q.ID))
		}
		answered[q.ID] = true

		if q.Kind == models.QuestionKindText {
			if len(a.OptionIDs) > 0 || a.FreeText == nil || strings.TrimSpace(*a.FreeText) == "" {
				return nil, validationErrorf(fmt.Sprintf("Question %d requires freeText only", q.ID))
			}
			out.Answers = append(out.Answers, NormalizedAnswer{
				QuestionID: q.ID,
				Kind:       q.Kind,
				FreeText:   strings.TrimSpace(*a.FreeText),
			})
			continue
		}

		if len(a.OptionIDs) == 0 {
			return nil, validationErrorf(fmt.Sprintf("Question %d requires optionIds", q.ID))
		}
		if q.Kind == models.QuestionKindSingle && len(a.OptionIDs) != 1 {
			return nil, validationErrorf(fmt.Sprintf("Question %d allows exactly one option", q.ID))
		}

		valid := make(map[uint]bool, len(q.Options))
		for _, o := range q.Options {
			valid[o.ID] = true
		}
		optionIDs := make([]uint, 0, len(a.OptionIDs))
		seen := make(map[uint]bool, len(a.OptionIDs))
		for _, oid := range a.OptionIDs {
			if !valid[oid] {
				return nil, validationErrorf(fmt.Sprintf("Invalid option %d for question %d", oid, q.ID))
			}
			if seen[oid] {
				continue
			}
			seen[oid] = true
			optionIDs = append(optionIDs, oid)
			if !selected[oid] {
				selected[oid] = true
				out.SelectedOptionIDs = append(out.SelectedOptionIDs, oid)
			}
		}
		out.Answers = append(out.Answers, NormalizedAnswer{
			QuestionID: q.ID,
			Kind:       q.Kind,
			OptionIDs:  optionIDs,
		})
	}

	return out, nil
}

type InterestRef struct {
	ID   uint
	Name string
}

type SubmissionResult struct {
	ResponseID         uint
	QuizID             uint
	StudentID          string
	SubmittedAt        time.Time
	DerivedInterestIDs []uint
	InterestsAdded     []InterestRef
	TotalInterests     int
}

type MatchmakerService struct {
	db                  *gorm.DB
	defaultOptionWeight float64
	logger              zerolog.Logger
}

func NewMatchmakerService(db *gorm.DB, defaultOptionWeight float64, logger zerolog.Logger) *MatchmakerService {
	return &MatchmakerService{
		db:                  db,
		defaultOptionWeight: defaultOptionWeight,
		logger:              logger.With().Str("component", "matchmaker").Logger(),
	}
}

// ActiveQuiz loads the most recently created quiz without an owning society,
// with questions and options in insertion order.
func (s *MatchmakerService) ActiveQuiz(ctx context.Context) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.WithContext(ctx).
		Where("society_id IS NULL").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Order("created_at DESC").Order("id DESC").
		First(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotConfigured
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// Submit records the student's answers to the active matchmaker quiz and
// merges the implied interests into the student's interest edges.
func (s *MatchmakerService) Submit(ctx context.Context, studentID string, raw []AnswerInput) (*SubmissionResult, error) {
	result, err := s.submit(ctx, studentID, raw)
	metrics.QuizSubmissions.WithLabelValues(submissionOutcome(err)).Inc()
	if err != nil {
		return nil, err
	}
	metrics.InterestsAdded.Add(float64(len(result.InterestsAdded)))
	s.logger.Info().
		Str("student_id", studentID).
		Uint("response_id", result.ResponseID).
		Int("derived", len(result.DerivedInterestIDs)).
		Int("added", len(result.InterestsAdded)).
		Msg("matchmaker quiz submitted")
	return result, nil
}

func (s *MatchmakerService) submit(ctx context.Context, studentID string, raw []AnswerInput) (*SubmissionResult, error) {
	quiz, err := s.ActiveQuiz(ctx)
	if err != nil {
		return nil, err
	}

	norm, err := NormalizeAnswers(quiz.Questions, raw)
	if err != nil {
		return nil, err
	}

	result, err := s.record(ctx, quiz.ID, studentID, norm)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		s.logger.Warn().Str("student_id", studentID).Msg("duplicate response key, retrying once")
		result, err = s.record(ctx, quiz.ID, studentID, norm)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("response for quiz %d: %w", quiz.ID, ErrConflict)
		}
	}
	return result, err
}

func (s *MatchmakerService) record(ctx context.Context, quizID uint, studentID string, norm *NormalizedSubmission) (*SubmissionResult, error) {
	var result *SubmissionResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		g := interestGraph{tx}
		if err := g.requireStudent(studentID); err != nil {
			return err
		}

		before, err := g.studentInterests(studentID)
		if err != nil {
			return err
		}

		prior := tx.Model(&models.QuizResponse{}).Select("id").Where("quiz_id = ? AND student_id = ?", quizID, studentID)
		if err := tx.Where("response_id IN (?)", prior).Delete(&models.QuizResponseAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ? AND student_id = ?", quizID, studentID).Delete(&models.QuizResponse{}).Error; err != nil {
			return err
		}

		response := models.QuizResponse{
			QuizID:      quizID,
			StudentID:   studentID,
			SubmittedAt: time.Now().UTC(),
		}
		if err := tx.Omit(clause.Associations).Create(&response).Error; err != nil {
			return err
		}

		rows := answerRows(response.ID, norm.Answers)
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		derived, err := s.deriveWeights(tx, norm.SelectedOptionIDs)
		if err != nil {
			return err
		}
		derivedIDs := make([]uint, 0, len(derived))
		for id := range derived {
			derivedIDs = append(derivedIDs, id)
		}
		sort.Slice(derivedIDs, func(i, j int) bool { return derivedIDs[i] < derivedIDs[j] })

		for _, id := range derivedIDs {
			if err := g.upsert(studentID, id, derived[id]); err != nil {
				return err
			}
		}

		edges, err := g.resync(studentID)
		if err != nil {
			return err
		}

		added := []InterestRef{}
		for _, e := range edges {
			if _, had := before[e.InterestID]; had {
				continue
			}
			if _, ok := derived[e.InterestID]; ok {
				added = append(added, InterestRef{ID: e.InterestID, Name: e.Interest.Name})
			}
		}

		result = &SubmissionResult{
			ResponseID:         response.ID,
			QuizID:             quizID,
			StudentID:          studentID,
			SubmittedAt:        response.SubmittedAt,
			DerivedInterestIDs: derivedIDs,
			InterestsAdded:     added,
			TotalInterests:     len(edges),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// deriveWeights maps each interest implied by the selected options to the
// strongest option edge weight. Unset or non-positive weights use the default.
func (s *MatchmakerService) deriveWeights(tx *gorm.DB, optionIDs []uint) (map[uint]float64, error) {
	derived := make(map[uint]float64)
	if len(optionIDs) == 0 {
		return derived, nil
	}

	var links []models.QuizOptionInterest
	if err := tx.Where("option_id IN ?", optionIDs).Find(&links).Error; err != nil {
		return nil, err
	}
	for _, l := range links {
		w := s.defaultOptionWeight
		if l.Weight != nil && *l.Weight > 0 {
			w = *l.Weight
		}
		if cur, ok := derived[l.InterestID]; !ok || w > cur {
			derived[l.InterestID] = w
		}
	}
	return derived, nil
}

func answerRows(responseID uint, answers []NormalizedAnswer) []models.QuizResponseAnswer {
	var rows []models.QuizResponseAnswer
	for _, a := range answers {
		if a.Kind == models.QuestionKindText {
			text := a.FreeText
			rows = append(rows, models.QuizResponseAnswer{ResponseID: responseID, QuestionID: a.QuestionID, FreeText: &text})
			continue
		}
		for _, oid := range a.OptionIDs {
			optionID := oid
			rows = append(rows, models.QuizResponseAnswer{ResponseID: responseID, QuestionID: a.QuestionID, OptionID: &optionID})
		}
	}
	return rows
}

// CurrentResponse returns the student's response to the active matchmaker quiz.
func (s *MatchmakerService) CurrentResponse(ctx context.Context, studentID string) (*models.QuizResponse, error) {
	quiz, err := s.ActiveQuiz(ctx)
	if err != nil {
		return nil, err
	}

	var response models.QuizResponse
	err = s.db.WithContext(ctx).
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("quiz_id = ? AND student_id = ?", quiz.ID, studentID).
		First(&response).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("no response from student %s: %w", studentID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func submissionOutcome(err error) string {
	var verr *ValidationError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &verr):
		return "invalid"
	case errors.Is(err, ErrNotConfigured):
		return "not_configured"
	case errors.Is(err, ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}
