package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/clowiiza1/pukkeconnect-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

type QuizInput struct {
	SocietyID   *uint
	Title       string
	Description *string
	Questions   []QuestionInput
}

type QuestionInput struct {
	Prompt  string
	Kind    string
	Options []OptionInput
}

type OptionInput struct {
	Label     string
	Value     string
	Interests []OptionInterestInput
}

type OptionInterestInput struct {
	InterestID uint
	Weight     *float64
}

// CreateQuiz stores a quiz with its questions, options and option interest
// links in one transaction. A nil SocietyID creates a matchmaker quiz.
func (s *QuizService) CreateQuiz(ctx context.Context, createdBy string, input QuizInput) (*models.Quiz, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, validationErrorf("Quiz title is required")
	}
	if len(input.Questions) == 0 {
		return nil, validationErrorf("Quiz needs at least one question")
	}
	var interestIDs []uint
	for i, q := range input.Questions {
		if strings.TrimSpace(q.Prompt) == "" {
			return nil, validationErrorf(fmt.Sprintf("Question %d needs a prompt", i+1))
		}
		if err := validateQuestionByKind(q.Kind, q.Options); err != nil {
			return nil, validationErrorf(fmt.Sprintf("Question %d: %s", i+1, err.Error()))
		}
		for _, o := range q.Options {
			for _, link := range o.Interests {
				if link.Weight != nil && *link.Weight < 0 {
					return nil, validationErrorf(fmt.Sprintf("Question %d: interest weight must not be negative", i+1))
				}
				interestIDs = append(interestIDs, link.InterestID)
			}
		}
	}

	var quiz models.Quiz
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if input.SocietyID != nil {
			var n int64
			if err := tx.Model(&models.Society{}).Where("id = ?", *input.SocietyID).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return fmt.Errorf("society %d: %w", *input.SocietyID, ErrInvalidReference)
			}
		}
		if err := (interestGraph{tx}).requireInterests(uniqueIDs(interestIDs)); err != nil {
			return err
		}

		quiz = models.Quiz{
			SocietyID:   input.SocietyID,
			Title:       title,
			Description: input.Description,
			CreatedBy:   createdBy,
		}
		if err := tx.Omit(clause.Associations).Create(&quiz).Error; err != nil {
			return err
		}

		for _, q := range input.Questions {
			question := models.QuizQuestion{
				QuizID: quiz.ID,
				Prompt: strings.TrimSpace(q.Prompt),
				Kind:   q.Kind,
			}
			if err := tx.Omit(clause.Associations).Create(&question).Error; err != nil {
				return err
			}
			for _, o := range q.Options {
				opt := models.QuizOption{QuestionID: question.ID, Label: o.Label, Value: o.Value}
				if opt.Value == "" {
					opt.Value = o.Label
				}
				if err := tx.Omit(clause.Associations).Create(&opt).Error; err != nil {
					return err
				}
				for _, link := range o.Interests {
					row := models.QuizOptionInterest{OptionID: opt.ID, InterestID: link.InterestID, Weight: link.Weight}
					if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validationErrorf("An option links the same interest twice")
		}
		return nil, err
	}

	return s.GetQuiz(ctx, quiz.ID)
}

func (s *QuizService) GetQuiz(ctx context.Context, quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Questions.Options.Interests").
		First(&quiz, quizID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("quiz %d: %w", quizID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func validateQuestionByKind(kind string, options []OptionInput) error {
	switch kind {
	case models.QuestionKindSingle, models.QuestionKindMulti:
		if len(options) < 2 {
			return errors.New("choice questions need at least 2 options")
		}
		for _, o := range options {
			if strings.TrimSpace(o.Label) == "" {
				return errors.New("every option needs a label")
			}
		}
	case models.QuestionKindText:
		if len(options) > 0 {
			return errors.New("text questions take no options")
		}
	default:
		return fmt.Errorf("unknown question kind %q", kind)
	}
	return nil
}
