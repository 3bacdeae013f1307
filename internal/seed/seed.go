// Package seed loads the demo catalog: interests, the matchmaker quiz,
// societies and one demo student. Every step is safe to re-run.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/clowiiza1/pukkeconnect-backend/internal/models"
	"github.com/clowiiza1/pukkeconnect-backend/internal/services"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Seeder struct {
	db         *gorm.DB
	quizzes    *services.QuizService
	logger     zerolog.Logger
	BcryptCost int
}

func New(db *gorm.DB, logger zerolog.Logger) *Seeder {
	return &Seeder{
		db:         db,
		quizzes:    services.NewQuizService(db),
		logger:     logger,
		BcryptCost: bcrypt.DefaultCost,
	}
}

// Result summarises what a run touched.
type Result struct {
	Student          models.User
	Interests        int
	QuizCreated      bool
	SocietiesCreated int
}

func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	student, err := s.demoStudent(ctx)
	if err != nil {
		return nil, fmt.Errorf("demo student: %w", err)
	}
	s.logger.Info().Str("email", student.Email).Msg("seeded demo student")

	interests, err := s.interests(ctx)
	if err != nil {
		return nil, fmt.Errorf("interests: %w", err)
	}
	s.logger.Info().Int("count", len(interests)).Msg("seeded interests")

	quizCreated, err := s.matchmakerQuiz(ctx, student.ID, interests)
	if err != nil {
		return nil, fmt.Errorf("matchmaker quiz: %w", err)
	}

	created, err := s.societies(ctx, interests)
	if err != nil {
		return nil, fmt.Errorf("societies: %w", err)
	}
	s.logger.Info().Int("created", created).Int("total", len(societies)).Msg("seeded societies")

	return &Result{
		Student:          *student,
		Interests:        len(interests),
		QuizCreated:      quizCreated,
		SocietiesCreated: created,
	}, nil
}

func (s *Seeder) demoStudent(ctx context.Context) (*models.User, error) {
	db := s.db.WithContext(ctx)

	var user models.User
	err := db.Where("email = ?", DemoEmail).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), s.BcryptCost)
		if err != nil {
			return nil, err
		}
		user = models.User{
			Email:        DemoEmail,
			PasswordHash: string(hash),
			Role:         models.RoleStudent,
			FirstName:    "Ella",
			LastName:     "Brown",
			Campus:       "Mafikeng",
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if err := db.Model(&user).Update("campus", "Mafikeng").Error; err != nil {
			return nil, err
		}
	}

	profile := models.StudentProfile{StudentID: user.ID, Interests: datatypes.JSONSlice[string]{}}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&profile).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// interests returns the catalog keyed by name.
func (s *Seeder) interests(ctx context.Context) (map[string]uint, error) {
	db := s.db.WithContext(ctx)

	rows := make([]models.Interest, len(interestNames))
	for i, name := range interestNames {
		rows[i] = models.Interest{Name: name}
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&rows).Error; err != nil {
		return nil, err
	}

	var stored []models.Interest
	if err := db.Where("name IN ?", interestNames).Find(&stored).Error; err != nil {
		return nil, err
	}
	byName := make(map[string]uint, len(stored))
	for _, in := range stored {
		byName[in.Name] = in.ID
	}
	return byName, nil
}

func (s *Seeder) matchmakerQuiz(ctx context.Context, createdBy string, interests map[string]uint) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Quiz{}).Where("society_id IS NULL").Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		s.logger.Info().Msg("matchmaker quiz already exists")
		return false, nil
	}

	description := quizDescription
	input := services.QuizInput{Title: quizTitle, Description: &description}
	for _, q := range matchmakerQuestions {
		question := services.QuestionInput{Prompt: q.prompt, Kind: q.kind}
		for _, o := range q.options {
			option := services.OptionInput{Label: o.label, Value: o.value}
			for _, name := range o.interests {
				id, ok := interests[name]
				if !ok {
					continue
				}
				weight := q.weight
				option.Interests = append(option.Interests, services.OptionInterestInput{InterestID: id, Weight: &weight})
			}
			question.Options = append(question.Options, option)
		}
		input.Questions = append(input.Questions, question)
	}

	quiz, err := s.quizzes.CreateQuiz(ctx, createdBy, input)
	if err != nil {
		return false, err
	}
	s.logger.Info().Uint("quiz_id", quiz.ID).Int("questions", len(quiz.Questions)).Msg("created matchmaker quiz")
	return true, nil
}

func (s *Seeder) societies(ctx context.Context, interests map[string]uint) (int, error) {
	created := 0
	for _, sd := range societies {
		var existing int64
		if err := s.db.WithContext(ctx).Model(&models.Society{}).Where("name = ?", sd.name).Count(&existing).Error; err != nil {
			return created, err
		}
		if existing > 0 {
			s.logger.Debug().Str("society", sd.name).Msg("society already exists")
			continue
		}

		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			description, category, campus := sd.description, sd.category, sd.campus
			society := models.Society{
				Name:        sd.name,
				Description: &description,
				Category:    &category,
				Campus:      &campus,
			}
			if err := tx.Create(&society).Error; err != nil {
				return err
			}
			for _, name := range sd.interests {
				id, ok := interests[name]
				if !ok {
					continue
				}
				link := models.SocietyInterest{SocietyID: society.ID, InterestID: id, Weight: societyInterestWeight}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}
			return tx.Create(&models.SocietyScore{SocietyID: society.ID}).Error
		})
		if err != nil {
			return created, fmt.Errorf("society %q: %w", sd.name, err)
		}
		created++
	}
	return created, nil
}
