package database

import (
	"fmt"
	"time"

	"github.com/clowiiza1/pukkeconnect-backend/internal/config"
	"github.com/clowiiza1/pukkeconnect-backend/internal/logging"
	"github.com/clowiiza1/pukkeconnect-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured driver. SQLite connections are limited to a
// single open connection so in-memory databases survive between queries.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBPath)
	case "postgres", "":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
		)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}

	if cfg.DBDriver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func Connect(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to database")
	}
	logging.Info().Str("driver", cfg.DBDriver).Msg("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.StudentProfile{},
		&models.Interest{},
		&models.StudentInterest{},
		&models.Society{},
		&models.SocietyInterest{},
		&models.SocietyScore{},
		&models.Event{},
		&models.Quiz{},
		&models.QuizQuestion{},
		&models.QuizOption{},
		&models.QuizOptionInterest{},
		&models.QuizResponse{},
		&models.QuizResponseAnswer{},
		&models.RecommendationEvent{},
	)
}

// Capabilities describes optional schema features, resolved once at startup.
type Capabilities struct {
	SocietyCampus bool
}

// DetectCapabilities inspects the live schema. mode "on" or "off" skips
// detection and forces the flag.
func DetectCapabilities(db *gorm.DB, mode string) Capabilities {
	switch mode {
	case "on":
		return Capabilities{SocietyCampus: true}
	case "off":
		return Capabilities{SocietyCampus: false}
	}
	return Capabilities{
		SocietyCampus: db.Migrator().HasColumn(&models.Society{}, "campus"),
	}
}
