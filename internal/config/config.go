package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	DBDriver   string `validate:"oneof=postgres sqlite"`
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string

	JWTSecret   string `validate:"required,min=16"`
	ServerPort  string `validate:"required,numeric"`
	CORSOrigins []string

	LogLevel  string `validate:"oneof=trace debug info warn error"`
	LogFormat string `validate:"oneof=json console"`
	Timezone  string `validate:"required"`

	// SocietyCampus controls whether societies carry a campus column:
	// "auto" detects it once at startup, "on"/"off" force it.
	SocietyCampus string `validate:"oneof=auto on off"`

	Recommend RecommendConfig
	Quiz      QuizConfig
}

// RecommendConfig holds the hand-tuned scoring weights and rail limits.
type RecommendConfig struct {
	PopularityWeight float64 `validate:"gte=0"`
	FreshnessWeight  float64 `validate:"gte=0"`
	CampusBonus      float64 `validate:"gte=0"`
	InterestBonus    float64 `validate:"gte=0"`
	UpcomingBonus    float64 `validate:"gte=0"`
	DismissPenalty   float64 `validate:"gte=0"`

	DefaultLimit  int `validate:"min=1,ltefield=MaxLimit"`
	MaxLimit      int `validate:"min=1,max=200"`
	MaxCandidates int `validate:"min=1"`

	TopPicksPerCategory  int `validate:"min=1"`
	SecondaryPerCategory int `validate:"min=1"`
	SecondaryMinLimit    int `validate:"min=1"`
}

type QuizConfig struct {
	DefaultOptionWeight float64 `validate:"gt=0"`
}

// DefaultRecommendConfig returns the weights the scorer has always shipped with.
func DefaultRecommendConfig() RecommendConfig {
	return RecommendConfig{
		PopularityWeight:     0.6,
		FreshnessWeight:      0.5,
		CampusBonus:          12,
		InterestBonus:        0.05,
		UpcomingBonus:        4,
		DismissPenalty:       8,
		DefaultLimit:         20,
		MaxLimit:             50,
		MaxCandidates:        200,
		TopPicksPerCategory:  3,
		SecondaryPerCategory: 2,
		SecondaryMinLimit:    6,
	}
}

func Load() *Config {
	rec := DefaultRecommendConfig()
	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "postgres"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "pukkeconnect"),
		DBPath:        getEnv("DB_PATH", "pukkeconnect.db"),
		JWTSecret:     getEnv("JWT_SECRET", "super-secret-key-change-me"),
		ServerPort:    getEnv("SERVER_PORT", "4000"),
		CORSOrigins:   getSliceEnv("CORS_ORIGINS", []string{"http://localhost:5173"}),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		Timezone:      getEnv("TIMEZONE", "Africa/Johannesburg"),
		SocietyCampus: getEnv("SOCIETY_CAMPUS", "auto"),
		Recommend: RecommendConfig{
			PopularityWeight:     getFloatEnv("REC_POPULARITY_WEIGHT", rec.PopularityWeight),
			FreshnessWeight:      getFloatEnv("REC_FRESHNESS_WEIGHT", rec.FreshnessWeight),
			CampusBonus:          getFloatEnv("REC_CAMPUS_BONUS", rec.CampusBonus),
			InterestBonus:        getFloatEnv("REC_INTEREST_BONUS", rec.InterestBonus),
			UpcomingBonus:        getFloatEnv("REC_UPCOMING_BONUS", rec.UpcomingBonus),
			DismissPenalty:       getFloatEnv("REC_DISMISS_PENALTY", rec.DismissPenalty),
			DefaultLimit:         getIntEnv("REC_DEFAULT_LIMIT", rec.DefaultLimit),
			MaxLimit:             getIntEnv("REC_MAX_LIMIT", rec.MaxLimit),
			MaxCandidates:        getIntEnv("REC_MAX_CANDIDATES", rec.MaxCandidates),
			TopPicksPerCategory:  getIntEnv("REC_TOP_PICKS_PER_CATEGORY", rec.TopPicksPerCategory),
			SecondaryPerCategory: getIntEnv("REC_SECONDARY_PER_CATEGORY", rec.SecondaryPerCategory),
			SecondaryMinLimit:    getIntEnv("REC_SECONDARY_MIN_LIMIT", rec.SecondaryMinLimit),
		},
		Quiz: QuizConfig{
			DefaultOptionWeight: getFloatEnv("QUIZ_DEFAULT_OPTION_WEIGHT", 10),
		},
	}
}

// Validate checks the struct tags above and returns the first offending fields.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getSliceEnv(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
