package main

import (
	"context"
	"fmt"

	"github.com/clowiiza1/pukkeconnect-backend/internal/config"
	"github.com/clowiiza1/pukkeconnect-backend/internal/database"
	"github.com/clowiiza1/pukkeconnect-backend/internal/logging"
	"github.com/clowiiza1/pukkeconnect-backend/internal/seed"
	"github.com/clowiiza1/pukkeconnect-backend/internal/services"

	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if envErr != nil {
		logging.Info().Msg("no .env file, using process environment")
	}
	if err := cfg.Validate(); err != nil {
		logging.Fatal().Err(err).Msg("invalid configuration")
	}

	db := database.Connect(cfg)
	if err := database.AutoMigrate(db); err != nil {
		logging.Fatal().Err(err).Msg("migration failed")
	}

	res, err := seed.New(db, logging.Component("seed")).Run(context.Background())
	if err != nil {
		logging.Fatal().Err(err).Msg("seed failed")
	}

	token, err := services.NewAuthService(cfg.JWTSecret).GenerateToken(res.Student)
	if err != nil {
		logging.Fatal().Err(err).Msg("token for demo student")
	}

	fmt.Printf("Login with: %s / %s\n", seed.DemoEmail, seed.DemoPassword)
	fmt.Printf("Bearer token: %s\n", token)
}
