package main

import (
	"net/http"
	"time"
	_ "time/tzdata"

	"github.com/clowiiza1/pukkeconnect-backend/internal/authz"
	"github.com/clowiiza1/pukkeconnect-backend/internal/config"
	"github.com/clowiiza1/pukkeconnect-backend/internal/database"
	"github.com/clowiiza1/pukkeconnect-backend/internal/handlers"
	"github.com/clowiiza1/pukkeconnect-backend/internal/logging"
	"github.com/clowiiza1/pukkeconnect-backend/internal/middleware"
	"github.com/clowiiza1/pukkeconnect-backend/internal/services"
	"github.com/clowiiza1/pukkeconnect-backend/internal/ws"

	_ "github.com/clowiiza1/pukkeconnect-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           PukkeConnect Matchmaker API
// @version         1.0
// @description     Matchmaker quiz, student interests and society recommendations
// @host            localhost:4000
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

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

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logging.Fatal().Err(err).Str("timezone", cfg.Timezone).Msg("unknown timezone")
	}

	db := database.Connect(cfg)
	if err := database.AutoMigrate(db); err != nil {
		logging.Fatal().Err(err).Msg("migration failed")
	}
	caps := database.DetectCapabilities(db, cfg.SocietyCampus)
	logging.Info().Bool("society_campus", caps.SocietyCampus).Msg("schema capabilities resolved")

	resolver, err := authz.NewResolver()
	if err != nil {
		logging.Fatal().Err(err).Msg("authorization model")
	}

	hub := ws.NewHub(logging.Logger())

	authService := services.NewAuthService(cfg.JWTSecret)
	matchmakerService := services.NewMatchmakerService(db, cfg.Quiz.DefaultOptionWeight, logging.Logger())
	recommendationService := services.NewRecommendationService(
		services.NewGormRecommendationStore(db, caps),
		cfg.Recommend,
		loc,
		logging.Logger(),
	)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logging.Component("http")))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handlers.RegisterRoutes(r, handlers.Deps{
		Auth:        authService,
		Resolver:    resolver,
		Matchmaker:  matchmakerService,
		Recommender: recommendationService,
		Interests:   services.NewInterestService(db),
		Quizzes:     services.NewQuizService(db),
		Tracking:    services.NewTrackingService(db),
		Hub:         hub,
		WSOrigins:   cfg.CORSOrigins,
	})

	logging.Info().Str("port", cfg.ServerPort).Msg("server starting")
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logging.Fatal().Err(err).Msg("failed to start server")
	}
}
