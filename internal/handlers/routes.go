package handlers

import (
	"github.com/clowiiza1/pukkeconnect-backend/internal/authz"
	"github.com/clowiiza1/pukkeconnect-backend/internal/middleware"
	"github.com/clowiiza1/pukkeconnect-backend/internal/services"
	"github.com/clowiiza1/pukkeconnect-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

// Deps is everything the API routes need.
type Deps struct {
	Auth        *services.AuthService
	Resolver    *authz.Resolver
	Matchmaker  *services.MatchmakerService
	Recommender *services.RecommendationService
	Interests   *services.InterestService
	Quizzes     *services.QuizService
	Tracking    *services.TrackingService
	Hub         *ws.Hub
	WSOrigins   []string
}

// RegisterRoutes mounts /api/v1 and the student websocket on r.
func RegisterRoutes(r *gin.Engine, d Deps) {
	matchmakerHandler := NewMatchmakerHandler(d.Matchmaker, d.Hub)
	recommendationHandler := NewRecommendationHandler(d.Recommender)
	interestHandler := NewInterestHandler(d.Interests, d.Hub)
	quizHandler := NewQuizHandler(d.Quizzes)
	trackingHandler := NewTrackingHandler(d.Tracking)
	wsHandler := NewWSHandler(d.Hub, d.WSOrigins)

	can := middleware.RequireCapability

	r.GET("/ws/students/me", middleware.QueryTokenAuth(d.Auth, d.Resolver), wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	api.Use(middleware.JWTAuth(d.Auth, d.Resolver))
	{
		matchmaker := api.Group("/matchmaker")
		{
			matchmaker.GET("/quiz", matchmakerHandler.GetQuiz)
			matchmaker.POST("/submit", can(authz.QuizSubmit), matchmakerHandler.Submit)
			matchmaker.GET("/response", matchmakerHandler.GetResponse)
		}

		api.GET("/recommendations", can(authz.RecommendationsRead), recommendationHandler.GetRecommendations)

		interests := api.Group("/interests")
		{
			interests.GET("", interestHandler.ListInterests)
			interests.POST("", can(authz.InterestsCreate), interestHandler.CreateInterest)
		}

		students := api.Group("/students/:student_id/interests")
		{
			students.GET("", interestHandler.ListStudentInterests)
			students.PUT("", interestHandler.ReplaceStudentInterests)
			students.DELETE("/:interest_id", interestHandler.RemoveStudentInterest)
		}

		quizzes := api.Group("/quizzes")
		{
			quizzes.POST("", can(authz.QuizCreate), quizHandler.CreateQuiz)
			quizzes.GET("/:id", quizHandler.GetQuiz)
		}

		api.POST("/track", can(authz.EventsTrack), trackingHandler.Track)
	}
}
