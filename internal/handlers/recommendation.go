package handlers

import (
	"net/http"
	"strconv"

	"github.com/clowiiza1/pukkeconnect-backend/internal/middleware"
	"github.com/clowiiza1/pukkeconnect-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	recommender *services.RecommendationService
}

func NewRecommendationHandler(recommender *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommender: recommender}
}

// GetRecommendations godoc
// @Summary      Society recommendations
// @Description  Ranked societies for the caller, grouped into rails. Equal seeds give equal orderings.
// @Tags         recommendations
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Top Picks size (1-50, default 20)"
// @Param        seed query string false "Tie-break seed, defaults to {studentId}-default"
// @Success      200 {object} RecommendationsResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/recommendations [get]
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer"})
			return
		}
		limit = n
		// an explicit 0 is out of range, not a request for the default
		if n == 0 {
			limit = -1
		}
	}

	rails, err := h.recommender.Recommend(c.Request.Context(), services.RecommendationRequest{
		StudentID: identity.StudentID,
		Campus:    identity.Campus,
		Limit:     limit,
		Seed:      c.Query("seed"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRecommendationsResponse(rails))
}
