package handlers

import (
	"net/http"

	"github.com/clowiiza1/pukkeconnect-backend/internal/middleware"
	"github.com/clowiiza1/pukkeconnect-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type TrackingHandler struct {
	tracking *services.TrackingService
}

func NewTrackingHandler(tracking *services.TrackingService) *TrackingHandler {
	return &TrackingHandler{tracking: tracking}
}

type TrackRequest struct {
	Event   string         `json:"event" example:"dismiss"`
	Entity  string         `json:"entity" example:"society"`
	ID      Ref            `json:"id" swaggertype:"string" example:"12"`
	Payload map[string]any `json:"payload"`
}

type AcceptedResponse struct {
	Accepted bool `json:"accepted" example:"true"`
}

// Track godoc
// @Summary      Record recommendation feedback
// @Description  Only "dismiss" is accepted; dismissed societies are ranked lower afterwards
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TrackRequest true "Event"
// @Success      202 {object} AcceptedResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/track [post]
func (h *TrackingHandler) Track(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var req TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	err := h.tracking.Track(c.Request.Context(), identity.StudentID, services.TrackInput{
		Event:    req.Event,
		Entity:   req.Entity,
		EntityID: string(req.ID),
		Payload:  req.Payload,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, AcceptedResponse{Accepted: true})
}
