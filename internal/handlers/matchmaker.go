package handlers

import (
	"net/http"

	"github.com/clowiiza1/pukkeconnect-backend/internal/middleware"
	"github.com/clowiiza1/pukkeconnect-backend/internal/services"
	"github.com/clowiiza1/pukkeconnect-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type MatchmakerHandler struct {
	matchmaker *services.MatchmakerService
	hub        *ws.Hub
}

func NewMatchmakerHandler(matchmaker *services.MatchmakerService, hub *ws.Hub) *MatchmakerHandler {
	return &MatchmakerHandler{matchmaker: matchmaker, hub: hub}
}

type AnswerRequest struct {
	QuestionID ID      `json:"questionId" binding:"required" swaggertype:"string" example:"1"`
	OptionIDs  []ID    `json:"optionIds" swaggertype:"array,string"`
	FreeText   *string `json:"freeText"`
}

type SubmitMatchmakerRequest struct {
	Answers []AnswerRequest `json:"answers" binding:"required,dive"`
}

// GetQuiz godoc
// @Summary      Get the matchmaker quiz
// @Description  The most recent quiz not attached to a society, with questions and options
// @Tags         matchmaker
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} QuizDTO
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/matchmaker/quiz [get]
func (h *MatchmakerHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.matchmaker.ActiveQuiz(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQuizDTO(quiz, false))
}

// Submit godoc
// @Summary      Submit the matchmaker quiz
// @Description  Replace the caller's matchmaker response and merge the derived interests into their profile
// @Tags         matchmaker
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SubmitMatchmakerRequest true "Answers"
// @Success      201 {object} SubmissionResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/matchmaker/submit [post]
func (h *MatchmakerHandler) Submit(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var req SubmitMatchmakerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	answers := make([]services.AnswerInput, len(req.Answers))
	for i, a := range req.Answers {
		answers[i] = services.AnswerInput{
			QuestionID: uint(a.QuestionID),
			OptionIDs:  toUints(a.OptionIDs),
			FreeText:   a.FreeText,
		}
	}

	result, err := h.matchmaker.Submit(c.Request.Context(), identity.StudentID, answers)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := toSubmissionResponse(result)
	h.hub.Notify(identity.StudentID, ws.WSMessage{
		Type: ws.TypeInterestsSynced,
		Data: gin.H{"source": "matchmaker", "interestsAdded": resp.InterestsAdded, "totalInterests": resp.TotalInterests},
	})
	c.JSON(http.StatusCreated, resp)
}

// GetResponse godoc
// @Summary      Get my matchmaker response
// @Tags         matchmaker
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} QuizResponseDTO
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/matchmaker/response [get]
func (h *MatchmakerHandler) GetResponse(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	resp, err := h.matchmaker.CurrentResponse(c.Request.Context(), identity.StudentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQuizResponseDTO(resp))
}
