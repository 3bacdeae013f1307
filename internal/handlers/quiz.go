package handlers

import (
	"net/http"

	"github.com/clowiiza1/pukkeconnect-backend/internal/middleware"
	"github.com/clowiiza1/pukkeconnect-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

type OptionInterestRequest struct {
	InterestID ID       `json:"interestId" binding:"required" swaggertype:"string" example:"3"`
	Weight     *float64 `json:"weight" example:"15"`
}

type OptionRequest struct {
	Label     string                  `json:"label" example:"Building robots"`
	Value     string                  `json:"value" example:"robots"`
	Interests []OptionInterestRequest `json:"interests" binding:"dive"`
}

type QuestionRequest struct {
	Prompt  string          `json:"prompt" example:"What do you enjoy?"`
	Kind    string          `json:"kind" enums:"single,multi,text" example:"multi"`
	Options []OptionRequest `json:"options" binding:"dive"`
}

type CreateQuizRequest struct {
	SocietyID   *ID               `json:"societyId" swaggertype:"string"`
	Title       string            `json:"title" binding:"max=255" example:"Find your society"`
	Description *string           `json:"description"`
	Questions   []QuestionRequest `json:"questions" binding:"dive"`
}

func (r CreateQuizRequest) input() services.QuizInput {
	in := services.QuizInput{
		SocietyID:   uintPtr(r.SocietyID),
		Title:       r.Title,
		Description: r.Description,
		Questions:   make([]services.QuestionInput, len(r.Questions)),
	}
	for i, q := range r.Questions {
		qi := services.QuestionInput{Prompt: q.Prompt, Kind: q.Kind, Options: make([]services.OptionInput, len(q.Options))}
		for j, o := range q.Options {
			oi := services.OptionInput{Label: o.Label, Value: o.Value}
			for _, link := range o.Interests {
				oi.Interests = append(oi.Interests, services.OptionInterestInput{InterestID: uint(link.InterestID), Weight: link.Weight})
			}
			qi.Options[j] = oi
		}
		in.Questions[i] = qi
	}
	return in
}

// CreateQuiz godoc
// @Summary      Create a quiz
// @Description  Create a quiz with its questions, options and option interest links. Omit societyId for a matchmaker quiz.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateQuizRequest true "Quiz data"
// @Success      201 {object} QuizDTO
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/quizzes [post]
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var req CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := h.quizService.CreateQuiz(c.Request.Context(), identity.StudentID, req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toQuizDTO(quiz, true))
}

// GetQuiz godoc
// @Summary      Get a quiz
// @Description  Get a quiz with all questions and options
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Quiz ID"
// @Success      200 {object} QuizDTO
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quizID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	quiz, err := h.quizService.GetQuiz(c.Request.Context(), quizID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuizDTO(quiz, false))
}
