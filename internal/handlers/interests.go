package handlers

import (
	"net/http"
	"strings"

	"github.com/clowiiza1/pukkeconnect-backend/internal/authz"
	"github.com/clowiiza1/pukkeconnect-backend/internal/middleware"
	"github.com/clowiiza1/pukkeconnect-backend/internal/models"
	"github.com/clowiiza1/pukkeconnect-backend/internal/services"
	"github.com/clowiiza1/pukkeconnect-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type InterestHandler struct {
	interests *services.InterestService
	hub       *ws.Hub
}

func NewInterestHandler(interests *services.InterestService, hub *ws.Hub) *InterestHandler {
	return &InterestHandler{interests: interests, hub: hub}
}

type CreateInterestRequest struct {
	Name     string `json:"name" binding:"max=100" example:"Robotics"`
	ParentID *ID    `json:"parentId" swaggertype:"string"`
}

type ReplaceInterestsRequest struct {
	InterestIDs []ID `json:"interestIds" binding:"required" swaggertype:"array,string"`
}

// ListInterests godoc
// @Summary      List interests
// @Tags         interests
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} InterestDTO
// @Router       /api/v1/interests [get]
func (h *InterestHandler) ListInterests(c *gin.Context) {
	list, err := h.interests.ListInterests(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]InterestDTO, len(list))
	for i, in := range list {
		out[i] = toInterestDTO(in)
	}
	c.JSON(http.StatusOK, out)
}

// CreateInterest godoc
// @Summary      Create an interest
// @Tags         interests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateInterestRequest true "Interest"
// @Success      201 {object} InterestDTO
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/interests [post]
func (h *InterestHandler) CreateInterest(c *gin.Context) {
	var req CreateInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	interest, err := h.interests.CreateInterest(c.Request.Context(), req.Name, uintPtr(req.ParentID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toInterestDTO(*interest))
}

// ListStudentInterests godoc
// @Summary      List a student's interests
// @Description  Interest edges with weights, sorted by interest name. Use "me" for the caller.
// @Tags         interests
// @Produce      json
// @Security     BearerAuth
// @Param        student_id path string true "Student ID or me"
// @Success      200 {object} StudentInterestsResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/students/{student_id}/interests [get]
func (h *InterestHandler) ListStudentInterests(c *gin.Context) {
	studentID, ok := targetStudent(c)
	if !ok {
		return
	}
	edges, err := h.interests.ListStudentInterests(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStudentInterests(studentID, edges))
}

// ReplaceStudentInterests godoc
// @Summary      Replace a student's interests
// @Description  Keeps listed interests with their weights, adds new ones at weight 0 and drops the rest
// @Tags         interests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        student_id path string true "Student ID or me"
// @Param        request body ReplaceInterestsRequest true "Interest IDs"
// @Success      200 {object} StudentInterestsResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/students/{student_id}/interests [put]
func (h *InterestHandler) ReplaceStudentInterests(c *gin.Context) {
	studentID, ok := targetStudent(c)
	if !ok {
		return
	}
	var req ReplaceInterestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	edges, err := h.interests.ReplaceStudentInterests(c.Request.Context(), studentID, toUints(req.InterestIDs))
	if err != nil {
		respondError(c, err)
		return
	}
	h.synced(studentID, edges)
	c.JSON(http.StatusOK, toStudentInterests(studentID, edges))
}

// RemoveStudentInterest godoc
// @Summary      Remove one interest from a student
// @Tags         interests
// @Produce      json
// @Security     BearerAuth
// @Param        student_id path string true "Student ID or me"
// @Param        interest_id path string true "Interest ID"
// @Success      200 {object} StudentInterestsResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/students/{student_id}/interests/{interest_id} [delete]
func (h *InterestHandler) RemoveStudentInterest(c *gin.Context) {
	studentID, ok := targetStudent(c)
	if !ok {
		return
	}
	interestID, ok := parseIDParam(c, "interest_id")
	if !ok {
		return
	}
	edges, err := h.interests.RemoveStudentInterest(c.Request.Context(), studentID, interestID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.synced(studentID, edges)
	c.JSON(http.StatusOK, toStudentInterests(studentID, edges))
}

func (h *InterestHandler) synced(studentID string, edges []models.StudentInterest) {
	names := make([]string, len(edges))
	for i, e := range edges {
		names[i] = e.Interest.Name
	}
	h.hub.Notify(studentID, ws.WSMessage{
		Type: ws.TypeInterestsSynced,
		Data: gin.H{"source": "interests", "interests": names},
	})
}

// targetStudent resolves the :student_id path parameter. Callers may act on
// themselves, or on anyone with interests:manage_any.
func targetStudent(c *gin.Context) (string, bool) {
	identity := middleware.CurrentIdentity(c)
	target := strings.TrimSpace(c.Param("student_id"))
	if target == "me" || target == identity.StudentID {
		if !middleware.Capabilities(c).Has(authz.InterestsManageOwn) {
			respondError(c, services.ErrForbidden)
			return "", false
		}
		return identity.StudentID, true
	}
	if !middleware.Capabilities(c).Has(authz.InterestsManageAny) {
		respondError(c, services.ErrForbidden)
		return "", false
	}
	return target, true
}
