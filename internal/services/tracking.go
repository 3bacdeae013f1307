package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/clowiiza1/pukkeconnect-backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var allowedEvents = map[string]bool{
	models.RecommendationEventDismiss: true,
}

type TrackInput struct {
	Event    string
	Entity   string
	EntityID string
	Payload  map[string]any
}

type TrackingService struct {
	db *gorm.DB
}

func NewTrackingService(db *gorm.DB) *TrackingService {
	return &TrackingService{db: db}
}

// Track appends one feedback event for the student.
func (s *TrackingService) Track(ctx context.Context, studentID string, in TrackInput) error {
	in.Event = strings.TrimSpace(in.Event)
	in.Entity = strings.TrimSpace(in.Entity)
	in.EntityID = strings.TrimSpace(in.EntityID)
	if in.Event == "" || in.Entity == "" || in.EntityID == "" {
		return validationErrorf("event, entity and id are required")
	}
	if !allowedEvents[in.Event] {
		return validationErrorf(fmt.Sprintf("Unsupported event type: %s", in.Event))
	}

	event := models.RecommendationEvent{
		StudentID:  studentID,
		Event:      in.Event,
		EntityType: in.Entity,
		EntityID:   in.EntityID,
	}
	if in.Payload != nil {
		raw, err := json.Marshal(in.Payload)
		if err != nil {
			return validationErrorf("payload must be a JSON object")
		}
		event.Payload = datatypes.JSON(raw)
	}
	return s.db.WithContext(ctx).Create(&event).Error
}
