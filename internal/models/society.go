package models

import (
	"time"

	"gorm.io/datatypes"
)

type Society struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	Name        string            `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Description *string           `gorm:"type:text" json:"description,omitempty"`
	Category    *string           `gorm:"size:100;index" json:"category,omitempty"`
	Campus      *string           `gorm:"size:100" json:"campus,omitempty"`
	Interests   []SocietyInterest `gorm:"foreignKey:SocietyID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time         `json:"created_at"`
}

// SocietyScore holds precomputed ranking signals maintained outside this service.
type SocietyScore struct {
	SocietyID       uint      `gorm:"primaryKey" json:"society_id"`
	PopularityScore float64   `gorm:"not null;default:0" json:"popularity_score"`
	FreshnessScore  float64   `gorm:"not null;default:0" json:"freshness_score"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SocietyID uint      `gorm:"not null;index" json:"society_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	StartsAt  time.Time `gorm:"not null;index" json:"starts_at"`
}

const RecommendationEventDismiss = "dismiss"

// RecommendationEvent is an append-only log of feedback on recommendation cards.
type RecommendationEvent struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	StudentID  string         `gorm:"type:varchar(36);not null;index:idx_rec_event_lookup" json:"student_id"`
	Event      string         `gorm:"size:50;not null;index:idx_rec_event_lookup" json:"event"`
	EntityType string         `gorm:"size:50;not null;index:idx_rec_event_lookup" json:"entity_type"`
	EntityID   string         `gorm:"size:64;not null" json:"entity_id"`
	Payload    datatypes.JSON `json:"payload,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
