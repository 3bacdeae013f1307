package models

import "time"

// Quiz with a nil SocietyID is the global matchmaker quiz. When several
// exist the most recently created one is used.
type Quiz struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	SocietyID   *uint          `gorm:"index" json:"society_id,omitempty"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	CreatedBy   string         `gorm:"type:varchar(36);not null" json:"created_by"`
	Questions   []QuizQuestion `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
}
