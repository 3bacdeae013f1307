package models

import "time"

// QuizResponse is unique per (quiz, student); resubmitting deletes and
// recreates it.
type QuizResponse struct {
	ID          uint                 `gorm:"primaryKey" json:"id"`
	QuizID      uint                 `gorm:"not null;uniqueIndex:idx_response_quiz_student" json:"quiz_id"`
	StudentID   string               `gorm:"type:varchar(36);not null;uniqueIndex:idx_response_quiz_student;index" json:"student_id"`
	SubmittedAt time.Time            `gorm:"not null" json:"submitted_at"`
	Answers     []QuizResponseAnswer `gorm:"foreignKey:ResponseID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

// Exactly one of OptionID and FreeText is set.
type QuizResponseAnswer struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	ResponseID uint    `gorm:"not null;index" json:"response_id"`
	QuestionID uint    `gorm:"not null" json:"question_id"`
	OptionID   *uint   `json:"option_id,omitempty"`
	FreeText   *string `gorm:"type:text" json:"free_text,omitempty"`
}
