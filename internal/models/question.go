package models

const (
	QuestionKindSingle = "single"
	QuestionKindMulti  = "multi"
	QuestionKindText   = "text"
)

// QuizQuestion rows keep insertion order through their primary key.
type QuizQuestion struct {
	ID      uint         `gorm:"primaryKey" json:"id"`
	QuizID  uint         `gorm:"not null;index" json:"quiz_id"`
	Prompt  string       `gorm:"type:text;not null" json:"prompt"`
	Kind    string       `gorm:"size:10;not null;default:'single'" json:"kind"`
	Options []QuizOption `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}
