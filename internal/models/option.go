package models

type QuizOption struct {
	ID         uint                 `gorm:"primaryKey" json:"id"`
	QuestionID uint                 `gorm:"not null;index" json:"question_id"`
	Label      string               `gorm:"size:500;not null" json:"label"`
	Value      string               `gorm:"size:255;not null" json:"value"`
	Interests  []QuizOptionInterest `gorm:"foreignKey:OptionID;constraint:OnDelete:CASCADE" json:"interests,omitempty"`
}
