package models

import "time"

type Interest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	ParentID  *uint     `gorm:"index" json:"parent_id,omitempty"`
	Parent    *Interest `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type StudentInterest struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	StudentID  string   `gorm:"type:varchar(36);not null;uniqueIndex:idx_student_interest" json:"student_id"`
	InterestID uint     `gorm:"not null;uniqueIndex:idx_student_interest;index" json:"interest_id"`
	Weight     float64  `gorm:"not null;default:0;check:weight >= 0" json:"weight"`
	Student    User     `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Interest   Interest `gorm:"foreignKey:InterestID;constraint:OnDelete:CASCADE" json:"interest"`
}

type SocietyInterest struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	SocietyID  uint     `gorm:"not null;uniqueIndex:idx_society_interest" json:"society_id"`
	InterestID uint     `gorm:"not null;uniqueIndex:idx_society_interest;index" json:"interest_id"`
	Weight     float64  `gorm:"not null;default:1" json:"weight"`
	Interest   Interest `gorm:"foreignKey:InterestID;constraint:OnDelete:CASCADE" json:"-"`
}

// QuizOptionInterest links a quiz option to an interest it implies. A nil
// Weight means the configured default applies.
type QuizOptionInterest struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	OptionID   uint     `gorm:"not null;uniqueIndex:idx_option_interest" json:"option_id"`
	InterestID uint     `gorm:"not null;uniqueIndex:idx_option_interest;index" json:"interest_id"`
	Weight     *float64 `json:"weight,omitempty"`
	Interest   Interest `gorm:"foreignKey:InterestID;constraint:OnDelete:CASCADE" json:"-"`
}
