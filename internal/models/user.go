package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleStudent         = "student"
	RoleSocietyAdmin    = "society_admin"
	RoleUniversityAdmin = "university_admin"
)

type User struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:32;not null;default:'student'" json:"role"`
	FirstName    string    `gorm:"size:100" json:"first_name"`
	LastName     string    `gorm:"size:100" json:"last_name"`
	Campus       string    `gorm:"size:100" json:"campus"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// StudentProfile.Interests is a projection of StudentInterest rows sorted by
// interest name. It is rewritten on every edge mutation and never read back
// as input.
type StudentProfile struct {
	StudentID string                      `gorm:"type:varchar(36);primaryKey" json:"student_id"`
	Student   User                        `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Interests datatypes.JSONSlice[string] `json:"interests"`
	UpdatedAt time.Time                   `json:"updated_at"`
}
