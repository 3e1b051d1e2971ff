package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username string    `gorm:"uniqueIndex;size:50" json:"username"`
	Password string    `json:"-"`
	Email    string    `gorm:"uniqueIndex;size:100" json:"email"`
	Role     string    `json:"role"` // donor, volunteer, admin
	Points   int       `json:"points"`

	Donations []*Donation `gorm:"foreignKey:DonorID"`
	Reports   []*Report   `gorm:"foreignKey:ReporterID"`
	Feedbacks []*Feedback `gorm:"foreignKey:UserID"`
	Events    []*Event    `gorm:"many2many:event_participants"`
	Timestamp
}
