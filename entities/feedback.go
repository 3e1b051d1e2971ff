package entities

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	Message     string     `gorm:"size:500" json:"message"`
	SubmittedAt time.Time  `gorm:"type:timestamp" json:"submitted_at"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
