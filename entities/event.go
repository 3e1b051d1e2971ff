package entities

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title       string    `gorm:"size:100" json:"title"`
	Description string    `gorm:"size:300" json:"description"`
	EventTime   time.Time `json:"event_time"`
	Location    string    `gorm:"size:200" json:"location"`

	Participants []*User `gorm:"many2many:event_participants" json:"participants,omitempty"`
	Timestamp
}
