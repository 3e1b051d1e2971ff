package entities

import (
	"time"

	"github.com/google/uuid"
)

type Donation struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonorID         uuid.UUID  `json:"donor_id"`
	Description     string     `gorm:"size:200" json:"description"`
	FoodType        string     `gorm:"size:50" json:"food_type"`
	Quantity        int        `json:"quantity"`
	PickupLocation  string     `gorm:"size:200" json:"pickup_location"`
	PickupTime      *time.Time `json:"pickup_time,omitempty"`
	PickupLatitude  *float64   `json:"pickup_latitude,omitempty"`
	PickupLongitude *float64   `json:"pickup_longitude,omitempty"`

	Donor *User `gorm:"foreignKey:DonorID"`
	Timestamp
}
