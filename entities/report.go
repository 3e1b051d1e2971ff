package entities

import (
	"time"

	"github.com/google/uuid"
)

type Report struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ReporterID    uuid.UUID `json:"reporter_id"`
	AnimalType    string    `gorm:"size:50" json:"animal_type"`
	Description   string    `gorm:"size:200" json:"description"`
	Location      string    `gorm:"size:200" json:"location"`
	Contact       string    `gorm:"size:100" json:"contact"`
	ReportTime    time.Time `gorm:"type:timestamptz" json:"report_time"`
	ImageFilename string    `gorm:"size:100" json:"image_filename,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`

	Reporter *User `gorm:"foreignKey:ReporterID"`
	Timestamp
}
