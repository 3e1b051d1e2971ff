package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateReport = "report submitted successfully"
	MessageSuccessGetReports   = "reports retrieved successfully"
	MessageSuccessGetReportMap = "report markers retrieved successfully"

	MessageFailedCreateReport = "failed to submit report"
	MessageFailedGetReports   = "failed to retrieve reports"
	MessageFailedGetReportMap = "failed to retrieve report markers"

	ErrReportNotFound = errors.New("report not found")
)

type (
	CreateReportRequest struct {
		AnimalType  string                `json:"animal_type" form:"animal_type" validate:"required,max=50"`
		Description string                `json:"description" form:"description" validate:"required,max=200"`
		Location    string                `json:"location" form:"location" validate:"required,max=200"`
		Contact     string                `json:"contact" form:"contact" validate:"required,max=100"`
		Image       *multipart.FileHeader `json:"-" form:"-"`
	}

	ReportResponse struct {
		ID               string    `json:"id"`
		AnimalType       string    `json:"animal_type"`
		Description      string    `json:"description"`
		Location         string    `json:"location"`
		Contact          string    `json:"contact"`
		ReportTime       time.Time `json:"report_time"`
		ImageFilename    string    `json:"image_filename,omitempty"`
		ImageURL         string    `json:"image_url,omitempty"`
		ReporterUsername string    `json:"reporter_username,omitempty"`
	}

	ReportMapResponse struct {
		Markers     []Marker    `json:"markers"`
		Heat        [][]float64 `json:"heat"`
		AnimalTypes []string    `json:"animal_types"`
	}
)
