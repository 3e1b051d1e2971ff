package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateEvent = "event created successfully"
	MessageSuccessGetEvents   = "events retrieved successfully"
	MessageSuccessSignupEvent = "signed up for event successfully"

	MessageFailedCreateEvent = "failed to create event"
	MessageFailedGetEvents   = "failed to retrieve events"
	MessageFailedSignupEvent = "failed to sign up for event"

	ErrEventNotFound    = errors.New("event not found")
	ErrAlreadySignedUp  = errors.New("already signed up for this event")
	ErrInvalidEventTime = errors.New("invalid event time")
)

type (
	CreateEventRequest struct {
		Title       string `json:"title" validate:"required,max=100"`
		Description string `json:"description" validate:"omitempty,max=300"`
		EventTime   string `json:"event_time" validate:"required"`
		Location    string `json:"location" validate:"required,max=200"`
	}

	EventResponse struct {
		ID           string    `json:"id"`
		Title        string    `json:"title"`
		Description  string    `json:"description"`
		EventTime    time.Time `json:"event_time"`
		Location     string    `json:"location"`
		Participants int       `json:"participants"`
		SignedUp     bool      `json:"signed_up"`
	}
)
