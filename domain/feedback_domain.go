package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateFeedback = "thank you for your feedback"
	MessageSuccessGetFeedback    = "feedback retrieved successfully"
	MessageSuccessGetSentiment   = "feedback sentiment retrieved successfully"

	MessageFailedCreateFeedback = "failed to submit feedback"
	MessageFailedGetFeedback    = "failed to retrieve feedback"
	MessageFailedGetSentiment   = "failed to retrieve feedback sentiment"

	ErrEmptyFeedback = errors.New("feedback message is empty")
)

type (
	CreateFeedbackRequest struct {
		Message string `json:"message" validate:"required,max=500"`
	}

	FeedbackResponse struct {
		ID          string    `json:"id"`
		Username    string    `json:"username"`
		Message     string    `json:"message"`
		SubmittedAt time.Time `json:"submitted_at"`
	}

	FeedbackSentimentResponse struct {
		Feedback     FeedbackResponse `json:"feedback"`
		Polarity     float64          `json:"polarity"`
		Subjectivity float64          `json:"subjectivity"`
	}
)
