package feedback

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"strays-backend/domain"
	"strays-backend/entities"
	"strays-backend/pkg/sentiment"
)

const latestFeedbackLimit = 10

type (
	FeedbackService interface {
		CreateFeedback(ctx context.Context, req domain.CreateFeedbackRequest, userID string) (domain.FeedbackResponse, error)
		GetLatestFeedback(ctx context.Context) ([]domain.FeedbackResponse, error)
		GetFeedbackSentiment(ctx context.Context) ([]domain.FeedbackSentimentResponse, error)
	}

	feedbackService struct {
		feedbackRepository FeedbackRepository
	}
)

func NewFeedbackService(feedbackRepository FeedbackRepository) FeedbackService {
	return &feedbackService{feedbackRepository: feedbackRepository}
}

func (s *feedbackService) CreateFeedback(ctx context.Context, req domain.CreateFeedbackRequest, userID string) (domain.FeedbackResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return domain.FeedbackResponse{}, domain.ErrEmptyFeedback
	}

	feedback := &entities.Feedback{
		Message:     req.Message,
		SubmittedAt: time.Now(),
	}
	if userID != "" {
		parsed, err := uuid.Parse(userID)
		if err != nil {
			return domain.FeedbackResponse{}, domain.ErrParseUUID
		}
		feedback.UserID = &parsed
	}

	if err := s.feedbackRepository.CreateFeedback(ctx, feedback); err != nil {
		return domain.FeedbackResponse{}, err
	}

	return toFeedbackResponse(feedback), nil
}

func (s *feedbackService) GetLatestFeedback(ctx context.Context) ([]domain.FeedbackResponse, error) {
	feedbacks, err := s.feedbackRepository.GetLatestFeedback(ctx, latestFeedbackLimit)
	if err != nil {
		return nil, err
	}

	result := make([]domain.FeedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		result = append(result, toFeedbackResponse(f))
	}
	return result, nil
}

func (s *feedbackService) GetFeedbackSentiment(ctx context.Context) ([]domain.FeedbackSentimentResponse, error) {
	feedbacks, err := s.feedbackRepository.GetAllFeedback(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.FeedbackSentimentResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		score := sentiment.Analyze(f.Message)
		result = append(result, domain.FeedbackSentimentResponse{
			Feedback:     toFeedbackResponse(f),
			Polarity:     score.Polarity,
			Subjectivity: score.Subjectivity,
		})
	}
	return result, nil
}

func toFeedbackResponse(f *entities.Feedback) domain.FeedbackResponse {
	username := "Anonymous"
	if f.User != nil {
		username = f.User.Username
	}
	return domain.FeedbackResponse{
		ID:          f.ID.String(),
		Username:    username,
		Message:     f.Message,
		SubmittedAt: f.SubmittedAt,
	}
}
