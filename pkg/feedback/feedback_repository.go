package feedback

import (
	"context"

	"gorm.io/gorm"

	"strays-backend/entities"
)

type (
	FeedbackRepository interface {
		CreateFeedback(ctx context.Context, feedback *entities.Feedback) error
		GetLatestFeedback(ctx context.Context, limit int) ([]*entities.Feedback, error)
		GetAllFeedback(ctx context.Context) ([]*entities.Feedback, error)
	}

	feedbackRepository struct {
		db *gorm.DB
	}
)

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) CreateFeedback(ctx context.Context, feedback *entities.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) GetLatestFeedback(ctx context.Context, limit int) ([]*entities.Feedback, error) {
	var feedbacks []*entities.Feedback
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("submitted_at DESC").
		Limit(limit).
		Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func (r *feedbackRepository) GetAllFeedback(ctx context.Context) ([]*entities.Feedback, error) {
	var feedbacks []*entities.Feedback
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("submitted_at DESC").
		Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}
