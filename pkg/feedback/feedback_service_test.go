package feedback

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strays-backend/domain"
	"strays-backend/entities"
)

type fakeFeedbackRepo struct {
	feedbacks []*entities.Feedback
}

func (f *fakeFeedbackRepo) CreateFeedback(_ context.Context, fb *entities.Feedback) error {
	f.feedbacks = append(f.feedbacks, fb)
	return nil
}

func (f *fakeFeedbackRepo) GetLatestFeedback(_ context.Context, limit int) ([]*entities.Feedback, error) {
	if len(f.feedbacks) > limit {
		return f.feedbacks[:limit], nil
	}
	return f.feedbacks, nil
}

func (f *fakeFeedbackRepo) GetAllFeedback(_ context.Context) ([]*entities.Feedback, error) {
	return f.feedbacks, nil
}

func TestCreateFeedbackAttributedToUser(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	service := NewFeedbackService(repo)

	userID := uuid.New()
	_, err := service.CreateFeedback(context.Background(), domain.CreateFeedbackRequest{
		Message: "love the new map",
	}, userID.String())
	require.NoError(t, err)

	require.Len(t, repo.feedbacks, 1)
	require.NotNil(t, repo.feedbacks[0].UserID)
	assert.Equal(t, userID, *repo.feedbacks[0].UserID)
}

func TestCreateFeedbackAnonymous(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	service := NewFeedbackService(repo)

	res, err := service.CreateFeedback(context.Background(), domain.CreateFeedbackRequest{
		Message: "please add more events",
	}, "")
	require.NoError(t, err)

	require.Len(t, repo.feedbacks, 1)
	assert.Nil(t, repo.feedbacks[0].UserID)
	assert.Equal(t, "Anonymous", res.Username)
}

func TestCreateFeedbackRejectsBlankMessage(t *testing.T) {
	service := NewFeedbackService(&fakeFeedbackRepo{})

	_, err := service.CreateFeedback(context.Background(), domain.CreateFeedbackRequest{
		Message: "   ",
	}, "")
	assert.ErrorIs(t, err, domain.ErrEmptyFeedback)
}

func TestGetLatestFeedbackUsesUsername(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	repo.feedbacks = append(repo.feedbacks, &entities.Feedback{
		ID:          uuid.New(),
		Message:     "great initiative",
		SubmittedAt: time.Now(),
		User:        &entities.User{ID: uuid.New(), Username: "donor1"},
	})

	service := NewFeedbackService(repo)

	res, err := service.GetLatestFeedback(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "donor1", res[0].Username)
}

func TestFeedbackSentimentScoresMessages(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	repo.feedbacks = append(repo.feedbacks,
		&entities.Feedback{ID: uuid.New(), Message: "great wonderful work"},
		&entities.Feedback{ID: uuid.New(), Message: "terrible awful experience"},
	)

	service := NewFeedbackService(repo)

	res, err := service.GetFeedbackSentiment(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 2)

	assert.Greater(t, res[0].Polarity, 0.0)
	assert.Less(t, res[1].Polarity, 0.0)
}
