package event

import (
	"context"

	"gorm.io/gorm"

	"strays-backend/entities"
)

type (
	EventRepository interface {
		CreateEvent(ctx context.Context, event *entities.Event) error
		GetEvents(ctx context.Context) ([]*entities.Event, error)
		GetEventByID(ctx context.Context, id string) (*entities.Event, error)
		IsParticipant(ctx context.Context, eventID, userID string) (bool, error)
		AddParticipant(ctx context.Context, event *entities.Event, participant *entities.User) error
	}

	eventRepository struct {
		db *gorm.DB
	}
)

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) CreateEvent(ctx context.Context, event *entities.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) GetEvents(ctx context.Context) ([]*entities.Event, error) {
	var events []*entities.Event
	if err := r.db.WithContext(ctx).
		Preload("Participants").
		Order("event_time ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) GetEventByID(ctx context.Context, id string) (*entities.Event, error) {
	var event entities.Event
	if err := r.db.WithContext(ctx).
		Preload("Participants").
		Where("id = ?", id).
		First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) IsParticipant(ctx context.Context, eventID, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("event_participants").
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *eventRepository) AddParticipant(ctx context.Context, event *entities.Event, participant *entities.User) error {
	return r.db.WithContext(ctx).
		Model(event).
		Association("Participants").
		Append(participant)
}
