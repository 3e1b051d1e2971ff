package event

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"strays-backend/domain"
	"strays-backend/entities"
	"strays-backend/pkg/user"
)

const eventTimeLayout = "2006-01-02T15:04"

type (
	EventService interface {
		CreateEvent(ctx context.Context, req domain.CreateEventRequest) (domain.EventResponse, error)
		GetEvents(ctx context.Context, userID string) ([]domain.EventResponse, error)
		SignupEvent(ctx context.Context, eventID, userID string) error
	}

	eventService struct {
		eventRepository EventRepository
		userRepository  user.UserRepository
	}
)

func NewEventService(eventRepository EventRepository, userRepository user.UserRepository) EventService {
	return &eventService{
		eventRepository: eventRepository,
		userRepository:  userRepository,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, req domain.CreateEventRequest) (domain.EventResponse, error) {
	eventTime, err := time.Parse(eventTimeLayout, req.EventTime)
	if err != nil {
		return domain.EventResponse{}, domain.ErrInvalidEventTime
	}

	event := &entities.Event{
		Title:       req.Title,
		Description: req.Description,
		EventTime:   eventTime,
		Location:    req.Location,
	}

	if err := s.eventRepository.CreateEvent(ctx, event); err != nil {
		return domain.EventResponse{}, err
	}

	return toEventResponse(event, ""), nil
}

func (s *eventService) GetEvents(ctx context.Context, userID string) ([]domain.EventResponse, error) {
	events, err := s.eventRepository.GetEvents(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.EventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, toEventResponse(e, userID))
	}
	return result, nil
}

func (s *eventService) SignupEvent(ctx context.Context, eventID, userID string) error {
	event, err := s.eventRepository.GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEventNotFound
		}
		return err
	}

	signedUp, err := s.eventRepository.IsParticipant(ctx, eventID, userID)
	if err != nil {
		return err
	}
	if signedUp {
		return domain.ErrAlreadySignedUp
	}

	participant, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	return s.eventRepository.AddParticipant(ctx, event, participant)
}

func toEventResponse(e *entities.Event, userID string) domain.EventResponse {
	res := domain.EventResponse{
		ID:           e.ID.String(),
		Title:        e.Title,
		Description:  e.Description,
		EventTime:    e.EventTime,
		Location:     e.Location,
		Participants: len(e.Participants),
	}
	for _, p := range e.Participants {
		if p.ID.String() == userID {
			res.SignedUp = true
			break
		}
	}
	return res
}
