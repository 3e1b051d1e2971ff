package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"strays-backend/domain"
	"strays-backend/internal/api/presenters"
	"strays-backend/pkg/event"
)

type (
	EventHandler interface {
		CreateEvent(c *fiber.Ctx) error
		GetEvents(c *fiber.Ctx) error
		SignupEvent(c *fiber.Ctx) error
	}

	eventHandler struct {
		eventService event.EventService
		validator    *validator.Validate
	}
)

func NewEventHandler(eventService event.EventService, validator *validator.Validate) EventHandler {
	return &eventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

func (h *eventHandler) CreateEvent(c *fiber.Ctx) error {
	req := new(domain.CreateEventRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateEvent, err)
	}

	res, err := h.eventService.CreateEvent(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateEvent, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateEvent)
}

func (h *eventHandler) GetEvents(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.eventService.GetEvents(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEvents, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetEvents)
}

func (h *eventHandler) SignupEvent(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	eventID := c.Params("id")

	if eventID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSignupEvent, domain.ErrEventNotFound)
	}

	if err := h.eventService.SignupEvent(c.Context(), eventID, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSignupEvent, err)
		case errors.Is(err, domain.ErrAlreadySignedUp):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedSignupEvent, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSignupEvent, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSignupEvent)
}
