package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"strays-backend/domain"
	"strays-backend/internal/api/presenters"
	"strays-backend/pkg/feedback"
)

type (
	FeedbackHandler interface {
		CreateFeedback(c *fiber.Ctx) error
		GetLatestFeedback(c *fiber.Ctx) error
		GetFeedbackSentiment(c *fiber.Ctx) error
	}

	feedbackHandler struct {
		feedbackService feedback.FeedbackService
		validator       *validator.Validate
	}
)

func NewFeedbackHandler(feedbackService feedback.FeedbackService, validator *validator.Validate) FeedbackHandler {
	return &feedbackHandler{
		feedbackService: feedbackService,
		validator:       validator,
	}
}

func (h *feedbackHandler) CreateFeedback(c *fiber.Ctx) error {
	// Feedback may be submitted anonymously
	userID, _ := c.Locals("user_id").(string)

	req := new(domain.CreateFeedbackRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFeedback, err)
	}

	res, err := h.feedbackService.CreateFeedback(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFeedback, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateFeedback)
}

func (h *feedbackHandler) GetLatestFeedback(c *fiber.Ctx) error {
	res, err := h.feedbackService.GetLatestFeedback(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFeedback, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFeedback)
}

func (h *feedbackHandler) GetFeedbackSentiment(c *fiber.Ctx) error {
	res, err := h.feedbackService.GetFeedbackSentiment(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSentiment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSentiment)
}
