package handlers

import (
	"github.com/gofiber/fiber/v2"

	"strays-backend/domain"
	"strays-backend/internal/api/presenters"
	"strays-backend/pkg/stats"
)

type (
	StatsHandler interface {
		GetStats(c *fiber.Ctx) error
	}

	statsHandler struct {
		statsService stats.StatsService
	}
)

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &statsHandler{statsService: statsService}
}

func (h *statsHandler) GetStats(c *fiber.Ctx) error {
	res, err := h.statsService.GetStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStats)
}
