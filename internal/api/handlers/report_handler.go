package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"strays-backend/domain"
	"strays-backend/internal/api/presenters"
	"strays-backend/pkg/report"
)

type (
	ReportHandler interface {
		CreateReport(c *fiber.Ctx) error
		GetReports(c *fiber.Ctx) error
		GetReportByID(c *fiber.Ctx) error
		GetReportMap(c *fiber.Ctx) error
	}

	reportHandler struct {
		reportService report.ReportService
		validator     *validator.Validate
	}
)

func NewReportHandler(reportService report.ReportService, validator *validator.Validate) ReportHandler {
	return &reportHandler{
		reportService: reportService,
		validator:     validator,
	}
}

func (h *reportHandler) CreateReport(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreateReportRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	// Image is optional
	req.Image, _ = c.FormFile("image")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReport, err)
	}

	res, err := h.reportService.CreateReport(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateReport)
}

func (h *reportHandler) GetReports(c *fiber.Ctx) error {
	animalType := c.Query("animal_type")

	res, err := h.reportService.GetReports(c.Context(), animalType)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReports, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReports)
}

func (h *reportHandler) GetReportByID(c *fiber.Ctx) error {
	reportID := c.Params("id")
	if reportID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReports, domain.ErrReportNotFound)
	}

	res, err := h.reportService.GetReportByID(c.Context(), reportID)
	if err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetReports, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReports, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReports)
}

func (h *reportHandler) GetReportMap(c *fiber.Ctx) error {
	animalType := c.Query("animal_type")

	res, err := h.reportService.GetReportMarkers(c.Context(), animalType)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReportMap, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReportMap)
}
