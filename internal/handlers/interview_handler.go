package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hiretrack/hiretrack-backend/internal/dto"
	"github.com/hiretrack/hiretrack-backend/internal/middleware"
	"github.com/hiretrack/hiretrack-backend/internal/services"
)

type InterviewHandler struct {
	pipelineService *services.PipelineService
}

func NewInterviewHandler(pipelineService *services.PipelineService) *InterviewHandler {
	return &InterviewHandler{pipelineService: pipelineService}
}

func (h *InterviewHandler) Create(c *fiber.Ctx) error {
	var req dto.InterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	interview, err := h.pipelineService.ScheduleInterview(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCandidateNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Candidate not found",
			})
		case errors.Is(err, services.ErrJobNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Job not found",
			})
		case errors.Is(err, services.ErrInvalidInterviewer):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to schedule interview",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(interview)
}

func (h *InterviewHandler) List(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	var candidateID, jobID *uuid.UUID
	if raw := c.Query("candidate_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid candidate_id",
			})
		}
		candidateID = &id
	}
	if raw := c.Query("job_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid job_id",
			})
		}
		jobID = &id
	}

	interviews, err := h.pipelineService.ListInterviews(actor, candidateID, jobID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list interviews",
		})
	}
	return c.JSON(interviews)
}

func (h *InterviewHandler) Get(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	interviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid interview ID",
		})
	}

	interview, err := h.pipelineService.GetInterview(actor, interviewID)
	if err != nil {
		if errors.Is(err, services.ErrNotAssigned) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Interview not found",
		})
	}
	return c.JSON(interview)
}

func (h *InterviewHandler) AddFeedback(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	feedback, err := h.pipelineService.RecordFeedback(actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInterviewNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Interview not found",
			})
		case errors.Is(err, services.ErrNotAssigned):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrFeedbackExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrInvalidRating):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to add feedback",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(feedback)
}
