package handlers

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hiretrack/hiretrack-backend/internal/dto"
	"github.com/hiretrack/hiretrack-backend/internal/services"
)

type CandidateHandler struct {
	candidateService *services.CandidateService
	uploadMaxBytes   int
}

func NewCandidateHandler(candidateService *services.CandidateService, uploadMaxBytes int) *CandidateHandler {
	return &CandidateHandler{candidateService: candidateService, uploadMaxBytes: uploadMaxBytes}
}

func (h *CandidateHandler) Create(c *fiber.Ctx) error {
	var req dto.CandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	candidate, err := h.candidateService.Create(&req)
	if err != nil {
		return candidateError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(candidate)
}

// Upload handles the public application form: multipart name, email,
// job_id and a CV file.
func (h *CandidateHandler) Upload(c *fiber.Ctx) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	jobID, err := uuid.Parse(c.FormValue("job_id"))
	if name == "" || email == "" || err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "name, email and job_id are required",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "CV file is required",
		})
	}
	if file.Size > int64(h.uploadMaxBytes) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "CV file too large",
		})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to read CV file",
		})
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to read CV file",
		})
	}

	candidate, err := h.candidateService.CreateFromUpload(name, email, jobID, file.Filename, content)
	if err != nil {
		return candidateError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(candidate)
}

func (h *CandidateHandler) List(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	candidates, err := h.candidateService.List(skip, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list candidates",
		})
	}
	return c.JSON(candidates)
}

func (h *CandidateHandler) Get(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid candidate ID",
		})
	}

	candidate, err := h.candidateService.Get(candidateID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Candidate not found",
		})
	}
	return c.JSON(candidate)
}

func (h *CandidateHandler) ListByJob(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid job ID",
		})
	}

	candidates, err := h.candidateService.ListByJob(jobID)
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Job not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list candidates",
		})
	}
	return c.JSON(candidates)
}

func (h *CandidateHandler) Update(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid candidate ID",
		})
	}

	var req dto.CandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	candidate, err := h.candidateService.Update(candidateID, &req)
	if err != nil {
		return candidateError(c, err)
	}
	return c.JSON(candidate)
}

func (h *CandidateHandler) Delete(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid candidate ID",
		})
	}

	if err := h.candidateService.Delete(candidateID); err != nil {
		return candidateError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Candidate deleted successfully"})
}

func (h *CandidateHandler) SetStatus(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid candidate ID",
		})
	}

	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	candidate, err := h.candidateService.SetStatus(candidateID, req.Status)
	if err != nil {
		return candidateError(c, err)
	}

	return c.JSON(dto.StatusUpdateResponse{
		ID:     candidate.ID,
		Status: string(candidate.Status),
	})
}

func candidateError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrCandidateNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Candidate not found",
		})
	case errors.Is(err, services.ErrJobNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Job not found",
		})
	case errors.Is(err, services.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}
