package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hiretrack/hiretrack-backend/internal/dto"
	"github.com/hiretrack/hiretrack-backend/internal/services"
)

type KanbanHandler struct {
	pipelineService *services.PipelineService
}

func NewKanbanHandler(pipelineService *services.PipelineService) *KanbanHandler {
	return &KanbanHandler{pipelineService: pipelineService}
}

// Board returns all candidates grouped into the six pipeline buckets.
func (h *KanbanHandler) Board(c *fiber.Ctx) error {
	board, err := h.pipelineService.BoardView()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load board",
		})
	}
	return c.JSON(board)
}

// Move handles drag-and-drop status changes on the board.
func (h *KanbanHandler) Move(c *fiber.Ctx) error {
	var req dto.BoardMoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.pipelineService.MoveOnBoard(req.CandidateID, req.NewStatus)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCandidateNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Candidate not found",
			})
		case errors.Is(err, services.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to move candidate",
			})
		}
	}

	return c.JSON(resp)
}
