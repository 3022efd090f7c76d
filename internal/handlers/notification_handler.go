package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hiretrack/hiretrack-backend/internal/dto"
	"github.com/hiretrack/hiretrack-backend/internal/services"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	var candidateID *uuid.UUID
	if raw := c.Query("candidate_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid candidate_id",
			})
		}
		candidateID = &id
	}
	unreadOnly := c.QueryBool("unread_only", false)

	notifications, err := h.notificationService.List(candidateID, unreadOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list notifications",
		})
	}
	return c.JSON(notifications)
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	notificationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid notification ID",
		})
	}

	notification, err := h.notificationService.MarkRead(notificationID)
	if err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Notification not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to mark notification read",
		})
	}

	return c.JSON(fiber.Map{"id": notification.ID, "is_read": true})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Query("candidate_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid candidate_id",
		})
	}

	count, err := h.notificationService.MarkAllRead(candidateID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to mark notifications read",
		})
	}

	if count == 0 {
		return c.JSON(fiber.Map{"message": "No unread notifications found"})
	}
	return c.JSON(fiber.Map{"message": fmt.Sprintf("%d notifications marked as read", count)})
}
