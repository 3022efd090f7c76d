package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hiretrack/hiretrack-backend/internal/models"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

func (s *NotificationService) List(candidateID *uuid.UUID, unreadOnly bool) ([]models.Notification, error) {
	query := s.db.Model(&models.Notification{})
	if candidateID != nil {
		query = query.Where("candidate_id = ?", *candidateID)
	}
	if unreadOnly {
		query = query.Where("is_read = false")
	}

	var notifications []models.Notification
	if err := query.Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationService) MarkRead(notificationID uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	if err := s.db.First(&notification, "id = ?", notificationID).Error; err != nil {
		return nil, ErrNotificationNotFound
	}

	if err := s.db.Model(&notification).Update("is_read", true).Error; err != nil {
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}
	notification.IsRead = true
	return &notification, nil
}

// MarkAllRead marks every unread notification for a candidate and returns
// how many were updated.
func (s *NotificationService) MarkAllRead(candidateID uuid.UUID) (int64, error) {
	result := s.db.Model(&models.Notification{}).
		Where("candidate_id = ? AND is_read = false", candidateID).
		Update("is_read", true)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", result.Error)
	}
	return result.RowsAffected, nil
}
