package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationStatusChange       NotificationType = "status_change"
	NotificationInterviewScheduled NotificationType = "interview_scheduled"
	NotificationFeedbackAdded      NotificationType = "feedback_added"
)

// Notification is append-only; only the read flag is ever updated.
type Notification struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	CandidateID uuid.UUID        `gorm:"type:uuid;not null;index" json:"candidate_id"`
	Message     string           `gorm:"type:text;not null" json:"message"`
	Type        NotificationType `gorm:"size:30;not null" json:"type"`
	IsRead      bool             `gorm:"default:false" json:"is_read"`
	CreatedAt   time.Time        `json:"created_at"`
}
