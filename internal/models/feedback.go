package models

import (
	"time"

	"github.com/google/uuid"
)

// Feedback holds the interview outcome. The unique index on InterviewID is
// the one-feedback-per-interview guard; concurrent submissions race on the
// constraint, not on an application-level pre-check.
type Feedback struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	InterviewID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"interview_id"`
	Comments       string    `gorm:"type:text;not null" json:"comments"`
	Rating         int       `gorm:"not null" json:"rating"`
	Strengths      string    `gorm:"type:text" json:"strengths,omitempty"`
	Weaknesses     string    `gorm:"type:text" json:"weaknesses,omitempty"`
	Recommendation string    `gorm:"size:100" json:"recommendation,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}
