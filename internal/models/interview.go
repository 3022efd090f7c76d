package models

import (
	"time"

	"github.com/google/uuid"
)

// Interview links a candidate to an interviewer at a scheduled time.
// InterviewerUserID is the source of truth when the interviewer has an
// account; InterviewerName is the derived (or free-text, for external
// interviewers) display name.
type Interview struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CandidateID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"candidate_id"`
	JobID             uuid.UUID  `gorm:"type:uuid;not null;index" json:"job_id"`
	InterviewerName   string     `gorm:"size:255;not null" json:"interviewer_name"`
	InterviewerUserID *uuid.UUID `gorm:"type:uuid;index" json:"interviewer_user_id"`
	ScheduledAt       time.Time  `gorm:"not null" json:"scheduled_at"`
	DurationMinutes   int        `gorm:"default:60" json:"duration_minutes"`
	Completed         bool       `gorm:"default:false" json:"completed"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
