package dto

import (
	"time"

	"github.com/google/uuid"
)

type InterviewRequest struct {
	CandidateID     uuid.UUID  `json:"candidate_id"`
	JobID           uuid.UUID  `json:"job_id"`
	InterviewerName string     `json:"interviewer_name"`
	InterviewerID   *uuid.UUID `json:"interviewer_id"`
	ScheduledAt     time.Time  `json:"scheduled_at"`
	DurationMinutes int        `json:"duration_minutes"`
}

type FeedbackRequest struct {
	InterviewID    uuid.UUID `json:"interview_id"`
	Rating         int       `json:"rating"`
	Comments       string    `json:"comments"`
	Strengths      string    `json:"strengths"`
	Weaknesses     string    `json:"weaknesses"`
	Recommendation string    `json:"recommendation"`
}
