package dto

import "github.com/google/uuid"

type CandidateRequest struct {
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	CVText string    `json:"cv_text"`
	Status string    `json:"status"`
	JobID  uuid.UUID `json:"job_id"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

type StatusUpdateResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type BoardMoveRequest struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	NewStatus   string    `json:"new_status"`
}

type BoardMoveResponse struct {
	ID        uuid.UUID `json:"id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
}
