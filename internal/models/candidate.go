package models

import (
	"time"

	"github.com/google/uuid"
)

// Status is a candidate's stage in the hiring pipeline. The set is closed:
// any write outside these six labels is rejected. No ordering graph is
// enforced beyond membership.
type Status string

const (
	StatusApplied            Status = "Applied"
	StatusScreening          Status = "Screening"
	StatusInterviewScheduled Status = "Interview Scheduled"
	StatusOfferExtended      Status = "Offer Extended"
	StatusRejected           Status = "Rejected"
	StatusHired              Status = "Hired"
)

// Statuses lists the pipeline stages in board order.
var Statuses = []Status{
	StatusApplied,
	StatusScreening,
	StatusInterviewScheduled,
	StatusOfferExtended,
	StatusRejected,
	StatusHired,
}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

type Candidate struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	CVText    string    `gorm:"column:cv_text;type:text;not null" json:"cv_text"`
	Status    Status    `gorm:"size:30;not null;index" json:"status"`
	JobID     uuid.UUID `gorm:"type:uuid;not null;index" json:"job_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
