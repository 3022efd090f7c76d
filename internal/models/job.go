package models

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	Department     string    `gorm:"size:255;not null" json:"department"`
	Description    string    `gorm:"type:text;not null" json:"description"`
	RequiredSkills string    `gorm:"type:text;not null" json:"required_skills"`
	EmploymentType string    `gorm:"size:50;not null" json:"employment_type"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
