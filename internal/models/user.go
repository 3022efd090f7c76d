package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of account roles. It is validated at every
// boundary (registration, admin user creation, token decode, list filter)
// instead of being carried as a free-form string.
type Role string

const (
	RoleRecruiter   Role = "recruiter"
	RoleAdmin       Role = "admin"
	RoleInterviewer Role = "interviewer"
	RoleCandidate   Role = "candidate"
)

var Roles = []Role{RoleRecruiter, RoleAdmin, RoleInterviewer, RoleCandidate}

func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// NeedsApproval reports whether self-registered accounts with this role
// start unapproved and require an explicit admin approval.
func (r Role) NeedsApproval() bool {
	return r == RoleRecruiter || r == RoleAdmin || r == RoleInterviewer
}

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username   string    `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Email      string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	Role       Role      `gorm:"size:20;not null" json:"role"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	IsApproved bool      `gorm:"default:false" json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
