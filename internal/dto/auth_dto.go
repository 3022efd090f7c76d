package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/hiretrack/hiretrack-backend/internal/models"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID         uuid.UUID   `json:"id"`
	Username   string      `json:"username"`
	Email      string      `json:"email"`
	Role       models.Role `json:"role"`
	IsActive   bool        `json:"is_active"`
	IsApproved bool        `json:"is_approved"`
	CreatedAt  time.Time   `json:"created_at"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		IsActive:   u.IsActive,
		IsApproved: u.IsApproved,
		CreatedAt:  u.CreatedAt,
	}
}
