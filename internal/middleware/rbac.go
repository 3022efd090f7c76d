package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hiretrack/hiretrack-backend/internal/dto"
	"github.com/hiretrack/hiretrack-backend/internal/models"
	"gorm.io/gorm"
)

const currentUserKey = "current_user"

// LoadCurrentUser resolves the JWT subject to a live user record. The token
// alone is not enough: the subject must still exist and be active, and the
// role claim must be one of the known roles.
func LoadCurrentUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return unauthorized(c)
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return unauthorized(c)
		}
		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			return unauthorized(c)
		}
		roleClaim, _ := claims["role"].(string)
		if !models.Role(roleClaim).Valid() {
			return unauthorized(c)
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			return unauthorized(c)
		}
		if !user.IsActive {
			return unauthorized(c)
		}

		c.Locals(currentUserKey, &user)
		return c.Next()
	}
}

// RequireRoles is the capability gate: the loaded user's role must be a
// member of the given set.
func RequireRoles(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return unauthorized(c)
		}
		for _, r := range roles {
			if user.Role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Insufficient permissions",
		})
	}
}

// CurrentUser returns the user loaded by LoadCurrentUser, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:   true,
		Message: "Unauthorized",
	})
}
