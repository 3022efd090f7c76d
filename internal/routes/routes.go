package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/hiretrack/hiretrack-backend/internal/config"
	"github.com/hiretrack/hiretrack-backend/internal/handlers"
	"github.com/hiretrack/hiretrack-backend/internal/middleware"
	"github.com/hiretrack/hiretrack-backend/internal/models"
	"gorm.io/gorm"
)

// Setup declares the whole route table with its authorization policy in
// one place. Public routes are the explicit exceptions: register, login,
// refresh, health, and the candidate-facing CV upload.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	jobHandler *handlers.JobHandler,
	candidateHandler *handlers.CandidateHandler,
	interviewHandler *handlers.InterviewHandler,
	kanbanHandler *handlers.KanbanHandler,
	notificationHandler *handlers.NotificationHandler,
) {
	api := app.Group("/api/v1")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	authn := middleware.JWTProtected(cfg)
	loadUser := middleware.LoadCurrentUser(db)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)
	recruiterOrAdmin := middleware.RequireRoles(models.RoleRecruiter, models.RoleAdmin)
	interviewerOrAbove := middleware.RequireRoles(models.RoleInterviewer, models.RoleRecruiter, models.RoleAdmin)

	api.Get("/health", healthHandler.Check)

	// Auth is public but gets a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", authn, loadUser, authHandler.Logout)
	api.Get("/auth/me", authn, loadUser, authHandler.Me)
	api.Get("/auth/users", authn, loadUser, adminOnly, authHandler.ListUsers)
	api.Post("/auth/users", authn, loadUser, adminOnly, authHandler.CreateUser)
	api.Put("/auth/users/:id/approve", authn, loadUser, adminOnly, authHandler.ApproveUser)

	// Jobs
	api.Post("/jobs", authn, loadUser, recruiterOrAdmin, jobHandler.Create)
	api.Get("/jobs", authn, loadUser, jobHandler.List)
	api.Get("/jobs/:id", authn, loadUser, jobHandler.Get)
	api.Put("/jobs/:id", authn, loadUser, recruiterOrAdmin, jobHandler.Update)
	api.Delete("/jobs/:id", authn, loadUser, recruiterOrAdmin, jobHandler.Delete)
	api.Get("/jobs/:id/candidates", authn, loadUser, interviewerOrAbove, candidateHandler.ListByJob)

	// Candidates; the upload endpoint is the public application form
	api.Post("/candidates", authn, loadUser, recruiterOrAdmin, candidateHandler.Create)
	api.Post("/candidates/upload", candidateHandler.Upload)
	api.Get("/candidates", authn, loadUser, interviewerOrAbove, candidateHandler.List)
	api.Get("/candidates/:id", authn, loadUser, interviewerOrAbove, candidateHandler.Get)
	api.Put("/candidates/:id", authn, loadUser, recruiterOrAdmin, candidateHandler.Update)
	api.Delete("/candidates/:id", authn, loadUser, recruiterOrAdmin, candidateHandler.Delete)
	api.Put("/candidates/:id/status", authn, loadUser, recruiterOrAdmin, candidateHandler.SetStatus)

	// Interviews & feedback
	api.Post("/interviews", authn, loadUser, recruiterOrAdmin, interviewHandler.Create)
	api.Get("/interviews", authn, loadUser, interviewHandler.List)
	api.Get("/interviews/:id", authn, loadUser, interviewHandler.Get)
	api.Post("/feedback", authn, loadUser, interviewerOrAbove, interviewHandler.AddFeedback)

	// Kanban board
	api.Get("/kanban", authn, loadUser, interviewerOrAbove, kanbanHandler.Board)
	api.Put("/kanban/move", authn, loadUser, recruiterOrAdmin, kanbanHandler.Move)

	// Notifications
	api.Get("/notifications", authn, loadUser, interviewerOrAbove, notificationHandler.List)
	api.Put("/notifications/read-all", authn, loadUser, interviewerOrAbove, notificationHandler.MarkAllRead)
	api.Put("/notifications/:id/read", authn, loadUser, interviewerOrAbove, notificationHandler.MarkRead)
}
