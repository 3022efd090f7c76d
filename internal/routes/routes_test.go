package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hiretrack/hiretrack-backend/internal/config"
	"github.com/hiretrack/hiretrack-backend/internal/database"
	"github.com/hiretrack/hiretrack-backend/internal/handlers"
	"github.com/hiretrack/hiretrack-backend/internal/models"
	"github.com/hiretrack/hiretrack-backend/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Job{},
		&models.Candidate{},
		&models.Interview{},
		&models.Feedback{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  time.Hour,
		JWTRefreshExpiry: time.Hour,
		UploadMaxBytes:   4 * 1024 * 1024,
	}

	authService := services.NewAuthService(db, cfg)
	jobService := services.NewJobService(db)
	candidateService := services.NewCandidateService(db)
	pipelineService := services.NewPipelineService(db)
	notificationService := services.NewNotificationService(db)

	app := fiber.New()
	Setup(app, cfg, db,
		handlers.NewAuthHandler(authService),
		handlers.NewHealthHandler(),
		handlers.NewJobHandler(jobService),
		handlers.NewCandidateHandler(candidateService, cfg.UploadMaxBytes),
		handlers.NewInterviewHandler(pipelineService),
		handlers.NewKanbanHandler(pipelineService),
		handlers.NewNotificationHandler(notificationService),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func registerAndLogin(t *testing.T, app *fiber.App, username string, role models.Role) string {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"email":"%s@example.com","password":"password1","role":%q}`, username, username, role)
	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected 201 got %d", username, resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "",
		fmt.Sprintf(`{"username":%q,"password":"password1"}`, username))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: expected 200 got %d", username, resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if payload.AccessToken == "" {
		t.Fatal("empty access token")
	}
	return payload.AccessToken
}

const jobBody = `{"title":"Backend Engineer","department":"Engineering","description":"Build services","required_skills":"Go","employment_type":"Full-time"}`

func TestJobRoutesRoleGates(t *testing.T) {
	app := newTestApp(t)

	// No token at all
	resp := doJSON(t, app, http.MethodPost, "/api/v1/jobs", "", jobBody)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.StatusCode)
	}

	interviewer := registerAndLogin(t, app, "drsmith", models.RoleInterviewer)
	resp = doJSON(t, app, http.MethodPost, "/api/v1/jobs", interviewer, jobBody)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("interviewer create job: expected 403 got %d", resp.StatusCode)
	}

	recruiter := registerAndLogin(t, app, "rick", models.RoleRecruiter)
	resp = doJSON(t, app, http.MethodPost, "/api/v1/jobs", recruiter, jobBody)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("recruiter create job: expected 201 got %d", resp.StatusCode)
	}

	// Interviewers may read jobs and candidates but not write them.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/jobs", interviewer, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("interviewer list jobs: expected 200 got %d", resp.StatusCode)
	}
	resp = doJSON(t, app, http.MethodGet, "/api/v1/candidates", interviewer, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("interviewer list candidates: expected 200 got %d", resp.StatusCode)
	}
}

func TestCandidateRoleCannotReadPipeline(t *testing.T) {
	app := newTestApp(t)
	applicant := registerAndLogin(t, app, "jane", models.RoleCandidate)

	for _, path := range []string{"/api/v1/candidates", "/api/v1/kanban", "/api/v1/notifications"} {
		resp := doJSON(t, app, http.MethodGet, path, applicant, "")
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("GET %s as candidate: expected 403 got %d", path, resp.StatusCode)
		}
	}

	// But the own-profile endpoint works for any authenticated user.
	resp := doJSON(t, app, http.MethodGet, "/api/v1/auth/me", applicant, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /auth/me: expected 200 got %d", resp.StatusCode)
	}
}

func TestAdminUserManagement(t *testing.T) {
	app := newTestApp(t)
	admin := registerAndLogin(t, app, "boss", models.RoleAdmin)
	recruiter := registerAndLogin(t, app, "rick", models.RoleRecruiter)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/auth/users?role=recruiter", recruiter, "")
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("recruiter list users: expected 403 got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/v1/auth/users?role=recruiter", admin, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin list users: expected 200 got %d", resp.StatusCode)
	}
	var users []struct {
		ID         string `json:"id"`
		Username   string `json:"username"`
		IsApproved bool   `json:"is_approved"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		t.Fatalf("decode users: %v", err)
	}
	if len(users) != 1 || users[0].Username != "rick" {
		t.Fatalf("unexpected user list: %+v", users)
	}
	if users[0].IsApproved {
		t.Fatal("self-registered recruiter must start unapproved")
	}

	resp = doJSON(t, app, http.MethodPut, "/api/v1/auth/users/"+users[0].ID+"/approve", admin, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("approve: expected 200 got %d", resp.StatusCode)
	}
	var approved struct {
		IsApproved bool `json:"is_approved"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&approved); err != nil {
		t.Fatalf("decode approve: %v", err)
	}
	if !approved.IsApproved {
		t.Fatal("expected approved user")
	}
}

func TestPublicUploadCreatesApplicant(t *testing.T) {
	app := newTestApp(t)
	recruiter := registerAndLogin(t, app, "rick", models.RoleRecruiter)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/jobs", recruiter, jobBody)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create job: expected 201 got %d", resp.StatusCode)
	}
	var job struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		t.Fatalf("decode job: %v", err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("name", "Ada Example")
	_ = mw.WriteField("email", "ada@example.com")
	_ = mw.WriteField("job_id", job.ID)
	fw, err := mw.CreateFormFile("file", "cv.txt")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	_, _ = fw.Write([]byte("Ten years of Go"))
	_ = mw.Close()

	// No Authorization header: the application form is public.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/candidates/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	uploadResp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if uploadResp.StatusCode != http.StatusCreated {
		t.Fatalf("upload: expected 201 got %d", uploadResp.StatusCode)
	}
	var candidate struct {
		Status string `json:"status"`
		CVText string `json:"cv_text"`
	}
	if err := json.NewDecoder(uploadResp.Body).Decode(&candidate); err != nil {
		t.Fatalf("decode candidate: %v", err)
	}
	if candidate.Status != "Applied" {
		t.Fatalf("expected Applied got %s", candidate.Status)
	}
	if candidate.CVText != "Ten years of Go" {
		t.Fatalf("unexpected cv text: %s", candidate.CVText)
	}
}

func TestHealthIsPublic(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/v1/health", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health: expected 200 got %d", resp.StatusCode)
	}
}
