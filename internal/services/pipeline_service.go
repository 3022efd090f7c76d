package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hiretrack/hiretrack-backend/internal/dto"
	"github.com/hiretrack/hiretrack-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrInterviewNotFound  = errors.New("interview not found")
	ErrFeedbackExists     = errors.New("feedback already exists for this interview")
	ErrNotAssigned        = errors.New("you can only access interviews you are assigned to")
	ErrInvalidInterviewer = errors.New("interviewer user not found or not eligible")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
)

// PipelineService owns the candidate status workflow: scheduling
// interviews, recording feedback, and moving candidates across the board.
// Every mutation runs as one transaction so a status change never commits
// without its notification and vice versa.
type PipelineService struct {
	db *gorm.DB
}

func NewPipelineService(db *gorm.DB) *PipelineService {
	return &PipelineService{db: db}
}

// ScheduleInterview creates an interview and, when the candidate is still
// in Applied or Screening, advances them to Interview Scheduled. The status
// is never regressed by scheduling. One interview_scheduled notification is
// written in the same transaction.
//
// When InterviewerID is set it is the source of truth: the referenced user
// must exist, hold an interviewing role, and the display name is derived
// from it. A bare free-text name stands for an external interviewer.
func (s *PipelineService) ScheduleInterview(req *dto.InterviewRequest) (*models.Interview, error) {
	var candidate models.Candidate
	if err := s.db.First(&candidate, "id = ?", req.CandidateID).Error; err != nil {
		return nil, ErrCandidateNotFound
	}
	var job models.Job
	if err := s.db.First(&job, "id = ?", req.JobID).Error; err != nil {
		return nil, ErrJobNotFound
	}

	name := req.InterviewerName
	if req.InterviewerID != nil {
		var interviewer models.User
		if err := s.db.First(&interviewer, "id = ?", *req.InterviewerID).Error; err != nil {
			return nil, ErrInvalidInterviewer
		}
		switch interviewer.Role {
		case models.RoleInterviewer, models.RoleRecruiter, models.RoleAdmin:
		default:
			return nil, ErrInvalidInterviewer
		}
		name = interviewer.Username
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = 60
	}

	interview := models.Interview{
		ID:                uuid.New(),
		CandidateID:       req.CandidateID,
		JobID:             req.JobID,
		InterviewerName:   name,
		InterviewerUserID: req.InterviewerID,
		ScheduledAt:       req.ScheduledAt,
		DurationMinutes:   duration,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&interview).Error; err != nil {
			return fmt.Errorf("failed to create interview: %w", err)
		}

		if candidate.Status == models.StatusApplied || candidate.Status == models.StatusScreening {
			if err := tx.Model(&candidate).Update("status", models.StatusInterviewScheduled).Error; err != nil {
				return fmt.Errorf("failed to advance candidate status: %w", err)
			}
		}

		notification := models.Notification{
			ID:          uuid.New(),
			CandidateID: req.CandidateID,
			Message:     fmt.Sprintf("Interview scheduled with %s on %s", name, req.ScheduledAt.Format("2006-01-02 15:04")),
			Type:        models.NotificationInterviewScheduled,
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		return nil, err
	}

	return &interview, nil
}

// ListInterviews returns interviews visible to the actor. Interviewers only
// see interviews they are assigned to; everyone else sees all.
func (s *PipelineService) ListInterviews(actor *models.User, candidateID, jobID *uuid.UUID) ([]models.Interview, error) {
	query := s.db.Model(&models.Interview{})
	if actor.Role == models.RoleInterviewer {
		query = query.Where("interviewer_user_id = ?", actor.ID)
	}
	if candidateID != nil {
		query = query.Where("candidate_id = ?", *candidateID)
	}
	if jobID != nil {
		query = query.Where("job_id = ?", *jobID)
	}

	var interviews []models.Interview
	if err := query.Find(&interviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	return interviews, nil
}

func (s *PipelineService) GetInterview(actor *models.User, interviewID uuid.UUID) (*models.Interview, error) {
	var interview models.Interview
	if err := s.db.First(&interview, "id = ?", interviewID).Error; err != nil {
		return nil, ErrInterviewNotFound
	}

	if actor.Role == models.RoleInterviewer {
		if interview.InterviewerUserID == nil || *interview.InterviewerUserID != actor.ID {
			return nil, ErrNotAssigned
		}
	}
	return &interview, nil
}

// RecordFeedback creates the single feedback row for an interview, marks
// the interview completed, and writes a feedback_added notification, all in
// one transaction. Interviewers may only submit for interviews assigned to
// them. The unique index on feedback.interview_id is the real duplicate
// guard; the pre-read only produces a friendlier error.
func (s *PipelineService) RecordFeedback(actor *models.User, req *dto.FeedbackRequest) (*models.Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	var interview models.Interview
	if err := s.db.First(&interview, "id = ?", req.InterviewID).Error; err != nil {
		return nil, ErrInterviewNotFound
	}

	if actor.Role == models.RoleInterviewer {
		if interview.InterviewerUserID == nil || *interview.InterviewerUserID != actor.ID {
			return nil, ErrNotAssigned
		}
	}

	var existing models.Feedback
	if err := s.db.Where("interview_id = ?", req.InterviewID).First(&existing).Error; err == nil {
		return nil, ErrFeedbackExists
	}

	feedback := models.Feedback{
		ID:             uuid.New(),
		InterviewID:    req.InterviewID,
		Comments:       req.Comments,
		Rating:         req.Rating,
		Strengths:      req.Strengths,
		Weaknesses:     req.Weaknesses,
		Recommendation: req.Recommendation,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&feedback).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrFeedbackExists
			}
			return fmt.Errorf("failed to create feedback: %w", err)
		}

		if err := tx.Model(&interview).Update("completed", true).Error; err != nil {
			return fmt.Errorf("failed to complete interview: %w", err)
		}

		notification := models.Notification{
			ID:          uuid.New(),
			CandidateID: interview.CandidateID,
			Message:     fmt.Sprintf("Feedback added for your interview with %s", interview.InterviewerName),
			Type:        models.NotificationFeedbackAdded,
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		return nil, err
	}

	return &feedback, nil
}

// MoveOnBoard is the board drag-and-drop path: same legality check as the
// raw status set, plus one status_change notification in the same
// transaction.
func (s *PipelineService) MoveOnBoard(candidateID uuid.UUID, newStatus string) (*dto.BoardMoveResponse, error) {
	status := models.Status(newStatus)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	var candidate models.Candidate
	if err := s.db.First(&candidate, "id = ?", candidateID).Error; err != nil {
		return nil, ErrCandidateNotFound
	}

	oldStatus := candidate.Status
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&candidate).Update("status", status).Error; err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}

		notification := models.Notification{
			ID:          uuid.New(),
			CandidateID: candidateID,
			Message:     fmt.Sprintf("Candidate status changed from %s to %s", oldStatus, status),
			Type:        models.NotificationStatusChange,
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		return nil, err
	}

	return &dto.BoardMoveResponse{
		ID:        candidateID,
		OldStatus: string(oldStatus),
		NewStatus: string(status),
	}, nil
}

// BoardView groups all candidates into the six fixed buckets. Buckets with
// no candidates are present and empty.
func (s *PipelineService) BoardView() (map[models.Status][]models.Candidate, error) {
	var candidates []models.Candidate
	if err := s.db.Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	board := make(map[models.Status][]models.Candidate, len(models.Statuses))
	for _, status := range models.Statuses {
		board[status] = []models.Candidate{}
	}
	for _, candidate := range candidates {
		board[candidate.Status] = append(board[candidate.Status], candidate)
	}
	return board, nil
}
