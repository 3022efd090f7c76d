package services

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/hiretrack/hiretrack-backend/internal/dto"
	"github.com/hiretrack/hiretrack-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrInvalidStatus     = errors.New("invalid status")
)

type CandidateService struct {
	db *gorm.DB
}

func NewCandidateService(db *gorm.DB) *CandidateService {
	return &CandidateService{db: db}
}

func (s *CandidateService) Create(req *dto.CandidateRequest) (*models.Candidate, error) {
	var job models.Job
	if err := s.db.First(&job, "id = ?", req.JobID).Error; err != nil {
		return nil, ErrJobNotFound
	}

	status := models.Status(req.Status)
	if req.Status == "" {
		status = models.StatusApplied
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	candidate := models.Candidate{
		ID:     uuid.New(),
		Name:   req.Name,
		Email:  req.Email,
		CVText: req.CVText,
		Status: status,
		JobID:  req.JobID,
	}
	if err := s.db.Create(&candidate).Error; err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return &candidate, nil
}

// CreateFromUpload stores a candidate from the public application form. The
// uploaded CV is kept verbatim when it is valid UTF-8, otherwise only a
// marker naming the file is stored.
func (s *CandidateService) CreateFromUpload(name, email string, jobID uuid.UUID, filename string, content []byte) (*models.Candidate, error) {
	cvText := string(content)
	if !utf8.Valid(content) {
		cvText = fmt.Sprintf("Binary content from %s", filename)
	}

	return s.Create(&dto.CandidateRequest{
		Name:   name,
		Email:  email,
		CVText: cvText,
		Status: string(models.StatusApplied),
		JobID:  jobID,
	})
}

func (s *CandidateService) List(offset, limit int) ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := s.db.Offset(offset).Limit(limit).Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

func (s *CandidateService) Get(candidateID uuid.UUID) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := s.db.First(&candidate, "id = ?", candidateID).Error; err != nil {
		return nil, ErrCandidateNotFound
	}
	return &candidate, nil
}

func (s *CandidateService) ListByJob(jobID uuid.UUID) ([]models.Candidate, error) {
	if err := s.db.First(&models.Job{}, "id = ?", jobID).Error; err != nil {
		return nil, ErrJobNotFound
	}

	var candidates []models.Candidate
	if err := s.db.Where("job_id = ?", jobID).Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

func (s *CandidateService) Update(candidateID uuid.UUID, req *dto.CandidateRequest) (*models.Candidate, error) {
	candidate, err := s.Get(candidateID)
	if err != nil {
		return nil, err
	}

	if req.JobID != uuid.Nil {
		if err := s.db.First(&models.Job{}, "id = ?", req.JobID).Error; err != nil {
			return nil, ErrJobNotFound
		}
		candidate.JobID = req.JobID
	}
	if req.Status != "" {
		status := models.Status(req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		candidate.Status = status
	}
	candidate.Name = req.Name
	candidate.Email = req.Email
	candidate.CVText = req.CVText

	if err := s.db.Save(candidate).Error; err != nil {
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}
	return candidate, nil
}

// Delete removes the candidate together with its interviews, their
// feedback, and its notifications in one transaction.
func (s *CandidateService) Delete(candidateID uuid.UUID) error {
	candidate, err := s.Get(candidateID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var interviewIDs []uuid.UUID
		if err := tx.Model(&models.Interview{}).
			Where("candidate_id = ?", candidateID).
			Pluck("id", &interviewIDs).Error; err != nil {
			return err
		}
		if len(interviewIDs) > 0 {
			if err := tx.Where("interview_id IN ?", interviewIDs).Delete(&models.Feedback{}).Error; err != nil {
				return err
			}
			if err := tx.Where("candidate_id = ?", candidateID).Delete(&models.Interview{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("candidate_id = ?", candidateID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(candidate).Error
	})
}

// SetStatus overwrites the pipeline status. Legality is membership in the
// closed label set; no ordering graph is enforced, and no notification is
// emitted on this raw path.
func (s *CandidateService) SetStatus(candidateID uuid.UUID, newStatus string) (*models.Candidate, error) {
	status := models.Status(newStatus)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	candidate, err := s.Get(candidateID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(candidate).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	candidate.Status = status
	return candidate, nil
}
