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
	ErrJobNotFound = errors.New("job not found")
	ErrJobInUse    = errors.New("job has dependent candidates or interviews")
)

type JobService struct {
	db *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

func (s *JobService) Create(req *dto.JobRequest) (*models.Job, error) {
	job := models.Job{
		ID:             uuid.New(),
		Title:          req.Title,
		Department:     req.Department,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		EmploymentType: req.EmploymentType,
	}
	if err := s.db.Create(&job).Error; err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return &job, nil
}

func (s *JobService) List(offset, limit int) ([]models.Job, error) {
	var jobs []models.Job
	if err := s.db.Offset(offset).Limit(limit).Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

func (s *JobService) Get(jobID uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := s.db.First(&job, "id = ?", jobID).Error; err != nil {
		return nil, ErrJobNotFound
	}
	return &job, nil
}

func (s *JobService) Update(jobID uuid.UUID, req *dto.JobRequest) (*models.Job, error) {
	job, err := s.Get(jobID)
	if err != nil {
		return nil, err
	}

	job.Title = req.Title
	job.Department = req.Department
	job.Description = req.Description
	job.RequiredSkills = req.RequiredSkills
	job.EmploymentType = req.EmploymentType

	if err := s.db.Save(job).Error; err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// Delete refuses to remove a job that still has candidates or interviews;
// orphaning dependent rows is never allowed.
func (s *JobService) Delete(jobID uuid.UUID) error {
	if _, err := s.Get(jobID); err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&models.Candidate{}).Where("job_id = ?", jobID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check candidates: %w", err)
	}
	if count > 0 {
		return ErrJobInUse
	}
	if err := s.db.Model(&models.Interview{}).Where("job_id = ?", jobID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check interviews: %w", err)
	}
	if count > 0 {
		return ErrJobInUse
	}

	if err := s.db.Delete(&models.Job{}, "id = ?", jobID).Error; err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}
