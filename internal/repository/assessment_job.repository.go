package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"riskwise/internal/models"
)

type AssessmentJobRepository interface {
	SaveJob(job *models.AssessmentJob) error
	GetJobByID(id string) (*models.AssessmentJob, error)
	UpdateJobStatus(jobID, status string, errorMessage *string) error
	UpdateJobStatusWithResult(jobID, status string, assessmentID uint) error
	GetJobsByUserID(userID uint, limit int) ([]*models.AssessmentJob, error)
	GetPendingJobs(limit int) ([]*models.AssessmentJob, error)
	CancelJob(jobID string) error
	GetActiveJobsCount(userID uint) (int64, error)
	CleanupOldJobs(olderThan time.Time) error
	IsJobOwnedByUser(jobID string, userID uint) (bool, error)
}

type assessmentJobRepository struct {
	db *gorm.DB
}

func NewAssessmentJobRepository(db *gorm.DB) AssessmentJobRepository {
	return &assessmentJobRepository{db}
}

func (r *assessmentJobRepository) SaveJob(job *models.AssessmentJob) error {
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	job.UpdatedAt = time.Now()
	return r.db.Create(job).Error
}

func (r *assessmentJobRepository) GetJobByID(id string) (*models.AssessmentJob, error) {
	var job models.AssessmentJob
	err := r.db.Preload("Assessment").Where("id = ?", id).First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *assessmentJobRepository) UpdateJobStatus(jobID, status string, errorMessage *string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}

	if errorMessage != nil {
		updates["error_message"] = *errorMessage
	}

	// Set completed_at if job is finished
	if status == models.JobStatusCompleted || status == models.JobStatusFailed || status == models.JobStatusCancelled {
		now := time.Now()
		updates["completed_at"] = &now
	}

	result := r.db.Model(&models.AssessmentJob{}).Where("id = ?", jobID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job with ID %s not found", jobID)
	}
	return nil
}

func (r *assessmentJobRepository) UpdateJobStatusWithResult(jobID, status string, assessmentID uint) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status":        status,
		"assessment_id": assessmentID,
		"updated_at":    now,
		"completed_at":  &now,
	}

	result := r.db.Model(&models.AssessmentJob{}).Where("id = ?", jobID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job with ID %s not found", jobID)
	}
	return nil
}

func (r *assessmentJobRepository) GetJobsByUserID(userID uint, limit int) ([]*models.AssessmentJob, error) {
	var jobs []*models.AssessmentJob
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&jobs).Error
	return jobs, err
}

func (r *assessmentJobRepository) GetPendingJobs(limit int) ([]*models.AssessmentJob, error) {
	var jobs []*models.AssessmentJob
	query := r.db.Where("status = ?", models.JobStatusPending).Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&jobs).Error
	return jobs, err
}

func (r *assessmentJobRepository) CancelJob(jobID string) error {
	result := r.db.Model(&models.AssessmentJob{}).
		Where("id = ? AND status IN ?", jobID, []string{models.JobStatusPending, models.JobStatusProcessing}).
		Updates(map[string]interface{}{
			"status":     models.JobStatusCancelled,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job with ID %s cannot be cancelled", jobID)
	}
	return nil
}

func (r *assessmentJobRepository) GetActiveJobsCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.AssessmentJob{}).
		Where("user_id = ? AND status IN ?", userID, []string{models.JobStatusPending, models.JobStatusProcessing}).
		Count(&count).Error
	return count, err
}

func (r *assessmentJobRepository) CleanupOldJobs(olderThan time.Time) error {
	return r.db.Where("created_at < ? AND status IN ?", olderThan,
		[]string{models.JobStatusCompleted, models.JobStatusFailed, models.JobStatusCancelled}).
		Delete(&models.AssessmentJob{}).Error
}

func (r *assessmentJobRepository) IsJobOwnedByUser(jobID string, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.AssessmentJob{}).
		Where("id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error
	return count > 0, err
}
