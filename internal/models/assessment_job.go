package models

import (
	"time"

	"gorm.io/gorm"
)

// AssessmentJob tracks one async assessment through the worker pool. Async
// submission keeps narrative generation latency off the request path.
type AssessmentJob struct {
	ID           string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID       uint           `gorm:"not null;index" json:"user_id"`
	Status       string         `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	AssessmentID *uint          `gorm:"index" json:"assessment_id,omitempty"`
	InputPayload string         `gorm:"type:text" json:"-"`
	ErrorMessage *string        `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Assessment *Assessment `gorm:"foreignKey:AssessmentID" json:"assessment,omitempty"`
}

// Job status constants
const (
	JobStatusPending    = "pending"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
	JobStatusCancelled  = "cancelled"
)

func (j *AssessmentJob) TableName() string {
	return "assessment_jobs"
}

// AssessmentJobRequest is the unit of work handed to the worker pool.
type AssessmentJobRequest struct {
	JobID  string          `json:"job_id"`
	UserID uint            `json:"user_id"`
	Input  AssessmentInput `json:"input"`
}
