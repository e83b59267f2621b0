package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"riskwise/internal/insight"
	"riskwise/internal/models"
	"riskwise/internal/repository"
	"riskwise/internal/risk"
)

// MockAssessmentRepository mocks repository.AssessmentRepository
type MockAssessmentRepository struct {
	mock.Mock
}

func (m *MockAssessmentRepository) SaveAssessment(assessment *models.Assessment) error {
	args := m.Called(assessment)
	return args.Error(0)
}

func (m *MockAssessmentRepository) UpdateAssessment(assessment *models.Assessment) error {
	args := m.Called(assessment)
	return args.Error(0)
}

func (m *MockAssessmentRepository) GetAssessmentByID(id uint) (*models.Assessment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Assessment), args.Error(1)
}

func (m *MockAssessmentRepository) GetAssessmentsByUserID(userID uint) ([]models.Assessment, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Assessment), args.Error(1)
}

func (m *MockAssessmentRepository) GetAssessmentsByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Assessment, error) {
	args := m.Called(userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Assessment), args.Error(1)
}

func (m *MockAssessmentRepository) DeleteAssessment(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAssessmentRepository) GetRiskTrendByUserID(userID uint, startDate, endDate time.Time) ([]repository.AssessmentScore, error) {
	args := m.Called(userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.AssessmentScore), args.Error(1)
}

// MockAssessmentJobRepository mocks repository.AssessmentJobRepository
type MockAssessmentJobRepository struct {
	mock.Mock
}

func (m *MockAssessmentJobRepository) SaveJob(job *models.AssessmentJob) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockAssessmentJobRepository) GetJobByID(id string) (*models.AssessmentJob, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentJob), args.Error(1)
}

func (m *MockAssessmentJobRepository) UpdateJobStatus(jobID, status string, errorMessage *string) error {
	args := m.Called(jobID, status, errorMessage)
	return args.Error(0)
}

func (m *MockAssessmentJobRepository) UpdateJobStatusWithResult(jobID, status string, assessmentID uint) error {
	args := m.Called(jobID, status, assessmentID)
	return args.Error(0)
}

func (m *MockAssessmentJobRepository) GetJobsByUserID(userID uint, limit int) ([]*models.AssessmentJob, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AssessmentJob), args.Error(1)
}

func (m *MockAssessmentJobRepository) GetPendingJobs(limit int) ([]*models.AssessmentJob, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AssessmentJob), args.Error(1)
}

func (m *MockAssessmentJobRepository) CancelJob(jobID string) error {
	args := m.Called(jobID)
	return args.Error(0)
}

func (m *MockAssessmentJobRepository) GetActiveJobsCount(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssessmentJobRepository) CleanupOldJobs(olderThan time.Time) error {
	args := m.Called(olderThan)
	return args.Error(0)
}

func (m *MockAssessmentJobRepository) IsJobOwnedByUser(jobID string, userID uint) (bool, error) {
	args := m.Called(jobID, userID)
	return args.Bool(0), args.Error(1)
}

// MockAssessmentJobWorker mocks the controller's job submitter
type MockAssessmentJobWorker struct {
	mock.Mock
}

func (m *MockAssessmentJobWorker) SubmitJob(jobRequest models.AssessmentJobRequest) error {
	args := m.Called(jobRequest)
	return args.Error(0)
}

// MockInsightGenerator mocks services.InsightGenerator
type MockInsightGenerator struct {
	mock.Mock
}

func (m *MockInsightGenerator) GenerateRiskInsights(ctx context.Context, rec risk.PatientRecord, report *risk.AssessmentReport) (string, []insight.ConditionInsight, insight.TokenUsage, error) {
	args := m.Called(ctx, rec, report)
	var insights []insight.ConditionInsight
	if args.Get(1) != nil {
		insights = args.Get(1).([]insight.ConditionInsight)
	}
	return args.String(0), insights, args.Get(2).(insight.TokenUsage), args.Error(3)
}

// MockScenarioCache mocks the controller's scenario cache
type MockScenarioCache struct {
	mock.Mock
}

func (m *MockScenarioCache) StoreScenarioResult(scenarioID string, result map[string]interface{}, duration time.Duration) error {
	args := m.Called(scenarioID, result, duration)
	return args.Error(0)
}

func (m *MockScenarioCache) GetScenarioResult(scenarioID string) (map[string]interface{}, bool, error) {
	args := m.Called(scenarioID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(map[string]interface{}), args.Bool(1), args.Error(2)
}
