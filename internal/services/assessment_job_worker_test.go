package services_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"riskwise/internal/mocks"
	"riskwise/internal/models"
	"riskwise/internal/risk"
	"riskwise/internal/services"
)

func workerTestInput() models.AssessmentInput {
	return models.AssessmentInput{
		Age:              45,
		Gender:           "Female",
		Height:           165,
		Weight:           70,
		Smoking:          "Never",
		Alcohol:          "None",
		Exercise:         "Moderate",
		Diet:             "Mediterranean",
		FamilyCancer:     "None",
		SystolicBP:       128,
		DiastolicBP:      82,
		HeartRate:        72,
		FastingGlucose:   97,
		HbA1c:            5.7,
		TotalCholesterol: 201,
		LDLCholesterol:   120,
		HDLCholesterol:   54,
	}
}

func TestSubmitJobNotRunning(t *testing.T) {
	jobRepo := new(mocks.MockAssessmentJobRepository)
	assessmentRepo := new(mocks.MockAssessmentRepository)

	worker := services.NewAssessmentJobWorker(jobRepo, assessmentRepo, risk.NewEngine(), nil, 1)

	err := worker.SubmitJob(models.AssessmentJobRequest{JobID: "job-1", UserID: 1, Input: workerTestInput()})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not running")
}

func TestWorkerProcessesSubmittedJob(t *testing.T) {
	jobRepo := new(mocks.MockAssessmentJobRepository)
	assessmentRepo := new(mocks.MockAssessmentRepository)

	jobRepo.On("GetPendingJobs", 100).Return([]*models.AssessmentJob{}, nil)
	jobRepo.On("GetActiveJobsCount", uint(1)).Return(int64(0), nil)
	jobRepo.On("UpdateJobStatus", "job-1", models.JobStatusProcessing, (*string)(nil)).Return(nil)
	assessmentRepo.On("SaveAssessment", mock.AnythingOfType("*models.Assessment")).Return(nil)

	done := make(chan struct{})
	jobRepo.On("UpdateJobStatusWithResult", "job-1", models.JobStatusCompleted, mock.AnythingOfType("uint")).
		Run(func(args mock.Arguments) { close(done) }).
		Return(nil)

	worker := services.NewAssessmentJobWorker(jobRepo, assessmentRepo, risk.NewEngine(), nil, 1)
	worker.Start()
	defer worker.Stop()

	err := worker.SubmitJob(models.AssessmentJobRequest{JobID: "job-1", UserID: 1, Input: workerTestInput()})
	assert.NoError(t, err)

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("job was not processed in time")
	}

	jobRepo.AssertExpectations(t)
	assessmentRepo.AssertExpectations(t)
}

func TestWorkerFailsJobOnBadStoredInput(t *testing.T) {
	jobRepo := new(mocks.MockAssessmentJobRepository)
	assessmentRepo := new(mocks.MockAssessmentRepository)

	// Pending job recovered from the database with a corrupt payload
	jobRepo.On("GetPendingJobs", 100).Return([]*models.AssessmentJob{
		{ID: "job-bad", UserID: 1, Status: models.JobStatusPending, InputPayload: "{not json"},
	}, nil)

	failed := make(chan struct{})
	jobRepo.On("UpdateJobStatus", "job-bad", models.JobStatusFailed, mock.AnythingOfType("*string")).
		Run(func(args mock.Arguments) { close(failed) }).
		Return(nil)

	worker := services.NewAssessmentJobWorker(jobRepo, assessmentRepo, risk.NewEngine(), nil, 1)
	worker.Start()
	defer worker.Stop()

	select {
	case <-failed:
	case <-time.After(10 * time.Second):
		t.Fatal("corrupt job was not failed in time")
	}
}

func TestWorkerRecoversPendingJobs(t *testing.T) {
	jobRepo := new(mocks.MockAssessmentJobRepository)
	assessmentRepo := new(mocks.MockAssessmentRepository)

	payload, err := json.Marshal(workerTestInput())
	assert.NoError(t, err)

	jobRepo.On("GetPendingJobs", 100).Return([]*models.AssessmentJob{
		{ID: "job-recovered", UserID: 1, Status: models.JobStatusPending, InputPayload: string(payload)},
	}, nil)
	jobRepo.On("UpdateJobStatus", "job-recovered", models.JobStatusProcessing, (*string)(nil)).Return(nil)
	assessmentRepo.On("SaveAssessment", mock.AnythingOfType("*models.Assessment")).Return(nil)

	done := make(chan struct{})
	jobRepo.On("UpdateJobStatusWithResult", "job-recovered", models.JobStatusCompleted, mock.AnythingOfType("uint")).
		Run(func(args mock.Arguments) { close(done) }).
		Return(nil)

	worker := services.NewAssessmentJobWorker(jobRepo, assessmentRepo, risk.NewEngine(), nil, 1)
	worker.Start()
	defer worker.Stop()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("recovered job was not processed in time")
	}
}

func TestSubmitJobEnforcesConcurrencyCap(t *testing.T) {
	jobRepo := new(mocks.MockAssessmentJobRepository)
	assessmentRepo := new(mocks.MockAssessmentRepository)

	jobRepo.On("GetPendingJobs", 100).Return([]*models.AssessmentJob{}, nil)
	jobRepo.On("GetActiveJobsCount", uint(1)).Return(int64(50), nil)

	worker := services.NewAssessmentJobWorker(jobRepo, assessmentRepo, risk.NewEngine(), nil, 1)
	worker.Start()
	defer worker.Stop()

	err := worker.SubmitJob(models.AssessmentJobRequest{JobID: "job-1", UserID: 1, Input: workerTestInput()})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "too many active jobs")
}
