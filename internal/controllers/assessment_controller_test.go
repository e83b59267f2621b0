package controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"riskwise/internal/controllers"
	"riskwise/internal/mocks"
	"riskwise/internal/models"
	"riskwise/internal/risk"
)

func setupAssessmentTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func setupAssessmentControllerWithMocks() (*controllers.AssessmentController, *mocks.MockAssessmentRepository, *mocks.MockAssessmentJobRepository, *mocks.MockAssessmentJobWorker, *mocks.MockScenarioCache) {
	mockRepo := new(mocks.MockAssessmentRepository)
	mockJobRepo := new(mocks.MockAssessmentJobRepository)
	mockWorker := new(mocks.MockAssessmentJobWorker)
	mockCache := new(mocks.MockScenarioCache)

	controller := controllers.NewAssessmentController(
		mockRepo,
		mockJobRepo,
		mockWorker,
		risk.NewEngine(),
		nil,
		mockCache,
	)

	return controller, mockRepo, mockJobRepo, mockWorker, mockCache
}

func addAssessmentAuthMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func validAssessmentInput() models.AssessmentInput {
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

// storedAssessment builds a realistic persisted row: scored by the real
// engine, owned by userID.
func storedAssessment(t *testing.T, id, userID uint) *models.Assessment {
	t.Helper()

	input := validAssessmentInput()
	rec, err := risk.NewPatientRecord(input.ToPatientInput())
	assert.NoError(t, err)

	report, err := risk.NewEngine().CalculateAllRisks(rec)
	assert.NoError(t, err)

	assessment := models.NewAssessment(userID, input, rec)
	assessment.ID = id
	assessment.SetReport(report)
	return assessment
}

func TestNewAssessmentController(t *testing.T) {
	controller, _, _, _, _ := setupAssessmentControllerWithMocks()
	assert.NotNil(t, controller)
}

func TestCreateAssessment(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*mocks.MockAssessmentRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful assessment",
			body: validAssessmentInput(),
			setupMocks: func(repo *mocks.MockAssessmentRepository) {
				repo.On("SaveAssessment", mock.AnythingOfType("*models.Assessment")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Assessment completed",
		},
		{
			name:           "missing required fields",
			body:           map[string]interface{}{"age": 45},
			setupMocks:     func(repo *mocks.MockAssessmentRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid assessment input",
		},
		{
			name: "save failure",
			body: validAssessmentInput(),
			setupMocks: func(repo *mocks.MockAssessmentRepository) {
				repo.On("SaveAssessment", mock.AnythingOfType("*models.Assessment")).Return(errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to save assessment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo, _, _, _ := setupAssessmentControllerWithMocks()
			tt.setupMocks(mockRepo)

			router := setupAssessmentTestRouter()
			router.POST("/assessment", addAssessmentAuthMiddleware(1), controller.CreateAssessment)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/assessment", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedMsg)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCreateAssessmentResults(t *testing.T) {
	controller, mockRepo, _, _, _ := setupAssessmentControllerWithMocks()
	mockRepo.On("SaveAssessment", mock.AnythingOfType("*models.Assessment")).Return(nil)

	router := setupAssessmentTestRouter()
	router.POST("/assessment", addAssessmentAuthMiddleware(1), controller.CreateAssessment)

	body, _ := json.Marshal(validAssessmentInput())
	req := httptest.NewRequest(http.MethodPost, "/assessment", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Data struct {
			Results []struct {
				Condition      string   `json:"condition"`
				RiskPercentage float64  `json:"risk_percentage"`
				KeyFactors     []string `json:"key_factors"`
			} `json:"results"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Data.Results, len(risk.ConditionOrder))
	for i, res := range response.Data.Results {
		assert.Equal(t, risk.ConditionOrder[i], res.Condition)
		assert.GreaterOrEqual(t, res.RiskPercentage, 0.0)
		assert.LessOrEqual(t, res.RiskPercentage, 100.0)
		assert.LessOrEqual(t, len(res.KeyFactors), 3)
	}
}

func TestCreateAssessmentAsync(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*mocks.MockAssessmentJobRepository, *mocks.MockAssessmentJobWorker)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "job accepted",
			setupMocks: func(jobRepo *mocks.MockAssessmentJobRepository, worker *mocks.MockAssessmentJobWorker) {
				jobRepo.On("SaveJob", mock.AnythingOfType("*models.AssessmentJob")).Return(nil)
				worker.On("SubmitJob", mock.AnythingOfType("models.AssessmentJobRequest")).Return(nil)
			},
			expectedStatus: http.StatusAccepted,
			expectedMsg:    "Assessment job queued",
		},
		{
			name: "worker saturated",
			setupMocks: func(jobRepo *mocks.MockAssessmentJobRepository, worker *mocks.MockAssessmentJobWorker) {
				jobRepo.On("SaveJob", mock.AnythingOfType("*models.AssessmentJob")).Return(nil)
				worker.On("SubmitJob", mock.AnythingOfType("models.AssessmentJobRequest")).Return(errors.New("job queue is full"))
				jobRepo.On("UpdateJobStatus", mock.AnythingOfType("string"), models.JobStatusFailed, mock.AnythingOfType("*string")).Return(nil)
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedMsg:    "Failed to queue assessment job",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, _, mockJobRepo, mockWorker, _ := setupAssessmentControllerWithMocks()
			tt.setupMocks(mockJobRepo, mockWorker)

			router := setupAssessmentTestRouter()
			router.POST("/assessment/async", addAssessmentAuthMiddleware(1), controller.CreateAssessmentAsync)

			body, _ := json.Marshal(validAssessmentInput())
			req := httptest.NewRequest(http.MethodPost, "/assessment/async", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedMsg)
			mockJobRepo.AssertExpectations(t)
			mockWorker.AssertExpectations(t)
		})
	}
}

func TestGetJobStatus(t *testing.T) {
	t.Run("owned job", func(t *testing.T) {
		controller, _, mockJobRepo, _, _ := setupAssessmentControllerWithMocks()
		job := &models.AssessmentJob{ID: "job-1", UserID: 1, Status: models.JobStatusProcessing}
		mockJobRepo.On("IsJobOwnedByUser", "job-1", uint(1)).Return(true, nil)
		mockJobRepo.On("GetJobByID", "job-1").Return(job, nil)

		router := setupAssessmentTestRouter()
		router.GET("/assessment/job/:job_id/status", addAssessmentAuthMiddleware(1), controller.GetJobStatus)

		req := httptest.NewRequest(http.MethodGet, "/assessment/job/job-1/status", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), models.JobStatusProcessing)
	})

	t.Run("someone else's job", func(t *testing.T) {
		controller, _, mockJobRepo, _, _ := setupAssessmentControllerWithMocks()
		mockJobRepo.On("IsJobOwnedByUser", "job-2", uint(1)).Return(false, nil)

		router := setupAssessmentTestRouter()
		router.GET("/assessment/job/:job_id/status", addAssessmentAuthMiddleware(1), controller.GetJobStatus)

		req := httptest.NewRequest(http.MethodGet, "/assessment/job/job-2/status", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetJobResult(t *testing.T) {
	t.Run("completed job", func(t *testing.T) {
		controller, _, mockJobRepo, _, _ := setupAssessmentControllerWithMocks()
		assessment := storedAssessment(t, 7, 1)
		assessmentID := assessment.ID
		job := &models.AssessmentJob{
			ID:           "job-1",
			UserID:       1,
			Status:       models.JobStatusCompleted,
			AssessmentID: &assessmentID,
			Assessment:   assessment,
		}
		mockJobRepo.On("IsJobOwnedByUser", "job-1", uint(1)).Return(true, nil)
		mockJobRepo.On("GetJobByID", "job-1").Return(job, nil)

		router := setupAssessmentTestRouter()
		router.GET("/assessment/job/:job_id/result", addAssessmentAuthMiddleware(1), controller.GetJobResult)

		req := httptest.NewRequest(http.MethodGet, "/assessment/job/job-1/result", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "type_2_diabetes")
	})

	t.Run("job still processing", func(t *testing.T) {
		controller, _, mockJobRepo, _, _ := setupAssessmentControllerWithMocks()
		job := &models.AssessmentJob{ID: "job-1", UserID: 1, Status: models.JobStatusProcessing}
		mockJobRepo.On("IsJobOwnedByUser", "job-1", uint(1)).Return(true, nil)
		mockJobRepo.On("GetJobByID", "job-1").Return(job, nil)

		router := setupAssessmentTestRouter()
		router.GET("/assessment/job/:job_id/result", addAssessmentAuthMiddleware(1), controller.GetJobResult)

		req := httptest.NewRequest(http.MethodGet, "/assessment/job/job-1/result", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Job has not completed")
	})
}

func TestCancelJob(t *testing.T) {
	controller, _, mockJobRepo, _, _ := setupAssessmentControllerWithMocks()
	mockJobRepo.On("IsJobOwnedByUser", "job-1", uint(1)).Return(true, nil)
	mockJobRepo.On("CancelJob", "job-1").Return(nil)

	router := setupAssessmentTestRouter()
	router.POST("/assessment/job/:job_id/cancel", addAssessmentAuthMiddleware(1), controller.CancelJob)

	req := httptest.NewRequest(http.MethodPost, "/assessment/job/job-1/cancel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Job cancelled")
	mockJobRepo.AssertExpectations(t)
}

func TestWhatIfAssessment(t *testing.T) {
	t.Run("lower weight lowers diabetes risk", func(t *testing.T) {
		controller, mockRepo, _, _, mockCache := setupAssessmentControllerWithMocks()
		assessment := storedAssessment(t, 7, 1)
		mockRepo.On("GetAssessmentByID", uint(7)).Return(assessment, nil)
		mockCache.On("StoreScenarioResult", mock.AnythingOfType("string"), mock.Anything, mock.Anything).Return(nil)

		router := setupAssessmentTestRouter()
		router.POST("/assessment/what-if", addAssessmentAuthMiddleware(1), controller.WhatIfAssessment)

		weight := 58.0
		exercise := "Very Active"
		body, _ := json.Marshal(models.WhatIfInput{
			AssessmentID: 7,
			Weight:       &weight,
			Exercise:     &exercise,
		})
		req := httptest.NewRequest(http.MethodPost, "/assessment/what-if", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Data struct {
				ScenarioID string `json:"scenario_id"`
				Deltas     []struct {
					Condition string  `json:"condition"`
					Delta     float64 `json:"delta"`
				} `json:"deltas"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response.Data.ScenarioID)
		assert.Len(t, response.Data.Deltas, len(risk.ConditionOrder))
		assert.Equal(t, "type_2_diabetes", response.Data.Deltas[0].Condition)
		assert.LessOrEqual(t, response.Data.Deltas[0].Delta, 0.0)
		mockCache.AssertExpectations(t)
	})

	t.Run("someone else's assessment", func(t *testing.T) {
		controller, mockRepo, _, _, _ := setupAssessmentControllerWithMocks()
		assessment := storedAssessment(t, 7, 2)
		mockRepo.On("GetAssessmentByID", uint(7)).Return(assessment, nil)

		router := setupAssessmentTestRouter()
		router.POST("/assessment/what-if", addAssessmentAuthMiddleware(1), controller.WhatIfAssessment)

		body, _ := json.Marshal(models.WhatIfInput{AssessmentID: 7})
		req := httptest.NewRequest(http.MethodPost, "/assessment/what-if", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetScenario(t *testing.T) {
	t.Run("cached scenario", func(t *testing.T) {
		controller, _, _, _, mockCache := setupAssessmentControllerWithMocks()
		// user_id is float64 after the JSON round trip through Redis
		mockCache.On("GetScenarioResult", "scn-1").Return(map[string]interface{}{
			"scenario_id": "scn-1",
			"user_id":     float64(1),
		}, true, nil)

		router := setupAssessmentTestRouter()
		router.GET("/assessment/what-if/:scenario_id", addAssessmentAuthMiddleware(1), controller.GetScenario)

		req := httptest.NewRequest(http.MethodGet, "/assessment/what-if/scn-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "scn-1")
	})

	t.Run("expired scenario", func(t *testing.T) {
		controller, _, _, _, mockCache := setupAssessmentControllerWithMocks()
		mockCache.On("GetScenarioResult", "scn-2").Return(nil, false, nil)

		router := setupAssessmentTestRouter()
		router.GET("/assessment/what-if/:scenario_id", addAssessmentAuthMiddleware(1), controller.GetScenario)

		req := httptest.NewRequest(http.MethodGet, "/assessment/what-if/scn-2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("someone else's scenario", func(t *testing.T) {
		controller, _, _, _, mockCache := setupAssessmentControllerWithMocks()
		mockCache.On("GetScenarioResult", "scn-3").Return(map[string]interface{}{
			"scenario_id": "scn-3",
			"user_id":     float64(2),
		}, true, nil)

		router := setupAssessmentTestRouter()
		router.GET("/assessment/what-if/:scenario_id", addAssessmentAuthMiddleware(1), controller.GetScenario)

		req := httptest.NewRequest(http.MethodGet, "/assessment/what-if/scn-3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetAssessmentByID(t *testing.T) {
	t.Run("owned assessment", func(t *testing.T) {
		controller, mockRepo, _, _, _ := setupAssessmentControllerWithMocks()
		mockRepo.On("GetAssessmentByID", uint(7)).Return(storedAssessment(t, 7, 1), nil)

		router := setupAssessmentTestRouter()
		router.GET("/assessment/:id", addAssessmentAuthMiddleware(1), controller.GetAssessmentByID)

		req := httptest.NewRequest(http.MethodGet, "/assessment/7", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "type_2_diabetes")
	})

	t.Run("someone else's assessment", func(t *testing.T) {
		controller, mockRepo, _, _, _ := setupAssessmentControllerWithMocks()
		mockRepo.On("GetAssessmentByID", uint(7)).Return(storedAssessment(t, 7, 2), nil)

		router := setupAssessmentTestRouter()
		router.GET("/assessment/:id", addAssessmentAuthMiddleware(1), controller.GetAssessmentByID)

		req := httptest.NewRequest(http.MethodGet, "/assessment/7", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetUserAssessments(t *testing.T) {
	controller, mockRepo, _, _, _ := setupAssessmentControllerWithMocks()
	mockRepo.On("GetAssessmentsByUserID", uint(1)).Return([]models.Assessment{*storedAssessment(t, 7, 1)}, nil)

	router := setupAssessmentTestRouter()
	router.GET("/assessment/me", addAssessmentAuthMiddleware(1), controller.GetUserAssessments)

	req := httptest.NewRequest(http.MethodGet, "/assessment/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestGetAssessmentsByDateRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		controller, mockRepo, _, _, _ := setupAssessmentControllerWithMocks()
		mockRepo.On("GetAssessmentsByUserIDAndDateRange", uint(1), mock.Anything, mock.Anything).
			Return([]models.Assessment{}, nil)

		router := setupAssessmentTestRouter()
		router.GET("/assessment/me/date-range", addAssessmentAuthMiddleware(1), controller.GetAssessmentsByDateRange)

		req := httptest.NewRequest(http.MethodGet, "/assessment/me/date-range?start_date=2026-01-01&end_date=2026-01-31", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("malformed dates", func(t *testing.T) {
		controller, _, _, _, _ := setupAssessmentControllerWithMocks()

		router := setupAssessmentTestRouter()
		router.GET("/assessment/me/date-range", addAssessmentAuthMiddleware(1), controller.GetAssessmentsByDateRange)

		req := httptest.NewRequest(http.MethodGet, "/assessment/me/date-range?start_date=January&end_date=2026-01-31", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteAssessment(t *testing.T) {
	t.Run("owned assessment", func(t *testing.T) {
		controller, mockRepo, _, _, _ := setupAssessmentControllerWithMocks()
		mockRepo.On("GetAssessmentByID", uint(7)).Return(storedAssessment(t, 7, 1), nil)
		mockRepo.On("DeleteAssessment", uint(7)).Return(nil)

		router := setupAssessmentTestRouter()
		router.DELETE("/assessment/:id", addAssessmentAuthMiddleware(1), controller.DeleteAssessment)

		req := httptest.NewRequest(http.MethodDelete, "/assessment/7", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing assessment", func(t *testing.T) {
		controller, mockRepo, _, _, _ := setupAssessmentControllerWithMocks()
		mockRepo.On("GetAssessmentByID", uint(7)).Return(nil, errors.New("record not found"))

		router := setupAssessmentTestRouter()
		router.DELETE("/assessment/:id", addAssessmentAuthMiddleware(1), controller.DeleteAssessment)

		req := httptest.NewRequest(http.MethodDelete, "/assessment/7", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEngineHealth(t *testing.T) {
	controller, _, _, _, _ := setupAssessmentControllerWithMocks()

	router := setupAssessmentTestRouter()
	router.GET("/assessment/health", controller.EngineHealth)

	req := httptest.NewRequest(http.MethodGet, "/assessment/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	for _, condition := range risk.ConditionOrder {
		assert.Contains(t, w.Body.String(), condition)
	}
}
